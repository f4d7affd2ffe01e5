package ml

import (
	"sort"

	"github.com/Hemanth1845/sales-forecasting/internal/domain"
)

type Model string

const (
	ModelGradientBoosting Model = "gradient_boosting" // primário
	ModelRandomForest     Model = "random_forest"     // secundário
)

// ParseModel aceita o nome do submodelo, vazio resolve para o primário
func ParseModel(name string) (Model, bool) {
	switch Model(name) {
	case "", ModelGradientBoosting:
		return ModelGradientBoosting, true
	case ModelRandomForest:
		return ModelRandomForest, true
	}
	return "", false
}

// Regressor é um submodelo ajustado
type Regressor interface {
	PredictOne(x FeatureVector) float64
}

// Predictor é satisfeito pelo Ensemble
type Predictor interface {
	Predict(fv FeatureVector, which Model) (float64, bool)
}

type TrainingRow struct {
	Features  FeatureVector
	UnitsSold float64
}

type TrainConfig struct {
	TestFraction float64
	Seed         int64
	Estimators   int
	LearningRate float64
	MaxDepth     int
	Lambda       float64
}

func DefaultTrainConfig() TrainConfig {
	return TrainConfig{
		TestFraction: 0.2,
		Seed:         42,
		Estimators:   100,
		LearningRate: 0.1,
		MaxDepth:     6,
		Lambda:       1,
	}
}

type FeatureImportance struct {
	Feature    string
	Importance float64
}

// Ensemble guarda o par de regressores treinados sobre o mesmo histórico.
// Não é alterado depois do treino.
type Ensemble struct {
	boosting   *gradientBoosting
	forest     *randomForest
	importance []FeatureImportance
	background []FeatureVector
}

func Train(rows []TrainingRow, cfg TrainConfig) (*Ensemble, *domain.ModelMetrics, error) {
	trainIdx, testIdx, err := trainTestSplit(len(rows), cfg.TestFraction, cfg.Seed)
	if err != nil {
		return nil, nil, err
	}

	xTrain, yTrain := columns(rows, trainIdx)
	xTest, yTest := columns(rows, testIdx)

	boosting, gains := fitGradientBoosting(xTrain, yTrain, cfg)
	forest := fitRandomForest(xTrain, yTrain, cfg)

	ensemble := &Ensemble{
		boosting:   boosting,
		forest:     forest,
		importance: rankImportance(gains),
		background: xTrain,
	}

	metrics := &domain.ModelMetrics{
		GradientBoosting: evaluate(predictAll(boosting, xTest), yTest),
		RandomForest:     evaluate(predictAll(forest, xTest), yTest),
		TrainRows:        len(trainIdx),
		ValidationRows:   len(testIdx),
	}

	return ensemble, metrics, nil
}

// Regressor devolve o submodelo pedido, se treinado
func (e *Ensemble) Regressor(which Model) (Regressor, bool) {
	if e == nil {
		return nil, false
	}

	switch which {
	case ModelGradientBoosting:
		if e.boosting != nil {
			return e.boosting, true
		}
	case ModelRandomForest:
		if e.forest != nil {
			return e.forest, true
		}
	}
	return nil, false
}

// Predict devolve (0, false) quando o submodelo não foi treinado, separando
// "sem previsão" de uma previsão legítima igual a zero
func (e *Ensemble) Predict(fv FeatureVector, which Model) (float64, bool) {
	r, ok := e.Regressor(which)
	if !ok {
		return 0, false
	}
	return r.PredictOne(fv), true
}

func (e *Ensemble) FeatureImportance() []FeatureImportance {
	if e == nil {
		return nil
	}
	return append([]FeatureImportance(nil), e.importance...)
}

// Background devolve os vetores de treino, usados como referência da atribuição
func (e *Ensemble) Background() []FeatureVector {
	if e == nil {
		return nil
	}
	return e.background
}

func columns(rows []TrainingRow, idx []int) ([]FeatureVector, []float64) {
	x := make([]FeatureVector, len(idx))
	y := make([]float64, len(idx))
	for i, j := range idx {
		x[i] = rows[j].Features
		y[i] = rows[j].UnitsSold
	}
	return x, y
}

func predictAll(r Regressor, x []FeatureVector) []float64 {
	out := make([]float64, len(x))
	for i := range x {
		out[i] = r.PredictOne(x[i])
	}
	return out
}

func rankImportance(gains [NumFeatures]float64) []FeatureImportance {
	out := make([]FeatureImportance, NumFeatures)
	for f := range out {
		out[f] = FeatureImportance{Feature: FeatureNames[f], Importance: gains[f]}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Importance > out[j].Importance
	})
	return out
}
