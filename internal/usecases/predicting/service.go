package predicting

import (
	"context"
	"fmt"
	"time"

	"github.com/Hemanth1845/sales-forecasting/infrastructure/repository"
	"github.com/Hemanth1845/sales-forecasting/internal/config"
	"github.com/Hemanth1845/sales-forecasting/internal/domain"
	"github.com/Hemanth1845/sales-forecasting/internal/metrics"
	"github.com/Hemanth1845/sales-forecasting/internal/ml"
	"github.com/Hemanth1845/sales-forecasting/pkg/apiErrors"
	"github.com/Hemanth1845/sales-forecasting/pkg/utils"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const (
	// ConfidenceScore é fixo: não há intervalo de confiança calculado
	ConfidenceScore = 0.85

	DefaultPeriods = 6
	MaxPeriods     = 36
)

type SalesPredictor interface {
	PredictSales(ctx context.Context, modelName, variant string) (*domain.PredictionOutcome, error)
	Simulate(ctx context.Context, req domain.SimulationRequest) (*domain.SimulationResult, error)
	ForecastSales(ctx context.Context, modelName string, periods int) (*domain.SalesForecast, error)
	GetFeatureImportance(ctx context.Context, modelName string) ([]domain.FeatureImportanceEntry, error)
	ExplainPrediction(ctx context.Context, modelName string) (*domain.FeatureImpactReport, error)
	RetrainCatalog(ctx context.Context) (*domain.RetrainSummary, error)
}

type trainedModel struct {
	ensemble *ml.Ensemble
	metrics  *domain.ModelMetrics
}

type Service struct {
	productRepo    repository.ProductRepository
	salesRepo      repository.SalesRepository
	predictionRepo repository.PredictionRepository
	importanceRepo repository.FeatureImportanceRepository
	metrics        *metrics.Metrics

	cache         *expirable.LRU[string, *trainedModel]
	training      singleflight.Group
	trainConfig   ml.TrainConfig
	explainerMode string

	now   func() time.Time
	newID func() (string, error)
}

func NewService(
	cfg *config.Config,
	productRepo repository.ProductRepository,
	salesRepo repository.SalesRepository,
	predictionRepo repository.PredictionRepository,
	importanceRepo repository.FeatureImportanceRepository,
	m *metrics.Metrics,
) SalesPredictor {
	return newService(cfg, productRepo, salesRepo, predictionRepo, importanceRepo, m)
}

func newService(
	cfg *config.Config,
	productRepo repository.ProductRepository,
	salesRepo repository.SalesRepository,
	predictionRepo repository.PredictionRepository,
	importanceRepo repository.FeatureImportanceRepository,
	m *metrics.Metrics,
) *Service {
	size := cfg.Forecasting.EnsembleCacheSize
	if size <= 0 {
		size = 1
	}

	return &Service{
		productRepo:    productRepo,
		salesRepo:      salesRepo,
		predictionRepo: predictionRepo,
		importanceRepo: importanceRepo,
		metrics:        m,
		cache:          expirable.NewLRU[string, *trainedModel](size, nil, cfg.Forecasting.EnsembleCacheTTL),
		trainConfig:    ml.DefaultTrainConfig(),
		explainerMode:  cfg.Forecasting.ExplainerMode,
		now:            time.Now,
		newID:          utils.GenerateID,
	}
}

func (s *Service) PredictSales(ctx context.Context, modelName, variant string) (*domain.PredictionOutcome, error) {
	which, ok := ml.ParseModel(variant)
	if !ok {
		return nil, NewPredictionError(ErrUnknownModelVariant, apiErrors.ErrUnknownModelVariant, variant)
	}

	product, err := s.requireProduct(ctx, modelName)
	if err != nil {
		return nil, err
	}

	sales, err := s.salesRepo.ListByModel(ctx, modelName)
	if err != nil {
		return nil, databaseError(err, "erro ao consultar vendas do modelo")
	}
	if len(sales) == 0 {
		return nil, NewPredictionError(ErrSalesNotFound, apiErrors.ErrSalesNotFound, modelName)
	}

	trained, err := s.trainedEnsemble(ctx)
	if err != nil {
		return nil, err
	}

	fv, err := ml.Build(*product)
	if err != nil {
		return nil, fromModelError(err, modelName)
	}

	regressionValue, ok := trained.ensemble.Predict(fv, which)
	if !ok {
		return nil, fromModelError(ml.ErrUntrainedModel, string(which))
	}

	record, importance, err := s.storePrediction(ctx, modelName, trained.ensemble, regressionValue)
	if err != nil {
		return nil, err
	}

	s.metrics.PredictionsTotal.WithLabelValues("hybrid").Inc()

	return &domain.PredictionOutcome{
		Model:             modelName,
		PredictedSales:    record.PredictedSales,
		RegressionValue:   regressionValue,
		ConfidenceScore:   record.ConfidenceScore,
		Metrics:           *trained.metrics,
		FeatureImportance: importance,
		PredictionID:      record.ID,
	}, nil
}

func (s *Service) Simulate(ctx context.Context, req domain.SimulationRequest) (*domain.SimulationResult, error) {
	if req.ModelName == "" {
		return nil, NewPredictionError(ErrMissingModelName, apiErrors.ErrMissingRequiredData, "model_name")
	}

	product, err := s.requireProduct(ctx, req.ModelName)
	if err != nil {
		return nil, err
	}

	trained, err := s.trainedEnsemble(ctx)
	if err != nil {
		return nil, err
	}

	result, err := ml.Simulate(trained.ensemble, *product, req.SpecOverrides)
	if err != nil {
		return nil, fromModelError(err, req.ModelName)
	}

	s.metrics.PredictionsTotal.WithLabelValues("simulation").Inc()

	return result, nil
}

func (s *Service) ForecastSales(ctx context.Context, modelName string, periods int) (*domain.SalesForecast, error) {
	if periods == 0 {
		periods = DefaultPeriods
	}
	if periods > MaxPeriods {
		return nil, fromModelError(errors.Wrapf(ml.ErrInvalidHorizon, "máximo de %d meses", MaxPeriods), modelName)
	}

	if _, err := s.requireProduct(ctx, modelName); err != nil {
		return nil, err
	}

	history, err := s.salesRepo.ListByModel(ctx, modelName)
	if err != nil {
		return nil, databaseError(err, "erro ao consultar vendas do modelo")
	}

	records := make([]domain.SalesRecord, len(history))
	for i, r := range history {
		records[i] = *r
	}

	values, err := ml.NaiveTrendForecast(records, periods)
	if err != nil {
		return nil, fromModelError(err, modelName)
	}

	lastMonth := s.now().Format(domain.MonthLayout)
	if len(records) > 0 {
		lastMonth = records[len(records)-1].Month
	}

	months, err := utils.NextMonths(lastMonth, periods)
	if err != nil {
		return nil, NewPredictionError(err, apiErrors.ErrInvalidSalesMonth, lastMonth)
	}

	forecast := make([]domain.ForecastPoint, periods)
	for i := range forecast {
		forecast[i] = domain.ForecastPoint{
			Month:     months[i],
			UnitsSold: utils.RoundTo(values[i], 2),
		}
	}

	s.metrics.PredictionsTotal.WithLabelValues("forecast").Inc()

	return &domain.SalesForecast{
		Model:    modelName,
		Periods:  periods,
		Forecast: forecast,
	}, nil
}

func (s *Service) GetFeatureImportance(ctx context.Context, modelName string) ([]domain.FeatureImportanceEntry, error) {
	if _, err := s.requireProduct(ctx, modelName); err != nil {
		return nil, err
	}

	entries, err := s.importanceRepo.ListByModel(ctx, modelName)
	if err != nil {
		return nil, databaseError(err, "erro ao consultar importância dos atributos")
	}

	if entries == nil {
		entries = []domain.FeatureImportanceEntry{}
	}
	return entries, nil
}

// ExplainPrediction explica a previsão do produto contra o restante do catálogo.
// O produto pedido é sempre a primeira linha do lote.
func (s *Service) ExplainPrediction(ctx context.Context, modelName string) (*domain.FeatureImpactReport, error) {
	product, err := s.requireProduct(ctx, modelName)
	if err != nil {
		return nil, err
	}

	target, err := ml.Build(*product)
	if err != nil {
		return nil, fromModelError(err, modelName)
	}

	trained, err := s.trainedEnsemble(ctx)
	if err != nil {
		return nil, err
	}

	regressor, ok := trained.ensemble.Regressor(ml.ModelGradientBoosting)
	if !ok {
		return nil, fromModelError(ml.ErrUntrainedModel, string(ml.ModelGradientBoosting))
	}

	catalog, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, databaseError(err, "erro ao listar produtos")
	}

	batch := []ml.FeatureVector{target}
	for _, p := range catalog {
		if p.Model == modelName {
			continue
		}
		fv, err := ml.Build(*p)
		if err != nil {
			continue
		}
		batch = append(batch, fv)
	}

	reporter := ml.NewAttributionReporter(ml.NewExplainer(s.explainerMode, trained.ensemble.Background()))
	attribution := reporter.Explain(regressor, batch)

	strategy := ml.ExplainerShapley
	if attribution.Fallback {
		strategy = ml.ExplainerFallback
		logrus.WithFields(logrus.Fields{
			"model": modelName,
			"cause": attribution.Cause,
		}).Warn("Atribuição usando valores de fallback")
	}
	s.metrics.AttributionTotal.WithLabelValues(strategy).Inc()

	return &domain.FeatureImpactReport{
		Model:         modelName,
		Contributions: attribution.Contributions,
		Fallback:      attribution.Fallback,
		Waterfall:     attribution.Waterfall(0),
	}, nil
}

// RetrainCatalog retreina sobre todo o histórico e grava uma previsão para cada
// produto que possui vendas
func (s *Service) RetrainCatalog(ctx context.Context) (*domain.RetrainSummary, error) {
	startedAt := s.now()

	version, err := s.salesRepo.HistoryVersion(ctx)
	if err != nil {
		return nil, databaseError(err, "erro ao consultar versão do histórico")
	}

	history, err := s.salesRepo.ListHistory(ctx)
	if err != nil {
		return nil, databaseError(err, "erro ao consultar histórico de vendas")
	}

	trained, err := s.fit(versionKey(version), history)
	if err != nil {
		return nil, err
	}

	withSales := make(map[string]struct{})
	for _, row := range history {
		withSales[row.Sales.Model] = struct{}{}
	}

	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, databaseError(err, "erro ao listar produtos")
	}

	summary := &domain.RetrainSummary{
		TrainRows: trained.metrics.TrainRows,
		Metrics:   *trained.metrics,
		StartedAt: startedAt,
	}

	for _, product := range products {
		if _, ok := withSales[product.Model]; !ok {
			summary.ModelsSkipped++
			continue
		}

		fv, err := ml.Build(*product)
		if err != nil {
			logrus.WithError(err).WithField("model", product.Model).Warn("Produto ignorado no retreino")
			summary.ModelsSkipped++
			continue
		}

		value, _ := trained.ensemble.Predict(fv, ml.ModelGradientBoosting)
		if _, _, err := s.storePrediction(ctx, product.Model, trained.ensemble, value); err != nil {
			return nil, err
		}
		summary.ModelsPredicted++
	}

	summary.CompletedAt = s.now()
	s.metrics.PredictionsTotal.WithLabelValues("retrain").Add(float64(summary.ModelsPredicted))

	return summary, nil
}

func (s *Service) requireProduct(ctx context.Context, modelName string) (*domain.Product, error) {
	if modelName == "" {
		return nil, NewPredictionError(ErrMissingModelName, apiErrors.ErrMissingRequiredData, "model_name")
	}

	product, err := s.productRepo.GetByModel(ctx, modelName)
	if err != nil {
		return nil, databaseError(err, "erro ao consultar produto")
	}
	if product == nil {
		return nil, NewPredictionError(ErrProductNotFound, apiErrors.ErrProductNotFound, modelName)
	}
	return product, nil
}

// storePrediction grava a previsão híbrida e o retrato da importância do modelo
func (s *Service) storePrediction(ctx context.Context, modelName string, ensemble *ml.Ensemble, regressionValue float64) (*domain.PredictionRecord, []domain.FeatureImportanceEntry, error) {
	id, err := s.newID()
	if err != nil {
		return nil, nil, NewPredictionError(err, apiErrors.ErrInternalServer, "erro ao gerar identificador")
	}

	computedAt := s.now()
	record := &domain.PredictionRecord{
		ID:              id,
		Model:           modelName,
		PredictedSales:  ml.HybridPredict(regressionValue, ml.DefaultHybridWeights),
		ConfidenceScore: ConfidenceScore,
		CreatedAt:       computedAt,
	}

	if err := s.predictionRepo.Create(ctx, record); err != nil {
		return nil, nil, databaseError(err, "erro ao gravar previsão")
	}

	ranking := ensemble.FeatureImportance()
	entries := make([]domain.FeatureImportanceEntry, len(ranking))
	for i, fi := range ranking {
		entries[i] = domain.FeatureImportanceEntry{
			Model:      modelName,
			Feature:    fi.Feature,
			Importance: fi.Importance,
			Rank:       i + 1,
			ComputedAt: computedAt,
		}
	}

	if err := s.importanceRepo.ReplaceForModel(ctx, modelName, entries); err != nil {
		return nil, nil, databaseError(err, "erro ao gravar importância dos atributos")
	}

	return record, entries, nil
}

func (s *Service) trainedEnsemble(ctx context.Context) (*trainedModel, error) {
	version, err := s.salesRepo.HistoryVersion(ctx)
	if err != nil {
		return nil, databaseError(err, "erro ao consultar versão do histórico")
	}

	key := versionKey(version)
	if cached, ok := s.cache.Get(key); ok {
		s.metrics.EnsembleCache.WithLabelValues("hit").Inc()
		return cached, nil
	}
	s.metrics.EnsembleCache.WithLabelValues("miss").Inc()

	// Treino compartilhado entre requisições: o cancelamento de quem chegou primeiro não afeta os demais
	trainCtx := context.WithoutCancel(ctx)
	result, err, _ := s.training.Do(key, func() (any, error) {
		history, err := s.salesRepo.ListHistory(trainCtx)
		if err != nil {
			return nil, databaseError(err, "erro ao consultar histórico de vendas")
		}
		return s.fit(key, history)
	})
	if err != nil {
		return nil, err
	}

	return result.(*trainedModel), nil
}

func (s *Service) fit(key string, history []*domain.SalesHistoryRow) (*trainedModel, error) {
	rows := make([]ml.TrainingRow, 0, len(history))
	for _, h := range history {
		fv, err := ml.Build(h.Product)
		if err != nil {
			logrus.WithError(err).WithField("model", h.Product.Model).Debug("Linha ignorada no treino")
			continue
		}
		rows = append(rows, ml.TrainingRow{Features: fv, UnitsSold: float64(h.Sales.UnitsSold)})
	}

	start := time.Now()
	ensemble, modelMetrics, err := ml.Train(rows, s.trainConfig)
	s.metrics.TrainingDuration.Observe(time.Since(start).Seconds())
	s.metrics.TrainingTotal.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		return nil, fromModelError(err, fmt.Sprintf("%d linhas de histórico", len(rows)))
	}

	logrus.WithFields(logrus.Fields{
		"train_rows":      modelMetrics.TrainRows,
		"validation_rows": modelMetrics.ValidationRows,
		"gbt_r2":          modelMetrics.GradientBoosting.R2,
		"rf_r2":           modelMetrics.RandomForest.R2,
		"duration":        time.Since(start).String(),
	}).Info("Ensemble treinado")

	trained := &trainedModel{ensemble: ensemble, metrics: modelMetrics}
	s.cache.Add(key, trained)
	return trained, nil
}

func versionKey(v *domain.HistoryVersion) string {
	if v == nil {
		return "empty"
	}
	return fmt.Sprintf("%d:%d", v.Rows, v.LastInserted.UnixNano())
}
