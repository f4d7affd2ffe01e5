package ml

import (
	"math"
	"math/bits"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/Hemanth1845/sales-forecasting/internal/domain"
	"github.com/pkg/errors"
)

const (
	ExplainerShapley  = "shapley"
	ExplainerFallback = "fallback"

	maxBackground = 50
	coalitions    = 1 << NumFeatures
)

// Valores ilustrativos do waterfall quando não há explicação calculada
var (
	fallbackBaseValue = 150000.0
	fallbackWaterfall = []float64{10000, 5000, -3000, 2000, 1000}
)

// Explanation guarda as contribuições por instância, na ordem de FeatureNames
type Explanation struct {
	BaseValue float64
	Values    [][]float64
}

type Explainer interface {
	Available() bool
	Explain(model Regressor, batch []FeatureVector) (*Explanation, error)
}

// NewExplainer escolhe a estratégia pelo modo configurado
func NewExplainer(mode string, background []FeatureVector) Explainer {
	if strings.EqualFold(strings.TrimSpace(mode), ExplainerShapley) {
		return &ShapleyExplainer{Background: background}
	}
	return FallbackExplainer{}
}

type FallbackExplainer struct{}

func (FallbackExplainer) Available() bool { return false }

func (FallbackExplainer) Explain(Regressor, []FeatureVector) (*Explanation, error) {
	return nil, ErrExplainerUnavailable
}

// ShapleyExplainer calcula valores de Shapley exatos (intervencionais) sobre os
// 5 atributos, substituindo os atributos fora da coalizão pelos da amostra de referência
type ShapleyExplainer struct {
	Background []FeatureVector
}

func (e *ShapleyExplainer) Available() bool { return true }

func (e *ShapleyExplainer) Explain(model Regressor, batch []FeatureVector) (*Explanation, error) {
	if model == nil {
		return nil, ErrUntrainedModel
	}
	if len(batch) == 0 {
		return nil, errors.New("lote de atributos vazio")
	}

	background := e.Background
	if len(background) == 0 {
		background = batch
	}
	if len(background) > maxBackground {
		background = background[:maxBackground]
	}

	weights := shapleyWeights()
	values := make([][]float64, len(batch))

	var base float64
	for k, x := range batch {
		var v [coalitions]float64
		for mask := 0; mask < coalitions; mask++ {
			var sum float64
			for _, b := range background {
				z := b
				for f := 0; f < NumFeatures; f++ {
					if mask&(1<<f) != 0 {
						z[f] = x[f]
					}
				}
				sum += model.PredictOne(z)
			}
			v[mask] = sum / float64(len(background))
		}
		base = v[0]

		phi := make([]float64, NumFeatures)
		for f := 0; f < NumFeatures; f++ {
			bit := 1 << f
			for mask := 0; mask < coalitions; mask++ {
				if mask&bit != 0 {
					continue
				}
				phi[f] += weights[bits.OnesCount(uint(mask))] * (v[mask|bit] - v[mask])
			}
		}
		values[k] = phi
	}

	return &Explanation{BaseValue: base, Values: values}, nil
}

// shapleyWeights devolve |S|!(n-|S|-1)!/n! indexado por |S|
func shapleyWeights() [NumFeatures]float64 {
	var w [NumFeatures]float64
	for s := 0; s < NumFeatures; s++ {
		w[s] = factorial(s) * factorial(NumFeatures-s-1) / factorial(NumFeatures)
	}
	return w
}

func factorial(n int) float64 {
	out := 1.0
	for i := 2; i <= n; i++ {
		out *= float64(i)
	}
	return out
}

// Attribution é o resultado de uma explicação. Quando Fallback é verdadeiro os valores
// são aleatórios e não devem ser tratados como explicação real.
type Attribution struct {
	Contributions []domain.FeatureContribution
	Fallback      bool
	Cause         error

	explanation *Explanation
}

type AttributionReporter struct {
	explainer Explainer
}

func NewAttributionReporter(explainer Explainer) *AttributionReporter {
	return &AttributionReporter{explainer: explainer}
}

func (r *AttributionReporter) Explain(model Regressor, batch []FeatureVector) *Attribution {
	if r.explainer == nil || !r.explainer.Available() {
		return fallbackAttribution(ErrExplainerUnavailable)
	}

	explanation, err := r.explainer.Explain(model, batch)
	if err != nil {
		return fallbackAttribution(err)
	}

	contributions := make([]domain.FeatureContribution, NumFeatures)
	for f := range contributions {
		var sum float64
		for _, row := range explanation.Values {
			sum += math.Abs(row[f])
		}
		contributions[f] = domain.FeatureContribution{
			Feature: FeatureNames[f],
			Value:   sum / float64(len(explanation.Values)),
		}
	}
	rankByMagnitude(contributions)

	return &Attribution{Contributions: contributions, explanation: explanation}
}

// Waterfall explica uma única instância do lote
func (r *AttributionReporter) Waterfall(model Regressor, batch []FeatureVector, index int) domain.Waterfall {
	return r.Explain(model, batch).Waterfall(index)
}

func (a *Attribution) Waterfall(index int) domain.Waterfall {
	names := append([]string(nil), FeatureNames...)

	if a == nil || a.explanation == nil || index < 0 || index >= len(a.explanation.Values) {
		return domain.Waterfall{
			BaseValue:    fallbackBaseValue,
			Values:       append([]float64(nil), fallbackWaterfall...),
			FeatureNames: names,
			Fallback:     true,
		}
	}

	return domain.Waterfall{
		BaseValue:    a.explanation.BaseValue,
		Values:       append([]float64(nil), a.explanation.Values[index]...),
		FeatureNames: names,
	}
}

func fallbackAttribution(cause error) *Attribution {
	contributions := make([]domain.FeatureContribution, NumFeatures)
	for f := range contributions {
		contributions[f] = domain.FeatureContribution{
			Feature: FeatureNames[f],
			Value:   rand.Float64() * 0.1,
		}
	}
	rankByMagnitude(contributions)

	return &Attribution{Contributions: contributions, Fallback: true, Cause: cause}
}

func rankByMagnitude(c []domain.FeatureContribution) {
	sort.SliceStable(c, func(i, j int) bool {
		return math.Abs(c[i].Value) > math.Abs(c[j].Value)
	})
}
