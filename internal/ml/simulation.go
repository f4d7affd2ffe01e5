package ml

import (
	"github.com/Hemanth1845/sales-forecasting/internal/domain"
	"github.com/pkg/errors"
)

// Simulate compara a previsão do produto original com a do produto alterado.
// Armazenamento nunca é alterado; as duas previsões usam o modelo primário.
func Simulate(p Predictor, baseline domain.Product, overrides domain.SpecOverrides) (*domain.SimulationResult, error) {
	baseVector, err := Build(baseline)
	if err != nil {
		return nil, err
	}

	modifiedVector, err := Build(overrides.Apply(baseline))
	if err != nil {
		return nil, err
	}

	original, _ := p.Predict(baseVector, ModelGradientBoosting)
	simulated, _ := p.Predict(modifiedVector, ModelGradientBoosting)

	if original == 0 {
		return nil, errors.Wrapf(ErrDivisionUndefined, "modelo %s", baseline.Model)
	}

	delta := simulated - original

	return &domain.SimulationResult{
		OriginalSales:  original,
		SimulatedSales: simulated,
		PercentChange:  delta / original * 100,
		RevenueImpact:  delta * baseline.Price,
	}, nil
}
