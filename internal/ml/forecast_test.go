package ml

import (
	"testing"

	"github.com/Hemanth1845/sales-forecasting/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func history(units ...int) []domain.SalesRecord {
	out := make([]domain.SalesRecord, len(units))
	for i, u := range units {
		out[i] = domain.SalesRecord{Model: "Pixel 8", UnitsSold: u}
	}
	return out
}

func TestNaiveTrendForecast(t *testing.T) {
	tests := []struct {
		name     string
		history  []domain.SalesRecord
		horizon  int
		expected []float64
	}{
		{
			name:     "Tendência crescente",
			history:  history(100, 110, 120),
			horizon:  2,
			expected: []float64{120, 130},
		},
		{
			name:     "Base usa apenas os três últimos meses",
			history:  history(10, 20, 30, 40, 50),
			horizon:  1,
			expected: []float64{50},
		},
		{
			name:     "Tendência decrescente limitada a zero",
			history:  history(30, 20, 10),
			horizon:  3,
			expected: []float64{10, 0, 0},
		},
		{
			name:     "Dois meses usam a inclinação exata",
			history:  history(100, 120),
			horizon:  1,
			expected: []float64{130},
		},
		{
			name:     "Um único mês não tem inclinação",
			history:  history(75),
			horizon:  2,
			expected: []float64{75, 75},
		},
		{
			name:     "Histórico vazio devolve zeros",
			history:  nil,
			horizon:  3,
			expected: []float64{0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NaiveTrendForecast(tt.history, tt.horizon)
			require.NoError(t, err)
			require.Len(t, result, tt.horizon)
			assert.InDeltaSlice(t, tt.expected, result, 1e-6)
		})
	}
}

func TestNaiveTrendForecast_IncreasingAndNonNegative(t *testing.T) {
	result, err := NaiveTrendForecast(history(100, 110, 120), 2)
	require.NoError(t, err)

	assert.Greater(t, result[1], result[0])
	for _, v := range result {
		assert.GreaterOrEqual(t, v, 0.0)
	}
}

func TestNaiveTrendForecast_InvalidHorizon(t *testing.T) {
	_, err := NaiveTrendForecast(history(1, 2), 0)
	assert.ErrorIs(t, err, ErrInvalidHorizon)
}

func TestHybridPredict(t *testing.T) {
	assert.InDelta(t, 103.0, HybridPredict(100, DefaultHybridWeights), 1e-9)
	assert.InDelta(t, 110.0, HybridPredict(100, HybridWeights{Regression: 0, TimeSeries: 1}), 1e-9)
	assert.Zero(t, HybridPredict(0, DefaultHybridWeights))
}
