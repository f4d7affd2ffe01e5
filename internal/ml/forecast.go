package ml

import (
	"math"

	"github.com/Hemanth1845/sales-forecasting/internal/domain"
	"github.com/pkg/errors"
	"github.com/sajari/regression"
	"gonum.org/v1/gonum/stat"
)

// timeSeriesMultiplier é um termo provisório: não existe série temporal ajustada,
// a estimativa temporal é a própria regressão multiplicada por 1.1
const timeSeriesMultiplier = 1.1

const trendBaseWindow = 3

type HybridWeights struct {
	Regression float64
	TimeSeries float64
}

var DefaultHybridWeights = HybridWeights{Regression: 0.7, TimeSeries: 0.3}

// HybridPredict combina a previsão da regressão com a estimativa temporal provisória
func HybridPredict(regressionValue float64, w HybridWeights) float64 {
	timeSeries := regressionValue * timeSeriesMultiplier
	return w.Regression*regressionValue + w.TimeSeries*timeSeries
}

// NaiveTrendForecast projeta horizon meses a partir da média dos últimos 3 valores
// somada à inclinação da reta de mínimos quadrados do histórico.
// Histórico vazio resulta em zeros.
func NaiveTrendForecast(history []domain.SalesRecord, horizon int) ([]float64, error) {
	if horizon < 1 {
		return nil, errors.Wrapf(ErrInvalidHorizon, "horizonte %d", horizon)
	}

	out := make([]float64, horizon)
	if len(history) == 0 {
		return out, nil
	}

	units := make([]float64, len(history))
	for i, r := range history {
		units[i] = float64(r.UnitsSold)
	}

	tail := units
	if len(tail) > trendBaseWindow {
		tail = tail[len(tail)-trendBaseWindow:]
	}
	base := stat.Mean(tail, nil)
	slope := trendSlope(units)

	for i := range out {
		out[i] = math.Max(0, base+slope*float64(i+1))
	}
	return out, nil
}

// trendSlope ajusta units_sold contra o índice do mês. A regressão exige ao menos
// 3 pontos; abaixo disso, ou em caso de falha, usa a forma fechada dos mínimos quadrados.
func trendSlope(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	if len(values) < 3 {
		return leastSquaresSlope(values)
	}

	r := new(regression.Regression)
	r.SetObserved("units_sold")
	r.SetVar(0, "month_index")
	for i, v := range values {
		r.Train(regression.DataPoint(v, []float64{float64(i)}))
	}

	if err := r.Run(); err != nil {
		return leastSquaresSlope(values)
	}
	return r.Coeff(1)
}

func leastSquaresSlope(values []float64) float64 {
	n := float64(len(values))
	meanX := (n - 1) / 2
	meanY := stat.Mean(values, nil)

	var num, den float64
	for i, v := range values {
		dx := float64(i) - meanX
		num += dx * (v - meanY)
		den += dx * dx
	}
	if den == 0 {
		return 0
	}
	return num / den
}
