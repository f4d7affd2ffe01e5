package ml

import (
	"math"

	"github.com/Hemanth1845/sales-forecasting/internal/domain"
	"gonum.org/v1/gonum/stat"
)

// evaluate calcula MAE, RMSE e R² na partição de validação.
// Com variância zero no alvo o R² vale 1 para ajuste perfeito e 0 caso contrário.
func evaluate(predicted, actual []float64) domain.RegressionMetrics {
	if len(actual) == 0 {
		return domain.RegressionMetrics{}
	}

	var absSum, sqSum float64
	for i := range actual {
		d := predicted[i] - actual[i]
		absSum += math.Abs(d)
		sqSum += d * d
	}

	mean := stat.Mean(actual, nil)
	var ssTot float64
	for _, a := range actual {
		ssTot += (a - mean) * (a - mean)
	}

	n := float64(len(actual))
	r2 := 0.0
	switch {
	case ssTot == 0 && sqSum == 0:
		r2 = 1
	case ssTot == 0:
		r2 = 0
	default:
		r2 = 1 - sqSum/ssTot
	}

	return domain.RegressionMetrics{
		MAE:  absSum / n,
		RMSE: math.Sqrt(sqSum / n),
		R2:   r2,
	}
}
