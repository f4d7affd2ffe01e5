package utils

import "math"

func RoundTo(f float64, places int) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}

	scale := math.Pow(10, float64(places))
	return math.Round(f*scale) / scale
}
