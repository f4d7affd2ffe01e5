package ml

import (
	"math"

	"github.com/Hemanth1845/sales-forecasting/internal/domain"
	"github.com/pkg/errors"
)

// Posições fixas do vetor de atributos. Treino e inferência usam a mesma ordem.
const (
	FeaturePrice = iota
	FeatureRAM
	FeatureStorage
	FeatureBattery
	FeatureCameraMP

	NumFeatures
)

// FeatureNames segue a ordem das posições do FeatureVector
var FeatureNames = []string{"price", "ram", "storage", "battery", "camera_mp"}

type FeatureVector [NumFeatures]float64

// Build converte a especificação do produto no vetor de atributos do modelo
func Build(p domain.Product) (FeatureVector, error) {
	var fv FeatureVector

	values := [NumFeatures]float64{
		FeaturePrice:    p.Price,
		FeatureRAM:      float64(p.RAM),
		FeatureStorage:  float64(p.Storage),
		FeatureBattery:  float64(p.Battery),
		FeatureCameraMP: float64(p.CameraMP),
	}

	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fv, errors.Wrapf(ErrInvalidSpec, "atributo %s não numérico", FeatureNames[i])
		}
		if v <= 0 {
			return fv, errors.Wrapf(ErrInvalidSpec, "atributo %s ausente", FeatureNames[i])
		}
		fv[i] = v
	}

	return fv, nil
}
