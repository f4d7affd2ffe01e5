package ml

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/Hemanth1845/sales-forecasting/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProduct() domain.Product {
	return domain.Product{
		Brand:    "Google",
		Model:    "Pixel 8",
		Price:    699,
		RAM:      8,
		Storage:  128,
		Battery:  4575,
		CameraMP: 50,
		OS:       "Android",
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		product  func() domain.Product
		expected FeatureVector
		wantErr  error
	}{
		{
			name:     "Ordem fixa price, ram, storage, battery, camera_mp",
			product:  sampleProduct,
			expected: FeatureVector{699, 8, 128, 4575, 50},
		},
		{
			name: "RAM ausente",
			product: func() domain.Product {
				p := sampleProduct()
				p.RAM = 0
				return p
			},
			wantErr: ErrInvalidSpec,
		},
		{
			name: "Preço não numérico",
			product: func() domain.Product {
				p := sampleProduct()
				p.Price = math.NaN()
				return p
			},
			wantErr: ErrInvalidSpec,
		},
		{
			name: "Bateria negativa",
			product: func() domain.Product {
				p := sampleProduct()
				p.Battery = -1
				return p
			},
			wantErr: ErrInvalidSpec,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fv, err := Build(tt.product())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, fv)
		})
	}
}

func TestBuild_AttributeOrderInInputDoesNotMatter(t *testing.T) {
	docs := []string{
		`{"model":"X","price":300,"ram":6,"storage":128,"battery":5000,"camera_mp":48}`,
		`{"camera_mp":48,"battery":5000,"storage":128,"ram":6,"price":300,"model":"X"}`,
	}

	var vectors []FeatureVector
	for _, doc := range docs {
		var p domain.Product
		require.NoError(t, json.Unmarshal([]byte(doc), &p))
		fv, err := Build(p)
		require.NoError(t, err)
		vectors = append(vectors, fv)
	}

	assert.Equal(t, vectors[0], vectors[1])
	assert.Equal(t, FeatureVector{300, 6, 128, 5000, 48}, vectors[0])
	assert.Equal(t, []string{"price", "ram", "storage", "battery", "camera_mp"}, FeatureNames)
}
