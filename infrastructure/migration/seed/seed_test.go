package seed

import (
	"testing"
	"time"

	"github.com/Hemanth1845/sales-forecasting/internal/domain"
	"github.com/Hemanth1845/sales-forecasting/internal/ml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleCatalog(t *testing.T) {
	catalog := SampleCatalog()
	require.Len(t, catalog, 39)

	models := make(map[string]struct{}, len(catalog))
	for _, p := range catalog {
		_, err := ml.Build(*p)
		assert.NoError(t, err, p.Model)

		_, duplicated := models[p.Model]
		assert.False(t, duplicated, "modelo duplicado: %s", p.Model)
		models[p.Model] = struct{}{}
	}
}

func TestSyntheticSales(t *testing.T) {
	catalog := SampleCatalog()[:3]
	ref := time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC)

	records := SyntheticSales(catalog, 12, ref)
	require.Len(t, records, 36)

	assert.Equal(t, "2024-01", records[0].Month)
	assert.Equal(t, "2024-12", records[11].Month)
	assert.True(t, records[8].CompetitorLaunch)
	assert.True(t, records[3].Promotions)
	assert.False(t, records[0].Promotions)

	for _, r := range records {
		assert.GreaterOrEqual(t, r.UnitsSold, 0)
		assert.Equal(t, float64(r.UnitsSold)*catalogPrice(catalog, r.Model), r.Revenue)
	}

	again := SyntheticSales(catalog, 12, ref)
	assert.Equal(t, records, again)

	assert.Empty(t, SyntheticSales(catalog, 0, ref))
}

func catalogPrice(catalog []*domain.Product, model string) float64 {
	for _, p := range catalog {
		if p.Model == model {
			return p.Price
		}
	}
	return 0
}
