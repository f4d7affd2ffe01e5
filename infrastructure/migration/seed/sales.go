package seed

import (
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"github.com/Hemanth1845/sales-forecasting/internal/domain"
)

const (
	promotionEvery  = 4    // um mês promocional a cada quatro
	promotionLift   = 0.15 // aumento nas vendas em mês de promoção
	competitorDrop  = 0.10 // queda quando um concorrente é lançado
	competitorMonth = 9    // setembro concentra lançamentos
)

// SyntheticSales gera um histórico mensal determinístico que termina no mês de ref.
// A demanda base depende das especificações, então o histórico é aprendível.
func SyntheticSales(products []*domain.Product, months int, ref time.Time) []*domain.SalesRecord {
	if months < 1 {
		return nil
	}

	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

	records := make([]*domain.SalesRecord, 0, len(products)*months)
	for _, p := range products {
		rng := rand.New(rand.NewSource(modelSeed(p.Model)))
		demand := baseDemand(p)

		for m := 0; m < months; m++ {
			month := first.AddDate(0, m, 0)
			promotion := m%promotionEvery == promotionEvery-1
			competitor := int(month.Month()) == competitorMonth

			units := demand * (1 + 0.02*float64(m)) * (0.9 + 0.2*rng.Float64())
			if promotion {
				units *= 1 + promotionLift
			}
			if competitor {
				units *= 1 - competitorDrop
			}

			sold := int(math.Max(0, math.Round(units)))
			records = append(records, &domain.SalesRecord{
				Model:            p.Model,
				Month:            month.Format(domain.MonthLayout),
				UnitsSold:        sold,
				Revenue:          float64(sold) * p.Price,
				Promotions:       promotion,
				CompetitorLaunch: competitor,
			})
		}
	}
	return records
}

func baseDemand(p *domain.Product) float64 {
	demand := 20000 - 12*p.Price + 350*float64(p.RAM) + 10*float64(p.Storage) + 0.6*float64(p.Battery) + 15*float64(p.CameraMP)
	return math.Max(500, demand)
}

func modelSeed(model string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(model))
	return int64(h.Sum64() >> 1)
}
