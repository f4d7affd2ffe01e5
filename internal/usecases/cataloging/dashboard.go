package cataloging

import (
	"context"
	"fmt"

	"github.com/Hemanth1845/sales-forecasting/internal/domain"
	"github.com/Hemanth1845/sales-forecasting/pkg/apiErrors"
	"github.com/Hemanth1845/sales-forecasting/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// GetDashboardData consulta os agregados do painel em paralelo
func (s *Service) GetDashboardData(ctx context.Context) (*domain.DashboardData, error) {
	var (
		summary     *domain.SalesSummary
		predictions []*domain.PredictionRecord
		trend       []domain.MonthlySales
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		summary, err = s.salesRepo.Summary(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		predictions, err = s.predictionRepo.ListLatest(gctx, latestPredictionsLimit)
		return err
	})

	g.Go(func() error {
		var err error
		trend, err = s.salesRepo.MonthlyTotals(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, NewCatalogError(fmt.Errorf("%w: %w", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "erro ao montar o painel")
	}

	data := &domain.DashboardData{
		LatestPredictions: predictions,
		SalesTrend:        trend,
	}
	if summary != nil {
		data.TotalSales = summary.TotalSales
		data.TotalRevenue = utils.RoundTo(summary.TotalRevenue, 2)
	}
	if data.LatestPredictions == nil {
		data.LatestPredictions = []*domain.PredictionRecord{}
	}
	if data.SalesTrend == nil {
		data.SalesTrend = []domain.MonthlySales{}
	}

	return data, nil
}
