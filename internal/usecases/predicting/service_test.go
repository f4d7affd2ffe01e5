package predicting

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Hemanth1845/sales-forecasting/infrastructure/repository/mocks"
	"github.com/Hemanth1845/sales-forecasting/internal/config"
	"github.com/Hemanth1845/sales-forecasting/internal/domain"
	"github.com/Hemanth1845/sales-forecasting/internal/metrics"
	"github.com/Hemanth1845/sales-forecasting/internal/ml"
	"github.com/Hemanth1845/sales-forecasting/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

type fixture struct {
	service        *Service
	productRepo    *mocks.MockProductRepository
	salesRepo      *mocks.MockSalesRepository
	predictionRepo *mocks.MockPredictionRepository
	importanceRepo *mocks.MockFeatureImportanceRepository
}

func newFixture(t *testing.T, explainerMode string) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		productRepo:    mocks.NewMockProductRepository(ctrl),
		salesRepo:      mocks.NewMockSalesRepository(ctrl),
		predictionRepo: mocks.NewMockPredictionRepository(ctrl),
		importanceRepo: mocks.NewMockFeatureImportanceRepository(ctrl),
	}

	cfg := &config.Config{
		Forecasting: config.Forecasting{
			ExplainerMode:     explainerMode,
			EnsembleCacheSize: 2,
			EnsembleCacheTTL:  time.Minute,
		},
	}

	f.service = newService(cfg, f.productRepo, f.salesRepo, f.predictionRepo, f.importanceRepo, metrics.New())
	f.service.now = func() time.Time { return fixedNow }
	f.service.newID = func() (string, error) { return "pred00000001", nil }
	return f
}

func catalog(n int) []*domain.Product {
	products := make([]*domain.Product, n)
	for i := range products {
		products[i] = &domain.Product{
			ID:       int64(i + 1),
			Brand:    "Marca",
			Model:    fmt.Sprintf("Modelo %02d", i),
			Price:    300 + float64(i)*70,
			RAM:      4 + (i%3)*2,
			Storage:  128,
			Battery:  4000 + 150*((i*7)%5),
			CameraMP: 48,
			OS:       "Android",
		}
	}
	return products
}

// history gera dois meses de vendas por produto, com vendas caindo conforme o preço
func history(products []*domain.Product, units func(p *domain.Product) int) []*domain.SalesHistoryRow {
	var rows []*domain.SalesHistoryRow
	for _, p := range products {
		for m, month := range []string{"2024-01", "2024-02"} {
			rows = append(rows, &domain.SalesHistoryRow{
				Sales: domain.SalesRecord{
					Model:     p.Model,
					Month:     month,
					UnitsSold: units(p) + m*10,
				},
				Product: *p,
			})
		}
	}
	return rows
}

func priceDriven(p *domain.Product) int {
	return 5000 - int(3*p.Price) + 100*p.RAM
}

var version = &domain.HistoryVersion{Rows: 20, LastInserted: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}

func salesFor(model string, units ...int) []*domain.SalesRecord {
	records := make([]*domain.SalesRecord, len(units))
	for i, u := range units {
		records[i] = &domain.SalesRecord{
			Model:     model,
			Month:     fmt.Sprintf("2024-%02d", i+1),
			UnitsSold: u,
		}
	}
	return records
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	var predErr *PredictionError
	require.True(t, errors.As(err, &predErr), "esperado PredictionError, recebido %v", err)
	assert.Equal(t, code, predErr.Code)
}

func TestService_PredictSales(t *testing.T) {
	products := catalog(10)
	target := products[3]

	tests := []struct {
		name     string
		model    string
		variant  string
		setup    func(f *fixture)
		validate func(t *testing.T, outcome *domain.PredictionOutcome, err error)
	}{
		{
			name:    "Produto com vendas - deve gravar previsão híbrida e importância",
			model:   target.Model,
			variant: "",
			setup: func(f *fixture) {
				f.productRepo.EXPECT().GetByModel(gomock.Any(), target.Model).Return(target, nil)
				f.salesRepo.EXPECT().ListByModel(gomock.Any(), target.Model).Return(salesFor(target.Model, 100, 120), nil)
				f.salesRepo.EXPECT().HistoryVersion(gomock.Any()).Return(version, nil)
				f.salesRepo.EXPECT().ListHistory(gomock.Any()).Return(history(products, priceDriven), nil)
				f.predictionRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, record *domain.PredictionRecord) error {
						assert.Equal(t, "pred00000001", record.ID)
						assert.Equal(t, target.Model, record.Model)
						assert.Equal(t, ConfidenceScore, record.ConfidenceScore)
						assert.Equal(t, fixedNow, record.CreatedAt)
						return nil
					})
				f.importanceRepo.EXPECT().
					ReplaceForModel(gomock.Any(), target.Model, gomock.Len(ml.NumFeatures)).
					Return(nil)
			},
			validate: func(t *testing.T, outcome *domain.PredictionOutcome, err error) {
				require.NoError(t, err)
				assert.InDelta(t, 1.03*outcome.RegressionValue, outcome.PredictedSales, 1e-9)
				assert.Equal(t, 0.85, outcome.ConfidenceScore)
				assert.Equal(t, "pred00000001", outcome.PredictionID)
				assert.Equal(t, 16, outcome.Metrics.TrainRows)
				assert.Equal(t, 4, outcome.Metrics.ValidationRows)
				require.Len(t, outcome.FeatureImportance, ml.NumFeatures)
				assert.Equal(t, 1, outcome.FeatureImportance[0].Rank)
				assert.Equal(t, ml.NumFeatures, outcome.FeatureImportance[ml.NumFeatures-1].Rank)
			},
		},
		{
			name:  "Produto inexistente - deve retornar PRD_001",
			model: "Inexistente",
			setup: func(f *fixture) {
				f.productRepo.EXPECT().GetByModel(gomock.Any(), "Inexistente").Return(nil, nil)
			},
			validate: func(t *testing.T, outcome *domain.PredictionOutcome, err error) {
				assert.Nil(t, outcome)
				assert.ErrorIs(t, err, ErrProductNotFound)
				requireCode(t, err, apiErrors.ErrProductNotFound)
			},
		},
		{
			name:  "Produto sem vendas - deve retornar PRD_003",
			model: target.Model,
			setup: func(f *fixture) {
				f.productRepo.EXPECT().GetByModel(gomock.Any(), target.Model).Return(target, nil)
				f.salesRepo.EXPECT().ListByModel(gomock.Any(), target.Model).Return(nil, nil)
			},
			validate: func(t *testing.T, outcome *domain.PredictionOutcome, err error) {
				assert.ErrorIs(t, err, ErrSalesNotFound)
				requireCode(t, err, apiErrors.ErrSalesNotFound)
			},
		},
		{
			name:    "Variante desconhecida - deve retornar ML_006 sem consultar o banco",
			model:   target.Model,
			variant: "xgboost",
			setup:   func(f *fixture) {},
			validate: func(t *testing.T, outcome *domain.PredictionOutcome, err error) {
				requireCode(t, err, apiErrors.ErrUnknownModelVariant)
			},
		},
		{
			name:  "Histórico com uma linha - deve retornar ML_002",
			model: target.Model,
			setup: func(f *fixture) {
				f.productRepo.EXPECT().GetByModel(gomock.Any(), target.Model).Return(target, nil)
				f.salesRepo.EXPECT().ListByModel(gomock.Any(), target.Model).Return(salesFor(target.Model, 100), nil)
				f.salesRepo.EXPECT().HistoryVersion(gomock.Any()).Return(&domain.HistoryVersion{Rows: 1}, nil)
				f.salesRepo.EXPECT().ListHistory(gomock.Any()).Return(history(products, priceDriven)[:1], nil)
			},
			validate: func(t *testing.T, outcome *domain.PredictionOutcome, err error) {
				assert.ErrorIs(t, err, ml.ErrInsufficientData)
				requireCode(t, err, apiErrors.ErrInsufficientData)
			},
		},
		{
			name:  "Falha no banco - deve retornar SRV_002",
			model: target.Model,
			setup: func(f *fixture) {
				f.productRepo.EXPECT().GetByModel(gomock.Any(), target.Model).Return(nil, errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, outcome *domain.PredictionOutcome, err error) {
				assert.ErrorIs(t, err, ErrDatabaseOperation)
				assert.ErrorContains(t, err, "conexão recusada")
				requireCode(t, err, apiErrors.ErrDatabaseOperation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, ml.ExplainerShapley)
			tt.setup(f)

			outcome, err := f.service.PredictSales(context.Background(), tt.model, tt.variant)
			tt.validate(t, outcome, err)
		})
	}
}

func TestService_PredictSales_ReusesCachedEnsemble(t *testing.T) {
	products := catalog(10)
	target := products[0]
	f := newFixture(t, ml.ExplainerShapley)

	f.productRepo.EXPECT().GetByModel(gomock.Any(), target.Model).Return(target, nil).Times(2)
	f.salesRepo.EXPECT().ListByModel(gomock.Any(), target.Model).Return(salesFor(target.Model, 100), nil).Times(2)
	f.salesRepo.EXPECT().HistoryVersion(gomock.Any()).Return(version, nil).Times(2)
	f.salesRepo.EXPECT().ListHistory(gomock.Any()).Return(history(products, priceDriven), nil).Times(1)
	f.predictionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.importanceRepo.EXPECT().ReplaceForModel(gomock.Any(), target.Model, gomock.Any()).Return(nil).Times(2)

	first, err := f.service.PredictSales(context.Background(), target.Model, "")
	require.NoError(t, err)
	second, err := f.service.PredictSales(context.Background(), target.Model, "")
	require.NoError(t, err)

	assert.Equal(t, first.PredictedSales, second.PredictedSales)
}

func TestService_TrainedEnsemble_IgnoresCallerCancellation(t *testing.T) {
	products := catalog(10)
	f := newFixture(t, ml.ExplainerFallback)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f.salesRepo.EXPECT().HistoryVersion(gomock.Any()).Return(version, nil)
	f.salesRepo.EXPECT().ListHistory(gomock.Any()).DoAndReturn(
		func(ctx context.Context) ([]*domain.SalesHistoryRow, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return history(products, priceDriven), nil
		},
	)

	trained, err := f.service.trainedEnsemble(ctx)

	require.NoError(t, err)
	assert.NotNil(t, trained.ensemble)
}

func TestService_Simulate(t *testing.T) {
	products := catalog(10)
	target := products[5]
	lowerPrice := products[0].Price

	tests := []struct {
		name     string
		request  domain.SimulationRequest
		units    func(p *domain.Product) int
		setup    func(f *fixture, rows []*domain.SalesHistoryRow)
		validate func(t *testing.T, result *domain.SimulationResult, err error)
	}{
		{
			name:    "Sem alterações - variação deve ser zero",
			request: domain.SimulationRequest{ModelName: target.Model},
			units:   priceDriven,
			setup: func(f *fixture, rows []*domain.SalesHistoryRow) {
				f.productRepo.EXPECT().GetByModel(gomock.Any(), target.Model).Return(target, nil)
				f.salesRepo.EXPECT().HistoryVersion(gomock.Any()).Return(version, nil)
				f.salesRepo.EXPECT().ListHistory(gomock.Any()).Return(rows, nil)
			},
			validate: func(t *testing.T, result *domain.SimulationResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, result.OriginalSales, result.SimulatedSales)
				assert.Zero(t, result.PercentChange)
				assert.Zero(t, result.RevenueImpact)
			},
		},
		{
			name: "Preço menor - impacto na receita deve usar o preço original",
			request: domain.SimulationRequest{
				ModelName:     target.Model,
				SpecOverrides: domain.SpecOverrides{Price: &lowerPrice},
			},
			units: priceDriven,
			setup: func(f *fixture, rows []*domain.SalesHistoryRow) {
				f.productRepo.EXPECT().GetByModel(gomock.Any(), target.Model).Return(target, nil)
				f.salesRepo.EXPECT().HistoryVersion(gomock.Any()).Return(version, nil)
				f.salesRepo.EXPECT().ListHistory(gomock.Any()).Return(rows, nil)
			},
			validate: func(t *testing.T, result *domain.SimulationResult, err error) {
				require.NoError(t, err)
				delta := result.SimulatedSales - result.OriginalSales
				assert.Greater(t, delta, 0.0)
				assert.InDelta(t, delta*target.Price, result.RevenueImpact, 1e-6)
				assert.InDelta(t, delta/result.OriginalSales*100, result.PercentChange, 1e-9)
			},
		},
		{
			name:    "Previsão original zero - deve retornar ML_003",
			request: domain.SimulationRequest{ModelName: target.Model},
			units:   func(*domain.Product) int { return 0 },
			setup: func(f *fixture, rows []*domain.SalesHistoryRow) {
				// zera também o incremento mensal aplicado por history
				for _, r := range rows {
					r.Sales.UnitsSold = 0
				}
				f.productRepo.EXPECT().GetByModel(gomock.Any(), target.Model).Return(target, nil)
				f.salesRepo.EXPECT().HistoryVersion(gomock.Any()).Return(version, nil)
				f.salesRepo.EXPECT().ListHistory(gomock.Any()).Return(rows, nil)
			},
			validate: func(t *testing.T, result *domain.SimulationResult, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, ml.ErrDivisionUndefined)
				requireCode(t, err, apiErrors.ErrDivisionUndefined)
			},
		},
		{
			name:    "Sem nome do modelo - deve retornar VAL_002",
			request: domain.SimulationRequest{},
			units:   priceDriven,
			setup:   func(f *fixture, rows []*domain.SalesHistoryRow) {},
			validate: func(t *testing.T, result *domain.SimulationResult, err error) {
				requireCode(t, err, apiErrors.ErrMissingRequiredData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, ml.ExplainerShapley)
			tt.setup(f, history(products, tt.units))

			result, err := f.service.Simulate(context.Background(), tt.request)
			tt.validate(t, result, err)
		})
	}
}

func TestService_ForecastSales(t *testing.T) {
	product := catalog(1)[0]

	tests := []struct {
		name     string
		periods  int
		setup    func(f *fixture)
		validate func(t *testing.T, forecast *domain.SalesForecast, err error)
	}{
		{
			name:    "Histórico crescente - deve projetar a tendência a partir do último mês",
			periods: 2,
			setup: func(f *fixture) {
				f.productRepo.EXPECT().GetByModel(gomock.Any(), product.Model).Return(product, nil)
				f.salesRepo.EXPECT().ListByModel(gomock.Any(), product.Model).Return(salesFor(product.Model, 100, 110, 120), nil)
			},
			validate: func(t *testing.T, forecast *domain.SalesForecast, err error) {
				require.NoError(t, err)
				assert.Equal(t, 2, forecast.Periods)
				assert.Equal(t, []domain.ForecastPoint{
					{Month: "2024-04", UnitsSold: 120},
					{Month: "2024-05", UnitsSold: 130},
				}, forecast.Forecast)
			},
		},
		{
			name:    "Períodos zero - deve usar o padrão de 6 meses",
			periods: 0,
			setup: func(f *fixture) {
				f.productRepo.EXPECT().GetByModel(gomock.Any(), product.Model).Return(product, nil)
				f.salesRepo.EXPECT().ListByModel(gomock.Any(), product.Model).Return(salesFor(product.Model, 100), nil)
			},
			validate: func(t *testing.T, forecast *domain.SalesForecast, err error) {
				require.NoError(t, err)
				require.Len(t, forecast.Forecast, DefaultPeriods)
				assert.Equal(t, "2024-07", forecast.Forecast[5].Month)
			},
		},
		{
			name:    "Sem histórico - deve retornar zeros a partir do mês atual",
			periods: 3,
			setup: func(f *fixture) {
				f.productRepo.EXPECT().GetByModel(gomock.Any(), product.Model).Return(product, nil)
				f.salesRepo.EXPECT().ListByModel(gomock.Any(), product.Model).Return(nil, nil)
			},
			validate: func(t *testing.T, forecast *domain.SalesForecast, err error) {
				require.NoError(t, err)
				assert.Equal(t, []domain.ForecastPoint{
					{Month: "2024-07", UnitsSold: 0},
					{Month: "2024-08", UnitsSold: 0},
					{Month: "2024-09", UnitsSold: 0},
				}, forecast.Forecast)
			},
		},
		{
			name:    "Horizonte negativo - deve retornar ML_005",
			periods: -1,
			setup: func(f *fixture) {
				f.productRepo.EXPECT().GetByModel(gomock.Any(), product.Model).Return(product, nil)
				f.salesRepo.EXPECT().ListByModel(gomock.Any(), product.Model).Return(salesFor(product.Model, 100), nil)
			},
			validate: func(t *testing.T, forecast *domain.SalesForecast, err error) {
				assert.ErrorIs(t, err, ml.ErrInvalidHorizon)
				requireCode(t, err, apiErrors.ErrInvalidHorizon)
			},
		},
		{
			name:    "Horizonte acima do máximo - deve retornar ML_005",
			periods: MaxPeriods + 1,
			setup:   func(f *fixture) {},
			validate: func(t *testing.T, forecast *domain.SalesForecast, err error) {
				assert.ErrorIs(t, err, ml.ErrInvalidHorizon)
				requireCode(t, err, apiErrors.ErrInvalidHorizon)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, ml.ExplainerShapley)
			tt.setup(f)

			forecast, err := f.service.ForecastSales(context.Background(), product.Model, tt.periods)
			tt.validate(t, forecast, err)
		})
	}
}

func TestService_GetFeatureImportance(t *testing.T) {
	product := catalog(1)[0]

	t.Run("Sem retrato gravado - deve retornar lista vazia", func(t *testing.T) {
		f := newFixture(t, ml.ExplainerShapley)
		f.productRepo.EXPECT().GetByModel(gomock.Any(), product.Model).Return(product, nil)
		f.importanceRepo.EXPECT().ListByModel(gomock.Any(), product.Model).Return(nil, nil)

		entries, err := f.service.GetFeatureImportance(context.Background(), product.Model)
		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})

	t.Run("Com retrato gravado - deve repassar as entradas", func(t *testing.T) {
		f := newFixture(t, ml.ExplainerShapley)
		stored := []domain.FeatureImportanceEntry{{Model: product.Model, Feature: "price", Importance: 0.7, Rank: 1}}
		f.productRepo.EXPECT().GetByModel(gomock.Any(), product.Model).Return(product, nil)
		f.importanceRepo.EXPECT().ListByModel(gomock.Any(), product.Model).Return(stored, nil)

		entries, err := f.service.GetFeatureImportance(context.Background(), product.Model)
		require.NoError(t, err)
		assert.Equal(t, stored, entries)
	})
}

func TestService_ExplainPrediction(t *testing.T) {
	products := catalog(10)
	target := products[2]

	tests := []struct {
		name     string
		mode     string
		validate func(t *testing.T, report *domain.FeatureImpactReport, err error)
	}{
		{
			name: "Shapley habilitado - deve explicar o produto pedido",
			mode: ml.ExplainerShapley,
			validate: func(t *testing.T, report *domain.FeatureImpactReport, err error) {
				require.NoError(t, err)
				assert.False(t, report.Fallback)
				assert.False(t, report.Waterfall.Fallback)
				assert.Len(t, report.Contributions, ml.NumFeatures)
				assert.Len(t, report.Waterfall.Values, ml.NumFeatures)
				assert.Equal(t, ml.FeatureNames, report.Waterfall.FeatureNames)
			},
		},
		{
			name: "Modo fallback - deve marcar os valores como ilustrativos",
			mode: ml.ExplainerFallback,
			validate: func(t *testing.T, report *domain.FeatureImpactReport, err error) {
				require.NoError(t, err)
				assert.True(t, report.Fallback)
				assert.True(t, report.Waterfall.Fallback)
				assert.Equal(t, 150000.0, report.Waterfall.BaseValue)
				assert.Equal(t, []float64{10000, 5000, -3000, 2000, 1000}, report.Waterfall.Values)
				for _, c := range report.Contributions {
					assert.GreaterOrEqual(t, c.Value, 0.0)
					assert.Less(t, c.Value, 0.1)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.mode)
			f.productRepo.EXPECT().GetByModel(gomock.Any(), target.Model).Return(target, nil)
			f.salesRepo.EXPECT().HistoryVersion(gomock.Any()).Return(version, nil)
			f.salesRepo.EXPECT().ListHistory(gomock.Any()).Return(history(products, priceDriven), nil)
			f.productRepo.EXPECT().List(gomock.Any()).Return(products, nil)

			report, err := f.service.ExplainPrediction(context.Background(), target.Model)
			tt.validate(t, report, err)
		})
	}
}

func TestService_RetrainCatalog(t *testing.T) {
	products := catalog(10)
	withoutSales := &domain.Product{Brand: "Nova", Model: "Lançamento", Price: 999, RAM: 12, Storage: 256, Battery: 5000, CameraMP: 200}

	f := newFixture(t, ml.ExplainerShapley)
	f.salesRepo.EXPECT().HistoryVersion(gomock.Any()).Return(version, nil)
	f.salesRepo.EXPECT().ListHistory(gomock.Any()).Return(history(products, priceDriven), nil)
	f.productRepo.EXPECT().List(gomock.Any()).Return(append(products, withoutSales), nil)
	f.predictionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(len(products))
	f.importanceRepo.EXPECT().ReplaceForModel(gomock.Any(), gomock.Any(), gomock.Len(ml.NumFeatures)).Return(nil).Times(len(products))

	summary, err := f.service.RetrainCatalog(context.Background())
	require.NoError(t, err)

	assert.Equal(t, len(products), summary.ModelsPredicted)
	assert.Equal(t, 1, summary.ModelsSkipped)
	assert.Equal(t, 16, summary.TrainRows)
	assert.Equal(t, fixedNow, summary.StartedAt)

	// o retreino alimenta o cache: a próxima consulta não relê o histórico
	f.salesRepo.EXPECT().HistoryVersion(gomock.Any()).Return(version, nil)
	trained, err := f.service.trainedEnsemble(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, trained.ensemble)
}
