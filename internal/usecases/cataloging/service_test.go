package cataloging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Hemanth1845/sales-forecasting/infrastructure/repository"
	"github.com/Hemanth1845/sales-forecasting/infrastructure/repository/mocks"
	"github.com/Hemanth1845/sales-forecasting/internal/domain"
	"github.com/Hemanth1845/sales-forecasting/internal/ml"
	"github.com/Hemanth1845/sales-forecasting/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	service        *Service
	productRepo    *mocks.MockProductRepository
	salesRepo      *mocks.MockSalesRepository
	predictionRepo *mocks.MockPredictionRepository
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		productRepo:    mocks.NewMockProductRepository(ctrl),
		salesRepo:      mocks.NewMockSalesRepository(ctrl),
		predictionRepo: mocks.NewMockPredictionRepository(ctrl),
	}
	f.service = NewService(f.productRepo, f.salesRepo, f.predictionRepo).(*Service)
	f.service.now = func() time.Time { return time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC) }
	return f
}

func pixel8() *domain.Product {
	return &domain.Product{
		Brand:      "Google",
		Model:      "Pixel 8",
		Price:      799,
		RAM:        8,
		Storage:    128,
		Battery:    4575,
		CameraMP:   50,
		OS:         "Android",
		LaunchDate: "2023-10-12",
	}
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	var catalogErr *CatalogError
	require.True(t, errors.As(err, &catalogErr), "esperado CatalogError, recebido %v", err)
	assert.Equal(t, code, catalogErr.Code)
}

func TestService_AddProduct(t *testing.T) {
	tests := []struct {
		name     string
		product  func() *domain.Product
		setup    func(f *fixture)
		validate func(t *testing.T, product *domain.Product, err error)
	}{
		{
			name: "Produto válido - deve ser gravado com espaços removidos",
			product: func() *domain.Product {
				p := pixel8()
				p.Model = "  Pixel 8 "
				return p
			},
			setup: func(f *fixture) {
				f.productRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *domain.Product) error {
						p.ID = 7
						return nil
					})
			},
			validate: func(t *testing.T, product *domain.Product, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(7), product.ID)
				assert.Equal(t, "Pixel 8", product.Model)
			},
		},
		{
			name: "Bateria ausente - deve retornar ML_001",
			product: func() *domain.Product {
				p := pixel8()
				p.Battery = 0
				return p
			},
			setup: func(f *fixture) {},
			validate: func(t *testing.T, product *domain.Product, err error) {
				assert.ErrorIs(t, err, ml.ErrInvalidSpec)
				requireCode(t, err, apiErrors.ErrInvalidSpec)
			},
		},
		{
			name: "Sem marca - deve retornar VAL_002",
			product: func() *domain.Product {
				p := pixel8()
				p.Brand = " "
				return p
			},
			setup: func(f *fixture) {},
			validate: func(t *testing.T, product *domain.Product, err error) {
				requireCode(t, err, apiErrors.ErrMissingRequiredData)
			},
		},
		{
			name:    "Modelo duplicado - deve retornar PRD_002",
			product: pixel8,
			setup: func(f *fixture) {
				f.productRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicate)
			},
			validate: func(t *testing.T, product *domain.Product, err error) {
				assert.ErrorIs(t, err, ErrProductExists)
				requireCode(t, err, apiErrors.ErrProductExists)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			product, err := f.service.AddProduct(context.Background(), tt.product())
			tt.validate(t, product, err)
		})
	}
}

func TestService_AddSales(t *testing.T) {
	tests := []struct {
		name     string
		record   domain.SalesRecord
		setup    func(f *fixture)
		validate func(t *testing.T, err error)
	}{
		{
			name:   "Venda válida - deve ser gravada",
			record: domain.SalesRecord{Model: "Pixel 8", Month: "2024-05", UnitsSold: 1200, Revenue: 958800},
			setup: func(f *fixture) {
				f.productRepo.EXPECT().GetByModel(gomock.Any(), "Pixel 8").Return(pixel8(), nil)
				f.salesRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:   "Mês fora do formato - deve retornar PRD_005",
			record: domain.SalesRecord{Model: "Pixel 8", Month: "05/2024", UnitsSold: 10},
			setup:  func(f *fixture) {},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidMonth)
				requireCode(t, err, apiErrors.ErrInvalidSalesMonth)
			},
		},
		{
			name:   "Unidades negativas - deve retornar VAL_003",
			record: domain.SalesRecord{Model: "Pixel 8", Month: "2024-05", UnitsSold: -1},
			setup:  func(f *fixture) {},
			validate: func(t *testing.T, err error) {
				requireCode(t, err, apiErrors.ErrInvalidFormat)
			},
		},
		{
			name:   "Produto inexistente - deve retornar PRD_001",
			record: domain.SalesRecord{Model: "Pixel 99", Month: "2024-05", UnitsSold: 10},
			setup: func(f *fixture) {
				f.productRepo.EXPECT().GetByModel(gomock.Any(), "Pixel 99").Return(nil, nil)
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrProductNotFound)
				requireCode(t, err, apiErrors.ErrProductNotFound)
			},
		},
		{
			name:   "Mês já registrado - deve retornar PRD_004",
			record: domain.SalesRecord{Model: "Pixel 8", Month: "2024-05", UnitsSold: 10},
			setup: func(f *fixture) {
				f.productRepo.EXPECT().GetByModel(gomock.Any(), "Pixel 8").Return(pixel8(), nil)
				f.salesRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicate)
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrDuplicateSales)
				requireCode(t, err, apiErrors.ErrDuplicateSales)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			record := tt.record
			_, err := f.service.AddSales(context.Background(), &record)
			tt.validate(t, err)
		})
	}
}

func TestService_SeedSampleCatalog(t *testing.T) {
	t.Run("Catálogo vazio - deve carregar produtos e vendas sintéticas", func(t *testing.T) {
		f := newFixture(t)
		f.productRepo.EXPECT().Count(gomock.Any()).Return(0, nil)
		f.productRepo.EXPECT().
			CreateMany(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, products []*domain.Product) (int, error) {
				return len(products), nil
			})
		f.salesRepo.EXPECT().
			CreateMany(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, records []*domain.SalesRecord) (int, error) {
				// o histórico termina no mês anterior ao atual
				assert.Equal(t, "2024-06", records[11].Month)
				return len(records), nil
			})

		result, err := f.service.SeedSampleCatalog(context.Background(), 12)
		require.NoError(t, err)
		assert.Equal(t, 39, result.Products)
		assert.Equal(t, 39*12, result.Sales)
	})

	t.Run("Catálogo existente - não deve gravar nada", func(t *testing.T) {
		f := newFixture(t)
		f.productRepo.EXPECT().Count(gomock.Any()).Return(3, nil)

		result, err := f.service.SeedSampleCatalog(context.Background(), 12)
		require.NoError(t, err)
		assert.Zero(t, result.Products)
	})

	t.Run("Sem meses - deve carregar somente o catálogo", func(t *testing.T) {
		f := newFixture(t)
		f.productRepo.EXPECT().Count(gomock.Any()).Return(0, nil)
		f.productRepo.EXPECT().CreateMany(gomock.Any(), gomock.Any()).Return(39, nil)

		result, err := f.service.SeedSampleCatalog(context.Background(), 0)
		require.NoError(t, err)
		assert.Equal(t, 39, result.Products)
		assert.Zero(t, result.Sales)
	})
}
