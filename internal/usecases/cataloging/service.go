package cataloging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Hemanth1845/sales-forecasting/infrastructure/migration/seed"
	"github.com/Hemanth1845/sales-forecasting/infrastructure/repository"
	"github.com/Hemanth1845/sales-forecasting/internal/domain"
	"github.com/Hemanth1845/sales-forecasting/internal/ml"
	"github.com/Hemanth1845/sales-forecasting/pkg/apiErrors"
	"github.com/Hemanth1845/sales-forecasting/pkg/utils"
	"github.com/sirupsen/logrus"
)

const latestPredictionsLimit = 5

type Cataloger interface {
	AddProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetProduct(ctx context.Context, modelName string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	AddSales(ctx context.Context, record *domain.SalesRecord) (*domain.SalesRecord, error)
	ImportSales(ctx context.Context, filename string, file io.Reader) (*domain.ImportResult, error)
	GetDashboardData(ctx context.Context) (*domain.DashboardData, error)
	SeedSampleCatalog(ctx context.Context, salesMonths int) (*SeedResult, error)
}

// SeedResult resume a carga do catálogo de exemplo
type SeedResult struct {
	Products int `json:"products"`
	Sales    int `json:"sales"`
}

type Service struct {
	productRepo    repository.ProductRepository
	salesRepo      repository.SalesRepository
	predictionRepo repository.PredictionRepository
	now            func() time.Time
}

func NewService(
	productRepo repository.ProductRepository,
	salesRepo repository.SalesRepository,
	predictionRepo repository.PredictionRepository,
) Cataloger {
	return &Service{
		productRepo:    productRepo,
		salesRepo:      salesRepo,
		predictionRepo: predictionRepo,
		now:            time.Now,
	}
}

func (s *Service) AddProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	product.Brand = strings.TrimSpace(product.Brand)
	product.Model = strings.TrimSpace(product.Model)

	if product.Brand == "" || product.Model == "" {
		return nil, NewCatalogError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "marca e modelo são obrigatórios")
	}

	if _, err := ml.Build(*product); err != nil {
		return nil, NewCatalogError(err, apiErrors.ErrInvalidSpec, product.Model)
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewCatalogError(ErrProductExists, apiErrors.ErrProductExists, product.Model)
		}
		return nil, NewCatalogError(fmt.Errorf("%w: %w", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "erro ao gravar produto")
	}

	logrus.WithField("model", product.Model).Info("Produto cadastrado")
	return product, nil
}

func (s *Service) GetProduct(ctx context.Context, modelName string) (*domain.Product, error) {
	product, err := s.productRepo.GetByModel(ctx, modelName)
	if err != nil {
		return nil, NewCatalogError(fmt.Errorf("%w: %w", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "erro ao consultar produto")
	}
	if product == nil {
		return nil, NewCatalogError(ErrProductNotFound, apiErrors.ErrProductNotFound, modelName)
	}
	return product, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, NewCatalogError(fmt.Errorf("%w: %w", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "erro ao listar produtos")
	}
	if products == nil {
		products = []*domain.Product{}
	}
	return products, nil
}

func (s *Service) AddSales(ctx context.Context, record *domain.SalesRecord) (*domain.SalesRecord, error) {
	if err := validateSales(record); err != nil {
		return nil, err
	}

	if _, err := s.GetProduct(ctx, record.Model); err != nil {
		return nil, err
	}

	if err := s.salesRepo.Create(ctx, record); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewCatalogError(ErrDuplicateSales, apiErrors.ErrDuplicateSales, fmt.Sprintf("%s %s", record.Model, record.Month))
		}
		return nil, NewCatalogError(fmt.Errorf("%w: %w", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "erro ao gravar vendas")
	}

	return record, nil
}

// SeedSampleCatalog carrega o catálogo de exemplo quando o banco está vazio.
// Com salesMonths > 0 também gera um histórico sintético para os produtos inseridos.
func (s *Service) SeedSampleCatalog(ctx context.Context, salesMonths int) (*SeedResult, error) {
	count, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, NewCatalogError(fmt.Errorf("%w: %w", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "erro ao contar produtos")
	}

	result := &SeedResult{}
	if count > 0 {
		logrus.WithField("products", count).Info("Catálogo já possui produtos, carga de exemplo ignorada")
		return result, nil
	}

	catalog := seed.SampleCatalog()
	inserted, err := s.productRepo.CreateMany(ctx, catalog)
	if err != nil {
		return nil, NewCatalogError(fmt.Errorf("%w: %w", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "erro ao gravar catálogo de exemplo")
	}
	result.Products = inserted

	if salesMonths > 0 {
		records := seed.SyntheticSales(catalog, salesMonths, s.now().AddDate(0, -1, 0))
		sales, err := s.salesRepo.CreateMany(ctx, records)
		if err != nil {
			return nil, NewCatalogError(fmt.Errorf("%w: %w", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "erro ao gravar vendas de exemplo")
		}
		result.Sales = sales
	}

	logrus.WithFields(logrus.Fields{
		"products": result.Products,
		"sales":    result.Sales,
	}).Info("Catálogo de exemplo carregado")

	return result, nil
}

func validateSales(record *domain.SalesRecord) error {
	record.Model = strings.TrimSpace(record.Model)
	record.Month = strings.TrimSpace(record.Month)

	if record.Model == "" || record.Month == "" {
		return NewCatalogError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "modelo e mês são obrigatórios")
	}

	if _, err := utils.ParseMonth(record.Month); err != nil {
		return NewCatalogError(ErrInvalidMonth, apiErrors.ErrInvalidSalesMonth, record.Month)
	}

	if record.UnitsSold < 0 || record.Revenue < 0 {
		return NewCatalogError(ErrInvalidSales, apiErrors.ErrInvalidFormat, "unidades e receita não podem ser negativas")
	}

	return nil
}
