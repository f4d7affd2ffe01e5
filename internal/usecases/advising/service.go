package advising

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Hemanth1845/sales-forecasting/infrastructure/integrator/gemini"
	"github.com/Hemanth1845/sales-forecasting/infrastructure/repository"
	"github.com/Hemanth1845/sales-forecasting/internal/domain"
	"github.com/Hemanth1845/sales-forecasting/internal/metrics"
	"github.com/Hemanth1845/sales-forecasting/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

const topFeatureImportance = 5

var (
	ErrEmptyQuery        = errors.New("pergunta é obrigatória")
	ErrProductNotFound   = errors.New("produto não encontrado")
	ErrAdvisorFailed     = errors.New("erro ao gerar análise")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// AdvisorError carrega o código de API associado à falha
type AdvisorError struct {
	Err     error
	Code    string
	Details string
}

func (e *AdvisorError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AdvisorError) Unwrap() error {
	return e.Err
}

// ChatContext é o contexto enviado junto com a pergunta
type ChatContext struct {
	SalesSummary      *domain.SalesSummary            `json:"sales_summary"`
	FeatureImportance []domain.FeatureImportanceEntry `json:"feature_importance"`
	QueryContext      any                             `json:"query_context,omitempty"`
}

type Advisor interface {
	Chat(ctx context.Context, query string, queryContext any) (string, error)
	AnalyzeSalesTrend(ctx context.Context, modelName string) (string, error)
}

type Service struct {
	productRepo    repository.ProductRepository
	salesRepo      repository.SalesRepository
	importanceRepo repository.FeatureImportanceRepository
	gemini         gemini.GeminiIntegrator
	metrics        *metrics.Metrics
}

func NewService(
	productRepo repository.ProductRepository,
	salesRepo repository.SalesRepository,
	importanceRepo repository.FeatureImportanceRepository,
	geminiService gemini.GeminiIntegrator,
	m *metrics.Metrics,
) Advisor {
	return &Service{
		productRepo:    productRepo,
		salesRepo:      salesRepo,
		importanceRepo: importanceRepo,
		gemini:         geminiService,
		metrics:        m,
	}
}

func (s *Service) Chat(ctx context.Context, query string, queryContext any) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", &AdvisorError{Err: ErrEmptyQuery, Code: apiErrors.ErrMissingRequiredData, Details: "query"}
	}

	summary, err := s.salesRepo.Summary(ctx)
	if err != nil {
		return "", databaseError(err, "erro ao resumir vendas")
	}

	ranking, err := s.importanceRepo.ListLatestRanking(ctx, topFeatureImportance)
	if err != nil {
		return "", databaseError(err, "erro ao consultar importância dos atributos")
	}

	answer, err := s.gemini.GenerateResponse(ctx, query, ChatContext{
		SalesSummary:      summary,
		FeatureImportance: ranking,
		QueryContext:      queryContext,
	})
	s.metrics.LLMRequestsTotal.WithLabelValues("chat", metrics.Result(err)).Inc()
	if err != nil {
		logrus.WithError(err).Error("Erro ao consultar o assistente")
		return "", &AdvisorError{Err: fmt.Errorf("%w: %w", ErrAdvisorFailed, err), Code: apiErrors.ErrExternalService}
	}

	return answer, nil
}

func (s *Service) AnalyzeSalesTrend(ctx context.Context, modelName string) (string, error) {
	product, err := s.productRepo.GetByModel(ctx, modelName)
	if err != nil {
		return "", databaseError(err, "erro ao consultar produto")
	}
	if product == nil {
		return "", &AdvisorError{Err: ErrProductNotFound, Code: apiErrors.ErrProductNotFound, Details: modelName}
	}

	sales, err := s.salesRepo.ListByModel(ctx, modelName)
	if err != nil {
		return "", databaseError(err, "erro ao consultar vendas do modelo")
	}

	importance, err := s.importanceRepo.ListByModel(ctx, modelName)
	if err != nil {
		return "", databaseError(err, "erro ao consultar importância dos atributos")
	}

	trend := make([]domain.MonthlySales, len(sales))
	for i, r := range sales {
		trend[i] = domain.MonthlySales{Month: r.Month, UnitsSold: r.UnitsSold, Revenue: r.Revenue}
	}

	analysis, err := s.gemini.AnalyzeSalesTrend(ctx, map[string]any{
		"product": product,
		"sales":   trend,
	}, importance)
	s.metrics.LLMRequestsTotal.WithLabelValues("trend_analysis", metrics.Result(err)).Inc()
	if err != nil {
		logrus.WithError(err).WithField("model", modelName).Error("Erro na análise de tendência")
		return "", &AdvisorError{Err: fmt.Errorf("%w: %w", ErrAdvisorFailed, err), Code: apiErrors.ErrExternalService}
	}

	return analysis, nil
}

func databaseError(err error, details string) *AdvisorError {
	return &AdvisorError{
		Err:     fmt.Errorf("%w: %w", ErrDatabaseOperation, err),
		Code:    apiErrors.ErrDatabaseOperation,
		Details: details,
	}
}
