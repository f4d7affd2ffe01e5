package handler

import (
	"net/http"

	"github.com/Hemanth1845/sales-forecasting/internal/api/handler/router"
	"github.com/Hemanth1845/sales-forecasting/internal/config"
	"github.com/Hemanth1845/sales-forecasting/internal/metrics"
	"github.com/Hemanth1845/sales-forecasting/internal/usecases/advising"
	"github.com/Hemanth1845/sales-forecasting/internal/usecases/authenticating"
	"github.com/Hemanth1845/sales-forecasting/internal/usecases/cataloging"
	"github.com/Hemanth1845/sales-forecasting/internal/usecases/predicting"
	"github.com/Hemanth1845/sales-forecasting/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: StatusHandler(),
		},
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Metrics(m *metrics.Metrics) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: m.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(),
		},
	}
}

func Catalog(service cataloging.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/products",
			Method:      http.MethodPost,
			Handler:     CreateProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:    "/v1/products",
			Method:  http.MethodGet,
			Handler: ListProducts(service),
		},
		{
			Path:    "/v1/products/:model",
			Method:  http.MethodGet,
			Handler: GetProduct(service),
		},
		{
			Path:        "/v1/sales",
			Method:      http.MethodPost,
			Handler:     CreateSales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/sales/import",
			Method:      http.MethodPost,
			Handler:     ImportSales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:    "/v1/dashboard-data",
			Method:  http.MethodGet,
			Handler: GetDashboardData(service),
		},
	}
}

func Predictions(service predicting.SalesPredictor) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/predict/:model",
			Method:  http.MethodGet,
			Handler: PredictSales(service),
		},
		{
			Path:    "/v1/simulate",
			Method:  http.MethodPost,
			Handler: SimulateScenario(service),
		},
		{
			Path:    "/v1/forecast/:model",
			Method:  http.MethodGet,
			Handler: ForecastSales(service),
		},
		{
			Path:    "/v1/feature-importance/:model",
			Method:  http.MethodGet,
			Handler: GetFeatureImportance(service),
		},
		{
			Path:    "/v1/feature-impact/:model",
			Method:  http.MethodGet,
			Handler: GetFeatureImpact(service),
		},
	}
}

func Advising(service advising.Advisor, chatCfg config.Chat) []router.Route {
	llmLimit := middleware.RateLimit(chatCfg.RateLimit, chatCfg.RateBurst)

	return []router.Route{
		{
			Path:        "/v1/chat",
			Method:      http.MethodPost,
			Handler:     Chat(service),
			Middlewares: []func(http.Handler) http.Handler{llmLimit},
		},
		{
			Path:        "/v1/insights/:model/trend-analysis",
			Method:      http.MethodGet,
			Handler:     TrendAnalysis(service),
			Middlewares: []func(http.Handler) http.Handler{llmLimit},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/:type/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
