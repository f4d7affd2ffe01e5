package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa os contadores expostos em /metrics
type Metrics struct {
	registry *prometheus.Registry

	TrainingTotal    *prometheus.CounterVec
	TrainingDuration prometheus.Histogram
	PredictionsTotal *prometheus.CounterVec
	EnsembleCache    *prometheus.CounterVec
	AttributionTotal *prometheus.CounterVec
	LLMRequestsTotal *prometheus.CounterVec
	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
}

// New cria um registro próprio para que cada instância seja independente
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		TrainingTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_ensemble_training_total",
				Help: "Total de treinamentos do ensemble por resultado",
			},
			[]string{"result"},
		),
		TrainingDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "sales_ensemble_training_duration_seconds",
			Help:    "Duração do treinamento do ensemble",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
		PredictionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_predictions_total",
				Help: "Total de previsões servidas por tipo",
			},
			[]string{"kind"},
		),
		EnsembleCache: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_ensemble_cache_total",
				Help: "Consultas ao cache de ensembles treinados",
			},
			[]string{"result"},
		),
		AttributionTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_attribution_total",
				Help: "Relatórios de atribuição por estratégia efetivamente usada",
			},
			[]string{"strategy"},
		),
		LLMRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_llm_requests_total",
				Help: "Requisições ao provedor de LLM por operação e resultado",
			},
			[]string{"operation", "result"},
		),
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_http_requests_total",
				Help: "Requisições HTTP por método e status",
			},
			[]string{"method", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sales_http_request_duration_seconds",
				Help:    "Latência das requisições HTTP por método",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Result traduz um erro no rótulo usado pelos contadores
func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
