package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/Hemanth1845/sales-forecasting/internal/metrics"
	"github.com/Hemanth1845/sales-forecasting/pkg/apiErrors"
	"github.com/Hemanth1845/sales-forecasting/pkg/log"
)

const slowRequestThreshold = 500 * time.Millisecond

// LoggingMiddleware registra cada requisição HTTP e alimenta os contadores sales_http_*
func LoggingMiddleware(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context(), r.Header.Get(log.RequestIDHeader))
			r = r.WithContext(ctx)
			w.Header().Set(log.RequestIDHeader, correlationID)

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			requestLogger(r, correlationID).Debug("Requisição recebida")

			next.ServeHTTP(sw, r)

			elapsed := time.Since(start)
			if m != nil {
				m.HTTPRequests.WithLabelValues(r.Method, strconv.Itoa(sw.status)).Inc()
				m.HTTPDuration.WithLabelValues(r.Method).Observe(elapsed.Seconds())
			}

			logCompletion(r, correlationID, sw.status, elapsed)
		})
	}
}

func requestLogger(r *http.Request, correlationID string) log.Logger {
	fields := log.Fields{
		"correlation_id": correlationID,
		"method":         r.Method,
		"path":           r.URL.Path,
	}
	if !log.IsDevelopment() {
		fields["remote_addr"] = r.RemoteAddr
		fields["query"] = r.URL.RawQuery
		fields["user_agent"] = r.UserAgent()
		fields["content_length"] = r.ContentLength
	}
	return log.L.WithFields(fields)
}

func logCompletion(r *http.Request, correlationID string, status int, elapsed time.Duration) {
	logger := requestLogger(r, correlationID).WithFields(log.Fields{
		"status_code": status,
		"duration_ms": elapsed.Milliseconds(),
	})

	msg := fmt.Sprintf("%s %s -> %d em %s", r.Method, r.URL.Path, status, formatDuration(elapsed))
	switch {
	case status >= http.StatusInternalServerError:
		logger.Error(msg)
	case status >= http.StatusBadRequest:
		logger.Warn(msg)
	default:
		logger.Info(msg)
	}

	if elapsed > slowRequestThreshold {
		logger.Warnf("Requisição lenta: %s", formatDuration(elapsed))
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// statusWriter guarda o status enviado ao cliente
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware converte panics em SRV_001 sem derrubar o servidor
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				logger := log.L.WithFields(log.Fields{
					"correlation_id": log.GetCorrelationID(r.Context()),
					"method":         r.Method,
					"path":           r.URL.Path,
					"error":          rec,
				})
				logger.Error("Panic ao processar requisição")
				logger.Debugf("Stack trace:\n%s", debug.Stack())

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
