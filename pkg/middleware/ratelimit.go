package middleware

import (
	"net/http"

	"github.com/Hemanth1845/sales-forecasting/pkg/apiErrors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// RateLimit limita a taxa de requisições da rota com um token bucket compartilhado
func RateLimit(perSecond float64, burst int) func(http.Handler) http.Handler {
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if perSecond > 0 && !limiter.Allow() {
				logrus.WithField("path", r.URL.Path).Warn("Limite de requisições excedido")
				apiErrors.WriteError(w, apiErrors.ErrTooManyRequests, "Muitas requisições, tente novamente em instantes", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
