package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/Hemanth1845/sales-forecasting/internal/domain"
	"github.com/Hemanth1845/sales-forecasting/internal/metrics"
	"github.com/Hemanth1845/sales-forecasting/internal/usecases/authenticating"
	"github.com/Hemanth1845/sales-forecasting/pkg/apiErrors"
	"github.com/Hemanth1845/sales-forecasting/pkg/log"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthenticator struct {
	enabled bool
	claims  *domain.Claims
	err     error
}

func (s stubAuthenticator) Enabled() bool { return s.enabled }

func (s stubAuthenticator) LoginUser(context.Context, string, string) (string, error) {
	return "", nil
}

func (s stubAuthenticator) ValidateToken(string) (*domain.Claims, error) {
	return s.claims, s.err
}

func (s stubAuthenticator) EnsureAdmin(context.Context) (bool, error) { return false, nil }

// echoClaims devolve 200 e o role do usuário autenticado no header X-Role
func echoClaims() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := ClaimsFromContext(r.Context()); ok {
			w.Header().Set("X-Role", strconv.Itoa(claims.UserRoleID))
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	analyst := &domain.Claims{UserID: 2, UserRoleID: domain.RoleAnalyst}

	tests := []struct {
		name           string
		auth           stubAuthenticator
		path           string
		header         string
		expectedStatus int
		expectedRole   string
	}{
		{
			name:           "Rota pública - deve passar sem token",
			auth:           stubAuthenticator{enabled: true},
			path:           "/healthcheck",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Autenticação desabilitada - deve injetar administrador local",
			auth:           stubAuthenticator{enabled: false},
			path:           "/v1/predict",
			expectedStatus: http.StatusOK,
			expectedRole:   "1",
		},
		{
			name:           "Sem header - deve retornar 401",
			auth:           stubAuthenticator{enabled: true},
			path:           "/v1/predict",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Header sem Bearer - deve retornar 401",
			auth:           stubAuthenticator{enabled: true},
			path:           "/v1/predict",
			header:         "Basic abc",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Bearer sem token - deve retornar 401",
			auth:           stubAuthenticator{enabled: true, claims: analyst},
			path:           "/v1/predict",
			header:         "Bearer   ",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Esquema em minúsculas - deve aceitar",
			auth:           stubAuthenticator{enabled: true, claims: analyst},
			path:           "/v1/predict",
			header:         "bearer bom",
			expectedStatus: http.StatusOK,
			expectedRole:   "3",
		},
		{
			name:           "Token expirado - deve retornar 401",
			auth:           stubAuthenticator{enabled: true, err: authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, "")},
			path:           "/v1/predict",
			header:         "Bearer velho",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Token válido - deve propagar claims",
			auth:           stubAuthenticator{enabled: true, claims: analyst},
			path:           "/v1/predict",
			header:         "Bearer bom",
			expectedStatus: http.StatusOK,
			expectedRole:   "3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			AuthMiddleware(tt.auth)(echoClaims()).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedRole, rr.Header().Get("X-Role"))
		})
	}
}

func TestAdminOnly(t *testing.T) {
	tests := []struct {
		name           string
		claims         *domain.Claims
		expectedStatus int
	}{
		{name: "Administrador - deve passar", claims: &domain.Claims{UserRoleID: domain.RoleAdmin}, expectedStatus: http.StatusOK},
		{name: "Analista - deve retornar 403", claims: &domain.Claims{UserRoleID: domain.RoleAnalyst}, expectedStatus: http.StatusForbidden},
		{name: "Sem usuário - deve retornar 401", claims: nil, expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/cron/model-retrain", nil)
			if tt.claims != nil {
				req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, tt.claims))
			}
			rr := httptest.NewRecorder()

			AdminOnly()(echoClaims()).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestRateLimit(t *testing.T) {
	handler := RateLimit(0.001, 2)(echoClaims())

	codes := make([]int, 0, 3)
	for range 3 {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/v1/chat", nil))
		codes = append(codes, rr.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimit_Disabled(t *testing.T) {
	handler := RateLimit(0, 1)(echoClaims())

	for range 5 {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/v1/chat", nil))
		require.Equal(t, http.StatusOK, rr.Code)
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:8501"})(echoClaims())

	t.Run("Origem permitida - deve ecoar a origem", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
		req.Header.Set("Origin", "http://localhost:8501")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, "http://localhost:8501", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Origem desconhecida - não deve liberar", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
		req.Header.Set("Origin", "http://evil.local")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight - deve responder 200 sem chamar o handler", func(t *testing.T) {
		called := false
		preflight := Cors([]string{"*"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))
		req := httptest.NewRequest(http.MethodOptions, "/v1/predict", nil)
		req.Header.Set("Origin", "http://qualquer.local")
		rr := httptest.NewRecorder()

		preflight.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.False(t, called)
		assert.Equal(t, "http://qualquer.local", rr.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestLoggingMiddleware(t *testing.T) {
	m := metrics.New()
	handler := LoggingMiddleware(m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-1", log.GetCorrelationID(r.Context()))
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/products/x", nil)
	req.Header.Set(log.RequestIDHeader, "req-1")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "req-1", rr.Header().Get(log.RequestIDHeader))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.HTTPDuration))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "250 µs", formatDuration(250*time.Microsecond))
	assert.Equal(t, "42 ms", formatDuration(42*time.Millisecond))
	assert.Equal(t, "1.50 s", formatDuration(1500*time.Millisecond))
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falhou")
	}))
	rr := httptest.NewRecorder()

	require.NotPanics(t, func() {
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), apiErrors.ErrInternalServer)
}
