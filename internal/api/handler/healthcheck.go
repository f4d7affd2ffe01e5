package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const healthcheckTimeout = 2 * time.Second

// Pinger é satisfeito pela conexão com o banco
type Pinger interface {
	Ping(ctx context.Context) error
}

type StatusResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Time    string `json:"time"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Time     string `json:"time"`
}

func StatusHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, StatusResponse{
			Message: "Smartphone Sales Prediction API",
			Status:  "running",
			Time:    time.Now().Format(time.RFC3339),
		})
	})
}

// HealthcheckHandler responde 503 quando o banco não responde ao ping
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{Status: "ok", Database: "skipped", Time: time.Now().Format(time.RFC3339)}
		status := http.StatusOK

		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
			defer cancel()

			resp.Database = "up"
			if err := db.Ping(ctx); err != nil {
				logrus.WithError(err).Warn("Healthcheck: banco de dados indisponível")
				resp.Status = "degraded"
				resp.Database = "down"
				status = http.StatusServiceUnavailable
			}
		}

		writeJSON(w, status, resp)
	})
}
