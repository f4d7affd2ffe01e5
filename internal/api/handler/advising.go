package handler

import (
	"net/http"

	"github.com/Hemanth1845/sales-forecasting/internal/usecases/advising"
	"github.com/Hemanth1845/sales-forecasting/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

type ChatRequest struct {
	Query   string `json:"query"`
	Context any    `json:"context,omitempty"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

func Chat(service advising.Advisor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - Chat")

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		answer, err := service.Chat(r.Context(), req.Query, req.Context)
		if err != nil {
			handleServiceError(w, err, "Erro ao consultar o assistente")
			return
		}

		writeJSON(w, http.StatusOK, ChatResponse{Response: answer})
	}
}

func TrendAnalysis(service advising.Advisor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - TrendAnalysis")

		model := httprouter.ParamsFromContext(r.Context()).ByName("model")

		analysis, err := service.AnalyzeSalesTrend(r.Context(), model)
		if err != nil {
			handleServiceError(w, err, "Erro ao analisar tendência de vendas")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"model_name": model,
			"analysis":   analysis,
		})
	}
}
