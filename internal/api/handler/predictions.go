package handler

import (
	"net/http"
	"strconv"

	"github.com/Hemanth1845/sales-forecasting/internal/domain"
	"github.com/Hemanth1845/sales-forecasting/internal/usecases/predicting"
	"github.com/Hemanth1845/sales-forecasting/pkg/apiErrors"
	"github.com/Hemanth1845/sales-forecasting/pkg/log"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// PredictSales treina (ou reaproveita) o ensemble e grava a previsão híbrida do modelo.
// O submodelo pode ser escolhido com ?variant=gradient_boosting|random_forest.
func PredictSales(service predicting.SalesPredictor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		model := httprouter.ParamsFromContext(r.Context()).ByName("model")
		variant := r.URL.Query().Get("variant")

		outcome, err := service.PredictSales(r.Context(), model, variant)
		if err != nil {
			logger.WithError(err).WithField("model_name", model).Warn("predict: falha na previsão")
			handleServiceError(w, err, "Erro ao gerar previsão")
			return
		}

		logger.WithFields(log.Fields{
			"model_name":      model,
			"predicted_sales": outcome.PredictedSales,
		}).Info("predict: previsão gerada")

		writeJSON(w, http.StatusOK, outcome)
	}
}

func SimulateScenario(service predicting.SalesPredictor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SimulateScenario")

		var req domain.SimulationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.ModelName == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "model_name é obrigatório", nil)
			return
		}

		result, err := service.Simulate(r.Context(), req)
		if err != nil {
			handleServiceError(w, err, "Erro ao simular cenário")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func ForecastSales(service predicting.SalesPredictor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ForecastSales")

		model := httprouter.ParamsFromContext(r.Context()).ByName("model")

		periods := 0
		if raw := r.URL.Query().Get("periods"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidHorizon, "periods deve ser um inteiro positivo", nil)
				return
			}
			periods = parsed
		}

		forecast, err := service.ForecastSales(r.Context(), model, periods)
		if err != nil {
			handleServiceError(w, err, "Erro ao gerar projeção")
			return
		}

		writeJSON(w, http.StatusOK, forecast)
	}
}

func GetFeatureImportance(service predicting.SalesPredictor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetFeatureImportance")

		model := httprouter.ParamsFromContext(r.Context()).ByName("model")

		entries, err := service.GetFeatureImportance(r.Context(), model)
		if err != nil {
			handleServiceError(w, err, "Erro ao buscar importância dos atributos")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"model_name":         model,
			"feature_importance": entries,
		})
	}
}

func GetFeatureImpact(service predicting.SalesPredictor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetFeatureImpact")

		model := httprouter.ParamsFromContext(r.Context()).ByName("model")

		report, err := service.ExplainPrediction(r.Context(), model)
		if err != nil {
			handleServiceError(w, err, "Erro ao calcular o impacto dos atributos")
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}
