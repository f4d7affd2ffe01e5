package handler

import (
	"net/http"

	"github.com/Hemanth1845/sales-forecasting/internal/usecases/advising"
	"github.com/Hemanth1845/sales-forecasting/internal/usecases/authenticating"
	"github.com/Hemanth1845/sales-forecasting/internal/usecases/cataloging"
	"github.com/Hemanth1845/sales-forecasting/internal/usecases/predicting"
	"github.com/Hemanth1845/sales-forecasting/pkg/apiErrors"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// handleServiceError traduz os erros tipados dos casos de uso para a resposta da API
func handleServiceError(w http.ResponseWriter, err error, fallbackMessage string) {
	var (
		predictionErr *predicting.PredictionError
		catalogErr    *cataloging.CatalogError
		advisorErr    *advising.AdvisorError
		authErr       *authenticating.AuthError
	)

	switch {
	case errors.As(err, &predictionErr):
		writeCodedError(w, predictionErr.Code, predictionErr, predictionErr.Details)
	case errors.As(err, &catalogErr):
		writeCodedError(w, catalogErr.Code, catalogErr, catalogErr.Details)
	case errors.As(err, &advisorErr):
		writeCodedError(w, advisorErr.Code, advisorErr, advisorErr.Details)
	case errors.As(err, &authErr):
		writeCodedError(w, authErr.Code, authErr, authErr.Details)
	default:
		logrus.WithError(err).Error(fallbackMessage)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallbackMessage, nil)
	}
}

// writeCodedError omite a cadeia de erros do banco na resposta; ela fica apenas no log
func writeCodedError(w http.ResponseWriter, code string, err error, details string) {
	if code != apiErrors.ErrDatabaseOperation {
		apiErrors.WriteError(w, code, err.Error(), nil)
		return
	}

	logrus.WithError(err).WithField("code", code).Error("Erro de banco de dados")

	msg := "Erro ao acessar o banco de dados"
	if details != "" {
		msg += ": " + details
	}
	apiErrors.WriteError(w, code, msg, nil)
}
