package handler

import (
	"net/http"

	"github.com/Hemanth1845/sales-forecasting/internal/domain"
	"github.com/Hemanth1845/sales-forecasting/internal/usecases/cataloging"
	"github.com/Hemanth1845/sales-forecasting/pkg/apiErrors"
	"github.com/Hemanth1845/sales-forecasting/pkg/log"
	"github.com/sirupsen/logrus"
)

const maxImportSize = 10 << 20

func CreateSales(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateSales")

		var record domain.SalesRecord
		if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.AddSales(r.Context(), &record)
		if err != nil {
			handleServiceError(w, err, "Erro ao registrar vendas")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

// ImportSales recebe uma planilha .xlsx ou .csv no campo multipart "file"
func ImportSales(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)
		file, header, err := r.FormFile("file")
		if err != nil {
			logger.WithError(err).Warn("sales: arquivo de importação ausente ou grande demais")
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo multipart 'file' é obrigatório (máximo 10MB)", nil)
			return
		}
		defer file.Close()

		result, err := service.ImportSales(r.Context(), header.Filename, file)
		if err != nil {
			handleServiceError(w, err, "Erro ao importar vendas")
			return
		}

		logger.WithFields(log.Fields{
			"filename": header.Filename,
			"imported": result.Imported,
			"skipped":  result.Skipped,
		}).Info("sales: importação concluída")

		writeJSON(w, http.StatusOK, result)
	}
}

func GetDashboardData(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetDashboardData")

		data, err := service.GetDashboardData(r.Context())
		if err != nil {
			handleServiceError(w, err, "Erro ao montar dashboard")
			return
		}

		writeJSON(w, http.StatusOK, data)
	}
}
