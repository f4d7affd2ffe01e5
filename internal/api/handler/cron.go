package handler

import (
	"net/http"

	"github.com/Hemanth1845/sales-forecasting/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

const (
	CronJobTypeModelRetrain = "model-retrain"
)

// SyncJob é implementado pelos agendadores do pacote scheduler
type SyncJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	ModelRetrainSyncService SyncJob
}

func (s CronJobServices) job(cronType string) (SyncJob, bool) {
	switch cronType {
	case CronJobTypeModelRetrain:
		return s.ModelRetrainSyncService, s.ModelRetrainSyncService != nil
	}
	return nil, false
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		job, ok := services.job(cronType)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: "+CronJobTypeModelRetrain, nil)
			return
		}

		if !job.TriggerManualSync() {
			writeJSON(w, http.StatusConflict, map[string]any{
				"message": "Cron job já está em execução",
				"type":    cronType,
			})
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status de uma cron job
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		job, ok := services.job(cronType)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: "+CronJobTypeModelRetrain, nil)
			return
		}

		writeJSON(w, http.StatusOK, job.GetStatus())
	}
}
