package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/muramets/Believe/internal/scheduler"
	"github.com/muramets/Believe/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeCleanup = "cleanup"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	StatementCleanupService *scheduler.StatementCleanupService
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

		switch cronType {
		case CronJobTypeCleanup:
			if services.StatementCleanupService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de limpeza de extratos não disponível", nil)
				return
			}
			services.StatementCleanupService.TriggerManualCleanup()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: cleanup", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		respondJSON(w, http.StatusOK, response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.StatementCleanupService != nil {
			status["cleanup"] = services.StatementCleanupService.GetStatus()
		}

		respondJSON(w, http.StatusOK, status)
	}
}
