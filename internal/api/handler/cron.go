package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/booker-targets-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeTargets = "targets"
	CronJobTypeAll     = "all"
)

// ReconciliationTrigger é o agendador que pode ser disparado manualmente
type ReconciliationTrigger interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	TargetReconciliationSyncService ReconciliationTrigger
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		if cronType != CronJobTypeTargets && cronType != CronJobTypeAll {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: targets, all", nil)
			return
		}

		if services.TargetReconciliationSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de reconciliação de metas não disponível", nil)
			return
		}

		started := services.TargetReconciliationSyncService.TriggerManualSync()

		message := "Cron job iniciada com sucesso"
		if !started {
			message = "Cron job já está em execução"
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": message,
			"type":    cronType,
			"started": started,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.TargetReconciliationSyncService != nil {
			status[CronJobTypeTargets] = services.TargetReconciliationSyncService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	})
}
