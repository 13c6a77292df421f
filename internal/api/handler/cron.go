package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mko-api/internal/scheduler"
	"github.com/vfg2006/mko-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeTokenCleanup = "token-cleanup"
	CronJobTypeAll          = "all"
)

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	TokenCleanupService *scheduler.TokenCleanupService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := pathParam(r, "type")

		logrus.WithField("job", cronType).Info("Execução manual de cron job solicitada")

		switch cronType {
		case CronJobTypeTokenCleanup, CronJobTypeAll:
			if services.TokenCleanupService == nil {
				logrus.Error("Serviço de limpeza de tokens não disponível")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, apiErrors.MsgInternal, nil)
				return
			}
			services.TokenCleanupService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrUnknownCronType, codeMessages[apiErrors.ErrUnknownCronType], map[string]any{
				"accepted": []string{CronJobTypeTokenCleanup, CronJobTypeAll},
			})
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"ok":   true,
			"type": cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.TokenCleanupService != nil {
			status[CronJobTypeTokenCleanup] = services.TokenCleanupService.GetStatus()
		}

		writeOK(w, map[string]any{"ok": true, "jobs": status})
	}
}
