package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/dashboard-entregas-vendas/internal/scheduler"
	"github.com/vfg2006/dashboard-entregas-vendas/pkg/apiErrors"
	"github.com/vfg2006/dashboard-entregas-vendas/pkg/log"
)

// Tipos de rotina que podem ser executadas manualmente
const (
	CronJobTypeDigest = "digest"
	CronJobTypeAll    = "all"
)

// CronJobServices contém as rotinas agendadas que podem ser executadas manualmente
type CronJobServices struct {
	DigestService *scheduler.DigestService
}

// RunCronJob executa manualmente uma rotina agendada
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de rotina não especificado", nil)
			return
		}

		log.ForContext(r.Context()).WithField("job", cronType).Info("Execução manual de rotina solicitada")

		switch cronType {
		case CronJobTypeDigest, CronJobTypeAll:
			if services.DigestService == nil {
				apiErrors.WriteError(w, apiErrors.ErrServiceUnavailable, "Serviço de resumo não disponível", nil)
				return
			}
			if err := services.DigestService.TriggerManualRun(); err != nil {
				if errors.Is(err, scheduler.ErrDigestRunning) {
					apiErrors.WriteError(w, apiErrors.ErrJobAlreadyExecuting, "Resumo já em andamento", nil)
					return
				}
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de rotina inválido. Valores aceitos: digest, all", nil)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Rotina iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o estado das rotinas agendadas
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.DigestService != nil {
			status[CronJobTypeDigest] = services.DigestService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
