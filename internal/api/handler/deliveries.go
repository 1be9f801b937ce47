package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/dashboard-entregas-vendas/internal/usecases/dashboard"
	"github.com/vfg2006/dashboard-entregas-vendas/pkg/apiErrors"
)

func GetDeliverySummary(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Summary(r.Context())
		if err != nil {
			writeQueryError(w, r, dashboard.SectionSummary, err)
			return
		}
		writeJSON(w, r, http.StatusOK, summary)
	}
}

// GetRouteCosts retorna as rotas ordenadas pelo custo médio por km
func GetRouteCosts(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ranking, err := service.RouteCosts(r.Context())
		if err != nil {
			writeQueryError(w, r, dashboard.SectionRouteCosts, err)
			return
		}
		writeJSON(w, r, http.StatusOK, ranking)
	}
}

func GetCorrelation(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matrix, err := service.Correlation(r.Context())
		if err != nil {
			writeQueryError(w, r, dashboard.SectionCorrelation, err)
			return
		}
		writeJSON(w, r, http.StatusOK, matrix)
	}
}

// GetAlerts retorna as entregas com oportunidade de otimização
func GetAlerts(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		alerts, err := service.Alerts(r.Context())
		if err != nil {
			writeQueryError(w, r, dashboard.SectionAlerts, err)
			return
		}
		writeJSON(w, r, http.StatusOK, alerts)
	}
}

// GetCostDistance retorna a série custo x distância. Use ?by_route=true para incluir uma reta por rota
func GetCostDistance(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		byRoute := false
		if value := r.URL.Query().Get("by_route"); value != "" {
			parsed, err := strconv.ParseBool(value)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro by_route deve ser true ou false", nil)
				return
			}
			byRoute = parsed
		}

		series, err := service.CostDistance(r.Context(), byRoute)
		if err != nil {
			writeQueryError(w, r, dashboard.SectionCostDistance, err)
			return
		}
		writeJSON(w, r, http.StatusOK, series)
	}
}
