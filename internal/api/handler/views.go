package handler

import (
	"net/http"

	"github.com/vfg2006/dashboard-entregas-vendas/internal/usecases/dashboard"
	"github.com/vfg2006/dashboard-entregas-vendas/pkg/log"
)

// ListViews retorna as visões disponíveis no dashboard
func ListViews(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.Views())
	}
}

// GetDeliveriesView retorna a visão de entregas com todas as seções
func GetDeliveriesView(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := service.DeliveriesView(r.Context())
		if err != nil {
			writeQueryError(w, r, "view", err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"view":       view.ID,
			"dataset_id": view.DatasetID,
		}).Debug("Visão de entregas montada")

		writeJSON(w, r, http.StatusOK, view)
	}
}

// GetSalesView retorna a visão de vendas com todas as seções
func GetSalesView(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := service.SalesView(r.Context())
		if err != nil {
			writeQueryError(w, r, "view", err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"view":       view.ID,
			"dataset_id": view.DatasetID,
		}).Debug("Visão de vendas montada")

		writeJSON(w, r, http.StatusOK, view)
	}
}

// GetHeadlines retorna os destaques usados no texto das visões
func GetHeadlines(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		headlines, err := service.Headlines(r.Context())
		if err != nil {
			writeQueryError(w, r, "headlines", err)
			return
		}

		writeJSON(w, r, http.StatusOK, headlines)
	}
}
