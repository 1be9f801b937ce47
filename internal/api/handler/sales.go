package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/dashboard-entregas-vendas/internal/usecases/dashboard"
)

func GetSegmentProducts(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		means, err := service.SegmentProducts(r.Context())
		if err != nil {
			writeQueryError(w, r, dashboard.SectionSegmentProducts, err)
			return
		}
		writeJSON(w, r, http.StatusOK, means)
	}
}

// GetDistributions retorna o boxplot de valores por segmento. Use ?product=X para um único produto
func GetDistributions(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		product := strings.TrimSpace(r.URL.Query().Get("product"))

		distributions, err := service.Distributions(r.Context(), product)
		if err != nil {
			writeQueryError(w, r, dashboard.SectionDistributions, err)
			return
		}
		writeJSON(w, r, http.StatusOK, distributions)
	}
}

// GetMonthlySales retorna a evolução mensal com os totais anuais e os períodos disponíveis
func GetMonthlySales(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		monthly, err := service.Monthly(r.Context())
		if err != nil {
			writeQueryError(w, r, dashboard.SectionMonthly, err)
			return
		}
		writeJSON(w, r, http.StatusOK, monthly)
	}
}

// GetRegions retorna as regiões ordenadas pelo total vendido
func GetRegions(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		regions, err := service.Regions(r.Context())
		if err != nil {
			writeQueryError(w, r, dashboard.SectionRegions, err)
			return
		}
		writeJSON(w, r, http.StatusOK, regions)
	}
}
