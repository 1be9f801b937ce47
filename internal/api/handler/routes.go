package handler

import (
	"net/http"

	"github.com/vfg2006/dashboard-entregas-vendas/internal/api/handler/router"
	"github.com/vfg2006/dashboard-entregas-vendas/internal/usecases/dashboard"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Views(service dashboard.Dashboard) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/views",
			Method:  http.MethodGet,
			Handler: ListViews(service),
		},
		{
			Path:    "/v1/views/deliveries",
			Method:  http.MethodGet,
			Handler: GetDeliveriesView(service),
		},
		{
			Path:    "/v1/views/sales",
			Method:  http.MethodGet,
			Handler: GetSalesView(service),
		},
		{
			Path:    "/v1/headlines",
			Method:  http.MethodGet,
			Handler: GetHeadlines(service),
		},
	}
}

func Deliveries(service dashboard.Dashboard) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/deliveries/summary",
			Method:  http.MethodGet,
			Handler: GetDeliverySummary(service),
		},
		{
			Path:    "/v1/deliveries/route-costs",
			Method:  http.MethodGet,
			Handler: GetRouteCosts(service),
		},
		{
			Path:    "/v1/deliveries/correlation",
			Method:  http.MethodGet,
			Handler: GetCorrelation(service),
		},
		{
			Path:    "/v1/deliveries/alerts",
			Method:  http.MethodGet,
			Handler: GetAlerts(service),
		},
		{
			Path:    "/v1/deliveries/cost-distance",
			Method:  http.MethodGet,
			Handler: GetCostDistance(service),
		},
	}
}

func Sales(service dashboard.Dashboard) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales/segment-products",
			Method:  http.MethodGet,
			Handler: GetSegmentProducts(service),
		},
		{
			Path:    "/v1/sales/distribution",
			Method:  http.MethodGet,
			Handler: GetDistributions(service),
		},
		{
			Path:    "/v1/sales/monthly",
			Method:  http.MethodGet,
			Handler: GetMonthlySales(service),
		},
		{
			Path:    "/v1/sales/regions",
			Method:  http.MethodGet,
			Handler: GetRegions(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
