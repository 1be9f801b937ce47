// Package logistics calcula os indicadores da aba de entregas
package logistics

import (
	"cmp"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/vfg2006/dashboard-entregas-vendas/internal/config"
	"github.com/vfg2006/dashboard-entregas-vendas/internal/domain"
)

// correlationColumns são as colunas numéricas comparadas na matriz de correlação
var correlationColumns = [3]domain.Column{
	domain.ColumnDistanceKm,
	domain.ColumnFreightCost,
	domain.ColumnDeliveryTimeDays,
}

type DeliveryAnalyzer interface {
	RouteCostRanking(table *domain.DeliveryTable) ([]domain.RouteCost, error)
	CorrelationMatrix(table *domain.DeliveryTable) (domain.CorrelationMatrix, error)
	OptimizationAlerts(table *domain.DeliveryTable) ([]domain.DeliveryAlert, error)
	CostDistanceSeries(table *domain.DeliveryTable, byRoute bool) (domain.CostDistanceSeries, error)
	Summary(table *domain.DeliveryTable) (domain.DeliverySummary, error)
}

type Service struct {
	alerts config.Alerts
}

func NewService(alerts config.Alerts) DeliveryAnalyzer {
	return &Service{alerts: alerts}
}

// RouteCostRanking ordena as rotas pelo custo médio por km, da mais cara para a mais barata.
// Entregas sem custo do frete ficam de fora da média
func (s *Service) RouteCostRanking(table *domain.DeliveryTable) ([]domain.RouteCost, error) {
	if err := table.Require(domain.ColumnRoute, domain.ColumnDistanceKm, domain.ColumnFreightCost); err != nil {
		return nil, err
	}

	costs := make(map[string][]float64)
	for _, record := range table.Records() {
		if !record.HasFreightCost() {
			continue
		}
		costs[record.Route] = append(costs[record.Route], record.CostPerKm())
	}

	ranking := make([]domain.RouteCost, 0, len(costs))
	for route, values := range costs {
		ranking = append(ranking, domain.RouteCost{
			Route:         route,
			MeanCostPerKm: stat.Mean(values, nil),
			Deliveries:    len(values),
		})
	}

	slices.SortFunc(ranking, func(a, b domain.RouteCost) int {
		return cmp.Compare(a.Route, b.Route)
	})
	slices.SortStableFunc(ranking, func(a, b domain.RouteCost) int {
		return cmp.Compare(b.MeanCostPerKm, a.MeanCostPerKm)
	})

	for i := range ranking {
		ranking[i].Position = i + 1
	}

	return ranking, nil
}

// CorrelationMatrix calcula o coeficiente de Pearson entre distância, custo e prazo.
// Só entram as entregas com as três colunas preenchidas
func (s *Service) CorrelationMatrix(table *domain.DeliveryTable) (domain.CorrelationMatrix, error) {
	if err := table.Require(correlationColumns[:]...); err != nil {
		return domain.CorrelationMatrix{}, err
	}

	var series [3][]float64
	for _, record := range table.Records() {
		if !record.HasFreightCost() {
			continue
		}
		series[0] = append(series[0], record.DistanceKm)
		series[1] = append(series[1], record.FreightCost)
		series[2] = append(series[2], record.DeliveryTimeDays)
	}

	rows := len(series[0])
	matrix := domain.CorrelationMatrix{Columns: correlationColumns, Rows: rows}
	for i := range series {
		for j := range series {
			switch {
			case rows < 2:
				matrix.Values[i][j] = domain.Float(math.NaN())
			case i == j:
				matrix.Values[i][j] = 1
			case j < i:
				matrix.Values[i][j] = matrix.Values[j][i]
			case constant(series[i]) || constant(series[j]):
				matrix.Values[i][j] = domain.Float(math.NaN())
			default:
				matrix.Values[i][j] = domain.Float(stat.Correlation(series[i], series[j], nil))
			}
		}
	}

	return matrix, nil
}

// OptimizationAlerts lista entregas curtas com frete caro ou prazo longo, na ordem da aba
func (s *Service) OptimizationAlerts(table *domain.DeliveryTable) ([]domain.DeliveryAlert, error) {
	if err := table.Require(
		domain.ColumnRoute,
		domain.ColumnDistanceKm,
		domain.ColumnFreightCost,
		domain.ColumnDeliveryTimeDays,
	); err != nil {
		return nil, err
	}

	alerts := make([]domain.DeliveryAlert, 0)
	for _, record := range table.Records() {
		if !s.needsAttention(record) {
			continue
		}

		alerts = append(alerts, domain.DeliveryAlert{
			Line:             record.Line,
			Route:            record.Route,
			DistanceKm:       record.DistanceKm,
			FreightCost:      domain.Float(record.FreightCost),
			DeliveryTimeDays: record.DeliveryTimeDays,
			Efficiency:       record.Efficiency(),
		})
	}

	return alerts, nil
}

func (s *Service) needsAttention(record domain.DeliveryRecord) bool {
	if record.DistanceKm >= s.alerts.MaxDistanceKm {
		return false
	}
	return record.FreightCost > s.alerts.MinFreightCost || record.DeliveryTimeDays > s.alerts.MaxDeliveryDays
}

// CostDistanceSeries retorna os pontos custo x distância e a reta de tendência geral.
// Com byRoute, inclui uma reta por rota na ordem em que as rotas aparecem. Entregas sem custo ficam de fora
func (s *Service) CostDistanceSeries(table *domain.DeliveryTable, byRoute bool) (domain.CostDistanceSeries, error) {
	if err := table.Require(domain.ColumnRoute, domain.ColumnDistanceKm, domain.ColumnFreightCost); err != nil {
		return domain.CostDistanceSeries{}, err
	}

	records := table.Records()
	series := domain.CostDistanceSeries{
		Points: make([]domain.CostDistancePoint, 0, len(records)),
	}

	distances := make([]float64, 0, len(records))
	costs := make([]float64, 0, len(records))

	var routes []string
	routeDistances := make(map[string][]float64)
	routeCosts := make(map[string][]float64)

	for _, record := range records {
		if !record.HasFreightCost() {
			continue
		}
		series.Points = append(series.Points, domain.CostDistancePoint{
			Route:       record.Route,
			DistanceKm:  record.DistanceKm,
			FreightCost: record.FreightCost,
		})
		distances = append(distances, record.DistanceKm)
		costs = append(costs, record.FreightCost)

		if _, seen := routeDistances[record.Route]; !seen {
			routes = append(routes, record.Route)
		}
		routeDistances[record.Route] = append(routeDistances[record.Route], record.DistanceKm)
		routeCosts[record.Route] = append(routeCosts[record.Route], record.FreightCost)
	}

	series.Overall = fitTrend(distances, costs)

	if byRoute {
		series.ByRoute = make([]domain.RouteTrend, 0, len(routes))
		for _, route := range routes {
			series.ByRoute = append(series.ByRoute, domain.RouteTrend{
				Route: route,
				Trend: fitTrend(routeDistances[route], routeCosts[route]),
			})
		}
	}

	return series, nil
}

// fitTrend ajusta custo = intercepto + inclinação * distância.
// Menos de dois pontos ou distâncias todas iguais não definem uma reta
func fitTrend(xs, ys []float64) domain.TrendLine {
	line := domain.TrendLine{
		Slope:     domain.Float(math.NaN()),
		Intercept: domain.Float(math.NaN()),
		RSquared:  domain.Float(math.NaN()),
		Points:    len(xs),
	}
	if len(xs) < 2 || constant(xs) {
		return line
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	line.Intercept = domain.Float(alpha)
	line.Slope = domain.Float(beta)
	line.RSquared = domain.Float(stat.RSquared(xs, ys, nil, alpha, beta))

	return line
}

// Summary resume a aba de entregas
func (s *Service) Summary(table *domain.DeliveryTable) (domain.DeliverySummary, error) {
	if err := table.Require(
		domain.ColumnRoute,
		domain.ColumnDistanceKm,
		domain.ColumnFreightCost,
		domain.ColumnDeliveryTimeDays,
	); err != nil {
		return domain.DeliverySummary{}, err
	}

	records := table.Records()
	routes := make(map[string]struct{})
	distances := make([]float64, 0, len(records))
	costs := make([]float64, 0, len(records))
	costPerKm := make([]float64, 0, len(records))
	days := make([]float64, 0, len(records))
	efficiency := make([]float64, 0, len(records))

	for _, record := range records {
		routes[record.Route] = struct{}{}
		distances = append(distances, record.DistanceKm)
		if record.HasFreightCost() {
			costs = append(costs, record.FreightCost)
			costPerKm = append(costPerKm, record.CostPerKm())
		}
		days = append(days, record.DeliveryTimeDays)
		efficiency = append(efficiency, record.Efficiency())
	}

	return domain.DeliverySummary{
		Deliveries:        len(records),
		Routes:            len(routes),
		TotalFreightCost:  floats.Sum(costs),
		MeanCostPerKm:     domain.Float(mean(costPerKm)),
		MeanDeliveryDays:  domain.Float(mean(days)),
		TotalDistanceKm:   floats.Sum(distances),
		MeanEfficiencyDay: domain.Float(mean(efficiency)),
	}, nil
}

// mean é NaN para uma lista vazia
func mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return stat.Mean(values, nil)
}

func constant(values []float64) bool {
	return len(values) > 0 && floats.Min(values) == floats.Max(values)
}
