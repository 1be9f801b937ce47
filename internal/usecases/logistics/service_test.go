package logistics

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/dashboard-entregas-vendas/internal/config"
	"github.com/vfg2006/dashboard-entregas-vendas/internal/domain"
)

var allColumns = []domain.Column{
	domain.ColumnRoute,
	domain.ColumnDistanceKm,
	domain.ColumnFreightCost,
	domain.ColumnDeliveryTimeDays,
}

func newService() DeliveryAnalyzer {
	return NewService(config.Alerts{MaxDistanceKm: 600, MinFreightCost: 1000, MaxDeliveryDays: 3})
}

func exampleTable() *domain.DeliveryTable {
	return domain.NewDeliveryTable("Deliveries", allColumns, []domain.DeliveryRecord{
		{Line: 2, Route: "RouteA", DistanceKm: 100, FreightCost: 500, DeliveryTimeDays: 2},
		{Line: 3, Route: "RouteA", DistanceKm: 200, FreightCost: 1200, DeliveryTimeDays: 5},
		{Line: 4, Route: "RouteB", DistanceKm: 50, FreightCost: 300, DeliveryTimeDays: 1},
	})
}

func TestService_RouteCostRanking(t *testing.T) {
	service := newService()

	t.Run("Rotas ordenadas do maior para o menor custo por km", func(t *testing.T) {
		ranking, err := service.RouteCostRanking(exampleTable())
		require.NoError(t, err)

		require.Len(t, ranking, 2)
		assert.Equal(t, domain.RouteCost{Position: 1, Route: "RouteB", MeanCostPerKm: 6.0, Deliveries: 1}, ranking[0])
		assert.Equal(t, "RouteA", ranking[1].Route)
		assert.InDelta(t, 5.5, ranking[1].MeanCostPerKm, 1e-9)
		assert.Equal(t, 2, ranking[1].Position)
	})

	t.Run("Empate desempata pelo nome da rota", func(t *testing.T) {
		table := domain.NewDeliveryTable("Deliveries", allColumns, []domain.DeliveryRecord{
			{Route: "C", DistanceKm: 10, FreightCost: 20, DeliveryTimeDays: 1},
			{Route: "A", DistanceKm: 10, FreightCost: 20, DeliveryTimeDays: 1},
			{Route: "B", DistanceKm: 10, FreightCost: 50, DeliveryTimeDays: 1},
		})

		ranking, err := service.RouteCostRanking(table)
		require.NoError(t, err)

		routes := make([]string, 0, len(ranking))
		for i, cost := range ranking {
			routes = append(routes, cost.Route)
			assert.GreaterOrEqual(t, ranking[0].MeanCostPerKm, cost.MeanCostPerKm, "posição %d", i+1)
		}
		assert.Equal(t, []string{"B", "A", "C"}, routes)
	})

	t.Run("Aba vazia retorna ranking vazio", func(t *testing.T) {
		ranking, err := service.RouteCostRanking(domain.NewDeliveryTable("Deliveries", allColumns, nil))
		require.NoError(t, err)
		assert.NotNil(t, ranking)
		assert.Empty(t, ranking)
	})

	t.Run("Coluna ausente", func(t *testing.T) {
		table := domain.NewDeliveryTable("Deliveries", []domain.Column{domain.ColumnRoute, domain.ColumnDistanceKm}, nil)

		_, err := service.RouteCostRanking(table)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrColumnMissing))
	})
}

func TestService_CorrelationMatrix(t *testing.T) {
	service := newService()

	t.Run("Matriz simétrica com diagonal 1", func(t *testing.T) {
		matrix, err := service.CorrelationMatrix(exampleTable())
		require.NoError(t, err)

		assert.Equal(t, 3, matrix.Rows)
		for i := range matrix.Values {
			assert.Equal(t, domain.Float(1), matrix.Values[i][i])
			for j := range matrix.Values {
				assert.Equal(t, matrix.Values[i][j], matrix.Values[j][i])
				assert.LessOrEqual(t, math.Abs(float64(matrix.Values[i][j])), 1.0+1e-9)
			}
		}

		distanceCost, ok := matrix.Coefficient(domain.ColumnDistanceKm, domain.ColumnFreightCost)
		require.True(t, ok)
		assert.Greater(t, float64(distanceCost), 0.9)
	})

	t.Run("Menos de duas linhas", func(t *testing.T) {
		table := domain.NewDeliveryTable("Deliveries", allColumns, []domain.DeliveryRecord{
			{Route: "A", DistanceKm: 10, FreightCost: 20, DeliveryTimeDays: 1},
		})

		matrix, err := service.CorrelationMatrix(table)
		require.NoError(t, err)
		for i := range matrix.Values {
			for j := range matrix.Values {
				assert.False(t, matrix.Values[i][j].Defined())
			}
		}
	})

	t.Run("Coluna constante", func(t *testing.T) {
		table := domain.NewDeliveryTable("Deliveries", allColumns, []domain.DeliveryRecord{
			{Route: "A", DistanceKm: 10, FreightCost: 20, DeliveryTimeDays: 2},
			{Route: "A", DistanceKm: 20, FreightCost: 45, DeliveryTimeDays: 2},
		})

		matrix, err := service.CorrelationMatrix(table)
		require.NoError(t, err)

		value, _ := matrix.Coefficient(domain.ColumnDistanceKm, domain.ColumnDeliveryTimeDays)
		assert.False(t, value.Defined())
		value, _ = matrix.Coefficient(domain.ColumnDeliveryTimeDays, domain.ColumnDeliveryTimeDays)
		assert.Equal(t, domain.Float(1), value)
	})
}

func TestService_OptimizationAlerts(t *testing.T) {
	table := domain.NewDeliveryTable("Deliveries", allColumns, []domain.DeliveryRecord{
		{Line: 2, Route: "A", DistanceKm: 100, FreightCost: 1500, DeliveryTimeDays: 2},
		{Line: 3, Route: "B", DistanceKm: 700, FreightCost: 5000, DeliveryTimeDays: 9},
		{Line: 4, Route: "C", DistanceKm: 300, FreightCost: 800, DeliveryTimeDays: 5},
		{Line: 5, Route: "D", DistanceKm: 599, FreightCost: 1000, DeliveryTimeDays: 3},
		{Line: 6, Route: "E", DistanceKm: 600, FreightCost: 1001, DeliveryTimeDays: 4},
	})

	alerts, err := newService().OptimizationAlerts(table)
	require.NoError(t, err)

	require.Len(t, alerts, 2)
	assert.Equal(t, domain.DeliveryAlert{
		Line: 2, Route: "A", DistanceKm: 100, FreightCost: 1500, DeliveryTimeDays: 2, Efficiency: 50,
	}, alerts[0])
	assert.Equal(t, 4, alerts[1].Line)
	assert.Equal(t, 60.0, alerts[1].Efficiency)

	for _, alert := range alerts {
		assert.Less(t, alert.DistanceKm, 600.0)
	}

	t.Run("Limites configuráveis", func(t *testing.T) {
		strict := NewService(config.Alerts{MaxDistanceKm: 1000, MinFreightCost: 100, MaxDeliveryDays: 1})

		alerts, err := strict.OptimizationAlerts(table)
		require.NoError(t, err)
		assert.Len(t, alerts, 5)
	})
}

func TestService_CostDistanceSeries(t *testing.T) {
	table := domain.NewDeliveryTable("Deliveries", allColumns, []domain.DeliveryRecord{
		{Route: "B", DistanceKm: 100, FreightCost: 210, DeliveryTimeDays: 1},
		{Route: "A", DistanceKm: 200, FreightCost: 410, DeliveryTimeDays: 2},
		{Route: "B", DistanceKm: 300, FreightCost: 610, DeliveryTimeDays: 3},
		{Route: "A", DistanceKm: 400, FreightCost: 810, DeliveryTimeDays: 4},
		{Route: "C", DistanceKm: 50, FreightCost: 90, DeliveryTimeDays: 1},
	})

	series, err := newService().CostDistanceSeries(table, true)
	require.NoError(t, err)

	require.Len(t, series.Points, 5)
	assert.Equal(t, domain.CostDistancePoint{Route: "B", DistanceKm: 100, FreightCost: 210}, series.Points[0])
	assert.Equal(t, 5, series.Overall.Points)
	assert.True(t, series.Overall.Slope.Defined())

	require.Len(t, series.ByRoute, 3)
	assert.Equal(t, "B", series.ByRoute[0].Route)
	assert.Equal(t, "A", series.ByRoute[1].Route)
	assert.Equal(t, "C", series.ByRoute[2].Route)

	routeB := series.ByRoute[0].Trend
	assert.InDelta(t, 2.0, float64(routeB.Slope), 1e-9)
	assert.InDelta(t, 10.0, float64(routeB.Intercept), 1e-9)
	assert.InDelta(t, 1.0, float64(routeB.RSquared), 1e-9)
	assert.InDelta(t, 1010.0, routeB.Predict(500), 1e-6)

	assert.False(t, series.ByRoute[2].Trend.Slope.Defined(), "um único ponto não define reta")

	t.Run("Sem retas por rota", func(t *testing.T) {
		series, err := newService().CostDistanceSeries(table, false)
		require.NoError(t, err)
		assert.Nil(t, series.ByRoute)
	})
}

func TestService_Summary(t *testing.T) {
	summary, err := newService().Summary(exampleTable())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Deliveries)
	assert.Equal(t, 2, summary.Routes)
	assert.Equal(t, 2000.0, summary.TotalFreightCost)
	assert.Equal(t, 350.0, summary.TotalDistanceKm)
	assert.InDelta(t, (5.0+6.0+6.0)/3, float64(summary.MeanCostPerKm), 1e-9)
	assert.InDelta(t, 8.0/3, float64(summary.MeanDeliveryDays), 1e-9)

	empty, err := newService().Summary(domain.NewDeliveryTable("Deliveries", allColumns, nil))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Deliveries)
	assert.False(t, empty.MeanCostPerKm.Defined())
}

func TestService_MissingFreightCost(t *testing.T) {
	service := newService()
	table := domain.NewDeliveryTable("Deliveries", allColumns, []domain.DeliveryRecord{
		{Line: 2, Route: "A", DistanceKm: 100, FreightCost: domain.Missing(), DeliveryTimeDays: 2},
		{Line: 3, Route: "A", DistanceKm: 100, FreightCost: 500, DeliveryTimeDays: 2},
		{Line: 4, Route: "B", DistanceKm: 50, FreightCost: domain.Missing(), DeliveryTimeDays: 5},
		{Line: 5, Route: "C", DistanceKm: 200, FreightCost: 400, DeliveryTimeDays: 4},
	})

	t.Run("Ranking ignora entregas sem custo", func(t *testing.T) {
		ranking, err := service.RouteCostRanking(table)
		require.NoError(t, err)
		assert.Equal(t, []domain.RouteCost{
			{Position: 1, Route: "A", MeanCostPerKm: 5, Deliveries: 1},
			{Position: 2, Route: "C", MeanCostPerKm: 2, Deliveries: 1},
		}, ranking)
	})

	t.Run("Correlação usa apenas linhas completas", func(t *testing.T) {
		matrix, err := service.CorrelationMatrix(table)
		require.NoError(t, err)
		assert.Equal(t, 2, matrix.Rows)
		assert.Equal(t, domain.Float(1), matrix.Values[0][0])
	})

	t.Run("Alerta com custo ausente serializa null", func(t *testing.T) {
		alerts, err := service.OptimizationAlerts(table)
		require.NoError(t, err)
		require.Len(t, alerts, 2)
		assert.Equal(t, 4, alerts[0].Line)
		assert.False(t, alerts[0].FreightCost.Defined())
		assert.Equal(t, 5, alerts[1].Line)

		out, err := json.Marshal(alerts[0])
		require.NoError(t, err)
		assert.Contains(t, string(out), `"freight_cost":null`)
	})

	t.Run("Série custo x distância ignora entregas sem custo", func(t *testing.T) {
		series, err := service.CostDistanceSeries(table, true)
		require.NoError(t, err)
		assert.Len(t, series.Points, 2)
		assert.Equal(t, 2, series.Overall.Points)
		require.Len(t, series.ByRoute, 2)
		assert.Equal(t, "A", series.ByRoute[0].Route)
		assert.Equal(t, "C", series.ByRoute[1].Route)
	})

	t.Run("Resumo soma apenas os custos preenchidos", func(t *testing.T) {
		summary, err := service.Summary(table)
		require.NoError(t, err)
		assert.Equal(t, 4, summary.Deliveries)
		assert.Equal(t, 900.0, summary.TotalFreightCost)
		assert.InDelta(t, 3.5, float64(summary.MeanCostPerKm), 1e-9)
	})
}

func TestService_MissingColumnUsesSheetHeader(t *testing.T) {
	table := domain.NewDeliveryTable("Entregas", []domain.Column{domain.ColumnRoute}, nil).
		WithHeaders(map[domain.Column]string{domain.ColumnDistanceKm: "Distância (km)"})

	_, err := newService().RouteCostRanking(table)
	require.Error(t, err)

	var datasetErr *domain.DatasetError
	require.True(t, errors.As(err, &datasetErr))
	assert.Equal(t, "Distância (km)", datasetErr.Column)
	assert.Equal(t, "Entregas", datasetErr.Sheet)
}
