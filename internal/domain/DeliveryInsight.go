package domain

// RouteCost é o custo médio por km de uma rota. Position começa em 1 (rota mais cara)
type RouteCost struct {
	Position      int     `json:"position"`
	Route         string  `json:"route"`
	MeanCostPerKm float64 `json:"mean_cost_per_km"`
	Deliveries    int     `json:"deliveries"`
}

// CorrelationMatrix guarda o coeficiente de Pearson entre distância, custo e prazo
type CorrelationMatrix struct {
	Columns [3]Column   `json:"columns"`
	Values  [3][3]Float `json:"values"`
	Rows    int         `json:"rows"`
}

// Coefficient retorna o coeficiente entre duas colunas da matriz
func (m CorrelationMatrix) Coefficient(a, b Column) (Float, bool) {
	i, j := -1, -1
	for k, column := range m.Columns {
		if column == a {
			i = k
		}
		if column == b {
			j = k
		}
	}
	if i < 0 || j < 0 {
		return 0, false
	}
	return m.Values[i][j], true
}

// DeliveryAlert é uma entrega curta com custo ou prazo acima do esperado
type DeliveryAlert struct {
	Line             int     `json:"line"`
	Route            string  `json:"route"`
	DistanceKm       float64 `json:"distance_km"`
	FreightCost      Float   `json:"freight_cost"` // null quando a célula estava vazia
	DeliveryTimeDays float64 `json:"delivery_time_days"`
	Efficiency       float64 `json:"efficiency"`
}

type CostDistancePoint struct {
	Route       string  `json:"route"`
	DistanceKm  float64 `json:"distance_km"`
	FreightCost float64 `json:"freight_cost"`
}

// TrendLine é o ajuste linear por mínimos quadrados de custo sobre distância
type TrendLine struct {
	Slope     Float `json:"slope"`
	Intercept Float `json:"intercept"`
	RSquared  Float `json:"r_squared"`
	Points    int   `json:"points"`
}

// Predict estima o custo do frete para uma distância
func (l TrendLine) Predict(distanceKm float64) float64 {
	return float64(l.Intercept) + float64(l.Slope)*distanceKm
}

type RouteTrend struct {
	Route string    `json:"route"`
	Trend TrendLine `json:"trend"`
}

type CostDistanceSeries struct {
	Points  []CostDistancePoint `json:"points"`
	Overall TrendLine           `json:"overall"`
	ByRoute []RouteTrend        `json:"by_route,omitempty"`
}

// DeliverySummary resume a aba de entregas para o cabeçalho da visão
type DeliverySummary struct {
	Deliveries        int     `json:"deliveries"`
	Routes            int     `json:"routes"`
	TotalFreightCost  float64 `json:"total_freight_cost"`
	MeanCostPerKm     Float   `json:"mean_cost_per_km"`
	MeanDeliveryDays  Float   `json:"mean_delivery_days"`
	TotalDistanceKm   float64 `json:"total_distance_km"`
	MeanEfficiencyDay Float   `json:"mean_efficiency_km_per_day"`
}
