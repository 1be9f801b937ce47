package domain

const (
	ViewDeliveries = "deliveries"
	ViewSales      = "sales"
)

type SectionStatus string

const (
	SectionAvailable   SectionStatus = "available"
	SectionUnavailable SectionStatus = "unavailable"
)

// ViewInfo descreve uma das visões selecionáveis do dashboard
type ViewInfo struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Sections []string `json:"sections"`
}

// Section é o resultado de uma consulta. Uma falha deixa só esta seção indisponível
type Section struct {
	Name   string        `json:"name"`
	Status SectionStatus `json:"status"`
	Error  string        `json:"error,omitempty"`
	Data   any           `json:"data,omitempty"`
}

func (s Section) Available() bool {
	return s.Status == SectionAvailable
}

type RouteHeadline struct {
	Route         string  `json:"route"`
	MeanCostPerKm float64 `json:"mean_cost_per_km"`
}

type RegionHeadline struct {
	Region string  `json:"region"`
	Total  float64 `json:"total"`
}

// Headlines são os valores escalares usados no texto narrativo das visões
type Headlines struct {
	MostExpensiveRoute   *RouteHeadline  `json:"most_expensive_route,omitempty"`
	MostProfitableRegion *RegionHeadline `json:"most_profitable_region,omitempty"`
	AlertCount           int             `json:"alert_count"`
}

type DeliveriesView struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	DatasetID    string    `json:"dataset_id"`
	Headlines    Headlines `json:"headlines"`
	Summary      Section   `json:"summary"`
	RouteCosts   Section   `json:"route_costs"`
	Correlation  Section   `json:"correlation"`
	Alerts       Section   `json:"alerts"`
	CostDistance Section   `json:"cost_distance"`
}

type SalesView struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	DatasetID       string    `json:"dataset_id"`
	Headlines       Headlines `json:"headlines"`
	SegmentProducts Section   `json:"segment_products"`
	Distributions   Section   `json:"distributions"`
	Monthly         Section   `json:"monthly"`
	Regions         Section   `json:"regions"`
}
