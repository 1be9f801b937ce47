// Package dashboard monta as visões de entregas e vendas a partir do conjunto de dados carregado
package dashboard

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/dashboard-entregas-vendas/infrastructure/spreadsheet"
	"github.com/vfg2006/dashboard-entregas-vendas/internal/domain"
	"github.com/vfg2006/dashboard-entregas-vendas/internal/usecases/loading"
	"github.com/vfg2006/dashboard-entregas-vendas/internal/usecases/logistics"
	"github.com/vfg2006/dashboard-entregas-vendas/internal/usecases/sales"
	"github.com/vfg2006/dashboard-entregas-vendas/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/dashboard.go -package=mocks

const (
	SectionSummary         = "summary"
	SectionRouteCosts      = "route_costs"
	SectionCorrelation     = "correlation"
	SectionAlerts          = "alerts"
	SectionCostDistance    = "cost_distance"
	SectionSegmentProducts = "segment_products"
	SectionDistributions   = "distributions"
	SectionMonthly         = "monthly"
	SectionRegions         = "regions"
)

type Dashboard interface {
	Views() []domain.ViewInfo
	DeliveriesView(ctx context.Context) (*domain.DeliveriesView, error)
	SalesView(ctx context.Context) (*domain.SalesView, error)
	Headlines(ctx context.Context) (domain.Headlines, error)

	Summary(ctx context.Context) (domain.DeliverySummary, error)
	RouteCosts(ctx context.Context) ([]domain.RouteCost, error)
	Correlation(ctx context.Context) (domain.CorrelationMatrix, error)
	Alerts(ctx context.Context) ([]domain.DeliveryAlert, error)
	CostDistance(ctx context.Context, byRoute bool) (domain.CostDistanceSeries, error)

	SegmentProducts(ctx context.Context) ([]domain.SegmentProductMean, error)
	Distributions(ctx context.Context, product string) ([]domain.ProductDistribution, error)
	Monthly(ctx context.Context) (domain.MonthlySales, error)
	Regions(ctx context.Context) ([]domain.RegionTotal, error)
}

type Service struct {
	loader    loading.DatasetLoader
	source    spreadsheet.Source
	logistics logistics.DeliveryAnalyzer
	sales     sales.SalesAnalyzer
}

func NewService(
	loader loading.DatasetLoader,
	source spreadsheet.Source,
	logistics logistics.DeliveryAnalyzer,
	sales sales.SalesAnalyzer,
) Dashboard {
	return &Service{
		loader:    loader,
		source:    source,
		logistics: logistics,
		sales:     sales,
	}
}

func (s *Service) Views() []domain.ViewInfo {
	return []domain.ViewInfo{
		{
			ID:    domain.ViewDeliveries,
			Title: "Análise de Entregas",
			Sections: []string{
				SectionSummary, SectionRouteCosts, SectionCorrelation, SectionAlerts, SectionCostDistance,
			},
		},
		{
			ID:    domain.ViewSales,
			Title: "Análise de Vendas",
			Sections: []string{
				SectionSegmentProducts, SectionDistributions, SectionMonthly, SectionRegions,
			},
		},
	}
}

func (s *Service) dataset(ctx context.Context) (*domain.Dataset, error) {
	dataset, err := s.loader.Load(ctx, s.source)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar o conjunto de dados: %w", err)
	}
	return dataset, nil
}

// DeliveriesView monta a visão de entregas. Uma consulta com erro deixa apenas a sua seção indisponível
func (s *Service) DeliveriesView(ctx context.Context) (*domain.DeliveriesView, error) {
	dataset, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}

	table := dataset.Deliveries
	ranking, rankingErr := s.logistics.RouteCostRanking(table)
	alerts, alertsErr := s.logistics.OptimizationAlerts(table)

	summary := section(SectionSummary, dataset.ID, func() (any, error) {
		return s.logistics.Summary(table)
	})
	correlation := section(SectionCorrelation, dataset.ID, func() (any, error) {
		return s.logistics.CorrelationMatrix(table)
	})
	costDistance := section(SectionCostDistance, dataset.ID, func() (any, error) {
		return s.logistics.CostDistanceSeries(table, true)
	})

	view := &domain.DeliveriesView{
		ID:           domain.ViewDeliveries,
		Title:        "Análise de Entregas",
		DatasetID:    dataset.ID,
		Summary:      summary,
		RouteCosts:   newSection(SectionRouteCosts, dataset.ID, ranking, rankingErr),
		Correlation:  correlation,
		Alerts:       newSection(SectionAlerts, dataset.ID, alerts, alertsErr),
		CostDistance: costDistance,
	}

	if rankingErr == nil {
		view.Headlines.MostExpensiveRoute = routeHeadline(ranking)
	}
	if alertsErr == nil {
		view.Headlines.AlertCount = len(alerts)
	}

	return view, nil
}

// SalesView monta a visão de vendas. Uma consulta com erro deixa apenas a sua seção indisponível
func (s *Service) SalesView(ctx context.Context) (*domain.SalesView, error) {
	dataset, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}

	table := dataset.Sales
	regions, regionsErr := s.sales.RegionTotals(table)

	segmentProducts := section(SectionSegmentProducts, dataset.ID, func() (any, error) {
		return s.sales.SegmentProductMeans(table)
	})
	distributions := section(SectionDistributions, dataset.ID, func() (any, error) {
		seq, err := s.sales.ProductValueDistribution(table)
		if err != nil {
			return nil, err
		}
		return sales.Collect(seq), nil
	})
	monthly := section(SectionMonthly, dataset.ID, func() (any, error) {
		return s.monthly(table)
	})

	view := &domain.SalesView{
		ID:              domain.ViewSales,
		Title:           "Análise de Vendas",
		DatasetID:       dataset.ID,
		SegmentProducts: segmentProducts,
		Distributions:   distributions,
		Monthly:         monthly,
		Regions:         newSection(SectionRegions, dataset.ID, regions, regionsErr),
	}

	if regionsErr == nil {
		view.Headlines.MostProfitableRegion = regionHeadline(regions)
	}

	return view, nil
}

// Headlines reúne os destaques das duas visões. Consultas indisponíveis deixam o destaque vazio
func (s *Service) Headlines(ctx context.Context) (domain.Headlines, error) {
	dataset, err := s.dataset(ctx)
	if err != nil {
		return domain.Headlines{}, err
	}

	var headlines domain.Headlines
	if ranking, err := s.logistics.RouteCostRanking(dataset.Deliveries); err == nil {
		headlines.MostExpensiveRoute = routeHeadline(ranking)
	}
	if regions, err := s.sales.RegionTotals(dataset.Sales); err == nil {
		headlines.MostProfitableRegion = regionHeadline(regions)
	}
	if alerts, err := s.logistics.OptimizationAlerts(dataset.Deliveries); err == nil {
		headlines.AlertCount = len(alerts)
	}

	return headlines, nil
}

func (s *Service) Summary(ctx context.Context) (domain.DeliverySummary, error) {
	dataset, err := s.dataset(ctx)
	if err != nil {
		return domain.DeliverySummary{}, err
	}
	return s.logistics.Summary(dataset.Deliveries)
}

func (s *Service) RouteCosts(ctx context.Context) ([]domain.RouteCost, error) {
	dataset, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}
	return s.logistics.RouteCostRanking(dataset.Deliveries)
}

func (s *Service) Correlation(ctx context.Context) (domain.CorrelationMatrix, error) {
	dataset, err := s.dataset(ctx)
	if err != nil {
		return domain.CorrelationMatrix{}, err
	}
	return s.logistics.CorrelationMatrix(dataset.Deliveries)
}

func (s *Service) Alerts(ctx context.Context) ([]domain.DeliveryAlert, error) {
	dataset, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}
	return s.logistics.OptimizationAlerts(dataset.Deliveries)
}

func (s *Service) CostDistance(ctx context.Context, byRoute bool) (domain.CostDistanceSeries, error) {
	dataset, err := s.dataset(ctx)
	if err != nil {
		return domain.CostDistanceSeries{}, err
	}
	return s.logistics.CostDistanceSeries(dataset.Deliveries, byRoute)
}

func (s *Service) SegmentProducts(ctx context.Context) ([]domain.SegmentProductMean, error) {
	dataset, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}
	return s.sales.SegmentProductMeans(dataset.Sales)
}

// Distributions retorna as distribuições de todos os produtos ou apenas do produto informado
func (s *Service) Distributions(ctx context.Context, product string) ([]domain.ProductDistribution, error) {
	dataset, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}

	seq, err := s.sales.ProductValueDistribution(dataset.Sales)
	if err != nil {
		return nil, err
	}

	if product == "" {
		return sales.Collect(seq), nil
	}

	for name, distribution := range seq {
		if name == product {
			return []domain.ProductDistribution{distribution}, nil
		}
	}

	return nil, domain.NewDatasetError(domain.ErrUnknownProduct, dataset.Sales.Sheet(), fmt.Sprintf("%q", product))
}

func (s *Service) Monthly(ctx context.Context) (domain.MonthlySales, error) {
	dataset, err := s.dataset(ctx)
	if err != nil {
		return domain.MonthlySales{}, err
	}
	return s.monthly(dataset.Sales)
}

func (s *Service) monthly(table *domain.SalesTable) (domain.MonthlySales, error) {
	months, err := s.sales.MonthlySalesTotals(table)
	if err != nil {
		return domain.MonthlySales{}, err
	}

	years, err := s.sales.YearlyTotals(table)
	if err != nil {
		return domain.MonthlySales{}, err
	}

	return domain.MonthlySales{
		Months:  months,
		Years:   years,
		Periods: domain.NewAvailablePeriods(months),
	}, nil
}

func (s *Service) Regions(ctx context.Context) ([]domain.RegionTotal, error) {
	dataset, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}
	return s.sales.RegionTotals(dataset.Sales)
}

func routeHeadline(ranking []domain.RouteCost) *domain.RouteHeadline {
	if len(ranking) == 0 {
		return nil
	}
	return &domain.RouteHeadline{
		Route:         ranking[0].Route,
		MeanCostPerKm: utils.RoundWithTwoDecimalPlace(ranking[0].MeanCostPerKm),
	}
}

func regionHeadline(regions []domain.RegionTotal) *domain.RegionHeadline {
	if len(regions) == 0 {
		return nil
	}
	return &domain.RegionHeadline{
		Region: regions[0].Region,
		Total:  utils.RoundWithTwoDecimalPlace(regions[0].Total),
	}
}

func section(name, datasetID string, query func() (any, error)) domain.Section {
	data, err := query()
	return newSection(name, datasetID, data, err)
}

func newSection(name, datasetID string, data any, err error) domain.Section {
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"section":    name,
			"dataset_id": datasetID,
		}).WithError(err).Warn("dashboard: seção indisponível")

		return domain.Section{Name: name, Status: domain.SectionUnavailable, Error: err.Error()}
	}

	return domain.Section{Name: name, Status: domain.SectionAvailable, Data: data}
}
