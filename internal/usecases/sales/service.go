// Package sales calcula os indicadores da aba de vendas
package sales

import (
	"cmp"
	"iter"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/vfg2006/dashboard-entregas-vendas/internal/domain"
)

type SalesAnalyzer interface {
	SegmentProductMeans(table *domain.SalesTable) ([]domain.SegmentProductMean, error)
	ProductValueDistribution(table *domain.SalesTable) (iter.Seq2[string, domain.ProductDistribution], error)
	MonthlySalesTotals(table *domain.SalesTable) ([]domain.MonthlyTotal, error)
	YearlyTotals(table *domain.SalesTable) ([]domain.YearlyTotal, error)
	RegionTotals(table *domain.SalesTable) ([]domain.RegionTotal, error)
}

type Service struct{}

func NewService() SalesAnalyzer {
	return &Service{}
}

type segmentProduct struct {
	segment string
	product string
}

// SegmentProductMeans calcula o valor médio de cada produto por segmento, ordenado por segmento e produto.
// Vendas sem valor ficam de fora da média
func (s *Service) SegmentProductMeans(table *domain.SalesTable) ([]domain.SegmentProductMean, error) {
	if err := table.Require(domain.ColumnCustomerSegment, domain.ColumnProduct, domain.ColumnValue); err != nil {
		return nil, err
	}

	values := make(map[segmentProduct][]float64)
	for _, record := range table.Records() {
		if !record.HasValue() {
			continue
		}
		key := segmentProduct{segment: record.CustomerSegment, product: record.Product}
		values[key] = append(values[key], record.Value)
	}

	means := make([]domain.SegmentProductMean, 0, len(values))
	for key, group := range values {
		means = append(means, domain.SegmentProductMean{
			Segment:   key.segment,
			Product:   key.product,
			MeanValue: stat.Mean(group, nil),
			Sales:     len(group),
		})
	}

	slices.SortFunc(means, func(a, b domain.SegmentProductMean) int {
		return cmp.Or(cmp.Compare(a.Segment, b.Segment), cmp.Compare(a.Product, b.Product))
	})

	return means, nil
}

// ProductValueDistribution produz a distribuição dos valores de cada produto, por segmento.
// A sequência é calculada sob demanda e pode ser percorrida mais de uma vez
func (s *Service) ProductValueDistribution(table *domain.SalesTable) (iter.Seq2[string, domain.ProductDistribution], error) {
	if err := table.Require(domain.ColumnCustomerSegment, domain.ColumnProduct, domain.ColumnValue); err != nil {
		return nil, err
	}

	records := table.Records()

	return func(yield func(string, domain.ProductDistribution) bool) {
		var products []string
		seen := make(map[string]struct{})
		for _, record := range records {
			if _, ok := seen[record.Product]; !ok {
				seen[record.Product] = struct{}{}
				products = append(products, record.Product)
			}
		}

		for _, product := range products {
			if !yield(product, distributionOf(product, records)) {
				return
			}
		}
	}, nil
}

func distributionOf(product string, records []domain.SalesRecord) domain.ProductDistribution {
	var segments []string
	values := make(map[string][]float64)
	for _, record := range records {
		if record.Product != product {
			continue
		}
		if _, ok := values[record.CustomerSegment]; !ok {
			segments = append(segments, record.CustomerSegment)
		}
		group := values[record.CustomerSegment]
		if record.HasValue() {
			group = append(group, record.Value)
		}
		values[record.CustomerSegment] = group
	}

	distribution := domain.ProductDistribution{
		Product:  product,
		Segments: make([]domain.ValueDistribution, 0, len(segments)),
	}
	for _, segment := range segments {
		distribution.Segments = append(distribution.Segments, Summarize(segment, values[segment]))
	}

	return distribution
}

// Collect materializa a sequência de distribuições, mantendo a ordem
func Collect(seq iter.Seq2[string, domain.ProductDistribution]) []domain.ProductDistribution {
	distributions := make([]domain.ProductDistribution, 0)
	for _, distribution := range seq {
		distributions = append(distributions, distribution)
	}
	return distributions
}

// MonthlySalesTotals soma as vendas por mês em ordem cronológica. Vendas sem data ficam de fora
func (s *Service) MonthlySalesTotals(table *domain.SalesTable) ([]domain.MonthlyTotal, error) {
	if err := table.Require(domain.ColumnValue, domain.ColumnDate); err != nil {
		return nil, err
	}

	values := make(map[string][]float64)
	years := make(map[string]int)
	for _, record := range table.Records() {
		if !record.HasDate() {
			continue
		}
		month := record.Month()
		values[month] = withValue(values[month], record)
		years[month] = record.Year()
	}

	months := make([]domain.MonthlyTotal, 0, len(values))
	for month, group := range values {
		months = append(months, domain.MonthlyTotal{
			Year:  years[month],
			Month: month,
			Total: floats.Sum(group),
			Sales: len(group),
		})
	}

	slices.SortFunc(months, func(a, b domain.MonthlyTotal) int {
		return cmp.Compare(a.Month, b.Month)
	})

	return months, nil
}

// YearlyTotals soma as vendas por ano diretamente a partir das linhas
func (s *Service) YearlyTotals(table *domain.SalesTable) ([]domain.YearlyTotal, error) {
	if err := table.Require(domain.ColumnValue, domain.ColumnDate); err != nil {
		return nil, err
	}

	values := make(map[int][]float64)
	for _, record := range table.Records() {
		if !record.HasDate() {
			continue
		}
		values[record.Year()] = withValue(values[record.Year()], record)
	}

	years := make([]domain.YearlyTotal, 0, len(values))
	for year, group := range values {
		years = append(years, domain.YearlyTotal{
			Year:  year,
			Total: floats.Sum(group),
			Sales: len(group),
		})
	}

	slices.SortFunc(years, func(a, b domain.YearlyTotal) int {
		return cmp.Compare(a.Year, b.Year)
	})

	return years, nil
}

// RegionTotals ordena as regiões pelo total vendido, da mais rentável para a menos rentável.
// Região em branco forma um grupo próprio para que a soma das regiões feche com o total da aba
func (s *Service) RegionTotals(table *domain.SalesTable) ([]domain.RegionTotal, error) {
	if err := table.Require(domain.ColumnRegion, domain.ColumnValue); err != nil {
		return nil, err
	}

	values := make(map[string][]float64)
	for _, record := range table.Records() {
		values[record.Region] = withValue(values[record.Region], record)
	}

	regions := make([]domain.RegionTotal, 0, len(values))
	for region, group := range values {
		regions = append(regions, domain.RegionTotal{
			Region: region,
			Total:  floats.Sum(group),
			Sales:  len(group),
		})
	}

	slices.SortFunc(regions, func(a, b domain.RegionTotal) int {
		return cmp.Compare(a.Region, b.Region)
	})
	slices.SortStableFunc(regions, func(a, b domain.RegionTotal) int {
		return cmp.Compare(b.Total, a.Total)
	})

	for i := range regions {
		regions[i].Position = i + 1
	}

	return regions, nil
}

// withValue acrescenta o valor da venda ao grupo. Vendas sem valor mantêm o grupo, com soma zero
func withValue(group []float64, record domain.SalesRecord) []float64 {
	if !record.HasValue() {
		return group
	}
	return append(group, record.Value)
}
