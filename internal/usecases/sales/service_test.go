package sales

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/vfg2006/dashboard-entregas-vendas/internal/domain"
)

var allColumns = []domain.Column{
	domain.ColumnCustomerSegment,
	domain.ColumnProduct,
	domain.ColumnValue,
	domain.ColumnDate,
	domain.ColumnRegion,
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func salesTable() *domain.SalesTable {
	return domain.NewSalesTable("Sales", allColumns, []domain.SalesRecord{
		{Line: 2, CustomerSegment: "Corporate", Product: "Notebook", Value: 3000, Date: date(2023, 12, 5), Region: "SP"},
		{Line: 3, CustomerSegment: "Consumer", Product: "Mouse", Value: 80, Date: date(2024, 1, 10), Region: "RJ"},
		{Line: 4, CustomerSegment: "Consumer", Product: "Notebook", Value: 2500, Date: date(2024, 1, 20), Region: "SP"},
		{Line: 5, CustomerSegment: "Corporate", Product: "Notebook", Value: 3500, Date: date(2024, 2, 1), Region: "MG"},
		{Line: 6, CustomerSegment: "Corporate", Product: "Mouse", Value: 120, Date: date(2023, 12, 24), Region: "RJ"},
		{Line: 7, CustomerSegment: "Consumer", Product: "Mouse", Value: 100, Region: "SP"},
	})
}

func TestService_SegmentProductMeans(t *testing.T) {
	means, err := NewService().SegmentProductMeans(salesTable())
	require.NoError(t, err)

	assert.Equal(t, []domain.SegmentProductMean{
		{Segment: "Consumer", Product: "Mouse", MeanValue: 90, Sales: 2},
		{Segment: "Consumer", Product: "Notebook", MeanValue: 2500, Sales: 1},
		{Segment: "Corporate", Product: "Mouse", MeanValue: 120, Sales: 1},
		{Segment: "Corporate", Product: "Notebook", MeanValue: 3250, Sales: 2},
	}, means)
}

func TestService_ProductValueDistribution(t *testing.T) {
	seq, err := NewService().ProductValueDistribution(salesTable())
	require.NoError(t, err)

	distributions := Collect(seq)
	require.Len(t, distributions, 2)

	assert.Equal(t, "Notebook", distributions[0].Product)
	require.Len(t, distributions[0].Segments, 2)
	assert.Equal(t, "Corporate", distributions[0].Segments[0].Segment)
	assert.Equal(t, 2, distributions[0].Segments[0].Count)
	assert.Equal(t, "Consumer", distributions[0].Segments[1].Segment)

	assert.Equal(t, "Mouse", distributions[1].Product)
	assert.Equal(t, "Consumer", distributions[1].Segments[0].Segment)

	t.Run("Sequência pode ser percorrida de novo", func(t *testing.T) {
		assert.Equal(t, distributions, Collect(seq))
	})

	t.Run("Interrupção antecipada", func(t *testing.T) {
		var products []string
		for product := range seq {
			products = append(products, product)
			break
		}
		assert.Equal(t, []string{"Notebook"}, products)
	})

	t.Run("Coluna ausente", func(t *testing.T) {
		table := domain.NewSalesTable("Sales", []domain.Column{domain.ColumnProduct, domain.ColumnValue}, nil)

		_, err := NewService().ProductValueDistribution(table)
		assert.True(t, errors.Is(err, domain.ErrColumnMissing))
	})
}

func TestSummarize(t *testing.T) {
	t.Run("Valor discrepante acima do limite", func(t *testing.T) {
		distribution := Summarize("Consumer", []float64{100, 3, 1, 4, 2})

		assert.Equal(t, 5, distribution.Count)
		assert.Equal(t, 1.0, distribution.Min)
		assert.Equal(t, 2.0, distribution.Q1)
		assert.Equal(t, 3.0, distribution.Median)
		assert.Equal(t, 4.0, distribution.Q3)
		assert.Equal(t, 100.0, distribution.Max)
		assert.Equal(t, 2.0, distribution.IQR())
		assert.Equal(t, -1.0, distribution.LowerFence)
		assert.Equal(t, 7.0, distribution.UpperFence)
		assert.Equal(t, 1.0, distribution.LowerWhisker)
		assert.Equal(t, 4.0, distribution.UpperWhisker)
		assert.Equal(t, []float64{100}, distribution.Outliers)
	})

	t.Run("Interpolação entre posições", func(t *testing.T) {
		distribution := Summarize("Corporate", []float64{10, 20, 30, 40})

		assert.Equal(t, 17.5, distribution.Q1)
		assert.Equal(t, 25.0, distribution.Median)
		assert.Equal(t, 32.5, distribution.Q3)
		assert.Empty(t, distribution.Outliers)
	})

	t.Run("Valor único", func(t *testing.T) {
		distribution := Summarize("Home Office", []float64{42})

		assert.Equal(t, 42.0, distribution.Median)
		assert.Equal(t, 42.0, distribution.LowerWhisker)
		assert.Equal(t, 42.0, distribution.UpperWhisker)
	})
}

func TestService_MonthlySalesTotals(t *testing.T) {
	service := NewService()
	table := salesTable()

	months, err := service.MonthlySalesTotals(table)
	require.NoError(t, err)

	assert.Equal(t, []domain.MonthlyTotal{
		{Year: 2023, Month: "2023-12", Total: 3120, Sales: 2},
		{Year: 2024, Month: "2024-01", Total: 2580, Sales: 2},
		{Year: 2024, Month: "2024-02", Total: 3500, Sales: 1},
	}, months)

	t.Run("Agregar os meses por ano equivale a agrupar por ano", func(t *testing.T) {
		years, err := service.YearlyTotals(table)
		require.NoError(t, err)

		fromMonths := make(map[int]float64)
		for _, month := range months {
			fromMonths[month.Year] += month.Total
		}

		require.Len(t, years, len(fromMonths))
		for _, year := range years {
			assert.InDelta(t, fromMonths[year.Year], year.Total, 1e-9, "ano %d", year.Year)
		}
	})
}

func TestService_RegionTotals(t *testing.T) {
	service := NewService()

	t.Run("Soma das regiões igual ao total vendido", func(t *testing.T) {
		table := salesTable()

		regions, err := service.RegionTotals(table)
		require.NoError(t, err)

		var values []float64
		for _, record := range table.Records() {
			values = append(values, record.Value)
		}

		var total float64
		for _, region := range regions {
			total += region.Total
		}
		assert.InDelta(t, floats.Sum(values), total, 1e-9)
		assert.Equal(t, "SP", regions[0].Region)
		assert.Equal(t, 1, regions[0].Position)
	})

	t.Run("Apenas regiões observadas", func(t *testing.T) {
		table := domain.NewSalesTable("Sales", allColumns, []domain.SalesRecord{
			{Region: "X", Value: 100},
			{Region: "Y", Value: 100},
			{Region: "X", Value: 100},
		})

		regions, err := service.RegionTotals(table)
		require.NoError(t, err)

		assert.Equal(t, []domain.RegionTotal{
			{Position: 1, Region: "X", Total: 200, Sales: 2},
			{Position: 2, Region: "Y", Total: 100, Sales: 1},
		}, regions)
	})

	t.Run("Aba vazia", func(t *testing.T) {
		regions, err := service.RegionTotals(domain.NewSalesTable("Sales", allColumns, nil))
		require.NoError(t, err)
		assert.Empty(t, regions)
	})
}

func TestService_MissingValues(t *testing.T) {
	service := NewService()
	table := domain.NewSalesTable("Sales", allColumns, []domain.SalesRecord{
		{Line: 2, CustomerSegment: "Corporate", Product: "A", Value: 10, Date: date(2024, 3, 5), Region: "SP"},
		{Line: 3, CustomerSegment: "Corporate", Product: "A", Value: domain.Missing(), Date: date(2024, 3, 6), Region: "SP"},
		{Line: 4, CustomerSegment: "Corporate", Product: "A", Value: 30, Date: date(2024, 3, 7), Region: ""},
		{Line: 5, CustomerSegment: "Consumer", Product: "A", Value: domain.Missing(), Date: date(2024, 4, 1), Region: "RJ"},
	})

	t.Run("Médias ignoram vendas sem valor", func(t *testing.T) {
		means, err := service.SegmentProductMeans(table)
		require.NoError(t, err)
		assert.Equal(t, []domain.SegmentProductMean{
			{Segment: "Corporate", Product: "A", MeanValue: 20, Sales: 2},
		}, means)
	})

	t.Run("Distribuição ignora vendas sem valor", func(t *testing.T) {
		seq, err := service.ProductValueDistribution(table)
		require.NoError(t, err)

		distributions := Collect(seq)
		require.Len(t, distributions, 1)
		require.Len(t, distributions[0].Segments, 2)
		assert.Equal(t, 2, distributions[0].Segments[0].Count)
		assert.Equal(t, 20.0, distributions[0].Segments[0].Median)
		assert.Equal(t, 0, distributions[0].Segments[1].Count)

		_, err = json.Marshal(distributions)
		assert.NoError(t, err)
	})

	t.Run("Totais mensais e anuais somam apenas os valores preenchidos", func(t *testing.T) {
		months, err := service.MonthlySalesTotals(table)
		require.NoError(t, err)
		assert.Equal(t, []domain.MonthlyTotal{
			{Year: 2024, Month: "2024-03", Total: 40, Sales: 2},
			{Year: 2024, Month: "2024-04", Total: 0, Sales: 0},
		}, months)

		years, err := service.YearlyTotals(table)
		require.NoError(t, err)
		assert.Equal(t, []domain.YearlyTotal{{Year: 2024, Total: 40, Sales: 2}}, years)
	})

	t.Run("Região em branco é mantida e a soma fecha com o total", func(t *testing.T) {
		regions, err := service.RegionTotals(table)
		require.NoError(t, err)
		assert.Equal(t, []domain.RegionTotal{
			{Position: 1, Region: "", Total: 30, Sales: 1},
			{Position: 2, Region: "SP", Total: 10, Sales: 1},
			{Position: 3, Region: "RJ", Total: 0, Sales: 0},
		}, regions)

		var total float64
		for _, region := range regions {
			total += region.Total
		}
		assert.Equal(t, 40.0, total)
	})
}
