package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetError(t *testing.T) {
	err := &DatasetError{
		Err:     ErrMalformedDate,
		Sheet:   "Sales",
		Column:  "Date",
		Line:    7,
		Details: `"31/31/2024"`,
	}

	assert.Equal(t, `malformed date: sheet "Sales", column "Date", line 7, "31/31/2024"`, err.Error())
	assert.True(t, errors.Is(err, ErrMalformedDate))
	assert.True(t, IsLoadError(fmt.Errorf("carga: %w", err)))

	var datasetErr *DatasetError
	require.True(t, errors.As(fmt.Errorf("carga: %w", err), &datasetErr))
	assert.Equal(t, 7, datasetErr.Line)

	bare := &DatasetError{Err: ErrSourceNotFound}
	assert.Equal(t, "source not found", bare.Error())
	assert.False(t, IsLoadError(ErrColumnMissing))
}

func TestFloat_MarshalJSON(t *testing.T) {
	out, err := json.Marshal([]Float{1.5, Float(math.NaN()), Float(math.Inf(1)), -2})
	require.NoError(t, err)
	assert.Equal(t, "[1.5,null,null,-2]", string(out))

	assert.True(t, Float(0).Defined())
	assert.True(t, IsMissing(Missing()))
	assert.False(t, DeliveryRecord{FreightCost: Missing()}.HasFreightCost())
	assert.False(t, SalesRecord{Value: Missing()}.HasValue())
	assert.False(t, Float(math.NaN()).Defined())
}

func TestDeliveryTable_Require(t *testing.T) {
	table := NewDeliveryTable("Deliveries", []Column{ColumnRoute, ColumnDistanceKm}, []DeliveryRecord{
		{Line: 2, Route: "A", DistanceKm: 100},
	})

	assert.NoError(t, table.Require(ColumnRoute, ColumnDistanceKm))

	err := table.Require(ColumnRoute, ColumnFreightCost)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrColumnMissing))
	assert.Contains(t, err.Error(), `column "FreightCost"`)

	named := table.WithHeaders(map[Column]string{ColumnFreightCost: "Custo Frete (R$)"})
	err = named.Require(ColumnFreightCost)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "Custo Frete (R$)"`)
	assert.Contains(t, table.Require(ColumnFreightCost).Error(), `column "FreightCost"`, "WithHeaders não altera a tabela original")

	records := table.Records()
	records[0].Route = "B"
	assert.Equal(t, "A", table.Records()[0].Route, "Records deve retornar uma cópia")
}

func TestDeliveryRecord_DerivedFields(t *testing.T) {
	record := DeliveryRecord{DistanceKm: 200, FreightCost: 1200, DeliveryTimeDays: 5}

	assert.Equal(t, 6.0, record.CostPerKm())
	assert.Equal(t, 40.0, record.Efficiency())
}

func TestSalesRecord_CalendarFields(t *testing.T) {
	record := SalesRecord{Date: time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)}

	assert.True(t, record.HasDate())
	assert.Equal(t, 2024, record.Year())
	assert.Equal(t, "2024-03", record.Month())
	assert.False(t, SalesRecord{}.HasDate())
}

func TestRawRow(t *testing.T) {
	row := RawRow{Line: 3, Cells: []string{"A", " ", ""}}

	assert.Equal(t, "A", row.Cell(0))
	assert.Equal(t, "", row.Cell(10))
	assert.False(t, row.IsBlank())
	assert.True(t, RawRow{Cells: []string{"", "  "}}.IsBlank())

	table := &RawTable{Header: []string{" Route ", "", "Route", "Value"}}
	index := table.ColumnIndex()
	assert.Equal(t, map[string]int{"Route": 0, "Value": 3}, index)
}

func TestNewAvailablePeriods(t *testing.T) {
	periods := NewAvailablePeriods([]MonthlyTotal{
		{Year: 2023, Month: "2023-11"},
		{Year: 2023, Month: "2023-12"},
		{Year: 2024, Month: "2024-01"},
		{Year: 2024, Month: "2024-11"},
	})

	assert.Equal(t, []string{"2023-11", "2023-12", "2024-01", "2024-11"}, periods.Periods)
	assert.Equal(t, []string{"2023", "2024"}, periods.Years)
	assert.Equal(t, []string{"01", "11", "12"}, periods.Months)
}

func TestCorrelationMatrix_Coefficient(t *testing.T) {
	matrix := CorrelationMatrix{
		Columns: [3]Column{ColumnDistanceKm, ColumnFreightCost, ColumnDeliveryTimeDays},
	}
	matrix.Values[0][1] = 0.9

	value, ok := matrix.Coefficient(ColumnDistanceKm, ColumnFreightCost)
	assert.True(t, ok)
	assert.Equal(t, Float(0.9), value)

	_, ok = matrix.Coefficient(ColumnRoute, ColumnFreightCost)
	assert.False(t, ok)
}
