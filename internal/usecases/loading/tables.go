package loading

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/dashboard-entregas-vendas/internal/config"
	"github.com/vfg2006/dashboard-entregas-vendas/internal/domain"
)

type columnName struct {
	column domain.Column
	name   string
}

// sheetBinding liga as colunas lógicas às posições do cabeçalho de uma aba
type sheetBinding struct {
	sheet   string
	names   map[domain.Column]string
	index   map[domain.Column]int
	present []domain.Column
}

func bind(raw *domain.RawTable, columns []columnName) *sheetBinding {
	header := raw.ColumnIndex()
	binding := &sheetBinding{
		sheet: raw.Name,
		names: make(map[domain.Column]string, len(columns)),
		index: make(map[domain.Column]int, len(columns)),
	}

	for _, c := range columns {
		binding.names[c.column] = c.name
		if i, ok := header[strings.TrimSpace(c.name)]; ok {
			binding.index[c.column] = i
			binding.present = append(binding.present, c.column)
		}
	}

	return binding
}

func (b *sheetBinding) has(column domain.Column) bool {
	_, ok := b.index[column]
	return ok
}

func (b *sheetBinding) cell(row domain.RawRow, column domain.Column) string {
	return strings.TrimSpace(row.Cell(b.index[column]))
}

func (b *sheetBinding) fail(err error, row domain.RawRow, column domain.Column, details string) error {
	return &domain.DatasetError{
		Err:     err,
		Sheet:   b.sheet,
		Column:  b.names[column],
		Line:    row.Line,
		Details: details,
	}
}

// number converte a célula em número. Célula vazia vira valor ausente, texto inválido é erro
func (b *sheetBinding) number(row domain.RawRow, column domain.Column) (float64, error) {
	cell := b.cell(row, column)
	if cell == "" {
		return domain.Missing(), nil
	}

	value, err := parseNumber(cell)
	if err != nil {
		return 0, b.fail(domain.ErrMalformedValue, row, column, fmt.Sprintf("%q: %s", cell, err))
	}
	return value, nil
}

// divisor exige um valor positivo, já que a coluna é usada como denominador
func (b *sheetBinding) divisor(row domain.RawRow, column domain.Column) (float64, error) {
	cell := b.cell(row, column)
	if cell == "" {
		return 0, b.fail(domain.ErrInvalidDivisor, row, column, "valor ausente")
	}

	value, err := parseNumber(cell)
	if err != nil {
		return 0, b.fail(domain.ErrMalformedValue, row, column, fmt.Sprintf("%q: %s", cell, err))
	}
	if value <= 0 {
		return 0, b.fail(domain.ErrInvalidDivisor, row, column, fmt.Sprintf("%q", cell))
	}
	return value, nil
}

func (b *sheetBinding) date(row domain.RawRow, column domain.Column) (time.Time, error) {
	cell := b.cell(row, column)
	value, err := parseDate(cell)
	if err != nil {
		return time.Time{}, b.fail(domain.ErrMalformedDate, row, column, fmt.Sprintf("%q", cell))
	}
	return value, nil
}

func buildDeliveries(raw *domain.RawTable, schema config.DeliveryColumns) (*domain.DeliveryTable, error) {
	b := bind(raw, []columnName{
		{domain.ColumnRoute, schema.Route},
		{domain.ColumnDistanceKm, schema.DistanceKm},
		{domain.ColumnFreightCost, schema.FreightCost},
		{domain.ColumnDeliveryTimeDays, schema.DeliveryTimeDays},
		{domain.ColumnOrderDate, schema.OrderDate},
	})

	records := make([]domain.DeliveryRecord, 0, len(raw.Rows))
	for _, row := range raw.Rows {
		record := domain.DeliveryRecord{Line: row.Line}
		var err error

		if b.has(domain.ColumnRoute) {
			record.Route = b.cell(row, domain.ColumnRoute)
		}
		if b.has(domain.ColumnDistanceKm) {
			if record.DistanceKm, err = b.divisor(row, domain.ColumnDistanceKm); err != nil {
				return nil, err
			}
		}
		if b.has(domain.ColumnFreightCost) {
			if record.FreightCost, err = b.number(row, domain.ColumnFreightCost); err != nil {
				return nil, err
			}
		}
		if b.has(domain.ColumnDeliveryTimeDays) {
			if record.DeliveryTimeDays, err = b.divisor(row, domain.ColumnDeliveryTimeDays); err != nil {
				return nil, err
			}
		}
		if b.has(domain.ColumnOrderDate) {
			date, err := b.date(row, domain.ColumnOrderDate)
			if err != nil {
				return nil, err
			}
			if !date.IsZero() {
				record.OrderDate = &date
			}
		}

		records = append(records, record)
	}

	return domain.NewDeliveryTable(raw.Name, b.present, records).WithHeaders(b.names), nil
}

func buildSales(raw *domain.RawTable, schema config.SalesColumns) (*domain.SalesTable, error) {
	b := bind(raw, []columnName{
		{domain.ColumnCustomerSegment, schema.CustomerSegment},
		{domain.ColumnProduct, schema.Product},
		{domain.ColumnValue, schema.Value},
		{domain.ColumnDate, schema.Date},
		{domain.ColumnRegion, schema.Region},
	})

	records := make([]domain.SalesRecord, 0, len(raw.Rows))
	for _, row := range raw.Rows {
		record := domain.SalesRecord{Line: row.Line}
		var err error

		if b.has(domain.ColumnCustomerSegment) {
			record.CustomerSegment = b.cell(row, domain.ColumnCustomerSegment)
		}
		if b.has(domain.ColumnProduct) {
			record.Product = b.cell(row, domain.ColumnProduct)
		}
		if b.has(domain.ColumnRegion) {
			record.Region = b.cell(row, domain.ColumnRegion)
		}
		if b.has(domain.ColumnValue) {
			if record.Value, err = b.number(row, domain.ColumnValue); err != nil {
				return nil, err
			}
		}
		if b.has(domain.ColumnDate) {
			if record.Date, err = b.date(row, domain.ColumnDate); err != nil {
				return nil, err
			}
		}

		records = append(records, record)
	}

	return domain.NewSalesTable(raw.Name, b.present, records).WithHeaders(b.names), nil
}
