package domain

import (
	"maps"
	"slices"
	"time"
)

// MonthLayout é o formato ano-mês usado para agrupar vendas
const MonthLayout = "2006-01"

// SalesRecord representa uma linha da aba de vendas. Date zero indica data ausente
type SalesRecord struct {
	Line            int       `json:"line"`
	CustomerSegment string    `json:"customer_segment"`
	Product         string    `json:"product"`
	Value           float64   `json:"value"`
	Date            time.Time `json:"date"`
	Region          string    `json:"region"`
}

// HasValue indica se a célula de valor estava preenchida
func (r SalesRecord) HasValue() bool {
	return !IsMissing(r.Value)
}

func (r SalesRecord) HasDate() bool {
	return !r.Date.IsZero()
}

func (r SalesRecord) Year() int {
	return r.Date.Year()
}

// Month retorna a data truncada em ano-mês (ex: 2024-01)
func (r SalesRecord) Month() string {
	return r.Date.Format(MonthLayout)
}

// SalesTable é um retrato imutável da aba de vendas
type SalesTable struct {
	sheet   string
	columns columnSet
	headers map[Column]string
	records []SalesRecord
}

func NewSalesTable(sheet string, columns []Column, records []SalesRecord) *SalesTable {
	return &SalesTable{
		sheet:   sheet,
		columns: newColumnSet(columns),
		records: slices.Clone(records),
	}
}

// WithHeaders retorna uma cópia da tabela que conhece o nome de cada coluna na planilha
func (t *SalesTable) WithHeaders(headers map[Column]string) *SalesTable {
	table := *t
	table.headers = maps.Clone(headers)
	return &table
}

func (t *SalesTable) Sheet() string {
	return t.sheet
}

func (t *SalesTable) Len() int {
	return len(t.records)
}

// Records retorna uma cópia das linhas, preservando a ordem da fonte
func (t *SalesTable) Records() []SalesRecord {
	return slices.Clone(t.records)
}

func (t *SalesTable) HasColumn(column Column) bool {
	_, ok := t.columns[column]
	return ok
}

// Require retorna ErrColumnMissing para a primeira coluna ausente
func (t *SalesTable) Require(columns ...Column) error {
	return t.columns.missing(t.sheet, t.headers, columns)
}
