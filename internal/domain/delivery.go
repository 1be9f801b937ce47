package domain

import (
	"maps"
	"slices"
	"time"
)

// DeliveryRecord representa uma linha da aba de entregas
type DeliveryRecord struct {
	Line             int        `json:"line"`
	Route            string     `json:"route"`
	DistanceKm       float64    `json:"distance_km"`
	FreightCost      float64    `json:"freight_cost"`
	DeliveryTimeDays float64    `json:"delivery_time_days"`
	OrderDate        *time.Time `json:"order_date,omitempty"`
}

// HasFreightCost indica se a célula de custo do frete estava preenchida
func (r DeliveryRecord) HasFreightCost() bool {
	return !IsMissing(r.FreightCost)
}

// CostPerKm é o custo do frete dividido pela distância
func (r DeliveryRecord) CostPerKm() float64 {
	return r.FreightCost / r.DistanceKm
}

// Efficiency é a distância percorrida por dia de entrega
func (r DeliveryRecord) Efficiency() float64 {
	return r.DistanceKm / r.DeliveryTimeDays
}

// DeliveryTable é um retrato imutável da aba de entregas
type DeliveryTable struct {
	sheet   string
	columns columnSet
	headers map[Column]string
	records []DeliveryRecord
}

func NewDeliveryTable(sheet string, columns []Column, records []DeliveryRecord) *DeliveryTable {
	return &DeliveryTable{
		sheet:   sheet,
		columns: newColumnSet(columns),
		records: slices.Clone(records),
	}
}

// WithHeaders retorna uma cópia da tabela que conhece o nome de cada coluna na planilha
func (t *DeliveryTable) WithHeaders(headers map[Column]string) *DeliveryTable {
	table := *t
	table.headers = maps.Clone(headers)
	return &table
}

func (t *DeliveryTable) Sheet() string {
	return t.sheet
}

func (t *DeliveryTable) Len() int {
	return len(t.records)
}

// Records retorna uma cópia das linhas, preservando a ordem da fonte
func (t *DeliveryTable) Records() []DeliveryRecord {
	return slices.Clone(t.records)
}

func (t *DeliveryTable) HasColumn(column Column) bool {
	_, ok := t.columns[column]
	return ok
}

// Require retorna ErrColumnMissing para a primeira coluna ausente
func (t *DeliveryTable) Require(columns ...Column) error {
	return t.columns.missing(t.sheet, t.headers, columns)
}
