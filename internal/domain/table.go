// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "strings"

// Column identifica uma coluna lógica, independente do nome usado na planilha
type Column string

const (
	ColumnRoute            Column = "Route"
	ColumnDistanceKm       Column = "Distance (km)"
	ColumnFreightCost      Column = "FreightCost"
	ColumnDeliveryTimeDays Column = "DeliveryTime (days)"
	ColumnOrderDate        Column = "OrderDate"

	ColumnCustomerSegment Column = "CustomerSegment"
	ColumnProduct         Column = "Product"
	ColumnValue           Column = "Value"
	ColumnDate            Column = "Date"
	ColumnRegion          Column = "Region"
)

// RawTable é uma aba lida da fonte, ainda sem conversão de tipos
type RawTable struct {
	Name   string
	Header []string
	Rows   []RawRow
}

// RawRow guarda as células de uma linha e a posição dela na fonte (base 1)
type RawRow struct {
	Line  int
	Cells []string
}

// Cell retorna a célula da posição i ou vazio quando a linha for mais curta
func (r RawRow) Cell(i int) string {
	if i < 0 || i >= len(r.Cells) {
		return ""
	}
	return r.Cells[i]
}

// IsBlank indica se todas as células da linha estão vazias
func (r RawRow) IsBlank() bool {
	for _, cell := range r.Cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ColumnIndex mapeia o nome de cada coluna do cabeçalho para sua posição
func (t *RawTable) ColumnIndex() map[string]int {
	index := make(map[string]int, len(t.Header))
	for i, name := range t.Header {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}
	return index
}

type columnSet map[Column]struct{}

func newColumnSet(columns []Column) columnSet {
	set := make(columnSet, len(columns))
	for _, column := range columns {
		set[column] = struct{}{}
	}
	return set
}

// missing reporta a coluna pelo nome usado na planilha, quando conhecido
func (s columnSet) missing(sheet string, headers map[Column]string, required []Column) error {
	for _, column := range required {
		if _, ok := s[column]; ok {
			continue
		}

		name := string(column)
		if header := strings.TrimSpace(headers[column]); header != "" {
			name = header
		}
		return &DatasetError{
			Err:    ErrColumnMissing,
			Sheet:  sheet,
			Column: name,
		}
	}
	return nil
}
