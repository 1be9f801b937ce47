// Package spreadsheet lê as abas de entregas e vendas de uma fonte tabular
package spreadsheet

import (
	"context"

	"github.com/vfg2006/dashboard-entregas-vendas/internal/domain"
)

//go:generate mockgen -source=source.go -destination=mocks/source.go -package=mocks

// Source é uma fonte de abas nomeadas. ID identifica a fonte para o cache de carga
type Source interface {
	ID() string
	Open(ctx context.Context) (TableReader, error)
}

// TableReader lê abas de uma fonte já aberta
type TableReader interface {
	ReadTable(ctx context.Context, name string) (*domain.RawTable, error)
	Close() error
}

// BuildTable usa a primeira linha não vazia como cabeçalho e descarta linhas em branco.
// firstLine é o número (base 1) da primeira linha de rows na fonte
func BuildTable(name string, rows [][]string, firstLine int) *domain.RawTable {
	table := &domain.RawTable{Name: name}

	headerAt := -1
	for i, cells := range rows {
		if !(domain.RawRow{Cells: cells}).IsBlank() {
			headerAt = i
			break
		}
	}
	if headerAt < 0 {
		return table
	}

	table.Header = rows[headerAt]
	table.Rows = make([]domain.RawRow, 0, len(rows)-headerAt-1)
	for i := headerAt + 1; i < len(rows); i++ {
		row := domain.RawRow{Line: firstLine + i, Cells: rows[i]}
		if row.IsBlank() {
			continue
		}
		table.Rows = append(table.Rows, row)
	}

	return table
}
