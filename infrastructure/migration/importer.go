// Package migration copia as abas de uma planilha para tabelas do PostgreSQL,
// no formato lido pela fonte SOURCE_KIND=postgres
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/dashboard-entregas-vendas/internal/domain"
)

const progressEvery = 100

// Execer é o subconjunto de *sql.Tx usado na importação
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

// ImportTable recria a tabela com o nome da aba e insere todas as linhas como texto.
// A conversão de tipos continua sendo feita na carga, igual à leitura do .xlsx
func ImportTable(ctx context.Context, tx Execer, table *domain.RawTable) (int, error) {
	columns := tableColumns(table.Header)
	if len(columns) == 0 {
		return 0, errors.Errorf("aba %q sem cabeçalho", table.Name)
	}

	logrus.Infof("Importando %d linhas da aba %q...", len(table.Rows), table.Name)
	startTime := time.Now()

	if _, err := tx.ExecContext(ctx, dropTableSQL(table.Name)); err != nil {
		return 0, errors.Wrapf(err, "erro ao remover tabela %q", table.Name)
	}
	if _, err := tx.ExecContext(ctx, createTableSQL(table.Name, columns)); err != nil {
		return 0, errors.Wrapf(err, "erro ao criar tabela %q", table.Name)
	}

	query, err := insertSQL(table.Name, columns)
	if err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, errors.Wrapf(err, "erro ao preparar insert em %q", table.Name)
	}
	defer stmt.Close()

	inserted := 0
	for i, row := range table.Rows {
		if _, err := stmt.ExecContext(ctx, rowValues(row, len(columns))...); err != nil {
			return inserted, errors.Wrapf(err, "erro ao inserir linha %d da aba %q", row.Line, table.Name)
		}
		inserted++

		if i > 0 && i%progressEvery == 0 {
			logrus.Debugf("Progresso: %d/%d linhas de %q", i+1, len(table.Rows), table.Name)
		}
	}

	logrus.Infof("Aba %q importada em %v. Linhas: %d", table.Name, time.Since(startTime), inserted)
	return inserted, nil
}

// tableColumns dá nome às colunas sem cabeçalho e diferencia nomes repetidos.
// O sufixo nunca repete um nome já usado, inclusive um cabeçalho real como "a_2"
func tableColumns(header []string) []string {
	columns := make([]string, 0, len(header))
	used := make(map[string]struct{}, len(header))

	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}

		candidate := name
		for n := 2; ; n++ {
			if _, taken := used[strings.ToLower(candidate)]; !taken {
				break
			}
			candidate = fmt.Sprintf("%s_%d", name, n)
		}

		used[strings.ToLower(candidate)] = struct{}{}
		columns = append(columns, candidate)
	}

	// Colunas vazias no fim do cabeçalho não viram colunas da tabela
	for len(columns) > 0 && strings.TrimSpace(header[len(columns)-1]) == "" {
		columns = columns[:len(columns)-1]
	}

	return columns
}

func rowValues(row domain.RawRow, width int) []any {
	values := make([]any, width)
	for i := range values {
		cell := row.Cell(i)
		if strings.TrimSpace(cell) == "" {
			values[i] = nil
			continue
		}
		values[i] = cell
	}
	return values
}

func dropTableSQL(table string) string {
	return "DROP TABLE IF EXISTS " + pq.QuoteIdentifier(table)
}

func createTableSQL(table string, columns []string) string {
	definitions := make([]string, len(columns))
	for i, column := range columns {
		definitions[i] = pq.QuoteIdentifier(column) + " TEXT"
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", pq.QuoteIdentifier(table), strings.Join(definitions, ", "))
}

func insertSQL(table string, columns []string) (string, error) {
	quoted := make([]string, len(columns))
	placeholders := make([]any, len(columns))
	for i, column := range columns {
		quoted[i] = pq.QuoteIdentifier(column)
	}

	query, _, err := sq.Insert(pq.QuoteIdentifier(table)).
		Columns(quoted...).
		Values(placeholders...).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", errors.Wrap(err, "erro ao montar insert")
	}
	return query, nil
}
