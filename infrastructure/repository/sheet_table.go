package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/dashboard-entregas-vendas/infrastructure/database/postgres"
	"github.com/vfg2006/dashboard-entregas-vendas/infrastructure/spreadsheet"
	"github.com/vfg2006/dashboard-entregas-vendas/internal/config"
	"github.com/vfg2006/dashboard-entregas-vendas/internal/domain"
)

const informationSchemaTables = "information_schema.tables"

// SheetTableSource lê cada aba como uma tabela do Postgres com o mesmo nome
type SheetTableSource struct {
	cfg config.Database
}

func NewSheetTableSource(cfg config.Database) *SheetTableSource {
	return &SheetTableSource{cfg: cfg}
}

func (s *SheetTableSource) ID() string {
	return "postgres:" + s.cfg.URL
}

func (s *SheetTableSource) Open(ctx context.Context) (spreadsheet.TableReader, error) {
	conn, err := postgres.NewConnection(ctx, s.cfg)
	if err != nil {
		return nil, &domain.DatasetError{Err: domain.ErrSourceNotFound, Details: err.Error()}
	}

	return NewSheetTableReader(conn), nil
}

type sheetTableReader struct {
	conn postgres.Conn
}

func NewSheetTableReader(conn postgres.Conn) spreadsheet.TableReader {
	return &sheetTableReader{conn: conn}
}

func (r *sheetTableReader) ReadTable(ctx context.Context, name string) (*domain.RawTable, error) {
	table, err := r.resolveTable(ctx, name)
	if err != nil {
		return nil, err
	}

	query, args, err := selectSheetQuery(table)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler a tabela %q", table)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler as colunas")
	}

	data := [][]string{columns}
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear linha")
		}

		cells := make([]string, len(values))
		for i, value := range values {
			cells[i] = cellString(value)
		}
		data = append(data, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro ao iterar as linhas")
	}

	logrus.WithFields(logrus.Fields{
		"table": table,
		"rows":  len(data) - 1,
	}).Debug("repository: tabela lida")

	return spreadsheet.BuildTable(name, data, 1), nil
}

// resolveTable procura a tabela no schema atual sem diferenciar maiúsculas
func (r *sheetTableReader) resolveTable(ctx context.Context, name string) (string, error) {
	query, args, err := resolveTableQuery(name)
	if err != nil {
		return "", errors.Wrap(err, "erro ao construir a query")
	}

	var table string
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&table)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.NewDatasetError(domain.ErrSheetMissing, name, "tabela não encontrada no banco")
		}
		return "", errors.Wrapf(err, "erro ao procurar a tabela %q", name)
	}

	return table, nil
}

func (r *sheetTableReader) Close() error {
	return r.conn.Close()
}

func resolveTableQuery(name string) (string, []any, error) {
	name = strings.TrimSpace(name)
	return squirrel.
		Select("table_name").
		From(informationSchemaTables).
		Where("table_schema = current_schema()").
		Where("lower(table_name) = lower(?)", name).
		OrderByClause("table_name = ? DESC", name).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func selectSheetQuery(table string) (string, []any, error) {
	return squirrel.
		Select("*").
		From(pq.QuoteIdentifier(table)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// cellString converte um valor do driver para o texto que uma célula de planilha teria
func cellString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case []byte:
		return string(v)
	case string:
		return v
	case time.Time:
		return v.Format(time.DateTime)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
