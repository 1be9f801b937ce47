package spreadsheet

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/dashboard-entregas-vendas/internal/domain"
)

// Workbook é uma pasta de trabalho .xlsx no disco
type Workbook struct {
	path string
}

func NewWorkbook(path string) *Workbook {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &Workbook{path: path}
}

func (w *Workbook) ID() string {
	return "xlsx:" + w.path
}

func (w *Workbook) Open(ctx context.Context) (TableReader, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(w.path); err != nil {
		return nil, &domain.DatasetError{Err: domain.ErrSourceNotFound, Details: err.Error()}
	}

	file, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, &domain.DatasetError{Err: domain.ErrSourceNotFound, Details: err.Error()}
	}

	logrus.WithFields(logrus.Fields{
		"path":   w.path,
		"sheets": file.GetSheetList(),
	}).Debug("spreadsheet: pasta de trabalho aberta")

	return &workbookReader{file: file}, nil
}

type workbookReader struct {
	file *excelize.File
}

// ReadTable lê a aba com valores brutos: datas chegam como número serial do Excel
func (r *workbookReader) ReadTable(ctx context.Context, name string) (*domain.RawTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sheet, ok := r.findSheet(name)
	if !ok {
		return nil, domain.NewDatasetError(domain.ErrSheetMissing, name, "aba não encontrada na pasta de trabalho")
	}

	rows, err := r.file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "spreadsheet: erro ao ler a aba %q", sheet)
	}

	table := BuildTable(name, rows, 1)

	logrus.WithFields(logrus.Fields{
		"sheet": sheet,
		"rows":  len(table.Rows),
	}).Debug("spreadsheet: aba lida")

	return table, nil
}

// findSheet aceita o nome exato ou, na falta dele, ignorando espaços e maiúsculas
func (r *workbookReader) findSheet(name string) (string, bool) {
	sheets := r.file.GetSheetList()
	for _, sheet := range sheets {
		if sheet == name {
			return sheet, true
		}
	}
	for _, sheet := range sheets {
		if strings.EqualFold(strings.TrimSpace(sheet), strings.TrimSpace(name)) {
			return sheet, true
		}
	}
	return "", false
}

func (r *workbookReader) Close() error {
	return r.file.Close()
}
