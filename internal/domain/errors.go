package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Erros específicos da carga e das consultas do dashboard
var (
	// Erros de carga (fatais para a sessão)
	ErrSourceNotFound = errors.New("source not found")
	ErrSheetMissing   = errors.New("sheet missing")
	ErrMalformedDate  = errors.New("malformed date")
	ErrMalformedValue = errors.New("malformed numeric value")
	ErrInvalidDivisor = errors.New("zero or missing divisor")

	// Erros de consulta (afetam apenas a seção envolvida)
	ErrColumnMissing  = errors.New("column missing")
	ErrUnknownProduct = errors.New("unknown product")
)

// DatasetError é um erro com o contexto da aba, coluna e linha envolvidas
type DatasetError struct {
	Err     error  // Erro base
	Sheet   string // Aba envolvida (quando aplicável)
	Column  string // Coluna envolvida (quando aplicável)
	Line    int    // Linha na fonte, base 1 (0 quando não se aplica)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *DatasetError) Error() string {
	parts := make([]string, 0, 4)
	if e.Sheet != "" {
		parts = append(parts, fmt.Sprintf("sheet %q", e.Sheet))
	}
	if e.Column != "" {
		parts = append(parts, fmt.Sprintf("column %q", e.Column))
	}
	if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}
	if e.Details != "" {
		parts = append(parts, e.Details)
	}

	if len(parts) == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), strings.Join(parts, ", "))
}

// Unwrap retorna o erro subjacente
func (e *DatasetError) Unwrap() error {
	return e.Err
}

// NewDatasetError cria um DatasetError sem posição de linha
func NewDatasetError(err error, sheet string, details string) *DatasetError {
	return &DatasetError{
		Err:     err,
		Sheet:   sheet,
		Details: details,
	}
}

// IsLoadError indica se o erro impede a carga do conjunto de dados inteiro
func IsLoadError(err error) bool {
	return errors.Is(err, ErrSourceNotFound) ||
		errors.Is(err, ErrSheetMissing) ||
		errors.Is(err, ErrMalformedDate) ||
		errors.Is(err, ErrMalformedValue) ||
		errors.Is(err, ErrInvalidDivisor)
}
