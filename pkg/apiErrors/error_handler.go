package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/dashboard-entregas-vendas/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de dados (1000-1999)
	ErrColumnMissing  = "DATA_001" // Coluna obrigatória ausente na aba
	ErrDatasetLoad    = "DATA_002" // Conjunto de dados não pôde ser carregado
	ErrUnknownProduct = "DATA_003" // Produto não encontrado na aba de vendas

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros do servidor (5000-5999)
	ErrInternalServer      = "SRV_001" // Erro interno do servidor
	ErrNotFound            = "SRV_002" // Rota inexistente
	ErrServiceUnavailable  = "SRV_003" // Serviço desabilitado ou indisponível
	ErrJobAlreadyExecuting = "SRV_004" // Rotina já em execução
)

var httpStatusMap = map[string]int{
	ErrColumnMissing:       http.StatusUnprocessableEntity,
	ErrDatasetLoad:         http.StatusServiceUnavailable,
	ErrUnknownProduct:      http.StatusNotFound,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrNotFound:            http.StatusNotFound,
	ErrServiceUnavailable:  http.StatusServiceUnavailable,
	ErrJobAlreadyExecuting: http.StatusConflict,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusOf retorna o status HTTP de um código de erro
func StatusOf(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusOf(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}

// CodeOf traduz um erro do domínio para o código de erro da API
func CodeOf(err error) string {
	switch {
	case errors.Is(err, domain.ErrColumnMissing):
		return ErrColumnMissing
	case errors.Is(err, domain.ErrUnknownProduct):
		return ErrUnknownProduct
	case domain.IsLoadError(err):
		return ErrDatasetLoad
	default:
		return ErrInternalServer
	}
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	apiErr := APIError{
		Code:    CodeOf(err),
		Message: err.Error(),
	}

	var datasetErr *domain.DatasetError
	if errors.As(err, &datasetErr) {
		apiErr.Details = map[string]any{
			"sheet":  datasetErr.Sheet,
			"column": datasetErr.Column,
			"line":   datasetErr.Line,
		}
	}

	return apiErr
}

// WriteFromError escreve a resposta de erro correspondente a um erro do domínio
func WriteFromError(w http.ResponseWriter, err error) {
	apiErr := FromError(err)
	WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
}
