package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro expostos pela API
const (
	// Erros de validação (VAL_xxx)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidUpload       = "VAL_003" // Arquivo enviado não pôde ser lido
	ErrUnparseableFile     = "VAL_004" // Planilha não pôde ser interpretada
	ErrFileTooLarge        = "VAL_005" // Arquivo excede o tamanho máximo

	// Erros de recurso (RES_xxx)
	ErrStatementNotFound = "RES_001" // Extrato não encontrado ou expirado

	// Erros do servidor (SRV_xxx)
	ErrInternalServer = "SRV_001" // Erro interno do servidor
	ErrChartRendering = "SRV_002" // Erro ao renderizar gráfico
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidUpload:       http.StatusBadRequest,
	ErrUnparseableFile:     http.StatusBadRequest,
	ErrFileTooLarge:        http.StatusRequestEntityTooLarge,
	ErrStatementNotFound:   http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrChartRendering:      http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
// Útil para quando você quer envolver um erro existente em um erro de API
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
