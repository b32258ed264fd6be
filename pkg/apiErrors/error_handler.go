package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/marketmind-gateway/infrastructure/integrator/marketmind"
	"github.com/vfg2006/marketmind-gateway/infrastructure/integrator/marketmind/mmclient"
	"github.com/vfg2006/marketmind-gateway/internal/usecases/workspace"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de sessão
	ErrSessionNotFound     = "SES_001" // Sessão inexistente ou expirada
	ErrSessionLimitReached = "SES_002" // Limite de sessões abertas atingido

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrLeadNotFound        = "VAL_004" // Posição de lead inexistente

	// Erros de usuário
	ErrUserNotFound = "USR_001" // Usuário inexistente no backend

	// Erros de rota
	ErrRouteNotFound    = "RTE_001" // Rota inexistente
	ErrMethodNotAllowed = "RTE_002" // Método não suportado pela rota

	// Erros do servidor
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrExternalService = "SRV_003" // Backend respondeu com erro
	ErrCommunication   = "SRV_004" // Backend inacessível ou sem resposta
)

var httpStatusMap = map[string]int{
	ErrSessionNotFound:     http.StatusNotFound,
	ErrSessionLimitReached: http.StatusServiceUnavailable,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrLeadNotFound:        http.StatusNotFound,
	ErrUserNotFound:        http.StatusNotFound,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrCommunication:       http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor devolve o status HTTP do código, 500 quando desconhecido
func StatusFor(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError escreve o erro padronizado na resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// FromError classifica um erro do gateway em um APIError
func FromError(err error) APIError {
	if err == nil {
		return APIError{Code: ErrInternalServer, Message: "unknown error"}
	}

	var validationErr *workspace.ValidationError
	if errors.As(err, &validationErr) {
		return APIError{
			Code:    ErrMissingRequiredData,
			Message: err.Error(),
			Details: map[string]any{"page": validationErr.Page, "fields": validationErr.Fields},
		}
	}

	if transportErr, ok := mmclient.AsTransportError(err); ok {
		apiErr := APIError{Code: ErrCommunication, Message: transportErr.Message}
		if transportErr.HasStatus() {
			apiErr.Code = ErrExternalService
			apiErr.Details = map[string]any{"backend_status": transportErr.StatusCode, "path": transportErr.Path}
		}
		return apiErr
	}

	switch {
	case errors.Is(err, workspace.ErrSessionNotFound):
		return APIError{Code: ErrSessionNotFound, Message: err.Error()}
	case errors.Is(err, workspace.ErrSessionLimitReached):
		return APIError{Code: ErrSessionLimitReached, Message: err.Error()}
	case errors.Is(err, workspace.ErrLeadNotFound):
		return APIError{Code: ErrLeadNotFound, Message: err.Error()}
	case errors.Is(err, marketmind.ErrUserNotFound):
		return APIError{Code: ErrUserNotFound, Message: err.Error()}
	}

	return APIError{Code: ErrInternalServer, Message: err.Error()}
}

// WriteFromError classifica err e escreve a resposta correspondente
func WriteFromError(w http.ResponseWriter, err error) {
	apiErr := FromError(err)
	WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
}
