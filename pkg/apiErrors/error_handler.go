package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrUserDisabled          = "AUTH_002" // Usuário desativado
	ErrUserNotFound          = "AUTH_003" // Usuário não encontrado
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes
	ErrUserAlreadyExists     = "AUTH_009" // Usuário já existe

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrTooManyRequests     = "VAL_004" // Limite de requisições excedido
	ErrRouteNotFound       = "VAL_005" // Rota inexistente
	ErrMethodNotAllowed    = "VAL_006" // Método não suportado pela rota

	// Erros de catálogo e vendas
	ErrProductNotFound   = "PRD_001" // Produto não encontrado
	ErrProductExists     = "PRD_002" // Modelo já cadastrado
	ErrSalesNotFound     = "PRD_003" // Produto sem histórico de vendas
	ErrDuplicateSales    = "PRD_004" // Venda duplicada para o mês
	ErrInvalidSalesMonth = "PRD_005" // Mês fora do formato YYYY-MM

	// Erros dos modelos preditivos
	ErrInvalidSpec         = "ML_001" // Especificação inválida para o vetor de atributos
	ErrInsufficientData    = "ML_002" // Dados insuficientes para treinar
	ErrDivisionUndefined   = "ML_003" // Previsão original igual a zero
	ErrUntrainedModel      = "ML_004" // Modelo sem treinamento
	ErrInvalidHorizon      = "ML_005" // Horizonte de previsão inválido
	ErrUnknownModelVariant = "ML_006" // Variante de modelo desconhecida

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrTooManyRequests:       http.StatusTooManyRequests,
	ErrRouteNotFound:         http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrProductNotFound:       http.StatusNotFound,
	ErrProductExists:         http.StatusConflict,
	ErrSalesNotFound:         http.StatusNotFound,
	ErrDuplicateSales:        http.StatusConflict,
	ErrInvalidSalesMonth:     http.StatusBadRequest,
	ErrInvalidSpec:           http.StatusUnprocessableEntity,
	ErrInsufficientData:      http.StatusUnprocessableEntity,
	ErrDivisionUndefined:     http.StatusUnprocessableEntity,
	ErrUntrainedModel:        http.StatusServiceUnavailable,
	ErrInvalidHorizon:        http.StatusBadRequest,
	ErrUnknownModelVariant:   http.StatusBadRequest,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
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
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
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
