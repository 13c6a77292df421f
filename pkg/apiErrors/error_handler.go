package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro expostos ao cliente
const (
	// Erros de autenticação
	ErrAuthRequired   = "AUTH_REQUIRED"
	ErrAdminRequired  = "ADMIN_REQUIRED"
	ErrForbidden      = "FORBIDDEN"
	ErrCSRF           = "CSRF"
	ErrEmailRequired  = "EMAIL_REQUIRED"
	ErrEmailInvalid   = "EMAIL_INVALID"
	ErrTokenRequired  = "TOKEN_REQUIRED"
	ErrTokenInvalid   = "TOKEN_INVALID"
	ErrTokenExpired   = "TOKEN_EXPIRED"
	ErrWeakPassword   = "WEAK_PASSWORD"
	ErrRateLimited    = "RATE_LIMITED"
	ErrNotImplemented = "NOT_IMPLEMENTED"

	// Erros de validação
	ErrInvalidJSON     = "INVALID_JSON"
	ErrValidation      = "VALIDATION_ERROR"
	ErrBadSlot         = "BAD_SLOT"
	ErrBadCreativeID   = "BAD_CREATIVE_ID"
	ErrBadType         = "BAD_TYPE"
	ErrBadDateRange    = "BAD_DATE_RANGE"
	ErrBodyTooLarge    = "BODY_TOO_LARGE"
	ErrUnknownCronType = "UNKNOWN_CRON_TYPE"

	// Recurso inexistente
	ErrNotFound = "NOT_FOUND"

	// Erros do servidor
	ErrInternalServer = "INTERNAL_ERROR"
	ErrStorage        = "STORAGE_ERROR"
	ErrConflict       = "CONFLICT"
)

// Mensagens genéricas devolvidas ao cliente
const (
	MsgInternal       = "Wystąpił błąd."
	MsgInvalidJSON    = "Nieprawidłowy format danych (JSON)."
	MsgNotFound       = "Nie znaleziono zasobu."
	MsgNotImplemented = "Funkcja nie jest jeszcze dostępna."
	MsgBodyTooLarge   = "Przesłane dane są zbyt duże."
	MsgValidation     = "Nieprawidłowe dane."
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrAuthRequired:    http.StatusUnauthorized,
	ErrAdminRequired:   http.StatusForbidden,
	ErrForbidden:       http.StatusForbidden,
	ErrCSRF:            http.StatusForbidden,
	ErrEmailRequired:   http.StatusBadRequest,
	ErrEmailInvalid:    http.StatusBadRequest,
	ErrTokenRequired:   http.StatusBadRequest,
	ErrTokenInvalid:    http.StatusBadRequest,
	ErrTokenExpired:    http.StatusBadRequest,
	ErrWeakPassword:    http.StatusBadRequest,
	ErrRateLimited:     http.StatusTooManyRequests,
	ErrNotImplemented:  http.StatusNotImplemented,
	ErrInvalidJSON:     http.StatusBadRequest,
	ErrValidation:      http.StatusBadRequest,
	ErrBadSlot:         http.StatusBadRequest,
	ErrBadCreativeID:   http.StatusBadRequest,
	ErrBadType:         http.StatusBadRequest,
	ErrBadDateRange:    http.StatusBadRequest,
	ErrBodyTooLarge:    http.StatusRequestEntityTooLarge,
	ErrUnknownCronType: http.StatusBadRequest,
	ErrNotFound:        http.StatusNotFound,
	ErrConflict:        http.StatusConflict,
	ErrInternalServer:  http.StatusInternalServerError,
	ErrStorage:         http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	OK      bool   `json:"ok"`
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// ShortError é o envelope usado pelos endpoints do sistema de anúncios
type ShortError struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

// GateError é o envelope dos bloqueios de autenticação: {ok:false, error: CODE}
type GateError struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
	Hint  string `json:"hint,omitempty"`
}

// StatusFor devolve o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	writeJSON(w, StatusFor(code), APIError{
		OK:      false,
		Code:    code,
		Message: message,
		Details: details,
	})
}

// WriteShortError escreve {error: CODE}
func WriteShortError(w http.ResponseWriter, code string) {
	writeJSON(w, StatusFor(code), ShortError{Error: code})
}

// WriteShortErrorWithReason escreve {error: CODE, reason: REASON}
func WriteShortErrorWithReason(w http.ResponseWriter, code, reason string) {
	writeJSON(w, StatusFor(code), ShortError{Error: code, Reason: reason})
}

// WriteGateError escreve {ok:false, error: CODE}
func WriteGateError(w http.ResponseWriter, code, hint string) {
	writeJSON(w, StatusFor(code), GateError{OK: false, Error: code, Hint: hint})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
