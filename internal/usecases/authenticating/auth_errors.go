package authenticating

import (
	"errors"
	"fmt"
)

// Tipos de erros de autenticação personalizados
var (
	// Erros de validação
	ErrEmailRequired = errors.New("e-mail obrigatório")
	ErrEmailInvalid  = errors.New("e-mail inválido")
	ErrTokenRequired = errors.New("token obrigatório")
	ErrWeakPassword  = errors.New("senha fraca")

	// Erros de token
	ErrInvalidToken = errors.New("token inválido")
	ErrExpiredToken = errors.New("token expirado")

	// Erros de infraestrutura
	ErrDatabaseOperation = errors.New("erro ao realizar operação no armazenamento")
	ErrTokenGeneration   = errors.New("erro ao gerar token")
)

// Mensagens exibidas ao usuário final
const (
	MsgEmailRequired  = "Podaj e-mail."
	MsgEmailInvalid   = "Podaj poprawny e-mail."
	MsgTokenRequired  = "Brak tokena."
	MsgWeakPassword   = "Hasło musi mieć min. 8 znaków i zawierać literę oraz cyfrę."
	MsgTokenInvalid   = "Token nieważny lub wygasł."
	MsgResetRequested = "Jeśli e-mail istnieje, wysłaliśmy link do resetu hasła."
	MsgResetConfirmed = "Jeśli konto istnieje, hasło zostało zmienione."
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Message string // Mensagem para o cliente
}

// Error implementa a interface error
func (e *AuthError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsTokenError verifica se o erro está relacionado ao token de reset
func IsTokenError(err error) bool {
	return errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrTokenRequired)
}

// NewAuthError cria um novo erro de autenticação
func NewAuthError(baseErr error, code string, message string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Message: message,
	}
}
