package domain

import (
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name,omitempty"`
	PassHash  string     `json:"pass_hash,omitempty"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Principal é a identidade do chamador, vinda dos headers X-User-Id/X-User-Role
type Principal struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

const TokenKindResetPassword = "reset_password"

// AuthToken guarda apenas o hash do token enviado por e-mail
type AuthToken struct {
	TokenHash string    `json:"token_hash"`
	Email     string    `json:"email,omitempty"`
	UserID    *string   `json:"user_id,omitempty"`
	Kind      string    `json:"kind"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (t *AuthToken) IsExpired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}

type ResetRequest struct {
	Email string `json:"email"`
}

type ResetConfirmRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
	Password    string `json:"password"`
}

// ResetRequestResult carrega os campos de depuração do fluxo de reset
type ResetRequestResult struct {
	MailConfigured bool
	Sent           bool
	RawToken       string
	ResetLink      string
}
