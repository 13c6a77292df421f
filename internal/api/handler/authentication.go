package handler

import (
	"net/http"

	"github.com/vfg2006/mko-api/internal/domain"
	"github.com/vfg2006/mko-api/internal/usecases/authenticating"
	"github.com/vfg2006/mko-api/pkg/apiErrors"
	"github.com/vfg2006/mko-api/pkg/log"
)

// ResetRequestResponse é sempre a mesma para não revelar se o e-mail existe.
// Os campos de depuração só aparecem com RESET_DEBUG ativo.
type ResetRequestResponse struct {
	OK         bool   `json:"ok"`
	Message    string `json:"message"`
	DevSent    *bool  `json:"devSent,omitempty"`
	ResetToken string `json:"resetToken,omitempty"`
	ResetLink  string `json:"resetLink,omitempty"`
}

type MessageResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

func AuthPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeOK(w, map[string]any{"ok": true, "route": "auth"})
	}
}

// NotImplemented responde 501 para login e cadastro, ainda não disponíveis
func NotImplemented() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotImplemented, apiErrors.MsgNotImplemented, nil)
	}
}

func RequestPasswordReset(service authenticating.PasswordResetter, debug bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ResetRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		result, err := service.RequestReset(r.Context(), &req)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		response := ResetRequestResponse{OK: true, Message: authenticating.MsgResetRequested}
		if debug {
			sent := result.Sent
			response.DevSent = &sent
			if !result.MailConfigured {
				response.ResetToken = result.RawToken
				response.ResetLink = result.ResetLink
			}
		}

		writeOK(w, response)
	}
}

func ConfirmPasswordReset(service authenticating.PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ResetConfirmRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := service.ConfirmReset(r.Context(), &req); err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeOK(w, MessageResponse{OK: true, Message: authenticating.MsgResetConfirmed})
	}
}

// IssueCSRFToken entrega um token para o header X-CSRF-Token
func IssueCSRFToken(issuer *authenticating.CSRFIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := issuer.Issue()
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao gerar token CSRF")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, apiErrors.MsgInternal, nil)
			return
		}

		writeOK(w, map[string]any{"ok": true, "token": token})
	}
}
