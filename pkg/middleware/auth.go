package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/mko-api/internal/domain"
	"github.com/vfg2006/mko-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyPrincipal contextKey = "principal"

	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
)

// principalFromHeaders monta a identidade a partir dos headers de desenvolvimento
func principalFromHeaders(r *http.Request) *domain.Principal {
	userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
	if userID == "" {
		return nil
	}

	role := strings.TrimSpace(r.Header.Get(HeaderUserRole))
	if role == "" {
		role = domain.RoleUser
	}

	return &domain.Principal{ID: userID, Role: role}
}

// WithPrincipal anexa o principal ao contexto
func WithPrincipal(ctx context.Context, principal *domain.Principal) context.Context {
	return context.WithValue(ctx, ContextKeyPrincipal, principal)
}

// PrincipalFromContext devolve o principal da requisição ou nil se anônima
func PrincipalFromContext(ctx context.Context) *domain.Principal {
	principal, _ := ctx.Value(ContextKeyPrincipal).(*domain.Principal)
	return principal
}

// PrincipalMiddleware anexa o principal quando X-User-Id está presente. Nunca bloqueia.
func PrincipalMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if principal := principalFromHeaders(r); principal != nil {
				r = r.WithContext(WithPrincipal(r.Context(), principal))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AuthRequired bloqueia requisições anônimas com 401
func AuthRequired() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := PrincipalFromContext(r.Context())
			if principal == nil {
				principal = principalFromHeaders(r)
			}

			if principal == nil {
				apiErrors.WriteGateError(w, apiErrors.ErrAuthRequired, "")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}
