package middleware

import (
	"net/http"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mko-api/internal/domain"
	"github.com/vfg2006/mko-api/pkg/apiErrors"
)

// RoleMiddleware restringe o acesso aos roles informados.
// Qualquer recusa, inclusive de chamador anônimo, responde 403 ADMIN_REQUIRED.
func RoleMiddleware(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := PrincipalFromContext(r.Context())
			if principal == nil {
				principal = principalFromHeaders(r)
			}

			if principal == nil || !slices.Contains(allowedRoles, principal.Role) {
				fields := logrus.Fields{"path": r.URL.Path}
				if principal != nil {
					fields["user_id"] = principal.ID
					fields["user_role"] = principal.Role
				}
				logrus.WithFields(fields).Warn("Acesso negado à área restrita")

				apiErrors.WriteGateError(w, apiErrors.ErrAdminRequired, "")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

// AdminOnly permite acesso apenas para administradores
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware(domain.RoleAdmin)
}
