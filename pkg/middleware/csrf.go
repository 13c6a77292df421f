package middleware

import (
	"net/http"

	"github.com/vfg2006/mko-api/pkg/apiErrors"
)

const HeaderCSRFToken = "X-CSRF-Token"

// CSRFVerifier devolve "" para token válido ou o motivo da recusa
type CSRFVerifier interface {
	Verify(token string) string
}

// CSRF exige X-CSRF-Token válido nos métodos que alteram estado.
// Os caminhos em ignore passam sem verificação.
func CSRF(verifier CSRFVerifier, ignore ...string) func(http.Handler) http.Handler {
	ignored := make(map[string]bool, len(ignore))
	for _, path := range ignore {
		ignored[path] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			if ignored[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			if reason := verifier.Verify(r.Header.Get(HeaderCSRFToken)); reason != "" {
				apiErrors.WriteShortErrorWithReason(w, apiErrors.ErrCSRF, reason)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
