package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

// Cors libera as origens de CORS_ORIGIN (lista separada por vírgula).
// Com "*" a origem da requisição é refletida, o que permite credenciais.
func Cors(corsOrigin string) func(http.Handler) http.Handler {
	options := cors.Options{
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With", "X-CSRF-Token", HeaderUserID, HeaderUserRole},
		AllowCredentials: true,
		MaxAge:           86400,
	}

	corsOrigin = strings.TrimSpace(corsOrigin)
	if corsOrigin == "" || corsOrigin == "*" {
		options.AllowOriginFunc = func(r *http.Request, origin string) bool { return true }
	} else {
		for _, origin := range strings.Split(corsOrigin, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				options.AllowedOrigins = append(options.AllowedOrigins, origin)
			}
		}
	}

	return cors.Handler(options)
}
