package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"github.com/vfg2006/mko-api/pkg/apiErrors"
	"github.com/vfg2006/mko-api/pkg/utils"
)

const MsgRateLimited = "Za dużo prób. Odczekaj chwilę i spróbuj ponownie."

// RateLimitByIP limita requisições por IP do cliente dentro da janela.
// Cada chamada cria um contador independente.
func RateLimitByIP(limit int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(
		limit,
		window,
		httprate.WithKeyFuncs(func(r *http.Request) (string, error) {
			return utils.ClientIP(r), nil
		}),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			apiErrors.WriteError(w, apiErrors.ErrRateLimited, MsgRateLimited, nil)
		}),
	)
}
