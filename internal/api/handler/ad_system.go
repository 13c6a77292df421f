package handler

import (
	"net/http"

	"github.com/vfg2006/mko-api/internal/domain"
	"github.com/vfg2006/mko-api/internal/usecases/adserving"
	"github.com/vfg2006/mko-api/pkg/utils"
)

func clientInfo(r *http.Request) domain.ClientInfo {
	return domain.ClientInfo{
		IP:        utils.ClientIP(r),
		UserAgent: r.UserAgent(),
	}
}

// AdServe devolve um criativo do slot ou null quando não há anúncio elegível
func AdServe(service adserving.AdServingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		reqCtx := domain.NewRequestContext(query.Get("city"), query.Get("category"), query.Get("page"))

		result, err := service.Serve(r.Context(), query.Get("slot"), reqCtx, clientInfo(r))
		if err != nil {
			writeAdSystemError(w, r, err)
			return
		}

		if !result.Found {
			writeOK(w, nil)
			return
		}

		writeOK(w, result.Creative)
	}
}

// AdEvent registra uma visualização ou clique enviada pelo navegador
func AdEvent(service adserving.AdServingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.TrackRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := service.RecordEvent(r.Context(), &req, clientInfo(r)); err != nil {
			writeAdSystemError(w, r, err)
			return
		}

		writeOK(w, map[string]bool{"ok": true})
	}
}

func AdSystemPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeOK(w, map[string]any{"ok": true, "route": "adSystem"})
	}
}
