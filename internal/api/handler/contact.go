package handler

import (
	"net/http"

	"github.com/vfg2006/mko-api/internal/domain"
	"github.com/vfg2006/mko-api/internal/usecases/contacting"
)

func SubmitContact(service contacting.ContactService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ContactRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if _, err := service.Submit(r.Context(), &req); err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeOK(w, map[string]bool{"ok": true})
	}
}
