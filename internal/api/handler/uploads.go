package handler

import (
	"net/http"

	"github.com/vfg2006/mko-api/pkg/apiErrors"
)

const uploadsHint = "Upload plików nie jest jeszcze obsługiwany."

func UploadsPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeOK(w, map[string]any{"ok": true, "route": "uploads"})
	}
}

func Upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteGateError(w, apiErrors.ErrNotImplemented, uploadsHint)
	}
}
