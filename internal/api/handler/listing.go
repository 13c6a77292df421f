package handler

import (
	"net/http"

	"github.com/vfg2006/mko-api/internal/domain"
	"github.com/vfg2006/mko-api/internal/usecases/listing"
	"github.com/vfg2006/mko-api/pkg/middleware"
)

func adsPing(w http.ResponseWriter, r *http.Request) {
	writeOK(w, map[string]any{
		"ok":    true,
		"route": "ads",
		"user":  middleware.PrincipalFromContext(r.Context()),
	})
}

func ListListings(service listing.ListingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listings, err := service.ListListings(r.Context())
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeOK(w, map[string]any{"ok": true, "items": listings})
	}
}

// GetListing também atende /api/ads/ping, que divide a posição de :id no httprouter
func GetListing(service listing.ListingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathParam(r, "id")
		if id == "ping" {
			adsPing(w, r)
			return
		}

		item, err := service.GetListing(r.Context(), id)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeOK(w, map[string]any{"ok": true, "item": item})
	}
}

func CreateListing(service listing.ListingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateListingRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		item, err := service.CreateListing(r.Context(), middleware.PrincipalFromContext(r.Context()), &req)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{"ok": true, "item": item})
	}
}

func DeleteListing(service listing.ListingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := service.DeleteListing(r.Context(), middleware.PrincipalFromContext(r.Context()), pathParam(r, "id"))
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeOK(w, map[string]bool{"ok": true})
	}
}

func ReportListing(service listing.ListingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateReportRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		report, err := service.ReportListing(r.Context(), middleware.PrincipalFromContext(r.Context()), pathParam(r, "id"), &req)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{"ok": true, "item": report})
	}
}
