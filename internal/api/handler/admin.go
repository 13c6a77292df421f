package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/mko-api/internal/domain"
	"github.com/vfg2006/mko-api/internal/usecases/adserving"
	"github.com/vfg2006/mko-api/internal/usecases/contacting"
	"github.com/vfg2006/mko-api/internal/usecases/listing"
	"github.com/vfg2006/mko-api/pkg/middleware"
)

func pathParam(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}

func AdminPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeOK(w, map[string]any{
			"ok":    true,
			"route": "admin",
			"user":  middleware.PrincipalFromContext(r.Context()),
		})
	}
}

func ListAdSlots(service adserving.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slots, err := service.ListSlots(r.Context())
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeOK(w, map[string]any{"ok": true, "items": slots})
	}
}

func GetAdSlot(service adserving.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slot, err := service.GetSlot(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeOK(w, map[string]any{"ok": true, "item": slot})
	}
}

func UpdateAdSlot(service adserving.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateAdSlotRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		slot, err := service.UpdateSlot(r.Context(), pathParam(r, "id"), &req)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeOK(w, map[string]any{"ok": true, "item": slot})
	}
}

func ListAdCreatives(service adserving.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filter := domain.AdCreativeFilter{
			SlotID: strings.TrimSpace(query.Get("slot_id")),
			Status: domain.AdCreativeStatus(strings.TrimSpace(query.Get("status"))),
		}

		creatives, err := service.ListCreatives(r.Context(), filter)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeOK(w, map[string]any{"ok": true, "items": creatives})
	}
}

func GetAdCreative(service adserving.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		creative, err := service.GetCreative(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeOK(w, map[string]any{"ok": true, "item": creative})
	}
}

func CreateAdCreative(service adserving.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateAdCreativeRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		creative, err := service.CreateCreative(r.Context(), &req)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{"ok": true, "item": creative})
	}
}

func UpdateAdCreative(service adserving.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateAdCreativeRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		creative, err := service.UpdateCreative(r.Context(), pathParam(r, "id"), &req)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeOK(w, map[string]any{"ok": true, "item": creative})
	}
}

func DeleteAdCreative(service adserving.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteCreative(r.Context(), pathParam(r, "id")); err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeOK(w, map[string]bool{"ok": true})
	}
}

func ListAdEvents(service adserving.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filter := domain.AdEventFilter{
			CreativeID: strings.TrimSpace(query.Get("creative_id")),
			Type:       domain.AdEventType(strings.TrimSpace(query.Get("type"))),
		}

		// limite inválido cai no padrão do caso de uso
		if limit, err := strconv.Atoi(query.Get("limit")); err == nil {
			filter.Limit = limit
		}

		events, err := service.ListEvents(r.Context(), filter)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeOK(w, map[string]any{"ok": true, "items": events})
	}
}

func ListContacts(service contacting.ContactService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, err := service.ListContacts(r.Context())
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeOK(w, map[string]any{"ok": true, "items": contacts})
	}
}

func ListReports(service listing.ListingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reports, err := service.ListReports(r.Context())
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeOK(w, map[string]any{"ok": true, "items": reports})
	}
}
