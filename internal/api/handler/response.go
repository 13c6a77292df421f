package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/mko-api/internal/usecases/adserving"
	"github.com/vfg2006/mko-api/internal/usecases/authenticating"
	"github.com/vfg2006/mko-api/internal/usecases/contacting"
	"github.com/vfg2006/mko-api/internal/usecases/listing"
	"github.com/vfg2006/mko-api/pkg/apiErrors"
	"github.com/vfg2006/mko-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// mensagens exibidas para cada código de erro do envelope unificado
var codeMessages = map[string]string{
	apiErrors.ErrBadSlot:         "Nieprawidłowy slot reklamowy.",
	apiErrors.ErrBadType:         "Nieprawidłowy typ zdarzenia.",
	apiErrors.ErrBadCreativeID:   "Brak identyfikatora kreacji.",
	apiErrors.ErrBadDateRange:    "Data zakończenia nie może być wcześniejsza niż data rozpoczęcia.",
	apiErrors.ErrValidation:      apiErrors.MsgValidation,
	apiErrors.ErrNotFound:        apiErrors.MsgNotFound,
	apiErrors.ErrForbidden:       "Brak uprawnień do tej operacji.",
	apiErrors.ErrAuthRequired:    "Wymagane zalogowanie.",
	apiErrors.ErrUnknownCronType: "Nieznany typ zadania.",
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao serializar resposta")
	}
}

func writeOK(w http.ResponseWriter, body any) {
	writeJSON(w, http.StatusOK, body)
}

// decodeJSON lê o corpo em dst. Corpo vazio é tratado como objeto vazio.
// Em caso de falha a resposta de erro já foi escrita e o retorno é false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		apiErrors.WriteError(w, apiErrors.ErrBodyTooLarge, apiErrors.MsgBodyTooLarge, nil)
		return false
	}

	log.ForContext(r.Context()).WithError(err).Debug("JSON inválido no corpo da requisição")
	apiErrors.WriteError(w, apiErrors.ErrInvalidJSON, apiErrors.MsgInvalidJSON, nil)
	return false
}

// usecaseError extrai código, mensagem e detalhes dos erros tipados dos casos de uso
func usecaseError(err error) (code string, message string, details any) {
	var (
		adErr      *adserving.AdError
		authErr    *authenticating.AuthError
		listingErr *listing.ListingError
		contactErr *contacting.ContactError
	)

	switch {
	case errors.As(err, &adErr):
		code, details = adErr.Code, adErr.Details
	case errors.As(err, &authErr):
		code, message = authErr.Code, authErr.Message
	case errors.As(err, &listingErr):
		code = listingErr.Code
		if len(listingErr.Details) > 0 {
			details = listingErr.Details
		}
	case errors.As(err, &contactErr):
		code = contactErr.Code
		if len(contactErr.Details) > 0 {
			details = contactErr.Details
		}
	}

	if message == "" {
		message = codeMessages[code]
	}

	return code, message, details
}

// writeUsecaseError responde no envelope {ok:false, code, message}.
// Erros de servidor são registrados e chegam ao cliente como INTERNAL_ERROR.
func writeUsecaseError(w http.ResponseWriter, r *http.Request, err error) {
	code, message, details := usecaseError(err)

	if code == "" || apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		log.ForContext(r.Context()).WithError(err).Error("Erro interno ao processar requisição")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, apiErrors.MsgInternal, nil)
		return
	}

	apiErrors.WriteError(w, code, message, details)
}

// writeAdSystemError responde no envelope curto {error: CODE} dos endpoints públicos de anúncios
func writeAdSystemError(w http.ResponseWriter, r *http.Request, err error) {
	code, _, _ := usecaseError(err)

	if code == "" || apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		log.ForContext(r.Context()).WithError(err).Error("Erro interno no sistema de anúncios")
		apiErrors.WriteShortError(w, apiErrors.ErrInternalServer)
		return
	}

	apiErrors.WriteShortError(w, code)
}

// NotFound responde 404 em JSON para rotas da API
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api" || strings.HasPrefix(r.URL.Path, "/api/") {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, apiErrors.MsgNotFound, nil)
			return
		}
		http.NotFound(w, r)
	})
}
