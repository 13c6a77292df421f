package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/mko-api/internal/usecases/adserving"
	"github.com/vfg2006/mko-api/internal/usecases/authenticating"
	"github.com/vfg2006/mko-api/internal/usecases/listing"
	"github.com/vfg2006/mko-api/pkg/apiErrors"
	"github.com/vfg2006/mko-api/pkg/log"
)

func TestWriteUsecaseError(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "erro de autenticação usa a mensagem do caso de uso",
			err:            authenticating.NewAuthError(authenticating.ErrWeakPassword, apiErrors.ErrWeakPassword, authenticating.MsgWeakPassword),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"ok":false,"code":"WEAK_PASSWORD","message":"Hasło musi mieć min. 8 znaków i zawierać literę oraz cyfrę."}`,
		},
		{
			name:           "erro de anúncio com detalhes",
			err:            adserving.NewAdError(adserving.ErrValidation, apiErrors.ErrValidation, map[string]string{"image_url": "required"}),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"ok":false,"code":"VALIDATION_ERROR","message":"Nieprawidłowe dane.","details":{"image_url":"required"}}`,
		},
		{
			name:           "recurso inexistente",
			err:            &listing.ListingError{Err: listing.ErrListingNotFound, Code: apiErrors.ErrNotFound},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"ok":false,"code":"NOT_FOUND","message":"Nie znaleziono zasobu."}`,
		},
		{
			name:           "erro de armazenamento vira INTERNAL_ERROR",
			err:            adserving.NewAdError(adserving.ErrStorage, apiErrors.ErrStorage, nil),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"ok":false,"code":"INTERNAL_ERROR","message":"Wystąpił błąd."}`,
		},
		{
			name:           "erro desconhecido vira INTERNAL_ERROR",
			err:            errors.New("falha qualquer"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"ok":false,"code":"INTERNAL_ERROR","message":"Wystąpił błąd."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeUsecaseError(rec, httptest.NewRequest(http.MethodGet, "/api/x", nil), tt.err)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}

func TestWriteAdSystemError(t *testing.T) {
	log.SetupTestLogger()

	rec := httptest.NewRecorder()
	writeAdSystemError(rec, httptest.NewRequest(http.MethodGet, "/api/ad-serve", nil), adserving.NewAdError(adserving.ErrStorage, apiErrors.ErrStorage, nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"INTERNAL_ERROR"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		expectedOK bool
		expected   string
	}{
		{"corpo vazio vira objeto vazio", "", true, ""},
		{"objeto válido", `{"email":"a@b.pl"}`, true, "a@b.pl"},
		{"json inválido", `{email}`, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dst struct {
				Email string `json:"email"`
			}

			rec := httptest.NewRecorder()
			ok := decodeJSON(rec, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(tt.body)), &dst)

			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expected, dst.Email)
			if !ok {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			}
		})
	}
}

func TestNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nada", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	rec = httptest.NewRecorder()
	NotFound().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pagina", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEqual(t, "application/json", rec.Header().Get("Content-Type"))
}
