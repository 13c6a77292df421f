package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/mko-api/infrastructure/database/jsondb"
	"github.com/vfg2006/mko-api/infrastructure/mailer"
	"github.com/vfg2006/mko-api/infrastructure/repository"
	"github.com/vfg2006/mko-api/internal/config"
	"github.com/vfg2006/mko-api/internal/domain"
	"github.com/vfg2006/mko-api/internal/scheduler"
	"github.com/vfg2006/mko-api/internal/usecases/adserving"
	"github.com/vfg2006/mko-api/internal/usecases/authenticating"
	"github.com/vfg2006/mko-api/internal/usecases/contacting"
	"github.com/vfg2006/mko-api/internal/usecases/listing"
	"github.com/vfg2006/mko-api/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type testEnv struct {
	handler http.Handler
	repos   *repository.Repositories
}

func newTestEnv(t *testing.T, mutate ...func(cfg *config.Config)) *testEnv {
	t.Helper()
	log.SetupTestLogger()

	cfg := &config.Config{
		Server:       config.Server{CorsOrigin: "*", BodyLimitBytes: 1 << 20},
		Storage:      config.Storage{Driver: config.StorageDriverJSON, JSONPath: filepath.Join(t.TempDir(), "db.json")},
		AdSystem:     config.AdSystem{IPHashSalt: "sal", EventsCap: 100},
		Reset:        config.Reset{TTLMinutes: 30, Debug: true, FrontendURL: "https://mko.pl", RequestLimit: 100, ConfirmLimit: 100, LimitWindow: time.Minute},
		CSRF:         config.CSRF{Secret: "segredo-csrf", TTLMinutes: 10},
		TokenCleanup: config.TokenCleanup{CronSchedule: "*/30 * * * *"},
	}
	for _, fn := range mutate {
		fn(cfg)
	}

	store, err := jsondb.Open(cfg.Storage.JSONPath)
	require.NoError(t, err)
	repos := repository.NewJSON(store, cfg.AdSystem.EventsCap)

	mailSender := mailer.NewSMTPMailer(cfg.Mail)
	adAdmin := adserving.NewAdminService(repos.AdSlots, repos.AdCreatives, repos.AdEvents)
	_, err = adAdmin.EnsureDefaultSlots(context.Background())
	require.NoError(t, err)

	srv, err := New(
		cfg,
		adserving.NewService(repos.AdSlots, repos.AdCreatives, repos.AdEvents, cfg),
		adAdmin,
		authenticating.NewService(repos.Users, repos.AuthTokens, mailSender, cfg),
		authenticating.NewCSRFIssuer(cfg.CSRF.Secret, cfg.CSRF.TTL()),
		listing.NewService(repos.Listings, repos.Reports),
		contacting.NewService(repos.Contacts, mailSender, cfg),
		scheduler.NewTokenCleanupService(repos.AuthTokens, cfg),
	)
	require.NoError(t, err)

	return &testEnv{handler: srv.Handler(), repos: repos}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

var adminHeaders = map[string]string{"X-User-Id": "admin-1", "X-User-Role": "admin"}

func TestPingsERotasDesconhecidas(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name           string
		method         string
		path           string
		headers        map[string]string
		expectedStatus int
		expectedBody   string
	}{
		{"ping geral", http.MethodGet, "/api/ping", nil, http.StatusOK, `{"ok":true}`},
		{"ping auth", http.MethodGet, "/api/auth/ping", nil, http.StatusOK, `{"ok":true,"route":"auth"}`},
		{"ping uploads", http.MethodGet, "/api/uploads/ping", nil, http.StatusOK, `{"ok":true,"route":"uploads"}`},
		{"ping ads anônimo", http.MethodGet, "/api/ads/ping", nil, http.StatusOK, `{"ok":true,"route":"ads","user":null}`},
		{"ping ads com usuário", http.MethodGet, "/api/ads/ping", map[string]string{"X-User-Id": "u1"}, http.StatusOK, `{"ok":true,"route":"ads","user":{"id":"u1","role":"user"}}`},
		{"ping admin sem permissão", http.MethodGet, "/api/admin/ping", nil, http.StatusForbidden, `{"ok":false,"error":"ADMIN_REQUIRED"}`},
		{"ping admin", http.MethodGet, "/api/admin/ping", adminHeaders, http.StatusOK, `{"ok":true,"route":"admin","user":{"id":"admin-1","role":"admin"}}`},
		{"ping ad-system", http.MethodGet, "/api/ad-system/ping", adminHeaders, http.StatusOK, `{"ok":true,"route":"adSystem"}`},
		{"rota desconhecida", http.MethodGet, "/api/nao-existe", nil, http.StatusNotFound, `{"ok":false,"code":"NOT_FOUND","message":"Nie znaleziono zasobu."}`},
		{"login não implementado", http.MethodPost, "/api/auth/login", nil, http.StatusNotImplemented, `{"ok":false,"code":"NOT_IMPLEMENTED","message":"Funkcja nie jest jeszcze dostępna."}`},
		{"cadastro não implementado", http.MethodPost, "/api/auth/register", nil, http.StatusNotImplemented, `{"ok":false,"code":"NOT_IMPLEMENTED","message":"Funkcja nie jest jeszcze dostępna."}`},
		{"upload não implementado", http.MethodPost, "/api/uploads", nil, http.StatusNotImplemented, `{"ok":false,"error":"NOT_IMPLEMENTED","hint":"Upload plików nie jest jeszcze obsługiwany."}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, tt.method, tt.path, nil, tt.headers)
			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}

func TestHealthcheck(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/healthcheck", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	_, err := time.Parse(time.RFC3339, rec.Body.String())
	assert.NoError(t, err)
}

func TestFluxoDeAnuncios(t *testing.T) {
	env := newTestEnv(t)

	t.Run("slot ausente", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/ad-serve?slot=%20", nil, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"BAD_SLOT"}`, rec.Body.String())
	})

	t.Run("slot sem criativos devolve null", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/ad-serve?slot=home_top", nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `null`, rec.Body.String())
	})

	rec := env.do(t, http.MethodPost, "/api/admin/ad-creatives", map[string]any{
		"slot_id":    "home_top",
		"title":      "Promo",
		"image_url":  "https://cdn.mko.pl/promo.png",
		"target_url": "https://mko.pl/promo",
		"targeting":  map[string]any{"cities": []string{" Warszawa ", ""}},
		"weight":     3,
	}, adminHeaders)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody(t, rec)["item"].(map[string]any)
	creativeID := created["id"].(string)
	assert.Equal(t, "active", created["status"])
	assert.Equal(t, []any{"Warszawa"}, created["targeting"].(map[string]any)["cities"])

	t.Run("targeting não atendido", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/ad-serve?slot=home_top&city=Krakow", nil, nil)
		assert.JSONEq(t, `null`, rec.Body.String())
	})

	t.Run("serve devolve apenas campos públicos", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/ad-system/ad-serve?slot=home_top&city=warszawa&page=home", nil, map[string]string{
			"X-Forwarded-For": "203.0.113.9, 10.0.0.1",
			"User-Agent":      "teste/1.0",
		})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":"`+creativeID+`","title":"Promo","image_url":"https://cdn.mko.pl/promo.png","target_url":"https://mko.pl/promo"}`, rec.Body.String())
	})

	tests := []struct {
		name           string
		body           any
		expectedStatus int
		expectedBody   string
	}{
		{"json inválido", `{creative_id}`, http.StatusBadRequest, `{"ok":false,"code":"INVALID_JSON","message":"Nieprawidłowy format danych (JSON)."}`},
		{"sem creative_id", map[string]any{"type": "click"}, http.StatusBadRequest, `{"error":"BAD_CREATIVE_ID"}`},
		{"tipo inválido", map[string]any{"creative_id": creativeID, "type": "hover"}, http.StatusBadRequest, `{"error":"BAD_TYPE"}`},
		{"criativo inexistente", map[string]any{"creative_id": "adcr_nada", "type": "click"}, http.StatusNotFound, `{"error":"NOT_FOUND"}`},
		{"tipo numérico", map[string]any{"creative_id": creativeID, "type": 5}, http.StatusBadRequest, `{"error":"BAD_TYPE"}`},
		{"creative_id numérico", map[string]any{"creative_id": 123, "type": "click"}, http.StatusNotFound, `{"error":"NOT_FOUND"}`},
		{"creative_id nulo", map[string]any{"creative_id": nil, "type": "click"}, http.StatusBadRequest, `{"error":"BAD_CREATIVE_ID"}`},
		{"cidade numérica", map[string]any{"creative_id": "adcr_nada", "type": "view", "city": 7}, http.StatusNotFound, `{"error":"NOT_FOUND"}`},
		{"clique registrado", map[string]any{"creative_id": creativeID, "type": "click", "page": "home"}, http.StatusOK, `{"ok":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/ad-event", tt.body, nil)
			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}

	t.Run("contadores e ctr", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/admin/ad-creatives/"+creativeID, nil, adminHeaders)
		require.Equal(t, http.StatusOK, rec.Code)

		item := decodeBody(t, rec)["item"].(map[string]any)
		assert.EqualValues(t, 1, item["views_count"])
		assert.EqualValues(t, 1, item["clicks_count"])
		assert.EqualValues(t, 100, item["ctr"])
	})

	t.Run("eventos mais recentes primeiro", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/admin/ad-events?creative_id="+creativeID, nil, adminHeaders)
		require.Equal(t, http.StatusOK, rec.Code)

		items := decodeBody(t, rec)["items"].([]any)
		require.Len(t, items, 2)

		click := items[0].(map[string]any)
		view := items[1].(map[string]any)
		assert.Equal(t, "click", click["type"])
		assert.Equal(t, "view", view["type"])
		assert.Equal(t, "warszawa", view["city"])
		assert.Equal(t, "teste/1.0", view["user_agent"])
		assert.NotEmpty(t, view["ip_hash"])
		assert.NotContains(t, rec.Body.String(), "203.0.113.9")
	})

	t.Run("slot desabilitado não serve", func(t *testing.T) {
		rec := env.do(t, http.MethodPatch, "/api/admin/ad-slots/home_top", map[string]any{"is_enabled": false}, adminHeaders)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = env.do(t, http.MethodGet, "/api/ad-serve?slot=home_top&city=Warszawa", nil, nil)
		assert.JSONEq(t, `null`, rec.Body.String())
	})

	t.Run("remoção do criativo", func(t *testing.T) {
		rec := env.do(t, http.MethodDelete, "/api/admin/ad-creatives/"+creativeID, nil, adminHeaders)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = env.do(t, http.MethodDelete, "/api/admin/ad-creatives/"+creativeID, nil, adminHeaders)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAdminCriativosValidacao(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name         string
		body         map[string]any
		expectedCode string
	}{
		{"slot inexistente", map[string]any{"slot_id": "nao_existe", "image_url": "https://x/y.png"}, "BAD_SLOT"},
		{"sem imagem", map[string]any{"slot_id": "home_top"}, "VALIDATION_ERROR"},
		{"intervalo invertido", map[string]any{
			"slot_id":   "home_top",
			"image_url": "https://x/y.png",
			"date_from": "2025-06-10T00:00:00Z",
			"date_to":   "2025-06-01T00:00:00Z",
		}, "BAD_DATE_RANGE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/admin/ad-creatives", tt.body, adminHeaders)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.expectedCode, decodeBody(t, rec)["code"])
		})
	}

	t.Run("slots padrão listados", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/admin/ad-slots", nil, adminHeaders)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeBody(t, rec)["items"], 5)
	})
}

func TestFluxoDeResetDeSenha(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.repos.Users.CreateUser(context.Background(), &domain.User{
		ID:        "user_1",
		Email:     "jan@example.com",
		PassHash:  "hash-antigo",
		Role:      domain.RoleUser,
		CreatedAt: time.Now().UTC(),
	}))

	t.Run("e-mail obrigatório", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/auth/reset/request", map[string]any{}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"ok":false,"code":"EMAIL_REQUIRED","message":"Podaj e-mail."}`, rec.Body.String())
	})

	t.Run("e-mail inválido", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/auth/request-reset", map[string]any{"email": "jan@"}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "EMAIL_INVALID", decodeBody(t, rec)["code"])
	})

	rec := env.do(t, http.MethodPost, "/api/auth/reset-password", map[string]any{"email": " Jan@Example.com "}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, authenticating.MsgResetRequested, body["message"])
	assert.Equal(t, false, body["devSent"])
	rawToken := body["resetToken"].(string)
	assert.Len(t, rawToken, 64)
	assert.Equal(t, "https://mko.pl/reset-hasla.html?token="+rawToken, body["resetLink"])

	t.Run("senha fraca", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/auth/reset/confirm", map[string]any{"token": rawToken, "newPassword": "abcdefgh"}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "WEAK_PASSWORD", decodeBody(t, rec)["code"])
	})

	t.Run("token ausente", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/auth/reset/confirm", map[string]any{"newPassword": "haslo1234"}, nil)
		assert.JSONEq(t, `{"ok":false,"code":"TOKEN_REQUIRED","message":"Brak tokena."}`, rec.Body.String())
	})

	t.Run("confirmação troca a senha", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/auth/reset/confirm", map[string]any{"token": rawToken, "newPassword": "haslo1234"}, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"ok":true,"message":"Jeśli konto istnieje, hasło zostało zmienione."}`, rec.Body.String())

		user, err := env.repos.Users.GetUserByEmail(context.Background(), "jan@example.com")
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte("haslo1234")))
	})

	t.Run("token de uso único", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/auth/reset/confirm", map[string]any{"token": rawToken, "password": "haslo1234"}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"ok":false,"code":"TOKEN_INVALID","message":"Token nieważny lub wygasł."}`, rec.Body.String())
	})
}

func TestResetSemDebugNaoExpoeToken(t *testing.T) {
	env := newTestEnv(t, func(cfg *config.Config) { cfg.Reset.Debug = false })

	rec := env.do(t, http.MethodPost, "/api/auth/reset/request", map[string]any{"email": "ninguem@example.com"}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true,"message":"Jeśli e-mail istnieje, wysłaliśmy link do resetu hasła."}`, rec.Body.String())
}

func TestLimiteDeResetPorIP(t *testing.T) {
	env := newTestEnv(t, func(cfg *config.Config) { cfg.Reset.RequestLimit = 2 })

	headers := map[string]string{"X-Forwarded-For": "198.51.100.7"}
	paths := []string{"/api/auth/reset/request", "/api/auth/request-reset"}
	for _, path := range paths {
		rec := env.do(t, http.MethodPost, path, map[string]any{"email": "jan@example.com"}, headers)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := env.do(t, http.MethodPost, "/api/auth/reset-password", map[string]any{"email": "jan@example.com"}, headers)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "RATE_LIMITED", decodeBody(t, rec)["code"])
}

func TestAnunciosClassificados(t *testing.T) {
	env := newTestEnv(t)
	owner := map[string]string{"X-User-Id": "dono"}

	rec := env.do(t, http.MethodPost, "/api/ads", map[string]any{"title": "Rower"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"ok":false,"error":"AUTH_REQUIRED"}`, rec.Body.String())

	rec = env.do(t, http.MethodPost, "/api/ads", map[string]any{"title": "Rower", "city": "Gdańsk"}, owner)
	require.Equal(t, http.StatusCreated, rec.Code)
	listingID := decodeBody(t, rec)["item"].(map[string]any)["id"].(string)

	rec = env.do(t, http.MethodGet, "/api/ads/"+listingID, nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/ads/"+listingID+"/report", map[string]any{"reason": "spam"}, nil)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/admin/reports", nil, adminHeaders)
	assert.Len(t, decodeBody(t, rec)["items"], 1)

	rec = env.do(t, http.MethodDelete, "/api/ads/"+listingID, nil, map[string]string{"X-User-Id": "outro"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", decodeBody(t, rec)["code"])

	rec = env.do(t, http.MethodDelete, "/api/ads/"+listingID, nil, owner)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/ads", nil, nil)
	assert.JSONEq(t, `{"ok":true,"items":[]}`, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/api/ads/"+listingID, nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFormularioDeContato(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/contact", map[string]any{"email": "nao-e-email", "message": "Olá"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeBody(t, rec)["code"])

	rec = env.do(t, http.MethodPost, "/api/contact", map[string]any{"name": "Ania", "email": "Ania@Example.com", "message": "Dzień dobry"}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/api/admin/contacts", nil, adminHeaders)
	items := decodeBody(t, rec)["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "ania@example.com", items[0].(map[string]any)["email"])
}

func TestCSRFHabilitado(t *testing.T) {
	env := newTestEnv(t, func(cfg *config.Config) { cfg.CSRF.Enabled = true })

	rec := env.do(t, http.MethodPost, "/api/contact", map[string]any{"email": "a@b.pl", "message": "x"}, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"CSRF","reason":"BAD_FORMAT"}`, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/api/csrf", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	token := decodeBody(t, rec)["token"].(string)

	rec = env.do(t, http.MethodPost, "/api/contact", map[string]any{"email": "a@b.pl", "message": "x"}, map[string]string{"X-CSRF-Token": token})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/ad-event", map[string]any{"type": "click"}, nil)
	assert.JSONEq(t, `{"error":"BAD_CREATIVE_ID"}`, rec.Body.String())
}

func TestCronManual(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/admin/cron/desconhecido/run", nil, adminHeaders)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UNKNOWN_CRON_TYPE", decodeBody(t, rec)["code"])

	rec = env.do(t, http.MethodPost, "/api/admin/cron/token-cleanup/run", nil, adminHeaders)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/admin/cron/status", nil, adminHeaders)
	require.Equal(t, http.StatusOK, rec.Code)
	jobs := decodeBody(t, rec)["jobs"].(map[string]any)
	assert.Contains(t, jobs, "token-cleanup")
}

func TestCorpoGrandeDemais(t *testing.T) {
	env := newTestEnv(t, func(cfg *config.Config) { cfg.Server.BodyLimitBytes = 16 })

	rec := env.do(t, http.MethodPost, "/api/contact", map[string]any{"email": "a@b.pl", "message": "uma mensagem comprida demais"}, nil)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "BODY_TOO_LARGE", decodeBody(t, rec)["code"])
}
