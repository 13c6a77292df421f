package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func header(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Chain", name)
			next.ServeHTTP(w, r)
		})
	}
}

func TestAddRoutesAplicaMiddlewaresNaOrdem(t *testing.T) {
	rt := New(WithRoutes(Route{
		Path:   "/api/items/:id",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(httprouter.ParamsFromContext(r.Context()).ByName("id")))
		}),
		Middlewares: []func(http.Handler) http.Handler{header("primeiro"), header("segundo")},
	}))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/items/abc", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc", rec.Body.String())
	assert.Equal(t, []string{"primeiro", "segundo"}, rec.Header().Values("X-Chain"))
}

func TestWithNotFound(t *testing.T) {
	rt := New(
		WithRoutes(Route{
			Path:    "/api/ping",
			Method:  http.MethodGet,
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
		}),
		WithNotFound(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})),
	)

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"caminho desconhecido", http.MethodGet, "/api/nada"},
		{"método não registrado", http.MethodDelete, "/api/ping"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, http.StatusTeapot, rec.Code)
		})
	}
}
