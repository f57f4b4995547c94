package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"physiocare-client/internal/app/config"
	"physiocare-client/internal/app/services/shared/ratelimiter"
	"physiocare-client/internal/pkg/constvars"
	"physiocare-client/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(baseUrl string) *Client {
	cfg := &config.InternalConfig{Backend: config.AppBackend{BaseUrl: baseUrl}}
	return NewClient(cfg, ratelimiter.NewRequestLimiter(cfg, zap.NewNop()), zap.NewNop())
}

func TestClient_Do(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/echo", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		w.Write([]byte(`{"authorization":"` + r.Header.Get(constvars.HeaderAuthorization) + `","request_id":"` + r.Header.Get(constvars.HeaderXRequestID) + `"}`))
	})
	router.Get("/unauthorized", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"ok":false,"error":"token expired"}`))
	})
	router.Get("/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	router.Get("/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"ok":false,"mensaje":"database down"}`))
	})
	router.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"bad credentials"}`))
	})
	router.Get("/empty", func(w http.ResponseWriter, r *http.Request) {})
	server := httptest.NewServer(router)
	defer server.Close()

	client := newTestClient(server.URL + "/")
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")

	t.Run("Bearer token and request id are sent", func(t *testing.T) {
		var out struct {
			Authorization string `json:"authorization"`
			RequestID     string `json:"request_id"`
		}
		err := client.Do(ctx, &Request{Method: constvars.MethodGet, Path: "echo", Token: "tok"}, &out)

		require.NoError(t, err)
		assert.Equal(t, "Bearer tok", out.Authorization)
		assert.Equal(t, "req-1", out.RequestID)
	})

	t.Run("401 is unauthorized with server message", func(t *testing.T) {
		err := client.Do(ctx, &Request{Method: constvars.MethodGet, Path: "unauthorized"}, nil)

		assert.True(t, errors.Is(err, exceptions.ErrKindUnauthorized))
		assert.Equal(t, "token expired", exceptions.ClientMessage(err))
		assert.Equal(t, http.StatusUnauthorized, exceptions.StatusCode(err))
	})

	t.Run("404 is not found", func(t *testing.T) {
		err := client.Do(ctx, &Request{Method: constvars.MethodGet, Path: "missing"}, nil)

		assert.True(t, errors.Is(err, exceptions.ErrKindNotFound))
		assert.Equal(t, "Not Found", exceptions.ClientMessage(err))
	})

	t.Run("Other status carries the server message", func(t *testing.T) {
		err := client.Do(ctx, &Request{Method: constvars.MethodGet, Path: "broken"}, nil)

		assert.Equal(t, "database down", exceptions.ClientMessage(err))
		assert.Equal(t, http.StatusInternalServerError, exceptions.StatusCode(err))
	})

	t.Run("Login 401 is a login failure", func(t *testing.T) {
		err := client.Do(ctx, &Request{Method: constvars.MethodPost, Path: "login", Body: map[string]string{}, Login: true}, nil)

		assert.True(t, errors.Is(err, exceptions.ErrKindLogin))
		assert.False(t, errors.Is(err, exceptions.ErrKindUnauthorized))
		assert.Equal(t, "bad credentials", exceptions.ClientMessage(err))
	})

	t.Run("Empty body when one is expected", func(t *testing.T) {
		var out map[string]interface{}
		err := client.Do(ctx, &Request{Method: constvars.MethodGet, Path: "empty"}, &out)

		assert.Equal(t, constvars.ErrClientEmptyResponse, exceptions.ClientMessage(err))
	})
}

func TestClient_resolve(t *testing.T) {
	assert.Equal(t, "http://h:8080/records", newTestClient("http://h:8080/").resolve("records"))
	assert.Equal(t, "http://h:8080/records", newTestClient("http://h:8080").resolve("/records"))
}
