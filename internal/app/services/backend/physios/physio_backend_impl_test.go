package physios

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"physiocare-client/internal/app/config"
	"physiocare-client/internal/app/services/shared/httpclient"
	"physiocare-client/internal/pkg/constvars"
	"physiocare-client/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPhysioBackendClient_FindAll(t *testing.T) {
	newClient := func(body string) *physioBackendClient {
		router := chi.NewRouter()
		router.Get("/physios", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		})
		server := httptest.NewServer(router)
		t.Cleanup(server.Close)
		cfg := &config.InternalConfig{Backend: config.AppBackend{BaseUrl: server.URL}}
		return NewPhysioBackendClient(httpclient.NewClient(cfg, nil, zap.NewNop()), zap.NewNop()).(*physioBackendClient)
	}

	t.Run("Success", func(t *testing.T) {
		client := newClient(`{"ok":true,"resultado":[{"_id":"ph1","name":"Luis","surname":"Mora","specialty":"sports","licenseNumber":"L1"}]}`)

		physios, err := client.FindAll(context.Background(), "tok")

		require.NoError(t, err)
		require.Len(t, physios, 1)
		assert.Equal(t, "Luis Mora", physios[0].FullName())
	})

	t.Run("Not ok", func(t *testing.T) {
		client := newClient(`{"ok":false}`)

		_, err := client.FindAll(context.Background(), "tok")

		assert.Equal(t, constvars.ErrClientNoPhysios, exceptions.ClientMessage(err))
	})
}
