package connectivity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"physiocare-client/internal/app/config"
	"physiocare-client/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func backendConfig(baseUrl string, enabled bool) *config.InternalConfig {
	return &config.InternalConfig{Backend: config.AppBackend{
		BaseUrl:                      baseUrl,
		ConnectivityCheck:            enabled,
		ConnectivityTimeoutInSeconds: 1,
	}}
}

func TestConnectivityChecker_CheckConnection(t *testing.T) {
	t.Run("Reachable backend", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		defer server.Close()

		checker, err := NewConnectivityChecker(backendConfig(server.URL, true), zap.NewNop())
		require.NoError(t, err)

		assert.NoError(t, checker.CheckConnection(context.Background()))
	})

	t.Run("Unreachable backend", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		checker, err := NewConnectivityChecker(backendConfig(url, true), zap.NewNop())
		require.NoError(t, err)

		err = checker.CheckConnection(context.Background())
		assert.True(t, errors.Is(err, exceptions.ErrKindNoConnection))
		assert.Equal(t, "no connection", exceptions.ClientMessage(err))
	})

	t.Run("Disabled check always passes", func(t *testing.T) {
		checker, err := NewConnectivityChecker(backendConfig("http://127.0.0.1:1/", false), zap.NewNop())
		require.NoError(t, err)

		assert.NoError(t, checker.CheckConnection(context.Background()))
	})

	t.Run("Invalid base url", func(t *testing.T) {
		_, err := NewConnectivityChecker(backendConfig("://nohost", true), zap.NewNop())
		assert.Error(t, err)
	})
}

func TestHostAddress(t *testing.T) {
	address, err := hostAddress("http://localhost:8080/")
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", address)

	address, err = hostAddress("https://api.physiocare.example")
	require.NoError(t, err)
	assert.Equal(t, "api.physiocare.example:443", address)
}
