package session

import (
	"context"
	"testing"

	"physiocare-client/internal/app/models"
	"physiocare-client/internal/pkg/constvars"
	"physiocare-client/internal/pkg/exceptions"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSessionKey = "physiocare:session:test"

func newRedisClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return server, client
}

func TestRedisSessionStore(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()

	t.Run("Missing key yields an empty session", func(t *testing.T) {
		_, client := newRedisClient(t)

		store, err := NewRedisSessionStore(ctx, client, testSessionKey, log)
		require.NoError(t, err)

		assert.Equal(t, models.Session{}, store.Current())
	})

	t.Run("Save persists across reopen", func(t *testing.T) {
		server, client := newRedisClient(t)
		store, err := NewRedisSessionStore(ctx, client, testSessionKey, log)
		require.NoError(t, err)

		require.NoError(t, store.Save(ctx, "tok", "u1", models.RolePhysio))

		reopened, err := NewRedisSessionStore(ctx, client, testSessionKey, log)
		require.NoError(t, err)
		assert.Equal(t, models.Session{Token: "tok", UserID: "u1", Role: models.RolePhysio}, reopened.Current())
		assert.True(t, server.Exists(testSessionKey))
		assert.Equal(t, int64(0), int64(server.TTL(testSessionKey)))
	})

	t.Run("Clear deletes the key and notifies", func(t *testing.T) {
		server, client := newRedisClient(t)
		store, err := NewRedisSessionStore(ctx, client, testSessionKey, log)
		require.NoError(t, err)

		var seen []models.Session
		unsubscribe := store.Subscribe(func(s models.Session) { seen = append(seen, s) })
		defer unsubscribe()

		require.NoError(t, store.Save(ctx, "tok", "p1", models.RolePatient))
		require.NoError(t, store.Clear(ctx))

		assert.Equal(t, models.Session{}, store.Current())
		assert.False(t, server.Exists(testSessionKey))
		require.Len(t, seen, 3)
		assert.Equal(t, models.Session{}, seen[0])
		assert.True(t, seen[1].IsPatient())
		assert.Equal(t, models.Session{}, seen[2])
	})

	t.Run("Subscriber may clear the session it was told about", func(t *testing.T) {
		_, client := newRedisClient(t)
		store, err := NewRedisSessionStore(ctx, client, testSessionKey, log)
		require.NoError(t, err)

		unsubscribe := store.Subscribe(func(s models.Session) {
			if s.IsAuthenticated() {
				assert.NoError(t, store.Clear(ctx))
			}
		})
		defer unsubscribe()

		require.NoError(t, store.Save(ctx, "tok", "p1", models.RolePatient))

		assert.Equal(t, models.Session{}, store.Current())
	})

	t.Run("Corrupt document fails to load", func(t *testing.T) {
		server, client := newRedisClient(t)
		require.NoError(t, server.Set(testSessionKey, "{not json"))

		_, err := NewRedisSessionStore(ctx, client, testSessionKey, log)

		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Contains(t, customErr.DevMessage, constvars.ErrDevCannotParseJSON)
	})
}
