package ratelimiter

import (
	"context"
	"testing"
	"time"

	"physiocare-client/internal/app/config"
	"physiocare-client/internal/pkg/constvars"
	"physiocare-client/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequestLimiter_Wait(t *testing.T) {
	t.Run("Disabled limiter never blocks", func(t *testing.T) {
		limiter := NewRequestLimiter(&config.InternalConfig{}, zap.NewNop())
		for i := 0; i < 100; i++ {
			assert.NoError(t, limiter.Wait(context.Background()))
		}
	})

	t.Run("Exhausted bucket with short deadline is refused", func(t *testing.T) {
		cfg := &config.InternalConfig{Backend: config.AppBackend{MaxRequestsPerSecond: 0.01, MaxRequestsBurst: 1}}
		limiter := NewRequestLimiter(cfg, zap.NewNop())
		assert.NoError(t, limiter.Wait(context.Background()))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		err := limiter.Wait(ctx)

		assert.Error(t, err)
		assert.Equal(t, constvars.StatusTooManyRequests, exceptions.StatusCode(err))
	})

	t.Run("Nil limiter is a no-op", func(t *testing.T) {
		var limiter *RequestLimiter
		assert.NoError(t, limiter.Wait(context.Background()))
	})
}
