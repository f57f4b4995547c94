package ratelimiter

import (
	"context"
	"physiocare-client/internal/app/config"
	"physiocare-client/internal/pkg/constvars"
	"physiocare-client/internal/pkg/exceptions"
	"physiocare-client/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RequestLimiter is a token bucket shared by every outbound backend request.
type RequestLimiter struct {
	limiter *rate.Limiter
	log     *zap.Logger
}

// NewRequestLimiter builds the limiter from InternalConfig.Backend.
// A non positive rate disables limiting.
func NewRequestLimiter(cfg *config.InternalConfig, log *zap.Logger) *RequestLimiter {
	limit := rate.Inf
	if cfg.Backend.MaxRequestsPerSecond > 0 {
		limit = rate.Limit(cfg.Backend.MaxRequestsPerSecond)
	}
	burst := cfg.Backend.MaxRequestsBurst
	if burst <= 0 {
		burst = 1
	}
	return &RequestLimiter{
		limiter: rate.NewLimiter(limit, burst),
		log:     log,
	}
}

// Wait blocks until a request may be sent or ctx is done.
func (l *RequestLimiter) Wait(ctx context.Context) error {
	if l == nil {
		return nil
	}
	err := l.limiter.Wait(ctx)
	if err != nil {
		l.log.Warn("RequestLimiter.Wait refused request",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return exceptions.ErrRateLimited(err)
	}
	return nil
}
