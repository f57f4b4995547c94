package utils

import (
	"context"
	"physiocare-client/internal/pkg/constvars"

	"github.com/google/uuid"
)

func NewRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// WithRequestID returns ctx carrying a request id, keeping an existing one.
func WithRequestID(ctx context.Context) (context.Context, string) {
	if requestID := GetRequestID(ctx); requestID != "" {
		return ctx, requestID
	}
	requestID := NewRequestID()
	return context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID), requestID
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}
