package contracts

import (
	"context"
	"physiocare-client/internal/app/models"
	"time"
)

// SessionStore persists the authenticated identity. Save and Clear replace every
// field at once, so readers never see a half written session.
type SessionStore interface {
	Current() models.Session
	Subscribe(fn func(models.Session)) (unsubscribe func())
	Save(ctx context.Context, token, userID string, role models.Role) error
	Clear(ctx context.Context) error
}

type TokenInspector interface {
	// ExpiresAt returns the exp claim of token, zero when the token carries none.
	ExpiresAt(token string) (time.Time, error)
}

type ConnectivityChecker interface {
	CheckConnection(ctx context.Context) error
}
