package models

import (
	"physiocare-client/internal/pkg/constvars"
	"time"
)

type Role string

const (
	RoleNone    Role = ""
	RolePatient Role = constvars.RolePatient
	RolePhysio  Role = constvars.RolePhysio
)

// Session is the authenticated identity persisted on the device.
// UserID and Role are only meaningful while Token is set.
type Session struct {
	Token  string `json:"token,omitempty"`
	UserID string `json:"usuarioId,omitempty"`
	Role   Role   `json:"rol,omitempty"`

	// ExpiresAt is decoded from the token claims, zero when the token carries none.
	ExpiresAt time.Time `json:"-"`
}

func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}

func (s Session) IsPhysio() bool {
	return s.IsAuthenticated() && s.Role == RolePhysio
}

func (s Session) IsPatient() bool {
	return s.IsAuthenticated() && s.Role == RolePatient
}

// IsExpired reports whether the token expiry, when known, is before now.
func (s Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
