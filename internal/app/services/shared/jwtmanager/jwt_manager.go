package jwtmanager

import (
	"errors"
	"physiocare-client/internal/pkg/exceptions"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// JWTManager reads the claims of the backend token. The signing key belongs to
// the backend, so signatures are not verified here.
type JWTManager struct {
	log    *zap.Logger
	parser *jwt.Parser
}

// TokenClaims holds the claims the client cares about.
type TokenClaims struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

func NewJWTManager(log *zap.Logger) *JWTManager {
	return &JWTManager{
		log:    log,
		parser: jwt.NewParser(),
	}
}

// DecodeClaims parses token without checking its signature.
func (j *JWTManager) DecodeClaims(token string) (*TokenClaims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, exceptions.ErrTokenMalformed(errors.New("token is empty"))
	}

	claims := jwt.MapClaims{}
	_, _, err := j.parser.ParseUnverified(token, claims)
	if err != nil {
		j.log.Debug("JWTManager.DecodeClaims token is not a JWT", zap.Error(err))
		return nil, exceptions.ErrTokenMalformed(err)
	}

	out := &TokenClaims{}
	if sub, ok := claims["sub"].(string); ok {
		out.Subject = sub
	}
	if rol, ok := claims["rol"].(string); ok {
		out.Role = rol
	} else if rol, ok := claims["role"].(string); ok {
		out.Role = rol
	}
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = time.Unix(int64(exp), 0).UTC()
	}
	return out, nil
}

// ExpiresAt returns the exp claim of token, zero when absent.
func (j *JWTManager) ExpiresAt(token string) (time.Time, error) {
	claims, err := j.DecodeClaims(token)
	if err != nil {
		return time.Time{}, err
	}
	return claims.ExpiresAt, nil
}
