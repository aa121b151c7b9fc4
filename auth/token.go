// Package auth issues and verifies the signed admin token carried in the
// admin-token cookie.
// File: auth/token.go
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"xtrnia/apperr"
)

// CookieName is the cookie that carries the admin token.
const CookieName = "admin-token"

// DefaultTTL applies when no token lifetime is configured.
const DefaultTTL = 24 * time.Hour

// Claims is the token payload: the admin identity plus registered claims.
type Claims struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies HS256 admin tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager returns a manager for secret. A zero or negative ttl
// falls back to DefaultTTL. An empty secret is an error: there is no
// built-in fallback.
func NewTokenManager(secret string, ttl time.Duration) (*TokenManager, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("auth: signing secret must not be empty")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// TTL is the lifetime of issued tokens.
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a token for the given admin and returns it with its expiry.
func (m *TokenManager) Issue(id, username string) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)

	claims := Claims{
		ID:       id,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, apperr.Wrap(apperr.Unexpected, "failed to sign token", err)
	}
	return signed, expiresAt, nil
}

// Verify checks signature, algorithm and expiry and returns the claims.
// An empty token is Unauthenticated; anything else that fails is InvalidToken.
func (m *TokenManager) Verify(token string) (*Claims, error) {
	if token == "" {
		return nil, apperr.New(apperr.Unauthenticated, "Unauthorized")
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid {
		return nil, apperr.Wrap(apperr.InvalidToken, "Invalid token", err)
	}
	if claims.ID == "" || claims.Username == "" {
		return nil, apperr.New(apperr.InvalidToken, "Invalid token")
	}
	return claims, nil
}
