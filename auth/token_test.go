package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xtrnia/apperr"
)

func newManager(t *testing.T, ttl time.Duration) *TokenManager {
	t.Helper()
	m, err := NewTokenManager("test-signing-secret", ttl)
	require.NoError(t, err)
	return m
}

func TestNewTokenManager_RejectsEmptySecret(t *testing.T) {
	_, err := NewTokenManager("   ", time.Hour)
	assert.Error(t, err)
}

func TestNewTokenManager_DefaultTTL(t *testing.T) {
	m := newManager(t, 0)
	assert.Equal(t, DefaultTTL, m.TTL())
}

func TestIssueThenVerify(t *testing.T) {
	m := newManager(t, time.Hour)

	token, expiresAt, err := m.Issue("admin-1", "root")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.ID)
	assert.Equal(t, "root", claims.Username)
	assert.Equal(t, "admin-1", claims.Subject)
	assert.NotEmpty(t, claims.RegisteredClaims.ID)
}

func TestVerify_EmptyTokenIsUnauthenticated(t *testing.T) {
	m := newManager(t, time.Hour)
	_, err := m.Verify("")
	assert.Equal(t, apperr.Unauthenticated, apperr.KindOf(err))
}

func TestVerify_Expired(t *testing.T) {
	m := newManager(t, time.Hour)
	issuedAt := time.Now()
	m.now = func() time.Time { return issuedAt }

	token, _, err := m.Issue("admin-1", "root")
	require.NoError(t, err)

	m.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	_, err = m.Verify(token)
	assert.Equal(t, apperr.InvalidToken, apperr.KindOf(err))
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := newManager(t, time.Hour)
	token, _, err := issuer.Issue("admin-1", "root")
	require.NoError(t, err)

	other, err := NewTokenManager("a-different-secret", time.Hour)
	require.NoError(t, err)
	_, err = other.Verify(token)
	assert.Equal(t, apperr.InvalidToken, apperr.KindOf(err))
}

func TestVerify_TamperedPayload(t *testing.T) {
	m := newManager(t, time.Hour)
	token, _, err := m.Issue("admin-1", "root")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	parts[1] = parts[1][:len(parts[1])-2] + "AA"
	_, err = m.Verify(strings.Join(parts, "."))
	assert.Equal(t, apperr.InvalidToken, apperr.KindOf(err))
}

func TestVerify_RejectsNoneAlgorithm(t *testing.T) {
	m := newManager(t, time.Hour)
	claims := Claims{
		ID:       "admin-1",
		Username: "root",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Verify(unsigned)
	assert.Equal(t, apperr.InvalidToken, apperr.KindOf(err))
}

func TestVerify_Garbage(t *testing.T) {
	m := newManager(t, time.Hour)
	_, err := m.Verify("not-a-jwt")
	assert.Equal(t, apperr.InvalidToken, apperr.KindOf(err))
}
