package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/livepoll/internal/core/domain"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(4)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, h.Compare(hash, "s3cret"))
	assert.False(t, h.Compare(hash, "wrong"))
	assert.False(t, h.Compare("not-a-hash", "s3cret"))
}

func TestBcryptHasher_RejectsOverlongPassword(t *testing.T) {
	h := NewBcryptHasher(4)

	_, err := h.Hash(strings.Repeat("x", 73))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = h.Hash(strings.Repeat("x", 72))
	assert.NoError(t, err)
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	h := NewBcryptHasher(0).(*BcryptHasher)
	assert.Equal(t, DefaultCost, h.cost)
}

func TestJWTIssuer_RoundTrip(t *testing.T) {
	issuer := NewJWTIssuer("test-secret", time.Hour)

	token, err := issuer.Issue(domain.Identity{UserID: 42, Email: "ada@example.com"})
	require.NoError(t, err)

	identity, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), identity.UserID)
	assert.Equal(t, "ada@example.com", identity.Email)
}

func TestJWTIssuer_ExpiresAfterTTL(t *testing.T) {
	issuer := NewJWTIssuer("test-secret", time.Hour)
	issued := time.Now()
	issuer.now = func() time.Time { return issued }

	token, err := issuer.Issue(domain.Identity{UserID: 1, Email: "a@b.c"})
	require.NoError(t, err)

	issuer.now = func() time.Time { return issued.Add(59 * time.Minute) }
	_, err = issuer.Verify(token)
	require.NoError(t, err)

	issuer.now = func() time.Time { return issued.Add(61 * time.Minute) }
	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestJWTIssuer_Rejects(t *testing.T) {
	issuer := NewJWTIssuer("test-secret", time.Hour)

	other, err := NewJWTIssuer("other-secret", time.Hour).Issue(domain.Identity{UserID: 1, Email: "a@b.c"})
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":   "1",
		"email": "a@b.c",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "1",
		"email": "a@b.c",
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	badSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "not-a-number",
		"email": "a@b.c",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":        "not.a.token",
		"wrong secret":   other,
		"alg none":       unsigned,
		"no expiry":      noExp,
		"non numeric id": badSub,
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := issuer.Verify(token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidToken))
		})
	}
}
