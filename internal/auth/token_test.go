package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestIssuer(t *testing.T, secret string) *TokenIssuer {
	t.Helper()
	issuer, err := NewTokenIssuer([]byte(secret), AccessTokenTTL)
	require.NoError(t, err)
	return issuer
}

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	t.Parallel()
	issuer := newTestIssuer(t, "super-secret")

	tok, err := issuer.Issue(42, "a@x.com")
	require.NoError(t, err)

	claims, err := issuer.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.WithinDuration(t, claims.IssuedAt.Add(AccessTokenTTL), claims.ExpiresAt, time.Second)
}

func TestTokenIssuer_ExpiryBoundary(t *testing.T) {
	t.Parallel()
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer := newTestIssuer(t, "k").WithClock(fixedClock(issuedAt))

	tok, err := issuer.Issue(1, "a@x.com")
	require.NoError(t, err)

	_, err = issuer.WithClock(fixedClock(issuedAt.Add(14*time.Minute + 59*time.Second))).Verify(tok)
	assert.NoError(t, err, "token must be accepted just before expiry")

	_, err = issuer.WithClock(fixedClock(issuedAt.Add(15 * time.Minute))).Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken, "token is rejected at exactly exp")

	_, err = issuer.WithClock(fixedClock(issuedAt.Add(15*time.Minute + time.Second))).Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	t.Parallel()
	tok, err := newTestIssuer(t, "right-secret").Issue(2, "b@x.com")
	require.NoError(t, err)

	_, err = newTestIssuer(t, "wrong-secret").Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_Malformed(t *testing.T) {
	t.Parallel()
	issuer := newTestIssuer(t, "k")

	for _, tok := range []string{"", "not.a.jwt", "abc"} {
		_, err := issuer.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}

func TestTokenIssuer_RejectsNoneAlgorithm(t *testing.T) {
	t.Parallel()
	issuer := newTestIssuer(t, "k")

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = issuer.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsMissingExpiryAndBadSubject(t *testing.T) {
	t.Parallel()
	secret := []byte("k")
	issuer := newTestIssuer(t, "k")

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "1"}).SignedString(secret)
	require.NoError(t, err)
	_, err = issuer.Verify(noExp)
	assert.ErrorIs(t, err, ErrInvalidToken)

	badSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(secret)
	require.NoError(t, err)
	_, err = issuer.Verify(badSub)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestNewTokenIssuer_RequiresSecret(t *testing.T) {
	t.Parallel()
	_, err := NewTokenIssuer(nil, time.Minute)
	assert.Error(t, err)
}
