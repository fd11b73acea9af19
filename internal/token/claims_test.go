package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestPeekReadsClaimsWithoutVerification(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := signedToken(t, jwt.MapClaims{
		"sub":   "42",
		"email": "driver@example.com",
		"exp":   exp.Unix(),
	})

	claims, err := Peek(raw)
	require.NoError(t, err)
	require.Equal(t, "42", claims.Subject)
	require.Equal(t, "driver@example.com", claims.Email)
	require.WithinDuration(t, exp, claims.ExpiresAt, time.Second)
	require.False(t, claims.Expired(time.Now()))
}

func TestPeekExpired(t *testing.T) {
	raw := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(-time.Minute).Unix()})

	claims, err := Peek(raw)
	require.NoError(t, err)
	require.True(t, claims.Expired(time.Now()))
}

func TestPeekRejectsGarbage(t *testing.T) {
	_, err := Peek("")
	require.Error(t, err)

	_, err = Peek("not.a.jwt")
	require.Error(t, err)
}
