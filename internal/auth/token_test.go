package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightsprout/childcare-api/internal/config"
)

func testTokenService(t *testing.T, secret string) *TokenService {
	t.Helper()
	svc, err := NewTokenService(&config.Config{
		JWTSecret:       secret,
		JWTAlgorithm:    "HS256",
		TokenTTLMinutes: 60,
	})
	require.NoError(t, err)
	return svc
}

func TestIssueThenValidate(t *testing.T) {
	svc := testTokenService(t, "test-secret")
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	token, err := svc.Issue(42, now)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.Validate(token, now)
	require.NoError(t, err)
	assert.Equal(t, uint(42), subject)
}

func TestValidateAfterTTLFails(t *testing.T) {
	svc := testTokenService(t, "test-secret")
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	token, err := svc.Issue(42, now)
	require.NoError(t, err)

	_, err = svc.Validate(token, now.Add(61*time.Minute))
	require.ErrorIs(t, err, ErrInvalidToken)

	// Just inside the window still works.
	subject, err := svc.Validate(token, now.Add(59*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, uint(42), subject)
}

func TestValidateFailuresAreIndistinguishable(t *testing.T) {
	svc := testTokenService(t, "test-secret")
	other := testTokenService(t, "different-secret")
	now := time.Now()

	goodToken, err := svc.Issue(7, now)
	require.NoError(t, err)

	expired, err := svc.Issue(7, now.Add(-2*time.Hour))
	require.NoError(t, err)

	tampered, err := other.Issue(7, now)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"malformed": "not.a.token",
		"empty":     "",
		"expired":   expired,
		"tampered":  tampered,
		"truncated": goodToken[:len(goodToken)-5],
	} {
		_, err := svc.Validate(token, now)
		require.ErrorIs(t, err, ErrInvalidToken, name)
	}
}

func TestNewTokenServiceRejectsBadAlgorithms(t *testing.T) {
	_, err := NewTokenService(&config.Config{
		JWTSecret:       "s",
		JWTAlgorithm:    "nope",
		TokenTTLMinutes: 60,
	})
	require.Error(t, err)

	// Asymmetric algorithms need a key pair, not a shared secret.
	_, err = NewTokenService(&config.Config{
		JWTSecret:       "s",
		JWTAlgorithm:    "RS256",
		TokenTTLMinutes: 60,
	})
	require.Error(t, err)
}

func TestAlgorithmMismatchIsInvalid(t *testing.T) {
	hs512, err := NewTokenService(&config.Config{
		JWTSecret:       "test-secret",
		JWTAlgorithm:    "HS512",
		TokenTTLMinutes: 60,
	})
	require.NoError(t, err)

	hs256 := testTokenService(t, "test-secret")
	now := time.Now()

	token, err := hs512.Issue(9, now)
	require.NoError(t, err)

	_, err = hs256.Validate(token, now)
	require.ErrorIs(t, err, ErrInvalidToken)
}
