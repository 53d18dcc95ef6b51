package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pw")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-pw", hash)

	assert.True(t, VerifyPassword("s3cret-pw", hash))
	assert.False(t, VerifyPassword("wrong-pw", hash))
	assert.False(t, VerifyPassword("", hash))
}

func TestHashIsSalted(t *testing.T) {
	h1, err := HashPassword("same-password")
	require.NoError(t, err)
	h2, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, VerifyPassword("same-password", h1))
	assert.True(t, VerifyPassword("same-password", h2))
}

func TestLongPasswordsTruncateAt72Bytes(t *testing.T) {
	prefix := strings.Repeat("a", 72)
	hash, err := HashPassword(prefix + "tail-that-bcrypt-never-sees")
	require.NoError(t, err)

	// Identical first 72 bytes verify regardless of the trailing
	// content.
	assert.True(t, VerifyPassword(prefix, hash))
	assert.True(t, VerifyPassword(prefix+"completely-different-tail", hash))

	// A difference inside the first 72 bytes still fails.
	assert.False(t, VerifyPassword(strings.Repeat("b", 72), hash))
}

func TestVerifyMalformedHashReturnsFalse(t *testing.T) {
	assert.False(t, VerifyPassword("whatever", ""))
	assert.False(t, VerifyPassword("whatever", "not-a-bcrypt-hash"))
	assert.False(t, VerifyPassword("whatever", "$2a$garbage"))
}
