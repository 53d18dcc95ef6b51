package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_ALGORITHM", "")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "")
	t.Setenv("SERVER_PORT", "")

	cfg := Load()

	assert.Equal(t, "HS256", cfg.JWTAlgorithm)
	assert.Equal(t, 60, cfg.TokenTTLMinutes)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("JWT_ALGORITHM", "HS512")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "15")
	t.Setenv("SERVER_PORT", "9001")

	cfg := Load()

	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Equal(t, "HS512", cfg.JWTAlgorithm)
	assert.Equal(t, 15, cfg.TokenTTLMinutes)
	assert.Equal(t, ":9001", cfg.Addr())
}

func TestCORSOriginList(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	assert.Nil(t, Load().CORSOrigins)

	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://admin.example.com ,")
	assert.Equal(t,
		[]string{"http://localhost:3000", "https://admin.example.com"},
		Load().CORSOrigins)
}

func TestInvalidTTLFallsBack(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "soon")

	cfg := Load()
	assert.Equal(t, 60, cfg.TokenTTLMinutes)
}
