package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 5, cfg.LoginRatePerMinute)
	assert.Equal(t, 3, cfg.LoginBurst)

	// A usable signing secret is generated when none is configured
	assert.GreaterOrEqual(t, len(cfg.JWTSecret), 32)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "configured-secret-at-least-32-chars")
	t.Setenv("LOGIN_RATE_PER_MINUTE", "10")
	t.Setenv("CATEGORIES_FILE", "/etc/star-buzz/categories.yaml")

	cfg := Load()

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "configured-secret-at-least-32-chars", cfg.JWTSecret)
	assert.Equal(t, 10, cfg.LoginRatePerMinute)
	assert.Equal(t, "/etc/star-buzz/categories.yaml", cfg.CategoriesFile)
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	cfg := Load()
	assert.Equal(t, 8080, cfg.Port)
}

func TestGenerateRandomSecret(t *testing.T) {
	a := generateRandomSecret(32)
	b := generateRandomSecret(32)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}
