package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("BACKEND_URL", "")
	t.Setenv("SESSION_SECRET", "")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "http://localhost:4000", cfg.BackendURL)
	assert.Equal(t, "ws://localhost:4000/ws", cfg.PushURL)
	assert.Len(t, cfg.SessionSecret, 32, "missing secret gets a generated key")
}

func TestLoadNormalizesPort(t *testing.T) {
	t.Setenv("PORT", "9000")
	cfg := Load()
	assert.Equal(t, ":9000", cfg.Port)
}

func TestLoadRedirectURLFollowsBaseURL(t *testing.T) {
	t.Setenv("BASE_URL", "https://stytchup.example")
	t.Setenv("GOOGLE_REDIRECT_URL", "")
	cfg := Load()
	assert.Equal(t, "https://stytchup.example/auth/google/callback", cfg.GoogleRedirectURL)
}
