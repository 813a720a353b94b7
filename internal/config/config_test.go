package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "*", cfg.AllowedOrigin)
	assert.Equal(t, "user-123", cfg.DefaultUserRef)
	assert.Equal(t, 30*time.Millisecond, cfg.StreamChunkDelay)
	assert.Equal(t, 40, cfg.MaxHistory)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STREAM_CHUNK_DELAY_MS", "0")
	t.Setenv("MAX_HISTORY", "not a number")
	t.Setenv("DB_URL", "postgres://localhost/retail")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, time.Duration(0), cfg.StreamChunkDelay)
	assert.Equal(t, 40, cfg.MaxHistory, "unparseable ints fall back to the default")
	assert.Equal(t, "postgres://localhost/retail", cfg.DatabaseURL)
}
