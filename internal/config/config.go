package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	AllowedOrigin string
	// Database; the in-memory seeded catalog is used when unset.
	DatabaseURL string
	// Optional vocabulary override file; the embedded default is used when unset.
	VocabFile string
	// User reference attached to created orders.
	DefaultUserRef string
	// Delay between simulated-streaming chunks on the websocket.
	StreamChunkDelay time.Duration
	// Transcript messages kept per session.
	MaxHistory int
}

func Load() Config {
	_ = godotenv.Load()
	return Config{
		Port:             getEnvDefault("PORT", "8080"),
		AllowedOrigin:    getEnvDefault("ALLOWED_ORIGIN", "*"),
		DatabaseURL:      os.Getenv("DB_URL"),
		VocabFile:        os.Getenv("VOCAB_FILE"),
		DefaultUserRef:   getEnvDefault("DEFAULT_USER_REF", "user-123"),
		StreamChunkDelay: time.Duration(getEnvIntDefault("STREAM_CHUNK_DELAY_MS", 30)) * time.Millisecond,
		MaxHistory:       getEnvIntDefault("MAX_HISTORY", 40),
	}
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvIntDefault(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
