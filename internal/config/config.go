// Package config assembles the process configuration from environment
// variables. A .env file is loaded first when present, so local
// development needs no exported shell state.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/adilet/learnloop/internal/llm"
)

// Config is everything the server needs to start.
type Config struct {
	// Env is "development" or "production". Drives logger encoding and
	// gin mode.
	Env string

	// Addr is the listen address.
	Addr string

	// DatabaseDSN selects the datastore: a postgres:// URL or a SQLite
	// path.
	DatabaseDSN string

	// JWTSecret verifies bearer tokens. Empty disables verification and
	// trusts the claims as-is, for local development only.
	JWTSecret string

	// AllowedOrigins is the CORS allowlist. Empty allows all origins.
	AllowedOrigins []string

	LLM llm.Config
}

// Load reads the configuration. Missing variables get development
// defaults; nothing here validates credentials, that happens when the
// provider is built.
func Load() Config {
	// Ignore a missing .env; deployed environments set real variables.
	_ = godotenv.Load()

	cfg := Config{
		Env:         getenv("LEARNLOOP_ENV", "development"),
		Addr:        getenv("LEARNLOOP_ADDR", ":8080"),
		DatabaseDSN: getenv("LEARNLOOP_DATABASE_DSN", "learnloop.db"),
		JWTSecret:   os.Getenv("LEARNLOOP_JWT_SECRET"),
		LLM:         llm.ConfigFromEnv(),
	}

	if origins := os.Getenv("LEARNLOOP_ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
