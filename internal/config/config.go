package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs from the environment.
type Config struct {
	Addr           string
	Env            string
	StaticDir      string
	BackendBaseURL string
	BackendTimeout time.Duration
	BackendToken   string
	SessionDBPath  string
	CSRFKeyHex     string
	ResendKey      string
	EmailFrom      string
	EmailReplyTo   string
	DigestTo       string
	DigestInterval time.Duration
}

// Load reads configuration from a .env file (if present) and the
// FITLAB_* environment variables.
// POST: Returns a Config with defaults applied for anything unset
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded configuration from .env")
	}

	return Config{
		Addr:           envOrDefault("FITLAB_ADDR", ":8080"),
		Env:            envOrDefault("FITLAB_ENV", "development"),
		StaticDir:      envOrDefault("FITLAB_STATIC_DIR", "static"),
		BackendBaseURL: envOrDefault("FITLAB_BACKEND_URL", "http://localhost:3000"),
		BackendTimeout: envDuration("FITLAB_BACKEND_TIMEOUT", 10*time.Second),
		BackendToken:   os.Getenv("FITLAB_BACKEND_TOKEN"),
		SessionDBPath:  envOrDefault("FITLAB_SESSION_DB", "fitlab.db"),
		CSRFKeyHex:     os.Getenv("FITLAB_CSRF_KEY"),
		ResendKey:      os.Getenv("FITLAB_RESEND_KEY"),
		EmailFrom:      envOrDefault("FITLAB_EMAIL_FROM", "Fitlab <noreply@fitlab.local>"),
		EmailReplyTo:   os.Getenv("FITLAB_EMAIL_REPLY_TO"),
		DigestTo:       os.Getenv("FITLAB_DIGEST_TO"),
		DigestInterval: envDuration("FITLAB_DIGEST_INTERVAL", 24*time.Hour),
	}
}

// IsProduction reports whether the server runs with production settings.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	log.Printf("ignoring invalid duration in %s: %q", key, v)
	return fallback
}
