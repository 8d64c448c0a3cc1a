package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration, read from the environment with an
// optional .env file.
type Config struct {
	ListenAddr         string
	DBPath             string
	ModeratorTokenHash string
	OperatorEmail      string
	SMTPHost           string
	SMTPPort           string
	SMTPUsername       string
	SMTPPassword       string
	SMTPFrom           string
	OutboxInterval     time.Duration
}

// Load reads the configuration. A missing .env file is not an error; a
// missing moderator token hash is, since the admin surface would otherwise be
// open.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ListenAddr:         getEnv("EMPIREK_ADDR", ":8080"),
		DBPath:             getEnv("EMPIREK_DB_PATH", "data/badger"),
		ModeratorTokenHash: os.Getenv("EMPIREK_MODERATOR_TOKEN_HASH"),
		OperatorEmail:      getEnv("EMPIREK_CONTACT_EMAIL", "hello@empirek.com"),
		SMTPHost:           os.Getenv("EMPIREK_SMTP_HOST"),
		SMTPPort:           getEnv("EMPIREK_SMTP_PORT", "587"),
		SMTPUsername:       os.Getenv("EMPIREK_SMTP_USERNAME"),
		SMTPPassword:       os.Getenv("EMPIREK_SMTP_PASSWORD"),
		SMTPFrom:           getEnv("EMPIREK_SMTP_FROM", "noreply@empirek.com"),
		OutboxInterval:     30 * time.Second,
	}

	if cfg.ModeratorTokenHash == "" {
		return nil, fmt.Errorf("EMPIREK_MODERATOR_TOKEN_HASH is required")
	}

	if v := os.Getenv("EMPIREK_OUTBOX_INTERVAL"); v != "" {
		interval, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid EMPIREK_OUTBOX_INTERVAL: %v", err)
		}
		cfg.OutboxInterval = interval
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
