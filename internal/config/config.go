// Package config reads the service configuration from the
// environment. main loads a .env file first, so local values can live
// next to the binary during development.
package config

import (
	"os"
	"strconv"
)

type Config struct {
	// Env selects the logger profile, "development" or "production".
	Env      string
	HTTPAddr string
	LogLevel string

	PostgresDSN string
	RedisAddr   string
	RedisDB     int

	// QRBaseURL is the public prefix encoded into generated codes.
	QRBaseURL string
	// QRDir is the blob directory for generated images.
	QRDir string
	// QRSize is the square image size in pixels.
	QRSize int

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	// TelegramToken enables the support-chat sink when non-empty.
	TelegramToken  string
	TelegramChatID int64

	// NotifyOnCreate queues a client confirmation email on create.
	NotifyOnCreate bool
}

// Load builds the configuration from environment variables, falling
// back to development defaults.
func Load() *Config {
	return &Config{
		Env:      getEnv("APP_ENV", "development"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8083"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		PostgresDSN: getEnv("POSTGRES_DSN",
			"host=localhost user=user password=password dbname=reclamationsdb port=5432 sslmode=disable"),
		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:   getEnvInt("REDIS_DB", 0),

		QRBaseURL: getEnv("QR_BASE_URL", "http://localhost:8083/reclamations"),
		QRDir:     getEnv("QR_DIR", "data/reclamation-qr"),
		QRSize:    getEnvInt("QR_SIZE", 256),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", "service-client@localhost"),

		TelegramToken:  getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID: getEnvInt64("TELEGRAM_CHAT_ID", 0),

		NotifyOnCreate: getEnvBool("NOTIFY_ON_CREATE", false),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
