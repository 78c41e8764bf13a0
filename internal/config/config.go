package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/vladimiradmaev/glucose-tracker/internal/logger"
)

type Config struct {
	Storage StorageConfig
	Mailer  MailerConfig
	Logger  LoggerConfig
}

type StorageConfig struct {
	// Path to the local database file. Empty means the per-user default
	// location is used.
	Path string
}

// MailerConfig identifies the external email relay used for caregiver
// notifications. ServiceID and TemplateID are the two static routing
// identifiers of the relay endpoint.
type MailerConfig struct {
	BaseURL    string
	ServiceID  string
	TemplateID string
	PublicKey  string
	SenderName string
	Timeout    time.Duration
}

type LoggerConfig struct {
	Level      logger.LogLevel
	OutputPath string
	Format     string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.LevelDebug
	case "info":
		return logger.LevelInfo
	case "warn", "warning":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

func Load() (*Config, error) {
	return &Config{
		Storage: StorageConfig{
			Path: os.Getenv("GLUCOTRACK_DB_PATH"),
		},
		Mailer: MailerConfig{
			BaseURL:    getEnvOrDefault("EMAIL_RELAY_URL", "https://api.emailjs.com"),
			ServiceID:  os.Getenv("EMAIL_RELAY_SERVICE_ID"),
			TemplateID: os.Getenv("EMAIL_RELAY_TEMPLATE_ID"),
			PublicKey:  os.Getenv("EMAIL_RELAY_PUBLIC_KEY"),
			SenderName: getEnvOrDefault("EMAIL_SENDER_NAME", "Glucose Tracker"),
			Timeout:    getDurationOrDefault("EMAIL_RELAY_TIMEOUT_SECONDS", 15*time.Second),
		},
		Logger: LoggerConfig{
			Level:      parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
			OutputPath: getEnvOrDefault("LOG_OUTPUT", "stdout"),
			Format:     getEnvOrDefault("LOG_FORMAT", "text"),
		},
	}, nil
}
