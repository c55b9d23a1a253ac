package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
// It is populated once at startup and read-only afterwards. The Telegram
// token and both chat ids are required; everything else has a default.
type Config struct {
	// Server
	HTTPPort        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// Telegram
	BotToken string
	GroupID  int64
	AdminID  int64

	// TelegramTimeout bounds every outbound Bot API call.
	TelegramTimeout time.Duration
}

func Load() (*Config, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	groupID, err := getChatID("TELEGRAM_GROUP_ID")
	if err != nil {
		return nil, err
	}
	adminID, err := getChatID("TELEGRAM_ADMIN_ID")
	if err != nil {
		return nil, err
	}

	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		ReadTimeout:     getDuration("READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getDuration("WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 30*time.Second),

		BotToken: token,
		GroupID:  groupID,
		AdminID:  adminID,

		TelegramTimeout: getDuration("TELEGRAM_TIMEOUT", 10*time.Second),
	}, nil
}

// getChatID reads a required Telegram chat id. Group ids are negative
// numbers, so a plain signed parse is used.
func getChatID(key string) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a numeric chat id: %w", key, err)
	}
	return id, nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
