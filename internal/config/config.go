package config

import (
	"fmt"
	"os"
	"strconv"
)

// Default locations used when the environment leaves them unset.
const (
	DefaultDBPath      = "data/menu-planner.db"
	DefaultCatalogPath = "data/dishes.json"
	DefaultHTTPAddr    = ":8080"
)

// Config holds the configuration for the application. Only the settings a
// command actually uses are validated, by that command.
type Config struct {
	DBPath      string
	CatalogPath string
	HTTPAddr    string

	// Redis (purchase-state store); empty means in-memory state only.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Telegram share collaborator.
	TelegramBotToken string
	TelegramChatID   int64

	// Gemini (dish importer).
	GeminiAPIKey string

	// Bearer-token secret for mutating API routes; empty disables auth.
	APISecret string
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	cfg := &Config{
		DBPath:           getenvDefault("MENU_DB_PATH", DefaultDBPath),
		CatalogPath:      getenvDefault("MENU_CATALOG_PATH", DefaultCatalogPath),
		HTTPAddr:         getenvDefault("MENU_HTTP_ADDR", DefaultHTTPAddr),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		APISecret:        os.Getenv("MENU_API_SECRET"),
	}

	if raw := os.Getenv("REDIS_DB"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value %q: %w", raw, err)
		}
		cfg.RedisDB = n
	}

	if raw := os.Getenv("TELEGRAM_CHAT_ID"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID value %q: %w", raw, err)
		}
		cfg.TelegramChatID = n
	}

	return cfg, nil
}

// RequireTelegram validates the settings the share command needs.
func (c *Config) RequireTelegram() error {
	if c.TelegramBotToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable not set")
	}
	if c.TelegramChatID == 0 {
		return fmt.Errorf("TELEGRAM_CHAT_ID environment variable not set")
	}
	return nil
}

// RequireGemini validates the settings the clip command needs.
func (c *Config) RequireGemini() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}
	return nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
