package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the configuration for the application.
type Config struct {
	JWTSecret    string
	DatabasePath string
	Port         string
	LogMode      string
	SessionTTL   time.Duration
	PlanDelay    time.Duration
	CORSOrigins  []string

	// Telegram Config
	TelegramBotToken   string
	TelegramWebhookURL string
}

// fileConfig mirrors the optional YAML file named by RUNNERSPRO_CONFIG.
type fileConfig struct {
	JWTSecret          string   `yaml:"jwt_secret"`
	DatabasePath       string   `yaml:"database_path"`
	Port               string   `yaml:"port"`
	LogMode            string   `yaml:"log_mode"`
	SessionTTLHours    int      `yaml:"session_ttl_hours"`
	PlanDelayMS        int      `yaml:"plan_delay_ms"`
	CORSOrigins        []string `yaml:"cors_origins"`
	TelegramBotToken   string   `yaml:"telegram_bot_token"`
	TelegramWebhookURL string   `yaml:"telegram_webhook_url"`
}

// NewFromEnv creates a new Config object from environment variables. Values from the
// YAML file named by RUNNERSPRO_CONFIG are used where the environment is silent.
func NewFromEnv() (*Config, error) {
	var file fileConfig
	if path := os.Getenv("RUNNERSPRO_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	jwtSecret := envOr("JWT_SECRET", file.JWTSecret)
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable not set")
	}

	ttlHours, err := intEnv("SESSION_TTL_HOURS", file.SessionTTLHours, 24)
	if err != nil {
		return nil, err
	}
	if ttlHours <= 0 {
		return nil, fmt.Errorf("SESSION_TTL_HOURS must be positive, got %d", ttlHours)
	}

	delayMS, err := intEnv("PLAN_DELAY_MS", file.PlanDelayMS, 0)
	if err != nil {
		return nil, err
	}

	origins := file.CORSOrigins
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		origins = splitList(v)
	}
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	return &Config{
		JWTSecret:          jwtSecret,
		DatabasePath:       envOr("DATABASE_PATH", orDefault(file.DatabasePath, "data/runnerspro.db")),
		Port:               envOr("PORT", orDefault(file.Port, "8080")),
		LogMode:            envOr("LOG_MODE", orDefault(file.LogMode, "development")),
		SessionTTL:         time.Duration(ttlHours) * time.Hour,
		PlanDelay:          time.Duration(delayMS) * time.Millisecond,
		CORSOrigins:        origins,
		TelegramBotToken:   envOr("TELEGRAM_BOT_TOKEN", file.TelegramBotToken),
		TelegramWebhookURL: envOr("TELEGRAM_WEBHOOK_URL", file.TelegramWebhookURL),
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func intEnv(key string, fileValue, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		if fileValue != 0 {
			return fileValue, nil
		}
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
