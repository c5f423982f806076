package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config agrupa toda la configuración por env vars.
type Config struct {
	Port        string
	DatabaseURL string // DB_DSN; vacío = repos in-memory

	AppName   string
	LogLevel  string
	LogFormat string

	// Zona horaria del household para cortes de día (day_view / days_view).
	Timezone *time.Location

	AuthBaseURL string
	AuthAPIKey  string
}

// Load lee la configuración desde el entorno. Las vars opcionales
// tienen defaults razonables para dev.
func Load() (*Config, error) {
	tzName := getEnv("APP_TIMEZONE", "America/Los_Angeles")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("config: invalid APP_TIMEZONE %q: %w", tzName, err)
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DB_DSN")),

		AppName:   getEnv("APP_NAME", "pet-care-tracker"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		Timezone: loc,

		AuthBaseURL: strings.TrimSpace(os.Getenv("AUTH_BASE_URL")),
		AuthAPIKey:  strings.TrimSpace(os.Getenv("AUTH_API_KEY")),
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
