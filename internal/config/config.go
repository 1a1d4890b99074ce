package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/vbonduro/pantry/internal/domain"
)

type Config struct {
	LogLevel string
	LogFile  string
	// TodayOverride pins the starting date (YYYY-MM-DD). Empty means the system date.
	TodayOverride string
	Prompt        string
	Seed          bool
}

// Load reads configuration from the environment after applying envFile. A
// missing envFile is ignored; an empty envFile means ".env".
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	// Environment-only setups have no env file.
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
	}

	cfg := &Config{
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFile:       getEnv("LOG_FILE", ""),
		TodayOverride: getEnv("PANTRY_TODAY", ""),
		Prompt:        getEnv("PANTRY_PROMPT", "> "),
		Seed:          os.Getenv("PANTRY_SEED") == "1",
	}

	if cfg.TodayOverride != "" {
		if _, err := domain.ParseDate(cfg.TodayOverride); err != nil {
			return nil, fmt.Errorf("PANTRY_TODAY: %w", err)
		}
	}

	return cfg, nil
}

// Today returns the configured start date, or now's calendar day.
func (c *Config) Today(now time.Time) time.Time {
	if c.TodayOverride != "" {
		if d, err := domain.ParseDate(c.TodayOverride); err == nil {
			return d
		}
	}
	return domain.Date(now)
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}
