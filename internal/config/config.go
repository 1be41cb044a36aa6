package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const PROD_STRING = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	HTTPAddr     string
	DBDSN        string
	RedisAddr    string

	// SlotGranularity is the scheduling grid; start times and durations
	// must align to it.
	SlotGranularity time.Duration
	// OfferedDurations is the duration menu shown to customers, in minutes.
	OfferedDurations []int
	// MaxSelectable caps how many bays one session may select.
	MaxSelectable int
	// FavoriteDebounceWindow is how long favorite toggles coalesce before
	// being written.
	FavoriteDebounceWindow time.Duration
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Production origin (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == PROD_STRING

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// Database DSN is required
	cfg.DBDSN = os.Getenv("DB_DSN")
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}

	// Redis address for the favorites store (default: localhost)
	cfg.RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")

	// Scheduling grid, parse as time.Duration (e.g. "30m", "1h").
	granularityStr := getEnv("SLOT_GRANULARITY", "30m")
	granularity, err := time.ParseDuration(granularityStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SLOT_GRANULARITY: %w", err)
	}
	if granularity <= 0 {
		return nil, fmt.Errorf("SLOT_GRANULARITY must be positive")
	}
	cfg.SlotGranularity = granularity

	// Duration menu as comma-separated minutes (default: 30,60,90,120).
	cfg.OfferedDurations, err = parseMinutes(getEnv("OFFERED_DURATIONS", "30,60,90,120"))
	if err != nil {
		return nil, fmt.Errorf("invalid OFFERED_DURATIONS: %w", err)
	}

	cfg.MaxSelectable, err = getEnvAsInt("MAX_SELECTABLE", 4)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_SELECTABLE: %w", err)
	}
	if cfg.MaxSelectable < 1 {
		return nil, fmt.Errorf("MAX_SELECTABLE must be at least 1")
	}

	debounceStr := getEnv("FAVORITE_DEBOUNCE_WINDOW", "500ms")
	debounce, err := time.ParseDuration(debounceStr)
	if err != nil {
		return nil, fmt.Errorf("invalid FAVORITE_DEBOUNCE_WINDOW: %w", err)
	}
	cfg.FavoriteDebounceWindow = debounce

	return cfg, nil
}

// parseMinutes parses a comma-separated list of positive minute values.
func parseMinutes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	minutes := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		val, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("value %q is not a valid integer: %w", part, err)
		}
		if val <= 0 {
			return nil, fmt.Errorf("value %d must be positive", val)
		}
		minutes = append(minutes, val)
	}
	if len(minutes) == 0 {
		return nil, fmt.Errorf("at least one duration is required")
	}
	return minutes, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer.
// It returns the default value if the variable is not set.
// It returns an error if the variable is set but is not a valid integer.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		// Return 0 and a wrapped error to provide context
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}

	return val, nil
}
