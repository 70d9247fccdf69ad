package transport

import (
	"os"
	"strconv"
	"time"
)

// Config holds transport configuration.
type Config struct {
	// API settings
	BaseURL      string
	KeepAlive    time.Duration
	MaxIdleConns int
	IdleTimeout  time.Duration

	// Rate limiting. Telegram caps bots at roughly 30 messages per second
	// overall; the limiter enforces that same ceiling and nothing stricter.
	GlobalRPS   float64
	GlobalBurst int

	// Circuit breaker
	BreakerMaxRequests uint32
	BreakerInterval    time.Duration
	BreakerTimeout     time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:            "https://api.telegram.org",
		KeepAlive:          30 * time.Second,
		MaxIdleConns:       100,
		IdleTimeout:        90 * time.Second,
		GlobalRPS:          30,
		GlobalBurst:        10,
		BreakerMaxRequests: 5,
		BreakerInterval:    60 * time.Second,
		BreakerTimeout:     30 * time.Second,
	}
}

// LoadConfig loads transport configuration from environment variables.
// Unset or malformed variables keep their defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if url := getEnv("TELEGRAM_API_BASE_URL", ""); url != "" {
		cfg.BaseURL = url
	}

	if f, err := strconv.ParseFloat(getEnv("RATE_LIMIT_REQUESTS", "30"), 64); err == nil {
		cfg.GlobalRPS = f
	}

	if i, err := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "10")); err == nil {
		cfg.GlobalBurst = i
	}

	if i, err := strconv.ParseUint(getEnv("BREAKER_MAX_REQUESTS", "5"), 10, 32); err == nil {
		cfg.BreakerMaxRequests = uint32(i)
	}

	if d, err := time.ParseDuration(getEnv("BREAKER_INTERVAL", "60s")); err == nil {
		cfg.BreakerInterval = d
	}

	if d, err := time.ParseDuration(getEnv("BREAKER_TIMEOUT", "30s")); err == nil {
		cfg.BreakerTimeout = d
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
