// Package config reads runtime settings from the environment. A .env file,
// if present, is loaded by main before Load is called. Command-line flags
// override what Load returns.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/hammamikhairi/cocktailbox/internal/cocktaildb"
)

type Config struct {
	// Remote API
	BaseURL   string
	Timeout   time.Duration
	UserAgent string

	// Logging
	LogFile string

	// Web front end
	Addr string
}

func Load() *Config {
	return &Config{
		BaseURL:   getEnv("COCKTAILDB_BASE_URL", cocktaildb.DefaultBaseURL),
		Timeout:   getDurationEnv("COCKTAILDB_TIMEOUT_SECONDS", 10) * time.Second,
		UserAgent: getEnv("COCKTAILBOX_USER_AGENT", "cocktailbox/1.0"),
		LogFile:   getEnv("COCKTAILBOX_LOG_FILE", ".cocktailbox/cocktailbox.log"),
		Addr:      getEnv("COCKTAILBOX_ADDR", ":8080"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil && intVal > 0 {
			return time.Duration(intVal)
		}
	}
	return time.Duration(defaultValue)
}
