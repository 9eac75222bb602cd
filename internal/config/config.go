package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Safe Transaction Service base URL
	TxServiceURL string

	// Log level ( debug | info | warn | error )
	LogLevel string

	// Timeout for transaction-service HTTP requests
	HTTPTimeout time.Duration
}

// Load returns the reporter configuration from environment variables,
// falling back to defaults suitable for Ethereum mainnet
func Load() *Config {
	return &Config{
		TxServiceURL: getEnv("SAFESTATS_TX_SERVICE_URL", "https://safe-transaction-mainnet.safe.global"),
		LogLevel:     getEnv("SAFESTATS_LOG_LEVEL", "info"),
		HTTPTimeout:  time.Duration(getEnvAsInt("SAFESTATS_HTTP_TIMEOUT_SEC", 30)) * time.Second,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.TxServiceURL == "" {
		return fmt.Errorf("TxServiceURL is required")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTPTimeout must be positive")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// Helper: get string from env
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// Helper: get int from env
func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}
