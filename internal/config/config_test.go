package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.TxServiceURL != "https://safe-transaction-mainnet.safe.global" {
		t.Errorf("Unexpected default TxServiceURL: %s", cfg.TxServiceURL)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Unexpected default LogLevel: %s", cfg.LogLevel)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("Unexpected default HTTPTimeout: %v", cfg.HTTPTimeout)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to validate, got: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SAFESTATS_TX_SERVICE_URL", "https://safe-transaction-sepolia.safe.global")
	t.Setenv("SAFESTATS_LOG_LEVEL", "debug")
	t.Setenv("SAFESTATS_HTTP_TIMEOUT_SEC", "5")

	cfg := Load()

	if cfg.TxServiceURL != "https://safe-transaction-sepolia.safe.global" {
		t.Errorf("Unexpected TxServiceURL: %s", cfg.TxServiceURL)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Unexpected LogLevel: %s", cfg.LogLevel)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Errorf("Unexpected HTTPTimeout: %v", cfg.HTTPTimeout)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Load()
	cfg.TxServiceURL = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for empty TxServiceURL")
	}

	cfg = Load()
	cfg.LogLevel = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for unknown log level")
	}

	cfg = Load()
	cfg.HTTPTimeout = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for zero timeout")
	}
}
