package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	// Set test environment variables
	os.Setenv("SERVER_PORT", "8080")
	os.Setenv("DB_PATH", "/tmp/test-portfolio.db")
	os.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	os.Setenv("APP_URL", "https://portfolio.example.com")

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Assertions
	assert.NotNil(t, cfg)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "/tmp/test-portfolio.db", cfg.DBPath)
	assert.Equal(t, "sk_test_123", cfg.StripeSecretKey)
	assert.Equal(t, "https://portfolio.example.com", cfg.AppURL)

	// Cleanup
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("DB_PATH")
	os.Unsetenv("STRIPE_SECRET_KEY")
	os.Unsetenv("APP_URL")
}

func TestLoadConfig_Defaults(t *testing.T) {
	// Clear environment variables
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("DB_PATH")
	os.Unsetenv("STRIPE_SECRET_KEY")
	os.Unsetenv("APP_URL")

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Assertions - check that defaults are used
	assert.NotNil(t, cfg)
	assert.Equal(t, "3000", cfg.ServerPort)
	assert.Equal(t, "portfolio.db", cfg.DBPath)
	assert.Empty(t, cfg.StripeSecretKey)
	assert.Equal(t, "http://localhost:3000", cfg.AppURL)
	assert.NotEmpty(t, cfg.AllowedOrigins)
}
