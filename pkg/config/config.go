package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	ServerPort string

	// Database
	DBPath string

	// Stripe
	StripeSecretKey string

	// Frontend
	AppURL         string
	AllowedOrigins []string
}

func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	config := &Config{
		ServerPort: getEnv("SERVER_PORT", "3000"),

		DBPath: getEnv("DB_PATH", "portfolio.db"),

		// STRIPE_SECRET_KEY is optional - without it the checkout
		// endpoint responds with a configuration error
		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),

		AppURL: getEnv("APP_URL", "http://localhost:3000"),
		AllowedOrigins: []string{
			getEnv("FRONTEND_ORIGIN", "http://localhost:3000"),
			"http://127.0.0.1:3000",
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
