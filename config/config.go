package config

import (
	"os"
)

type Config struct {
	// Server Configuration
	Port string

	// Database Configuration
	DatabaseURL  string
	DatabaseName string
}

// LoadConfig loads the configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		// Server Configuration
		Port: getEnvOrDefault("PORT", "8000"),

		// Database Configuration
		DatabaseURL:  getEnvOrDefault("DATABASE_URL", "mongodb://localhost:27017"),
		DatabaseName: getEnvOrDefault("DATABASE_NAME", "beerpong"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
