package config

import (
	"os"
	"sync"
)

// Config holds database configuration shared by the API and the scripts
type Config struct {
	// PostgreSQL
	PostgresURI string
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the singleton configuration instance
func GetConfig() *Config {
	once.Do(func() {
		config = loadConfig()
	})
	return config
}

func loadConfig() *Config {
	return &Config{
		PostgresURI: getEnv("POSTGRES_URI", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
