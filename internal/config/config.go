package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress  string
	PostgresURL    string
	MigrationsPath string
	LogLevel       string
	Production     bool
}

// Load reads configuration from the environment, picking up a local .env
// file first when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerAddress:  getEnv("SERVER_ADDRESS", ":8080"),
		PostgresURL:    os.Getenv("POSTGRES_CONN"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "file://migrations"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Production:     os.Getenv("APP_ENV") == "production",
	}

	if cfg.PostgresURL == "" {
		return nil, fmt.Errorf("POSTGRES_CONN is not set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
