package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the accounts service.
// Every field has a sane default so the service starts with no environment.
type Config struct {
	Addr            string        `env:"ADDR"`
	LogLevel        string        `env:"LOG_LEVEL"`
	LogFormat       string        `env:"LOG_FORMAT"`
	DevSeed         bool          `env:"DEV_SEED"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Load reads configuration from the environment, with an optional .env file
// for local development.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Addr = getEnvOrDefault("ADDR", ":8080")
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", "INFO")
	cfg.LogFormat = getEnvOrDefault("LOG_FORMAT", "json")
	cfg.DevSeed = getEnvAsBool("DEV_SEED", false)
	cfg.ShutdownTimeout = getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnvOrDefault(key, defaultValue.String())
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
