package config

import (
	"os"
	"strconv"
)

type Config struct {
	Server ServerConfig
	OTLP   OTLPConfig
	Auth   AuthConfig
	Seed   bool
}

type ServerConfig struct {
	Port string
	Host string
}

type OTLPConfig struct {
	Endpoint    string
	ServiceName string
	Environment string
}

type AuthConfig struct {
	Email    string
	Password string
	// RestoreEmail simulates a pre-existing identity session at startup.
	RestoreEmail string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("SERVER_PORT", "8080"),
		},
		OTLP: OTLPConfig{
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "inventory-api"),
			Environment: getEnv("OTEL_ENVIRONMENT", "development"),
		},
		Auth: AuthConfig{
			Email:        getEnv("AUTH_EMAIL", "admin@example.com"),
			Password:     getEnv("AUTH_PASSWORD", "admin123"),
			RestoreEmail: getEnv("AUTH_RESTORE_EMAIL", ""),
		},
		Seed: getEnvBool("SEED_CATALOG", true),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
