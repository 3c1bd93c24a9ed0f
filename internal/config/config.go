// Package config reads process configuration from the environment, the way
// the service has always been configured: no config files, no flags.
package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds every environment-derived setting the server needs to start.
type Config struct {
	Addr         string
	DataDir      string
	JWTSecret    string
	RedisAddr    string
	DatabaseURL  string
	GenAIAPIKey  string
	OTelEndpoint string
	LogLevel     string
}

// Load reads Config from the environment. JWTSecret is mandatory; everything
// else has a sane default for local development.
func Load() Config {
	return Config{
		Addr:         getEnvOrDefault("ECON_ADDR", ":8080"),
		DataDir:      getEnvOrDefault("ECON_DATA_DIR", "./data/baseline"),
		JWTSecret:    mustGetEnv("ECON_JWT_SECRET"),
		RedisAddr:    getEnvOrDefault("ECON_REDIS_ADDR", "localhost:6379"),
		DatabaseURL:  getEnvOrDefault("ECON_DATABASE_URL", ""),
		GenAIAPIKey:  os.Getenv("ECON_GENAI_API_KEY"),
		OTelEndpoint: getEnvOrDefault("ECON_OTEL_ENDPOINT", ""),
		LogLevel:     getEnvOrDefault("ECON_LOG_LEVEL", "info"),
	}
}

// mustGetEnv behaves like os.Getenv but terminates the process if the
// variable is empty, so a missing secret fails at boot rather than at the
// first request that needs it.
func mustGetEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("%s environment variable is required but not set", key)
	}
	return v
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt reads an integer-valued environment variable, falling back to
// def on absence or parse failure.
func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// RateLimitPerMinute is the default per-identifier request budget for the
// simulate endpoint, overridable for load testing.
func RateLimitPerMinute() int {
	return getEnvInt("ECON_RATE_LIMIT_PER_MINUTE", 60)
}
