package utils

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads the process environment (plus any local .env file) and
// returns the requested variables; every one of them must be set.
func LoadEnv(requiredVars []string) (map[string]string, error) {
	_ = godotenv.Load()

	envVars := make(map[string]string, len(requiredVars))
	for _, key := range requiredVars {
		value := os.Getenv(key)
		if value == "" {
			return nil, fmt.Errorf("missing required environment variable: %s", key)
		}
		envVars[key] = value
	}

	return envVars, nil
}

// EnvOr reads one optional variable with a fallback.
func EnvOr(key, fallback string) string {
	_ = godotenv.Load()
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
