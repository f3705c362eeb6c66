// Package config loads session settings from YAML and the environment.
package config

import (
	"os"
	"strings"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// LogLevel returns PONG_LOG_LEVEL lower-cased, defaulting to "info".
func LogLevel() string {
	level := strings.ToLower(strings.TrimSpace(GetEnv("PONG_LOG_LEVEL", "")))
	if level == "" {
		return "info"
	}
	return level
}
