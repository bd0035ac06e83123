// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to info.
	// LOG_LEVEL accepts debug, info, warn or error, case-insensitively.
	LogLevel slog.Level

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// JWTSecret signs and verifies bearer tokens. Required.
	JWTSecret string

	// TokenTTL is how long an issued token stays valid. Defaults to 24h.
	TokenTTL time.Duration

	// MaxBodyBytes caps request body size. Defaults to 1 MiB.
	MaxBodyBytes int64

	// TicketBaseURL is the public origin printed in ticket QR codes.
	TicketBaseURL string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set or
// values that cannot be parsed.
func Load() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		CORSOrigins:   splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		TicketBaseURL: strings.TrimRight(getEnv("TICKET_BASE_URL", "http://localhost:8080"), "/"),
	}

	var missing, invalid []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		invalid = append(invalid, "LOG_LEVEL")
	}

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "24h"))
	if err != nil || ttl <= 0 {
		invalid = append(invalid, "TOKEN_TTL")
	}
	cfg.TokenTTL = ttl

	maxBody, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil || maxBody <= 0 {
		invalid = append(invalid, "MAX_BODY_BYTES")
	}
	cfg.MaxBodyBytes = maxBody

	var problems []string
	if len(missing) > 0 {
		problems = append(problems, "required environment variables not set: "+strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		problems = append(problems, "invalid environment variables: "+strings.Join(invalid, ", "))
	}
	if len(problems) > 0 {
		return Config{}, errors.New(strings.Join(problems, "; "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
