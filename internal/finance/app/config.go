package app

import (
	"os"
	"strconv"
	"time"

	"github.com/Leonelvm1/FinanceApp/pkg/jwtx"
)

type Config struct {
	SigningSecret string // Required: HS256 secret for access tokens

	Issuer              string        // Optional: issuer claim for tokens (default: financeapp)
	TokenTTL            time.Duration // Optional: access token lifetime (default: 30m)
	DatabaseFile        string        // Optional: path to SQLite database file (default: ./finance.db)
	PepperFile          string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		SigningSecret:       os.Getenv("FINANCE_SIGNING_SECRET"),
		Issuer:              getEnvOrDefault("FINANCE_ISSUER", "financeapp"),
		TokenTTL:            getEnvDurationOrDefault("FINANCE_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),
		DatabaseFile:        getEnvOrDefault("FINANCE_DATABASE_FILE", "finance.db"),
		PepperFile:          getEnvOrDefault("FINANCE_PEPPER_FILE", "pepper"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Accepts durations ("30m", "1h") or plain integer minutes.
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
