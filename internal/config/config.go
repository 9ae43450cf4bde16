package config

import (
	"fmt"
	"os"
	"strings"
)

// Config contains runtime settings for the marketplace server
type Config struct {
	LogLevel  string
	Host      string // default 0.0.0.0
	Port      string // default PORT env or 5000
	ClientURL string // extra allowed CORS origin for the deployed client
	Mongo     struct {
		URI      string
		Database string
	}
}

// Load populates config from environment variables
func Load() (Config, error) {
	cfg := Config{
		LogLevel: "info",
		Host:     "0.0.0.0",
		Port:     "5000",
	}
	cfg.Mongo.Database = "freelanceMarketplace"

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("HOST"); v != "" {
		cfg.Host = v
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	cfg.ClientURL = os.Getenv("CLIENT_URL")

	cfg.Mongo.URI = os.Getenv("MONGODB_URI")
	if v := os.Getenv("DB_NAME"); v != "" {
		cfg.Mongo.Database = v
	}

	var missingVars []string

	if cfg.Mongo.URI == "" {
		missingVars = append(missingVars, "MONGODB_URI")
	}

	if len(missingVars) > 0 {
		return cfg, fmt.Errorf("missing required environment variables: %s", strings.Join(missingVars, ", "))
	}

	return cfg, nil
}
