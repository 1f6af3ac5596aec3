package config

import (
	"os"
	"time"
)

type AppConfig struct {
	Environment string
	Port        string

	// DatabaseDriver selects the persistence gateway: "sqlite" or "postgres".
	DatabaseDriver string
	DatabaseURL    string
	DatabasePath   string
	MigrationsPath string

	MetricsPort  string
	OTLPEndpoint string

	RateLimitEnabled bool
	RateLimitConfigs map[string]RateLimitConfig
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

func GetDefaultConfig() *AppConfig {
	cfg := &AppConfig{
		Environment:    "development",
		Port:           "8080",
		DatabaseDriver: "sqlite",
		DatabasePath:   "database.db",
		MetricsPort:    "9091",
		OTLPEndpoint:   "localhost:4317",

		RateLimitEnabled: true,
		RateLimitConfigs: map[string]RateLimitConfig{
			"POST /users": {
				Requests: 20,
				Window:   time.Minute,
			},
			"POST /tasks": {
				Requests: 100,
				Window:   time.Minute,
			},
			"DELETE /users/reset": {
				Requests: 5,
				Window:   time.Minute,
			},
			"DELETE /tasks/reset": {
				Requests: 5,
				Window:   time.Minute,
			},
		},
	}

	return cfg.applyEnv()
}

func (cfg *AppConfig) applyEnv() *AppConfig {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseDriver = "postgres"
		cfg.DatabaseURL = v
	}

	if v := os.Getenv("DATABASE_DRIVER"); v != "" {
		cfg.DatabaseDriver = v
	}

	if v := os.Getenv("DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}

	if v := os.Getenv("MIGRATIONS_PATH"); v != "" {
		cfg.MigrationsPath = v
	}

	if v := os.Getenv("METRICS_PORT"); v != "" {
		cfg.MetricsPort = v
	}

	if v := os.Getenv("OTLP_ENDPOINT"); v != "" {
		cfg.OTLPEndpoint = v
	}

	if v := os.Getenv("GIN_MODE"); v == "release" {
		cfg.Environment = "production"
	}

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v == "false" {
		cfg.RateLimitEnabled = false
	}

	return cfg
}
