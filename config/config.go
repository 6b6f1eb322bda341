package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Storage drivers.
const (
	DriverBolt     = "bolt"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config struct to hold the configuration settings
type Config struct {
	Storage       StorageConfig       `yaml:"storage"`
	Postgres      PostgresConfig      `yaml:"postgres"`
	NATS          NATSConfig          `yaml:"nats"`
	HTTP          HTTPConfig          `yaml:"http"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// StorageConfig selects where players and rounds are persisted.
type StorageConfig struct {
	Driver   string `yaml:"driver"` // bolt|postgres|memory
	BoltPath string `yaml:"bolt_path"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// NATSConfig holds NATS configuration. An empty URL keeps events in process.
type NATSConfig struct {
	URL string `yaml:"url"`
}

// HTTPConfig holds the API server settings.
type HTTPConfig struct {
	Addr         string  `yaml:"addr"`
	RateLimitRPS float64 `yaml:"rate_limit_rps"`
	RateBurst    int     `yaml:"rate_burst"`
}

// ObservabilityConfig holds configuration for observability components
type ObservabilityConfig struct {
	LogLevel       string `yaml:"log_level"`
	LogFormat      string `yaml:"log_format"` // json|text
	MetricsEnabled bool   `yaml:"metrics_enabled"`
	Environment    string `yaml:"environment"`
}

// LoadConfig loads the configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	// Try reading configuration from the file first
	data, err := os.ReadFile(filename)
	if err != nil {
		// If the file is not found, try loading from environment variables
		return loadConfigFromEnv()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// --- OVERRIDE WITH ENV VARS IF PRESENT ---
	if v := os.Getenv("GOLF_STORAGE_DRIVER"); v != "" {
		cfg.Storage.Driver = v
	}
	if v := os.Getenv("GOLF_BOLT_PATH"); v != "" {
		cfg.Storage.BoltPath = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("NATS_URL"); v != "" {
		cfg.NATS.URL = v
	}
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.HTTP.RateLimitRPS = f
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Observability.LogFormat = v
	}
	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		cfg.Observability.MetricsEnabled = v == "true"
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Observability.Environment = v
	}

	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadConfigFromEnv loads the configuration from environment variables.
func loadConfigFromEnv() (*Config, error) {
	var cfg Config

	cfg.Storage.Driver = os.Getenv("GOLF_STORAGE_DRIVER")
	cfg.Storage.BoltPath = os.Getenv("GOLF_BOLT_PATH")
	cfg.Postgres.DSN = os.Getenv("DATABASE_URL")
	cfg.NATS.URL = os.Getenv("NATS_URL") // optional; empty keeps events in process
	cfg.HTTP.Addr = os.Getenv("HTTP_ADDR")

	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_RPS value: %v", err)
		}
		cfg.HTTP.RateLimitRPS = rps
	}

	cfg.Observability.LogLevel = os.Getenv("LOG_LEVEL")
	cfg.Observability.LogFormat = os.Getenv("LOG_FORMAT")
	cfg.Observability.MetricsEnabled = os.Getenv("METRICS_ENABLED") != "false"
	cfg.Observability.Environment = os.Getenv("ENV")

	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = DriverBolt
	}
	if cfg.Storage.BoltPath == "" {
		cfg.Storage.BoltPath = "golf.bolt"
	}
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8080"
	}
	if cfg.HTTP.RateLimitRPS == 0 {
		cfg.HTTP.RateLimitRPS = 10
	}
	if cfg.HTTP.RateBurst == 0 {
		cfg.HTTP.RateBurst = 20
	}
	if cfg.Observability.LogLevel == "" {
		cfg.Observability.LogLevel = "info"
	}
	if cfg.Observability.LogFormat == "" {
		cfg.Observability.LogFormat = "text"
	}
	if cfg.Observability.Environment == "" {
		cfg.Observability.Environment = "development"
	}
}

// Validate checks settings that depend on each other.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverBolt, DriverMemory:
	case DriverPostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("DATABASE_URL must be set for the %s storage driver", DriverPostgres)
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.HTTP.RateLimitRPS < 0 {
		return fmt.Errorf("rate limit must not be negative, got %v", c.HTTP.RateLimitRPS)
	}
	return nil
}
