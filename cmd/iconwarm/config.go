package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// =============================================================================
// Config Types
// =============================================================================

// Config holds all iconwarm configuration.
type Config struct {
	Service ServiceConfig `mapstructure:"service"`
	List    ListConfig    `mapstructure:"list"`
	Ledger  LedgerConfig  `mapstructure:"ledger"`
	Log     LogConfig     `mapstructure:"log"`
}

// ServiceConfig holds icon service connection configuration.
type ServiceConfig struct {
	// BaseURL is the icon service base URL. Required.
	BaseURL string `mapstructure:"base_url"`

	// AnonKey is the anonymous access token. Required.
	AnonKey string `mapstructure:"anon_key"`

	// Timeout is the per-request timeout.
	Timeout time.Duration `mapstructure:"timeout"`
}

// ListConfig holds warm list configuration.
type ListConfig struct {
	// Path is an optional YAML list file. Empty uses the built-in list.
	Path string `mapstructure:"path"`
}

// LedgerConfig holds warm-run ledger configuration.
type LedgerConfig struct {
	// DSN is the SQLite DSN for audit records. Empty disables the ledger.
	DSN string `mapstructure:"dsn"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// =============================================================================
// Config Loading
// =============================================================================

// LoadConfig loads configuration from file and environment.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("service.base_url", "")
	v.SetDefault("service.anon_key", "")
	v.SetDefault("service.timeout", "30s")
	v.SetDefault("list.path", "")
	v.SetDefault("ledger.dsn", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigParseError); ok {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
			// File not found is OK, we'll use defaults
		}
	}

	v.SetEnvPrefix("ICONWARM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate checks required startup preconditions. The service URL and anon
// key have no workable defaults; a missing value must abort before any
// request is attempted.
func (c *Config) Validate() error {
	var missing []string
	if c.Service.BaseURL == "" {
		missing = append(missing, "service.base_url (ICONWARM_SERVICE_BASE_URL)")
	}
	if c.Service.AnonKey == "" {
		missing = append(missing, "service.anon_key (ICONWARM_SERVICE_ANON_KEY)")
	}
	if len(missing) > 0 {
		return errors.New("missing required configuration: " + strings.Join(missing, ", "))
	}
	return nil
}

// =============================================================================
// Logger Setup
// =============================================================================

// SetupLogger creates a logger with the configured level and format.
func SetupLogger(cfg *Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if strings.ToLower(cfg.Log.Format) == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
