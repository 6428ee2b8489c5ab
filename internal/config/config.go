// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"nava-ops/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Catalog contains plan catalog settings
	Catalog CatalogConfig `json:"catalog"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Database contains branch/orders database settings
	Database DatabaseConfig `json:"database"`

	// Statistics contains statistics collection settings
	Statistics StatisticsConfig `json:"statistics"`

	// Server contains API server settings
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// CatalogConfig contains plan catalog settings
type CatalogConfig struct {
	// Path is the plan catalog file; empty means the built-in standard plan
	Path string `json:"path,omitempty"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json, markdown)
	DefaultFormat string `json:"default_format"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	// DSN is the PostgreSQL connection string; empty selects the in-memory backends
	DSN string `json:"dsn,omitempty"`
}

// StatisticsConfig contains statistics collection settings
type StatisticsConfig struct {
	// PeriodDays is the reporting window length in days
	PeriodDays int `json:"period_days"`
}

// Period returns the reporting window as a duration
func (s StatisticsConfig) Period() time.Duration {
	return time.Duration(s.PeriodDays) * 24 * time.Hour
}

// ServerConfig contains API server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	catalogPath := filepath.Join(homeDir, ".nava-ops", "plans.hcl")

	return &Config{
		Version: "1.0",
		Catalog: CatalogConfig{
			Path: catalogPath,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
		},
		Statistics: StatisticsConfig{
			PeriodDays: 30,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file. A missing file yields the default
// configuration; .env and process environment override file values.
func Load(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, config); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	config.applyEnv()
	return config, nil
}

// applyEnv overlays .env and process environment values
func (c *Config) applyEnv() {
	// best effort; a missing .env is fine
	_ = godotenv.Load()

	if v := os.Getenv("NAVA_DATABASE_DSN"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("NAVA_CATALOG_PATH"); v != "" {
		c.Catalog.Path = v
	}
	if v := os.Getenv("NAVA_SERVER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("NAVA_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
