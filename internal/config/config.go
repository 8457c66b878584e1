// filepath: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the application's configuration.
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	Logging     LoggingConfig     `toml:"logging"`
	Admin       AdminConfig       `toml:"admin"`
	JWT         JWTConfig         `toml:"jwt"`
	Maintenance MaintenanceConfig `toml:"maintenance"`

	AdminPassword      string `toml:"-"` // Not loaded from file, set by CLI/env
	ResetAdminPassword bool   `toml:"-"` // Not loaded from file, set by CLI/env
	JWTSecret          string `toml:"-"` // Runtime secret (from env, flag, or file)

	MaintenanceIntervalDur time.Duration `toml:"-"` // Runtime computed value
}

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// DatabaseConfig holds the database configuration.
type DatabaseConfig struct {
	Path      string `toml:"path"`
	BackupDir string `toml:"backup_dir"`
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level        string `toml:"level"`
	AuditEnabled bool   `toml:"audit_enabled"` // Toggle for the activity log
}

// AdminConfig controls the canonical admin row handling on startup.
//
// BootstrapMode selects between "upsert" (create the admin only when
// missing, the default) and "reset" (delete and re-insert the canonical
// row on every boot, discarding any in-app edits).
type AdminConfig struct {
	BootstrapMode string `toml:"bootstrap_mode"`
}

// JWTConfig holds settings for token generation.
type JWTConfig struct {
	AccessDurationMin    int    `toml:"access_duration_min"`
	RefreshDurationHours int    `toml:"refresh_duration_hours"`
	Secret               string `toml:"secret"` // Persisted secret
}

// MaintenanceConfig holds settings for the background maintenance worker.
type MaintenanceConfig struct {
	Interval string `toml:"interval"` // e.g. "1h", "30m"; empty disables
}

// LoadConfig loads the configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig writes the current configuration back to a TOML file.
// Used to persist the auto-generated JWT secret.
func SaveConfig(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file for saving: %w", err)
	}
	defer f.Close()
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config to file: %w", err)
	}
	return nil
}

// ParseAndValidate processes configuration strings into runtime values
// and rejects invalid settings.
func (c *Config) ParseAndValidate() error {
	switch c.Admin.BootstrapMode {
	case "", "upsert", "reset":
	default:
		return fmt.Errorf("invalid admin.bootstrap_mode %q (must be \"upsert\" or \"reset\")", c.Admin.BootstrapMode)
	}

	if c.Maintenance.Interval != "" {
		d, err := time.ParseDuration(c.Maintenance.Interval)
		if err != nil {
			return fmt.Errorf("invalid maintenance.interval: %w", err)
		}
		if d < time.Minute {
			return fmt.Errorf("maintenance.interval must be at least 1m, got %s", c.Maintenance.Interval)
		}
		c.MaintenanceIntervalDur = d
	}

	return nil
}
