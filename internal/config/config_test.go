// filepath: internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[server]
host = "127.0.0.1"
port = 9090

[database]
path = "clinic.db"
backup_dir = "clinic_backups"

[logging]
level = "debug"
audit_enabled = true

[admin]
bootstrap_mode = "reset"

[maintenance]
interval = "30m"
`
	err := os.WriteFile(path, []byte(content), 0644)
	assert.NoError(t, err)

	cfg, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "clinic.db", cfg.Database.Path)
	assert.Equal(t, "clinic_backups", cfg.Database.BackupDir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.AuditEnabled)
	assert.Equal(t, "reset", cfg.Admin.BootstrapMode)

	err = cfg.ParseAndValidate()
	assert.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cfg.MaintenanceIntervalDur)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestParseAndValidate(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg := &Config{}
		assert.NoError(t, cfg.ParseAndValidate())
		assert.Zero(t, cfg.MaintenanceIntervalDur)
	})

	t.Run("Invalid bootstrap mode", func(t *testing.T) {
		cfg := &Config{Admin: AdminConfig{BootstrapMode: "recreate"}}
		err := cfg.ParseAndValidate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "bootstrap_mode")
	})

	t.Run("Invalid maintenance interval", func(t *testing.T) {
		cfg := &Config{Maintenance: MaintenanceConfig{Interval: "soon"}}
		assert.Error(t, cfg.ParseAndValidate())
	})

	t.Run("Too short maintenance interval", func(t *testing.T) {
		cfg := &Config{Maintenance: MaintenanceConfig{Interval: "10s"}}
		assert.Error(t, cfg.ParseAndValidate())
	})
}

func TestSaveConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.JWT.Secret = "persisted-secret"

	assert.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, 8080, loaded.Server.Port)
	assert.Equal(t, "persisted-secret", loaded.JWT.Secret)
}
