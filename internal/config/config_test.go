package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	// an explicit path that does not exist is a read error, not a silent default
	assert.Error(t, err)
	assert.Nil(t, cfg)

	cfg, err = Load("")
	assert.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "attendance_system.db", cfg.Database.Path)
	assert.True(t, cfg.Database.ResetAttendance)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, 8*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 3*time.Second, cfg.Outbox.PollInterval)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: "8081"
database:
  driver: postgres
  host: db
  name: attendance
  reset_attendance: false
`)
	assert.NoError(t, os.WriteFile(path, content, 0o600))
	t.Setenv("ATTENDANCE_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.False(t, cfg.Database.ResetAttendance)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Contains(t, cfg.Database.DSN(), "host=db")
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Server:   ServerConfig{Port: "3000"},
		Database: DatabaseConfig{Driver: "mysql"},
		Auth:     AuthConfig{TokenTTL: time.Hour},
	}
	assert.Error(t, cfg.Validate())

	cfg.Database = DatabaseConfig{Driver: "sqlite", Path: "x.db"}
	assert.NoError(t, cfg.Validate())

	assert.Error(t, cfg.RequireJWTSecret())
	cfg.Auth.JWTSecret = "0123456789abcdef"
	assert.NoError(t, cfg.RequireJWTSecret())
}
