package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("AppliesDefaults", func(t *testing.T) {
		path := writeConfig(t, `
database:
  host: localhost
  user: meetingdesk
  database: meetingdesk
jwt:
  secret: s
`)
		cfg, err := Load(path)
		assert.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 60, cfg.JWT.AccessTokenExpiry)
		assert.Equal(t, "0 0 8 * * *", cfg.Scheduler.SendPendingReminders)
		assert.Equal(t, 7, cfg.Scheduler.ReminderLookaheadDays)
	})

	t.Run("MissingRequiredFields", func(t *testing.T) {
		path := writeConfig(t, `
database:
  host: localhost
`)
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestGetDatabaseConnectionString(t *testing.T) {
	cfg := &Config{}
	cfg.Database = DatabaseConfig{
		Host: "db", Port: 5433, User: "u", Password: "p", Database: "meetingdesk", SSLMode: "require",
	}
	assert.Equal(t, "postgres://u:p@db:5433/meetingdesk?sslmode=require", cfg.GetDatabaseConnectionString())
}
