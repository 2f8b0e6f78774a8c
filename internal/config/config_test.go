package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "portfolio.db", cfg.DBPath)
	require.Equal(t, RelayLog, cfg.ContactRelay)
	require.Equal(t, 8760*time.Hour, cfg.VisitorRetention)
	require.Equal(t, "587", cfg.SMTP.Port)
	require.True(t, cfg.Debug())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("CONTACT_RELAY", "SMTP")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("TO_EMAIL", "me@example.com")
	t.Setenv("ADMIN_USERNAME", "root")
	t.Setenv("VISITOR_RETENTION", "720h")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Port)
	require.False(t, cfg.Debug())
	require.Equal(t, RelaySMTP, cfg.ContactRelay)
	require.Equal(t, "smtp.example.com", cfg.SMTP.Host)
	require.Equal(t, "root", cfg.Admin.Username)
	require.Equal(t, 720*time.Hour, cfg.VisitorRetention)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 7000\ndb_path: /tmp/site.db\nsmtp:\n  port: \"2525\"\n"), 0o600))
	t.Setenv("DB_PATH", "/var/lib/site.db")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 7000, cfg.Port)
	require.Equal(t, "/var/lib/site.db", cfg.DBPath)
	require.Equal(t, "2525", cfg.SMTP.Port)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Setenv("CONTACT_RELAY", "formsubmit")
	_, err := Load("")
	require.ErrorContains(t, err, "to_email")

	t.Setenv("CONTACT_RELAY", "pigeon")
	_, err = Load("")
	require.ErrorContains(t, err, "pigeon")

	t.Setenv("CONTACT_RELAY", "log")
	t.Setenv("PORT", "0")
	_, err = Load("")
	require.ErrorContains(t, err, "port")
}
