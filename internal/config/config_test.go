package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REDIS_PASSWORD", "")
	t.Setenv("ASTB_ADMIN_SECRET", "")
	t.Setenv("RESEND_API_KEY", "")
	t.Setenv("RESEND_FROM", "")

	path := writeConfigFile(t, `
[logs]
level = "info"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "astb:bookings", cfg.Store.BookingsKey)
	assert.Equal(t, "ASTB Prep <onboarding@resend.dev>", cfg.Notifier.From)

	// Без REDIS_ADDR хранилище отключено
	assert.False(t, cfg.Store.Enabled())
	assert.Empty(t, cfg.Admin.Secret)
	assert.Empty(t, cfg.Notifier.APIKey)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_PASSWORD", "s3cret")
	t.Setenv("ASTB_ADMIN_SECRET", "admin-secret")
	t.Setenv("RESEND_API_KEY", "re_123")
	t.Setenv("RESEND_FROM", "ASTB Prep <notify@example.com>")

	path := writeConfigFile(t, `
[server]
http_port = 9090

[store]
bookings_key = "astb:test"

[notifier]
notify_email = "owner@example.com"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "astb:test", cfg.Store.BookingsKey)
	assert.Equal(t, "owner@example.com", cfg.Notifier.NotifyEmail)

	assert.True(t, cfg.Store.Enabled())
	assert.Equal(t, "localhost:6379", cfg.Store.Addr)
	assert.Equal(t, "s3cret", cfg.Store.Password)
	assert.Equal(t, "admin-secret", cfg.Admin.Secret)
	assert.Equal(t, "re_123", cfg.Notifier.APIKey)
	assert.Equal(t, "ASTB Prep <notify@example.com>", cfg.Notifier.From)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
