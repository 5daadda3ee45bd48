package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{"SERVER_PORT", "TIMEZONE", "LOG_LEVEL", "AUDIT_DATABASE_URL", "SEED_DATA", "ENFORCE_STATUS_TRANSITIONS", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "America/Sao_Paulo", cfg.Timezone)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "file::memory:?cache=shared", cfg.AuditDatabaseURL)
	assert.True(t, cfg.SeedData)
	assert.False(t, cfg.EnforceStatusTransitions)
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED_DATA", "false")
	t.Setenv("ENFORCE_STATUS_TRANSITIONS", "1")
	t.Setenv("DAILY_SUMMARY_CRON", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://barber.example ")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.False(t, cfg.SeedData)
	assert.True(t, cfg.EnforceStatusTransitions)
	assert.Equal(t, "", cfg.DailySummaryCron)
	assert.Equal(t, []string{"http://localhost:5173", "https://barber.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("SEED_DATA", "sometimes")
	_, err := Load()
	assert.ErrorContains(t, err, "SEED_DATA")

	t.Setenv("SEED_DATA", "")
	t.Setenv("LOG_LEVEL", "loud")
	_, err = Load()
	assert.ErrorContains(t, err, "LOG_LEVEL")
}
