package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	Timezone   string
	LogLevel   slog.Level

	AuditDatabaseURL string

	SeedData                 bool
	EnforceStatusTransitions bool
	DailySummaryCron         string

	CORSAllowedOrigins []string
}

// Load reads .env when present and then the process environment, which
// wins over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		Timezone:           getEnv("TIMEZONE", "America/Sao_Paulo"),
		AuditDatabaseURL:   getEnv("AUDIT_DATABASE_URL", "file::memory:?cache=shared"),
		DailySummaryCron:   getEnvAllowEmpty("DAILY_SUMMARY_CRON", "0 23 * * *"),
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}

	var err error
	if cfg.LogLevel, err = parseLevel(getEnv("LOG_LEVEL", "info")); err != nil {
		return nil, err
	}
	if cfg.SeedData, err = getBool("SEED_DATA", true); err != nil {
		return nil, err
	}
	if cfg.EnforceStatusTransitions, err = getBool("ENFORCE_STATUS_TRANSITIONS", false); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvAllowEmpty treats a variable set to "" as an explicit value.
func getEnvAllowEmpty(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(v)
	}
	return def
}

func getBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean %q", key, v)
	}
	return b, nil
}

func parseLevel(v string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(v)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return lvl, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
