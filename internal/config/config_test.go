package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "household-test-secret"

// configEnvVars lists every variable Load reads
var configEnvVars = []string{
	"PORT", "AUTH_JWT_SECRET", "LOG_LEVEL", "LOG_FORMAT",
	"SERVICE_NAME", "VERSION", "ENVIRONMENT",
	"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME",
	"DB_MAX_CONNS", "DB_MAX_CONN_IDLE_TIME", "DB_MAX_CONN_LIFETIME", "MIGRATE_ON_START",
	"WHEEL_TIMEZONE", "CONFIG_CACHE_TTL", "TRUSTED_PROXIES",
	"EVENT_DEADLETTER_PATH", "EVENT_MAX_RETRIES", "EVENT_RETRY_DELAY",
}

// cleanEnv unsets the config variables for one test and restores them afterwards
func cleanEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		setOrClear(t, key, nil)
	}
}

func setOrClear(t *testing.T, key string, value *string) {
	t.Helper()
	t.Setenv(key, "")
	if value == nil {
		os.Unsetenv(key)
		return
	}
	os.Setenv(key, *value)
}

func loadWith(t *testing.T, env map[string]string) (*Config, error) {
	t.Helper()
	cleanEnv(t)
	for k, v := range env {
		t.Setenv(k, v)
	}
	return Load()
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := loadWith(t, map[string]string{"AUTH_JWT_SECRET": testSecret})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
	assert.Equal(t, DefaultServiceName, cfg.ServiceName)
	assert.Equal(t, DefaultEnvironment, cfg.Environment)
	assert.Equal(t, DefaultDBName, cfg.DBName)
	assert.Equal(t, DefaultDBMaxConns, cfg.DBMaxConns)
	assert.Equal(t, DefaultDBMaxConnIdleTime, cfg.DBMaxConnIdleTime)
	assert.Equal(t, DefaultDBMaxConnLifetime, cfg.DBMaxConnLifetime)
	assert.True(t, cfg.MigrateOnStart)
	assert.Equal(t, DefaultWheelTimezone, cfg.WheelTimezone)
	assert.Equal(t, time.UTC, cfg.Location())
	assert.Equal(t, DefaultConfigCacheTTL, cfg.ConfigCacheTTL)
	assert.Empty(t, cfg.TrustedProxies)
	assert.Equal(t, DefaultDeadLetterPath, cfg.DeadLetterPath)
	assert.Equal(t, DefaultEventMaxRetries, cfg.EventMaxRetries)
	assert.Equal(t, DefaultEventRetryDelay, cfg.EventRetryDelay)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := loadWith(t, map[string]string{
		"AUTH_JWT_SECRET":       testSecret,
		"PORT":                  "3000",
		"LOG_LEVEL":             "debug",
		"LOG_FORMAT":            "json",
		"ENVIRONMENT":           "prod",
		"DB_HOST":               "db",
		"DB_PORT":               "5433",
		"DB_MAX_CONNS":          "50",
		"DB_MAX_CONN_IDLE_TIME": "10m",
		"MIGRATE_ON_START":      "false",
		"WHEEL_TIMEZONE":        "America/New_York",
		"CONFIG_CACHE_TTL":      "1m",
		"TRUSTED_PROXIES":       " 10.0.0.1, ,10.0.0.2 ",
		"EVENT_MAX_RETRIES":     "5",
	})
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "prod", cfg.Environment)
	assert.Equal(t, 50, cfg.DBMaxConns)
	assert.Equal(t, 10*time.Minute, cfg.DBMaxConnIdleTime)
	assert.False(t, cfg.MigrateOnStart)
	assert.Equal(t, "America/New_York", cfg.Location().String())
	assert.Equal(t, time.Minute, cfg.ConfigCacheTTL)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
	assert.Equal(t, 5, cfg.EventMaxRetries)
	assert.Contains(t, cfg.GetDBConnString(), "@db:5433/")
}

func TestLoad_InvalidPoolValuesFallBack(t *testing.T) {
	cfg, err := loadWith(t, map[string]string{
		"AUTH_JWT_SECRET":      testSecret,
		"DB_MAX_CONNS":         "lots",
		"DB_MAX_CONN_LIFETIME": "forever",
		"CONFIG_CACHE_TTL":     "30",
	})
	require.NoError(t, err)

	assert.Equal(t, DefaultDBMaxConns, cfg.DBMaxConns)
	assert.Equal(t, DefaultDBMaxConnLifetime, cfg.DBMaxConnLifetime)
	assert.Equal(t, DefaultConfigCacheTTL, cfg.ConfigCacheTTL)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantMsg string
	}{
		{
			name:    "missing secret",
			env:     map[string]string{},
			wantMsg: "AUTH_JWT_SECRET",
		},
		{
			name:    "port not a number",
			env:     map[string]string{"AUTH_JWT_SECRET": testSecret, "PORT": "eighty"},
			wantMsg: "invalid PORT",
		},
		{
			name:    "fractional port",
			env:     map[string]string{"AUTH_JWT_SECRET": testSecret, "PORT": "8080.5"},
			wantMsg: "invalid PORT",
		},
		{
			name:    "unknown timezone",
			env:     map[string]string{"AUTH_JWT_SECRET": testSecret, "WHEEL_TIMEZONE": "Mars/Olympus_Mons"},
			wantMsg: "WHEEL_TIMEZONE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadWith(t, tt.env)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestConfig_Location(t *testing.T) {
	tests := []struct {
		zone string
		want string
	}{
		{"UTC", "UTC"},
		{"Europe/Stockholm", "Europe/Stockholm"},
		{"not/a-zone", "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.zone, func(t *testing.T) {
			cfg := &Config{WheelTimezone: tt.zone}
			assert.Equal(t, tt.want, cfg.Location().String())
		})
	}
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "wheel",
		DBPassword: "p@ss:word",
		DBHost:     "db.internal",
		DBPort:     "5433",
		DBName:     "chorewheel",
	}

	assert.Equal(t, "postgres://wheel:p@ss:word@db.internal:5433/chorewheel?sslmode=disable", cfg.GetDBConnString())
}
