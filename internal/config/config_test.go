package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ia-service/internal/domain/simulation"
)

var configKeys = []string{
	"PORT", "APP_NAME", "APP_VERSION", "ENV", "LOG_LEVEL",
	"AUTH_TOKENS", "AUTH_TOKENS_FILE", "AUTH_INVALID_TOKEN_STATUS",
	"CLIENT_CLASSIFICATION_POLICY", "REDIS_ADDR", "USAGE_TTL",
}

// clearEnv blanks every key so values from the host do not leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("AUTH_TOKENS", "secrettoken123, reportingtoken456,secrettoken123,")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "IA-as-a-Service", cfg.AppName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"secrettoken123", "reportingtoken456"}, cfg.AuthTokens)
	assert.Equal(t, 401, cfg.InvalidTokenStatus)
	assert.Equal(t, simulation.PolicySeed, cfg.ClientPolicy)
	assert.Equal(t, 720*time.Hour, cfg.UsageTTL)
	assert.Empty(t, cfg.RedisAddr)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("AUTH_TOKENS", "a")
	t.Setenv("PORT", "9090")
	t.Setenv("AUTH_INVALID_TOKEN_STATUS", "403")
	t.Setenv("CLIENT_CLASSIFICATION_POLICY", "last_digit")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("USAGE_TTL", "1h")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 403, cfg.InvalidTokenStatus)
	assert.Equal(t, simulation.PolicyLastDigit, cfg.ClientPolicy)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, time.Hour, cfg.UsageTTL)
}

func TestFromEnvTokenFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "tokens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tokens:\n  - fromfile\n  - shared\n"), 0o600))
	t.Setenv("AUTH_TOKENS", "shared,fromenv")
	t.Setenv("AUTH_TOKENS_FILE", path)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, []string{"shared", "fromenv", "fromfile"}, cfg.AuthTokens)
}

func TestFromEnvErrors(t *testing.T) {
	t.Run("no tokens", func(t *testing.T) {
		clearEnv(t)
		_, err := FromEnv()
		assert.ErrorIs(t, err, ErrNoTokens)
	})

	t.Run("missing token file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("AUTH_TOKENS_FILE", filepath.Join(t.TempDir(), "absent.yaml"))
		_, err := FromEnv()
		assert.Error(t, err)
	})

	t.Run("bad token file", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "tokens.yaml")
		require.NoError(t, os.WriteFile(path, []byte("tokens: [unclosed"), 0o600))
		t.Setenv("AUTH_TOKENS_FILE", path)
		_, err := FromEnv()
		assert.Error(t, err)
	})

	invalid := map[string]string{
		"AUTH_INVALID_TOKEN_STATUS":    "500",
		"CLIENT_CLASSIFICATION_POLICY": "coin_flip",
		"USAGE_TTL":                    "soon",
	}
	for key, val := range invalid {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("AUTH_TOKENS", "a")
			t.Setenv(key, val)
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env.test")
	require.NoError(t, os.WriteFile(path, []byte("AUTH_TOKENS=fromdotenv\nPORT=7000\n"), 0o600))
	// godotenv does not override variables that are already set, even to ""
	require.NoError(t, os.Unsetenv("AUTH_TOKENS"))
	require.NoError(t, os.Unsetenv("PORT"))

	cfg, loaded, err := Load(path)
	require.NoError(t, err)
	assert.True(t, loaded)
	assert.Equal(t, []string{"fromdotenv"}, cfg.AuthTokens)
	assert.Equal(t, "7000", cfg.Port)

	_, loaded, _ = Load(filepath.Join(t.TempDir(), "missing"))
	assert.False(t, loaded)
}
