package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/listenupapp/programguide/internal/errors"
)

// noEnvFile points Load at a file that does not exist.
func noEnvFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(Overrides{EnvFile: noEnvFile(t)})
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "api.nhk.or.jp", cfg.Guide.Domain)
	assert.Equal(t, "v1", cfg.Guide.Version)
	assert.False(t, cfg.Guide.Secure)
	assert.Equal(t, "program-api.nhk.jp", cfg.Guide.RadioDomain)
	assert.Equal(t, 30*time.Second, cfg.Transport.Timeout)
	assert.Equal(t, 1.0, cfg.Transport.RequestsPerSecond)
	assert.Equal(t, 3, cfg.Transport.Burst)
	assert.Equal(t, "8080", cfg.Gateway.Port)
	assert.Equal(t, []string{"*"}, cfg.Gateway.AllowedOrigins)
	assert.Equal(t, "none", cfg.Cache.Backend)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
}

func TestLoad_Precedence(t *testing.T) {
	t.Setenv("NHK_API_KEY", "from-env")
	t.Setenv("NHK_DOMAIN", "env.example.test")
	t.Setenv("NHK_SECURE", "yes")
	t.Setenv("NHK_TIMEOUT", "5s")
	t.Setenv("GATEWAY_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load(Overrides{
		EnvFile: noEnvFile(t),
		APIKey:  "from-flag",
		Timeout: "2s",
	})
	require.NoError(t, err)

	assert.Equal(t, "from-flag", cfg.Guide.APIKey)
	assert.Equal(t, "env.example.test", cfg.Guide.Domain)
	assert.True(t, cfg.Guide.Secure)
	assert.Equal(t, 2*time.Second, cfg.Transport.Timeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Gateway.AllowedOrigins)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("# guide\nexport NHK_API_KEY=\"file-key\"\nNHK_VERSION=v2\n"), 0o600))

	// Setenv registers cleanup for variables the file sets.
	t.Setenv("NHK_API_KEY", "")
	t.Setenv("NHK_VERSION", "")

	cfg, err := Load(Overrides{EnvFile: path})
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.Guide.APIKey)
	assert.Equal(t, "v2", cfg.Guide.Version)
}

func TestLoad_NormalizesDomains(t *testing.T) {
	cfg, err := Load(Overrides{EnvFile: noEnvFile(t), Domain: "API.NHK.or.JP"})
	require.NoError(t, err)
	assert.Equal(t, "api.nhk.or.jp", cfg.Guide.Domain)

	cfg, err = Load(Overrides{EnvFile: noEnvFile(t), Domain: "127.0.0.1:8081"})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8081", cfg.Guide.Domain)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		o    Overrides
	}{
		{"environment", Overrides{Env: "test"}},
		{"log level", Overrides{LogLevel: "trace"}},
		{"version", Overrides{Version: "latest"}},
		{"domain", Overrides{Domain: "bad host/name"}},
		{"timeout", Overrides{Timeout: "soon"}},
		{"port", Overrides{Port: "http"}},
		{"cache backend", Overrides{Cache: "memcached"}},
		{"sqlite cache without path", Overrides{Cache: "sqlite"}},
		{"redis cache without url", Overrides{Cache: "redis"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.o.EnvFile = noEnvFile(t)
			_, err := Load(tt.o)
			assert.Error(t, err)
		})
	}
}

func TestRequireAPIKey(t *testing.T) {
	cfg := &Config{}
	err := cfg.RequireAPIKey()
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	cfg.Guide.APIKey = "k"
	assert.NoError(t, cfg.RequireAPIKey())
}

func TestNormalizeHost(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"api.nhk.or.jp", "api.nhk.or.jp"},
		{"Program-API.NHK.jp", "program-api.nhk.jp"},
		{"例え.jp", "xn--r8jz45g.jp"},
		{"localhost:9000", "localhost:9000"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeHost(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetConfigValue_Precedence(t *testing.T) {
	t.Setenv("TEST_ENV_KEY", "env-value")

	assert.Equal(t, "flag-value", getConfigValue("flag-value", "TEST_ENV_KEY", "default"))
	assert.Equal(t, "env-value", getConfigValue("", "TEST_ENV_KEY", "default"))
	assert.Equal(t, "default", getConfigValue("", "TEST_UNSET_KEY", "default"))
}

func TestTypedConfigValues(t *testing.T) {
	t.Setenv("TEST_INT", "7")
	t.Setenv("TEST_BAD_INT", "seven")
	t.Setenv("TEST_FLOAT", "0.5")
	t.Setenv("TEST_BOOL", "TRUE")

	assert.Equal(t, 7, getIntConfigValue("", "TEST_INT", 1))
	assert.Equal(t, 1, getIntConfigValue("", "TEST_BAD_INT", 1))
	assert.Equal(t, 0.5, getFloatConfigValue("", "TEST_FLOAT", 1))
	assert.True(t, getBoolConfigValue("", "TEST_BOOL", false))
	assert.False(t, getBoolConfigValue("no", "TEST_BOOL", true))
	assert.True(t, getBoolConfigValue("", "TEST_UNSET_BOOL", true))
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("invalid format", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("NOT_A_PAIR\n"), 0o600))
		assert.Error(t, loadEnvFile(path))
	})

	t.Run("missing file", func(t *testing.T) {
		assert.Error(t, loadEnvFile(noEnvFile(t)))
	})

	t.Run("existing vars win", func(t *testing.T) {
		t.Setenv("TEST_VAR", "original-value")
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("TEST_VAR=from-file\n"), 0o600))

		require.NoError(t, loadEnvFile(path))
		assert.Equal(t, "original-value", os.Getenv("TEST_VAR"))
	})
}

func TestLoad_CacheFromEnv(t *testing.T) {
	t.Setenv("NHK_CACHE", "redis")
	t.Setenv("NHK_CACHE_REDIS_URL", "redis://localhost:6379/2")
	t.Setenv("NHK_CACHE_TTL", "90s")

	cfg, err := Load(Overrides{EnvFile: noEnvFile(t)})
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, "redis://localhost:6379/2", cfg.Cache.RedisURL)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)

	cfg, err = Load(Overrides{EnvFile: noEnvFile(t), Cache: "badger"})
	require.NoError(t, err)
	assert.Equal(t, "badger", cfg.Cache.Backend)
}
