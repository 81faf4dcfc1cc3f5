package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Environment: "development",
		},
		Logger: LoggerConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			DataPath: "/some/path",
		},
		Catalog: CatalogConfig{
			APIKey:         "test-key",
			BaseURL:        "https://api.themoviedb.org/3",
			RequestTimeout: 5 * time.Second,
			RateLimitRPS:   4,
			RateLimitBurst: 8,
		},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := validConfig()

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestValidate_AllEnvironments(t *testing.T) {
	tests := []struct {
		env   string
		valid bool
	}{
		{"development", true},
		{"staging", true},
		{"production", true},
		{"test", false},
		{"", false},
		{"DEVELOPMENT", false}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := validConfig()
			cfg.App.Environment = tt.env

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_AllLogLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"debug", true},
		{"info", true},
		{"warn", true},
		{"error", true},
		{"DEBUG", true},  // case insensitive
		{"INFO", true},   // case insensitive
		{"trace", false}, // not supported
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := validConfig()
			cfg.Logger.Level = tt.level

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_EmptyDataPath(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DataPath = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "data path")
}

func TestValidate_MissingAPIKey(t *testing.T) {
	cfg := validConfig()
	cfg.Catalog.APIKey = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "TMDB_API_KEY")
}

func TestValidate_CatalogTimeout(t *testing.T) {
	cfg := validConfig()
	cfg.Catalog.RequestTimeout = 0

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "catalog timeout")
}

func TestValidate_CatalogRateLimit(t *testing.T) {
	t.Run("zero rps", func(t *testing.T) {
		cfg := validConfig()
		cfg.Catalog.RateLimitRPS = 0

		err := cfg.Validate()
		assert.Error(t, err)
	})

	t.Run("burst below rps", func(t *testing.T) {
		cfg := validConfig()
		cfg.Catalog.RateLimitBurst = 2

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "burst")
	})
}

func TestExpandPath(t *testing.T) {
	t.Run("empty path uses default", func(t *testing.T) {
		result, err := expandPath("", "/default/path")
		require.NoError(t, err)
		assert.Equal(t, "/default/path", result)
	})

	t.Run("tilde expansion", func(t *testing.T) {
		homeDir, err := os.UserHomeDir()
		require.NoError(t, err)

		result, err := expandPath("~/data", "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(homeDir, "data"), result)
	})

	t.Run("absolute path unchanged", func(t *testing.T) {
		result, err := expandPath("/abs/path", "/default")
		require.NoError(t, err)
		assert.Equal(t, "/abs/path", result)
	})

	t.Run("relative path made absolute", func(t *testing.T) {
		result, err := expandPath("rel/path", "")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(result))
	})
}

func TestGetConfigValue(t *testing.T) {
	const envKey = "REELHUB_TEST_CONFIG_VALUE"

	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(envKey, "from-env")
		assert.Equal(t, "from-flag", getConfigValue("from-flag", envKey, "from-default"))
	})

	t.Run("env wins over default", func(t *testing.T) {
		t.Setenv(envKey, "from-env")
		assert.Equal(t, "from-env", getConfigValue("", envKey, "from-default"))
	})

	t.Run("default when nothing set", func(t *testing.T) {
		os.Unsetenv(envKey)
		assert.Equal(t, "from-default", getConfigValue("", envKey, "from-default"))
	})
}

func TestGetIntConfigValue(t *testing.T) {
	const envKey = "REELHUB_TEST_CONFIG_INT"

	t.Run("parses env value", func(t *testing.T) {
		t.Setenv(envKey, "42")
		assert.Equal(t, 42, getIntConfigValue("", envKey, 7))
	})

	t.Run("default when unset", func(t *testing.T) {
		os.Unsetenv(envKey)
		assert.Equal(t, 7, getIntConfigValue("", envKey, 7))
	})

	t.Run("default on garbage", func(t *testing.T) {
		t.Setenv(envKey, "not-a-number")
		assert.Equal(t, 7, getIntConfigValue("", envKey, 7))
	})
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")

	content := "# comment line\nREELHUB_TEST_ENVFILE_A=hello\nREELHUB_TEST_ENVFILE_B=\"quoted\"\n\n"
	require.NoError(t, os.WriteFile(envPath, []byte(content), 0o600))

	os.Unsetenv("REELHUB_TEST_ENVFILE_A")
	os.Unsetenv("REELHUB_TEST_ENVFILE_B")
	t.Cleanup(func() {
		os.Unsetenv("REELHUB_TEST_ENVFILE_A")
		os.Unsetenv("REELHUB_TEST_ENVFILE_B")
	})

	require.NoError(t, loadEnvFile(envPath))
	assert.Equal(t, "hello", os.Getenv("REELHUB_TEST_ENVFILE_A"))
	assert.Equal(t, "quoted", os.Getenv("REELHUB_TEST_ENVFILE_B"))

	t.Run("env var takes precedence", func(t *testing.T) {
		t.Setenv("REELHUB_TEST_ENVFILE_A", "already-set")
		require.NoError(t, loadEnvFile(envPath))
		assert.Equal(t, "already-set", os.Getenv("REELHUB_TEST_ENVFILE_A"))
	})

	t.Run("missing file errors", func(t *testing.T) {
		err := loadEnvFile(filepath.Join(dir, "nope.env"))
		assert.Error(t, err)
	})
}
