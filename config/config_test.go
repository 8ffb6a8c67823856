package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PROJECT_ROOT", t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, ENV_DEV, cfg.Env)
	assert.False(t, cfg.IsProd())
	assert.Equal(t, OPENER_API_BASE_URL, cfg.APIBaseURL)
	assert.Equal(t, 5, cfg.PageConcurrency)
	assert.Equal(t, 10000, cfg.CatalogLimit)
	assert.Equal(t, 300*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, 0.7, cfg.FuzzyThreshold)
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "", cfg.RedisAddress)
	assert.Equal(t, time.Hour, cfg.RefreshInterval)
	assert.Equal(t, filepath.Join(os.Getenv("PROJECT_ROOT"), "resources", "wines_fixture.json"), cfg.FixturePath)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PROJECT_ROOT", t.TempDir())
	t.Setenv("WINE_EXPLORER_ENV", "prod")
	t.Setenv("WINE_EXPLORER_PAGE_CONCURRENCY", "3")
	t.Setenv("WINE_EXPLORER_SEARCH_DEBOUNCE", "150ms")
	t.Setenv("WINE_EXPLORER_REDIS_ADDRESS", "redis:6379")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.True(t, cfg.IsProd())
	assert.Equal(t, 3, cfg.PageConcurrency)
	assert.Equal(t, 150*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, "redis:6379", cfg.RedisAddress)
}

func TestLoad_ConfigFileInBaseDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PROJECT_ROOT", dir)
	yaml := "catalog_limit: 500\nfuzzy_threshold: 0.5\nserver_address: \":9090\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.CatalogLimit)
	assert.Equal(t, 0.5, cfg.FuzzyThreshold)
	assert.Equal(t, ":9090", cfg.ServerAddress)
}

func TestLoad_ExplicitConfigFileMissing(t *testing.T) {
	t.Setenv("PROJECT_ROOT", t.TempDir())

	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PROJECT_ROOT", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("WINE_EXPLORER_CATALOG_LIMIT=42\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("WINE_EXPLORER_CATALOG_LIMIT") })

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 42, cfg.CatalogLimit)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"threshold above one", "WINE_EXPLORER_FUZZY_THRESHOLD", "1.5"},
		{"zero threshold", "WINE_EXPLORER_FUZZY_THRESHOLD", "0"},
		{"negative threshold", "WINE_EXPLORER_FUZZY_THRESHOLD", "-0.2"},
		{"zero concurrency", "WINE_EXPLORER_PAGE_CONCURRENCY", "0"},
		{"negative page interval", "WINE_EXPLORER_PAGE_INTERVAL", "-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PROJECT_ROOT", t.TempDir())
			t.Setenv(tt.key, tt.value)

			_, err := Load(viper.New(), "")
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestGetResourcePath(t *testing.T) {
	t.Setenv("PROJECT_ROOT", "/srv/wine")
	assert.Equal(t, "/srv/wine/resources/wines_fixture.json", GetResourcePath(WINES_FIXTURE_RESOURCE))
}
