package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment
const ENV_PROD = "prod"
const ENV_DEV = "dev"
const ENV_PREFIX = "WINE_EXPLORER"

// Redis Config. An empty address keeps the cache in memory.
const REDIS_DB_ADDRESS = ""
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0
const CACHE_TTL = 30 * time.Minute

// Opener API
const OPENER_API_BASE_URL = "https://opener-api.onrender.com"
const OPENER_API_TIMEOUT = 10 * time.Second

// Page aggregation
const PAGE_CONCURRENCY = 5
const PAGE_INTERVAL = 10 * time.Millisecond
const CATALOG_LIMIT = 10000

// Search
const SEARCH_DEBOUNCE = 300 * time.Millisecond
const FUZZY_THRESHOLD = 0.7

// Catalog refresher config
const CATALOG_REFRESHER_SCHEDULE_MINUTES = 60

// Server
const SERVER_ADDRESS = ":8080"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const WINES_FIXTURE_RESOURCE = "wines_fixture.json"
const CONFIG_FILE_NAME = "config"
const DOTENV_FILE_NAME = ".env"

var ErrInvalidConfig = errors.New("invalid config")

// Config is the resolved runtime configuration.
type Config struct {
	Env             string        `mapstructure:"env"`
	APIBaseURL      string        `mapstructure:"api_base_url"`
	HTTPTimeout     time.Duration `mapstructure:"http_timeout"`
	RedisAddress    string        `mapstructure:"redis_address"`
	RedisPassword   string        `mapstructure:"redis_password"`
	RedisDB         int           `mapstructure:"redis_db"`
	CacheTTL        time.Duration `mapstructure:"cache_ttl"`
	PageConcurrency int           `mapstructure:"page_concurrency"`
	PageInterval    time.Duration `mapstructure:"page_interval"`
	CatalogLimit    int           `mapstructure:"catalog_limit"`
	SearchDebounce  time.Duration `mapstructure:"search_debounce"`
	FuzzyThreshold  float64       `mapstructure:"fuzzy_threshold"`
	ServerAddress   string        `mapstructure:"server_address"`
	FixturePath     string        `mapstructure:"fixture_path"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
}

func (c *Config) IsProd() bool {
	return c.Env == ENV_PROD
}

// SetDefaults registers every key with its default so env overrides resolve
// through AutomaticEnv.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("env", ENV_DEV)
	v.SetDefault("api_base_url", OPENER_API_BASE_URL)
	v.SetDefault("http_timeout", OPENER_API_TIMEOUT)
	v.SetDefault("redis_address", REDIS_DB_ADDRESS)
	v.SetDefault("redis_password", REDIS_DB_PASSWORD)
	v.SetDefault("redis_db", REDIS_DB)
	v.SetDefault("cache_ttl", CACHE_TTL)
	v.SetDefault("page_concurrency", PAGE_CONCURRENCY)
	v.SetDefault("page_interval", PAGE_INTERVAL)
	v.SetDefault("catalog_limit", CATALOG_LIMIT)
	v.SetDefault("search_debounce", SEARCH_DEBOUNCE)
	v.SetDefault("fuzzy_threshold", FUZZY_THRESHOLD)
	v.SetDefault("server_address", SERVER_ADDRESS)
	v.SetDefault("fixture_path", GetResourcePath(WINES_FIXTURE_RESOURCE))
	v.SetDefault("refresh_interval", CATALOG_REFRESHER_SCHEDULE_MINUTES*time.Minute)
}

// Load resolves configuration in increasing precedence: defaults, config
// file, .env, WINE_EXPLORER_* environment, then any flags already bound to v.
// An empty configFile looks for config.yaml under BaseDir.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	if err := loadDotEnv(filepath.Join(BaseDir(), DOTENV_FILE_NAME)); err != nil {
		return nil, err
	}

	SetDefaults(v)
	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(BaseDir())
		v.SetConfigName(CONFIG_FILE_NAME)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		log.Printf("[Config] Using config file: %s", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.PageConcurrency <= 0:
		return fmt.Errorf("%w: page_concurrency must be positive, got %d", ErrInvalidConfig, c.PageConcurrency)
	case c.PageInterval < 0:
		return fmt.Errorf("%w: page_interval must not be negative, got %s", ErrInvalidConfig, c.PageInterval)
	case c.CatalogLimit <= 0:
		return fmt.Errorf("%w: catalog_limit must be positive, got %d", ErrInvalidConfig, c.CatalogLimit)
	case c.FuzzyThreshold <= 0 || c.FuzzyThreshold > 1:
		return fmt.Errorf("%w: fuzzy_threshold must be within (0, 1], got %v", ErrInvalidConfig, c.FuzzyThreshold)
	case c.SearchDebounce < 0:
		return fmt.Errorf("%w: search_debounce must not be negative, got %s", ErrInvalidConfig, c.SearchDebounce)
	case c.RefreshInterval <= 0:
		return fmt.Errorf("%w: refresh_interval must be positive, got %s", ErrInvalidConfig, c.RefreshInterval)
	}
	if c.IsProd() && c.APIBaseURL == "" {
		return fmt.Errorf("%w: api_base_url is required in %s", ErrInvalidConfig, ENV_PROD)
	}
	return nil
}

// loadDotEnv exports the file's variables without overriding ones already
// set. A missing file is not an error.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	log.Printf("[Config] Loaded environment from %s", path)
	return nil
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
