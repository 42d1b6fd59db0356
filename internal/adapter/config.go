package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// SourceType identifies the search backend
type SourceType string

const (
	SourceTypeITunes  SourceType = "itunes"
	SourceTypeCatalog SourceType = "catalog"
)

// DefaultEndpoint is the public iTunes search API
const DefaultEndpoint = "https://itunes.apple.com/search"

// envKeyReplacer maps nested keys to env names: search.limit -> SEARCH_LIMIT
var envKeyReplacer = strings.NewReplacer(".", "_")

// Config holds all application configuration
type Config struct {
	Search  SearchConfig  `mapstructure:"search" yaml:"search"`
	Catalog CatalogConfig `mapstructure:"catalog" yaml:"catalog"`
	UI      UIConfig      `mapstructure:"ui" yaml:"ui"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// SearchConfig holds the debouncer and endpoint configuration
type SearchConfig struct {
	Source      SourceType    `mapstructure:"source" yaml:"source"`                   // "itunes" or "catalog"
	Endpoint    string        `mapstructure:"endpoint" yaml:"endpoint"`               // Search endpoint URL
	QuietWindow time.Duration `mapstructure:"quiet_window" yaml:"quiet_window"`       // Debounce delay
	Media       string        `mapstructure:"media" yaml:"media"`                     // e.g. "music", "podcast"
	Entity      string        `mapstructure:"entity" yaml:"entity"`                   // e.g. "song", "album"
	Country     string        `mapstructure:"country" yaml:"country"`                 // Two-letter store code
	Limit       int           `mapstructure:"limit" yaml:"limit"`                     // 0 = endpoint default
	Timeout     time.Duration `mapstructure:"timeout" yaml:"timeout"`                 // 0 = no timeout
	RatePerMin  int           `mapstructure:"rate_per_minute" yaml:"rate_per_minute"` // 0 = unlimited
}

// CatalogConfig holds the offline catalog configuration
type CatalogConfig struct {
	File  string `mapstructure:"file" yaml:"file"`
	Limit int    `mapstructure:"limit" yaml:"limit"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	MaxResults int `mapstructure:"max_results" yaml:"max_results"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file" yaml:"file"`
	Level string `mapstructure:"level" yaml:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			Source:      SourceTypeITunes,
			Endpoint:    DefaultEndpoint,
			QuietWindow: 300 * time.Millisecond,
			Media:       "music",
			Limit:       25,
		},
		Catalog: CatalogConfig{
			Limit: 25,
		},
		UI: UIConfig{
			MaxResults: 10,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "tunes", "tunes.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "tunes", "tunes.log")
	}
}

// DefaultConfigDir returns the default config directory for the current OS
func DefaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "tunes")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "tunes")
	}
}

// setDefaults registers every default so env overrides apply to all keys
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("search.source", string(cfg.Search.Source))
	v.SetDefault("search.endpoint", cfg.Search.Endpoint)
	v.SetDefault("search.quiet_window", cfg.Search.QuietWindow)
	v.SetDefault("search.media", cfg.Search.Media)
	v.SetDefault("search.entity", cfg.Search.Entity)
	v.SetDefault("search.country", cfg.Search.Country)
	v.SetDefault("search.limit", cfg.Search.Limit)
	v.SetDefault("search.timeout", cfg.Search.Timeout)
	v.SetDefault("search.rate_per_minute", cfg.Search.RatePerMin)

	v.SetDefault("catalog.file", cfg.Catalog.File)
	v.SetDefault("catalog.limit", cfg.Catalog.Limit)

	v.SetDefault("ui.max_results", cfg.UI.MaxResults)

	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
}

// LoadConfig loads configuration from file and environment.
// An explicit configFile must exist; otherwise the default locations are
// searched and a missing file falls back to defaults.
func LoadConfig(v *viper.Viper, configFile string) (*Config, error) {
	cfg := DefaultConfig()
	setDefaults(v, cfg)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultConfigDir())
		v.AddConfigPath(".")
	}

	// Environment variable overrides, e.g. TUNES_SEARCH_QUIET_WINDOW
	v.SetEnvPrefix("TUNES")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values no component can work with
func (c *Config) Validate() error {
	switch c.Search.Source {
	case SourceTypeITunes:
		if c.Search.Endpoint == "" {
			return fmt.Errorf("search.endpoint is required for source %q", c.Search.Source)
		}
	case SourceTypeCatalog:
		if c.Catalog.File == "" {
			return fmt.Errorf("catalog.file is required for source %q", c.Search.Source)
		}
	default:
		return fmt.Errorf("unknown search source: %q", c.Search.Source)
	}

	if c.Search.QuietWindow <= 0 {
		return fmt.Errorf("search.quiet_window must be positive, got %s", c.Search.QuietWindow)
	}
	if c.Search.Limit < 0 || c.Catalog.Limit < 0 {
		return fmt.Errorf("limits must not be negative")
	}
	if c.Search.RatePerMin < 0 {
		return fmt.Errorf("search.rate_per_minute must not be negative")
	}
	return nil
}

// SaveConfig writes cfg to path, creating the directory if needed
func SaveConfig(v *viper.Viper, cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set fields individually to ensure correct key names (snake_case)
	v.Set("search.source", string(cfg.Search.Source))
	v.Set("search.endpoint", cfg.Search.Endpoint)
	v.Set("search.quiet_window", cfg.Search.QuietWindow.String())
	v.Set("search.media", cfg.Search.Media)
	v.Set("search.entity", cfg.Search.Entity)
	v.Set("search.country", cfg.Search.Country)
	v.Set("search.limit", cfg.Search.Limit)
	v.Set("search.timeout", cfg.Search.Timeout.String())
	v.Set("search.rate_per_minute", cfg.Search.RatePerMin)

	v.Set("catalog.file", cfg.Catalog.File)
	v.Set("catalog.limit", cfg.Catalog.Limit)

	v.Set("ui.max_results", cfg.UI.MaxResults)

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
