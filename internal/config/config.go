// Package config handles loading and hot-reloading papersplit configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds the tunable settings for the analysis and split pipeline.
type Config struct {
	// HeaderFraction is the fraction of page height (from the top) that is
	// scanned for structural headers. Defaults to 0.20.
	HeaderFraction float64 `mapstructure:"header_fraction"`

	// Workers bounds the parallelism of the per-page header scan and of
	// batch document processing. Defaults to 4.
	Workers int `mapstructure:"workers"`

	// OutputDir overrides the home split directory when set.
	OutputDir string `mapstructure:"output_dir"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		HeaderFraction: 0.20,
		Workers:        4,
		LogLevel:       "info",
	}
}

// Validate checks the config for out-of-range values.
func (c *Config) Validate() error {
	if c.HeaderFraction <= 0 || c.HeaderFraction > 1 {
		return fmt.Errorf("header_fraction must be in (0, 1], got %v", c.HeaderFraction)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}
	return nil
}

// SlogLevel maps the configured log level to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Manager handles loading and hot-reloading configuration.
type Manager struct {
	mu        sync.RWMutex
	config    *Config
	callbacks []func(*Config)
}

// NewManager creates a new config manager and loads initial config.
// cfgFile may be empty, in which case the usual search paths apply.
func NewManager(cfgFile, homePath string) (*Manager, error) {
	cm := &Manager{
		callbacks: make([]func(*Config), 0),
	}

	if err := cm.initViper(cfgFile, homePath); err != nil {
		return nil, err
	}

	cfg, err := cm.load()
	if err != nil {
		return nil, err
	}
	cm.config = cfg

	return cm, nil
}

// initViper sets up viper with defaults and config file.
func (cm *Manager) initViper(cfgFile, homePath string) error {
	defaults := DefaultConfig()
	viper.SetDefault("header_fraction", defaults.HeaderFraction)
	viper.SetDefault("workers", defaults.Workers)
	viper.SetDefault("output_dir", defaults.OutputDir)
	viper.SetDefault("log_level", defaults.LogLevel)

	// Environment variables with PAPERSPLIT_ prefix
	viper.SetEnvPrefix("PAPERSPLIT")
	viper.AutomaticEnv()

	// Config file
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if homePath != "" {
			viper.AddConfigPath(homePath)
		}
		viper.AddConfigPath("$HOME/.papersplit")
	}

	// Try to read config file (not required)
	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// load parses the current viper state into a Config struct.
func (cm *Manager) load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Get returns the current configuration (thread-safe).
func (cm *Manager) Get() *Config {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.config
}

// OnChange registers a callback for config changes.
func (cm *Manager) OnChange(fn func(*Config)) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.callbacks = append(cm.callbacks, fn)
}

// WatchConfig enables hot-reloading of configuration.
func (cm *Manager) WatchConfig() {
	viper.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := cm.load()
		if err != nil {
			return
		}

		cm.mu.Lock()
		cm.config = cfg
		callbacks := make([]func(*Config), len(cm.callbacks))
		copy(callbacks, cm.callbacks)
		cm.mu.Unlock()

		for _, fn := range callbacks {
			fn(cfg)
		}
	})
	viper.WatchConfig()
}
