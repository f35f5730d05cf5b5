// Package config handles loading and hot-reloading binder
// configuration from file, environment, and defaults.
package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config is the full binder configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
	Limits   LimitsConfig   `mapstructure:"limits" yaml:"limits"`
	Defaults OptionDefaults `mapstructure:"defaults" yaml:"defaults"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port string `mapstructure:"port" yaml:"port"`
}

// LimitsConfig bounds a single upload request.
type LimitsConfig struct {
	// MaxUploadMB caps the total multipart request size in megabytes.
	MaxUploadMB int `mapstructure:"max_upload_mb" yaml:"max_upload_mb"`
	// MaxFiles caps how many files one bundle may contain.
	MaxFiles int `mapstructure:"max_files" yaml:"max_files"`
}

// OptionDefaults pre-sets the two form checkboxes.
type OptionDefaults struct {
	GenerateTOC    bool `mapstructure:"generate_toc" yaml:"generate_toc"`
	AddPageNumbers bool `mapstructure:"add_page_numbers" yaml:"add_page_numbers"`
}

// OutputConfig names the produced artifact.
type OutputConfig struct {
	Filename string `mapstructure:"filename" yaml:"filename"`
}

// MaxUploadBytes returns the request size cap in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.Limits.MaxUploadMB) << 20
}

// Manager handles loading and hot-reloading configuration.
type Manager struct {
	mu        sync.RWMutex
	config    *Config
	callbacks []func(*Config)
}

// NewManager creates a new config manager and loads initial config.
func NewManager(cfgFile string) (*Manager, error) {
	cm := &Manager{
		callbacks: make([]func(*Config), 0),
	}

	if err := cm.initViper(cfgFile); err != nil {
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
func (cm *Manager) initViper(cfgFile string) error {
	defaults := DefaultConfig()
	viper.SetDefault("server", defaults.Server)
	viper.SetDefault("limits", defaults.Limits)
	viper.SetDefault("defaults", defaults.Defaults)
	viper.SetDefault("output", defaults.Output)

	// Environment variables with BINDER_ prefix
	viper.SetEnvPrefix("BINDER")
	viper.AutomaticEnv()

	// Config file
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.binder")
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
