// Package config provides configuration management for the userdirs CLI using Viper.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/thoreinstein/userdirs"
	"github.com/thoreinstein/userdirs/internal/errors"
)

// AppName is the application name used for config file naming.
const AppName = "userdirs"

// Formats lists the output formats the list command accepts.
var Formats = []string{"text", "json", "yaml", "toml"}

// Config represents the top-level configuration structure.
type Config struct {
	Version int    `mapstructure:"version" yaml:"version"`
	Format  string `mapstructure:"format" yaml:"format"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence). The config directory is
	// resolved with this project's own library; when the home directory
	// is unavailable only the working directory is searched.
	viper.AddConfigPath(".")
	if configDir, err := userdirs.Config(); err == nil {
		viper.AddConfigPath(filepath.Join(configDir, AppName))
	}

	// Environment variable support
	viper.SetEnvPrefix("USERDIRS")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("version", 1)
	viper.SetDefault("format", "text")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		// If config file not found...
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns a configuration with default values.
func Default() *Config {
	return &Config{
		Version: 1,
		Format:  "text",
	}
}

// Validate checks a configuration for invalid values.
func Validate(cfg *Config) error {
	if cfg.Version != 1 {
		return errors.Wrap(errors.ErrInvalidConfig,
			fmt.Sprintf("unsupported version %d", cfg.Version))
	}
	if !ValidFormat(cfg.Format) {
		return errors.Wrap(errors.ErrInvalidConfig,
			fmt.Sprintf("unknown format %q (valid: text, json, yaml, toml)", cfg.Format))
	}
	return nil
}

// ValidFormat reports whether name is an accepted output format.
func ValidFormat(name string) bool {
	for _, f := range Formats {
		if name == f {
			return true
		}
	}
	return false
}
