// Package config loads application settings.
//
// Sources are applied in priority order, later ones overriding earlier:
// defaults, the TOML config file, TODO_* environment variables, and
// finally command-line flags (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/idilsaglam/todo/internal/logging"
	"github.com/idilsaglam/todo/internal/store/jsonstore"
)

const (
	DefaultConfigFile = "todo.toml"
	DefaultTheme      = "classic"
)

// Config holds the settings the program runs with.
type Config struct {
	DataFile string `toml:"data_file"`
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
	Theme    string `toml:"theme"`

	// ConfigFile is the file the settings were read from, if any.
	ConfigFile string `toml:"-"`
}

func setDefaults(cfg *Config) {
	lo := logging.DefaultOptions()
	cfg.DataFile = jsonstore.DefaultPath
	cfg.LogLevel = lo.Level
	cfg.LogFile = lo.File
	cfg.Theme = DefaultTheme
}

// Load builds a Config from defaults, the file at path and the environment.
// An empty path means DefaultConfigFile, which may be absent. A path the
// user named explicitly must exist.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}
	if err := loadConfigFile(cfg, path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	} else {
		cfg.ConfigFile = path
	}

	loadFromEnv(cfg)
	return cfg, nil
}

func loadConfigFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TODO_DATA_FILE"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("TODO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TODO_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("TODO_THEME"); v != "" {
		cfg.Theme = v
	}
}

// LogOptions returns the logger options for cfg.
func (c *Config) LogOptions() logging.Options {
	lo := logging.DefaultOptions()
	lo.Level = c.LogLevel
	lo.File = c.LogFile
	return lo
}
