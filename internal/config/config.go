package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

type Config struct {
	Home        string `mapstructure:"-" yaml:"home"`
	DataDir     string `mapstructure:"data_dir" yaml:"data_dir"`
	LogDir      string `mapstructure:"log_dir" yaml:"log_dir"`
	LogLevel    string `mapstructure:"log_level" yaml:"log_level"`
	HistoryFile string `mapstructure:"history_file" yaml:"history_file"`
	Prompt      string `mapstructure:"prompt" yaml:"prompt"`
}

// Load resolves the home directory, applies defaults, then the config file if
// there is one, then FLAKEDB_* environment variables.
func Load(homeOverride, configOverride string) (*Config, error) {
	paths, err := ResolvePaths(homeOverride, configOverride)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("flakedb")
	v.AutomaticEnv()

	v.SetDefault("data_dir", filepath.Join(paths.Home, "data"))
	v.SetDefault("log_dir", filepath.Join(paths.Home, "log"))
	v.SetDefault("log_level", "info")
	v.SetDefault("history_file", filepath.Join(paths.Home, "history"))
	v.SetDefault("prompt", "flakedb>")

	if _, err := os.Stat(paths.Config); err == nil {
		v.SetConfigFile(paths.Config)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	cfg := &Config{Home: paths.Home}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	_ = os.MkdirAll(cfg.DataDir, 0o755)
	if cfg.LogDir != "" {
		_ = os.MkdirAll(cfg.LogDir, 0o755)
	}

	return cfg, nil
}

// YAML encodes the effective configuration.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
