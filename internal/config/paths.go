package config

import (
	"os"
	"path/filepath"
	"strings"
)

const homeEnv = "FLAKEDB_HOME"

type Paths struct {
	Home   string
	Config string
}

// Allow user to set app home through env variable
// otherwise default to ~/.local/share/flakedb

func ResolvePaths(homeOverride, configOverride string) (*Paths, error) {
	home := homeOverride
	if home == "" {
		home = os.Getenv(homeEnv)
	}

	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		home = filepath.Join(userHome, ".local", "share", "flakedb")
	}

	if err := os.MkdirAll(home, 0o755); err != nil {
		return nil, err
	}

	cfgPath := configOverride
	if cfgPath == "" {
		cfgPath = filepath.Join(home, "config.yaml")
	}

	return &Paths{
		Home:   home,
		Config: cfgPath,
	}, nil
}

// DatabasePath maps a bare database name to <data_dir>/<name>.db. Anything
// that already looks like a path is returned as is.
func (c *Config) DatabasePath(name string) string {
	if strings.ContainsRune(name, os.PathSeparator) || strings.Contains(name, "/") || filepath.Ext(name) == ".db" {
		return name
	}
	return filepath.Join(c.DataDir, name+".db")
}
