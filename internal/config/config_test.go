package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()

	cfg, err := Load(home, "")
	require.NoError(t, err)

	require.Equal(t, home, cfg.Home)
	require.Equal(t, filepath.Join(home, "data"), cfg.DataDir)
	require.Equal(t, filepath.Join(home, "log"), cfg.LogDir)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, filepath.Join(home, "history"), cfg.HistoryFile)
	require.Equal(t, "flakedb>", cfg.Prompt)

	require.DirExists(t, cfg.DataDir)
	require.DirExists(t, cfg.LogDir)
}

func TestLoad_HomeFromEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("FLAKEDB_HOME", home)

	cfg, err := Load("", "")
	require.NoError(t, err)
	require.Equal(t, home, cfg.Home)
}

func TestLoad_File(t *testing.T) {
	home := t.TempDir()
	data := filepath.Join(t.TempDir(), "elsewhere")

	body := "data_dir: " + data + "\nlog_level: debug\nprompt: db>\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(body), 0o644))

	cfg, err := Load(home, "")
	require.NoError(t, err)
	require.Equal(t, data, cfg.DataDir)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "db>", cfg.Prompt)
	require.Equal(t, filepath.Join(home, "log"), cfg.LogDir)
}

func TestLoad_ConfigOverrideAndEnv(t *testing.T) {
	home := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_level: warn\n"), 0o644))

	t.Setenv("FLAKEDB_LOG_LEVEL", "error")

	cfg, err := Load(home, cfgPath)
	require.NoError(t, err)
	require.Equal(t, "error", cfg.LogLevel)
}

func TestLoad_BadFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("prompt: [unclosed\n"), 0o644))

	_, err := Load(home, "")
	require.Error(t, err)
}

func TestDatabasePath(t *testing.T) {
	cfg := &Config{DataDir: "/var/flakedb"}

	require.Equal(t, filepath.Join("/var/flakedb", "users.db"), cfg.DatabasePath("users"))
	require.Equal(t, "users.db", cfg.DatabasePath("users.db"))
	require.Equal(t, "./users", cfg.DatabasePath("./users"))
	require.Equal(t, "/tmp/x.bin", cfg.DatabasePath("/tmp/x.bin"))
}

func TestYAML(t *testing.T) {
	cfg, err := Load(t.TempDir(), "")
	require.NoError(t, err)

	out, err := cfg.YAML()
	require.NoError(t, err)

	var back Config
	require.NoError(t, yaml.Unmarshal(out, &back))
	require.Equal(t, *cfg, back)
	require.Contains(t, string(out), "log_level: info")
}
