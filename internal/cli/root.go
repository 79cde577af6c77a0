package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"go.flakedb/internal/config"
	"go.flakedb/internal/logger"
)

const Version = "0.1.0"

var (
	homeDir    string
	configFile string
	logLevel   string

	cfg     *config.Config
	log     *logger.Logger
	logFile io.Closer
)

var rootCmd = &cobra.Command{
	Use:           "flakedb [path]",
	Short:         "flakedb - tiny paged table store",
	Version:       Version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}

		db, err := openDatabase(path)
		if err != nil {
			return err
		}

		repl := NewREPL(db, cmd.InOrStdin(), cmd.OutOrStdout())
		repl.Prompt = cfg.Prompt
		repl.HistoryFile = cfg.HistoryFile
		repl.Log = log

		runErr := repl.Run()
		return errors.Join(runErr, db.Close())
	},
}

// Loads the configuration and opens the log before any command runs
func setup(cmd *cobra.Command, args []string) error {
	if err := closeLog(); err != nil {
		return err
	}

	var err error
	cfg, err = config.Load(homeDir, configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	var out io.Writer = cmd.ErrOrStderr()
	if cfg.LogDir != "" {
		f, err := os.OpenFile(filepath.Join(cfg.LogDir, "flakedb.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		out, logFile = f, f
	}

	log = logger.New(out, level)
	log.Debugf("config loaded from %s", cfg.Home)
	return nil
}

func closeLog() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

func Execute() {
	err := rootCmd.Execute()
	_ = closeLog()
	if err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "flakedb home directory (default $FLAKEDB_HOME or ~/.local/share/flakedb)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default <home>/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}
