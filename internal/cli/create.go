package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.flakedb/internal/engine"
)

var createCmd = &cobra.Command{
	Use:   "create <dbname>",
	Args:  cobra.ExactArgs(1),
	Short: "Create a new empty database",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbname := args[0]
		dbPath := cfg.DatabasePath(dbname)

		if err := engine.Create(dbPath, log); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Database %s created at %s\n", dbname, dbPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
}
