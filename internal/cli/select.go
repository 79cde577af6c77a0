package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"go.flakedb/internal/sql"
)

var selectCmd = &cobra.Command{
	Use:   "select <path>",
	Short: "Print every row of the database at <path>",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		db, err := openDatabase(args[0])
		if err != nil {
			return err
		}
		defer func() { err = errors.Join(err, db.Close()) }()

		return db.Execute(sql.Statement{Kind: sql.Select}, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(selectCmd)
}
