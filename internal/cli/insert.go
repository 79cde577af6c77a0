package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"go.flakedb/internal/row"
	"go.flakedb/internal/sql"
)

var insertCmd = &cobra.Command{
	Use:   "insert <path> <id> <username> <email>",
	Short: "Insert one row into the database at <path>",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		db, err := openDatabase(args[0])
		if err != nil {
			return err
		}
		defer func() { err = errors.Join(err, db.Close()) }()

		stmt := sql.Statement{
			Kind: sql.Insert,
			Row:  row.Input{ID: args[1], Username: args[2], Email: args[3]},
		}
		if err := db.Execute(stmt, cmd.OutOrStdout()); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "row %s inserted\n", args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(insertCmd)
}
