package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var btreeCmd = &cobra.Command{
	Use:   "btree <path>",
	Short: "Print the tree layout of the database at <path>",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		db, err := openDatabase(args[0])
		if err != nil {
			return err
		}
		defer func() { err = errors.Join(err, db.Close()) }()

		tree, err := db.TreeString()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), tree)
		return nil
	},
}

var constantsCmd = &cobra.Command{
	Use:   "constants",
	Short: "Print the page layout constants",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printConstants(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(btreeCmd)
	rootCmd.AddCommand(constantsCmd)
}
