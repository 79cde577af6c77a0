package cli

import (
	"fmt"

	"go.flakedb/internal/sql"
)

// MetaError is a malformed or unknown meta command.
type MetaError struct {
	Msg string
}

func (e *MetaError) Error() string {
	return "meta command syntax error: " + e.Msg
}

type metaCommand struct {
	name string
	help string
	run  func(r *REPL) (exit bool, err error)
}

var metaCommands []metaCommand

func init() {
	metaCommands = []metaCommand{
		{".exit", "close the database and quit", func(r *REPL) (bool, error) {
			return true, nil
		}},
		{".help", "show this help", func(r *REPL) (bool, error) {
			printHelp(r)
			return false, nil
		}},
		{".btree", "print the tree layout of the table", func(r *REPL) (bool, error) {
			tree, err := r.db.TreeString()
			if err != nil {
				return false, err
			}
			fmt.Fprint(r.out, tree)
			return false, nil
		}},
		{".constants", "print the page layout constants", func(r *REPL) (bool, error) {
			printConstants(r.out)
			return false, nil
		}},
		{".pages", "list loaded pages with their digests", func(r *REPL) (bool, error) {
			printPages(r.out, r.db.Pages())
			return false, nil
		}},
	}
}

func (r *REPL) execMeta(tokens *sql.Tokens) (bool, error) {
	tok, _ := tokens.Next()
	if tok.Kind != sql.TokenMeta {
		return false, &MetaError{Msg: fmt.Sprintf("expected meta command, but found '%s'", tok.Text)}
	}

	// a lone dot does nothing
	if tok.Text == "." {
		return false, nil
	}

	for _, mc := range metaCommands {
		if mc.name == tok.Text {
			return mc.run(r)
		}
	}
	return false, &MetaError{Msg: fmt.Sprintf("invalid meta command '%s'", tok.Text)}
}

func printHelp(r *REPL) {
	rows := make([][]string, 0, len(metaCommands)+2)
	rows = append(rows,
		[]string{"insert <id> <username> <email>", "store a row"},
		[]string{"select", "print every row"},
	)
	for _, mc := range metaCommands {
		rows = append(rows, []string{mc.name, mc.help})
	}
	printTable(r.out, []string{"COMMAND", "DESCRIPTION"}, rows)
}
