package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"go.flakedb/internal/engine"
	"go.flakedb/internal/logger"
	"go.flakedb/internal/sql"
)

const splash = "Enter '.help' for assistance"

// REPL reads commands line by line and runs them against one database.
type REPL struct {
	Prompt      string
	HistoryFile string
	Log         *logger.Logger

	db  *engine.Database
	in  io.Reader
	out io.Writer
}

func NewREPL(db *engine.Database, in io.Reader, out io.Writer) *REPL {
	return &REPL{
		Prompt: "flakedb>",
		Log:    logger.Discard(),
		db:     db,
		in:     in,
		out:    out,
	}
}

// Run prints the splash and loops until .exit or end of input. Command
// errors are printed and the loop carries on.
func (r *REPL) Run() error {
	fmt.Fprintf(r.out, "flakedb v%s\n", Version)
	fmt.Fprintln(r.out, splash)

	if f, ok := r.in.(*os.File); ok && readline.IsTerminal(int(f.Fd())) {
		return r.runTerminal(f)
	}
	return r.runScanner()
}

func (r *REPL) runScanner() error {
	reader := bufio.NewScanner(r.in)

	for {
		fmt.Fprint(r.out, r.Prompt+" ")

		if !reader.Scan() {
			fmt.Fprintln(r.out)
			return reader.Err()
		}

		if r.execLine(reader.Text()) {
			return nil
		}
	}
}

func (r *REPL) runTerminal(stdin *os.File) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          r.Prompt + " ",
		HistoryFile:     r.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".exit",
		Stdin:           stdin,
		Stdout:          r.out,
	})
	if err != nil {
		return fmt.Errorf("readline: %w", err)
	}
	defer func() { _ = rl.Close() }()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if r.execLine(line) {
			return nil
		}
	}
}

// execLine runs one line and reports whether the loop should stop.
func (r *REPL) execLine(line string) (exit bool) {
	line = strings.TrimSpace(line)
	tokens := sql.Tokenize(line)

	var err error
	switch tokens.Peek().Kind {
	case sql.TokenNone:
		return false
	case sql.TokenMeta:
		exit, err = r.execMeta(tokens)
	default:
		err = r.execSQL(tokens)
	}

	if err != nil {
		r.Log.Debugf("command %q failed: %v", line, err)
		r.printError(err)
	}
	return exit
}

func (r *REPL) execSQL(tokens *sql.Tokens) error {
	stmt, err := sql.ParseTokens(tokens)
	if err != nil {
		return err
	}
	return r.db.Execute(stmt, r.out)
}

func (r *REPL) printError(err error) {
	var meta *MetaError
	if errors.As(err, &meta) {
		fmt.Fprintf(r.out, "Syntax error: %s.\n", meta.Msg)
		return
	}
	fmt.Fprintf(r.out, "SQL error: %s.\n", err)
}
