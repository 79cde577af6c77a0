package sql

import (
	"errors"
	"fmt"
)

// Error classes
var (
	ErrSyntax    = errors.New("syntax error")
	ErrExecution = errors.New("execution error")
)

// Error is a statement failure of one class. Err, when set, is the
// underlying cause.
type Error struct {
	Class error
	Msg   string
	Err   error
}

func (e *Error) Error() string {
	return e.Class.Error() + ": " + e.Msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Class}
	}
	return []error{e.Class, e.Err}
}

func syntaxErrorf(format string, args ...any) error {
	return &Error{Class: ErrSyntax, Msg: fmt.Sprintf(format, args...)}
}

func executionErrorf(format string, args ...any) error {
	return &Error{Class: ErrExecution, Msg: fmt.Sprintf(format, args...)}
}

// ExecutionError wraps err as an execution failure, keeping its message.
func ExecutionError(err error) error {
	return &Error{Class: ErrExecution, Msg: err.Error(), Err: err}
}
