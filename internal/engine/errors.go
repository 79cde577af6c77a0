package engine

import "fmt"

// TableFullError is returned when an insert finds the root leaf at capacity.
type TableFullError struct {
	MaxRows int
	Err     error
}

func (e *TableFullError) Error() string {
	return fmt.Sprintf("table full (max rows %d)", e.MaxRows)
}

func (e *TableFullError) Unwrap() error {
	return e.Err
}
