package row

import "errors"

var ErrInvalidRow = errors.New("invalid row")

// ValidationError reports the first column of an Input that failed validation.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func (e *ValidationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidRow}
	}
	return []error{ErrInvalidRow, e.Err}
}
