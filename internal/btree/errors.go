package btree

import (
	"errors"
	"fmt"
)

var (
	ErrCorruptPage = errors.New("page is corrupt")
	ErrPageFull    = errors.New("leaf page is full, splitting not yet implemented")
	ErrUnsupported = errors.New("operation not supported")
)

// UnknownNodeTypeError is returned when the type bits of a node's flags match
// no known node type.
type UnknownNodeTypeError struct {
	Flags byte
}

func (e *UnknownNodeTypeError) Error() string {
	return fmt.Sprintf("unknown node type in flags %#04x", e.Flags)
}

func (e *UnknownNodeTypeError) Is(target error) bool {
	return target == ErrCorruptPage
}
