package storage

import "errors"

var (
	// pager
	ErrPagerClosed = errors.New("pager is closed")
	// file
	ErrShortRead         = errors.New("data read does not match page size")
	ErrWriteSizeMismatch = errors.New("data written does not match page size")
)
