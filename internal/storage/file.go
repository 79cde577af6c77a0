package storage

import (
	"fmt"
	"io"
	"os"
)

// pageFile is the backing file of a pager. len tracks the file length so reads
// past the end never reach the OS.
type pageFile struct {
	file *os.File
	len  int64
	path string
}

func openPageFile(path string) (*pageFile, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open db file %s: %w", path, err)
	}

	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("seek end of %s: %w", path, err)
	}

	return &pageFile{
		file: f,
		len:  size,
		path: path,
	}, nil
}

// contains reports whether the whole page at offset lies inside the file.
func (f *pageFile) contains(offset int64) bool {
	return offset+PageSize <= f.len
}

func (f *pageFile) readPage(page *Page, offset int64) error {
	n, err := f.file.ReadAt(page.Data, offset)
	if err != nil && !(err == io.EOF && n == PageSize) {
		return err
	}
	if n != PageSize {
		return fmt.Errorf("%w: read %d of %d bytes", ErrShortRead, n, PageSize)
	}
	return nil
}

func (f *pageFile) grow(newLen int64) error {
	if newLen <= f.len {
		return nil
	}
	if err := f.file.Truncate(newLen); err != nil {
		return err
	}
	f.len = newLen
	return nil
}

func (f *pageFile) writePage(page *Page, offset int64) error {
	if err := f.grow(offset + PageSize); err != nil {
		return err
	}

	n, err := f.file.WriteAt(page.Data, offset)
	if err != nil {
		return err
	}
	if n != PageSize {
		return fmt.Errorf("%w: wrote %d of %d bytes", ErrWriteSizeMismatch, n, PageSize)
	}
	return nil
}

func (f *pageFile) close() error {
	return f.file.Close()
}
