package storage

import (
	"fmt"

	"go.flakedb/internal/logger"
)

// Pager owns a fixed arena of MaxPages page slots, optionally backed by a
// file. Pages are loaded on first touch and written back on Close.
type Pager struct {
	slots  [MaxPages]slot
	file   *pageFile
	log    *logger.Logger
	closed bool
}

// Open returns a pager backed by the file at path, creating it when absent.
// An empty path gives an in-memory pager that persists nothing.
func Open(path string, log *logger.Logger) (*Pager, error) {
	if log == nil {
		log = logger.Discard()
	}

	pager := &Pager{log: log}
	if path == "" {
		return pager, nil
	}

	f, err := openPageFile(path)
	if err != nil {
		return nil, err
	}
	pager.file = f
	log.Debugf("opened %s (%d bytes)", path, f.len)
	return pager, nil
}

// Len is the length in bytes of the backing file, 0 when in memory.
func (pager *Pager) Len() int64 {
	if pager.file == nil {
		return 0
	}
	return pager.file.len
}

// Loaded reports whether page index has been materialized.
func (pager *Pager) Loaded(index int) bool {
	checkIndex(index)
	return pager.slots[index].page != nil
}

func checkIndex(index int) {
	if index < 0 || index >= MaxPages {
		panic(fmt.Sprintf("page %d out of bounds (max %d)", index, MaxPages))
	}
}

func (pager *Pager) load(index int) (*slot, error) {
	checkIndex(index)
	if pager.closed {
		return nil, ErrPagerClosed
	}

	s := &pager.slots[index]
	if s.page != nil {
		return s, nil
	}

	page := NewPage(index)
	if pager.file != nil {
		offset := pageOffset(index)
		if pager.file.contains(offset) {
			pager.log.Debugf("reading %d bytes at offset %d (total %d)", PageSize, offset, pager.file.len)
			if err := pager.file.readPage(page, offset); err != nil {
				return nil, fmt.Errorf("read page %d: %w", index, err)
			}
		}
	}

	s.page = page
	return s, nil
}

// Borrow returns a shared view of page index. It panics if the page is
// currently borrowed mutably.
func (pager *Pager) Borrow(index int) (*PageRef, error) {
	s, err := pager.load(index)
	if err != nil {
		return nil, err
	}
	s.acquireShared(index)
	return &PageRef{slot: s, index: index}, nil
}

// BorrowMut returns an exclusive view of page index. It panics if any other
// view of the page is alive.
func (pager *Pager) BorrowMut(index int) (*PageRefMut, error) {
	s, err := pager.load(index)
	if err != nil {
		return nil, err
	}
	s.acquireExclusive(index)
	return &PageRefMut{slot: s, index: index}, nil
}

// Close writes every materialized page back to the file. A page that fails to
// flush is logged and skipped so the remaining pages still reach disk.
func (pager *Pager) Close() error {
	if pager.closed {
		return nil
	}
	pager.closed = true

	if pager.file == nil {
		return nil
	}

	for i := range pager.slots {
		if pager.slots[i].page == nil {
			continue
		}
		if err := pager.flush(i); err != nil {
			pager.log.Warnf("possible data loss. Error flushing page %d to disk (%v).", i, err)
		}
	}

	if err := pager.file.close(); err != nil {
		return fmt.Errorf("close db file %s: %w", pager.file.path, err)
	}
	return nil
}

func (pager *Pager) flush(index int) error {
	s := &pager.slots[index]
	s.acquireShared(index)
	defer func() { s.readers-- }()

	return pager.file.writePage(s.page, pageOffset(index))
}
