package storage

import "fmt"

// slot holds one page of the pager arena together with its borrow state.
// Any number of shared views or exactly one exclusive view may be alive.
type slot struct {
	page    *Page
	readers int
	writer  bool
}

// BorrowError is the panic value raised when a borrow would alias a live
// exclusive view, or when an exclusive borrow meets any live view.
type BorrowError struct {
	Page    int
	Mutable bool
	Readers int
	Writer  bool
}

func (e *BorrowError) Error() string {
	kind := "shared"
	if e.Mutable {
		kind = "exclusive"
	}
	if e.Writer {
		return fmt.Sprintf("page %d: %s borrow while mutably borrowed", e.Page, kind)
	}
	return fmt.Sprintf("page %d: %s borrow while borrowed by %d reader(s)", e.Page, kind, e.Readers)
}

func (s *slot) acquireShared(index int) {
	if s.writer {
		panic(&BorrowError{Page: index, Writer: true})
	}
	s.readers++
}

func (s *slot) acquireExclusive(index int) {
	if s.writer || s.readers > 0 {
		panic(&BorrowError{Page: index, Mutable: true, Readers: s.readers, Writer: s.writer})
	}
	s.writer = true
}

// PageRef is a shared view of a page. Release it once done.
type PageRef struct {
	slot     *slot
	index    int
	released bool
}

func (r *PageRef) Index() int {
	return r.index
}

func (r *PageRef) Bytes() []byte {
	if r.released {
		panic(fmt.Sprintf("page %d: use of released view", r.index))
	}
	return r.slot.page.Data
}

func (r *PageRef) Release() {
	if r == nil || r.released {
		return
	}
	r.released = true
	r.slot.readers--
}

// PageRefMut is an exclusive view of a page. Release it once done.
type PageRefMut struct {
	slot     *slot
	index    int
	released bool
}

func (r *PageRefMut) Index() int {
	return r.index
}

func (r *PageRefMut) Bytes() []byte {
	if r.released {
		panic(fmt.Sprintf("page %d: use of released view", r.index))
	}
	return r.slot.page.Data
}

func (r *PageRefMut) Release() {
	if r == nil || r.released {
		return
	}
	r.released = true
	r.slot.writer = false
}
