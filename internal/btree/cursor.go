package btree

import (
	"go.flakedb/internal/row"
	"go.flakedb/internal/storage"
)

// Cursor is a position within the root leaf. Cursors are cheap and meant to
// be built per operation.
type Cursor struct {
	node      *LeafNode
	cellIndex int
	atEnd     bool
}

// Start positions a cursor at the first cell of the tree rooted at root.
func Start(pager *storage.Pager, root int) (*Cursor, error) {
	node, err := OpenLeaf(pager, root)
	if err != nil {
		return nil, err
	}

	empty, err := node.IsEmpty()
	if err != nil {
		return nil, err
	}
	return &Cursor{node: node, cellIndex: 0, atEnd: empty}, nil
}

// End positions a cursor one past the last cell.
func End(pager *storage.Pager, root int) (*Cursor, error) {
	node, err := OpenLeaf(pager, root)
	if err != nil {
		return nil, err
	}

	num, err := node.NumCells()
	if err != nil {
		return nil, err
	}
	return &Cursor{node: node, cellIndex: num, atEnd: true}, nil
}

// Seek positions a cursor at the first cell whose key is >= key, which is
// also where key would be inserted.
func Seek(pager *storage.Pager, root int, key uint64) (*Cursor, error) {
	node, err := OpenLeaf(pager, root)
	if err != nil {
		return nil, err
	}

	num, err := node.NumCells()
	if err != nil {
		return nil, err
	}

	lo, hi := 0, num
	for lo < hi {
		mid := (lo + hi) / 2

		entry, err := node.Entry(mid)
		if err != nil {
			return nil, err
		}
		k, err := entry.Key()
		if err != nil {
			return nil, err
		}

		if k < key {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return &Cursor{node: node, cellIndex: lo, atEnd: lo == num}, nil
}

func (c *Cursor) CellIndex() int {
	return c.cellIndex
}

func (c *Cursor) AtEnd() bool {
	return c.atEnd
}

// Next yields a view of the current row and advances. ok is false once the
// cursor has run off the end. The caller releases the returned view.
func (c *Cursor) Next() (v *ValueRef, ok bool, err error) {
	if c.atEnd {
		return nil, false, nil
	}

	entry, err := c.node.Entry(c.cellIndex)
	if err != nil {
		return nil, false, err
	}
	v, err = entry.Value()
	if err != nil {
		return nil, false, err
	}

	c.cellIndex++

	// the page may have been changed since the cursor was positioned
	num, err := c.node.NumCells()
	if err != nil {
		v.Release()
		return nil, false, err
	}
	if c.cellIndex >= num {
		c.atEnd = true
	}
	return v, true, nil
}

// Insert stores (key, r) at the cursor's cell. The cursor is left on the new cell.
func (c *Cursor) Insert(key uint64, r row.Validated) error {
	if err := c.node.Insert(c.cellIndex, key, r); err != nil {
		return err
	}
	c.atEnd = false
	return nil
}
