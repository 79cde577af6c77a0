package btree

import (
	"fmt"

	"go.flakedb/internal/row"
	"go.flakedb/internal/storage"
)

// InternalNode is recognised in the header but has no layout yet. Every
// operation reports ErrUnsupported.
type InternalNode struct {
	pager *storage.Pager
	page  int
}

func (n *InternalNode) Page() int {
	return n.page
}

func (n *InternalNode) Type() NodeType {
	return NodeInternal
}

func (n *InternalNode) unsupported(op string) error {
	return fmt.Errorf("%w: %s on internal node (page %d)", ErrUnsupported, op, n.page)
}

func (n *InternalNode) NumKeys() (int, error) {
	return 0, n.unsupported("num keys")
}

func (n *InternalNode) Child(index int) (int, error) {
	return 0, n.unsupported("child lookup")
}

func (n *InternalNode) Search(key uint64) (int, error) {
	return 0, n.unsupported("search")
}

func (n *InternalNode) Insert(key uint64, r row.Validated) error {
	return n.unsupported("insert")
}
