package btree

import (
	"fmt"
	"strings"

	"go.flakedb/internal/storage"
)

// Render draws the tree rooted at root, one line per node and key.
func Render(pager *storage.Pager, root int) (string, error) {
	var sb strings.Builder
	if err := render(&sb, pager, root, 0); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func indent(sb *strings.Builder, level int) {
	sb.WriteString(strings.Repeat("  ", level))
}

func render(sb *strings.Builder, pager *storage.Pager, page, level int) error {
	node, err := Open(pager, page)
	if err != nil {
		return err
	}

	switch n := node.(type) {
	case *LeafNode:
		num, err := n.NumCells()
		if err != nil {
			return err
		}

		indent(sb, level)
		fmt.Fprintf(sb, "- leaf (size %d)\n", num)
		for i := 0; i < num; i++ {
			entry, err := n.Entry(i)
			if err != nil {
				return err
			}
			key, err := entry.Key()
			if err != nil {
				return err
			}
			indent(sb, level+1)
			fmt.Fprintf(sb, "- %d\n", key)
		}
		return nil

	case *InternalNode:
		return n.unsupported("render")

	default:
		return fmt.Errorf("%w: render %s node", ErrUnsupported, node.Type())
	}
}
