package btree

import (
	"encoding/binary"
	"fmt"

	"go.flakedb/internal/storage"
)

// Common node header: [flags:1][parent:8]
const (
	flagsSize  = 1
	parentSize = 8

	flagsOffset  = 0
	parentOffset = flagsOffset + flagsSize

	CommonHeaderSize = flagsSize + parentSize
)

// only the low two bits of flags encode the node type, the rest are reserved
const typeMask = 0b11

type NodeType uint8

const (
	NodeLeaf NodeType = iota
	NodeInternal
	NodeRoot
	NodeUnknown
)

func (t NodeType) String() string {
	switch t {
	case NodeLeaf:
		return "leaf"
	case NodeInternal:
		return "internal"
	case NodeRoot:
		return "root"
	default:
		return "unknown"
	}
}

// Classify reads the node type from a page's flags byte.
func Classify(page []byte) (NodeType, error) {
	flags := page[flagsOffset]
	switch t := NodeType(flags & typeMask); t {
	case NodeLeaf, NodeInternal, NodeRoot:
		return t, nil
	default:
		return NodeUnknown, &UnknownNodeTypeError{Flags: flags}
	}
}

// SetNodeType rewrites the type bits, leaving the reserved bits alone.
func SetNodeType(page []byte, t NodeType) {
	page[flagsOffset] = page[flagsOffset]&^typeMask | byte(t)&typeMask
}

func Parent(page []byte) uint64 {
	return binary.BigEndian.Uint64(page[parentOffset : parentOffset+parentSize])
}

func SetParent(page []byte, parent uint64) {
	binary.BigEndian.PutUint64(page[parentOffset:parentOffset+parentSize], parent)
}

// Node is a page interpreted through its header. It is a *LeafNode or an
// *InternalNode.
type Node interface {
	Page() int
	Type() NodeType
}

// Open classifies page index and wraps it in the matching node. Root pages of
// a single level tree carry the leaf layout.
func Open(pager *storage.Pager, index int) (Node, error) {
	ref, err := pager.Borrow(index)
	if err != nil {
		return nil, err
	}
	t, err := Classify(ref.Bytes())
	ref.Release()
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", index, err)
	}

	switch t {
	case NodeLeaf, NodeRoot:
		return &LeafNode{pager: pager, page: index, typ: t}, nil
	case NodeInternal:
		return &InternalNode{pager: pager, page: index}, nil
	default:
		return nil, fmt.Errorf("page %d: %w", index, &UnknownNodeTypeError{Flags: byte(t)})
	}
}

// OpenLeaf opens page index and fails unless it holds a leaf.
func OpenLeaf(pager *storage.Pager, index int) (*LeafNode, error) {
	node, err := Open(pager, index)
	if err != nil {
		return nil, err
	}

	switch n := node.(type) {
	case *LeafNode:
		return n, nil
	case *InternalNode:
		return nil, n.unsupported("leaf access")
	default:
		return nil, fmt.Errorf("%w: page %d is a %s node", ErrUnsupported, node.Page(), node.Type())
	}
}
