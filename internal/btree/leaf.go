package btree

import (
	"encoding/binary"
	"fmt"

	"go.flakedb/internal/row"
	"go.flakedb/internal/storage"
)

// Leaf layout: [common header][num_cells:8][cell 0]...[cell n], cell = [key:8][row]
const (
	numCellsSize   = 8
	numCellsOffset = CommonHeaderSize

	LeafHeaderSize = CommonHeaderSize + numCellsSize

	KeySize   = 8
	ValueSize = row.Size
	CellSize  = KeySize + ValueSize

	SpaceForCells = storage.PageSize - LeafHeaderSize
	MaxCells      = SpaceForCells / CellSize
)

func cellOffset(index int) int {
	return LeafHeaderSize + index*CellSize
}

func keyOffset(index int) int {
	return cellOffset(index)
}

func valueOffset(index int) int {
	return cellOffset(index) + KeySize
}

type LeafNode struct {
	pager *storage.Pager
	page  int
	typ   NodeType
}

func (n *LeafNode) Page() int {
	return n.page
}

func (n *LeafNode) Type() NodeType {
	return n.typ
}

func readNumCells(data []byte) uint64 {
	return binary.BigEndian.Uint64(data[numCellsOffset : numCellsOffset+numCellsSize])
}

func putNumCells(data []byte, n int) {
	binary.BigEndian.PutUint64(data[numCellsOffset:numCellsOffset+numCellsSize], uint64(n))
}

func (n *LeafNode) NumCells() (int, error) {
	ref, err := n.pager.Borrow(n.page)
	if err != nil {
		return 0, err
	}
	defer ref.Release()

	num := readNumCells(ref.Bytes())
	if num > MaxCells {
		return 0, fmt.Errorf("page %d: %w: cell count %d exceeds %d", n.page, ErrCorruptPage, num, MaxCells)
	}
	return int(num), nil
}

func (n *LeafNode) SetNumCells(num int) error {
	if num < 0 || num > MaxCells {
		panic(fmt.Sprintf("cell count %d out of range (max %d)", num, MaxCells))
	}

	ref, err := n.pager.BorrowMut(n.page)
	if err != nil {
		return err
	}
	defer ref.Release()

	putNumCells(ref.Bytes(), num)
	return nil
}

func (n *LeafNode) IsEmpty() (bool, error) {
	num, err := n.NumCells()
	return num == 0, err
}

// Entry returns the cell at index. An index past the last cell is a
// programming error and panics.
func (n *LeafNode) Entry(index int) (Entry, error) {
	num, err := n.NumCells()
	if err != nil {
		return Entry{}, err
	}
	if index < 0 || index >= num {
		panic(fmt.Sprintf("attempted to access out of bounds cell %d (%d cells in page)", index, num))
	}
	return Entry{node: n, index: index}, nil
}

// Insert places (key, r) at cell index, moving the cells at and after index up
// by one. A full page returns ErrPageFull.
func (n *LeafNode) Insert(index int, key uint64, r row.Validated) error {
	num, err := n.NumCells()
	if err != nil {
		return err
	}
	if num >= MaxCells {
		return fmt.Errorf("page %d: %w (max %d cells)", n.page, ErrPageFull, MaxCells)
	}
	if index < 0 || index > num {
		panic(fmt.Sprintf("attempted to insert at cell %d (%d cells in page)", index, num))
	}

	ref, err := n.pager.BorrowMut(n.page)
	if err != nil {
		return err
	}
	defer ref.Release()
	data := ref.Bytes()

	// make room first, copy handles the overlap the way memmove does
	if index < num {
		copy(data[cellOffset(index+1):cellOffset(num+1)], data[cellOffset(index):cellOffset(num)])
	}

	binary.BigEndian.PutUint64(data[keyOffset(index):keyOffset(index)+KeySize], key)
	r.Write(data[valueOffset(index) : valueOffset(index)+ValueSize])
	putNumCells(data, num+1)
	return nil
}

// Entry addresses one cell of a leaf. It holds the pager, not a page view, so
// it stays usable while other views of the page come and go.
type Entry struct {
	node  *LeafNode
	index int
}

func (e Entry) Index() int {
	return e.index
}

func (e Entry) Key() (uint64, error) {
	ref, err := e.node.pager.Borrow(e.node.page)
	if err != nil {
		return 0, err
	}
	defer ref.Release()

	off := keyOffset(e.index)
	return binary.BigEndian.Uint64(ref.Bytes()[off : off+KeySize]), nil
}

func (e Entry) SetKey(key uint64) error {
	ref, err := e.node.pager.BorrowMut(e.node.page)
	if err != nil {
		return err
	}
	defer ref.Release()

	off := keyOffset(e.index)
	binary.BigEndian.PutUint64(ref.Bytes()[off:off+KeySize], key)
	return nil
}

// Value returns a shared view of the cell's row bytes. The caller releases it.
func (e Entry) Value() (*ValueRef, error) {
	ref, err := e.node.pager.Borrow(e.node.page)
	if err != nil {
		return nil, err
	}
	return &ValueRef{ref: ref, offset: valueOffset(e.index)}, nil
}

// ValueMut returns an exclusive view of the cell's row bytes.
func (e Entry) ValueMut() (*ValueRefMut, error) {
	ref, err := e.node.pager.BorrowMut(e.node.page)
	if err != nil {
		return nil, err
	}
	return &ValueRefMut{ref: ref, offset: valueOffset(e.index)}, nil
}

// Row decodes the cell's row.
func (e Entry) Row() (row.Validated, error) {
	v, err := e.Value()
	if err != nil {
		return row.Validated{}, err
	}
	defer v.Release()
	return v.Row(), nil
}

type ValueRef struct {
	ref    *storage.PageRef
	offset int
}

func (v *ValueRef) Bytes() []byte {
	end := v.offset + ValueSize
	return v.ref.Bytes()[v.offset:end:end]
}

func (v *ValueRef) Row() row.Validated {
	return row.Read(v.Bytes())
}

func (v *ValueRef) Release() {
	v.ref.Release()
}

type ValueRefMut struct {
	ref    *storage.PageRefMut
	offset int
}

func (v *ValueRefMut) Bytes() []byte {
	end := v.offset + ValueSize
	return v.ref.Bytes()[v.offset:end:end]
}

func (v *ValueRefMut) Release() {
	v.ref.Release()
}
