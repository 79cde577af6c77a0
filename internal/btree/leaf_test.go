package btree

import (
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"go.flakedb/internal/row"
	"go.flakedb/internal/storage"
)

func newTestPager(t *testing.T) *storage.Pager {
	t.Helper()

	pager, err := storage.Open("", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pager.Close() })
	return pager
}

func newTestLeaf(t *testing.T) (*LeafNode, *storage.Pager) {
	t.Helper()

	pager := newTestPager(t)
	leaf, err := OpenLeaf(pager, 0)
	require.NoError(t, err)
	return leaf, pager
}

func testRow(t *testing.T, id int) row.Validated {
	t.Helper()

	r, err := row.Input{
		ID:       fmt.Sprint(id),
		Username: fmt.Sprintf("user%d", id),
		Email:    fmt.Sprintf("user%d@example.com", id),
	}.Validate()
	require.NoError(t, err)
	return r
}

func setFlags(t *testing.T, pager *storage.Pager, page int, flags byte) {
	t.Helper()

	ref, err := pager.BorrowMut(page)
	require.NoError(t, err)
	ref.Bytes()[0] = flags
	ref.Release()
}

func leafKeys(t *testing.T, leaf *LeafNode) []uint64 {
	t.Helper()

	num, err := leaf.NumCells()
	require.NoError(t, err)

	keys := make([]uint64, 0, num)
	for i := 0; i < num; i++ {
		e, err := leaf.Entry(i)
		require.NoError(t, err)
		k, err := e.Key()
		require.NoError(t, err)
		keys = append(keys, k)
	}
	return keys
}

func TestLayoutConstants(t *testing.T) {
	require.Equal(t, 9, CommonHeaderSize)
	require.Equal(t, 17, LeafHeaderSize)
	require.Equal(t, 297, CellSize)
	require.Equal(t, 4079, SpaceForCells)
	require.Equal(t, 13, MaxCells)
}

func TestClassify(t *testing.T) {
	page := make([]byte, storage.PageSize)

	cases := map[byte]NodeType{
		0x00: NodeLeaf,
		0x01: NodeInternal,
		0x02: NodeRoot,
		0xFC: NodeLeaf, // reserved bits are ignored
		0x81: NodeInternal,
	}
	for flags, want := range cases {
		page[0] = flags
		got, err := Classify(page)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	for _, flags := range []byte{0x03, 0xFF} {
		page[0] = flags
		got, err := Classify(page)
		require.Equal(t, NodeUnknown, got)
		require.ErrorIs(t, err, ErrCorruptPage)

		var unk *UnknownNodeTypeError
		require.ErrorAs(t, err, &unk)
		require.Equal(t, flags, unk.Flags)
	}
}

func TestHeaderHelpers(t *testing.T) {
	page := make([]byte, storage.PageSize)
	page[0] = 0xF0

	SetNodeType(page, NodeRoot)
	require.Equal(t, byte(0xF2), page[0])

	SetParent(page, 42)
	require.Equal(t, uint64(42), Parent(page))
	require.Equal(t, uint64(42), binary.BigEndian.Uint64(page[1:9]))
}

func TestOpen_CorruptPageIsAnError(t *testing.T) {
	pager := newTestPager(t)
	setFlags(t, pager, 0, 0x03)

	require.NotPanics(t, func() {
		_, err := Open(pager, 0)
		require.ErrorIs(t, err, ErrCorruptPage)
		require.Contains(t, err.Error(), "page 0")
	})

	_, err := Start(pager, 0)
	require.ErrorIs(t, err, ErrCorruptPage)
}

func TestOpen_RootCarriesLeafLayout(t *testing.T) {
	pager := newTestPager(t)
	setFlags(t, pager, 0, byte(NodeRoot))

	node, err := Open(pager, 0)
	require.NoError(t, err)
	require.Equal(t, NodeRoot, node.Type())

	leaf, ok := node.(*LeafNode)
	require.True(t, ok)
	require.NoError(t, leaf.Insert(0, 1, testRow(t, 1)))
	require.Equal(t, []uint64{1}, leafKeys(t, leaf))
}

func TestInternalNodeIsUnsupported(t *testing.T) {
	pager := newTestPager(t)
	setFlags(t, pager, 0, byte(NodeInternal))

	node, err := Open(pager, 0)
	require.NoError(t, err)
	internal, ok := node.(*InternalNode)
	require.True(t, ok)

	_, err = internal.NumKeys()
	require.ErrorIs(t, err, ErrUnsupported)
	_, err = internal.Child(0)
	require.ErrorIs(t, err, ErrUnsupported)
	_, err = internal.Search(1)
	require.ErrorIs(t, err, ErrUnsupported)
	require.ErrorIs(t, internal.Insert(1, testRow(t, 1)), ErrUnsupported)

	_, err = OpenLeaf(pager, 0)
	require.ErrorIs(t, err, ErrUnsupported)
	_, err = Start(pager, 0)
	require.ErrorIs(t, err, ErrUnsupported)
	_, err = End(pager, 0)
	require.ErrorIs(t, err, ErrUnsupported)
	_, err = Seek(pager, 0, 1)
	require.ErrorIs(t, err, ErrUnsupported)
	_, err = Render(pager, 0)
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestLeaf_AppendAndEntry(t *testing.T) {
	leaf, _ := newTestLeaf(t)

	empty, err := leaf.IsEmpty()
	require.NoError(t, err)
	require.True(t, empty)

	for i := 0; i < 5; i++ {
		require.NoError(t, leaf.Insert(i, uint64(i+1), testRow(t, i+1)))
	}
	require.Equal(t, []uint64{1, 2, 3, 4, 5}, leafKeys(t, leaf))

	e, err := leaf.Entry(2)
	require.NoError(t, err)
	require.Equal(t, 2, e.Index())
	r, err := e.Row()
	require.NoError(t, err)
	require.Equal(t, "3,user3,user3@example.com", r.String())
}

func TestLeaf_Capacity(t *testing.T) {
	leaf, _ := newTestLeaf(t)

	for i := 0; i < MaxCells; i++ {
		require.NoError(t, leaf.Insert(i, uint64(i), testRow(t, i)))
	}

	num, err := leaf.NumCells()
	require.NoError(t, err)
	require.Equal(t, MaxCells, num)

	err = leaf.Insert(MaxCells, 99, testRow(t, 99))
	require.ErrorIs(t, err, ErrPageFull)

	err = leaf.Insert(0, 99, testRow(t, 99))
	require.ErrorIs(t, err, ErrPageFull)

	num, err = leaf.NumCells()
	require.NoError(t, err)
	require.Equal(t, MaxCells, num)
}

// Inserting in the middle must move every later cell intact.
func TestLeaf_InsertMiddleShiftsWithoutClobbering(t *testing.T) {
	leaf, _ := newTestLeaf(t)

	for i, id := range []int{10, 20, 30, 40, 50} {
		require.NoError(t, leaf.Insert(i, uint64(id), testRow(t, id)))
	}

	require.NoError(t, leaf.Insert(2, 25, testRow(t, 25)))
	require.NoError(t, leaf.Insert(0, 5, testRow(t, 5)))
	require.NoError(t, leaf.Insert(7, 60, testRow(t, 60)))

	want := []int{5, 10, 20, 25, 30, 40, 50, 60}
	require.Equal(t, len(want), len(leafKeys(t, leaf)))

	for i, id := range want {
		e, err := leaf.Entry(i)
		require.NoError(t, err)

		k, err := e.Key()
		require.NoError(t, err)
		require.Equal(t, uint64(id), k)

		r, err := e.Row()
		require.NoError(t, err)
		require.Equal(t, testRow(t, id), r)
	}
}

func TestLeaf_OutOfBoundsPanics(t *testing.T) {
	leaf, _ := newTestLeaf(t)
	require.NoError(t, leaf.Insert(0, 1, testRow(t, 1)))

	require.PanicsWithValue(t, "attempted to access out of bounds cell 1 (1 cells in page)", func() {
		_, _ = leaf.Entry(1)
	})
	require.Panics(t, func() {
		_ = leaf.Insert(3, 2, testRow(t, 2))
	})
	require.Panics(t, func() {
		_ = leaf.SetNumCells(MaxCells + 1)
	})
}

func TestLeaf_CorruptCellCount(t *testing.T) {
	leaf, pager := newTestLeaf(t)

	ref, err := pager.BorrowMut(0)
	require.NoError(t, err)
	putNumCells(ref.Bytes(), MaxCells+1)
	ref.Release()

	_, err = leaf.NumCells()
	require.ErrorIs(t, err, ErrCorruptPage)

	require.NoError(t, leaf.SetNumCells(0))
	empty, err := leaf.IsEmpty()
	require.NoError(t, err)
	require.True(t, empty)
}

func TestEntry_SetKeyAndValueMut(t *testing.T) {
	leaf, _ := newTestLeaf(t)
	require.NoError(t, leaf.Insert(0, 1, testRow(t, 1)))

	e, err := leaf.Entry(0)
	require.NoError(t, err)
	require.NoError(t, e.SetKey(77))

	v, err := e.ValueMut()
	require.NoError(t, err)
	testRow(t, 77).Write(v.Bytes())
	require.Len(t, v.Bytes(), ValueSize)
	v.Release()

	k, err := e.Key()
	require.NoError(t, err)
	require.Equal(t, uint64(77), k)

	r, err := e.Row()
	require.NoError(t, err)
	require.Equal(t, testRow(t, 77), r)
}

func TestRender(t *testing.T) {
	leaf, pager := newTestLeaf(t)

	out, err := Render(pager, 0)
	require.NoError(t, err)
	require.Equal(t, "- leaf (size 0)\n", out)

	for i, id := range []int{3, 1, 2} {
		require.NoError(t, leaf.Insert(i, uint64(id), testRow(t, id)))
	}

	out, err = Render(pager, 0)
	require.NoError(t, err)
	require.Equal(t, "- leaf (size 3)\n  - 3\n  - 1\n  - 2\n", out)
}
