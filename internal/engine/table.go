package engine

import (
	"go.flakedb/internal/btree"
	"go.flakedb/internal/row"
	"go.flakedb/internal/storage"
)

type Table struct {
	root int
}

func (t Table) Root() int {
	return t.root
}

// Rows are appended in arrival order, keys are not kept sorted.
func (t Table) insert(pager *storage.Pager, r row.Validated) error {
	cursor, err := btree.End(pager, t.root)
	if err != nil {
		return err
	}
	return cursor.Insert(r.Key(), r)
}

func (t Table) selectAll(pager *storage.Pager) (*Results, error) {
	cursor, err := btree.Start(pager, t.root)
	if err != nil {
		return nil, err
	}
	return &Results{cursor: cursor}, nil
}

// Results is a single pass over the rows of a table.
type Results struct {
	cursor *btree.Cursor
}

func (res *Results) Next() (row.Validated, bool, error) {
	v, ok, err := res.cursor.Next()
	if err != nil || !ok {
		return row.Validated{}, false, err
	}
	defer v.Release()
	return v.Row(), true, nil
}
