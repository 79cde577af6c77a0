package engine

import (
	"go.flakedb/internal/btree"
	"go.flakedb/internal/row"
	"go.flakedb/internal/storage"
)

// Constant is one layout constant, as listed by .constants.
type Constant struct {
	Group string
	Name  string
	Value int
}

func Constants() []Constant {
	return []Constant{
		{Group: "pager", Name: "PAGE_SIZE", Value: storage.PageSize},
		{Group: "pager", Name: "MAX_PAGES", Value: storage.MaxPages},
		{Group: "row", Name: "ROW_SIZE", Value: row.Size},
		{Group: "leaf", Name: "HEADER_SIZE", Value: btree.LeafHeaderSize},
		{Group: "leaf", Name: "PAGE_SPACE_FOR_CELLS", Value: btree.SpaceForCells},
		{Group: "leaf", Name: "CELL_SIZE", Value: btree.CellSize},
		{Group: "leaf", Name: "MAX_CELLS_PER_PAGE", Value: btree.MaxCells},
	}
}
