package engine

import (
	"errors"

	"go.flakedb/internal/btree"
	"go.flakedb/internal/logger"
	"go.flakedb/internal/row"
	"go.flakedb/internal/storage"
)

// Database is a pager plus the tables stored in it. There is a single table
// with a fixed schema, rooted at page 0.
type Database struct {
	pager  *storage.Pager
	tables []Table
	log    *logger.Logger
}

// Open opens the database file at path, or an in-memory database when path
// is empty.
func Open(path string, log *logger.Logger) (*Database, error) {
	if log == nil {
		log = logger.Discard()
	}

	pager, err := storage.Open(path, log)
	if err != nil {
		return nil, err
	}

	db := &Database{pager: pager, log: log}
	db.createTable()
	return db, nil
}

func (db *Database) createTable() {
	if len(db.tables) == 0 {
		db.tables = append(db.tables, Table{root: 0})
	}
}

func (db *Database) table() Table {
	return db.tables[0]
}

// Insert appends r to the table. A full table returns a *TableFullError.
func (db *Database) Insert(r row.Validated) error {
	err := db.table().insert(db.pager, r)
	if errors.Is(err, btree.ErrPageFull) {
		return &TableFullError{MaxRows: btree.MaxCells, Err: err}
	}
	return err
}

// Select returns the table's rows in slot order.
func (db *Database) Select() (*Results, error) {
	return db.table().selectAll(db.pager)
}

// Rows collects every row of the table.
func (db *Database) Rows() ([]row.Validated, error) {
	res, err := db.Select()
	if err != nil {
		return nil, err
	}

	var rows []row.Validated
	for {
		r, ok, err := res.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return rows, nil
		}
		rows = append(rows, r)
	}
}

// TreeString renders the table's tree, as shown by .btree.
func (db *Database) TreeString() (string, error) {
	return btree.Render(db.pager, db.table().root)
}

// Pages digests every page the database has touched so far.
func (db *Database) Pages() []storage.PageDigest {
	return db.pager.Digests()
}

// Close writes the touched pages back and closes the file.
func (db *Database) Close() error {
	return db.pager.Close()
}
