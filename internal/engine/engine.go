package engine

import (
	"fmt"
	"io"

	"go.flakedb/internal/sql"
)

// Execute runs stmt against the database. Select writes one
// id,username,email line per row to w.
func (db *Database) Execute(stmt sql.Statement, w io.Writer) error {
	db.log.Debugf("executing %s", stmt)

	switch stmt.Kind {
	case sql.None:
		return nil

	case sql.Insert:
		r, err := stmt.Row.Validate()
		if err != nil {
			return sql.ExecutionError(err)
		}
		return db.Insert(r)

	case sql.Select:
		res, err := db.Select()
		if err != nil {
			return err
		}
		for {
			r, ok, err := res.Next()
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			if _, err := fmt.Fprintln(w, r); err != nil {
				return err
			}
		}

	default:
		return fmt.Errorf("%w: unknown statement kind %d", sql.ErrExecution, int(stmt.Kind))
	}
}
