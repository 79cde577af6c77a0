package cli

import (
	"fmt"

	"go.flakedb/internal/engine"
)

// openDatabase opens a database by name or path. An empty arg opens an
// in-memory database.
func openDatabase(arg string) (*engine.Database, error) {
	path := arg
	if arg != "" {
		path = cfg.DatabasePath(arg)
	}

	db, err := engine.Open(path, log)
	if err != nil {
		return nil, fmt.Errorf("Failed to open Database: %w", err)
	}
	if path != "" {
		log.Infof("opened database %s", path)
	}
	return db, nil
}
