package engine

import (
	"fmt"
	"os"

	"go.flakedb/internal/logger"
)

// Create writes a new database file at path holding one empty root page.
// It fails if the file already exists.
func Create(path string, log *logger.Logger) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !os.IsNotExist(err) {
		return err
	}

	db, err := Open(path, log)
	if err != nil {
		return err
	}

	// touching the root is enough for Close to write it out
	if _, err := db.TreeString(); err != nil {
		_ = db.Close()
		return err
	}
	return db.Close()
}
