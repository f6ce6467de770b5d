// Package report renders filtered transaction sets into files: a paginated
// PDF table, a single-sheet spreadsheet and PNG charts. Generators never read
// the ledger themselves; they format exactly the records they are given.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrNoData is wrapped by WriteError when a generator receives nothing to render.
var ErrNoData = errors.New("no transactions to generate a report")

// Columns is the header row shared by the tabular outputs.
var Columns = []string{"Date", "Type", "Category", "Amount"}

// WriteError is returned when a report file could not be produced.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write report %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// writeFile renders into a temporary sibling of path and renames it into place,
// so a failed render never leaves a partial file behind.
func writeFile(path string, render func(w io.Writer) error) error {
	if path == "" {
		return &WriteError{Path: path, Err: errors.New("destination path is empty")}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	renamed := false
	defer func() {
		if !renamed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err := render(tmp); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	renamed = true
	return nil
}
