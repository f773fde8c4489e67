package export

import (
	"io"
	"os"
	"path/filepath"

	"github.com/kilianp07/genrel/core/model"
)

// WriteCSVFile writes the table to path, creating parent directories.
func WriteCSVFile(path string, table model.Table) error {
	return writeFile(path, func(w io.Writer) error { return WriteCSV(w, table) })
}

// WriteJSONFile writes the run to path, creating parent directories.
func WriteJSONFile(path string, run model.Run) error {
	return writeFile(path, func(w io.Writer) error { return WriteJSON(w, run) })
}

func writeFile(path string, fn func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
