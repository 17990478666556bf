package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"

	"regions/internal/models"
)

// WriteCSV writes the enriched table to path. Rows go to a temporary file in
// the same directory which is renamed over path once complete, so a failed
// write never leaves a partial file behind.
func WriteCSV(path string, table *models.EnrichedTable) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if err = encode(tmp, table); err != nil {
		err = multierr.Append(err, tmp.Close())
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}

func encode(f *os.File, table *models.EnrichedTable) error {
	w := csv.NewWriter(f)
	if err := w.Write(table.Header()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i := 0; i < table.Len(); i++ {
		if err := w.Write(table.Values(i)); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
