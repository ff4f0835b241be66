package export

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteCSVFile writes the table to dir/name. The file is written under a
// temporary name and renamed, so readers never see a partial export.
func WriteCSVFile(dir, name string, table *Table) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := WriteCSV(tmp, table); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close export file: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("failed to move export file into place: %w", err)
	}

	return path, nil
}
