package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV streams the table as UTF-8 CSV
func WriteCSV(w io.Writer, table *Table) error {
	if err := table.Validate(); err != nil {
		return err
	}

	writer := csv.NewWriter(w)

	if err := writer.Write(table.Header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range table.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("CSV writer error: %w", err)
	}

	return nil
}
