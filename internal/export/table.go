// Package export serializes answer sheet tables. Row building lives in the
// services package; the writers here only deal with encodings and files.
package export

import "fmt"

// Table is a header row plus data rows of equal width
type Table struct {
	Header []string
	Rows   [][]string
}

// Width is the number of columns every row must have
func (t *Table) Width() int {
	return len(t.Header)
}

// Validate checks that every row matches the header width
func (t *Table) Validate() error {
	for i, row := range t.Rows {
		if len(row) != len(t.Header) {
			return fmt.Errorf("row %d has %d columns, expected %d", i+1, len(row), len(t.Header))
		}
	}
	return nil
}
