package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const SheetName = "Answer Sheets"

// WriteXLSX writes the table as a single sheet workbook
func WriteXLSX(w io.Writer, table *Table) error {
	if err := table.Validate(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name Excel sheet: %w", err)
	}

	if err := setRow(f, 1, table.Header); err != nil {
		return fmt.Errorf("failed to write Excel header: %w", err)
	}
	for i, row := range table.Rows {
		if err := setRow(f, i+2, row); err != nil {
			return fmt.Errorf("failed to write Excel row %d: %w", i+1, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return f.SetSheetRow(SheetName, cell, &row)
}
