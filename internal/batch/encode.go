package batch

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet written by WriteXLSX.
const SheetName = "results"

// WriteCSV writes the header and rows in table order.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("batch: failed to write header: %w", err)
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("batch: failed to write rows: %w", err)
	}
	return nil
}

// WriteXLSX writes the table to a single-sheet workbook, cells as text.
func WriteXLSX(w io.Writer, t *Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("batch: failed to name sheet: %w", err)
	}

	if err := writeSheetRow(f, 1, t.Columns); err != nil {
		return err
	}
	for i, row := range t.Rows {
		if err := writeSheetRow(f, i+2, row); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("batch: failed to write workbook: %w", err)
	}
	return nil
}

func writeSheetRow(f *excelize.File, row int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("batch: failed to write row %d: %w", row, err)
	}
	return nil
}
