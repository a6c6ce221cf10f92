package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Decode reads an uploaded table. Files named *.xlsx are read as workbooks
// (first sheet); anything else is read as CSV. The first row is the header.
// Blank rows are dropped.
func Decode(name string, r io.Reader) (*Table, error) {
	var (
		records [][]string
		err     error
	)
	if strings.EqualFold(filepath.Ext(name), ".xlsx") {
		records, err = readWorkbook(r)
	} else {
		records, err = readCSV(r)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseableFile, err)
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		if !blank(rec) {
			rows = append(rows, rec)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: missing header row", ErrUnparseableFile)
	}

	header := rows[0]
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}
	return NewTable(header, rows[1:]), nil
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return records, nil
}

func readWorkbook(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}
