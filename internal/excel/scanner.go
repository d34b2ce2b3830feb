package excel

import (
	"fmt"
)

// SheetScan is what a workbook sheet holds after it was written.
type SheetScan struct {
	Name string
	Rows [][]string
}

// Cell returns the value at a zero-based row/column, or "" if out of range.
func (s SheetScan) Cell(row, col int) string {
	if row < 0 || row >= len(s.Rows) || col < 0 || col >= len(s.Rows[row]) {
		return ""
	}
	return s.Rows[row][col]
}

// Labels counts the non-empty cells of the sheet.
func (s SheetScan) Labels() int {
	count := 0
	for _, row := range s.Rows {
		for _, value := range row {
			if value != "" {
				count++
			}
		}
	}
	return count
}

// ScanWorkbook opens the workbook at path and returns every sheet with its
// rows, in tab order.
func ScanWorkbook(path string) ([]SheetScan, error) {
	editor, err := OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer editor.Close()

	var scans []SheetScan
	for _, sheetName := range editor.GetSheetNames() {
		rows, err := editor.GetAllRows(sheetName)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", sheetName, err)
		}
		scans = append(scans, SheetScan{Name: sheetName, Rows: rows})
	}
	return scans, nil
}
