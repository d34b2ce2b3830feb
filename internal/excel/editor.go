package excel

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// defaultSheet is the sheet excelize puts into every new workbook.
const defaultSheet = "Sheet1"

type Editor struct {
	file     *excelize.File
	filepath string
	sheets   []string
	styles   *Styles
}

// CreateNewFile creates a new Excel file in memory
func CreateNewFile() *Editor {
	return &Editor{
		file: excelize.NewFile(),
	}
}

// OpenFile opens an existing Excel file. Like SaveAs it does not care about
// the file's extension or path length.
func OpenFile(filepath string) (*Editor, error) {
	r, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer r.Close()

	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return &Editor{
		file:     file,
		filepath: filepath,
		sheets:   file.GetSheetList(),
	}, nil
}

// AddSheet creates a new sheet. The first sheet added to a new workbook
// takes over the default "Sheet1" so no stray tab is left behind.
func (e *Editor) AddSheet(sheetName string) error {
	if len(e.sheets) == 0 && e.filepath == "" {
		if err := e.file.SetSheetName(defaultSheet, sheetName); err != nil {
			return fmt.Errorf("failed to rename default sheet to %s: %w", sheetName, err)
		}
	} else if _, err := e.file.NewSheet(sheetName); err != nil {
		return fmt.Errorf("failed to add sheet %s: %w", sheetName, err)
	}
	e.sheets = append(e.sheets, sheetName)
	return nil
}

// RegisterStyles creates the named cell formats for this workbook.
func (e *Editor) RegisterStyles() (*Styles, error) {
	if e.styles != nil {
		return e.styles, nil
	}
	styles, err := newStyles(e.file)
	if err != nil {
		return nil, err
	}
	e.styles = styles
	return styles, nil
}

// WriteCell writes value at a zero-based row/column and applies styleID.
func (e *Editor) WriteCell(sheet string, row, col int, value interface{}, styleID int) error {
	cell, err := CellName(row, col)
	if err != nil {
		return err
	}
	if err := e.file.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("failed to write cell %s!%s: %w", sheet, cell, err)
	}
	if err := e.file.SetCellStyle(sheet, cell, cell, styleID); err != nil {
		return fmt.Errorf("failed to style cell %s!%s: %w", sheet, cell, err)
	}
	return nil
}

// StyleRange applies styleID to the zero-based rectangle from (row1,col1) to (row2,col2).
func (e *Editor) StyleRange(sheet string, row1, col1, row2, col2, styleID int) error {
	from, err := CellName(row1, col1)
	if err != nil {
		return err
	}
	to, err := CellName(row2, col2)
	if err != nil {
		return err
	}
	if err := e.file.SetCellStyle(sheet, from, to, styleID); err != nil {
		return fmt.Errorf("failed to style range %s!%s:%s: %w", sheet, from, to, err)
	}
	return nil
}

// SetColumnWidth sets the width of a single zero-based column.
func (e *Editor) SetColumnWidth(sheet string, col int, width float64) error {
	name, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return fmt.Errorf("invalid column %d: %w", col, err)
	}
	if err := e.file.SetColWidth(sheet, name, name, width); err != nil {
		return fmt.Errorf("failed to set width of %s!%s: %w", sheet, name, err)
	}
	return nil
}

// ProtectSheet locks the sheet structure, leaving only row and column
// insertion and cell formatting open. No password is set.
func (e *Editor) ProtectSheet(sheet string) error {
	err := e.file.ProtectSheet(sheet, &excelize.SheetProtectionOptions{
		FormatCells:         true,
		InsertColumns:       true,
		InsertRows:          true,
		SelectLockedCells:   true,
		SelectUnlockedCells: true,
	})
	if err != nil {
		return fmt.Errorf("failed to protect sheet %s: %w", sheet, err)
	}
	return nil
}

// GetSheetNames returns all sheet names in the workbook
func (e *Editor) GetSheetNames() []string {
	return e.file.GetSheetList()
}

// GetAllRows returns all rows from a sheet
func (e *Editor) GetAllRows(sheet string) ([][]string, error) {
	return e.file.GetRows(sheet)
}

// GetCellValue returns the value at a zero-based row/column.
func (e *Editor) GetCellValue(sheet string, row, col int) (string, error) {
	cell, err := CellName(row, col)
	if err != nil {
		return "", err
	}
	return e.file.GetCellValue(sheet, cell)
}

// GetCellStyle returns the style index at a zero-based row/column.
func (e *Editor) GetCellStyle(sheet string, row, col int) (int, error) {
	cell, err := CellName(row, col)
	if err != nil {
		return 0, err
	}
	return e.file.GetCellStyle(sheet, cell)
}

// GetColumnWidth returns the width of a zero-based column.
func (e *Editor) GetColumnWidth(sheet string, col int) (float64, error) {
	name, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return 0, err
	}
	return e.file.GetColWidth(sheet, name)
}

// SaveAs writes the workbook to filepath whatever its extension or length.
// Errors from creating or writing the file are returned unwrapped.
func (e *Editor) SaveAs(filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	if err := e.file.Write(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	e.filepath = filepath
	return nil
}

// GetStyle returns the definition behind a style index.
func (e *Editor) GetStyle(styleID int) (*excelize.Style, error) {
	return e.file.GetStyle(styleID)
}

// Close closes the Excel file
func (e *Editor) Close() error {
	return e.file.Close()
}

// CellName converts zero-based row/column coordinates into an A1 reference.
func CellName(row, col int) (string, error) {
	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return "", fmt.Errorf("invalid cell (%d,%d): %w", row, col, err)
	}
	return name, nil
}
