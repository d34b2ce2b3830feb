package template

import (
	"fmt"

	"ogTemplate/internal/excel"
	"ogTemplate/internal/logger"
)

// Filename returns name, or DefaultFilename when name is empty.
func Filename(name string) string {
	if name == "" {
		return DefaultFilename
	}
	return name
}

// CreateBlankTemplate writes the analysis workbook to filename, or to
// DefaultFilename when none is given.
func CreateBlankTemplate(filename ...string) error {
	path := DefaultFilename
	if len(filename) > 0 {
		path = Filename(filename[0])
	}

	logger.Info("Building workbook template", "path", path)

	editor, err := Build()
	if err != nil {
		return err
	}
	defer editor.Close()

	if err := editor.SaveAs(path); err != nil {
		return fmt.Errorf("%w: failed to save %s: %w", ErrWriteFailed, path, err)
	}

	logger.Info("Workbook template saved", "path", path, "sheets", len(editor.GetSheetNames()))
	return nil
}

// Build lays out every sheet in an in-memory workbook. The caller owns the
// returned editor and must Close it.
func Build() (*excel.Editor, error) {
	editor := excel.CreateNewFile()

	styles, err := editor.RegisterStyles()
	if err != nil {
		editor.Close()
		return nil, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	for _, sheet := range Layout() {
		if err := buildSheet(editor, styles, sheet); err != nil {
			editor.Close()
			return nil, fmt.Errorf("%w: %w", ErrWriteFailed, err)
		}
		logger.Debug("Built sheet", "sheet", sheet.Name)
	}
	return editor, nil
}

func buildSheet(editor *excel.Editor, styles *excel.Styles, sheet SheetLayout) error {
	if err := editor.AddSheet(sheet.Name); err != nil {
		return err
	}

	var err error
	switch sheet.Kind {
	case KindTable:
		err = writeTable(editor, styles, sheet)
	case KindSections:
		err = writeSections(editor, styles, sheet)
	case KindMatrix:
		err = writeMatrix(editor, styles, sheet)
	default:
		err = fmt.Errorf("sheet %s has unknown layout kind %d", sheet.Name, sheet.Kind)
	}
	if err != nil {
		return err
	}

	return editor.ProtectSheet(sheet.Name)
}

func writeTable(editor *excel.Editor, styles *excel.Styles, sheet SheetLayout) error {
	if err := editor.WriteCell(sheet.Name, 0, 0, sheet.Title, styles.Header); err != nil {
		return err
	}
	for col, label := range sheet.Columns {
		if err := editor.WriteCell(sheet.Name, 1, col, label, styles.Subheader); err != nil {
			return err
		}
		if sheet.ColumnWidth > 0 {
			if err := editor.SetColumnWidth(sheet.Name, col, sheet.ColumnWidth); err != nil {
				return err
			}
		}
		if err := styleEntryColumn(editor, styles, sheet.Name, 2, col, label); err != nil {
			return err
		}
	}
	return nil
}

func writeSections(editor *excel.Editor, styles *excel.Styles, sheet SheetLayout) error {
	row := 0
	for _, section := range sheet.Sections {
		if err := editor.WriteCell(sheet.Name, row, 0, section.Title, styles.Header); err != nil {
			return err
		}
		labels := append([]string{"Company"}, section.Metrics...)
		for col, label := range labels {
			if err := editor.WriteCell(sheet.Name, row+1, col, label, styles.Subheader); err != nil {
				return err
			}
			if err := styleEntryColumn(editor, styles, sheet.Name, row+2, col, label); err != nil {
				return err
			}
		}
		row += sectionSpacing
	}
	return nil
}

func writeMatrix(editor *excel.Editor, styles *excel.Styles, sheet SheetLayout) error {
	if err := editor.WriteCell(sheet.Name, 0, 0, sheet.Title, styles.Header); err != nil {
		return err
	}
	for col, label := range sheet.Columns {
		if err := editor.WriteCell(sheet.Name, 1, col, label, styles.Subheader); err != nil {
			return err
		}
	}
	lastCol := len(sheet.Columns) - 1
	for i, metric := range sheet.RowLabels {
		row := i + 2
		if err := editor.WriteCell(sheet.Name, row, 0, metric, styles.Border); err != nil {
			return err
		}
		if lastCol < 1 {
			continue
		}
		if err := editor.StyleRange(sheet.Name, row, 1, row, lastCol, entryStyle(styles, metric)); err != nil {
			return err
		}
	}
	return nil
}

// styleEntryColumn formats the blank company rows starting at firstRow
// under the label in col.
func styleEntryColumn(editor *excel.Editor, styles *excel.Styles, sheet string, firstRow, col int, label string) error {
	return editor.StyleRange(sheet, firstRow, col, firstRow+companySlots-1, col, entryStyle(styles, label))
}

func entryStyle(styles *excel.Styles, label string) int {
	switch formatFor(label) {
	case formatPercent:
		return styles.Percent
	case formatNumber:
		return styles.Number
	default:
		return styles.Border
	}
}
