package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	HeaderFill    = "0D5BA6"
	HeaderFont    = "FFFFFF"
	SubheaderFill = "C5D9F1"

	// built-in excelize number formats
	numFmtThousands = 4  // #,##0.00
	numFmtPercent   = 10 // 0.00%
)

// Styles holds the style indexes of the named cell formats of one workbook.
type Styles struct {
	Header    int
	Subheader int
	Number    int
	Percent   int
	Border    int
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}

type namedStyle struct {
	name  string
	style *excelize.Style
}

// styleDefinitions is ordered so every workbook gets the same style indexes.
func styleDefinitions() []namedStyle {
	return []namedStyle{
		{"header", &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: HeaderFont},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{HeaderFill}, Pattern: 1},
			Border:    thinBorder(),
			Alignment: &excelize.Alignment{Horizontal: "center"},
		}},
		{"subheader", &excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{SubheaderFill}, Pattern: 1},
			Border:    thinBorder(),
			Alignment: &excelize.Alignment{Horizontal: "center"},
		}},
		{"number", &excelize.Style{
			NumFmt: numFmtThousands,
			Border: thinBorder(),
		}},
		{"percent", &excelize.Style{
			NumFmt: numFmtPercent,
			Border: thinBorder(),
		}},
		{"border", &excelize.Style{
			Border: thinBorder(),
		}},
	}
}

func newStyles(file *excelize.File) (*Styles, error) {
	defs := styleDefinitions()
	ids := make(map[string]int, len(defs))
	for _, def := range defs {
		id, err := file.NewStyle(def.style)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s style: %w", def.name, err)
		}
		ids[def.name] = id
	}
	return &Styles{
		Header:    ids["header"],
		Subheader: ids["subheader"],
		Number:    ids["number"],
		Percent:   ids["percent"],
		Border:    ids["border"],
	}, nil
}
