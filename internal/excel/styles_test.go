package excel

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// hasColor compares an RGB colour ignoring case and any alpha prefix.
func hasColor(t *testing.T, want, got string) {
	t.Helper()
	assert.True(t, strings.HasSuffix(strings.ToUpper(got), want), "colour %q, want %s", got, want)
}

func assertThinBorders(t *testing.T, style *excelize.Style) {
	t.Helper()
	require.Len(t, style.Border, 4)
	sides := make(map[string]bool)
	for _, border := range style.Border {
		assert.Equal(t, 1, border.Style, border.Type)
		sides[border.Type] = true
	}
	for _, side := range []string{"left", "top", "right", "bottom"} {
		assert.True(t, sides[side], side)
	}
}

func TestStylesSurviveSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles.xlsx")

	editor := CreateNewFile()
	require.NoError(t, editor.AddSheet("Company Input"))
	styles, err := editor.RegisterStyles()
	require.NoError(t, err)
	require.NoError(t, editor.WriteCell("Company Input", 0, 0, "Metric", styles.Header))
	require.NoError(t, editor.WriteCell("Company Input", 1, 0, "Reserves", styles.Subheader))
	require.NoError(t, editor.StyleRange("Company Input", 2, 0, 2, 0, styles.Number))
	require.NoError(t, editor.StyleRange("Company Input", 3, 0, 3, 0, styles.Percent))
	require.NoError(t, editor.StyleRange("Company Input", 4, 0, 4, 0, styles.Border))
	require.NoError(t, editor.SaveAs(path))
	require.NoError(t, editor.Close())

	reopened, err := OpenFile(path)
	require.NoError(t, err)
	defer reopened.Close()

	styleAt := func(row int) *excelize.Style {
		id, err := reopened.GetCellStyle("Company Input", row, 0)
		require.NoError(t, err)
		style, err := reopened.GetStyle(id)
		require.NoError(t, err)
		return style
	}

	header := styleAt(0)
	require.NotNil(t, header.Font)
	assert.True(t, header.Font.Bold)
	hasColor(t, HeaderFont, header.Font.Color)
	assert.Equal(t, "pattern", header.Fill.Type)
	require.NotEmpty(t, header.Fill.Color)
	hasColor(t, HeaderFill, header.Fill.Color[0])
	assertThinBorders(t, header)
	require.NotNil(t, header.Alignment)
	assert.Equal(t, "center", header.Alignment.Horizontal)

	subheader := styleAt(1)
	require.NotNil(t, subheader.Font)
	assert.True(t, subheader.Font.Bold)
	require.NotEmpty(t, subheader.Fill.Color)
	hasColor(t, SubheaderFill, subheader.Fill.Color[0])
	assertThinBorders(t, subheader)

	number := styleAt(2)
	assert.Equal(t, numFmtThousands, number.NumFmt)
	assertThinBorders(t, number)

	percent := styleAt(3)
	assert.Equal(t, numFmtPercent, percent.NumFmt)
	assertThinBorders(t, percent)

	plain := styleAt(4)
	assert.Zero(t, plain.NumFmt)
	assertThinBorders(t, plain)
}
