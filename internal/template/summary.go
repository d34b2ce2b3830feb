package template

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#0D5BA6")).
			Padding(0, 1)
	sheetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")).
			PaddingLeft(2)
	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	pathStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))
)

// RenderSummary describes the sheets written to path for the terminal.
func RenderSummary(path string, sheets []SheetSummary) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Oil & Gas Analysis Template"))
	b.WriteString("\n\n")

	width := 0
	for _, sheet := range sheets {
		if len(sheet.Name) > width {
			width = len(sheet.Name)
		}
	}

	for _, sheet := range sheets {
		name := fmt.Sprintf("✓ %-*s", width, sheet.Name)
		b.WriteString(sheetStyle.Render(name))
		b.WriteString(" ")
		b.WriteString(countStyle.Render(fmt.Sprintf("%d labels", sheet.Labels)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d sheets written to %s\n", len(sheets), pathStyle.Render(path)))
	return b.String()
}
