package template

import "strings"

const (
	DefaultFilename = "oil_gas_analysis_template.xlsx"

	columnWidth    = 15
	sectionSpacing = 8
	// companySlots is the number of empty pre-formatted rows under each header row.
	// Sheets are protected, so typing into them needs the protection removed.
	companySlots = 5
)

// Kind selects how a sheet's labels are laid out.
type Kind int

const (
	// KindTable is a title row followed by one row of column labels.
	KindTable Kind = iota
	// KindSections stacks titled blocks sectionSpacing rows apart.
	KindSections
	// KindMatrix is a table whose first column also carries row labels.
	KindMatrix
)

type Section struct {
	Title   string
	Metrics []string
}

type SheetLayout struct {
	Name      string
	Kind      Kind
	Title     string
	Columns   []string
	Sections  []Section
	RowLabels []string
	// ColumnWidth is applied to every label column when non-zero.
	ColumnWidth float64
}

var companyInputColumns = []string{
	"Ticker", "Company Name", "Market Cap", "Enterprise Value", "Production (BOE/d)",
	"Oil %", "Gas %", "NGL %", "Primary Regions",
}

var operationalColumns = []string{
	"Company", "Production (BOE/d)", "YoY Growth %", "Oil Mix %",
	"F&D Cost/BOE", "Operating Cost/BOE", "Reserve Life (Years)",
	"RRR %", "1P Reserves", "2P Reserves",
}

var financialSections = []Section{
	{"Income Statement", []string{"Revenue", "EBITDA", "EBIT", "Net Income", "EPS"}},
	{"Balance Sheet", []string{"Total Assets", "Total Debt", "Net Debt", "Equity", "Working Capital"}},
	{"Cash Flow", []string{"Operating CF", "Capex", "Free CF", "Dividends", "Share Buybacks"}},
}

var efficiencyColumns = []string{
	"Company", "ROCE %", "ROE %", "ROIC %", "Capital Efficiency",
	"Reinvestment Rate", "FCF Yield %", "Payout Ratio %",
}

var valuationColumns = []string{
	"Company", "EV/EBITDA", "P/E", "P/B", "EV/2P Reserves",
	"EV/Daily Production", "NAV/Share", "Premium/Discount to NAV %",
}

var riskSections = []Section{
	{"Operational Risk", []string{"Geographic", "Reserve Quality", "Cost Structure"}},
	{"Financial Risk", []string{"Leverage", "Interest Coverage", "Liquidity"}},
	{"ESG Risk", []string{"Carbon Intensity", "Water Usage", "Safety Record"}},
}

var peerColumns = []string{"Metric", "Company A", "Company B", "Company C", "Company D", "Industry Avg"}

var keyMetrics = []string{
	"Production Growth %", "Operating Margin %", "ROCE %", "FCF Yield %",
	"EV/EBITDA", "Net Debt/EBITDA", "Reserve Life", "F&D Cost/BOE",
}

// textColumns hold names rather than figures.
var textColumns = map[string]bool{
	"Ticker":          true,
	"Company Name":    true,
	"Primary Regions": true,
	"Company":         true,
	"Metric":          true,
}

// Layout returns the workbook's sheets in tab order.
func Layout() []SheetLayout {
	return []SheetLayout{
		{Name: "Company Input", Kind: KindTable, Title: "Company Basic Information", Columns: companyInputColumns, ColumnWidth: columnWidth},
		{Name: "Operational", Kind: KindTable, Title: "Operational Metrics", Columns: operationalColumns, ColumnWidth: columnWidth},
		{Name: "Financial", Kind: KindSections, Sections: financialSections},
		{Name: "Efficiency", Kind: KindTable, Title: "Efficiency Metrics", Columns: efficiencyColumns, ColumnWidth: columnWidth},
		{Name: "Valuation", Kind: KindTable, Title: "Valuation Metrics", Columns: valuationColumns, ColumnWidth: columnWidth},
		{Name: "Risk", Kind: KindSections, Sections: riskSections},
		{Name: "Peer Comparison", Kind: KindMatrix, Title: "Peer Comparison Matrix", Columns: peerColumns, RowLabels: keyMetrics},
	}
}

// SheetNames returns the names of all sheets in tab order.
func SheetNames() []string {
	layout := Layout()
	names := make([]string, 0, len(layout))
	for _, sheet := range layout {
		names = append(names, sheet.Name)
	}
	return names
}

// HeaderTitle is the text written at A1 of the sheet.
func (s SheetLayout) HeaderTitle() string {
	if s.Kind == KindSections && len(s.Sections) > 0 {
		return s.Sections[0].Title
	}
	return s.Title
}

// dataFormat picks the cell format for figures entered under label.
type dataFormat int

const (
	formatBorder dataFormat = iota
	formatNumber
	formatPercent
)

func formatFor(label string) dataFormat {
	switch {
	case textColumns[label]:
		return formatBorder
	case strings.HasSuffix(label, "%"):
		return formatPercent
	default:
		return formatNumber
	}
}

// SheetSummary is what the builder writes into one sheet.
type SheetSummary struct {
	Name   string
	Labels int
}

// LabelCount is the number of text cells written into the sheet.
func (s SheetLayout) LabelCount() int {
	switch s.Kind {
	case KindSections:
		count := 0
		for _, section := range s.Sections {
			// title, "Company", metrics
			count += 2 + len(section.Metrics)
		}
		return count
	case KindMatrix:
		return 1 + len(s.Columns) + len(s.RowLabels)
	default:
		return 1 + len(s.Columns)
	}
}

// Summary describes every sheet of the workbook in tab order.
func Summary() []SheetSummary {
	layout := Layout()
	summary := make([]SheetSummary, 0, len(layout))
	for _, sheet := range layout {
		summary = append(summary, SheetSummary{Name: sheet.Name, Labels: sheet.LabelCount()})
	}
	return summary
}
