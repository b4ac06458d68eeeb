package ui

import (
	"fmt"

	"github.com/five82/patternview/internal/report"
)

const percentColumnWidth = 8 // "100.00%"

// renderPatterns renders the pattern table above a preview of the selected
// pattern's samples.
func (m Model) renderPatterns() string {
	height := m.contentHeight()
	tableHeight := max(height*patternTablePercent/100, minPaneHeight)
	previewHeight := max(height-tableHeight, minPaneHeight)

	patterns := m.nav.Patterns()
	selected, ok := m.nav.PatternIndex()
	if !ok {
		selected = -1
	}

	innerWidth := m.width - 2
	table := m.renderTable(patternColumns(patterns), patternRows(patterns), selected,
		innerWidth, tableHeight-2, m.theme.FocusBg)
	tablePane := m.renderTitledBox(fmt.Sprintf("Patterns (%d)", len(patterns)), table, m.width, tableHeight, true)

	current := m.nav.CurrentPattern()
	preview := m.renderSampleTable(current.Samples, -1, innerWidth, previewHeight-2, m.theme.SurfaceAlt)
	previewPane := m.renderTitledBox(fmt.Sprintf("Samples (%d)", len(current.Samples)), preview, m.width, previewHeight, false)

	return tablePane + "\n" + previewPane
}

func patternColumns(patterns []report.Pattern) []column {
	countWidth := len("Count")
	for _, p := range patterns {
		countWidth = max(countWidth, len(humanizeCount(p.Count)))
	}
	return []column{
		{title: "Count", width: countWidth, right: true},
		{title: "Percent", width: percentColumnWidth, right: true},
		{title: "Pattern"},
	}
}

func patternRows(patterns []report.Pattern) [][]string {
	rows := make([][]string, len(patterns))
	for i, p := range patterns {
		rows[i] = []string{
			humanizeCount(p.Count),
			formatPercent(p),
			singleLine(p.Text),
		}
	}
	return rows
}

// formatPercent renders a pattern's share with two decimals.
func formatPercent(p report.Pattern) string {
	return fmt.Sprintf("%.2f%%", p.PercentValue())
}
