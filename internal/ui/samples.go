package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/patternview/internal/report"
)

const dateColumnWidth = 25 // "2006-01-02 15:04:05+07:00"

// renderSamples renders a one-row summary of the selected pattern above its
// sample table.
func (m Model) renderSamples() string {
	height := m.contentHeight()
	summaryHeight := max(height*sampleSummaryPercent/100, minPaneHeight+1)
	tableHeight := max(height-summaryHeight, minPaneHeight)

	innerWidth := m.width - 2
	current := m.nav.CurrentPattern()

	summaryCols := []column{
		{title: "Count", width: max(len("Count"), len(humanizeCount(current.Count))), right: true},
		{title: "Percent", width: percentColumnWidth, right: true},
		{title: "Pattern"},
	}
	summaryRows := [][]string{{humanizeCount(current.Count), formatPercent(current), singleLine(current.Text)}}
	summary := m.renderTable(summaryCols, summaryRows, -1, innerWidth, summaryHeight-2, m.theme.SurfaceAlt)
	summaryPane := m.renderTitledBox("Pattern", summary, m.width, summaryHeight, false)

	var body string
	if len(current.Samples) == 0 {
		body = lipgloss.Place(innerWidth, tableHeight-2, lipgloss.Center, lipgloss.Center,
			m.theme.Styles().MutedText.Background(lipgloss.Color(m.theme.FocusBg)).Render("No samples for this pattern"),
			lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.FocusBg)))
	} else {
		selected, ok := m.nav.SampleIndex()
		if !ok {
			selected = -1
		}
		body = m.renderSampleTable(current.Samples, selected, innerWidth, tableHeight-2, m.theme.FocusBg)
	}
	title := fmt.Sprintf("Samples (%d)", len(current.Samples))
	if idx, ok := m.nav.SampleIndex(); ok && len(current.Samples) > 0 {
		title = fmt.Sprintf("Samples (%d/%d)", idx+1, len(current.Samples))
	}
	tablePane := m.renderTitledBox(title, body, m.width, tableHeight, true)

	return summaryPane + "\n" + tablePane
}

// renderSampleTable renders samples as Date and log columns.
func (m Model) renderSampleTable(samples []report.Sample, selected, width, height int, bgColor string) string {
	cols := []column{
		{title: "Date", width: dateColumnWidth},
		{title: "log"},
	}
	rows := make([][]string, len(samples))
	for i, s := range samples {
		rows[i] = []string{formatSampleDate(s.Timestamp), singleLine(s.RawLog)}
	}
	return m.renderTable(cols, rows, selected, width, height, bgColor)
}
