package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderLoading renders the screen shown until the report is ready.
func (m Model) renderLoading() string {
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	bg := NewBgStyle(m.theme.Background)

	source := m.snapshot.Source
	if source == "" {
		source = "report"
	}
	lines := []string{
		m.spinner.View() + bg.Space() +
			bg.Render("Loading", styles.Text) + bg.Space() +
			bg.Render(truncateMiddle(source, max(m.width-16, 8)), styles.AccentText),
	}
	if m.snapshot.Attempts > 0 {
		lines = append(lines, bg.Render(fmt.Sprintf("attempt %d", m.snapshot.Attempts+1), styles.MutedText))
	}
	if m.snapshot.LastError != nil {
		lines = append(lines, bg.Render(truncate(m.snapshot.LastError.Error(), max(m.width-4, 8)), styles.WarningText))
	}

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		strings.Join(lines, "\n"),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.Background)),
	)
}
