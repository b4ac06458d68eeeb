package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/patternview/internal/nav"
)

// initDetailViewport creates the viewport used by the detail view.
func (m *Model) initDetailViewport() {
	w, h := m.detailSize()
	m.detailViewport = viewport.New(w, h)
}

// detailSize returns the viewport size inside the detail box.
func (m Model) detailSize() (int, int) {
	return max(m.width-2, 1), max(m.contentHeight()-2, 1)
}

// updateDetailViewport keeps the viewport in step with the navigator: its
// size follows the window, its content is rebuilt when the detail text,
// theme or width changes, and its offset follows the navigator's scroll.
func (m *Model) updateDetailViewport() {
	if m.nav == nil || !m.ready {
		return
	}
	w, h := m.detailSize()
	m.detailViewport.Width = w
	m.detailViewport.Height = h

	text := m.nav.DetailText()
	key := fmt.Sprintf("%s/%d", m.theme.Name, w)
	if text != m.detailSource || key != m.detailKey {
		m.detailViewport.SetContent(m.renderDetailContent(text, w))
		m.detailSource = text
		m.detailKey = key
	}

	m.nav.ClampScroll(max(m.detailViewport.TotalLineCount()-h, 0))
	m.detailViewport.SetYOffset(m.nav.Scroll())
}

// renderDetailContent wraps the detail text to width. JSON is coloured
// first; text that fails to highlight is shown plain.
func (m Model) renderDetailContent(text string, width int) string {
	if text == "" {
		return ""
	}
	content := text
	if nav.IsJSON(text) {
		highlighted, err := highlightJSON(text, m.theme.ChromaStyle)
		if err != nil {
			m.logger.Debug().Err(err).Msg("highlight sample")
		} else {
			content = trimTrailingBlank(highlighted)
		}
	}
	return lipgloss.NewStyle().Width(width).Render(content)
}

// renderDetail renders the selected sample's log line.
func (m Model) renderDetail() string {
	height := m.contentHeight()
	title := "Log sample"
	if m.nav.DetailText() == "" {
		body := m.theme.Styles().WithBackground(m.theme.FocusBg).MutedText.
			Render("Select a sample and press d to open it")
		return m.renderTitledBox(title, body, m.width, height, true)
	}
	if total := m.detailViewport.TotalLineCount(); total > m.detailViewport.Height {
		title = fmt.Sprintf("Log sample (%d%%)", int(m.detailViewport.ScrollPercent()*100))
	}
	return m.renderTitledBox(title, m.detailViewport.View(), m.width, height, true)
}
