package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// column describes one table column. A zero width makes the column take
// the space left by the others.
type column struct {
	title string
	width int
	right bool
}

// renderTable renders a header row plus as many body rows as fit in height
// lines, scrolled so that the selected row is visible. selected < 0 means
// no row is highlighted.
func (m Model) renderTable(cols []column, rows [][]string, selected, width, height int, bgColor string) string {
	if height <= 0 || width <= 0 {
		return ""
	}
	widths := columnWidths(cols, width)
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)

	headerCells := make([]string, len(cols))
	for i, c := range cols {
		headerCells[i] = alignCell(c.title, widths[i], c.right)
	}
	lines := []string{bg.FillLine(bg.Render(strings.Join(headerCells, " "), styles.ColumnHeader), width)}

	start, end := visibleRange(selected, len(rows), height-1)
	for i := start; i < end; i++ {
		cells := make([]string, len(cols))
		for j := range cols {
			var value string
			if j < len(rows[i]) {
				value = rows[i][j]
			}
			cells[j] = alignCell(value, widths[j], cols[j].right)
		}
		text := ansi.Truncate(strings.Join(cells, " "), width, "")
		if i == selected {
			lines = append(lines, lipgloss.NewStyle().
				Background(lipgloss.Color(m.theme.SelectionBg)).
				Foreground(lipgloss.Color(m.theme.SelectionText)).
				Width(width).
				Render(text))
			continue
		}
		lines = append(lines, bg.FillLine(bg.Render(text, styles.Text), width))
	}
	return strings.Join(lines, "\n")
}

func alignCell(value string, width int, right bool) string {
	if right {
		return padLeft(truncate(value, width), width)
	}
	return cell(value, width)
}

// columnWidths assigns fixed widths and splits the remaining space between
// the flexible columns. Columns are separated by one space.
func columnWidths(cols []column, total int) []int {
	widths := make([]int, len(cols))
	remaining := total - max(len(cols)-1, 0)
	flexible := 0
	for i, c := range cols {
		if c.width > 0 {
			widths[i] = c.width
			remaining -= c.width
		} else {
			flexible++
		}
	}
	if flexible == 0 {
		return widths
	}
	share := max(remaining/flexible, 1)
	for i, c := range cols {
		if c.width == 0 {
			widths[i] = share
		}
	}
	return widths
}

// visibleRange returns the [start, end) window of rows shown in height
// lines, keeping selected inside the window.
func visibleRange(selected, total, height int) (int, int) {
	if height <= 0 || total <= 0 {
		return 0, 0
	}
	if total <= height {
		return 0, total
	}
	start := 0
	if selected >= height {
		start = selected - height + 1
	}
	end := start + height
	if end > total {
		end = total
		start = end - height
	}
	return start, end
}
