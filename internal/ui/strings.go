package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return ""
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// padRight pads a string with spaces to the given width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(r))
}

// padLeft right-aligns a string in the given width.
func padLeft(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(r)) + s
}

// cell fits value into exactly width columns.
func cell(value string, width int) string {
	return padRight(truncate(value, width), width)
}

// singleLine collapses whitespace runs, including newlines and tabs, so a
// raw log fits on one table row.
func singleLine(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// formatSampleDate renders a sample timestamp for table cells.
func formatSampleDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04:05Z07:00")
}

// visibleWidth returns the printed width of a rendered string.
func visibleWidth(s string) int {
	return lipgloss.Width(s)
}
