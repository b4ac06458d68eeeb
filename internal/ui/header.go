package ui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/five82/patternview/internal/nav"
)

const appTitle = "Log Pattern Viewer"

// renderHeader renders the tab bar inside a titled box, with report totals
// on the right.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)

	tabs := make([]string, 0, 3)
	for _, v := range nav.Views() {
		if v == m.nav.View() {
			tabs = append(tabs, styles.ActiveTab.Render(v.String()))
		} else {
			tabs = append(tabs, styles.InactiveTab.Render(v.String()))
		}
	}
	left := strings.Join(tabs, bg.Render("│", styles.FaintText))

	summary := bg.Render(m.reportSummary(), styles.MutedText)
	innerWidth := m.width - 2
	gap := innerWidth - visibleWidth(left) - visibleWidth(summary)
	line := left
	if gap >= 2 {
		line = left + bg.Spaces(gap) + summary
	}

	return m.renderTitledBox(appTitle, line, m.width, headerHeight, false)
}

// reportSummary describes the loaded report, e.g. "42 patterns · 1,204,113 lines".
func (m Model) reportSummary() string {
	patterns := len(m.nav.Patterns())
	noun := "patterns"
	if patterns == 1 {
		noun = "pattern"
	}
	summary := fmt.Sprintf("%s %s · %s lines", humanize.Comma(int64(patterns)), noun, humanizeCount(m.total))
	if src := strings.TrimSpace(m.snapshot.Source); src != "" {
		summary += " · " + truncateMiddle(src, 48)
	}
	return summary
}

// renderCommandBar renders the command hints for the active view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.nav.View() {
	case nav.SampleList:
		commands = []cmd{
			{"j/k", "Navigate"},
			{"d", "Open"},
			{"h", "Patterns"},
			{"l", "Detail"},
			{"?", "More"},
			{"q", "Quit"},
		}
	case nav.Detail:
		commands = []cmd{
			{"j/k", "Scroll"},
			{"h", "Samples"},
			{"l", "Patterns"},
			{"?", "More"},
			{"q", "Quit"},
		}
	default: // nav.PatternList
		commands = []cmd{
			{"j/k", "Navigate"},
			{"p", "Samples"},
			{"l/tab", "Next view"},
			{"?", "More"},
			{"q", "Quit"},
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}

// humanizeCount formats a line count with thousands separators.
func humanizeCount(n uint64) string {
	if n > 1<<62 {
		return humanize.Comma(1<<62) + "+"
	}
	return humanize.Comma(int64(n))
}

// truncateMiddle truncates a string in the middle, preserving start and end.
func truncateMiddle(s string, limit int) string {
	runes := []rune(s)
	if limit <= 0 {
		return ""
	}
	if len(runes) <= limit {
		return s
	}
	if limit <= 5 {
		return string(runes[:limit])
	}
	// Keep more of the end (the object key) than the start
	endLen := (limit - 3) * 2 / 3
	startLen := limit - 3 - endLen
	return string(runes[:startLen]) + "..." + string(runes[len(runes)-endLen:])
}
