package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/patternview/internal/nav"
	"github.com/five82/patternview/internal/report"
	"github.com/five82/patternview/internal/state"
)

func testPatterns() []report.Pattern {
	at := time.Date(2022, 3, 1, 9, 0, 0, 0, time.UTC)
	patterns := []report.Pattern{
		{Text: "user <*> logged in", Count: 30, Samples: []report.Sample{
			{Timestamp: at, RawLog: `{"user":7,"action":"login"}`},
			{Timestamp: at.Add(time.Hour), RawLog: "user 8 logged in"},
		}},
		{Text: "cache miss <*>", Count: 10, Samples: []report.Sample{
			{Timestamp: at, RawLog: "cache miss a"},
		}},
		{Text: "disk full", Count: 10},
	}
	report.ComputePercentages(patterns)
	return patterns
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return out, cmd
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = update(t, m, k)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newReadyModel(t *testing.T) Model {
	t.Helper()
	m := New(Options{ThemeName: "Nightfox"})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = update(t, m, snapshotMsg(state.Snapshot{
		Source:   "testdata/report.json",
		Patterns: testPatterns(),
		Loaded:   true,
	}))
	if m.Navigator() == nil {
		t.Fatalf("navigator not created from loaded snapshot")
	}
	return m
}

func TestView_BeforeWindowSize(t *testing.T) {
	m := New(Options{})
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View() = %q, want Loading...", got)
	}
}

func TestView_LoadingShowsSource(t *testing.T) {
	m := New(Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})
	m, _ = update(t, m, snapshotMsg(state.Snapshot{Source: "s3://bucket/key.json", Attempts: 1, LastError: errors.New("timeout")}))

	view := ansi.Strip(m.View())
	for _, want := range []string{"Loading", "s3://bucket/key.json", "attempt 2", "timeout"} {
		if !strings.Contains(view, want) {
			t.Fatalf("loading view missing %q", want)
		}
	}
	if m.Navigator() != nil {
		t.Fatalf("navigator created before the report loaded")
	}
}

func TestKeys_NavigateAndOpenDetail(t *testing.T) {
	m := newReadyModel(t)

	m = press(t, m, runes("j"))
	if idx, _ := m.Navigator().PatternIndex(); idx != 1 {
		t.Fatalf("pattern index after j = %d, want 1", idx)
	}
	m = press(t, m, runes("k"), runes("p"))
	if m.Navigator().View() != nav.SampleList {
		t.Fatalf("view after p = %v, want Sample", m.Navigator().View())
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Navigator().View() != nav.Detail {
		t.Fatalf("view after enter = %v, want Detail", m.Navigator().View())
	}
	if m.detailSource != m.Navigator().DetailText() {
		t.Fatalf("viewport built from %q, want %q", m.detailSource, m.Navigator().DetailText())
	}
	if got := m.detailViewport.TotalLineCount(); got != 4 {
		t.Fatalf("detail lines = %d, want 4 for indented JSON", got)
	}
	if !strings.Contains(ansi.Strip(m.View()), "Log sample") {
		t.Fatalf("detail view missing title")
	}
}

func TestKeys_DetailScrollStopsAtEnd(t *testing.T) {
	m := newReadyModel(t)
	m = press(t, m, runes("p"), runes("d"), runes("j"), runes("j"))

	// Four lines of JSON fit in the viewport, so there is nothing to scroll.
	if got := m.Navigator().Scroll(); got != 0 {
		t.Fatalf("Scroll() = %d, want 0", got)
	}
	m = press(t, m, runes("k"))
	if got := m.Navigator().Scroll(); got != 0 {
		t.Fatalf("Scroll() after k = %d, want 0", got)
	}
}

func TestKeys_TabCyclesViews(t *testing.T) {
	m := newReadyModel(t)
	want := []nav.View{nav.SampleList, nav.Detail, nav.PatternList}
	for i, v := range want {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
		if m.Navigator().View() != v {
			t.Fatalf("after %d tabs view = %v, want %v", i+1, m.Navigator().View(), v)
		}
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Navigator().View() != nav.Detail {
		t.Fatalf("shift+tab from Pattern = %v, want Detail", m.Navigator().View())
	}
}

func TestKeys_Quit(t *testing.T) {
	m := newReadyModel(t)
	_, cmd := update(t, m, runes("q"))
	if cmd == nil {
		t.Fatalf("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q command = %T, want tea.QuitMsg", cmd())
	}
}

func TestKeys_HelpClosesOnAnyKey(t *testing.T) {
	m := newReadyModel(t)
	m = press(t, m, runes("?"))
	if !m.showHelp {
		t.Fatalf("help not shown after ?")
	}
	if !strings.Contains(ansi.Strip(m.View()), "Keyboard Shortcuts") {
		t.Fatalf("help view missing title")
	}

	m = press(t, m, runes("j"))
	if m.showHelp {
		t.Fatalf("help still shown after a key press")
	}
	if idx, _ := m.Navigator().PatternIndex(); idx != 0 {
		t.Fatalf("key that closed help also moved the selection to %d", idx)
	}
}

func TestKeys_CycleTheme(t *testing.T) {
	m := newReadyModel(t)
	m = press(t, m, runes("T"))
	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme after T = %q, want Kanagawa", m.theme.Name)
	}
	m = press(t, m, runes("T"), runes("T"))
	if m.theme.Name != "Nightfox" {
		t.Fatalf("theme after three presses = %q, want Nightfox", m.theme.Name)
	}
}

func TestSnapshot_FailedEndsProgram(t *testing.T) {
	m := New(Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})

	cause := errors.New("access denied")
	m, cmd := update(t, m, snapshotMsg(state.Snapshot{Source: "s3://b/k", Failed: true, LastError: cause}))
	if !errors.Is(m.Err(), cause) {
		t.Fatalf("Err() = %v, want wrapped %v", m.Err(), cause)
	}
	if !strings.Contains(m.Err().Error(), "s3://b/k") {
		t.Fatalf("Err() = %q, want it to name the source", m.Err())
	}
	if cmd == nil {
		t.Fatalf("failed snapshot returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("failed snapshot command = %T, want tea.QuitMsg", cmd())
	}
}

func TestSnapshot_LaterSnapshotsKeepNavigator(t *testing.T) {
	m := newReadyModel(t)
	m = press(t, m, runes("j"))
	first := m.Navigator()

	m, _ = update(t, m, snapshotMsg(state.Snapshot{Patterns: testPatterns(), Loaded: true}))
	if m.Navigator() != first {
		t.Fatalf("navigator replaced by a later snapshot")
	}
	if idx, _ := m.Navigator().PatternIndex(); idx != 1 {
		t.Fatalf("selection lost: %d", idx)
	}
}

func TestView_FillsWindowInEveryView(t *testing.T) {
	m := newReadyModel(t)
	for _, v := range nav.Views() {
		view := m.View()
		if got := lipgloss.Height(view); got != m.height {
			t.Fatalf("%v view height = %d, want %d", v, got, m.height)
		}
		if !strings.Contains(ansi.Strip(view), appTitle) {
			t.Fatalf("%v view missing header", v)
		}
		m = press(t, m, runes("l"))
	}
}

func TestView_SamplesEmptyState(t *testing.T) {
	m := newReadyModel(t)
	m = press(t, m, runes("k"), runes("p"))
	if !strings.Contains(ansi.Strip(m.View()), "No samples for this pattern") {
		t.Fatalf("empty sample list not explained")
	}
}
