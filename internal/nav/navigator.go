package nav

import (
	"errors"
	"fmt"

	"github.com/five82/patternview/internal/report"
)

// ErrNoPatterns is returned by New when the report is empty.
var ErrNoPatterns = errors.New("navigator requires at least one pattern")

// Action is a decoded navigation input.
type Action int

const (
	MoveUp Action = iota
	MoveDown
	MoveForward
	MoveBackward
	Activate
	JumpToSamples
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case MoveUp:
		return "MoveUp"
	case MoveDown:
		return "MoveDown"
	case MoveForward:
		return "MoveForward"
	case MoveBackward:
		return "MoveBackward"
	case Activate:
		return "Activate"
	case JumpToSamples:
		return "JumpToSamples"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Navigator owns the view and selection state for one loaded report.
//
// The sample selection always refers to the currently selected pattern: it
// is reset whenever the pattern selection changes and re-validated whenever
// the sample list is entered, so selection-dependent queries are safe for
// every input sequence.
type Navigator struct {
	patterns []report.Pattern

	view    View
	pattern Selection
	sample  Selection

	detail string
	scroll int
}

// New creates a navigator over patterns. The slice is not copied and must
// not be modified while the navigator is in use.
func New(patterns []report.Pattern) (*Navigator, error) {
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}
	n := &Navigator{patterns: patterns, view: PatternList}
	n.pattern.Select(0)
	n.sample.reset(len(patterns[0].Samples))
	return n, nil
}

// Dispatch applies a single action.
func (n *Navigator) Dispatch(a Action) {
	switch a {
	case MoveUp:
		n.MoveUp()
	case MoveDown:
		n.MoveDown()
	case MoveForward:
		n.MoveForward()
	case MoveBackward:
		n.MoveBackward()
	case Activate:
		n.Activate()
	case JumpToSamples:
		n.JumpToSamples()
	}
}

// MoveDown moves the active list selection down one row, or scrolls the
// detail text forward.
func (n *Navigator) MoveDown() {
	switch n.view {
	case PatternList:
		idx, _ := n.pattern.Index()
		n.selectPattern(Next(idx, len(n.patterns)))
	case SampleList:
		count := n.CurrentSampleCount()
		if count == 0 {
			return
		}
		idx, _ := n.sample.Index()
		n.sample.Select(Next(idx, count))
	case Detail:
		n.scroll++
	}
}

// MoveUp moves the active list selection up one row, or scrolls the detail
// text back without going past the top.
func (n *Navigator) MoveUp() {
	switch n.view {
	case PatternList:
		idx, _ := n.pattern.Index()
		n.selectPattern(Previous(idx, len(n.patterns)))
	case SampleList:
		count := n.CurrentSampleCount()
		if count == 0 {
			return
		}
		idx, _ := n.sample.Index()
		n.sample.Select(Previous(idx, count))
	case Detail:
		if n.scroll > 0 {
			n.scroll--
		}
	}
}

// MoveForward switches to the next view.
func (n *Navigator) MoveForward() {
	n.setView(n.view.Next())
}

// MoveBackward switches to the previous view.
func (n *Navigator) MoveBackward() {
	n.setView(n.view.Prev())
}

// JumpToSamples switches straight to the sample list of the selected pattern.
func (n *Navigator) JumpToSamples() {
	n.setView(SampleList)
}

// SelectCurrentPattern focuses the selected pattern's samples. It does not
// change any data.
func (n *Navigator) SelectCurrentPattern() {
	n.JumpToSamples()
}

// Activate performs the context action of the active view. In the sample
// list it renders the selected sample into the detail text and opens the
// detail view; in the detail view it scrolls forward. The pattern list has
// no action.
func (n *Navigator) Activate() {
	switch n.view {
	case PatternList:
	case SampleList:
		if !n.sample.Valid(n.CurrentSampleCount()) {
			return
		}
		n.detail = FormatRawLog(n.CurrentSampleRawLog())
		n.scroll = 0
		n.view = Detail
	case Detail:
		n.scroll++
	}
}

// View returns the active view.
func (n *Navigator) View() View {
	return n.view
}

// Patterns returns the report the navigator was created with.
func (n *Navigator) Patterns() []report.Pattern {
	return n.patterns
}

// PatternIndex returns the selected pattern row.
func (n *Navigator) PatternIndex() (int, bool) {
	return n.pattern.Index()
}

// SampleIndex returns the selected sample row of the current pattern.
func (n *Navigator) SampleIndex() (int, bool) {
	return n.sample.Index()
}

// CurrentPattern returns the selected pattern. It panics when no pattern is
// selected, which cannot happen for a navigator built by New.
func (n *Navigator) CurrentPattern() report.Pattern {
	idx, ok := n.pattern.Index()
	if !ok || idx >= len(n.patterns) {
		panic("nav: CurrentPattern called without a pattern selection")
	}
	return n.patterns[idx]
}

// CurrentSampleCount returns the number of samples of the selected pattern.
func (n *Navigator) CurrentSampleCount() int {
	return len(n.CurrentPattern().Samples)
}

// CurrentSample returns the selected sample. It panics when the selected
// pattern has no samples; callers check CurrentSampleCount first.
func (n *Navigator) CurrentSample() report.Sample {
	samples := n.CurrentPattern().Samples
	if !n.sample.Valid(len(samples)) {
		panic("nav: CurrentSample called without a sample selection")
	}
	idx, _ := n.sample.Index()
	return samples[idx]
}

// CurrentSampleRawLog returns the raw log line of the selected sample.
func (n *Navigator) CurrentSampleRawLog() string {
	return n.CurrentSample().RawLog
}

// DetailText returns the text rendered by the last Activate in the sample list.
func (n *Navigator) DetailText() string {
	return n.detail
}

// Scroll returns the detail view scroll offset in lines. It is not bounded
// by the detail text length; renderers clip it.
func (n *Navigator) Scroll() int {
	return n.scroll
}

// ClampScroll lowers the detail scroll offset to at most limit lines, so a
// renderer that knows the text height can stop scrolling past the end.
func (n *Navigator) ClampScroll(limit int) {
	if limit < 0 {
		limit = 0
	}
	if n.scroll > limit {
		n.scroll = limit
	}
}

func (n *Navigator) selectPattern(i int) {
	n.pattern.Select(i)
	n.sample.reset(len(n.patterns[i].Samples))
}

func (n *Navigator) setView(v View) {
	if v == SampleList {
		n.sample.clamp(n.CurrentSampleCount())
	}
	n.view = v
}
