package nav

import (
	"errors"
	"strings"
	"testing"

	"github.com/five82/patternview/internal/report"
)

func samples(raw ...string) []report.Sample {
	out := make([]report.Sample, len(raw))
	for i, r := range raw {
		out[i] = report.Sample{RawLog: r}
	}
	return out
}

func testPatterns() []report.Pattern {
	patterns := []report.Pattern{
		{Text: "a", Count: 10, Samples: samples(`{"a":1}`, "not json", "third")},
		{Text: "b", Count: 5, Samples: samples("only")},
		{Text: "c", Count: 5},
	}
	report.ComputePercentages(patterns)
	return patterns
}

func newNavigator(t *testing.T) *Navigator {
	t.Helper()
	n, err := New(testPatterns())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return n
}

func mustPatternIndex(t *testing.T, n *Navigator) int {
	t.Helper()
	idx, ok := n.PatternIndex()
	if !ok {
		t.Fatalf("no pattern selected")
	}
	return idx
}

func TestNew_RejectsEmpty(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNoPatterns) {
		t.Fatalf("New(nil) error = %v, want ErrNoPatterns", err)
	}
}

func TestNew_InitialState(t *testing.T) {
	n := newNavigator(t)
	if n.View() != PatternList {
		t.Fatalf("initial view = %v, want Pattern", n.View())
	}
	if idx := mustPatternIndex(t, n); idx != 0 {
		t.Fatalf("initial pattern = %d, want 0", idx)
	}
	if idx, ok := n.SampleIndex(); !ok || idx != 0 {
		t.Fatalf("initial sample = (%d, %v), want (0, true)", idx, ok)
	}
	if n.DetailText() != "" || n.Scroll() != 0 {
		t.Fatalf("detail state not empty: %q / %d", n.DetailText(), n.Scroll())
	}
}

func TestNew_FirstPatternWithoutSamples(t *testing.T) {
	n, err := New([]report.Pattern{{Text: "x", Count: 1}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, ok := n.SampleIndex(); ok {
		t.Fatalf("sample selected for pattern without samples")
	}
}

func TestMoveDown_WrapsAtLastPattern(t *testing.T) {
	n := newNavigator(t)
	n.MoveDown()
	n.MoveDown()
	if idx := mustPatternIndex(t, n); idx != 2 {
		t.Fatalf("pattern = %d, want 2", idx)
	}
	n.Dispatch(MoveDown)
	if idx := mustPatternIndex(t, n); idx != 0 {
		t.Fatalf("pattern after wrap = %d, want 0", idx)
	}
	n.Dispatch(MoveUp)
	if idx := mustPatternIndex(t, n); idx != 2 {
		t.Fatalf("pattern after MoveUp wrap = %d, want 2", idx)
	}
}

func TestPatternChangeResetsSampleSelection(t *testing.T) {
	n := newNavigator(t)
	n.JumpToSamples()
	n.MoveDown()
	n.MoveDown()
	if idx, _ := n.SampleIndex(); idx != 2 {
		t.Fatalf("sample = %d, want 2", idx)
	}

	n.MoveBackward()
	n.MoveDown() // pattern "b" has one sample
	if idx, ok := n.SampleIndex(); !ok || idx != 0 {
		t.Fatalf("sample after pattern change = (%d, %v), want (0, true)", idx, ok)
	}
	n.MoveDown() // pattern "c" has none
	if _, ok := n.SampleIndex(); ok {
		t.Fatalf("sample selected for pattern without samples")
	}
}

func TestJumpToSamples_EmptyPattern(t *testing.T) {
	n := newNavigator(t)
	n.MoveUp() // wraps to "c"
	n.Dispatch(JumpToSamples)

	if n.View() != SampleList {
		t.Fatalf("view = %v, want Sample", n.View())
	}
	if n.CurrentSampleCount() != 0 {
		t.Fatalf("CurrentSampleCount = %d, want 0", n.CurrentSampleCount())
	}
	if _, ok := n.SampleIndex(); ok {
		t.Fatalf("sample selected for pattern without samples")
	}

	n.MoveDown()
	n.MoveUp()
	n.Activate()
	if n.View() != SampleList {
		t.Fatalf("Activate without samples changed view to %v", n.View())
	}
	if n.DetailText() != "" {
		t.Fatalf("Activate without samples rendered %q", n.DetailText())
	}
}

func TestSampleList_Wraps(t *testing.T) {
	n := newNavigator(t)
	n.SelectCurrentPattern()
	n.MoveUp()
	if idx, _ := n.SampleIndex(); idx != 2 {
		t.Fatalf("sample after MoveUp = %d, want 2", idx)
	}
	n.MoveDown()
	if idx, _ := n.SampleIndex(); idx != 0 {
		t.Fatalf("sample after MoveDown wrap = %d, want 0", idx)
	}
	if idx := mustPatternIndex(t, n); idx != 0 {
		t.Fatalf("sample movement changed pattern to %d", idx)
	}
}

func TestActivate_RendersJSONAndText(t *testing.T) {
	n := newNavigator(t)
	n.JumpToSamples()
	n.Dispatch(Activate)

	if n.View() != Detail {
		t.Fatalf("view = %v, want Detail", n.View())
	}
	if want := "{\n  \"a\": 1\n}"; n.DetailText() != want {
		t.Fatalf("DetailText = %q, want %q", n.DetailText(), want)
	}

	n.MoveBackward()
	n.MoveDown()
	n.Activate()
	if n.DetailText() != "not json" {
		t.Fatalf("DetailText = %q, want verbatim", n.DetailText())
	}
}

func TestActivate_PatternListIsNoop(t *testing.T) {
	n := newNavigator(t)
	n.Activate()
	if n.View() != PatternList || n.DetailText() != "" {
		t.Fatalf("Activate in pattern list changed state: %v %q", n.View(), n.DetailText())
	}
}

func TestDetailScroll(t *testing.T) {
	n := newNavigator(t)
	n.JumpToSamples()
	n.Activate()

	n.MoveUp()
	if n.Scroll() != 0 {
		t.Fatalf("scroll went below zero: %d", n.Scroll())
	}
	n.MoveDown()
	n.MoveDown()
	n.Activate()
	if n.Scroll() != 3 {
		t.Fatalf("scroll = %d, want 3", n.Scroll())
	}
	n.MoveUp()
	if n.Scroll() != 2 {
		t.Fatalf("scroll = %d, want 2", n.Scroll())
	}

	n.MoveBackward()
	n.Activate()
	if n.Scroll() != 0 {
		t.Fatalf("new detail text kept scroll %d", n.Scroll())
	}
}

func TestViewCycle_ThreeStepsReturn(t *testing.T) {
	n := newNavigator(t)
	for i := 0; i < 3; i++ {
		n.Dispatch(MoveForward)
	}
	if n.View() != PatternList {
		t.Fatalf("three MoveForward ended at %v", n.View())
	}
	for i := 0; i < 3; i++ {
		n.Dispatch(MoveBackward)
	}
	if n.View() != PatternList {
		t.Fatalf("three MoveBackward ended at %v", n.View())
	}
	n.MoveBackward()
	if n.View() != Detail {
		t.Fatalf("MoveBackward from Pattern = %v, want Detail", n.View())
	}
}

// Any input sequence keeps the sample selection in range for the current
// pattern, so the selection queries never panic.
func TestDispatch_SelectionStaysValid(t *testing.T) {
	n := newNavigator(t)
	actions := []Action{MoveDown, JumpToSamples, MoveDown, MoveDown, Activate, MoveForward,
		MoveDown, MoveDown, JumpToSamples, MoveUp, Activate, MoveBackward, MoveBackward,
		MoveUp, MoveUp, MoveForward, Activate, MoveForward, MoveForward, MoveDown}
	for step := 0; step < 5; step++ {
		for i, a := range actions {
			n.Dispatch(a)
			count := n.CurrentSampleCount()
			idx, ok := n.SampleIndex()
			if count == 0 && ok {
				t.Fatalf("step %d action %v: selection %d with no samples", i, a, idx)
			}
			if count > 0 && (!ok || idx >= count) {
				t.Fatalf("step %d action %v: selection (%d, %v) for %d samples", i, a, idx, ok, count)
			}
			if count > 0 {
				_ = n.CurrentSampleRawLog()
			}
		}
	}
}

func TestCurrentSample_PanicsWithoutSelection(t *testing.T) {
	n, err := New([]report.Pattern{{Text: "x", Count: 1}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("CurrentSample did not panic")
		}
		if msg, _ := r.(string); !strings.Contains(msg, "CurrentSample") {
			t.Fatalf("panic message = %v", r)
		}
	}()
	n.CurrentSample()
}

func TestFormatRawLog(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"object", `{"a":1}`, "{\n  \"a\": 1\n}"},
		{"keys sorted", `{"z":1,"a":[true,null]}`, "{\n  \"a\": [\n    true,\n    null\n  ],\n  \"z\": 1\n}"},
		{"nested keys sorted", `{"b":1,"a":{"d":2,"c":3}}`, "{\n  \"a\": {\n    \"c\": 3,\n    \"d\": 2\n  },\n  \"b\": 1\n}"},
		{"number text kept", `{"n":12345678901234567890,"f":1.50}`, "{\n  \"f\": 1.50,\n  \"n\": 12345678901234567890\n}"},
		{"html not escaped", `{"m":"<a&b>"}`, "{\n  \"m\": \"<a&b>\"\n}"},
		{"empty object", `{}`, "{}"},
		{"plain text", "not json", "not json"},
		{"empty", "", ""},
		{"truncated", `{"a":`, `{"a":`},
		{"surrounding space", "  [1]  ", "[\n  1\n]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatRawLog(tc.in); got != tc.want {
				t.Fatalf("FormatRawLog(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if MoveUp.String() != "MoveUp" || JumpToSamples.String() != "JumpToSamples" {
		t.Fatalf("unexpected action names")
	}
	if got := Action(42).String(); got != "Action(42)" {
		t.Fatalf("unknown action = %q", got)
	}
}

func TestClampScroll(t *testing.T) {
	cases := []struct {
		name   string
		scroll int
		limit  int
		want   int
	}{
		{"below limit", 2, 5, 2},
		{"above limit", 9, 5, 5},
		{"negative limit", 3, -1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := newNavigator(t)
			n.JumpToSamples()
			n.Activate()
			for i := 0; i < tc.scroll; i++ {
				n.MoveDown()
			}
			n.ClampScroll(tc.limit)
			if n.Scroll() != tc.want {
				t.Fatalf("Scroll() = %d, want %d", n.Scroll(), tc.want)
			}
		})
	}
}
