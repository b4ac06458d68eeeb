package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/patternview/internal/nav"
	"github.com/five82/patternview/internal/report"
	"github.com/five82/patternview/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	ThemeName string
	Logger    zerolog.Logger
	PollTick  time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx      context.Context
	store    *state.Store
	logger   zerolog.Logger
	pollTick time.Duration
	keys     keyMap

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool

	// Data state
	snapshot state.Snapshot
	nav      *nav.Navigator
	total    uint64
	loadErr  error

	// Loading state
	spinner spinner.Model

	// Detail state
	detailViewport viewport.Model
	detailSource   string // detail text the viewport content was built from
	detailKey      string // theme and width the viewport content was built for
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = DefaultUIInterval
	}

	return Model{
		ctx:      ctx,
		store:    opts.Store,
		logger:   opts.Logger,
		pollTick: pollTick,
		keys:     DefaultKeyMap(),

		theme:   GetTheme(opts.ThemeName),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spinner.Tick,
		tickCmd(m.pollTick),
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initDetailViewport()
		}
		m.ready = true
		m.updateDetailViewport()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		return m.handleSnapshot(state.Snapshot(msg))

	case spinner.TickMsg:
		if m.nav != nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.nav == nil {
		return m.renderLoading()
	}
	return m.renderMain()
}

// Err returns the load error that ended the program, if any.
func (m Model) Err() error {
	return m.loadErr
}

// Navigator returns the navigator once the report has loaded.
func (m Model) Navigator() *nav.Navigator {
	return m.nav
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.updateDetailViewport()
		m.logger.Debug().Str("theme", m.theme.Name).Msg("theme changed")
		return m, nil
	}

	if m.nav == nil {
		return m, nil
	}
	action, ok := m.keys.action(msg)
	if !ok {
		return m, nil
	}
	m.nav.Dispatch(action)
	m.logger.Debug().
		Stringer("action", action).
		Stringer("view", m.nav.View()).
		Int("scroll", m.nav.Scroll()).
		Msg("navigate")
	m.updateDetailViewport()
	return m, nil
}

// handleTick polls the store until the load has finished.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.nav != nil || m.loadErr != nil || m.store == nil {
		return m, nil
	}
	return m, tea.Batch(fetchSnapshotCmd(m.store), tickCmd(m.pollTick))
}

// handleSnapshot builds the navigator from the first loaded snapshot, or
// ends the program when the loader gave up.
func (m Model) handleSnapshot(snap state.Snapshot) (tea.Model, tea.Cmd) {
	m.snapshot = snap
	if m.nav != nil {
		return m, nil
	}

	switch {
	case snap.Loaded:
		n, err := nav.New(snap.Patterns)
		if err != nil {
			m.loadErr = fmt.Errorf("load report %s: %w", snap.Source, err)
			return m, tea.Quit
		}
		m.nav = n
		m.total = report.TotalCount(snap.Patterns)
		m.logger.Info().Int("patterns", len(snap.Patterns)).Uint64("total", m.total).Msg("report ready")
		m.updateDetailViewport()
		return m, nil
	case snap.Failed:
		m.loadErr = fmt.Errorf("load report %s: %w", snap.Source, snap.LastError)
		return m, tea.Quit
	}
	return m, nil
}

// renderMain renders the header, command bar and active view.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	return b.String()
}

// renderContent renders the main content area based on the active view.
func (m Model) renderContent() string {
	switch m.nav.View() {
	case nav.PatternList:
		return m.renderPatterns()
	case nav.SampleList:
		return m.renderSamples()
	case nav.Detail:
		return m.renderDetail()
	default:
		return ""
	}
}

func (m Model) contentHeight() int {
	return max(m.height-chromeHeight, minPaneHeight)
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until it exits. A report
// that failed to load is returned as the error.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
