package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/witui/internal/app"
	"github.com/muurk/witui/internal/config"
	"github.com/muurk/witui/internal/logging"
	"github.com/muurk/witui/internal/network"
)

// Rows outside the table body: outer border (2), header and its rule (2),
// footer rule (1), column header (1) and status line (1). The help text
// lines are added on top.
const chromeRows = 7

// Messages for async operations
type refreshRequestMsg struct{}
type refreshDoneMsg struct {
	networks []network.AccessPoint
	err      error
}
type tickMsg time.Time

// Options configures the dashboard model.
type Options struct {
	// TickInterval is how often the loop wakes up without input.
	// Default: 250ms
	TickInterval time.Duration

	// AutoRefresh rescans when the inventory is older than this. Zero disables.
	AutoRefresh time.Duration

	// Keys are the configurable bindings. Default: config.Default().Keys
	Keys config.KeyBindings

	// Logger receives dashboard diagnostics. Default: no-op
	Logger *zap.Logger
}

// Model is the dashboard Bubble Tea model.
type Model struct {
	state *app.State
	ctx   context.Context

	tickInterval time.Duration
	autoRefresh  time.Duration
	logger       *zap.Logger

	// UI state
	Width   int
	Height  int
	Keys    KeyMap
	Help    help.Model
	Spinner spinner.Model
	status  string

	// Keys pressed while a scan runs, applied once it finishes.
	pending []tea.KeyMsg

	lastAttempt time.Time
}

// New creates the dashboard model around state.
func New(ctx context.Context, state *app.State, opts Options) Model {
	if opts.TickInterval <= 0 {
		opts.TickInterval = 250 * time.Millisecond
	}
	if len(opts.Keys.Quit) == 0 {
		opts.Keys = config.Default().Keys
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	return Model{
		state:        state,
		ctx:          ctx,
		tickInterval: opts.TickInterval,
		autoRefresh:  opts.AutoRefresh,
		logger:       opts.Logger,
		Keys:         NewKeyMap(opts.Keys),
		Help:         help.New(),
		Spinner:      s,
	}
}

// State returns the application state the model drives.
func (m Model) State() *app.State {
	return m.state
}

// Status returns the current status line text.
func (m Model) Status() string {
	return m.status
}

// Init scans once and starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return refreshRequestMsg{} },
		m.tick(),
	)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = max(msg.Width-6, 0)
		m.state.OnFrame(m.tableRows())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case refreshRequestMsg:
		cmd := m.refresh(false)
		return m, cmd

	case refreshDoneMsg:
		err := m.state.FinishRefresh(msg.networks, msg.err)
		m.status = m.refreshStatus(err)
		return m.replayPending()

	case tickMsg:
		if !m.state.Running() {
			return m, tea.Quit
		}
		cmds := []tea.Cmd{m.tick()}
		if m.autoRefreshDue(time.Time(msg)) {
			cmds = append(cmds, m.refresh(true))
		}
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		if !m.state.Refreshing() {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.Keys.Help) && !key.Matches(msg, m.Keys.Quit) {
		m.Help.ShowAll = !m.Help.ShowAll
		m.state.OnFrame(m.tableRows())
		return m, nil
	}

	k := m.Keys.Resolve(msg)
	if k == app.KeyNone {
		return m, nil
	}

	// Only quit may overtake a running scan; everything else waits for the
	// new inventory.
	if k != app.KeyQuit && m.state.Refreshing() {
		m.pending = append(m.pending, msg)
		return m, nil
	}

	logging.LogKeyEvent(msg.String(), k.String())

	switch k {
	case app.KeyRefresh:
		cmd := m.refresh(false)
		return m, cmd
	}

	if err := m.state.HandleKey(m.ctx, k); err != nil {
		m.logger.Debug("key failed", zap.Stringer("key", k), zap.Error(err))
	}
	if !m.state.Running() {
		return m, tea.Quit
	}
	return m, nil
}

// replayPending applies the keys held back during a scan, in arrival order.
// A replayed refresh starts a new scan and the keys after it wait again.
func (m Model) replayPending() (tea.Model, tea.Cmd) {
	pending := m.pending
	m.pending = nil

	var cmds []tea.Cmd
	for _, msg := range pending {
		if !m.state.Running() {
			break
		}
		next, cmd := m.handleKey(msg)
		m = next.(Model)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// refresh starts an asynchronous scan. Rejected requests only update the
// status line; quiet suppresses that for auto-refresh.
func (m *Model) refresh(quiet bool) tea.Cmd {
	if err := m.state.BeginRefresh(); err != nil {
		if !quiet {
			switch {
			case errors.Is(err, app.ErrRefreshInFlight):
				m.status = "scan already running"
			case errors.Is(err, app.ErrRefreshThrottled):
				m.status = "rescan ignored: too soon after the last one"
			default:
				m.status = err.Error()
			}
		}
		return nil
	}

	m.status = "scanning..."
	m.lastAttempt = time.Now()
	state, ctx := m.state, m.ctx
	collect := func() tea.Msg {
		networks, err := state.Collect(ctx)
		return refreshDoneMsg{networks: networks, err: err}
	}
	return tea.Batch(collect, m.Spinner.Tick)
}

func (m Model) autoRefreshDue(now time.Time) bool {
	if m.autoRefresh <= 0 || m.state.Refreshing() {
		return false
	}
	return now.Sub(m.lastAttempt) >= m.autoRefresh
}

func (m Model) refreshStatus(err error) string {
	if err != nil {
		return "scan failed: " + err.Error()
	}
	n := m.state.Len()
	noun := "networks"
	if n == 1 {
		noun = "network"
	}
	return fmt.Sprintf("%d %s · scanned %s", n, noun, m.state.LastRefresh().Format("15:04:05"))
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// tableRows is the number of inventory rows that fit on screen. The height
// only changes on WindowSizeMsg and the help toggle, so OnFrame runs there.
func (m Model) tableRows() int {
	helpLines := 1
	if m.Help.ShowAll {
		helpLines = 0
		for _, column := range m.Keys.FullHelp() {
			helpLines = max(helpLines, len(column))
		}
	}
	return max(m.Height-chromeRows-helpLines, 0)
}
