package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rs/zerolog"

	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/state"
)

// Options configures the UI.
type Options struct {
	Context      context.Context
	Coordinator  *state.Coordinator
	ImageBaseURL string
	ThemeName    string
	PrefsPath    string
	Logger       zerolog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx         context.Context
	coord       *state.Coordinator
	updates     <-chan state.Snapshot
	unsubscribe func()
	imageBase   string
	prefsPath   string
	logger      zerolog.Logger

	// UI state
	theme    Theme
	keys     keyMap
	width    int
	height   int
	ready    bool
	showHelp bool

	// Data
	snapshot state.Snapshot
	cursor   int

	// Components
	viewport viewport.Model
	spinner  spinner.Model
	zones    *zone.Manager
}

// snapshotMsg carries a coordinator snapshot into the update loop.
type snapshotMsg state.Snapshot

// mountedMsg reports that the initial listing fetch was started.
type mountedMsg struct{}

// New creates a new Model and subscribes it to the coordinator.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	updates, unsubscribe := opts.Coordinator.Subscribe()

	return Model{
		ctx:         ctx,
		coord:       opts.Coordinator,
		updates:     updates,
		unsubscribe: unsubscribe,
		imageBase:   opts.ImageBaseURL,
		prefsPath:   prefsPath,
		logger:      opts.Logger.With().Str("component", "ui").Logger(),
		theme:       GetTheme(opts.ThemeName),
		keys:        defaultKeyMap(),
		snapshot:    opts.Coordinator.Snapshot(),
		viewport:    viewport.New(0, 0),
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		zones:       zone.New(),
	}
}

// Init starts the listing fetch, the snapshot listener and the spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.mountCmd(),
		waitForSnapshot(m.updates),
		m.spinner.Tick,
	)
}

func (m Model) mountCmd() tea.Cmd {
	coord, ctx := m.coord, m.ctx
	return func() tea.Msg {
		coord.Mount(ctx)
		return mountedMsg{}
	}
}

// waitForSnapshot blocks until the coordinator publishes a new snapshot.
func waitForSnapshot(updates <-chan state.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-updates
		if !ok {
			return nil
		}
		return snapshotMsg(snap)
	}
}

// Update handles messages and returns the updated model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeViewport()
		m.refreshDetail(false)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, waitForSnapshot(m.updates)

	case mountedMsg:
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var content string
	switch m.snapshot.Screen() {
	case state.ScreenDetail:
		content = m.renderDetailView()
	default:
		content = m.renderListView()
	}

	return m.zones.Scan(lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderCommandBar(),
		content,
	))
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
		m.unsubscribe()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			m.logger.Warn().Err(err).Str("path", m.prefsPath).Msg("save prefs failed")
		}
		m.refreshDetail(false)
		return m, nil
	}

	if m.snapshot.Screen() == state.ScreenDetail {
		return m.handleDetailKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	total := len(m.snapshot.Movies)
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < total-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = max(total-1, 0)
	case key.Matches(msg, m.keys.Open):
		if total == 0 {
			return m, nil
		}
		id := m.snapshot.Movies[m.cursor].ID
		if err := m.coord.SelectMovie(m.ctx, id); err != nil {
			if !errors.Is(err, state.ErrUnknownMovie) {
				m.logger.Warn().Err(err).Int64("movie_id", id).Msg("select movie failed")
			}
			return m, nil
		}
		m.applySnapshot(m.coord.Snapshot())
	}
	return m, nil
}

// handleMouse selects a clicked card and maps the wheel to navigation.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		return m, nil
	}

	if m.snapshot.Screen() == state.ScreenDetail {
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease &&
			m.zones.Get(backZoneID).InBounds(msg) {
			m.back()
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case msg.Button == tea.MouseButtonWheelDown:
		if m.cursor < len(m.snapshot.Movies)-1 {
			m.cursor++
		}
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease:
		for i, mv := range m.snapshot.Movies {
			if !m.zones.Get(cardZoneID(mv.ID)).InBounds(msg) {
				continue
			}
			m.cursor = i
			if err := m.coord.SelectMovie(m.ctx, mv.ID); err != nil {
				m.logger.Warn().Err(err).Int64("movie_id", mv.ID).Msg("select movie failed")
				return m, nil
			}
			m.applySnapshot(m.coord.Snapshot())
			return m, nil
		}
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.back()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.viewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.viewport.ScrollDown(1)
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.viewport.HalfPageUp()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.viewport.HalfPageDown()
	}
	return m, nil
}

func (m *Model) back() {
	m.coord.ClearSelection()
	m.applySnapshot(m.coord.Snapshot())
}

// applySnapshot swaps in a new snapshot and keeps the cursor and viewport
// consistent with it. Snapshots older than the one held are ignored, since
// a subscription read can be delivered after a key handler already applied
// a newer state.
func (m *Model) applySnapshot(snap state.Snapshot) {
	if snap.Version < m.snapshot.Version {
		return
	}
	entering := snap.Screen() == state.ScreenDetail &&
		(m.snapshot.Screen() != state.ScreenDetail || m.snapshot.SelectedID != snap.SelectedID)
	m.snapshot = snap

	switch total := len(snap.Movies); {
	case total == 0:
		m.cursor = 0
	case m.cursor >= total:
		m.cursor = total - 1
	}
	m.refreshDetail(entering)
}

// refreshDetail re-renders the detail body into the viewport.
func (m *Model) refreshDetail(reset bool) {
	if m.snapshot.Screen() != state.ScreenDetail {
		return
	}
	m.viewport.SetContent(renderDetailBody(m.snapshot, m.imageBase, m.theme, m.viewport.Width))
	if reset {
		m.viewport.GotoTop()
	}
}

func (m *Model) resizeViewport() {
	m.viewport.Width = max(m.width-2, 1)
	m.viewport.Height = max(m.contentHeight()-boxChrome, 1)
}

// contentHeight is the height left for the main pane.
func (m Model) contentHeight() int {
	return max(m.height-chromeHeight, boxChrome+1)
}

// Run starts the Bubble Tea program and blocks until it exits or the
// context is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(opts)
	defer m.zones.Close()
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
