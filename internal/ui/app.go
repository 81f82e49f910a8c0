package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tansell/skugrid/internal/assets"
	"github.com/tansell/skugrid/internal/catalog"
	"github.com/tansell/skugrid/internal/config"
	"github.com/tansell/skugrid/internal/logging"
	"github.com/tansell/skugrid/internal/prefs"
	"github.com/tansell/skugrid/internal/state"
)

// phase tracks the ingestion gate: no query or render operation runs until
// the one-shot load has completed.
type phase int

const (
	phaseLoading phase = iota
	phaseFailed
	phaseBrowse
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Config    *config.Config
	Store     *state.Store
	Assets    *assets.Store
	Log       *logging.Logger
	Loaded    <-chan state.Snapshot
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	cfg       *config.Config
	store     *state.Store
	assets    *assets.Store
	log       *logging.Logger
	loaded    <-chan state.Snapshot
	prefsPath string

	theme Theme
	keys  keyMap

	width  int
	height int
	ready  bool

	phase   phase
	loadErr error
	spin    spinner.Model

	// Catalog and query state. The index owns the query state; the
	// cached visible slice is refreshed on every query edit.
	index   *catalog.Index
	visible []catalog.Record
	typeIdx int

	// Grid state
	focus     int
	scrollRow int

	// Search input
	searchInput textinput.Model
	searching   bool

	// Detail state
	selection  catalog.Selection
	detailView viewport.Model
	showDetail bool

	showHelp bool

	pendingThumbs map[int64]struct{}
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(themeName)

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	search := textinput.New()
	search.Placeholder = "search"
	search.Prompt = "/"
	search.CharLimit = 80

	return Model{
		ctx:           ctx,
		cfg:           opts.Config,
		store:         opts.Store,
		assets:        opts.Assets,
		log:           opts.Log,
		loaded:        opts.Loaded,
		prefsPath:     prefsPath,
		theme:         theme,
		keys:          DefaultKeyMap(),
		phase:         phaseLoading,
		spin:          spin,
		searchInput:   search,
		pendingThumbs: make(map[int64]struct{}),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick}
	if m.loaded != nil {
		cmds = append(cmds, waitLoadedCmd(m.loaded))
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
		m.ready = true
		m.clampGrid()
		m.resizeDetail()
		if m.showDetail {
			m.detailView.SetContent(m.detailContent())
		}
		return m, m.requestThumbs()

	case loadedMsg:
		return m.handleLoaded(state.Snapshot(msg))

	case thumbMsg:
		delete(m.pendingThumbs, msg.ID)
		return m, nil

	case spinner.TickMsg:
		if m.phase != phaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleLoaded leaves the loading phase once ingestion has completed.
func (m Model) handleLoaded(snap state.Snapshot) (tea.Model, tea.Cmd) {
	if snap.Err != nil {
		m.phase = phaseFailed
		m.loadErr = snap.Err
		return m, nil
	}
	m.index = catalog.NewIndex(snap.Records)
	m.visible = m.index.Visible()
	m.phase = phaseBrowse
	return m, m.requestThumbs()
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	switch m.phase {
	case phaseLoading:
		return m.renderLoading()
	case phaseFailed:
		return m.renderLoadError()
	}

	if m.showHelp {
		return m.renderHelp()
	}
	if m.showDetail {
		return m.renderDetail()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always quits, whatever the mode.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.phase != phaseBrowse {
		// The loading and error screens accept quit keys only.
		if msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.showHelp {
		// Any key closes help.
		m.showHelp = false
		return m, nil
	}

	if m.showDetail {
		return m.handleDetailKey(msg)
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case "f":
		m.cycleType()
		return m, m.refreshQuery()

	case "esc":
		// Clear both filters in one step.
		if m.searchInput.Value() != "" || m.typeIdx != 0 {
			m.searchInput.SetValue("")
			m.typeIdx = 0
			m.index.SetSearch("")
			m.index.SetType("")
			return m, m.refreshQuery()
		}
		return m, nil

	case "enter":
		return m.openDetail()
	}

	return m.handleGridKey(msg)
}

// handleSearchKey routes input to the search box; filtering is live on
// every keystroke.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.index.SetSearch("")
		return m, m.refreshQuery()
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.index.SetSearch(m.searchInput.Value())
	return m, tea.Batch(cmd, m.refreshQuery())
}

// cycleType advances the type filter through All plus the distinct type
// values of the full sequence.
func (m *Model) cycleType() {
	options := len(m.index.Types()) + 1 // slot 0 is "all"
	m.typeIdx = (m.typeIdx + 1) % options
	if m.typeIdx == 0 {
		m.index.SetType("")
	} else {
		m.index.SetType(m.index.Types()[m.typeIdx-1])
	}
}

// typeLabel returns the display label for the active type filter.
func (m Model) typeLabel() string {
	if m.typeIdx == 0 {
		return "All"
	}
	return m.index.Types()[m.typeIdx-1]
}

// refreshQuery recomputes the visible sequence after a filter or search
// edit and clamps grid state into the new bounds so no stale out-of-range
// cells survive.
func (m *Model) refreshQuery() tea.Cmd {
	m.visible = m.index.Visible()
	m.clampGrid()
	return m.requestThumbs()
}

// Messages

type loadedMsg state.Snapshot

type thumbMsg struct {
	ID    int64
	Thumb assets.Thumb
}

// Commands

func waitLoadedCmd(ch <-chan state.Snapshot) tea.Cmd {
	return func() tea.Msg {
		return loadedMsg(<-ch)
	}
}

func loadThumbCmd(store *assets.Store, id int64) tea.Cmd {
	return func() tea.Msg {
		return thumbMsg{ID: id, Thumb: store.Load(id)}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
