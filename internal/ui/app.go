package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/christoffel/internal/config"
	"github.com/five82/christoffel/internal/flow"
	"github.com/five82/christoffel/internal/prefs"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Flow      *flow.Flow
	Config    config.Config
	Prefs     prefs.Prefs
	PrefsPath string
	LogPath   string
	Logger    *zap.SugaredLogger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	flow      *flow.Flow
	config    config.Config
	prefsPath string
	logPath   string
	logger    *zap.SugaredLogger
	keys      keyMap

	// UI state
	theme   Theme
	width   int
	height  int
	ready   bool
	compact bool

	// List state
	selected     int
	listViewport viewport.Model
	status       string

	// Add form state
	form formState

	// Overlays
	showHelp bool
	modal    Modal
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	themeName := opts.Prefs.Theme
	if themeName == "" {
		themeName = defaultThemeName
	}

	cfg := opts.Config
	if strings.TrimSpace(cfg.RestaurantName) == "" {
		cfg.RestaurantName = config.Default().RestaurantName
	}
	if strings.TrimSpace(cfg.Tagline) == "" {
		cfg.Tagline = config.Default().Tagline
	}

	return Model{
		flow:      opts.Flow,
		config:    cfg,
		prefsPath: opts.PrefsPath,
		logPath:   opts.LogPath,
		logger:    logger,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(themeName),
		compact:   opts.Prefs.Compact,
		form:      newFormState(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
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
			m.listViewport = viewport.New(m.width, m.listHeight())
		}
		m.ready = true
		m.form.resize(m.width)
		m.updateListViewport()
		return m, nil

	case removalDecisionMsg:
		m.applyRemovalDecision(msg.confirmed)
		return m, nil

	case activityLoadedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		if m.modal == nil && m.screen() != flow.ScreenAddForm {
			m.modal = newActivityModal(m.theme, m.logPath, msg.lines, m.width, m.height)
		}
		return m, nil
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

	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	return m.renderMain()
}

// handleKey routes keyboard input: overlays first, then the active screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = modal
		}
		return m, cmd
	}

	// The form gets every key so letters reach the text inputs.
	if m.screen() == flow.ScreenAddForm {
		return m.handleFormKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		m.updateListViewport()
		return m, nil

	case key.Matches(msg, m.keys.Activity):
		if m.logPath == "" {
			return m, nil
		}
		return m, loadActivityCmd(m.logPath)
	}

	switch m.screen() {
	case flow.ScreenWelcome:
		return m.handleWelcomeKey(msg)
	case flow.ScreenList:
		return m.handleListKey(msg)
	}

	return m, nil
}

func (m Model) screen() flow.Screen {
	if m.flow == nil {
		return flow.ScreenWelcome
	}
	return m.flow.Screen()
}

// savePrefs persists theme and card mode. Errors are logged and dropped.
func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, Compact: m.compact}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warnw("save prefs failed", "path", m.prefsPath, "error", err)
	}
}

// renderMain renders header, command bar, and the active screen.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	b.WriteString(m.renderContent())

	return b.String()
}

// renderContent renders the main content area based on the current screen.
func (m Model) renderContent() string {
	switch m.screen() {
	case flow.ScreenWelcome:
		return m.renderWelcome()
	case flow.ScreenList:
		return m.renderList()
	case flow.ScreenAddForm:
		return m.renderForm()
	default:
		return ""
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or
// opts.Context is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
