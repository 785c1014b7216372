package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aaaarruuu/communitydesk/internal/auth"
	"github.com/aaaarruuu/communitydesk/internal/keys"
	"github.com/aaaarruuu/communitydesk/internal/model"
	"github.com/aaaarruuu/communitydesk/internal/store"
	"github.com/aaaarruuu/communitydesk/internal/ui"
	"github.com/aaaarruuu/communitydesk/internal/ui/dashboard"
	"github.com/aaaarruuu/communitydesk/internal/ui/eventmgr"
	"github.com/aaaarruuu/communitydesk/internal/ui/helpview"
	"github.com/aaaarruuu/communitydesk/internal/ui/issuemgr"
	"github.com/aaaarruuu/communitydesk/internal/ui/login"
	"github.com/aaaarruuu/communitydesk/internal/ui/repmgr"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewLogin ViewState = iota
	ViewDashboard
	ViewEvents
	ViewIssues
	ViewReps
	ViewHelp
)

// Model is the root Bubble Tea model that manages view routing, layout,
// the signed-in session, and access to the persistence layer.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	store        store.Store
	config       model.AppConfig
	keys         *keys.KeyMap
	session      auth.Session
	loggedIn     bool

	loginView     login.Model
	dashboardView dashboard.Model
	eventView     eventmgr.Model
	issueView     issuemgr.Model
	repView       repmgr.Model
	helpView      helpview.Model

	ready bool
}

// New creates a new root application model with the given store and config.
func New(s store.Store, cfg model.AppConfig) Model {
	k := keys.DefaultKeyMap()
	return Model{
		currentView:   ViewLogin,
		store:         s,
		config:        cfg,
		keys:          k,
		loginView:     login.New(s, cfg.Display.RememberLogin, 80, 24),
		dashboardView: dashboard.New(s, k, 80, 24),
		eventView:     eventmgr.New(s, k, auth.Session{}, 80, 24),
		issueView:     issuemgr.New(s, k, auth.Session{}, 80, 24),
		repView:       repmgr.New(s, k, auth.Session{}, 80, 24),
		helpView:      helpview.New(k, 80, 24),
	}
}

// Init starts the login form.
func (m Model) Init() tea.Cmd {
	return m.loginView.Init()
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		contentWidth := m.layout.ContentWidth()
		contentHeight := m.layout.ContentHeight()
		m.loginView.SetSize(msg.Width, msg.Height)
		m.dashboardView.SetSize(contentWidth, contentHeight)
		m.eventView.SetSize(contentWidth, contentHeight)
		m.issueView.SetSize(contentWidth, contentHeight)
		m.repView.SetSize(contentWidth, contentHeight)
		m.helpView.SetSize(contentWidth, contentHeight)
		// Forward to the active view so huh forms can calculate their layout.
		return m.updateActiveView(msg)

	case login.LoggedInMsg:
		m.session = msg.Session
		m.loggedIn = true
		m.eventView.SetSession(msg.Session)
		m.issueView.SetSession(msg.Session)
		m.repView.SetSession(msg.Session)
		m.currentView = ViewDashboard
		return m, m.dashboardView.Init()

	case eventmgr.EventsChangedMsg:
		return m, m.dashboardView.Refresh()

	case issuemgr.IssuesChangedMsg:
		return m, m.dashboardView.Refresh()

	case repmgr.RepsChangedMsg:
		return m, m.dashboardView.Refresh()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.loggedIn {
			return m.updateActiveView(msg)
		}
		if handled, mdl, cmd := m.handleGlobalKey(msg); handled {
			return mdl, cmd
		}
	}

	return m.updateActiveView(msg)
}

// handleGlobalKey intercepts navigation keys when the active screen is
// not capturing text input.
func (m Model) handleGlobalKey(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if m.activeViewCapturing() {
		return false, m, nil
	}

	switch msg.String() {
	case "q":
		return true, m, tea.Quit

	case "?":
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
			return true, m, nil
		}
		m.previousView = m.currentView
		m.currentView = ViewHelp
		return true, m, nil

	case "esc":
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
			return true, m, nil
		}

	case "1":
		m.currentView = ViewDashboard
		return true, m, m.dashboardView.Refresh()

	case "2":
		m.currentView = ViewEvents
		return true, m, m.eventView.Init()

	case "3":
		m.currentView = ViewIssues
		return true, m, m.issueView.Init()

	case "4":
		m.currentView = ViewReps
		return true, m, m.repView.Init()

	case "ctrl+l":
		mdl, cmd := m.logout()
		return true, mdl, cmd
	}

	return false, m, nil
}

// logout drops the session and returns to a fresh login screen.
func (m Model) logout() (tea.Model, tea.Cmd) {
	m.session = auth.Session{}
	m.loggedIn = false
	m.eventView.SetSession(auth.Session{})
	m.issueView.SetSession(auth.Session{})
	m.repView.SetSession(auth.Session{})
	m.loginView = login.New(m.store, m.config.Display.RememberLogin, m.layout.Width, m.layout.Height)
	m.currentView = ViewLogin
	return m, m.loginView.Init()
}

// activeViewCapturing reports whether the current screen owns the
// keyboard, for example while a form or search input is open.
func (m Model) activeViewCapturing() bool {
	switch m.currentView {
	case ViewEvents:
		return m.eventView.Capturing()
	case ViewIssues:
		return m.issueView.Capturing()
	case ViewReps:
		return m.repView.Capturing()
	}
	return false
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewLogin:
		m.loginView, cmd = m.loginView.Update(msg)
	case ViewDashboard:
		m.dashboardView, cmd = m.dashboardView.Update(msg)
	case ViewEvents:
		m.eventView, cmd = m.eventView.Update(msg)
	case ViewIssues:
		m.issueView, cmd = m.issueView.Update(msg)
	case ViewReps:
		m.repView, cmd = m.repView.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.currentView == ViewLogin {
		return m.loginView.View()
	}

	header := m.layout.RenderHeader("Community Desk", m.identity())
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewEvents:
		return m.eventView.View()
	case ViewIssues:
		return m.issueView.View()
	case ViewReps:
		return m.repView.View()
	case ViewHelp:
		return m.helpView.View()
	default:
		return ""
	}
}

// identity returns the header label for the signed-in user.
func (m Model) identity() string {
	if !m.loggedIn {
		return ""
	}
	return m.session.Username + " (" + m.session.Role + ")"
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	switch m.currentView {
	case ViewHelp:
		return "? close help | esc back"
	case ViewEvents:
		return "1 dashboard | 3 issues | 4 reps | ? help | ctrl+l logout | q quit"
	case ViewIssues:
		return "1 dashboard | 2 events | 4 reps | ? help | ctrl+l logout | q quit"
	case ViewReps:
		return "1 dashboard | 2 events | 3 issues | ? help | ctrl+l logout | q quit"
	default:
		return "2 events | 3 issues | 4 reps | ? help | ctrl+l logout | q quit"
	}
}
