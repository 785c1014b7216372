package login

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/aaaarruuu/communitydesk/internal/auth"
	"github.com/aaaarruuu/communitydesk/internal/credential"
	"github.com/aaaarruuu/communitydesk/internal/model"
	"github.com/aaaarruuu/communitydesk/internal/store"
	"github.com/aaaarruuu/communitydesk/internal/theme"
)

// LoggedInMsg signals a successful sign-in and carries the session.
type LoggedInMsg struct {
	Session auth.Session
}

type loginMode int

const (
	modeLogin loginMode = iota
	modeRegister
)

type formBindings struct {
	username string
	password string
	confirm  string
	contact  string
	email    string
	role     string
	remember bool
}

type loginResultMsg struct {
	session auth.Session
	err     error
}

type registerResultMsg struct {
	session auth.Session
	err     error
}

// Model is the Bubble Tea model for the sign-in and registration screens.
type Model struct {
	mode          loginMode
	store         store.Store
	rememberLogin bool
	form          *huh.Form
	fb            *formBindings
	statusMsg     string
	width         int
	height        int
}

// New creates the login model. When rememberLogin is enabled, the last
// used username is prefilled from the credential store.
func New(s store.Store, rememberLogin bool, width, height int) Model {
	fb := &formBindings{role: model.RoleMember, remember: rememberLogin}
	if rememberLogin {
		fb.username = credential.RememberedUsername()
		fb.remember = fb.username != ""
	}
	m := Model{
		mode:          modeLogin,
		store:         s,
		rememberLogin: rememberLogin,
		fb:            fb,
		width:         width,
		height:        height,
	}
	m.form = m.buildLoginForm()
	return m
}

// Init starts the active form.
func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loginResultMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", msg.err)
			m.fb.password = ""
			m.form = m.buildLoginForm()
			return m, m.form.Init()
		}
		return m, func() tea.Msg { return LoggedInMsg{Session: msg.session} }

	case registerResultMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", msg.err)
			m.form = m.buildRegisterForm()
			return m, m.form.Init()
		}
		return m, func() tea.Msg { return LoggedInMsg{Session: msg.session} }

	case tea.KeyMsg:
		if m.mode == modeLogin && msg.String() == "ctrl+n" {
			m.mode = modeRegister
			m.statusMsg = ""
			m.fb.password = ""
			m.fb.confirm = ""
			m.form = m.buildRegisterForm()
			return m, m.form.Init()
		}
		return m.updateForm(msg)
	}

	return m.updateForm(msg)
}

func (m Model) updateForm(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}
	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State == huh.StateCompleted {
		switch m.mode {
		case modeLogin:
			return m, m.doLogin()
		case modeRegister:
			return m, m.doRegister()
		}
	}
	if m.form.State == huh.StateAborted {
		if m.mode == modeRegister {
			m.mode = modeLogin
			m.statusMsg = ""
			m.form = m.buildLoginForm()
			return m, m.form.Init()
		}
		return m, tea.Quit
	}
	return m, cmd
}

func (m Model) buildLoginForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Placeholder("your username").
				Value(&m.fb.username).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("username is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&m.fb.password).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("password is required")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Remember username?").
				Affirmative("Yes").
				Negative("No").
				Value(&m.fb.remember),
		),
	).WithWidth(m.formWidth()).WithShowHelp(true)
}

func (m Model) buildRegisterForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Placeholder("at least 4 characters").
				Value(&m.fb.username),
			huh.NewInput().
				Title("Password").
				Placeholder("at least 6 characters").
				EchoMode(huh.EchoModePassword).
				Value(&m.fb.password),
			huh.NewInput().
				Title("Confirm password").
				EchoMode(huh.EchoModePassword).
				Value(&m.fb.confirm),
			huh.NewInput().
				Title("Contact number").
				Placeholder("10 digits").
				Value(&m.fb.contact),
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(&m.fb.email),
			huh.NewSelect[string]().
				Title("Role").
				Options(
					huh.NewOption(model.RoleMember, model.RoleMember),
					huh.NewOption(model.RoleAdmin, model.RoleAdmin),
				).
				Value(&m.fb.role),
		),
	).WithWidth(m.formWidth()).WithShowHelp(true)
}

func (m Model) doLogin() tea.Cmd {
	s := m.store
	fb := m.fb
	return func() tea.Msg {
		session, err := auth.Login(context.Background(), s, strings.TrimSpace(fb.username), fb.password)
		if err != nil {
			return loginResultMsg{err: err}
		}
		if fb.remember {
			_ = credential.RememberUsername(session.Username)
		} else {
			_ = credential.ForgetUsername()
		}
		return loginResultMsg{session: session}
	}
}

func (m Model) doRegister() tea.Cmd {
	s := m.store
	fb := m.fb
	return func() tea.Msg {
		reg := auth.Registration{
			Username:        strings.TrimSpace(fb.username),
			Password:        fb.password,
			ConfirmPassword: fb.confirm,
			Contact:         strings.TrimSpace(fb.contact),
			Email:           strings.TrimSpace(fb.email),
			Role:            fb.role,
		}
		if err := auth.ValidateRegistration(reg); err != nil {
			return registerResultMsg{err: err}
		}
		hash, err := auth.HashPassword(reg.Password)
		if err != nil {
			return registerResultMsg{err: fmt.Errorf("hash password: %w", err)}
		}
		u := model.User{
			ID:           uuid.NewString(),
			Username:     reg.Username,
			PasswordHash: hash,
			Role:         reg.Role,
			Contact:      reg.Contact,
			Email:        reg.Email,
		}
		if err := s.CreateUser(context.Background(), u); err != nil {
			return registerResultMsg{err: err}
		}
		return registerResultMsg{session: auth.NewSession(u)}
	}
}

// View renders the active form centered on screen.
func (m Model) View() string {
	title := "Community Desk"
	subtitle := "Sign in"
	if m.mode == modeRegister {
		subtitle = "Create an account"
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(theme.ColorBlue).Render(title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.ColorGray).Render(subtitle))
	b.WriteString("\n\n")
	if m.form != nil {
		b.WriteString(m.form.View())
	}
	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.ErrorStyle.Render(m.statusMsg))
	}
	b.WriteString("\n")
	hint := "ctrl+n register | esc quit"
	if m.mode == modeRegister {
		hint = "esc back to sign in"
	}
	b.WriteString(theme.HelpStyle.Render(hint))

	panel := theme.PanelStyle.Width(m.formWidth() + 4).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
}

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) formWidth() int {
	w := m.width - 10
	if w < 40 {
		w = 40
	}
	if w > 64 {
		w = 64
	}
	return w
}
