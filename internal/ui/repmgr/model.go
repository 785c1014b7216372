package repmgr

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/aaaarruuu/communitydesk/internal/auth"
	"github.com/aaaarruuu/communitydesk/internal/keys"
	"github.com/aaaarruuu/communitydesk/internal/model"
	"github.com/aaaarruuu/communitydesk/internal/store"
	"github.com/aaaarruuu/communitydesk/internal/theme"
)

// RepsChangedMsg signals that representatives were modified.
type RepsChangedMsg struct{}

type repMode int

const (
	modeList repMode = iota
	modeForm
	modeConfirmDelete
	modeAssignments
)

// categoryFilters cycles All followed by each specialty.
var categoryFilters = append([]string{"All"}, model.RepSpecialties...)

type formBindings struct {
	name     string
	category string
	contact  string
	email    string
	status   string
	confirm  bool
}

type repsLoadedMsg struct {
	reps []model.Representative
	err  error
}

type repSavedMsg struct{ err error }
type repDeletedMsg struct{ err error }

type assignmentsLoadedMsg struct {
	rep         model.Representative
	assignments []model.RepAssignment
	err         error
}

// Model is the Bubble Tea model for representative management.
type Model struct {
	mode        repMode
	store       store.Store
	keys        *keys.KeyMap
	session     auth.Session
	reps        []model.Representative
	selectedIdx int
	filterIdx   int
	editingID   string
	isNew       bool
	form        *huh.Form
	confirmForm *huh.Form
	fb          *formBindings

	assignRep   model.Representative
	assignments []model.RepAssignment

	statusMsg string
	width     int
	height    int
}

// New creates a new representative manager model.
func New(s store.Store, k *keys.KeyMap, session auth.Session, width, height int) Model {
	return Model{
		mode:    modeList,
		store:   s,
		keys:    k,
		session: session,
		fb:      &formBindings{},
		width:   width, height: height,
	}
}

// Init loads representatives from the store.
func (m Model) Init() tea.Cmd {
	return m.loadReps()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case repsLoadedMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		m.reps = msg.reps
		if m.selectedIdx >= len(m.reps) && m.selectedIdx > 0 {
			m.selectedIdx = len(m.reps) - 1
		}
		return m, nil

	case repSavedMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.statusMsg = "Representative saved"
		}
		m.mode = modeList
		return m, tea.Batch(m.loadReps(), func() tea.Msg { return RepsChangedMsg{} })

	case repDeletedMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.statusMsg = "Representative deleted"
		}
		m.mode = modeList
		return m, tea.Batch(m.loadReps(), func() tea.Msg { return RepsChangedMsg{} })

	case assignmentsLoadedMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		m.assignRep = msg.rep
		m.assignments = msg.assignments
		m.mode = modeAssignments
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateActiveForm(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.mode {
	case modeList:
		return m.handleListKey(msg)
	case modeForm:
		return m.updateForm(msg)
	case modeConfirmDelete:
		return m.updateConfirm(msg)
	case modeAssignments:
		if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.ViewAssignments) {
			m.mode = modeList
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		if len(m.reps) > 0 {
			m.selectedIdx = (m.selectedIdx + 1) % len(m.reps)
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if len(m.reps) > 0 {
			m.selectedIdx--
			if m.selectedIdx < 0 {
				m.selectedIdx = len(m.reps) - 1
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.CycleFilter):
		m.filterIdx = (m.filterIdx + 1) % len(categoryFilters)
		m.selectedIdx = 0
		return m, m.loadReps()

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadReps()

	case key.Matches(msg, m.keys.ViewAssignments):
		if len(m.reps) == 0 {
			return m, nil
		}
		return m, m.loadAssignments(m.reps[m.selectedIdx])

	case key.Matches(msg, m.keys.New):
		if !auth.CanManageRepresentatives(m.session) {
			m.statusMsg = "Only administrators can manage representatives"
			return m, nil
		}
		m.isNew = true
		m.editingID = ""
		m.fb.name = ""
		m.fb.category = model.SpecialtyOther
		m.fb.contact = ""
		m.fb.email = ""
		m.fb.status = model.RepStatusAvailable
		m.form = m.buildForm()
		m.mode = modeForm
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Edit):
		if len(m.reps) == 0 {
			return m, nil
		}
		if !auth.CanManageRepresentatives(m.session) {
			m.statusMsg = "Only administrators can manage representatives"
			return m, nil
		}
		r := m.reps[m.selectedIdx]
		m.isNew = false
		m.editingID = r.ID
		m.fb.name = r.Name
		m.fb.category = r.Category
		m.fb.contact = r.Contact
		m.fb.email = r.Email
		m.fb.status = r.Status
		m.form = m.buildForm()
		m.mode = modeForm
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Delete):
		if len(m.reps) == 0 {
			return m, nil
		}
		if !auth.CanManageRepresentatives(m.session) {
			m.statusMsg = "Only administrators can manage representatives"
			return m, nil
		}
		m.fb.confirm = false
		m.confirmForm = m.buildConfirmForm()
		m.mode = modeConfirmDelete
		return m, m.confirmForm.Init()
	}
	return m, nil
}

func (m Model) buildForm() *huh.Form {
	categoryOpts := make([]huh.Option[string], 0, len(model.RepSpecialties))
	for _, c := range model.RepSpecialties {
		categoryOpts = append(categoryOpts, huh.NewOption(c, c))
	}
	statusOpts := make([]huh.Option[string], 0, len(model.RepStatuses))
	for _, s := range model.RepStatuses {
		statusOpts = append(statusOpts, huh.NewOption(s, s))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Full name").
				Value(&m.fb.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Specialty").
				Options(categoryOpts...).
				Value(&m.fb.category),
			huh.NewInput().
				Title("Contact").
				Placeholder("Phone number").
				Value(&m.fb.contact).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("contact is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Email").
				Placeholder("Optional").
				Value(&m.fb.email),
			huh.NewSelect[string]().
				Title("Status").
				Options(statusOpts...).
				Value(&m.fb.status),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) buildConfirmForm() *huh.Form {
	name := ""
	if m.selectedIdx < len(m.reps) {
		name = m.reps[m.selectedIdx].Name
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete representative %q?", name)).
				Description("Issues they are assigned to keep their status.").
				Affirmative("Yes, delete").
				Negative("Cancel").
				Value(&m.fb.confirm),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
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
		return m, m.saveRep()
	}
	if m.form.State == huh.StateAborted {
		m.mode = modeList
		return m, nil
	}
	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (Model, tea.Cmd) {
	if m.confirmForm == nil {
		return m, nil
	}
	mdl, cmd := m.confirmForm.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.confirmForm = f
	}
	if m.confirmForm.State == huh.StateCompleted {
		if m.fb.confirm {
			r := m.reps[m.selectedIdx]
			return m, m.deleteRep(r.ID)
		}
		m.mode = modeList
		return m, nil
	}
	if m.confirmForm.State == huh.StateAborted {
		m.mode = modeList
		return m, nil
	}
	return m, cmd
}

func (m Model) updateActiveForm(msg tea.Msg) (Model, tea.Cmd) {
	switch m.mode {
	case modeForm:
		return m.updateForm(msg)
	case modeConfirmDelete:
		return m.updateConfirm(msg)
	}
	return m, nil
}

// View renders the representative manager.
func (m Model) View() string {
	switch m.mode {
	case modeForm:
		return m.viewForm(m.form)
	case modeConfirmDelete:
		return m.viewForm(m.confirmForm)
	case modeAssignments:
		return m.viewAssignments()
	default:
		return m.viewList()
	}
}

func (m Model) viewList() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite).MarginBottom(1)
	b.WriteString(titleStyle.Render(fmt.Sprintf("Representatives [%s]", categoryFilters[m.filterIdx])))
	b.WriteString("\n\n")

	if len(m.reps) == 0 {
		emptyStyle := lipgloss.NewStyle().Foreground(theme.ColorGray).Italic(true)
		empty := "No representatives found."
		if auth.CanManageRepresentatives(m.session) {
			empty += " Press 'n' to add one."
		}
		b.WriteString(emptyStyle.Render(empty))
	} else {
		for i, r := range m.reps {
			label := fmt.Sprintf("%-24s %-14s %-12s %s",
				truncate(r.Name, 24), r.Category, r.Contact,
				theme.RepStatusStyle(r.Status).Render(r.Status),
			)
			if i == m.selectedIdx {
				b.WriteString(theme.SelectedItemStyle.Render(label))
			} else {
				b.WriteString(theme.ListItemStyle.Render(label))
			}
			b.WriteString("\n")
		}
	}

	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.WarnStyle.Render(m.statusMsg))
	}

	b.WriteString("\n\n")
	hints := "v assignments | f filter | r refresh"
	if auth.CanManageRepresentatives(m.session) {
		hints = "n new | e edit | d delete | " + hints
	}
	b.WriteString(theme.HelpStyle.Render(hints))

	return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Height(m.height).Render(b.String())
}

func (m Model) viewAssignments() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite).MarginBottom(1)
	b.WriteString(titleStyle.Render(fmt.Sprintf("Assignments for %s", m.assignRep.Name)))
	b.WriteString("\n\n")

	if len(m.assignments) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.ColorGray).Italic(true).
			Render("No issues assigned."))
	} else {
		for _, a := range m.assignments {
			b.WriteString(fmt.Sprintf("%s  %-22s  %-24s %s\n",
				a.AssignedDate.Format("2006-01-02"),
				truncate(a.Category, 22),
				truncate(a.Location, 24),
				theme.StatusStyle(a.IssueStatus).Render(a.IssueStatus),
			))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(theme.HelpStyle.Render("esc back"))

	return lipgloss.NewStyle().Padding(1, 2).Render(
		theme.PanelStyle.Width(m.width - 6).Render(b.String()),
	)
}

func (m Model) viewForm(f *huh.Form) string {
	if f == nil {
		return ""
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(f.View())
}

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetSession updates the active session after login or logout.
func (m *Model) SetSession(s auth.Session) {
	m.session = s
}

// Capturing reports whether an open form owns the keyboard. The
// assignments view only reads navigation keys, so it does not capture.
func (m Model) Capturing() bool {
	return m.mode == modeForm || m.mode == modeConfirmDelete
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return h
}

func (m Model) loadReps() tea.Cmd {
	s := m.store
	filter := store.RepFilter{}
	if c := categoryFilters[m.filterIdx]; c != "All" {
		filter.Category = &c
	}
	return func() tea.Msg {
		reps, err := s.GetRepresentatives(context.Background(), filter)
		return repsLoadedMsg{reps: reps, err: err}
	}
}

func (m Model) saveRep() tea.Cmd {
	s := m.store
	fb := m.fb
	editID := m.editingID
	isNew := m.isNew
	return func() tea.Msg {
		r := model.Representative{
			Name:     strings.TrimSpace(fb.name),
			Category: fb.category,
			Contact:  strings.TrimSpace(fb.contact),
			Email:    strings.TrimSpace(fb.email),
			Status:   fb.status,
		}
		if isNew {
			err := s.CreateRepresentative(context.Background(), r)
			return repSavedMsg{err: err}
		}
		r.ID = editID
		err := s.UpdateRepresentative(context.Background(), r)
		return repSavedMsg{err: err}
	}
}

func (m Model) deleteRep(id string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		err := s.DeleteRepresentative(context.Background(), id)
		return repDeletedMsg{err: err}
	}
}

func (m Model) loadAssignments(r model.Representative) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		assignments, err := s.GetAssignmentsForRep(context.Background(), r.ID)
		return assignmentsLoadedMsg{rep: r, assignments: assignments, err: err}
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
