package issuemgr

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

// IssuesChangedMsg signals that issues or assignments were modified.
type IssuesChangedMsg struct{}

type issueMode int

const (
	modeList issueMode = iota
	modeForm
	modeConfirmDelete
	modeStatus
	modeAssign
	modeDetail
)

// statusFilters cycles All followed by each lifecycle status.
var statusFilters = append([]string{"All"}, model.IssueStatuses...)

type formBindings struct {
	category    string
	location    string
	description string
	priority    string
	status      string
	repID       string
	notes       string
	confirm     bool
}

type issuesLoadedMsg struct {
	issues []model.Issue
	err    error
}

type issueSavedMsg struct{ err error }
type issueDeletedMsg struct{ err error }
type statusChangedMsg struct{ err error }
type assignedMsg struct{ err error }

type repsForAssignMsg struct {
	issue model.Issue
	reps  []model.Representative
	err   error
}

type detailLoadedMsg struct {
	issue      model.Issue
	assignment *model.Assignment
	rep        *model.Representative
	err        error
}

// Model is the Bubble Tea model for issue management.
type Model struct {
	mode        issueMode
	store       store.Store
	keys        *keys.KeyMap
	session     auth.Session
	issues      []model.Issue
	selectedIdx int
	filterIdx   int
	editingID   string
	isNew       bool
	form        *huh.Form
	confirmForm *huh.Form
	statusForm  *huh.Form
	assignForm  *huh.Form
	fb          *formBindings
	assignReps  []model.Representative
	assignIssue model.Issue

	detailIssue      model.Issue
	detailAssignment *model.Assignment
	detailRep        *model.Representative

	statusMsg string
	width     int
	height    int
}

// New creates a new issue manager model.
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

// Init loads issues from the store.
func (m Model) Init() tea.Cmd {
	return m.loadIssues()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case issuesLoadedMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		m.issues = msg.issues
		if m.selectedIdx >= len(m.issues) && m.selectedIdx > 0 {
			m.selectedIdx = len(m.issues) - 1
		}
		return m, nil

	case issueSavedMsg:
		return m.afterMutation(msg.err, "Issue saved")

	case issueDeletedMsg:
		return m.afterMutation(msg.err, "Issue deleted")

	case statusChangedMsg:
		return m.afterMutation(msg.err, "Status updated")

	case assignedMsg:
		return m.afterMutation(msg.err, "Representative assigned, issue moved to In-Progress")

	case repsForAssignMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		m.assignIssue = msg.issue
		m.assignReps = msg.reps
		if len(msg.reps) == 0 {
			m.statusMsg = fmt.Sprintf(
				"No %s representatives available for category %q",
				model.SpecialtyFor(msg.issue.Category), msg.issue.Category,
			)
			return m, nil
		}
		m.fb.repID = msg.reps[0].ID
		m.fb.notes = ""
		m.assignForm = m.buildAssignForm()
		m.mode = modeAssign
		return m, m.assignForm.Init()

	case detailLoadedMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		m.detailIssue = msg.issue
		m.detailAssignment = msg.assignment
		m.detailRep = msg.rep
		m.mode = modeDetail
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateActiveForm(msg)
}

func (m Model) afterMutation(err error, okMsg string) (Model, tea.Cmd) {
	if err != nil {
		m.statusMsg = fmt.Sprintf("Error: %v", err)
	} else {
		m.statusMsg = okMsg
	}
	m.mode = modeList
	return m, tea.Batch(m.loadIssues(), func() tea.Msg { return IssuesChangedMsg{} })
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.mode {
	case modeList:
		return m.handleListKey(msg)
	case modeForm:
		return m.updateHuh(&m.form, msg, func() tea.Cmd { return m.saveIssue() })
	case modeConfirmDelete:
		return m.updateConfirmDelete(msg)
	case modeStatus:
		return m.updateHuh(&m.statusForm, msg, func() tea.Cmd { return m.changeStatus() })
	case modeAssign:
		return m.updateHuh(&m.assignForm, msg, func() tea.Cmd { return m.assignRep() })
	case modeDetail:
		if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Select) {
			m.mode = modeList
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		if len(m.issues) > 0 {
			m.selectedIdx = (m.selectedIdx + 1) % len(m.issues)
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if len(m.issues) > 0 {
			m.selectedIdx--
			if m.selectedIdx < 0 {
				m.selectedIdx = len(m.issues) - 1
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.CycleFilter):
		m.filterIdx = (m.filterIdx + 1) % len(statusFilters)
		m.selectedIdx = 0
		return m, m.loadIssues()

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadIssues()

	case key.Matches(msg, m.keys.Select):
		if len(m.issues) == 0 {
			return m, nil
		}
		return m, m.loadDetail(m.issues[m.selectedIdx])

	case key.Matches(msg, m.keys.New):
		m.isNew = true
		m.editingID = ""
		m.fb.category = model.CategoryOther
		m.fb.location = ""
		m.fb.description = ""
		m.fb.priority = model.PriorityMedium
		m.form = m.buildForm()
		m.mode = modeForm
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Edit):
		if len(m.issues) == 0 {
			return m, nil
		}
		is := m.issues[m.selectedIdx]
		if !auth.CanModify(m.session, is) {
			m.statusMsg = "You can only edit issues you reported"
			return m, nil
		}
		m.isNew = false
		m.editingID = is.ID
		m.fb.category = is.Category
		m.fb.location = is.Location
		m.fb.description = is.Description
		m.fb.priority = is.Priority
		m.fb.status = is.Status
		m.form = m.buildForm()
		m.mode = modeForm
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Delete):
		if len(m.issues) == 0 {
			return m, nil
		}
		is := m.issues[m.selectedIdx]
		if !auth.CanModify(m.session, is) {
			m.statusMsg = "You can only delete issues you reported"
			return m, nil
		}
		m.fb.confirm = false
		m.confirmForm = m.buildConfirmForm()
		m.mode = modeConfirmDelete
		return m, m.confirmForm.Init()

	case key.Matches(msg, m.keys.Status):
		if len(m.issues) == 0 {
			return m, nil
		}
		is := m.issues[m.selectedIdx]
		if !auth.CanModify(m.session, is) {
			m.statusMsg = "You can only update issues you reported"
			return m, nil
		}
		m.fb.status = is.Status
		m.statusForm = m.buildStatusForm(is)
		m.mode = modeStatus
		return m, m.statusForm.Init()

	case key.Matches(msg, m.keys.Assign):
		if len(m.issues) == 0 {
			return m, nil
		}
		is := m.issues[m.selectedIdx]
		if !auth.CanModify(m.session, is) {
			m.statusMsg = "You can only assign issues you reported"
			return m, nil
		}
		return m, m.loadRepsForAssign(is)
	}
	return m, nil
}

func (m Model) buildForm() *huh.Form {
	categoryOpts := make([]huh.Option[string], 0, len(model.IssueCategories))
	for _, c := range model.IssueCategories {
		categoryOpts = append(categoryOpts, huh.NewOption(c, c))
	}
	priorityOpts := make([]huh.Option[string], 0, len(model.IssuePriorities))
	for _, p := range model.IssuePriorities {
		priorityOpts = append(priorityOpts, huh.NewOption(p, p))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOpts...).
				Value(&m.fb.category),
			huh.NewInput().
				Title("Location").
				Placeholder("Where is the problem?").
				Value(&m.fb.location).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("location is required")
					}
					return nil
				}),
			huh.NewText().
				Title("Description").
				Placeholder("Describe the problem").
				Value(&m.fb.description).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("description is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Priority").
				Options(priorityOpts...).
				Value(&m.fb.priority),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) buildConfirmForm() *huh.Form {
	loc := ""
	if m.selectedIdx < len(m.issues) {
		loc = m.issues[m.selectedIdx].Location
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete issue at %q?", loc)).
				Description("Its assignment, if any, is removed too.").
				Affirmative("Yes, delete").
				Negative("Cancel").
				Value(&m.fb.confirm),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) buildStatusForm(is model.Issue) *huh.Form {
	opts := make([]huh.Option[string], 0, len(model.IssueStatuses))
	for _, st := range model.IssueStatuses {
		opts = append(opts, huh.NewOption(st, st))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("Status for issue at %q", is.Location)).
				Options(opts...).
				Value(&m.fb.status),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) buildAssignForm() *huh.Form {
	opts := make([]huh.Option[string], 0, len(m.assignReps))
	for _, r := range m.assignReps {
		label := fmt.Sprintf("%s (%s, %s)", r.Name, r.Category, r.Status)
		opts = append(opts, huh.NewOption(label, r.ID))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("Assign %s representative", model.SpecialtyFor(m.assignIssue.Category))).
				Description(fmt.Sprintf("Issue: %s at %s", m.assignIssue.Category, m.assignIssue.Location)).
				Options(opts...).
				Value(&m.fb.repID),
			huh.NewText().
				Title("Notes").
				Placeholder("Optional instructions").
				Value(&m.fb.notes),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

// updateHuh drives a huh form stored behind a pointer and runs onDone
// when the form completes.
func (m Model) updateHuh(form **huh.Form, msg tea.Msg, onDone func() tea.Cmd) (Model, tea.Cmd) {
	if *form == nil {
		return m, nil
	}
	mdl, cmd := (*form).Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		*form = f
	}
	if (*form).State == huh.StateCompleted {
		return m, onDone()
	}
	if (*form).State == huh.StateAborted {
		m.mode = modeList
		return m, nil
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (Model, tea.Cmd) {
	if m.confirmForm == nil {
		return m, nil
	}
	mdl, cmd := m.confirmForm.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.confirmForm = f
	}
	if m.confirmForm.State == huh.StateCompleted {
		if m.fb.confirm {
			is := m.issues[m.selectedIdx]
			return m, m.deleteIssue(is.ID)
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
		return m.updateHuh(&m.form, msg, func() tea.Cmd { return m.saveIssue() })
	case modeConfirmDelete:
		return m.updateConfirmDelete(msg)
	case modeStatus:
		return m.updateHuh(&m.statusForm, msg, func() tea.Cmd { return m.changeStatus() })
	case modeAssign:
		return m.updateHuh(&m.assignForm, msg, func() tea.Cmd { return m.assignRep() })
	}
	return m, nil
}

// View renders the issue manager.
func (m Model) View() string {
	switch m.mode {
	case modeForm:
		return m.viewForm(m.form)
	case modeConfirmDelete:
		return m.viewForm(m.confirmForm)
	case modeStatus:
		return m.viewForm(m.statusForm)
	case modeAssign:
		return m.viewForm(m.assignForm)
	case modeDetail:
		return m.viewDetail()
	default:
		return m.viewList()
	}
}

func (m Model) viewList() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite).MarginBottom(1)
	b.WriteString(titleStyle.Render(fmt.Sprintf("Issues [%s]", statusFilters[m.filterIdx])))
	b.WriteString("\n\n")

	if len(m.issues) == 0 {
		emptyStyle := lipgloss.NewStyle().Foreground(theme.ColorGray).Italic(true)
		b.WriteString(emptyStyle.Render("No issues found. Press 'n' to report one."))
	} else {
		for i, is := range m.issues {
			label := fmt.Sprintf("%s  %-22s  %-24s %s %s",
				is.DateReported.Format("2006-01-02"),
				truncate(is.Category, 22),
				truncate(is.Location, 24),
				theme.StatusStyle(is.Status).Render(is.Status),
				theme.PriorityStyle(is.Priority).Render(is.Priority),
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
	b.WriteString(theme.HelpStyle.Render(
		"n new | e edit | d delete | s status | a assign | f filter | enter detail | r refresh",
	))

	return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Height(m.height).Render(b.String())
}

func (m Model) viewDetail() string {
	is := m.detailIssue

	labelStyle := lipgloss.NewStyle().Foreground(theme.ColorGray).Width(12)
	row := func(label, value string) string {
		return labelStyle.Render(label) + " " + value
	}

	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite).Render("Issue Detail"),
		"",
		row("Category", is.Category),
		row("Location", is.Location),
		row("Status", theme.StatusStyle(is.Status).Render(is.Status)),
		row("Priority", theme.PriorityStyle(is.Priority).Render(is.Priority)),
		row("Reported", is.DateReported.Format("2006-01-02 15:04")),
		row("Reporter", is.ReporterName),
		"",
		row("Description", ""),
		is.Description,
		"",
	}

	if m.detailAssignment != nil && m.detailRep != nil {
		lines = append(lines,
			row("Assigned to", fmt.Sprintf("%s (%s, %s)",
				m.detailRep.Name, m.detailRep.Category, m.detailRep.Contact)),
			row("Since", m.detailAssignment.AssignedDate.Format("2006-01-02 15:04")),
		)
		if m.detailAssignment.Notes != "" {
			lines = append(lines, row("Notes", m.detailAssignment.Notes))
		}
	} else {
		lines = append(lines, theme.HelpStyle.Render("No representative assigned yet."))
	}

	lines = append(lines, "", theme.HelpStyle.Render("esc back"))

	content := strings.Join(lines, "\n")
	return lipgloss.NewStyle().Padding(1, 2).Render(
		theme.PanelStyle.Width(m.width - 6).Render(content),
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

// Capturing reports whether an open form owns the keyboard. The detail
// view only reads navigation keys, so it does not capture.
func (m Model) Capturing() bool {
	return m.mode != modeList && m.mode != modeDetail
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

func (m Model) loadIssues() tea.Cmd {
	s := m.store
	filter := store.IssueFilter{SortBy: "date_reported", SortDesc: true}
	if st := statusFilters[m.filterIdx]; st != "All" {
		filter.Status = &st
	}
	return func() tea.Msg {
		issues, err := s.GetIssues(context.Background(), filter)
		return issuesLoadedMsg{issues: issues, err: err}
	}
}

func (m Model) saveIssue() tea.Cmd {
	s := m.store
	fb := m.fb
	editID := m.editingID
	isNew := m.isNew
	reporter := m.session.UserID
	return func() tea.Msg {
		is := model.Issue{
			Category:    fb.category,
			Location:    strings.TrimSpace(fb.location),
			Description: strings.TrimSpace(fb.description),
			Priority:    fb.priority,
		}
		if isNew {
			is.ReporterID = reporter
			is.Status = model.IssueStatusPending
			err := s.CreateIssue(context.Background(), is)
			return issueSavedMsg{err: err}
		}
		is.ID = editID
		is.Status = fb.status
		err := s.UpdateIssue(context.Background(), is)
		return issueSavedMsg{err: err}
	}
}

func (m Model) deleteIssue(id string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		err := s.DeleteIssue(context.Background(), id)
		return issueDeletedMsg{err: err}
	}
}

func (m Model) changeStatus() tea.Cmd {
	s := m.store
	id := m.issues[m.selectedIdx].ID
	status := m.fb.status
	return func() tea.Msg {
		err := s.UpdateIssueStatus(context.Background(), id, status)
		return statusChangedMsg{err: err}
	}
}

// loadRepsForAssign fetches the representatives whose specialty the
// category router maps this issue to.
func (m Model) loadRepsForAssign(is model.Issue) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		specialty := model.SpecialtyFor(is.Category)
		reps, err := s.GetRepresentatives(context.Background(), store.RepFilter{
			Category: &specialty,
		})
		return repsForAssignMsg{issue: is, reps: reps, err: err}
	}
}

func (m Model) assignRep() tea.Cmd {
	s := m.store
	issueID := m.assignIssue.ID
	repID := m.fb.repID
	notes := strings.TrimSpace(m.fb.notes)
	return func() tea.Msg {
		err := s.AssignRepresentative(context.Background(), issueID, repID, notes)
		return assignedMsg{err: err}
	}
}

func (m Model) loadDetail(is model.Issue) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		assignment, err := s.GetAssignmentByIssue(context.Background(), is.ID)
		if err != nil {
			return detailLoadedMsg{err: err}
		}
		var rep *model.Representative
		if assignment != nil {
			rep, err = s.GetRepresentativeByID(context.Background(), assignment.RepID)
			if err != nil {
				return detailLoadedMsg{err: err}
			}
		}
		return detailLoadedMsg{issue: is, assignment: assignment, rep: rep}
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
