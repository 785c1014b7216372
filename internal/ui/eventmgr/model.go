package eventmgr

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/aaaarruuu/communitydesk/internal/auth"
	"github.com/aaaarruuu/communitydesk/internal/keys"
	"github.com/aaaarruuu/communitydesk/internal/model"
	"github.com/aaaarruuu/communitydesk/internal/store"
	"github.com/aaaarruuu/communitydesk/internal/theme"
)

// EventsChangedMsg signals that events were modified.
type EventsChangedMsg struct{}

type eventMode int

const (
	modeList eventMode = iota
	modeForm
	modeConfirmDelete
	modeSearch
)

type formBindings struct {
	title       string
	date        string
	eventTime   string
	venue       string
	organizer   string
	description string
	confirm     bool
}

type eventsLoadedMsg struct {
	events []model.Event
	err    error
}

type eventSavedMsg struct{ err error }
type eventDeletedMsg struct{ err error }

// Model is the Bubble Tea model for event management.
type Model struct {
	mode        eventMode
	store       store.Store
	keys        *keys.KeyMap
	session     auth.Session
	events      []model.Event
	selectedIdx int
	editingID   string
	isNew       bool
	form        *huh.Form
	confirmForm *huh.Form
	fb          *formBindings
	search      textinput.Model
	query       string
	statusMsg   string
	width       int
	height      int
}

// New creates a new event manager model.
func New(s store.Store, k *keys.KeyMap, session auth.Session, width, height int) Model {
	search := textinput.New()
	search.Placeholder = "search title, venue, organizer"
	search.CharLimit = 80
	return Model{
		mode:    modeList,
		store:   s,
		keys:    k,
		session: session,
		fb:      &formBindings{},
		search:  search,
		width:   width, height: height,
	}
}

// Init loads events from the store.
func (m Model) Init() tea.Cmd {
	return m.loadEvents()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case eventsLoadedMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		m.events = msg.events
		if m.selectedIdx >= len(m.events) && m.selectedIdx > 0 {
			m.selectedIdx = len(m.events) - 1
		}
		return m, nil

	case eventSavedMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.statusMsg = "Event saved"
		}
		m.mode = modeList
		return m, tea.Batch(m.loadEvents(), func() tea.Msg { return EventsChangedMsg{} })

	case eventDeletedMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.statusMsg = "Event deleted"
		}
		m.mode = modeList
		return m, tea.Batch(m.loadEvents(), func() tea.Msg { return EventsChangedMsg{} })

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
	case modeSearch:
		return m.handleSearchKey(msg)
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		if len(m.events) > 0 {
			m.selectedIdx = (m.selectedIdx + 1) % len(m.events)
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if len(m.events) > 0 {
			m.selectedIdx--
			if m.selectedIdx < 0 {
				m.selectedIdx = len(m.events) - 1
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.search.SetValue(m.query)
		m.search.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadEvents()

	case key.Matches(msg, m.keys.New):
		m.isNew = true
		m.editingID = ""
		m.fb.title = ""
		m.fb.date = time.Now().Format("2006-01-02")
		m.fb.eventTime = "18:00"
		m.fb.venue = ""
		m.fb.organizer = ""
		m.fb.description = ""
		m.form = m.buildForm()
		m.mode = modeForm
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Edit):
		if len(m.events) == 0 {
			return m, nil
		}
		ev := m.events[m.selectedIdx]
		if !auth.CanModify(m.session, ev) {
			m.statusMsg = "You can only edit events you created"
			return m, nil
		}
		m.isNew = false
		m.editingID = ev.ID
		m.fb.title = ev.Title
		m.fb.date = ev.EventDate
		m.fb.eventTime = ev.EventTime
		m.fb.venue = ev.Venue
		m.fb.organizer = ev.Organizer
		m.fb.description = ev.Description
		m.form = m.buildForm()
		m.mode = modeForm
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Delete):
		if len(m.events) == 0 {
			return m, nil
		}
		ev := m.events[m.selectedIdx]
		if !auth.CanModify(m.session, ev) {
			m.statusMsg = "You can only delete events you created"
			return m, nil
		}
		m.fb.confirm = false
		m.confirmForm = m.buildConfirmForm()
		m.mode = modeConfirmDelete
		return m, m.confirmForm.Init()
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.query = strings.TrimSpace(m.search.Value())
		m.mode = modeList
		m.search.Blur()
		return m, m.loadEvents()
	case "esc":
		m.mode = modeList
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Event title").
				Value(&m.fb.title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(&m.fb.date).
				Validate(func(s string) error {
					if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("date must be YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewInput().
				Title("Time").
				Placeholder("HH:MM").
				Value(&m.fb.eventTime).
				Validate(func(s string) error {
					if _, err := time.Parse("15:04", strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("time must be HH:MM")
					}
					return nil
				}),
			huh.NewInput().
				Title("Venue").
				Placeholder("Where it happens").
				Value(&m.fb.venue).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("venue is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Organizer").
				Placeholder("Optional").
				Value(&m.fb.organizer),
			huh.NewText().
				Title("Description").
				Placeholder("Optional details").
				Value(&m.fb.description),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) buildConfirmForm() *huh.Form {
	title := ""
	if m.selectedIdx < len(m.events) {
		title = m.events[m.selectedIdx].Title
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete event %q?", title)).
				Description("This cannot be undone.").
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
		return m, m.saveEvent()
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
			ev := m.events[m.selectedIdx]
			return m, m.deleteEvent(ev.ID)
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

// View renders the event manager.
func (m Model) View() string {
	switch m.mode {
	case modeForm:
		return m.viewForm(m.form)
	case modeConfirmDelete:
		return m.viewForm(m.confirmForm)
	default:
		return m.viewList()
	}
}

func (m Model) viewList() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite).MarginBottom(1)
	heading := "Events"
	if m.query != "" {
		heading = fmt.Sprintf("Events matching %q", m.query)
	}
	b.WriteString(titleStyle.Render(heading))
	b.WriteString("\n\n")

	if m.mode == modeSearch {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	if len(m.events) == 0 {
		emptyStyle := lipgloss.NewStyle().Foreground(theme.ColorGray).Italic(true)
		b.WriteString(emptyStyle.Render("No events found. Press 'n' to create one."))
	} else {
		for i, ev := range m.events {
			label := fmt.Sprintf("%s %s  %-30s  %s",
				ev.EventDate, ev.EventTime, truncate(ev.Title, 30), ev.Venue)
			if ev.IsUpcoming() {
				label += "  (upcoming)"
			}
			access := ev.CreatorName
			if auth.CanModify(m.session, ev) {
				access = "editable"
			}
			label += "  " + theme.HelpStyle.Render("["+access+"]")

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
		b.WriteString(lipgloss.NewStyle().Foreground(theme.ColorYellow).Italic(true).Render(m.statusMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(theme.HelpStyle.Render(
		"n new | e edit | d delete | / search | r refresh",
	))

	return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Height(m.height).Render(b.String())
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

// Capturing reports whether a form or the search input owns the keyboard.
func (m Model) Capturing() bool {
	return m.mode != modeList
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

func (m Model) loadEvents() tea.Cmd {
	s := m.store
	query := m.query
	return func() tea.Msg {
		filter := store.EventFilter{SortBy: "event_date"}
		if query != "" {
			filter.Query = &query
		}
		events, err := s.GetEvents(context.Background(), filter)
		return eventsLoadedMsg{events: events, err: err}
	}
}

func (m Model) saveEvent() tea.Cmd {
	s := m.store
	fb := m.fb
	editID := m.editingID
	isNew := m.isNew
	creator := m.session.UserID
	return func() tea.Msg {
		ev := model.Event{
			Title:       strings.TrimSpace(fb.title),
			EventDate:   strings.TrimSpace(fb.date),
			EventTime:   strings.TrimSpace(fb.eventTime),
			Venue:       strings.TrimSpace(fb.venue),
			Organizer:   strings.TrimSpace(fb.organizer),
			Description: fb.description,
		}
		if isNew {
			ev.ID = uuid.NewString()
			ev.CreatedBy = creator
			err := s.CreateEvent(context.Background(), ev)
			return eventSavedMsg{err: err}
		}
		ev.ID = editID
		err := s.UpdateEvent(context.Background(), ev)
		return eventSavedMsg{err: err}
	}
}

func (m Model) deleteEvent(id string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		err := s.DeleteEvent(context.Background(), id)
		return eventDeletedMsg{err: err}
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
