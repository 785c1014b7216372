package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aaaarruuu/communitydesk/internal/keys"
	"github.com/aaaarruuu/communitydesk/internal/model"
	"github.com/aaaarruuu/communitydesk/internal/store"
	"github.com/aaaarruuu/communitydesk/internal/theme"
)

type statsLoadedMsg struct {
	stats *model.DashboardStats
	err   error
}

// Model is the Bubble Tea model for the dashboard screen.
type Model struct {
	store     store.Store
	keys      *keys.KeyMap
	stats     *model.DashboardStats
	statusMsg string
	width     int
	height    int
}

// New creates a new dashboard model.
func New(s store.Store, k *keys.KeyMap, width, height int) Model {
	return Model{store: s, keys: k, width: width, height: height}
}

// Init loads the aggregate counts.
func (m Model) Init() tea.Cmd {
	return m.loadStats()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case statsLoadedMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		m.stats = msg.stats
		m.statusMsg = ""
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Refresh) {
			return m, m.loadStats()
		}
	}
	return m, nil
}

// View renders the stat cards in two rows of three.
func (m Model) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite).MarginBottom(1)
	b.WriteString(titleStyle.Render("Dashboard"))
	b.WriteString("\n\n")

	if m.stats == nil {
		b.WriteString(theme.HelpStyle.Render("Loading..."))
	} else {
		row1 := lipgloss.JoinHorizontal(lipgloss.Top,
			m.card("Pending Issues", m.stats.PendingIssues, theme.ColorBlue),
			m.card("In Progress", m.stats.InProgressIssues, theme.ColorYellow),
			m.card("Completed", m.stats.CompletedIssues, theme.ColorGreen),
		)
		row2 := lipgloss.JoinHorizontal(lipgloss.Top,
			m.card("Upcoming Events", m.stats.UpcomingEvents, theme.ColorMagenta),
			m.card("Past Events", m.stats.PastEvents, theme.ColorGray),
			m.card("Available Reps", m.stats.AvailableReps, theme.ColorGreen),
		)
		b.WriteString(row1)
		b.WriteString("\n")
		b.WriteString(row2)
	}

	if m.statusMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.ErrorStyle.Render(m.statusMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(theme.HelpStyle.Render("r refresh | 2 events | 3 issues | 4 representatives"))

	return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Height(m.height).Render(b.String())
}

func (m Model) card(label string, value int, accent lipgloss.AdaptiveColor) string {
	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(accent)
	labelStyle := lipgloss.NewStyle().Foreground(theme.ColorGray)

	content := lipgloss.JoinVertical(lipgloss.Center,
		valueStyle.Render(fmt.Sprintf("%d", value)),
		labelStyle.Render(label),
	)
	return theme.CardStyle.Width(m.cardWidth()).Render(content)
}

func (m Model) cardWidth() int {
	w := (m.width-8)/3 - 2
	if w < 16 {
		w = 16
	}
	if w > 28 {
		w = 28
	}
	return w
}

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Refresh reloads the counts, used by the parent after mutations elsewhere.
func (m Model) Refresh() tea.Cmd {
	return m.loadStats()
}

func (m Model) loadStats() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		stats, err := s.GetDashboardStats(context.Background())
		if err != nil {
			return statsLoadedMsg{err: err}
		}
		return statsLoadedMsg{stats: &stats}
	}
}
