package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Charlescifix/ethan-tracker/internal/db"
	"github.com/Charlescifix/ethan-tracker/internal/models"
)

// ListModel is the TUI model for browsing and deleting sessions
type ListModel struct {
	width  int
	height int

	// Session data
	sessions []models.TrainingSession
	selected int // index in sessions slice

	// UI state
	showDeleteModal   bool
	deleteModalChoice bool // true for Yes
	statusLine        string
	deletedCount      int
	fetchErr          error
}

// NewListModel creates a new session browser model
func NewListModel(sessions []models.TrainingSession) ListModel {
	return ListModel{
		sessions: sessions,
		selected: 0,
	}
}

// Init initializes the model
func (m ListModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.showDeleteModal {
			return m.handleDeleteModalKeys(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil

		case "down", "j":
			if m.selected < len(m.sessions)-1 {
				m.selected++
			}
			return m, nil

		case "d":
			if len(m.sessions) > 0 {
				m.showDeleteModal = true
				m.deleteModalChoice = false // Default to "No"
			}
			return m, nil
		}
	}

	return m, nil
}

// handleDeleteModalKeys processes keys while the delete confirmation is open
func (m ListModel) handleDeleteModalKeys(msg tea.KeyMsg) (ListModel, tea.Cmd) {
	switch msg.String() {
	case "left", "right":
		m.deleteModalChoice = !m.deleteModalChoice
		return m, nil
	case "y", "Y":
		return m.deleteSelected()
	case "n", "N", "esc":
		m.showDeleteModal = false
		return m, nil
	case "enter":
		if m.deleteModalChoice {
			return m.deleteSelected()
		}
		m.showDeleteModal = false
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// deleteSelected removes the selected session and reloads the list so the
// table reflects the store immediately
func (m ListModel) deleteSelected() (ListModel, tea.Cmd) {
	m.showDeleteModal = false
	if m.selected >= len(m.sessions) {
		return m, nil
	}

	session := m.sessions[m.selected]
	outcome, err := db.DeleteSession(session.ID)
	switch outcome {
	case db.DeleteOK:
		m.deletedCount++
		m.statusLine = fmt.Sprintf("Deleted %s session from %s",
			session.SessionType, session.Date.Format("2006-01-02"))
	case db.DeleteNotFound:
		m.statusLine = fmt.Sprintf("Session #%d was already gone", session.ID)
	default:
		m.statusLine = fmt.Sprintf("Delete failed: %v", err)
		return m, nil
	}

	// Full refresh after deletion
	sessions, err := db.FetchAllSessions()
	if err != nil {
		m.fetchErr = err
		m.sessions = nil
		return m, nil
	}
	m.sessions = sessions
	if m.selected >= len(m.sessions) && m.selected > 0 {
		m.selected = len(m.sessions) - 1
	}
	return m, nil
}

// View renders the TUI
func (m ListModel) View() string {
	tableWidth := (m.width * 60) / 100
	if tableWidth < 50 {
		tableWidth = 50
	}
	detailWidth := m.width - tableWidth - 4
	if detailWidth < 24 {
		detailWidth = 24
	}

	table := m.renderTable(tableWidth)
	details := m.renderDetails(detailWidth)

	main := lipgloss.JoinHorizontal(lipgloss.Top, table, " ", details)

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)
	help := helpStyle.Render("↑/↓: Navigate | d: Delete | q/esc: Quit")

	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	view := main + "\n" + help
	if m.statusLine != "" {
		view += "\n" + statusStyle.Render(m.statusLine)
	}

	if m.showDeleteModal {
		return m.renderDeleteModal()
	}

	return view
}

// renderTable renders the session table panel
func (m ListModel) renderTable(width int) string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-4s %-12s %-18s %-7s %s", "ID", "DATE", "TYPE", "G/A", "RATING")))
	b.WriteString("\n")

	if len(m.sessions) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true)
		if m.fetchErr != nil {
			b.WriteString(emptyStyle.Render("Could not reload sessions: " + m.fetchErr.Error()))
		} else {
			b.WriteString(emptyStyle.Render("No sessions recorded"))
		}
	}

	// Keep the selected row visible in the available height
	visible := m.height - 8
	if visible < 3 {
		visible = 3
	}
	start := 0
	if m.selected >= visible {
		start = m.selected - visible + 1
	}
	end := start + visible
	if end > len(m.sessions) {
		end = len(m.sessions)
	}

	for i := start; i < end; i++ {
		session := m.sessions[i]
		row := fmt.Sprintf("%-4d %-12s %-18s %d/%-5d %s",
			session.ID,
			session.Date.Format("2006-01-02"),
			session.SessionType,
			session.Goals,
			session.Assists,
			strings.Repeat("★", session.Rating))

		if i == m.selected {
			selectedStyle := lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(ColorPrimaryText)).
				Background(lipgloss.Color(ColorAccentMain)).
				Padding(0, 1)
			b.WriteString(selectedStyle.Render(row))
		} else {
			b.WriteString(" " + row)
		}
		b.WriteString("\n")
	}

	outerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Width(width).
		Padding(0, 1)

	return outerStyle.Render(b.String())
}

// renderDetails renders the right panel with the selected session
func (m ListModel) renderDetails(width int) string {
	var b strings.Builder

	if len(m.sessions) == 0 || m.selected >= len(m.sessions) {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true).
			Align(lipgloss.Center).
			Width(width)
		b.WriteString(emptyStyle.Render("Select a session to view details"))
	} else {
		session := m.sessions[m.selected]

		titleStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorPrimaryText))
		b.WriteString(titleStyle.Render(fmt.Sprintf("📋 %s — %s",
			session.SessionType, session.Date.Format("2006-01-02"))))
		b.WriteString("\n\n")

		b.WriteString(fmt.Sprintf("👤 Position: %s\n", session.PositionLabel()))
		b.WriteString(fmt.Sprintf("⏱️  Duration: %d mins\n", session.DurationMins))
		b.WriteString(fmt.Sprintf("⭐ Rating: %s\n", strings.Repeat("★", session.Rating)))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("⚽ Goals: %d   🅰️ Assists: %d\n", session.Goals, session.Assists))
		b.WriteString(fmt.Sprintf("🛡️  Tackles: %d   🔁 Passes: %d\n", session.Tackles, session.PassesCompleted))
		b.WriteString(fmt.Sprintf("➰ Crosses: %d   🎯 Shots: %d\n", session.Crosses, session.ShotsOnTarget))

		if session.Comments != "" {
			commentStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorSecondaryText)).
				Italic(true)
			b.WriteString("\n")
			b.WriteString(commentStyle.Render("“" + session.Comments + "”"))
			b.WriteString("\n")
		}

		createdStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
		b.WriteString("\n")
		b.WriteString(createdStyle.Render("Recorded " + session.CreatedAt.Format("2006-01-02 15:04")))
	}

	outerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Width(width).
		Padding(0, 1)

	return outerStyle.Render(b.String())
}

// renderDeleteModal renders the delete confirmation overlay
func (m ListModel) renderDeleteModal() string {
	session := m.sessions[m.selected]

	selected := lipgloss.NewStyle().
		Padding(0, 2).
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Background(lipgloss.Color(ColorError))
	plain := lipgloss.NewStyle().Padding(0, 2)

	yes := plain.Render("Yes")
	no := plain.Render("No")
	if m.deleteModalChoice {
		yes = selected.Render("Yes")
	} else {
		no = selected.Render("No")
	}

	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(ColorError)).
		Padding(1, 2).
		Align(lipgloss.Center)

	prompt := fmt.Sprintf("Delete %s session from %s?\nThis cannot be undone.",
		session.SessionType, session.Date.Format("2006-01-02"))

	modal := modalStyle.Render(prompt + "\n\n" + lipgloss.JoinHorizontal(lipgloss.Top, yes, "  ", no))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
