package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Charlescifix/ethan-tracker/internal/db"
	"github.com/Charlescifix/ethan-tracker/internal/models"
	"github.com/Charlescifix/ethan-tracker/internal/parser"
)

// Step represents the current step in the wizard
type Step int

const (
	StepDate Step = iota
	StepType
	StepDuration
	StepPosition
	StepGoals
	StepAssists
	StepTackles
	StepPasses
	StepCrosses
	StepShots
	StepRating
	StepComments
	StepSave
)

var stepLabels = []string{
	"Date", "Type", "Duration", "Position", "Goals", "Assists",
	"Tackles", "Passes", "Crosses", "Shots", "Rating", "Comments", "Save",
}

// AddSessionModel is the TUI model for the add-session wizard
type AddSessionModel struct {
	currentStep Step
	inputs      []textinput.Model
	width       int
	height      int

	// Validated session data
	date        time.Time
	dateSet     bool
	sessionType models.SessionType
	duration    int
	position    *models.Position
	goals       int
	assists     int
	tackles     int
	passes      int
	crosses     int
	shots       int
	rating      int
	comments    string

	// State
	err              error
	completed        bool
	cancelled        bool
	duplicate        bool
	validationErr    string
	savedSessionID   uint
	savedSessionType models.SessionType

	// Cancel confirmation modal
	showCancelModal   bool
	cancelModalChoice bool // true for Yes (discard), false for No
}

// NewAddSessionModel creates a new add session TUI model
func NewAddSessionModel() AddSessionModel {
	inputs := make([]textinput.Model, StepSave)

	// Apply color theme to all inputs
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 60

		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[StepDate].Placeholder = "today, yesterday, yyyy-mm-dd or dd/mm/yyyy (Enter for today)"
	inputs[StepDate].Focus()
	inputs[StepDate].CharLimit = 20

	inputs[StepType].Placeholder = "physical / match / club / home (required)"
	inputs[StepType].CharLimit = 20

	inputs[StepDuration].Placeholder = "Duration in minutes, 15-120 (Enter for 60)"
	inputs[StepDuration].CharLimit = 3

	inputs[StepPosition].Placeholder = "rw / st / none for fitness-only (Enter to skip)"
	inputs[StepPosition].CharLimit = 20

	for step := StepGoals; step <= StepShots; step++ {
		inputs[step].Placeholder = fmt.Sprintf("%s this session (Enter for 0)", stepLabels[step])
		inputs[step].CharLimit = 3
	}

	inputs[StepRating].Placeholder = "Rate the session 1-5 (required)"
	inputs[StepRating].CharLimit = 1

	inputs[StepComments].Placeholder = "Comments (Enter to skip)"
	inputs[StepComments].CharLimit = 500

	return AddSessionModel{
		currentStep: StepDate,
		inputs:      inputs,
		duration:    60,
	}
}

// Init initializes the model
func (m AddSessionModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m AddSessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Update input field widths based on available space
		maxInputWidth := (m.width * 2 / 3) - 10
		if maxInputWidth < 30 {
			maxInputWidth = 30
		}
		if maxInputWidth > 80 {
			maxInputWidth = 80
		}
		for i := range m.inputs {
			m.inputs[i].Width = maxInputWidth
		}

		return m, nil

	case tea.KeyMsg:
		// Handle cancel modal keys if modal is shown
		if m.showCancelModal {
			switch msg.String() {
			case "left", "right":
				m.cancelModalChoice = !m.cancelModalChoice
				return m, nil
			case "y", "Y":
				m.cancelled = true
				return m, tea.Quit
			case "n", "N", "esc":
				m.showCancelModal = false
				return m, nil
			case "enter":
				if m.cancelModalChoice {
					m.cancelled = true
					return m, tea.Quit
				}
				m.showCancelModal = false
				return m, nil
			case "ctrl+c":
				m.cancelled = true
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c":
			m.cancelled = true
			return m, tea.Quit

		case "esc":
			if !m.hasChanges() {
				m.cancelled = true
				return m, tea.Quit
			}
			m.showCancelModal = true
			m.cancelModalChoice = false // Default to "keep editing"
			return m, nil

		case "enter":
			return m.handleEnter()

		case "tab", "down":
			// Required fields cannot be skipped
			if blocked, reason := m.stepBlocked(); blocked {
				m.validationErr = reason
				return m, nil
			}
			return m.nextStep()

		case "shift+tab", "up":
			return m.prevStep()
		}
	}

	// Update the current input (only for input steps, not Save step)
	var cmd tea.Cmd
	if m.currentStep < StepSave {
		m.inputs[m.currentStep], cmd = m.inputs[m.currentStep].Update(msg)
	}

	return m, cmd
}

// stepBlocked reports whether the current step must be completed before
// moving on
func (m AddSessionModel) stepBlocked() (bool, string) {
	switch m.currentStep {
	case StepType:
		if m.sessionType == "" && strings.TrimSpace(m.inputs[StepType].Value()) == "" {
			return true, "Session type is required"
		}
	case StepRating:
		if m.rating == 0 && strings.TrimSpace(m.inputs[StepRating].Value()) == "" {
			return true, "Rating is required"
		}
	}
	return false, ""
}

// handleEnter validates the current step and advances the wizard
func (m AddSessionModel) handleEnter() (AddSessionModel, tea.Cmd) {
	m.validationErr = "" // Clear any previous validation error

	value := ""
	if m.currentStep < StepSave {
		value = strings.TrimSpace(m.inputs[m.currentStep].Value())
	}

	switch m.currentStep {
	case StepDate:
		if value == "" {
			value = "today"
		}
		date, err := parser.ParseSessionDate(value)
		if err != nil {
			m.validationErr = err.Error()
			return m, nil
		}
		m.date = date
		m.dateSet = true
		return m.nextStep()

	case StepType:
		sessionType, err := models.ParseSessionType(value)
		if err != nil {
			m.validationErr = err.Error()
			return m, nil
		}
		m.sessionType = sessionType
		return m.nextStep()

	case StepDuration:
		if value == "" {
			m.duration = 60
			return m.nextStep()
		}
		duration, err := strconv.Atoi(value)
		if err != nil || duration < 15 || duration > 120 {
			m.validationErr = "Duration must be between 15 and 120 minutes"
			return m, nil
		}
		m.duration = duration
		return m.nextStep()

	case StepPosition:
		position, err := models.ParsePosition(value)
		if err != nil {
			m.validationErr = err.Error()
			return m, nil
		}
		m.position = position
		return m.nextStep()

	case StepGoals, StepAssists, StepTackles, StepPasses, StepCrosses, StepShots:
		count := 0
		if value != "" {
			parsed, err := strconv.Atoi(value)
			if err != nil || parsed < 0 {
				m.validationErr = fmt.Sprintf("%s must be a non-negative number", stepLabels[m.currentStep])
				return m, nil
			}
			count = parsed
		}
		m.setCount(m.currentStep, count)
		return m.nextStep()

	case StepRating:
		rating, err := strconv.Atoi(value)
		if err != nil || rating < 1 || rating > 5 {
			m.validationErr = "Rating must be between 1 and 5"
			return m, nil
		}
		m.rating = rating
		return m.nextStep()

	case StepComments:
		m.comments = value
		return m.nextStep()

	case StepSave:
		return m.saveSession()
	}

	return m, nil
}

// setCount assigns a counting stat by its wizard step
func (m *AddSessionModel) setCount(step Step, count int) {
	switch step {
	case StepGoals:
		m.goals = count
	case StepAssists:
		m.assists = count
	case StepTackles:
		m.tackles = count
	case StepPasses:
		m.passes = count
	case StepCrosses:
		m.crosses = count
	case StepShots:
		m.shots = count
	}
}

// saveSession writes the session to the store and quits
func (m AddSessionModel) saveSession() (AddSessionModel, tea.Cmd) {
	session := models.TrainingSession{
		Date:            m.date,
		SessionType:     m.sessionType,
		DurationMins:    m.duration,
		Position:        m.position,
		Goals:           m.goals,
		Assists:         m.assists,
		Tackles:         m.tackles,
		PassesCompleted: m.passes,
		Crosses:         m.crosses,
		ShotsOnTarget:   m.shots,
		Rating:          m.rating,
		Comments:        m.comments,
	}

	outcome, err := db.SaveSession(&session)
	switch outcome {
	case db.SaveOK:
		m.completed = true
		m.savedSessionID = session.ID
		m.savedSessionType = session.SessionType
	case db.SaveDuplicate:
		m.duplicate = true
	default:
		m.err = err
	}
	return m, tea.Quit
}

// nextStep moves to the next step
func (m AddSessionModel) nextStep() (AddSessionModel, tea.Cmd) {
	if m.currentStep < StepSave {
		m.inputs[m.currentStep].Blur()
		m.currentStep++
		if m.currentStep < StepSave {
			// Only focus input fields, not the Save step
			m.inputs[m.currentStep].Focus()
		}
	}
	return m, textinput.Blink
}

// prevStep moves to the previous step
func (m AddSessionModel) prevStep() (AddSessionModel, tea.Cmd) {
	if m.currentStep > StepDate {
		if m.currentStep < StepSave {
			m.inputs[m.currentStep].Blur()
		}
		m.currentStep--
		m.inputs[m.currentStep].Focus()
	}
	return m, textinput.Blink
}

// hasChanges reports whether anything has been entered yet
func (m AddSessionModel) hasChanges() bool {
	for i := range m.inputs {
		if strings.TrimSpace(m.inputs[i].Value()) != "" {
			return true
		}
	}
	return m.currentStep > StepDate
}

// View renders the TUI
func (m AddSessionModel) View() string {
	if m.cancelled || m.completed || m.duplicate {
		return "" // Exit messages are printed after the TUI closes
	}

	// Handle very small terminals
	if m.width < 85 {
		return m.renderSmallLayout()
	}

	rightWidth := (m.width * 35) / 100
	if rightWidth < 40 {
		rightWidth = 40
	}
	leftWidth := m.width - rightWidth - 4
	if leftWidth < 30 {
		leftWidth = 30
		rightWidth = m.width - leftWidth - 4
	}

	leftStyle := lipgloss.NewStyle().
		Width(leftWidth).
		Height(m.height - 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1)

	rightStyle := lipgloss.NewStyle().
		Width(rightWidth).
		Height(m.height - 2).
		Padding(1)

	mainView := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftStyle.Render(m.renderWizard()),
		" ",
		rightStyle.Render(m.renderPreview(rightWidth)),
	)

	if m.showCancelModal {
		return m.renderCancelModal(mainView)
	}

	return mainView
}

// renderWizard renders the step-by-step wizard
func (m AddSessionModel) renderWizard() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright)).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("📝 Record Training Session"))
	b.WriteString("\n\n")

	currentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	skippedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
	futureStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))

	for i, label := range stepLabels {
		step := Step(i)

		// Extra spacing before Save step to distinguish it
		if step == StepSave {
			b.WriteString("\n")
			label = "💾 " + label
		}

		switch {
		case step == m.currentStep:
			b.WriteString(currentStyle.Render("▶ " + label))
		case step < m.currentStep && m.stepHasValue(step):
			b.WriteString(doneStyle.Render("✓ " + label))
		case step < m.currentStep:
			b.WriteString(skippedStyle.Render("  " + label))
		default:
			b.WriteString(futureStyle.Render("  " + label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Current input field
	if m.currentStep < StepSave {
		b.WriteString(fmt.Sprintf("%s\n", stepPrompt(m.currentStep)))
		b.WriteString(m.inputs[m.currentStep].View())
	} else {
		b.WriteString("💾 Save Session\n")
		b.WriteString("Press Enter to save")
	}

	// Show validation error if any
	if m.validationErr != "" {
		errorStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Bold(true).
			MarginTop(1)
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("❌ " + m.validationErr))
	}

	b.WriteString("\n\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)
	b.WriteString(helpStyle.Render("Enter: Next | Tab/↓: Next | Shift+Tab/↑: Back | Esc: Cancel"))

	return b.String()
}

// stepPrompt is the heading shown above the active input
func stepPrompt(step Step) string {
	switch step {
	case StepDate:
		return "📅 Session Date"
	case StepType:
		return "🎯 Session Type"
	case StepDuration:
		return "⏱️  Duration (minutes)"
	case StepPosition:
		return "👤 Position"
	case StepGoals:
		return "⚽ Goals"
	case StepAssists:
		return "🅰️  Assists"
	case StepTackles:
		return "🛡️  Tackles"
	case StepPasses:
		return "🔁 Passes Completed"
	case StepCrosses:
		return "➰ Crosses"
	case StepShots:
		return "🎯 Shots on Target"
	case StepRating:
		return "⭐ Rating (1-5)"
	case StepComments:
		return "📝 Comments"
	}
	return ""
}

// stepHasValue checks if a step has been filled with a value (not skipped)
func (m AddSessionModel) stepHasValue(step Step) bool {
	switch step {
	case StepDate:
		return m.dateSet
	case StepType:
		return m.sessionType != ""
	case StepDuration:
		return true // always has a value via the default
	case StepPosition:
		return m.position != nil
	case StepGoals:
		return m.goals > 0
	case StepAssists:
		return m.assists > 0
	case StepTackles:
		return m.tackles > 0
	case StepPasses:
		return m.passes > 0
	case StepCrosses:
		return m.crosses > 0
	case StepShots:
		return m.shots > 0
	case StepRating:
		return m.rating > 0
	case StepComments:
		return strings.TrimSpace(m.comments) != ""
	default:
		return false
	}
}

// renderPreview renders the live session preview card
func (m AddSessionModel) renderPreview(panelWidth int) string {
	var card strings.Builder

	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Align(lipgloss.Center)
	card.WriteString(logoStyle.Render("⚽ ETHAN'S TRACKER ⚽"))
	card.WriteString("\n\n")

	if m.dateSet {
		card.WriteString(fmt.Sprintf("📅 %s\n", parser.FormatSessionDate(m.date)))
	}
	if m.sessionType != "" {
		card.WriteString(fmt.Sprintf("🎯 %s\n", m.sessionType))
	}
	card.WriteString(fmt.Sprintf("⏱️  %d mins\n", m.duration))

	positionLabel := models.PhysicalOnlyLabel
	if m.position != nil {
		positionLabel = string(*m.position)
	}
	card.WriteString(fmt.Sprintf("👤 %s\n", positionLabel))

	if m.goals+m.assists > 0 {
		card.WriteString(fmt.Sprintf("⚽ %d goals, %d assists\n", m.goals, m.assists))
	}
	if m.tackles+m.passes+m.crosses+m.shots > 0 {
		card.WriteString(fmt.Sprintf("📊 %dT %dP %dC %dS\n", m.tackles, m.passes, m.crosses, m.shots))
	}
	if m.rating > 0 {
		ratingStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Bold(true)
		card.WriteString(ratingStyle.Render(strings.Repeat("★", m.rating)+strings.Repeat("☆", 5-m.rating)) + "\n")
	}
	if m.comments != "" {
		commentStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true)
		card.WriteString(commentStyle.Render("“" + m.comments + "”"))
		card.WriteString("\n")
	}

	cardWidth := panelWidth - 4
	if cardWidth < 26 {
		cardWidth = 26
	}
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Width(cardWidth).
		Padding(1)

	return cardStyle.Render(card.String())
}

// renderSmallLayout renders the whole TUI for very small terminals
func (m AddSessionModel) renderSmallLayout() string {
	style := lipgloss.NewStyle().
		Width(m.width - 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1)

	return style.Render(m.renderWizard())
}

// renderCancelModal overlays the discard-changes confirmation
func (m AddSessionModel) renderCancelModal(background string) string {
	yesStyle := lipgloss.NewStyle().Padding(0, 2)
	noStyle := lipgloss.NewStyle().Padding(0, 2)
	selected := lipgloss.NewStyle().
		Padding(0, 2).
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Background(lipgloss.Color(ColorAccentMain))

	yes := yesStyle.Render("Yes")
	no := noStyle.Render("No")
	if m.cancelModalChoice {
		yes = selected.Render("Yes")
	} else {
		no = selected.Render("No")
	}

	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(ColorWarning)).
		Padding(1, 2).
		Align(lipgloss.Center)

	modal := modalStyle.Render(
		"Discard this session?\n\n" + lipgloss.JoinHorizontal(lipgloss.Top, yes, "  ", no),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
