package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Charlescifix/ethan-tracker/internal/models"
)

// RunAddSessionTUI starts the interactive add session wizard
func RunAddSessionTUI() error {
	model := NewAddSessionModel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()

	// Handle exit messages after TUI closes
	if err != nil {
		return err
	}

	if m, ok := finalModel.(AddSessionModel); ok {
		if m.cancelled {
			fmt.Println("❌ Session entry cancelled.")
		} else if m.duplicate {
			fmt.Println("⚠️  Skipped: a session of this type already exists for that date.")
		} else if m.completed && m.savedSessionID > 0 {
			fmt.Printf("✅ New %s session saved - ID: %d\n", m.savedSessionType, m.savedSessionID)
		} else if m.err != nil {
			fmt.Printf("❌ Error: %v\n", m.err)
		}
	}

	return nil
}

// RunSessionListTUI starts the interactive session browser
func RunSessionListTUI(sessions []models.TrainingSession) error {
	model := NewListModel(sessions)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(ListModel); ok && m.deletedCount > 0 {
		fmt.Printf("🗑️  Deleted %d session(s).\n", m.deletedCount)
	}

	return nil
}
