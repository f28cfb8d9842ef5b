package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Charlescifix/ethan-tracker/internal/db"
	"github.com/Charlescifix/ethan-tracker/internal/models"
	"github.com/Charlescifix/ethan-tracker/internal/parser"
	"github.com/Charlescifix/ethan-tracker/internal/tui"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new training session",
	Long: `Record a new training session or match.

Modes:
  Interactive: ethan-tracker add (no flags opens the TUI wizard)
  Quick: ethan-tracker add --date today --type match --duration 90 --rating 4

Dates accept "today", "yesterday", yyyy-mm-dd, or dd/mm/yyyy.
Session types: physical, match, club, home.
Positions: rw (Right Wing), st (Striker), or none for fitness-only work.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		// No flags at all means interactive entry
		if cmd.Flags().NFlag() == 0 {
			if err := tui.RunAddSessionTUI(); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		runDirectAdd(cmd)
	},
}

// runDirectAdd creates a session directly from flags without the TUI
func runDirectAdd(cmd *cobra.Command) {
	dateInput, _ := cmd.Flags().GetString("date")
	sessionDate, err := parser.ParseSessionDate(dateInput)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	typeInput, _ := cmd.Flags().GetString("type")
	sessionType, err := models.ParseSessionType(typeInput)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	positionInput, _ := cmd.Flags().GetString("position")
	position, err := models.ParsePosition(positionInput)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	duration, _ := cmd.Flags().GetInt("duration")
	if duration < 15 || duration > 120 {
		fmt.Println("Error: duration must be between 15 and 120 minutes")
		return
	}

	rating, _ := cmd.Flags().GetInt("rating")
	if rating < 1 || rating > 5 {
		fmt.Println("Error: rating must be between 1 and 5")
		return
	}

	goals, _ := cmd.Flags().GetInt("goals")
	assists, _ := cmd.Flags().GetInt("assists")
	tackles, _ := cmd.Flags().GetInt("tackles")
	passes, _ := cmd.Flags().GetInt("passes")
	crosses, _ := cmd.Flags().GetInt("crosses")
	shots, _ := cmd.Flags().GetInt("shots")
	if goals < 0 || assists < 0 || tackles < 0 || passes < 0 || crosses < 0 || shots < 0 {
		fmt.Println("Error: counting stats cannot be negative")
		return
	}

	comments, _ := cmd.Flags().GetString("comments")

	session := models.TrainingSession{
		Date:            sessionDate,
		SessionType:     sessionType,
		DurationMins:    duration,
		Position:        position,
		Goals:           goals,
		Assists:         assists,
		Tackles:         tackles,
		PassesCompleted: passes,
		Crosses:         crosses,
		ShotsOnTarget:   shots,
		Rating:          rating,
		Comments:        comments,
	}

	outcome, err := db.SaveSession(&session)
	switch outcome {
	case db.SaveOK:
		fmt.Printf("✅ Saved session #%d: %s on %s\n",
			session.ID, session.SessionType, parser.FormatSessionDate(session.Date))
		fmt.Printf("  Position: %s\n", session.PositionLabel())
		fmt.Printf("  Duration: %d mins, Rating: %d/5\n", session.DurationMins, session.Rating)
		if session.GoalContributions() > 0 {
			fmt.Printf("  Goals: %d, Assists: %d\n", session.Goals, session.Assists)
		}
	case db.SaveDuplicate:
		fmt.Printf("⚠️  Skipped: a %s session already exists for %s\n",
			session.SessionType, session.Date.Format("2006-01-02"))
	default:
		fmt.Printf("Error saving session: %v\n", err)
	}
}

func init() {
	// Add flags to the add command
	addCmd.Flags().StringP("date", "d", "today", "Session date: today, yesterday, yyyy-mm-dd, dd/mm/yyyy")
	addCmd.Flags().StringP("type", "t", "", "Session type: physical, match, club, home")
	addCmd.Flags().Int("duration", 60, "Duration in minutes (15-120)")
	addCmd.Flags().StringP("position", "p", "", "Position: rw, st, or none for fitness-only")
	addCmd.Flags().Int("goals", 0, "Goals scored")
	addCmd.Flags().Int("assists", 0, "Assists")
	addCmd.Flags().Int("tackles", 0, "Tackles")
	addCmd.Flags().Int("passes", 0, "Passes completed")
	addCmd.Flags().Int("crosses", 0, "Crosses")
	addCmd.Flags().Int("shots", 0, "Shots on target")
	addCmd.Flags().IntP("rating", "r", 0, "Session rating (1-5)")
	addCmd.Flags().StringP("comments", "c", "", "Free-text comments")
}
