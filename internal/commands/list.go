package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Charlescifix/ethan-tracker/internal/db"
	"github.com/Charlescifix/ethan-tracker/internal/tui"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List recorded sessions",
	Long:    "List recorded sessions, most recent first. Use --ui for the interactive browser.",
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		sessions, err := db.FetchAllSessions()
		if err != nil {
			fmt.Printf("Error fetching sessions: %v\n", err)
			return
		}

		if len(sessions) == 0 {
			fmt.Println("No sessions recorded yet. Use 'ethan-tracker add' to record your first session.")
			return
		}

		if ui, _ := cmd.Flags().GetBool("ui"); ui {
			if err := tui.RunSessionListTUI(sessions); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		// Print table header
		fmt.Printf("%-4s %-12s %-18s %-14s %-3s %-3s %-6s %s\n",
			"ID", "DATE", "TYPE", "POSITION", "G", "A", "RATING", "MINS")
		fmt.Println(strings.Repeat("-", 72))

		// Print each session
		for _, session := range sessions {
			// Truncate position label if too long
			position := session.PositionLabel()
			if len(position) > 13 {
				position = position[:10] + "..."
			}

			fmt.Printf("%-4d %-12s %-18s %-14s %-3d %-3d %-6s %d\n",
				session.ID,
				session.Date.Format("2006-01-02"),
				session.SessionType,
				position,
				session.Goals,
				session.Assists,
				strings.Repeat("★", session.Rating),
				session.DurationMins)
		}
	},
}

func init() {
	listCmd.Flags().Bool("ui", false, "Open the interactive session browser")
}
