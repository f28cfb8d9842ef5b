package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Charlescifix/ethan-tracker/internal/db"
)

var deleteCmd = &cobra.Command{
	Use:     "rm [session-id]",
	Aliases: []string{"delete"},
	Short:   "Delete a recorded session",
	Long:    "Permanently delete a session by its ID. There is no undo.",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		sessionID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid session ID '%s'\n", args[0])
			return
		}

		outcome, err := db.DeleteSession(uint(sessionID))
		switch outcome {
		case db.DeleteOK:
			fmt.Printf("🗑️  Deleted session #%d\n", sessionID)
		case db.DeleteNotFound:
			fmt.Printf("Session #%d not found\n", sessionID)
		default:
			fmt.Printf("Error deleting session: %v\n", err)
		}
	},
}
