package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Charlescifix/ethan-tracker/internal/db"
	"github.com/Charlescifix/ethan-tracker/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all sessions as CSV",
	Long: `Export a snapshot of all recorded sessions as CSV.

Writes to the given file, or to football_data_<date>.csv by default.
Use '-' to write to stdout.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		sessions, err := db.FetchAllSessions()
		if err != nil {
			fmt.Printf("Error fetching sessions: %v\n", err)
			return
		}

		filename := fmt.Sprintf("football_data_%s.csv", time.Now().Format("20060102"))
		if len(args) == 1 {
			filename = args[0]
		}

		if filename == "-" {
			if err := export.WriteCSV(os.Stdout, sessions); err != nil {
				fmt.Printf("Error writing CSV: %v\n", err)
			}
			return
		}

		f, err := os.Create(filename)
		if err != nil {
			fmt.Printf("Error creating %s: %v\n", filename, err)
			return
		}
		defer f.Close()

		if err := export.WriteCSV(f, sessions); err != nil {
			fmt.Printf("Error writing CSV: %v\n", err)
			return
		}

		fmt.Printf("📄 Exported %d sessions to %s\n", len(sessions), filename)
	},
}
