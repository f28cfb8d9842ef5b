package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Charlescifix/ethan-tracker/internal/db"
	"github.com/Charlescifix/ethan-tracker/internal/models"
	"github.com/Charlescifix/ethan-tracker/internal/stats"
	"github.com/Charlescifix/ethan-tracker/internal/tui"
)

// formWindow is the rolling window used for the form metrics
const formWindow = 5

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show summary stats and form insights",
	Long:  "Show overall totals, the 5-session rolling form, and per-type, per-position and monthly breakdowns.",
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

		headerStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(tui.ColorAccentBright))

		summary := stats.Summarize(sessions)

		fmt.Println(headerStyle.Render("⚽ Performance Summary"))
		fmt.Printf("  Sessions:        %d\n", summary.SessionCount)
		fmt.Printf("  Total goals:     %d\n", summary.TotalGoals)
		fmt.Printf("  Total assists:   %d\n", summary.TotalAssists)
		fmt.Printf("  Contributions:   %d\n", stats.TotalGoalContributions(sessions))
		fmt.Printf("  Training hours:  %.1f\n", float64(summary.TotalTrainingMins)/60)
		fmt.Printf("  Average rating:  %.2f\n", summary.AverageRating)
		if summary.TopPosition != "" {
			fmt.Printf("  Most sessions:   %s\n", summary.TopPosition)
		}

		fmt.Println()
		fmt.Println(headerStyle.Render("🔥 Current Form"))
		if rolling, ok := stats.RollingAverage(sessions, stats.Rating, formWindow); ok {
			fmt.Printf("  %d-session avg rating: %.2f\n", formWindow, rolling)
		}
		if delta, ok := stats.FormDelta(sessions, formWindow); ok {
			fmt.Printf("  Form delta:            %+.2f (%s)\n", delta, formTrend(delta))
		}
		fmt.Printf("  Recent goals/assists:  %d/%d\n", summary.RecentGoals, summary.RecentAssists)

		if corr, ok := stats.Correlation(sessions, stats.DurationMins, stats.Rating); ok {
			fmt.Printf("  Duration↔rating corr:  %+.2f\n", corr)
		} else {
			fmt.Println("  Duration↔rating corr:  n/a (not enough data)")
		}

		fmt.Println()
		fmt.Println(headerStyle.Render("📋 By Session Type"))
		byType := stats.GroupBySessionType(sessions)
		for _, sessionType := range models.SessionTypes {
			group := byType[sessionType]
			if len(group) == 0 {
				continue
			}
			avg, _ := stats.Mean(group, stats.Rating)
			fmt.Printf("  %-18s %3d sessions, avg rating %.2f\n", sessionType, len(group), avg)
		}

		fmt.Println()
		fmt.Println(headerStyle.Render("👤 By Position"))
		byPosition := stats.GroupByPosition(sessions)
		for _, label := range sortedKeys(byPosition) {
			group := byPosition[label]
			avg, _ := stats.Mean(group, stats.Rating)
			fmt.Printf("  %-18s %3d sessions, %d goals, %d assists, avg rating %.2f\n",
				label, len(group),
				sumGoals(group), sumAssists(group), avg)
		}

		fmt.Println()
		fmt.Println(headerStyle.Render("📈 Monthly Goal Contributions"))
		byMonth := stats.GroupByMonth(sessions)
		for _, month := range sortedKeys(byMonth) {
			group := byMonth[month]
			contributions := stats.TotalGoalContributions(group)
			bar := strings.Repeat("█", contributions)
			fmt.Printf("  %s  %2d %s\n", month, contributions, bar)
		}
	},
}

// formTrend describes the sign of a form delta
func formTrend(delta float64) string {
	switch {
	case delta > 0:
		return "improving"
	case delta < 0:
		return "declining"
	default:
		return "steady"
	}
}

func sortedKeys(groups map[string][]models.TrainingSession) []string {
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func sumGoals(sessions []models.TrainingSession) int {
	total := 0
	for _, s := range sessions {
		total += s.Goals
	}
	return total
}

func sumAssists(sessions []models.TrainingSession) int {
	total := 0
	for _, s := range sessions {
		total += s.Assists
	}
	return total
}
