package stats

import (
	"github.com/Charlescifix/ethan-tracker/internal/models"
)

// Summary holds the headline numbers shown at the top of the stats output
type Summary struct {
	SessionCount      int
	TotalGoals        int
	TotalAssists      int
	TotalTrainingMins int
	AverageRating     float64 // 0 when no sessions exist
	TopPosition       string  // most frequent position label, "" when empty
	RecentGoals       int     // goals over the 5 most recent sessions
	RecentAssists     int     // assists over the 5 most recent sessions
}

// recentWindow is the session count used for "recent" rollups, matching the
// 5-session form window used throughout the stats output
const recentWindow = 5

// Summarize computes the headline summary over a fetched session slice
func Summarize(sessions []models.TrainingSession) Summary {
	summary := Summary{SessionCount: len(sessions)}
	if len(sessions) == 0 {
		return summary
	}

	for _, s := range sessions {
		summary.TotalGoals += s.Goals
		summary.TotalAssists += s.Assists
		summary.TotalTrainingMins += s.DurationMins
	}

	if avg, ok := Mean(sessions, Rating); ok {
		summary.AverageRating = avg
	}

	// Most frequent position label, ties broken by first appearance
	counts := make(map[string]int)
	for _, s := range byDateDesc(sessions) {
		counts[s.PositionLabel()]++
	}
	best := 0
	for _, s := range sessions {
		label := s.PositionLabel()
		if counts[label] > best {
			best = counts[label]
			summary.TopPosition = label
		}
	}

	recent := byDateDesc(sessions)
	if len(recent) > recentWindow {
		recent = recent[:recentWindow]
	}
	for _, s := range recent {
		summary.RecentGoals += s.Goals
		summary.RecentAssists += s.Assists
	}

	return summary
}
