package stats

import (
	"math"
	"sort"

	"github.com/Charlescifix/ethan-tracker/internal/models"
)

// Field is a named numeric accessor over a training session, used by the
// rolling-average and correlation helpers
type Field func(s models.TrainingSession) float64

var (
	Rating          Field = func(s models.TrainingSession) float64 { return float64(s.Rating) }
	Goals           Field = func(s models.TrainingSession) float64 { return float64(s.Goals) }
	Assists         Field = func(s models.TrainingSession) float64 { return float64(s.Assists) }
	Tackles         Field = func(s models.TrainingSession) float64 { return float64(s.Tackles) }
	PassesCompleted Field = func(s models.TrainingSession) float64 { return float64(s.PassesCompleted) }
	Crosses         Field = func(s models.TrainingSession) float64 { return float64(s.Crosses) }
	ShotsOnTarget   Field = func(s models.TrainingSession) float64 { return float64(s.ShotsOnTarget) }
	DurationMins    Field = func(s models.TrainingSession) float64 { return float64(s.DurationMins) }
)

// byDateDesc returns a copy of sessions sorted most recent first, so the
// helpers give the same answer regardless of input order
func byDateDesc(sessions []models.TrainingSession) []models.TrainingSession {
	sorted := make([]models.TrainingSession, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}

// RollingAverage returns the mean of field over the window most recent
// sessions by date. The second return value is false when there is nothing
// to average (empty input or a non-positive window).
func RollingAverage(sessions []models.TrainingSession, field Field, window int) (float64, bool) {
	if len(sessions) == 0 || window <= 0 {
		return 0, false
	}

	sorted := byDateDesc(sessions)
	if window > len(sorted) {
		window = len(sorted)
	}

	var sum float64
	for _, s := range sorted[:window] {
		sum += field(s)
	}
	return sum / float64(window), true
}

// Mean returns the all-time mean of field across sessions
func Mean(sessions []models.TrainingSession, field Field) (float64, bool) {
	if len(sessions) == 0 {
		return 0, false
	}
	var sum float64
	for _, s := range sessions {
		sum += field(s)
	}
	return sum / float64(len(sessions)), true
}

// FormDelta returns the rolling rating average over the window most recent
// sessions minus the all-time mean rating. A positive value means improving
// form, negative means declining.
func FormDelta(sessions []models.TrainingSession, window int) (float64, bool) {
	recent, ok := RollingAverage(sessions, Rating, window)
	if !ok {
		return 0, false
	}
	allTime, ok := Mean(sessions, Rating)
	if !ok {
		return 0, false
	}
	return recent - allTime, true
}

// GroupByMonth partitions sessions by calendar month, keyed "2006-01"
func GroupByMonth(sessions []models.TrainingSession) map[string][]models.TrainingSession {
	groups := make(map[string][]models.TrainingSession)
	for _, s := range sessions {
		key := s.Date.Format("2006-01")
		groups[key] = append(groups[key], s)
	}
	return groups
}

// GroupByPosition partitions sessions by position label. Sessions without a
// position are bucketed under the physical-only label, never dropped.
func GroupByPosition(sessions []models.TrainingSession) map[string][]models.TrainingSession {
	groups := make(map[string][]models.TrainingSession)
	for _, s := range sessions {
		key := s.PositionLabel()
		groups[key] = append(groups[key], s)
	}
	return groups
}

// GroupBySessionType partitions sessions by their session type
func GroupBySessionType(sessions []models.TrainingSession) map[models.SessionType][]models.TrainingSession {
	groups := make(map[models.SessionType][]models.TrainingSession)
	for _, s := range sessions {
		groups[s.SessionType] = append(groups[s.SessionType], s)
	}
	return groups
}

// Correlation returns the Pearson correlation coefficient between two fields
// across all sessions. The second return value is false when fewer than two
// sessions exist or either field has zero variance.
func Correlation(sessions []models.TrainingSession, fieldA, fieldB Field) (float64, bool) {
	n := len(sessions)
	if n < 2 {
		return 0, false
	}

	var sumA, sumB float64
	for _, s := range sessions {
		sumA += fieldA(s)
		sumB += fieldB(s)
	}
	meanA := sumA / float64(n)
	meanB := sumB / float64(n)

	var cov, varA, varB float64
	for _, s := range sessions {
		da := fieldA(s) - meanA
		db := fieldB(s) - meanB
		cov += da * db
		varA += da * da
		varB += db * db
	}

	if varA == 0 || varB == 0 {
		return 0, false
	}

	return cov / math.Sqrt(varA*varB), true
}

// TotalGoalContributions sums goals plus assists across sessions
func TotalGoalContributions(sessions []models.TrainingSession) int {
	total := 0
	for _, s := range sessions {
		total += s.GoalContributions()
	}
	return total
}
