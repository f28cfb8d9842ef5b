package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Charlescifix/ethan-tracker/internal/models"
)

// columns is the stable export column order, matching the stored schema
var columns = []string{
	"id", "date", "session_type", "duration_mins", "position",
	"goals", "assists", "tackles", "passes_completed", "crosses",
	"shots_on_target", "rating", "comments", "created_at",
}

// WriteCSV writes a snapshot of the given sessions as CSV. Position is
// exported as its display label so physical-only sessions stay visible in
// the spreadsheet.
func WriteCSV(w io.Writer, sessions []models.TrainingSession) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, s := range sessions {
		row := []string{
			strconv.FormatUint(uint64(s.ID), 10),
			s.Date.Format("2006-01-02"),
			string(s.SessionType),
			strconv.Itoa(s.DurationMins),
			s.PositionLabel(),
			strconv.Itoa(s.Goals),
			strconv.Itoa(s.Assists),
			strconv.Itoa(s.Tackles),
			strconv.Itoa(s.PassesCompleted),
			strconv.Itoa(s.Crosses),
			strconv.Itoa(s.ShotsOnTarget),
			strconv.Itoa(s.Rating),
			s.Comments,
			s.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
