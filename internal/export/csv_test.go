package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/Charlescifix/ethan-tracker/internal/models"
)

func TestWriteCSV(t *testing.T) {
	striker := models.PositionStriker
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 3, 15, 20, 30, 0, 0, time.UTC)

	sessions := []models.TrainingSession{
		{
			ID: 7, Date: date, SessionType: models.TypeMatch, DurationMins: 90,
			Position: &striker, Goals: 2, Assists: 1, Tackles: 3,
			PassesCompleted: 25, Crosses: 4, ShotsOnTarget: 5, Rating: 4,
			Comments: "hat-trick chance, missed a penalty", CreatedAt: created,
		},
		{
			ID: 8, Date: date.AddDate(0, 0, 1), SessionType: models.TypePhysicalTraining,
			DurationMins: 45, Rating: 3, CreatedAt: created,
		},
	}

	var buf strings.Builder
	if err := WriteCSV(&buf, sessions); err != nil {
		t.Fatalf("WriteCSV error: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d records", len(records))
	}
	if records[0][0] != "id" || records[0][4] != "position" || records[0][11] != "rating" {
		t.Fatalf("unexpected header: %v", records[0])
	}

	match := records[1]
	if match[0] != "7" || match[1] != "2024-03-15" || match[2] != string(models.TypeMatch) {
		t.Errorf("unexpected match row: %v", match)
	}
	if match[4] != string(models.PositionStriker) {
		t.Errorf("position column = %q, want Striker", match[4])
	}
	if match[12] != "hat-trick chance, missed a penalty" {
		t.Errorf("comments with commas must survive quoting, got %q", match[12])
	}

	physical := records[2]
	if physical[4] != models.PhysicalOnlyLabel {
		t.Errorf("nil position exported as %q, want %q", physical[4], models.PhysicalOnlyLabel)
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf strings.Builder
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected only the header line, got %d lines", len(lines))
	}
}
