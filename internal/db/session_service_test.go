package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Charlescifix/ethan-tracker/internal/models"
)

// setupTestDB points the package at a throwaway SQLite file and migrates it
func setupTestDB(t *testing.T) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "tracker_test.db")
	testDB, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	DB = testDB
	if err := runMigrations(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
}

func matchOn(t *testing.T, day string, rating int) models.TrainingSession {
	t.Helper()
	date, err := time.Parse("2006-01-02", day)
	if err != nil {
		t.Fatalf("bad test date %q: %v", day, err)
	}
	return models.TrainingSession{
		Date:         date,
		SessionType:  models.TypeMatch,
		DurationMins: 90,
		Rating:       rating,
	}
}

func TestSaveSessionDuplicateSkipped(t *testing.T) {
	setupTestDB(t)

	first := matchOn(t, "2024-01-01", 3)
	outcome, err := SaveSession(&first)
	if err != nil || outcome != SaveOK {
		t.Fatalf("first save = (%v, %v), want (SaveOK, nil)", outcome, err)
	}
	if first.ID == 0 {
		t.Fatal("expected saved session to be assigned an id")
	}

	// Same date and type, different stats: must be dropped, not merged
	second := matchOn(t, "2024-01-01", 5)
	outcome, err = SaveSession(&second)
	if err != nil {
		t.Fatalf("duplicate save returned error: %v", err)
	}
	if outcome != SaveDuplicate {
		t.Fatalf("duplicate save outcome = %v, want SaveDuplicate", outcome)
	}

	sessions, err := FetchAllSessions()
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 stored session, got %d", len(sessions))
	}
	if sessions[0].Rating != 3 {
		t.Errorf("stored rating = %d, want the first record's 3", sessions[0].Rating)
	}
}

func TestSaveSessionSameDateDifferentType(t *testing.T) {
	setupTestDB(t)

	match := matchOn(t, "2024-01-01", 3)
	if outcome, err := SaveSession(&match); err != nil || outcome != SaveOK {
		t.Fatalf("match save = (%v, %v), want (SaveOK, nil)", outcome, err)
	}

	training := matchOn(t, "2024-01-01", 4)
	training.SessionType = models.TypeClubTraining
	outcome, err := SaveSession(&training)
	if err != nil || outcome != SaveOK {
		t.Fatalf("same-date different-type save = (%v, %v), want (SaveOK, nil)", outcome, err)
	}

	sessions, err := FetchAllSessions()
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 stored sessions, got %d", len(sessions))
	}
}

func TestFetchAllSessionsOrderedByDateDesc(t *testing.T) {
	setupTestDB(t)

	// Insert out of order on purpose
	for _, day := range []string{"2024-01-02", "2024-01-03", "2024-01-01"} {
		session := matchOn(t, day, 3)
		if outcome, err := SaveSession(&session); err != nil || outcome != SaveOK {
			t.Fatalf("save %s = (%v, %v), want (SaveOK, nil)", day, outcome, err)
		}
	}

	sessions, err := FetchAllSessions()
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	want := []string{"2024-01-03", "2024-01-02", "2024-01-01"}
	if len(sessions) != len(want) {
		t.Fatalf("expected %d sessions, got %d", len(want), len(sessions))
	}
	for i, day := range want {
		if got := sessions[i].Date.Format("2006-01-02"); got != day {
			t.Errorf("sessions[%d].Date = %s, want %s", i, got, day)
		}
	}
}

func TestFetchAllSessionsEmpty(t *testing.T) {
	setupTestDB(t)

	sessions, err := FetchAllSessions()
	if err != nil {
		t.Fatalf("fetch on empty store returned error: %v", err)
	}
	if sessions == nil {
		t.Fatal("expected an empty slice, got nil")
	}
	if len(sessions) != 0 {
		t.Fatalf("expected no sessions, got %d", len(sessions))
	}
}

func TestDeleteSession(t *testing.T) {
	setupTestDB(t)

	keep := matchOn(t, "2024-01-01", 3)
	drop := matchOn(t, "2024-01-02", 4)
	for _, s := range []*models.TrainingSession{&keep, &drop} {
		if outcome, err := SaveSession(s); err != nil || outcome != SaveOK {
			t.Fatalf("save = (%v, %v), want (SaveOK, nil)", outcome, err)
		}
	}

	outcome, err := DeleteSession(drop.ID)
	if err != nil || outcome != DeleteOK {
		t.Fatalf("delete = (%v, %v), want (DeleteOK, nil)", outcome, err)
	}

	sessions, err := FetchAllSessions()
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(sessions) != 1 || sessions[0].ID != keep.ID {
		t.Fatalf("expected only session #%d to remain, got %d sessions", keep.ID, len(sessions))
	}

	// Deleting the same id again reports not found
	outcome, err = DeleteSession(drop.ID)
	if err != nil {
		t.Fatalf("second delete returned error: %v", err)
	}
	if outcome != DeleteNotFound {
		t.Fatalf("second delete outcome = %v, want DeleteNotFound", outcome)
	}
}

func TestCountSessions(t *testing.T) {
	setupTestDB(t)

	count, err := CountSessions()
	if err != nil || count != 0 {
		t.Fatalf("count on empty store = (%d, %v), want (0, nil)", count, err)
	}

	session := matchOn(t, "2024-01-01", 3)
	if outcome, err := SaveSession(&session); err != nil || outcome != SaveOK {
		t.Fatalf("save = (%v, %v), want (SaveOK, nil)", outcome, err)
	}

	count, err = CountSessions()
	if err != nil || count != 1 {
		t.Fatalf("count = (%d, %v), want (1, nil)", count, err)
	}
}

func TestSaveSessionPersistsPosition(t *testing.T) {
	setupTestDB(t)

	striker := models.PositionStriker
	fielded := matchOn(t, "2024-01-01", 4)
	fielded.Position = &striker

	physical := matchOn(t, "2024-01-02", 3)
	physical.SessionType = models.TypePhysicalTraining
	physical.Position = nil

	for _, s := range []*models.TrainingSession{&fielded, &physical} {
		if outcome, err := SaveSession(s); err != nil || outcome != SaveOK {
			t.Fatalf("save = (%v, %v), want (SaveOK, nil)", outcome, err)
		}
	}

	sessions, err := FetchAllSessions()
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	byID := make(map[uint]models.TrainingSession)
	for _, s := range sessions {
		byID[s.ID] = s
	}

	got := byID[fielded.ID]
	if got.Position == nil || *got.Position != models.PositionStriker {
		t.Errorf("fielded position = %v, want Striker", got.Position)
	}
	if byID[physical.ID].Position != nil {
		t.Errorf("physical-only position = %v, want nil", byID[physical.ID].Position)
	}
}
