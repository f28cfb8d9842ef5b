package db

import (
	"gorm.io/gorm/clause"

	"github.com/Charlescifix/ethan-tracker/internal/models"
)

// SaveOutcome is the result of attempting to save a session
type SaveOutcome int

const (
	SaveOK        SaveOutcome = iota // row inserted
	SaveDuplicate                    // dropped: a session with this date and type already exists
	SaveFailed                       // statement or connection failure
)

// DeleteOutcome is the result of attempting to delete a session
type DeleteOutcome int

const (
	DeleteOK DeleteOutcome = iota
	DeleteNotFound
	DeleteFailed
)

// SaveSession inserts a new training session. A session sharing its (date,
// session type) pair with an existing row is silently dropped at the storage
// level and reported as SaveDuplicate, not an error.
func SaveSession(session *models.TrainingSession) (SaveOutcome, error) {
	result := DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}, {Name: "session_type"}},
		DoNothing: true,
	}).Create(session)

	if result.Error != nil {
		return SaveFailed, result.Error
	}
	if result.RowsAffected == 0 {
		return SaveDuplicate, nil
	}
	return SaveOK, nil
}

// FetchAllSessions returns every stored session, most recent first.
// An empty database yields an empty slice, not an error; on failure the
// slice is empty and the error tells the caller why.
func FetchAllSessions() ([]models.TrainingSession, error) {
	sessions := []models.TrainingSession{}

	err := DB.Order("date DESC").Find(&sessions).Error
	if err != nil {
		return []models.TrainingSession{}, err
	}

	return sessions, nil
}

// DeleteSession removes the session with the given id. Deleting an id that
// does not exist reports DeleteNotFound and has no effect.
func DeleteSession(id uint) (DeleteOutcome, error) {
	result := DB.Delete(&models.TrainingSession{}, id)

	if result.Error != nil {
		return DeleteFailed, result.Error
	}
	if result.RowsAffected == 0 {
		return DeleteNotFound, nil
	}
	return DeleteOK, nil
}

// CountSessions returns the number of stored sessions
func CountSessions() (int64, error) {
	var count int64
	if err := DB.Model(&models.TrainingSession{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
