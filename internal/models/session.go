package models

import (
	"time"
)

// TrainingSession represents a single training session or match
type TrainingSession struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Date            time.Time   `gorm:"not null;uniqueIndex:idx_sessions_date_type" json:"date"`
	SessionType     SessionType `gorm:"not null;uniqueIndex:idx_sessions_date_type" json:"session_type"`
	DurationMins    int         `gorm:"not null" json:"duration_mins"`
	Position        *Position   `json:"position"` // nil means physical/fitness work only
	Goals           int         `gorm:"default:0" json:"goals"`
	Assists         int         `gorm:"default:0" json:"assists"`
	Tackles         int         `gorm:"default:0" json:"tackles"`
	PassesCompleted int         `gorm:"default:0" json:"passes_completed"`
	Crosses         int         `gorm:"default:0" json:"crosses"`
	ShotsOnTarget   int         `gorm:"default:0" json:"shots_on_target"`
	Rating          int         `gorm:"not null" json:"rating"`
	Comments        string      `json:"comments"`
}

// TableName overrides GORM's pluralization to match the original schema
func (TrainingSession) TableName() string {
	return "training_sessions"
}

// PositionLabel returns the display label for the session's position,
// with a single shared label for physical-only sessions
func (s TrainingSession) PositionLabel() string {
	if s.Position == nil {
		return PhysicalOnlyLabel
	}
	return string(*s.Position)
}

// GoalContributions returns goals plus assists for this session
func (s TrainingSession) GoalContributions() int {
	return s.Goals + s.Assists
}
