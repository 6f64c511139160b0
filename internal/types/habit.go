package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Habit tracks daily check-ins. CompletedDates holds a JSON array of
// "2006-01-02" date strings.
type Habit struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string         `gorm:"column:name;not null" json:"name"`
	Description    string         `gorm:"column:description" json:"description"`
	CurrentStreak  int            `gorm:"column:current_streak;not null;default:0" json:"current_streak"`
	HighestStreak  int            `gorm:"column:highest_streak;not null;default:0" json:"highest_streak"`
	CompletedDates datatypes.JSON `gorm:"column:completed_dates" json:"completed_dates"`
	CreatedAt      time.Time      `json:"created_at"`
}

func (Habit) TableName() string { return "habit" }
