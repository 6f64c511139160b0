package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReminderFrequencyDaily  = "daily"
	ReminderFrequencyWeekly = "weekly"
)

// Reminder stores schedule data only; delivery is out of scope.
type Reminder struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Frequency string    `gorm:"column:frequency;not null" json:"frequency"`
	Time      string    `gorm:"column:time;not null" json:"time"`
	WeekDay   int       `gorm:"column:week_day;not null;default:0" json:"week_day"`
	CreatedAt time.Time `json:"created_at"`
}

func (Reminder) TableName() string { return "reminder" }
