package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	FocusStatusCompleted = "completed"
	FocusStatusAbandoned = "abandoned"
)

// FocusSession records one timed focus run. Date is the "2006-01-02"
// calendar day used for history grouping.
type FocusSession struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StartTime time.Time `gorm:"column:start_time" json:"start_time"`
	EndTime   time.Time `gorm:"column:end_time" json:"end_time"`
	Duration  int       `gorm:"column:duration;not null;default:0" json:"duration"`
	Status    string    `gorm:"column:status" json:"status"`
	Date      string    `gorm:"column:date;index" json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

func (FocusSession) TableName() string { return "focus_session" }
