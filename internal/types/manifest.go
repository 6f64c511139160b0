package types

import (
	"time"

	"github.com/google/uuid"
)

// Manifest is a daily affirmation entry; TodayDone flips once per day.
type Manifest struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Text      string    `gorm:"column:text;not null" json:"text"`
	TodayDone bool      `gorm:"column:today_done;not null;default:false" json:"today_done"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Manifest) TableName() string { return "manifest" }
