package types

import (
	"time"

	"github.com/google/uuid"
)

// Flashcard is sequence-numbered by card_no, monotonic across the whole
// table relative to the existing maximum at import time.
type Flashcard struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CardNo      int       `gorm:"column:card_no;not null;index" json:"card_no"`
	ChapterID   uuid.UUID `gorm:"type:uuid;not null;index" json:"chapter_id"`
	Chapter     *Chapter  `gorm:"constraint:OnDelete:CASCADE;foreignKey:ChapterID;references:ID" json:"chapter,omitempty"`
	SubjectID   uuid.UUID `gorm:"type:uuid;not null;index" json:"subject_id"`
	Title       string    `gorm:"column:title;not null" json:"title"`
	Description string    `gorm:"column:description" json:"description"`
	Favorite    bool      `gorm:"column:favorite;not null;default:false" json:"favorite"`
	Timestamp   time.Time `gorm:"column:timestamp" json:"timestamp"`
}

func (Flashcard) TableName() string { return "flashcard" }
