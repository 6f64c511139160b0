package types

import (
	"time"

	"github.com/google/uuid"
)

// Chapter belongs to a flashcard Subject. Import identity is
// (chapter_name, subject_id).
type Chapter struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SubjectID   uuid.UUID `gorm:"type:uuid;not null;index" json:"subject_id"`
	Subject     *Subject  `gorm:"constraint:OnDelete:CASCADE;foreignKey:SubjectID;references:ID" json:"subject,omitempty"`
	ChapterName string    `gorm:"column:chapter_name;not null;index" json:"chapter_name"`
	Priority    int       `gorm:"column:priority;not null;default:1" json:"priority"`
	Revised     time.Time `gorm:"column:revised" json:"revised"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Chapter) TableName() string { return "chapter" }
