package types

import (
	"time"

	"github.com/google/uuid"
)

// Subject is a flashcard taxonomy root. Import identity is the exact
// trimmed subject_name.
type Subject struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SubjectName string    `gorm:"column:subject_name;not null;index" json:"subject_name"`
	Active      bool      `gorm:"column:active;not null;default:true" json:"active"`
	Revised     time.Time `gorm:"column:revised" json:"revised"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Subject) TableName() string { return "subject" }
