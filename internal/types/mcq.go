package types

import (
	"time"

	"github.com/google/uuid"
)

// MCQSubject is the MCQ taxonomy root. Import identity is the exact
// trimmed title.
type MCQSubject struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"column:title;not null;index" json:"title"`
	Description string    `gorm:"column:description" json:"description"`
	Active      bool      `gorm:"column:active;not null;default:true" json:"active"`
	Revised     bool      `gorm:"column:revised;not null;default:false" json:"revised"`
	CreatedAt   time.Time `json:"created_at"`
	LastUpdated time.Time `gorm:"column:last_updated" json:"last_updated"`
}

func (MCQSubject) TableName() string { return "mcq_subject" }

// MCQChapter belongs to an MCQSubject. Import identity is
// (title, subject_id).
type MCQChapter struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	SubjectID   uuid.UUID   `gorm:"type:uuid;not null;index" json:"subject_id"`
	Subject     *MCQSubject `gorm:"constraint:OnDelete:CASCADE;foreignKey:SubjectID;references:ID" json:"subject,omitempty"`
	Title       string      `gorm:"column:title;not null;index" json:"title"`
	Description string      `gorm:"column:description" json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
}

func (MCQChapter) TableName() string { return "mcq_chapter" }

// MCQ answer is stored lowercase, one of a-d.
type MCQ struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	ChapterID   uuid.UUID   `gorm:"type:uuid;not null;index" json:"chapter_id"`
	Chapter     *MCQChapter `gorm:"constraint:OnDelete:CASCADE;foreignKey:ChapterID;references:ID" json:"chapter,omitempty"`
	Question    string      `gorm:"column:question;not null" json:"question"`
	Option1     string      `gorm:"column:option1;not null" json:"option1"`
	Option2     string      `gorm:"column:option2;not null" json:"option2"`
	Option3     string      `gorm:"column:option3;not null" json:"option3"`
	Option4     string      `gorm:"column:option4;not null" json:"option4"`
	Answer      string      `gorm:"column:answer;not null" json:"answer"`
	Explanation string      `gorm:"column:explanation" json:"explanation"`
	CreatedAt   time.Time   `json:"created_at"`
	LastUpdated time.Time   `gorm:"column:last_updated" json:"last_updated"`
}

func (MCQ) TableName() string { return "mcq" }
