package types

import (
	"time"

	"github.com/google/uuid"
)

type SyllabusSubject struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SubjectName string    `gorm:"column:subject_name;not null;index" json:"subject_name"`
	CreatedAt   time.Time `json:"created_at"`
}

func (SyllabusSubject) TableName() string { return "syllabus_subject" }

type SyllabusTopic struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	SubjectID uuid.UUID        `gorm:"type:uuid;not null;index" json:"subject_id"`
	Subject   *SyllabusSubject `gorm:"constraint:OnDelete:CASCADE;foreignKey:SubjectID;references:ID" json:"subject,omitempty"`
	TopicName string           `gorm:"column:topic_name;not null;index" json:"topic_name"`
	CreatedAt time.Time        `json:"created_at"`
}

func (SyllabusTopic) TableName() string { return "syllabus_topic" }

type SyllabusItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	TopicID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"topic_id"`
	Topic     *SyllabusTopic `gorm:"constraint:OnDelete:CASCADE;foreignKey:TopicID;references:ID" json:"topic,omitempty"`
	TopicName string         `gorm:"column:topic_name;not null" json:"topic_name"`
	Completed bool           `gorm:"column:completed;not null;default:false" json:"completed"`
	CreatedAt time.Time      `json:"created_at"`
}

func (SyllabusItem) TableName() string { return "syllabus_item" }
