package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

type Task struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	TaskName      string     `gorm:"column:taskname;not null" json:"taskname"`
	Description   string     `gorm:"column:description" json:"description"`
	DueDate       string     `gorm:"column:duedate" json:"duedate"`
	Priority      string     `gorm:"column:priority" json:"priority"`
	Status        string     `gorm:"column:status;not null;default:pending" json:"status"`
	WhenCompleted *time.Time `gorm:"column:when_completed" json:"when_completed,omitempty"`
	CreatedAt     time.Time  `gorm:"column:created_date" json:"created_date"`
	UpdatedAt     time.Time  `gorm:"column:updated_date" json:"updated_date"`
}

func (Task) TableName() string { return "task" }
