package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	MilestoneStatusNotStarted = "not-started"
	MilestoneStatusInProgress = "in-progress"
	MilestoneStatusCompleted  = "completed"
)

type Roadmap struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string         `gorm:"column:title;not null" json:"title"`
	Description string         `gorm:"column:description" json:"description"`
	Category    string         `gorm:"column:category" json:"category"`
	TargetDate  string         `gorm:"column:target_date" json:"target_date"`
	Priority    string         `gorm:"column:priority" json:"priority"`
	Tags        datatypes.JSON `gorm:"column:tags" json:"tags"`
	Progress    int            `gorm:"column:progress;not null;default:0" json:"progress"`
	CreatedAt   time.Time      `json:"created_at"`
}

func (Roadmap) TableName() string { return "roadmap" }

type Milestone struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RoadmapID   uuid.UUID `gorm:"type:uuid;not null;index" json:"roadmap_id"`
	Roadmap     *Roadmap  `gorm:"constraint:OnDelete:CASCADE;foreignKey:RoadmapID;references:ID" json:"roadmap,omitempty"`
	Title       string    `gorm:"column:title;not null" json:"title"`
	Description string    `gorm:"column:description" json:"description"`
	StartDate   string    `gorm:"column:start_date" json:"start_date"`
	EndDate     string    `gorm:"column:end_date" json:"end_date"`
	Status      string    `gorm:"column:status;not null;default:not-started" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Milestone) TableName() string { return "milestone" }

// RoadmapNote is a dated journal entry attached to a roadmap.
type RoadmapNote struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RoadmapID uuid.UUID `gorm:"type:uuid;not null;index" json:"roadmap_id"`
	Roadmap   *Roadmap  `gorm:"constraint:OnDelete:CASCADE;foreignKey:RoadmapID;references:ID" json:"roadmap,omitempty"`
	Content   string    `gorm:"column:content;not null" json:"content"`
	Date      string    `gorm:"column:date" json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

func (RoadmapNote) TableName() string { return "roadmap_note" }
