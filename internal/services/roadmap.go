package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/repos"
	"github.com/prepmate/prepmate-backend/internal/types"
)

// RoadmapInput carries the writable roadmap fields. Tags is raw JSON,
// stored as-is.
type RoadmapInput struct {
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	TargetDate  string         `json:"target_date"`
	Priority    string         `json:"priority"`
	Tags        datatypes.JSON `json:"tags"`
}

type MilestoneInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Status      string `json:"status"`
}

type RoadmapService interface {
	Create(ctx context.Context, input RoadmapInput) (*types.Roadmap, error)
	GetAll(ctx context.Context) ([]*types.Roadmap, error)
	Update(ctx context.Context, roadmapID uuid.UUID, input RoadmapInput) (*types.Roadmap, error)
	Delete(ctx context.Context, roadmapID uuid.UUID) error
	AddMilestone(ctx context.Context, roadmapID uuid.UUID, input MilestoneInput) (*types.Milestone, error)
	GetMilestones(ctx context.Context, roadmapID uuid.UUID) ([]*types.Milestone, error)
	UpdateMilestone(ctx context.Context, milestoneID uuid.UUID, input MilestoneInput) (*types.Milestone, error)
	DeleteMilestone(ctx context.Context, milestoneID uuid.UUID) error
	AddNote(ctx context.Context, roadmapID uuid.UUID, content, date string) (*types.RoadmapNote, error)
	GetNotes(ctx context.Context, roadmapID uuid.UUID) ([]*types.RoadmapNote, error)
	DeleteNote(ctx context.Context, noteID uuid.UUID) error
}

type roadmapService struct {
	roadmapRepo   repos.RoadmapRepo
	milestoneRepo repos.MilestoneRepo
	noteRepo      repos.RoadmapNoteRepo
	log           *logger.Logger
}

func NewRoadmapService(
	roadmapRepo repos.RoadmapRepo,
	milestoneRepo repos.MilestoneRepo,
	noteRepo repos.RoadmapNoteRepo,
	baseLog *logger.Logger,
) RoadmapService {
	return &roadmapService{
		roadmapRepo:   roadmapRepo,
		milestoneRepo: milestoneRepo,
		noteRepo:      noteRepo,
		log:           baseLog.With("service", "RoadmapService"),
	}
}

func (s *roadmapService) Create(ctx context.Context, input RoadmapInput) (*types.Roadmap, error) {
	tags := input.Tags
	if len(tags) == 0 {
		tags = []byte("[]")
	}
	roadmap := &types.Roadmap{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		TargetDate:  input.TargetDate,
		Priority:    input.Priority,
		Tags:        tags,
	}
	return s.roadmapRepo.Create(ctx, nil, roadmap)
}

func (s *roadmapService) GetAll(ctx context.Context) ([]*types.Roadmap, error) {
	return s.roadmapRepo.GetAll(ctx, nil)
}

func (s *roadmapService) Update(ctx context.Context, roadmapID uuid.UUID, input RoadmapInput) (*types.Roadmap, error) {
	roadmap, err := s.roadmapRepo.GetByID(ctx, nil, roadmapID)
	if err != nil {
		return nil, err
	}
	roadmap.Title = input.Title
	roadmap.Description = input.Description
	roadmap.Category = input.Category
	roadmap.TargetDate = input.TargetDate
	roadmap.Priority = input.Priority
	if len(input.Tags) > 0 {
		roadmap.Tags = input.Tags
	}
	return s.roadmapRepo.Update(ctx, nil, roadmap)
}

func (s *roadmapService) Delete(ctx context.Context, roadmapID uuid.UUID) error {
	return s.roadmapRepo.DeleteByID(ctx, nil, roadmapID)
}

func (s *roadmapService) AddMilestone(ctx context.Context, roadmapID uuid.UUID, input MilestoneInput) (*types.Milestone, error) {
	status := input.Status
	if status == "" {
		status = types.MilestoneStatusNotStarted
	}
	milestone := &types.Milestone{
		ID:          uuid.New(),
		RoadmapID:   roadmapID,
		Title:       input.Title,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Status:      status,
	}
	created, err := s.milestoneRepo.Create(ctx, nil, milestone)
	if err != nil {
		return nil, err
	}
	if err := s.recomputeProgress(ctx, roadmapID); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *roadmapService) GetMilestones(ctx context.Context, roadmapID uuid.UUID) ([]*types.Milestone, error) {
	return s.milestoneRepo.GetByRoadmapID(ctx, nil, roadmapID)
}

func (s *roadmapService) UpdateMilestone(ctx context.Context, milestoneID uuid.UUID, input MilestoneInput) (*types.Milestone, error) {
	milestone, err := s.milestoneRepo.GetByID(ctx, nil, milestoneID)
	if err != nil {
		return nil, err
	}
	milestone.Title = input.Title
	milestone.Description = input.Description
	milestone.StartDate = input.StartDate
	milestone.EndDate = input.EndDate
	if input.Status != "" {
		milestone.Status = input.Status
	}
	updated, err := s.milestoneRepo.Update(ctx, nil, milestone)
	if err != nil {
		return nil, err
	}
	if err := s.recomputeProgress(ctx, milestone.RoadmapID); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *roadmapService) DeleteMilestone(ctx context.Context, milestoneID uuid.UUID) error {
	milestone, err := s.milestoneRepo.GetByID(ctx, nil, milestoneID)
	if err != nil {
		return err
	}
	if err := s.milestoneRepo.DeleteByID(ctx, nil, milestoneID); err != nil {
		return err
	}
	return s.recomputeProgress(ctx, milestone.RoadmapID)
}

func (s *roadmapService) AddNote(ctx context.Context, roadmapID uuid.UUID, content, date string) (*types.RoadmapNote, error) {
	note := &types.RoadmapNote{
		ID:        uuid.New(),
		RoadmapID: roadmapID,
		Content:   content,
		Date:      date,
	}
	return s.noteRepo.Create(ctx, nil, note)
}

func (s *roadmapService) GetNotes(ctx context.Context, roadmapID uuid.UUID) ([]*types.RoadmapNote, error) {
	return s.noteRepo.GetByRoadmapID(ctx, nil, roadmapID)
}

func (s *roadmapService) DeleteNote(ctx context.Context, noteID uuid.UUID) error {
	return s.noteRepo.DeleteByID(ctx, nil, noteID)
}

// recomputeProgress sets the roadmap's progress to the percentage of its
// milestones with status completed.
func (s *roadmapService) recomputeProgress(ctx context.Context, roadmapID uuid.UUID) error {
	milestones, err := s.milestoneRepo.GetByRoadmapID(ctx, nil, roadmapID)
	if err != nil {
		return err
	}
	completed := 0
	for _, m := range milestones {
		if m.Status == types.MilestoneStatusCompleted {
			completed++
		}
	}

	roadmap, err := s.roadmapRepo.GetByID(ctx, nil, roadmapID)
	if err != nil {
		return err
	}
	roadmap.Progress = percent(completed, len(milestones))
	_, err = s.roadmapRepo.Update(ctx, nil, roadmap)
	return err
}
