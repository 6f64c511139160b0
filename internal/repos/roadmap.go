package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/types"
)

type RoadmapRepo interface {
	Create(ctx context.Context, tx *gorm.DB, roadmap *types.Roadmap) (*types.Roadmap, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Roadmap, error)
	GetByID(ctx context.Context, tx *gorm.DB, roadmapID uuid.UUID) (*types.Roadmap, error)
	Update(ctx context.Context, tx *gorm.DB, roadmap *types.Roadmap) (*types.Roadmap, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, roadmapID uuid.UUID) error
}

type roadmapRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRoadmapRepo(db *gorm.DB, baseLog *logger.Logger) RoadmapRepo {
	return &roadmapRepo{db: db, log: baseLog.With("repo", "RoadmapRepo")}
}

func (r *roadmapRepo) Create(ctx context.Context, tx *gorm.DB, roadmap *types.Roadmap) (*types.Roadmap, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(roadmap).Error; err != nil {
		return nil, err
	}
	return roadmap, nil
}

func (r *roadmapRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Roadmap, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Roadmap
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *roadmapRepo) GetByID(ctx context.Context, tx *gorm.DB, roadmapID uuid.UUID) (*types.Roadmap, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var roadmap types.Roadmap
	if err := transaction.WithContext(ctx).
		Where("id = ?", roadmapID).
		First(&roadmap).Error; err != nil {
		return nil, err
	}
	return &roadmap, nil
}

func (r *roadmapRepo) Update(ctx context.Context, tx *gorm.DB, roadmap *types.Roadmap) (*types.Roadmap, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(roadmap).Error; err != nil {
		return nil, err
	}
	return roadmap, nil
}

func (r *roadmapRepo) DeleteByID(ctx context.Context, tx *gorm.DB, roadmapID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", roadmapID).
		Delete(&types.Roadmap{}).Error
}

type MilestoneRepo interface {
	Create(ctx context.Context, tx *gorm.DB, milestone *types.Milestone) (*types.Milestone, error)
	GetByRoadmapID(ctx context.Context, tx *gorm.DB, roadmapID uuid.UUID) ([]*types.Milestone, error)
	GetByID(ctx context.Context, tx *gorm.DB, milestoneID uuid.UUID) (*types.Milestone, error)
	Update(ctx context.Context, tx *gorm.DB, milestone *types.Milestone) (*types.Milestone, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, milestoneID uuid.UUID) error
}

type milestoneRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMilestoneRepo(db *gorm.DB, baseLog *logger.Logger) MilestoneRepo {
	return &milestoneRepo{db: db, log: baseLog.With("repo", "MilestoneRepo")}
}

func (r *milestoneRepo) Create(ctx context.Context, tx *gorm.DB, milestone *types.Milestone) (*types.Milestone, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(milestone).Error; err != nil {
		return nil, err
	}
	return milestone, nil
}

func (r *milestoneRepo) GetByRoadmapID(ctx context.Context, tx *gorm.DB, roadmapID uuid.UUID) ([]*types.Milestone, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Milestone
	if err := transaction.WithContext(ctx).
		Where("roadmap_id = ?", roadmapID).
		Order("start_date ASC, created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *milestoneRepo) GetByID(ctx context.Context, tx *gorm.DB, milestoneID uuid.UUID) (*types.Milestone, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var milestone types.Milestone
	if err := transaction.WithContext(ctx).
		Where("id = ?", milestoneID).
		First(&milestone).Error; err != nil {
		return nil, err
	}
	return &milestone, nil
}

func (r *milestoneRepo) Update(ctx context.Context, tx *gorm.DB, milestone *types.Milestone) (*types.Milestone, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(milestone).Error; err != nil {
		return nil, err
	}
	return milestone, nil
}

func (r *milestoneRepo) DeleteByID(ctx context.Context, tx *gorm.DB, milestoneID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", milestoneID).
		Delete(&types.Milestone{}).Error
}

type RoadmapNoteRepo interface {
	Create(ctx context.Context, tx *gorm.DB, note *types.RoadmapNote) (*types.RoadmapNote, error)
	GetByRoadmapID(ctx context.Context, tx *gorm.DB, roadmapID uuid.UUID) ([]*types.RoadmapNote, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, noteID uuid.UUID) error
}

type roadmapNoteRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRoadmapNoteRepo(db *gorm.DB, baseLog *logger.Logger) RoadmapNoteRepo {
	return &roadmapNoteRepo{db: db, log: baseLog.With("repo", "RoadmapNoteRepo")}
}

func (r *roadmapNoteRepo) Create(ctx context.Context, tx *gorm.DB, note *types.RoadmapNote) (*types.RoadmapNote, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(note).Error; err != nil {
		return nil, err
	}
	return note, nil
}

func (r *roadmapNoteRepo) GetByRoadmapID(ctx context.Context, tx *gorm.DB, roadmapID uuid.UUID) ([]*types.RoadmapNote, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.RoadmapNote
	if err := transaction.WithContext(ctx).
		Where("roadmap_id = ?", roadmapID).
		Order("date DESC, created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *roadmapNoteRepo) DeleteByID(ctx context.Context, tx *gorm.DB, noteID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", noteID).
		Delete(&types.RoadmapNote{}).Error
}
