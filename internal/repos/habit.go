package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/types"
)

type HabitRepo interface {
	Create(ctx context.Context, tx *gorm.DB, habit *types.Habit) (*types.Habit, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Habit, error)
	GetByID(ctx context.Context, tx *gorm.DB, habitID uuid.UUID) (*types.Habit, error)
	Update(ctx context.Context, tx *gorm.DB, habit *types.Habit) (*types.Habit, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, habitID uuid.UUID) error
}

type habitRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewHabitRepo(db *gorm.DB, baseLog *logger.Logger) HabitRepo {
	return &habitRepo{db: db, log: baseLog.With("repo", "HabitRepo")}
}

func (r *habitRepo) Create(ctx context.Context, tx *gorm.DB, habit *types.Habit) (*types.Habit, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(habit).Error; err != nil {
		return nil, err
	}
	return habit, nil
}

func (r *habitRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Habit, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Habit
	if err := transaction.WithContext(ctx).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *habitRepo) GetByID(ctx context.Context, tx *gorm.DB, habitID uuid.UUID) (*types.Habit, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var habit types.Habit
	if err := transaction.WithContext(ctx).
		Where("id = ?", habitID).
		First(&habit).Error; err != nil {
		return nil, err
	}
	return &habit, nil
}

func (r *habitRepo) Update(ctx context.Context, tx *gorm.DB, habit *types.Habit) (*types.Habit, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(habit).Error; err != nil {
		return nil, err
	}
	return habit, nil
}

func (r *habitRepo) DeleteByID(ctx context.Context, tx *gorm.DB, habitID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", habitID).
		Delete(&types.Habit{}).Error
}
