package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/types"
)

type ReminderRepo interface {
	Create(ctx context.Context, tx *gorm.DB, reminder *types.Reminder) (*types.Reminder, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Reminder, error)
	GetByID(ctx context.Context, tx *gorm.DB, reminderID uuid.UUID) (*types.Reminder, error)
	Update(ctx context.Context, tx *gorm.DB, reminder *types.Reminder) (*types.Reminder, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, reminderID uuid.UUID) error
}

type reminderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReminderRepo(db *gorm.DB, baseLog *logger.Logger) ReminderRepo {
	return &reminderRepo{db: db, log: baseLog.With("repo", "ReminderRepo")}
}

func (r *reminderRepo) Create(ctx context.Context, tx *gorm.DB, reminder *types.Reminder) (*types.Reminder, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(reminder).Error; err != nil {
		return nil, err
	}
	return reminder, nil
}

func (r *reminderRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Reminder, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Reminder
	if err := transaction.WithContext(ctx).
		Order("time ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *reminderRepo) GetByID(ctx context.Context, tx *gorm.DB, reminderID uuid.UUID) (*types.Reminder, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var reminder types.Reminder
	if err := transaction.WithContext(ctx).
		Where("id = ?", reminderID).
		First(&reminder).Error; err != nil {
		return nil, err
	}
	return &reminder, nil
}

func (r *reminderRepo) Update(ctx context.Context, tx *gorm.DB, reminder *types.Reminder) (*types.Reminder, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(reminder).Error; err != nil {
		return nil, err
	}
	return reminder, nil
}

func (r *reminderRepo) DeleteByID(ctx context.Context, tx *gorm.DB, reminderID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", reminderID).
		Delete(&types.Reminder{}).Error
}
