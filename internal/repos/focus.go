package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/types"
)

type FocusSessionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, session *types.FocusSession) (*types.FocusSession, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.FocusSession, error)
	GetByDate(ctx context.Context, tx *gorm.DB, date string) ([]*types.FocusSession, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) error
}

type focusSessionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFocusSessionRepo(db *gorm.DB, baseLog *logger.Logger) FocusSessionRepo {
	return &focusSessionRepo{db: db, log: baseLog.With("repo", "FocusSessionRepo")}
}

func (r *focusSessionRepo) Create(ctx context.Context, tx *gorm.DB, session *types.FocusSession) (*types.FocusSession, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

func (r *focusSessionRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.FocusSession, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.FocusSession
	if err := transaction.WithContext(ctx).
		Order("start_time DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *focusSessionRepo) GetByDate(ctx context.Context, tx *gorm.DB, date string) ([]*types.FocusSession, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.FocusSession
	if err := transaction.WithContext(ctx).
		Where("date = ?", date).
		Order("start_time ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *focusSessionRepo) DeleteByID(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", sessionID).
		Delete(&types.FocusSession{}).Error
}
