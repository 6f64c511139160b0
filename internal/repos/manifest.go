package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/types"
)

type ManifestRepo interface {
	Create(ctx context.Context, tx *gorm.DB, manifest *types.Manifest) (*types.Manifest, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Manifest, error)
	GetByID(ctx context.Context, tx *gorm.DB, manifestID uuid.UUID) (*types.Manifest, error)
	Update(ctx context.Context, tx *gorm.DB, manifest *types.Manifest) (*types.Manifest, error)
	ResetTodayDone(ctx context.Context, tx *gorm.DB) error
	DeleteByID(ctx context.Context, tx *gorm.DB, manifestID uuid.UUID) error
}

type manifestRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewManifestRepo(db *gorm.DB, baseLog *logger.Logger) ManifestRepo {
	return &manifestRepo{db: db, log: baseLog.With("repo", "ManifestRepo")}
}

func (r *manifestRepo) Create(ctx context.Context, tx *gorm.DB, manifest *types.Manifest) (*types.Manifest, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(manifest).Error; err != nil {
		return nil, err
	}
	return manifest, nil
}

func (r *manifestRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Manifest, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Manifest
	if err := transaction.WithContext(ctx).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *manifestRepo) GetByID(ctx context.Context, tx *gorm.DB, manifestID uuid.UUID) (*types.Manifest, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var manifest types.Manifest
	if err := transaction.WithContext(ctx).
		Where("id = ?", manifestID).
		First(&manifest).Error; err != nil {
		return nil, err
	}
	return &manifest, nil
}

func (r *manifestRepo) Update(ctx context.Context, tx *gorm.DB, manifest *types.Manifest) (*types.Manifest, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(manifest).Error; err != nil {
		return nil, err
	}
	return manifest, nil
}

func (r *manifestRepo) ResetTodayDone(ctx context.Context, tx *gorm.DB) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Manifest{}).
		Where("today_done = ?", true).
		Update("today_done", false).Error
}

func (r *manifestRepo) DeleteByID(ctx context.Context, tx *gorm.DB, manifestID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", manifestID).
		Delete(&types.Manifest{}).Error
}
