package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/types"
)

type SyllabusSubjectRepo interface {
	Create(ctx context.Context, tx *gorm.DB, subject *types.SyllabusSubject) (*types.SyllabusSubject, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.SyllabusSubject, error)
	GetByID(ctx context.Context, tx *gorm.DB, subjectID uuid.UUID) (*types.SyllabusSubject, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, subjectID uuid.UUID) error
}

type syllabusSubjectRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSyllabusSubjectRepo(db *gorm.DB, baseLog *logger.Logger) SyllabusSubjectRepo {
	return &syllabusSubjectRepo{db: db, log: baseLog.With("repo", "SyllabusSubjectRepo")}
}

func (r *syllabusSubjectRepo) Create(ctx context.Context, tx *gorm.DB, subject *types.SyllabusSubject) (*types.SyllabusSubject, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(subject).Error; err != nil {
		return nil, err
	}
	return subject, nil
}

func (r *syllabusSubjectRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.SyllabusSubject, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.SyllabusSubject
	if err := transaction.WithContext(ctx).
		Order("subject_name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *syllabusSubjectRepo) GetByID(ctx context.Context, tx *gorm.DB, subjectID uuid.UUID) (*types.SyllabusSubject, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var subject types.SyllabusSubject
	if err := transaction.WithContext(ctx).
		Where("id = ?", subjectID).
		First(&subject).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *syllabusSubjectRepo) DeleteByID(ctx context.Context, tx *gorm.DB, subjectID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", subjectID).
		Delete(&types.SyllabusSubject{}).Error
}

type SyllabusTopicRepo interface {
	Create(ctx context.Context, tx *gorm.DB, topic *types.SyllabusTopic) (*types.SyllabusTopic, error)
	GetBySubjectID(ctx context.Context, tx *gorm.DB, subjectID uuid.UUID) ([]*types.SyllabusTopic, error)
	GetByID(ctx context.Context, tx *gorm.DB, topicID uuid.UUID) (*types.SyllabusTopic, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, topicID uuid.UUID) error
}

type syllabusTopicRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSyllabusTopicRepo(db *gorm.DB, baseLog *logger.Logger) SyllabusTopicRepo {
	return &syllabusTopicRepo{db: db, log: baseLog.With("repo", "SyllabusTopicRepo")}
}

func (r *syllabusTopicRepo) Create(ctx context.Context, tx *gorm.DB, topic *types.SyllabusTopic) (*types.SyllabusTopic, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(topic).Error; err != nil {
		return nil, err
	}
	return topic, nil
}

func (r *syllabusTopicRepo) GetBySubjectID(ctx context.Context, tx *gorm.DB, subjectID uuid.UUID) ([]*types.SyllabusTopic, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.SyllabusTopic
	if err := transaction.WithContext(ctx).
		Where("subject_id = ?", subjectID).
		Order("topic_name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *syllabusTopicRepo) GetByID(ctx context.Context, tx *gorm.DB, topicID uuid.UUID) (*types.SyllabusTopic, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var topic types.SyllabusTopic
	if err := transaction.WithContext(ctx).
		Where("id = ?", topicID).
		First(&topic).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *syllabusTopicRepo) DeleteByID(ctx context.Context, tx *gorm.DB, topicID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", topicID).
		Delete(&types.SyllabusTopic{}).Error
}

type SyllabusItemRepo interface {
	Create(ctx context.Context, tx *gorm.DB, item *types.SyllabusItem) (*types.SyllabusItem, error)
	GetByTopicID(ctx context.Context, tx *gorm.DB, topicID uuid.UUID) ([]*types.SyllabusItem, error)
	GetByTopicIDs(ctx context.Context, tx *gorm.DB, topicIDs []uuid.UUID) ([]*types.SyllabusItem, error)
	GetByID(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) (*types.SyllabusItem, error)
	Update(ctx context.Context, tx *gorm.DB, item *types.SyllabusItem) (*types.SyllabusItem, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) error
}

type syllabusItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSyllabusItemRepo(db *gorm.DB, baseLog *logger.Logger) SyllabusItemRepo {
	return &syllabusItemRepo{db: db, log: baseLog.With("repo", "SyllabusItemRepo")}
}

func (r *syllabusItemRepo) Create(ctx context.Context, tx *gorm.DB, item *types.SyllabusItem) (*types.SyllabusItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *syllabusItemRepo) GetByTopicID(ctx context.Context, tx *gorm.DB, topicID uuid.UUID) ([]*types.SyllabusItem, error) {
	return r.GetByTopicIDs(ctx, tx, []uuid.UUID{topicID})
}

func (r *syllabusItemRepo) GetByTopicIDs(ctx context.Context, tx *gorm.DB, topicIDs []uuid.UUID) ([]*types.SyllabusItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.SyllabusItem
	if len(topicIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("topic_id IN ?", topicIDs).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *syllabusItemRepo) GetByID(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) (*types.SyllabusItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var item types.SyllabusItem
	if err := transaction.WithContext(ctx).
		Where("id = ?", itemID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *syllabusItemRepo) Update(ctx context.Context, tx *gorm.DB, item *types.SyllabusItem) (*types.SyllabusItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *syllabusItemRepo) DeleteByID(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", itemID).
		Delete(&types.SyllabusItem{}).Error
}
