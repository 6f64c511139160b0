package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/types"
)

type MCQSubjectRepo interface {
	Create(ctx context.Context, tx *gorm.DB, subject *types.MCQSubject) (*types.MCQSubject, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.MCQSubject, error)
	GetByID(ctx context.Context, tx *gorm.DB, subjectID uuid.UUID) (*types.MCQSubject, error)
	Update(ctx context.Context, tx *gorm.DB, subject *types.MCQSubject) (*types.MCQSubject, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, subjectID uuid.UUID) error
}

type mcqSubjectRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMCQSubjectRepo(db *gorm.DB, baseLog *logger.Logger) MCQSubjectRepo {
	return &mcqSubjectRepo{db: db, log: baseLog.With("repo", "MCQSubjectRepo")}
}

func (r *mcqSubjectRepo) Create(ctx context.Context, tx *gorm.DB, subject *types.MCQSubject) (*types.MCQSubject, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(subject).Error; err != nil {
		return nil, err
	}
	return subject, nil
}

func (r *mcqSubjectRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.MCQSubject, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.MCQSubject
	if err := transaction.WithContext(ctx).
		Order("title ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *mcqSubjectRepo) GetByID(ctx context.Context, tx *gorm.DB, subjectID uuid.UUID) (*types.MCQSubject, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var subject types.MCQSubject
	if err := transaction.WithContext(ctx).
		Where("id = ?", subjectID).
		First(&subject).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *mcqSubjectRepo) Update(ctx context.Context, tx *gorm.DB, subject *types.MCQSubject) (*types.MCQSubject, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(subject).Error; err != nil {
		return nil, err
	}
	return subject, nil
}

func (r *mcqSubjectRepo) DeleteByID(ctx context.Context, tx *gorm.DB, subjectID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", subjectID).
		Delete(&types.MCQSubject{}).Error
}

type MCQChapterRepo interface {
	Create(ctx context.Context, tx *gorm.DB, chapter *types.MCQChapter) (*types.MCQChapter, error)
	GetBySubjectID(ctx context.Context, tx *gorm.DB, subjectID uuid.UUID) ([]*types.MCQChapter, error)
	GetByID(ctx context.Context, tx *gorm.DB, chapterID uuid.UUID) (*types.MCQChapter, error)
	Update(ctx context.Context, tx *gorm.DB, chapter *types.MCQChapter) (*types.MCQChapter, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, chapterID uuid.UUID) error
}

type mcqChapterRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMCQChapterRepo(db *gorm.DB, baseLog *logger.Logger) MCQChapterRepo {
	return &mcqChapterRepo{db: db, log: baseLog.With("repo", "MCQChapterRepo")}
}

func (r *mcqChapterRepo) Create(ctx context.Context, tx *gorm.DB, chapter *types.MCQChapter) (*types.MCQChapter, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(chapter).Error; err != nil {
		return nil, err
	}
	return chapter, nil
}

func (r *mcqChapterRepo) GetBySubjectID(ctx context.Context, tx *gorm.DB, subjectID uuid.UUID) ([]*types.MCQChapter, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.MCQChapter
	if err := transaction.WithContext(ctx).
		Where("subject_id = ?", subjectID).
		Order("title ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *mcqChapterRepo) GetByID(ctx context.Context, tx *gorm.DB, chapterID uuid.UUID) (*types.MCQChapter, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var chapter types.MCQChapter
	if err := transaction.WithContext(ctx).
		Where("id = ?", chapterID).
		First(&chapter).Error; err != nil {
		return nil, err
	}
	return &chapter, nil
}

func (r *mcqChapterRepo) Update(ctx context.Context, tx *gorm.DB, chapter *types.MCQChapter) (*types.MCQChapter, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(chapter).Error; err != nil {
		return nil, err
	}
	return chapter, nil
}

func (r *mcqChapterRepo) DeleteByID(ctx context.Context, tx *gorm.DB, chapterID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", chapterID).
		Delete(&types.MCQChapter{}).Error
}

type MCQRepo interface {
	Create(ctx context.Context, tx *gorm.DB, mcq *types.MCQ) (*types.MCQ, error)
	GetByChapterID(ctx context.Context, tx *gorm.DB, chapterID uuid.UUID) ([]*types.MCQ, error)
	GetByChapterIDs(ctx context.Context, tx *gorm.DB, chapterIDs []uuid.UUID) ([]*types.MCQ, error)
	GetByID(ctx context.Context, tx *gorm.DB, mcqID uuid.UUID) (*types.MCQ, error)
	Update(ctx context.Context, tx *gorm.DB, mcq *types.MCQ) (*types.MCQ, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, mcqID uuid.UUID) error
}

type mcqRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMCQRepo(db *gorm.DB, baseLog *logger.Logger) MCQRepo {
	return &mcqRepo{db: db, log: baseLog.With("repo", "MCQRepo")}
}

func (r *mcqRepo) Create(ctx context.Context, tx *gorm.DB, mcq *types.MCQ) (*types.MCQ, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(mcq).Error; err != nil {
		return nil, err
	}
	return mcq, nil
}

func (r *mcqRepo) GetByChapterID(ctx context.Context, tx *gorm.DB, chapterID uuid.UUID) ([]*types.MCQ, error) {
	return r.GetByChapterIDs(ctx, tx, []uuid.UUID{chapterID})
}

func (r *mcqRepo) GetByChapterIDs(ctx context.Context, tx *gorm.DB, chapterIDs []uuid.UUID) ([]*types.MCQ, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.MCQ
	if len(chapterIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("chapter_id IN ?", chapterIDs).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *mcqRepo) GetByID(ctx context.Context, tx *gorm.DB, mcqID uuid.UUID) (*types.MCQ, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var mcq types.MCQ
	if err := transaction.WithContext(ctx).
		Where("id = ?", mcqID).
		First(&mcq).Error; err != nil {
		return nil, err
	}
	return &mcq, nil
}

func (r *mcqRepo) Update(ctx context.Context, tx *gorm.DB, mcq *types.MCQ) (*types.MCQ, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(mcq).Error; err != nil {
		return nil, err
	}
	return mcq, nil
}

func (r *mcqRepo) DeleteByID(ctx context.Context, tx *gorm.DB, mcqID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", mcqID).
		Delete(&types.MCQ{}).Error
}
