package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/types"
)

type SubjectRepo interface {
	Create(ctx context.Context, tx *gorm.DB, subject *types.Subject) (*types.Subject, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Subject, error)
	GetByID(ctx context.Context, tx *gorm.DB, subjectID uuid.UUID) (*types.Subject, error)
	Update(ctx context.Context, tx *gorm.DB, subject *types.Subject) (*types.Subject, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, subjectID uuid.UUID) error
}

type subjectRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSubjectRepo(db *gorm.DB, baseLog *logger.Logger) SubjectRepo {
	return &subjectRepo{db: db, log: baseLog.With("repo", "SubjectRepo")}
}

func (r *subjectRepo) Create(ctx context.Context, tx *gorm.DB, subject *types.Subject) (*types.Subject, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(subject).Error; err != nil {
		return nil, err
	}
	return subject, nil
}

func (r *subjectRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Subject, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Subject
	if err := transaction.WithContext(ctx).
		Order("subject_name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *subjectRepo) GetByID(ctx context.Context, tx *gorm.DB, subjectID uuid.UUID) (*types.Subject, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var subject types.Subject
	if err := transaction.WithContext(ctx).
		Where("id = ?", subjectID).
		First(&subject).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *subjectRepo) Update(ctx context.Context, tx *gorm.DB, subject *types.Subject) (*types.Subject, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(subject).Error; err != nil {
		return nil, err
	}
	return subject, nil
}

func (r *subjectRepo) DeleteByID(ctx context.Context, tx *gorm.DB, subjectID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", subjectID).
		Delete(&types.Subject{}).Error
}

type ChapterRepo interface {
	Create(ctx context.Context, tx *gorm.DB, chapter *types.Chapter) (*types.Chapter, error)
	GetBySubjectID(ctx context.Context, tx *gorm.DB, subjectID uuid.UUID) ([]*types.Chapter, error)
	GetByID(ctx context.Context, tx *gorm.DB, chapterID uuid.UUID) (*types.Chapter, error)
	Update(ctx context.Context, tx *gorm.DB, chapter *types.Chapter) (*types.Chapter, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, chapterID uuid.UUID) error
}

type chapterRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChapterRepo(db *gorm.DB, baseLog *logger.Logger) ChapterRepo {
	return &chapterRepo{db: db, log: baseLog.With("repo", "ChapterRepo")}
}

func (r *chapterRepo) Create(ctx context.Context, tx *gorm.DB, chapter *types.Chapter) (*types.Chapter, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(chapter).Error; err != nil {
		return nil, err
	}
	return chapter, nil
}

func (r *chapterRepo) GetBySubjectID(ctx context.Context, tx *gorm.DB, subjectID uuid.UUID) ([]*types.Chapter, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Chapter
	if err := transaction.WithContext(ctx).
		Where("subject_id = ?", subjectID).
		Order("priority ASC, chapter_name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *chapterRepo) GetByID(ctx context.Context, tx *gorm.DB, chapterID uuid.UUID) (*types.Chapter, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var chapter types.Chapter
	if err := transaction.WithContext(ctx).
		Where("id = ?", chapterID).
		First(&chapter).Error; err != nil {
		return nil, err
	}
	return &chapter, nil
}

func (r *chapterRepo) Update(ctx context.Context, tx *gorm.DB, chapter *types.Chapter) (*types.Chapter, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(chapter).Error; err != nil {
		return nil, err
	}
	return chapter, nil
}

func (r *chapterRepo) DeleteByID(ctx context.Context, tx *gorm.DB, chapterID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", chapterID).
		Delete(&types.Chapter{}).Error
}

type FlashcardRepo interface {
	Create(ctx context.Context, tx *gorm.DB, card *types.Flashcard) (*types.Flashcard, error)
	GetByChapterID(ctx context.Context, tx *gorm.DB, chapterID uuid.UUID) ([]*types.Flashcard, error)
	GetFavorites(ctx context.Context, tx *gorm.DB) ([]*types.Flashcard, error)
	GetByID(ctx context.Context, tx *gorm.DB, cardID uuid.UUID) (*types.Flashcard, error)
	Update(ctx context.Context, tx *gorm.DB, card *types.Flashcard) (*types.Flashcard, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, cardID uuid.UUID) error
}

type flashcardRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFlashcardRepo(db *gorm.DB, baseLog *logger.Logger) FlashcardRepo {
	return &flashcardRepo{db: db, log: baseLog.With("repo", "FlashcardRepo")}
}

func (r *flashcardRepo) Create(ctx context.Context, tx *gorm.DB, card *types.Flashcard) (*types.Flashcard, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(card).Error; err != nil {
		return nil, err
	}
	return card, nil
}

func (r *flashcardRepo) GetByChapterID(ctx context.Context, tx *gorm.DB, chapterID uuid.UUID) ([]*types.Flashcard, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Flashcard
	if err := transaction.WithContext(ctx).
		Where("chapter_id = ?", chapterID).
		Order("card_no ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *flashcardRepo) GetFavorites(ctx context.Context, tx *gorm.DB) ([]*types.Flashcard, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Flashcard
	if err := transaction.WithContext(ctx).
		Where("favorite = ?", true).
		Order("card_no ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *flashcardRepo) GetByID(ctx context.Context, tx *gorm.DB, cardID uuid.UUID) (*types.Flashcard, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var card types.Flashcard
	if err := transaction.WithContext(ctx).
		Where("id = ?", cardID).
		First(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *flashcardRepo) Update(ctx context.Context, tx *gorm.DB, card *types.Flashcard) (*types.Flashcard, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Save(card).Error; err != nil {
		return nil, err
	}
	return card, nil
}

func (r *flashcardRepo) DeleteByID(ctx context.Context, tx *gorm.DB, cardID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", cardID).
		Delete(&types.Flashcard{}).Error
}
