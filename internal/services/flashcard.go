package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/repos"
	"github.com/prepmate/prepmate-backend/internal/types"
)

type FlashcardService interface {
	GetSubjects(ctx context.Context) ([]*types.Subject, error)
	GetChapters(ctx context.Context, subjectID uuid.UUID) ([]*types.Chapter, error)
	GetCards(ctx context.Context, chapterID uuid.UUID) ([]*types.Flashcard, error)
	GetFavorites(ctx context.Context) ([]*types.Flashcard, error)
	ToggleFavorite(ctx context.Context, cardID uuid.UUID) (*types.Flashcard, error)
	UpdateCard(ctx context.Context, cardID uuid.UUID, title, description string) (*types.Flashcard, error)
	DeleteSubject(ctx context.Context, subjectID uuid.UUID) error
	DeleteChapter(ctx context.Context, chapterID uuid.UUID) error
	DeleteCard(ctx context.Context, cardID uuid.UUID) error
}

type flashcardService struct {
	subjectRepo repos.SubjectRepo
	chapterRepo repos.ChapterRepo
	cardRepo    repos.FlashcardRepo
	log         *logger.Logger
}

func NewFlashcardService(
	subjectRepo repos.SubjectRepo,
	chapterRepo repos.ChapterRepo,
	cardRepo repos.FlashcardRepo,
	baseLog *logger.Logger,
) FlashcardService {
	return &flashcardService{
		subjectRepo: subjectRepo,
		chapterRepo: chapterRepo,
		cardRepo:    cardRepo,
		log:         baseLog.With("service", "FlashcardService"),
	}
}

func (s *flashcardService) GetSubjects(ctx context.Context) ([]*types.Subject, error) {
	return s.subjectRepo.GetAll(ctx, nil)
}

func (s *flashcardService) GetChapters(ctx context.Context, subjectID uuid.UUID) ([]*types.Chapter, error) {
	return s.chapterRepo.GetBySubjectID(ctx, nil, subjectID)
}

func (s *flashcardService) GetCards(ctx context.Context, chapterID uuid.UUID) ([]*types.Flashcard, error) {
	return s.cardRepo.GetByChapterID(ctx, nil, chapterID)
}

func (s *flashcardService) GetFavorites(ctx context.Context) ([]*types.Flashcard, error) {
	return s.cardRepo.GetFavorites(ctx, nil)
}

func (s *flashcardService) ToggleFavorite(ctx context.Context, cardID uuid.UUID) (*types.Flashcard, error) {
	card, err := s.cardRepo.GetByID(ctx, nil, cardID)
	if err != nil {
		return nil, err
	}
	card.Favorite = !card.Favorite
	return s.cardRepo.Update(ctx, nil, card)
}

func (s *flashcardService) UpdateCard(ctx context.Context, cardID uuid.UUID, title, description string) (*types.Flashcard, error) {
	card, err := s.cardRepo.GetByID(ctx, nil, cardID)
	if err != nil {
		return nil, err
	}
	card.Title = title
	card.Description = description
	return s.cardRepo.Update(ctx, nil, card)
}

func (s *flashcardService) DeleteSubject(ctx context.Context, subjectID uuid.UUID) error {
	return s.subjectRepo.DeleteByID(ctx, nil, subjectID)
}

func (s *flashcardService) DeleteChapter(ctx context.Context, chapterID uuid.UUID) error {
	return s.chapterRepo.DeleteByID(ctx, nil, chapterID)
}

func (s *flashcardService) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	return s.cardRepo.DeleteByID(ctx, nil, cardID)
}
