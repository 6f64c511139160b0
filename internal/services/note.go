package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/repos"
	"github.com/prepmate/prepmate-backend/internal/types"
)

type NoteService interface {
	Create(ctx context.Context, title, content string) (*types.Note, error)
	GetAll(ctx context.Context) ([]*types.Note, error)
	Update(ctx context.Context, noteID uuid.UUID, title, content string) (*types.Note, error)
	Delete(ctx context.Context, noteID uuid.UUID) error
}

type noteService struct {
	noteRepo repos.NoteRepo
	log      *logger.Logger
}

func NewNoteService(noteRepo repos.NoteRepo, baseLog *logger.Logger) NoteService {
	return &noteService{noteRepo: noteRepo, log: baseLog.With("service", "NoteService")}
}

func (s *noteService) Create(ctx context.Context, title, content string) (*types.Note, error) {
	return s.noteRepo.Create(ctx, nil, &types.Note{ID: uuid.New(), Title: title, Content: content})
}

func (s *noteService) GetAll(ctx context.Context) ([]*types.Note, error) {
	return s.noteRepo.GetAll(ctx, nil)
}

func (s *noteService) Update(ctx context.Context, noteID uuid.UUID, title, content string) (*types.Note, error) {
	note, err := s.noteRepo.GetByID(ctx, nil, noteID)
	if err != nil {
		return nil, err
	}
	note.Title = title
	note.Content = content
	return s.noteRepo.Update(ctx, nil, note)
}

func (s *noteService) Delete(ctx context.Context, noteID uuid.UUID) error {
	return s.noteRepo.DeleteByID(ctx, nil, noteID)
}
