package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/repos"
	"github.com/prepmate/prepmate-backend/internal/types"
)

type ManifestService interface {
	Create(ctx context.Context, text string) (*types.Manifest, error)
	GetAll(ctx context.Context) ([]*types.Manifest, error)
	Update(ctx context.Context, manifestID uuid.UUID, text string) (*types.Manifest, error)
	MarkTodayDone(ctx context.Context, manifestID uuid.UUID) (*types.Manifest, error)
	ResetTodayDone(ctx context.Context) error
	Delete(ctx context.Context, manifestID uuid.UUID) error
}

type manifestService struct {
	manifestRepo repos.ManifestRepo
	log          *logger.Logger
}

func NewManifestService(manifestRepo repos.ManifestRepo, baseLog *logger.Logger) ManifestService {
	return &manifestService{manifestRepo: manifestRepo, log: baseLog.With("service", "ManifestService")}
}

func (s *manifestService) Create(ctx context.Context, text string) (*types.Manifest, error) {
	return s.manifestRepo.Create(ctx, nil, &types.Manifest{ID: uuid.New(), Text: text})
}

func (s *manifestService) GetAll(ctx context.Context) ([]*types.Manifest, error) {
	return s.manifestRepo.GetAll(ctx, nil)
}

func (s *manifestService) Update(ctx context.Context, manifestID uuid.UUID, text string) (*types.Manifest, error) {
	manifest, err := s.manifestRepo.GetByID(ctx, nil, manifestID)
	if err != nil {
		return nil, err
	}
	manifest.Text = text
	return s.manifestRepo.Update(ctx, nil, manifest)
}

func (s *manifestService) MarkTodayDone(ctx context.Context, manifestID uuid.UUID) (*types.Manifest, error) {
	manifest, err := s.manifestRepo.GetByID(ctx, nil, manifestID)
	if err != nil {
		return nil, err
	}
	manifest.TodayDone = true
	return s.manifestRepo.Update(ctx, nil, manifest)
}

func (s *manifestService) ResetTodayDone(ctx context.Context) error {
	return s.manifestRepo.ResetTodayDone(ctx, nil)
}

func (s *manifestService) Delete(ctx context.Context, manifestID uuid.UUID) error {
	return s.manifestRepo.DeleteByID(ctx, nil, manifestID)
}
