package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/repos"
	"github.com/prepmate/prepmate-backend/internal/types"
)

// FocusSessionInput records one finished focus run.
type FocusSessionInput struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Duration  int       `json:"duration"`
	Status    string    `json:"status"`
}

// DailyFocusTotal aggregates focused time for one calendar date.
type DailyFocusTotal struct {
	Date         string `json:"date"`
	TotalSeconds int    `json:"total_seconds"`
	Sessions     int    `json:"sessions"`
}

type FocusService interface {
	Record(ctx context.Context, input FocusSessionInput) (*types.FocusSession, error)
	GetAll(ctx context.Context) ([]*types.FocusSession, error)
	History(ctx context.Context) ([]DailyFocusTotal, error)
	Delete(ctx context.Context, sessionID uuid.UUID) error
}

type focusService struct {
	sessionRepo repos.FocusSessionRepo
	log         *logger.Logger
}

func NewFocusService(sessionRepo repos.FocusSessionRepo, baseLog *logger.Logger) FocusService {
	return &focusService{sessionRepo: sessionRepo, log: baseLog.With("service", "FocusService")}
}

func (s *focusService) Record(ctx context.Context, input FocusSessionInput) (*types.FocusSession, error) {
	duration := input.Duration
	if duration == 0 {
		duration = int(input.EndTime.Sub(input.StartTime).Seconds())
	}
	status := input.Status
	if status == "" {
		status = types.FocusStatusCompleted
	}
	session := &types.FocusSession{
		ID:        uuid.New(),
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Duration:  duration,
		Status:    status,
		Date:      input.StartTime.Format("2006-01-02"),
	}
	return s.sessionRepo.Create(ctx, nil, session)
}

func (s *focusService) GetAll(ctx context.Context) ([]*types.FocusSession, error) {
	return s.sessionRepo.GetAll(ctx, nil)
}

// History returns per-date focus totals, newest date first.
func (s *focusService) History(ctx context.Context) ([]DailyFocusTotal, error) {
	sessions, err := s.sessionRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, err
	}
	return dailyTotals(sessions), nil
}

func (s *focusService) Delete(ctx context.Context, sessionID uuid.UUID) error {
	return s.sessionRepo.DeleteByID(ctx, nil, sessionID)
}

func dailyTotals(sessions []*types.FocusSession) []DailyFocusTotal {
	byDate := make(map[string]*DailyFocusTotal)
	for _, session := range sessions {
		total, ok := byDate[session.Date]
		if !ok {
			total = &DailyFocusTotal{Date: session.Date}
			byDate[session.Date] = total
		}
		total.TotalSeconds += session.Duration
		total.Sessions++
	}

	totals := make([]DailyFocusTotal, 0, len(byDate))
	for _, total := range byDate {
		totals = append(totals, *total)
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Date > totals[j].Date })
	return totals
}
