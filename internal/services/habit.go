package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/repos"
	"github.com/prepmate/prepmate-backend/internal/types"
)

const habitDateLayout = "2006-01-02"

// HabitInput carries the writable habit fields.
type HabitInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type HabitService interface {
	Create(ctx context.Context, input HabitInput) (*types.Habit, error)
	GetAll(ctx context.Context) ([]*types.Habit, error)
	Update(ctx context.Context, habitID uuid.UUID, input HabitInput) (*types.Habit, error)
	CheckIn(ctx context.Context, habitID uuid.UUID) (*types.Habit, error)
	Delete(ctx context.Context, habitID uuid.UUID) error
}

type habitService struct {
	habitRepo repos.HabitRepo
	log       *logger.Logger
}

func NewHabitService(habitRepo repos.HabitRepo, baseLog *logger.Logger) HabitService {
	return &habitService{habitRepo: habitRepo, log: baseLog.With("service", "HabitService")}
}

func (s *habitService) Create(ctx context.Context, input HabitInput) (*types.Habit, error) {
	habit := &types.Habit{
		ID:             uuid.New(),
		Name:           input.Name,
		Description:    input.Description,
		CompletedDates: []byte("[]"),
	}
	return s.habitRepo.Create(ctx, nil, habit)
}

func (s *habitService) GetAll(ctx context.Context) ([]*types.Habit, error) {
	return s.habitRepo.GetAll(ctx, nil)
}

func (s *habitService) Update(ctx context.Context, habitID uuid.UUID, input HabitInput) (*types.Habit, error) {
	habit, err := s.habitRepo.GetByID(ctx, nil, habitID)
	if err != nil {
		return nil, err
	}
	habit.Name = input.Name
	habit.Description = input.Description
	return s.habitRepo.Update(ctx, nil, habit)
}

// CheckIn marks today complete. A second check-in on the same day is a
// no-op; streaks are recomputed from the stored date set.
func (s *habitService) CheckIn(ctx context.Context, habitID uuid.UUID) (*types.Habit, error) {
	habit, err := s.habitRepo.GetByID(ctx, nil, habitID)
	if err != nil {
		return nil, err
	}

	var dates []string
	if len(habit.CompletedDates) > 0 {
		if err := json.Unmarshal(habit.CompletedDates, &dates); err != nil {
			return nil, fmt.Errorf("decoding completed dates: %w", err)
		}
	}

	today := time.Now().Format(habitDateLayout)
	for _, d := range dates {
		if d == today {
			return habit, nil
		}
	}
	dates = append(dates, today)
	sort.Strings(dates)

	habit.CurrentStreak = streakEndingAt(dates, today)
	if habit.CurrentStreak > habit.HighestStreak {
		habit.HighestStreak = habit.CurrentStreak
	}

	encoded, err := json.Marshal(dates)
	if err != nil {
		return nil, fmt.Errorf("encoding completed dates: %w", err)
	}
	habit.CompletedDates = encoded

	return s.habitRepo.Update(ctx, nil, habit)
}

func (s *habitService) Delete(ctx context.Context, habitID uuid.UUID) error {
	return s.habitRepo.DeleteByID(ctx, nil, habitID)
}

// streakEndingAt counts the consecutive-day run of dates ending at day.
// Dates outside the run do not contribute.
func streakEndingAt(dates []string, day string) int {
	set := make(map[string]bool, len(dates))
	for _, d := range dates {
		set[d] = true
	}

	current, err := time.Parse(habitDateLayout, day)
	if err != nil {
		return 0
	}

	streak := 0
	for set[current.Format(habitDateLayout)] {
		streak++
		current = current.AddDate(0, 0, -1)
	}
	return streak
}
