package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/repos"
	"github.com/prepmate/prepmate-backend/internal/types"
)

// ReminderInput carries the writable reminder fields. WeekDay is only
// meaningful for weekly reminders (0 = Sunday).
type ReminderInput struct {
	Name      string `json:"name" binding:"required"`
	Frequency string `json:"frequency" binding:"required"`
	Time      string `json:"time" binding:"required"`
	WeekDay   int    `json:"week_day"`
}

type ReminderService interface {
	Create(ctx context.Context, input ReminderInput) (*types.Reminder, error)
	GetAll(ctx context.Context) ([]*types.Reminder, error)
	Update(ctx context.Context, reminderID uuid.UUID, input ReminderInput) (*types.Reminder, error)
	Delete(ctx context.Context, reminderID uuid.UUID) error
}

type reminderService struct {
	reminderRepo repos.ReminderRepo
	log          *logger.Logger
}

func NewReminderService(reminderRepo repos.ReminderRepo, baseLog *logger.Logger) ReminderService {
	return &reminderService{reminderRepo: reminderRepo, log: baseLog.With("service", "ReminderService")}
}

func validateFrequency(frequency string) error {
	if frequency != types.ReminderFrequencyDaily && frequency != types.ReminderFrequencyWeekly {
		return fmt.Errorf("invalid frequency %q (must be daily or weekly)", frequency)
	}
	return nil
}

func (s *reminderService) Create(ctx context.Context, input ReminderInput) (*types.Reminder, error) {
	if err := validateFrequency(input.Frequency); err != nil {
		return nil, err
	}
	reminder := &types.Reminder{
		ID:        uuid.New(),
		Name:      input.Name,
		Frequency: input.Frequency,
		Time:      input.Time,
		WeekDay:   input.WeekDay,
	}
	return s.reminderRepo.Create(ctx, nil, reminder)
}

func (s *reminderService) GetAll(ctx context.Context) ([]*types.Reminder, error) {
	return s.reminderRepo.GetAll(ctx, nil)
}

func (s *reminderService) Update(ctx context.Context, reminderID uuid.UUID, input ReminderInput) (*types.Reminder, error) {
	if err := validateFrequency(input.Frequency); err != nil {
		return nil, err
	}
	reminder, err := s.reminderRepo.GetByID(ctx, nil, reminderID)
	if err != nil {
		return nil, err
	}
	reminder.Name = input.Name
	reminder.Frequency = input.Frequency
	reminder.Time = input.Time
	reminder.WeekDay = input.WeekDay
	return s.reminderRepo.Update(ctx, nil, reminder)
}

func (s *reminderService) Delete(ctx context.Context, reminderID uuid.UUID) error {
	return s.reminderRepo.DeleteByID(ctx, nil, reminderID)
}
