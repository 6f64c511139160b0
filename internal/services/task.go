package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/repos"
	"github.com/prepmate/prepmate-backend/internal/types"
)

// TaskInput carries the writable task fields.
type TaskInput struct {
	TaskName    string `json:"taskname" binding:"required"`
	Description string `json:"description"`
	DueDate     string `json:"duedate"`
	Priority    string `json:"priority"`
}

type TaskService interface {
	Create(ctx context.Context, input TaskInput) (*types.Task, error)
	GetAll(ctx context.Context) ([]*types.Task, error)
	Update(ctx context.Context, taskID uuid.UUID, input TaskInput) (*types.Task, error)
	Complete(ctx context.Context, taskID uuid.UUID) (*types.Task, error)
	Delete(ctx context.Context, taskID uuid.UUID) error
}

type taskService struct {
	taskRepo repos.TaskRepo
	log      *logger.Logger
}

func NewTaskService(taskRepo repos.TaskRepo, baseLog *logger.Logger) TaskService {
	return &taskService{taskRepo: taskRepo, log: baseLog.With("service", "TaskService")}
}

func (s *taskService) Create(ctx context.Context, input TaskInput) (*types.Task, error) {
	task := &types.Task{
		ID:          uuid.New(),
		TaskName:    input.TaskName,
		Description: input.Description,
		DueDate:     input.DueDate,
		Priority:    input.Priority,
		Status:      types.TaskStatusPending,
	}
	return s.taskRepo.Create(ctx, nil, task)
}

func (s *taskService) GetAll(ctx context.Context) ([]*types.Task, error) {
	return s.taskRepo.GetAll(ctx, nil)
}

func (s *taskService) Update(ctx context.Context, taskID uuid.UUID, input TaskInput) (*types.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, nil, taskID)
	if err != nil {
		return nil, err
	}
	task.TaskName = input.TaskName
	task.Description = input.Description
	task.DueDate = input.DueDate
	task.Priority = input.Priority
	return s.taskRepo.Update(ctx, nil, task)
}

func (s *taskService) Complete(ctx context.Context, taskID uuid.UUID) (*types.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, nil, taskID)
	if err != nil {
		return nil, err
	}
	if task.Status == types.TaskStatusCompleted {
		return task, nil
	}
	now := time.Now()
	task.Status = types.TaskStatusCompleted
	task.WhenCompleted = &now
	return s.taskRepo.Update(ctx, nil, task)
}

func (s *taskService) Delete(ctx context.Context, taskID uuid.UUID) error {
	return s.taskRepo.DeleteByID(ctx, nil, taskID)
}
