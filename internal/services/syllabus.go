package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/repos"
	"github.com/prepmate/prepmate-backend/internal/types"
)

// TopicProgress pairs a syllabus topic with its completion percentage.
type TopicProgress struct {
	Topic     *types.SyllabusTopic `json:"topic"`
	Total     int                  `json:"total"`
	Completed int                  `json:"completed"`
	Percent   int                  `json:"percent"`
}

// SubjectProgress aggregates completion over all topics of a subject.
type SubjectProgress struct {
	Subject   *types.SyllabusSubject `json:"subject"`
	Total     int                    `json:"total"`
	Completed int                    `json:"completed"`
	Percent   int                    `json:"percent"`
	Topics    []*TopicProgress       `json:"topics"`
}

type SyllabusService interface {
	GetSubjects(ctx context.Context) ([]*types.SyllabusSubject, error)
	GetTopics(ctx context.Context, subjectID uuid.UUID) ([]*types.SyllabusTopic, error)
	GetItems(ctx context.Context, topicID uuid.UUID) ([]*types.SyllabusItem, error)
	ToggleItem(ctx context.Context, itemID uuid.UUID) (*types.SyllabusItem, error)
	GetSubjectProgress(ctx context.Context, subjectID uuid.UUID) (*SubjectProgress, error)
	DeleteSubject(ctx context.Context, subjectID uuid.UUID) error
	DeleteTopic(ctx context.Context, topicID uuid.UUID) error
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
}

type syllabusService struct {
	subjectRepo repos.SyllabusSubjectRepo
	topicRepo   repos.SyllabusTopicRepo
	itemRepo    repos.SyllabusItemRepo
	log         *logger.Logger
}

func NewSyllabusService(
	subjectRepo repos.SyllabusSubjectRepo,
	topicRepo repos.SyllabusTopicRepo,
	itemRepo repos.SyllabusItemRepo,
	baseLog *logger.Logger,
) SyllabusService {
	return &syllabusService{
		subjectRepo: subjectRepo,
		topicRepo:   topicRepo,
		itemRepo:    itemRepo,
		log:         baseLog.With("service", "SyllabusService"),
	}
}

func (s *syllabusService) GetSubjects(ctx context.Context) ([]*types.SyllabusSubject, error) {
	return s.subjectRepo.GetAll(ctx, nil)
}

func (s *syllabusService) GetTopics(ctx context.Context, subjectID uuid.UUID) ([]*types.SyllabusTopic, error) {
	return s.topicRepo.GetBySubjectID(ctx, nil, subjectID)
}

func (s *syllabusService) GetItems(ctx context.Context, topicID uuid.UUID) ([]*types.SyllabusItem, error) {
	return s.itemRepo.GetByTopicID(ctx, nil, topicID)
}

func (s *syllabusService) ToggleItem(ctx context.Context, itemID uuid.UUID) (*types.SyllabusItem, error) {
	item, err := s.itemRepo.GetByID(ctx, nil, itemID)
	if err != nil {
		return nil, err
	}
	item.Completed = !item.Completed
	return s.itemRepo.Update(ctx, nil, item)
}

func (s *syllabusService) GetSubjectProgress(ctx context.Context, subjectID uuid.UUID) (*SubjectProgress, error) {
	subject, err := s.subjectRepo.GetByID(ctx, nil, subjectID)
	if err != nil {
		return nil, err
	}
	topics, err := s.topicRepo.GetBySubjectID(ctx, nil, subjectID)
	if err != nil {
		return nil, err
	}

	progress := &SubjectProgress{Subject: subject, Topics: make([]*TopicProgress, 0, len(topics))}
	for _, topic := range topics {
		items, err := s.itemRepo.GetByTopicID(ctx, nil, topic.ID)
		if err != nil {
			return nil, err
		}
		completed := 0
		for _, item := range items {
			if item.Completed {
				completed++
			}
		}
		progress.Topics = append(progress.Topics, &TopicProgress{
			Topic:     topic,
			Total:     len(items),
			Completed: completed,
			Percent:   percent(completed, len(items)),
		})
		progress.Total += len(items)
		progress.Completed += completed
	}
	progress.Percent = percent(progress.Completed, progress.Total)
	return progress, nil
}

func (s *syllabusService) DeleteSubject(ctx context.Context, subjectID uuid.UUID) error {
	return s.subjectRepo.DeleteByID(ctx, nil, subjectID)
}

func (s *syllabusService) DeleteTopic(ctx context.Context, topicID uuid.UUID) error {
	return s.topicRepo.DeleteByID(ctx, nil, topicID)
}

func (s *syllabusService) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	return s.itemRepo.DeleteByID(ctx, nil, itemID)
}

// percent is the integer-floor completion percentage; 0 when total is 0.
func percent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return completed * 100 / total
}
