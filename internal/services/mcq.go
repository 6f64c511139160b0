package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/repos"
	"github.com/prepmate/prepmate-backend/internal/spreadsheet"
	"github.com/prepmate/prepmate-backend/internal/types"
)

// MCQInput carries the writable fields of one question.
type MCQInput struct {
	Question    string `json:"question" binding:"required"`
	Option1     string `json:"option1" binding:"required"`
	Option2     string `json:"option2" binding:"required"`
	Option3     string `json:"option3" binding:"required"`
	Option4     string `json:"option4" binding:"required"`
	Answer      string `json:"answer" binding:"required"`
	Explanation string `json:"explanation"`
}

type MCQService interface {
	GetSubjects(ctx context.Context) ([]*types.MCQSubject, error)
	GetChapters(ctx context.Context, subjectID uuid.UUID) ([]*types.MCQChapter, error)
	GetQuestions(ctx context.Context, chapterID uuid.UUID) ([]*types.MCQ, error)
	UpdateQuestion(ctx context.Context, mcqID uuid.UUID, input MCQInput) (*types.MCQ, error)
	DeleteSubject(ctx context.Context, subjectID uuid.UUID) error
	DeleteChapter(ctx context.Context, chapterID uuid.UUID) error
	DeleteQuestion(ctx context.Context, mcqID uuid.UUID) error
	ExportGroups(ctx context.Context, subjectID uuid.UUID) ([]spreadsheet.SubjectGroup, error)
}

type mcqService struct {
	subjectRepo repos.MCQSubjectRepo
	chapterRepo repos.MCQChapterRepo
	mcqRepo     repos.MCQRepo
	log         *logger.Logger
}

func NewMCQService(
	subjectRepo repos.MCQSubjectRepo,
	chapterRepo repos.MCQChapterRepo,
	mcqRepo repos.MCQRepo,
	baseLog *logger.Logger,
) MCQService {
	return &mcqService{
		subjectRepo: subjectRepo,
		chapterRepo: chapterRepo,
		mcqRepo:     mcqRepo,
		log:         baseLog.With("service", "MCQService"),
	}
}

func (s *mcqService) GetSubjects(ctx context.Context) ([]*types.MCQSubject, error) {
	return s.subjectRepo.GetAll(ctx, nil)
}

func (s *mcqService) GetChapters(ctx context.Context, subjectID uuid.UUID) ([]*types.MCQChapter, error) {
	return s.chapterRepo.GetBySubjectID(ctx, nil, subjectID)
}

func (s *mcqService) GetQuestions(ctx context.Context, chapterID uuid.UUID) ([]*types.MCQ, error) {
	return s.mcqRepo.GetByChapterID(ctx, nil, chapterID)
}

func (s *mcqService) UpdateQuestion(ctx context.Context, mcqID uuid.UUID, input MCQInput) (*types.MCQ, error) {
	mcq, err := s.mcqRepo.GetByID(ctx, nil, mcqID)
	if err != nil {
		return nil, err
	}
	mcq.Question = input.Question
	mcq.Option1 = input.Option1
	mcq.Option2 = input.Option2
	mcq.Option3 = input.Option3
	mcq.Option4 = input.Option4
	mcq.Answer = input.Answer
	mcq.Explanation = input.Explanation
	mcq.LastUpdated = time.Now()
	return s.mcqRepo.Update(ctx, nil, mcq)
}

func (s *mcqService) DeleteSubject(ctx context.Context, subjectID uuid.UUID) error {
	return s.subjectRepo.DeleteByID(ctx, nil, subjectID)
}

func (s *mcqService) DeleteChapter(ctx context.Context, chapterID uuid.UUID) error {
	return s.chapterRepo.DeleteByID(ctx, nil, chapterID)
}

func (s *mcqService) DeleteQuestion(ctx context.Context, mcqID uuid.UUID) error {
	return s.mcqRepo.DeleteByID(ctx, nil, mcqID)
}

// ExportGroups gathers questions for the export workbook. A nil subject
// id exports every subject; each group becomes one sheet.
func (s *mcqService) ExportGroups(ctx context.Context, subjectID uuid.UUID) ([]spreadsheet.SubjectGroup, error) {
	var subjects []*types.MCQSubject
	if subjectID == uuid.Nil {
		all, err := s.subjectRepo.GetAll(ctx, nil)
		if err != nil {
			return nil, err
		}
		subjects = all
	} else {
		subject, err := s.subjectRepo.GetByID(ctx, nil, subjectID)
		if err != nil {
			return nil, err
		}
		subjects = []*types.MCQSubject{subject}
	}

	var groups []spreadsheet.SubjectGroup
	for _, subject := range subjects {
		chapters, err := s.chapterRepo.GetBySubjectID(ctx, nil, subject.ID)
		if err != nil {
			return nil, err
		}
		chapterIDs := make([]uuid.UUID, 0, len(chapters))
		for _, chapter := range chapters {
			chapterIDs = append(chapterIDs, chapter.ID)
		}
		questions, err := s.mcqRepo.GetByChapterIDs(ctx, nil, chapterIDs)
		if err != nil {
			return nil, err
		}

		group := spreadsheet.SubjectGroup{Subject: subject.Title}
		for _, q := range questions {
			group.Rows = append(group.Rows, spreadsheet.MCQExportRow{
				Question:    q.Question,
				OptionA:     q.Option1,
				OptionB:     q.Option2,
				OptionC:     q.Option3,
				OptionD:     q.Option4,
				Answer:      q.Answer,
				Explanation: q.Explanation,
			})
		}
		groups = append(groups, group)
	}
	return groups, nil
}
