package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/prepmate/prepmate-backend/internal/importer"
	"github.com/prepmate/prepmate-backend/internal/logger"
	"github.com/prepmate/prepmate-backend/internal/sse"
)

// ImportOptions carries the per-request knobs of a bulk import. JobID
// names the SSE progress channel; FoldCase lowercases taxonomy names for
// identity matching.
type ImportOptions struct {
	JobID    uuid.UUID
	FoldCase bool
}

// ImportSummary is the outcome reported to the caller. A non-empty
// Rejected means validation failed and nothing was written.
type ImportSummary struct {
	Added           int                    `json:"added"`
	CreatedSubjects int                    `json:"created_subjects"`
	CreatedChapters int                    `json:"created_chapters"`
	Failed          []importer.FailedRow   `json:"failed,omitempty"`
	Rejected        []importer.RejectedRow `json:"rejected,omitempty"`
}

type ImportService interface {
	ImportMCQs(ctx context.Context, rows []importer.Row, opts ImportOptions) (*ImportSummary, error)
	ImportFlashcards(ctx context.Context, rows []importer.Row, opts ImportOptions) (*ImportSummary, error)
	ImportSyllabus(ctx context.Context, rows []importer.Row, opts ImportOptions) (*ImportSummary, error)
}

type importService struct {
	store importer.Store
	hub   *sse.SSEHub
	log   *logger.Logger
}

func NewImportService(db *gorm.DB, hub *sse.SSEHub, baseLog *logger.Logger) ImportService {
	return &importService{
		store: NewGormStore(db),
		hub:   hub,
		log:   baseLog.With("service", "ImportService"),
	}
}

func importedDescription() string {
	return fmt.Sprintf("Imported from Excel on %s", time.Now().Format("2006-01-02"))
}

func (s *importService) ImportMCQs(ctx context.Context, rows []importer.Row, opts ImportOptions) (*ImportSummary, error) {
	schema := importer.Schema{
		Required:    []string{"subject", "chapter", "question", "option1", "option2", "option3", "option4", "answer"},
		AnswerField: "answer",
	}
	taxSpec := importer.TaxonomySpec{
		SubjectColumn: "subject",
		ChapterColumn: "chapter",
		Subject: importer.NodeSpec{
			Collection: "mcq_subject",
			NameField:  "title",
			Defaults: func(name string) map[string]any {
				now := time.Now()
				return map[string]any{
					"description":  importedDescription(),
					"active":       true,
					"revised":      false,
					"created_at":   now,
					"last_updated": now,
				}
			},
		},
		Chapter: importer.NodeSpec{
			Collection:  "mcq_chapter",
			NameField:   "title",
			ParentField: "subject_id",
			Defaults: func(name string) map[string]any {
				return map[string]any{
					"description": importedDescription(),
					"created_at":  time.Now(),
				}
			},
		},
		FoldCase: opts.FoldCase,
	}
	leafFor := func(tax *importer.Taxonomy) importer.LeafSpec {
		return importer.LeafSpec{
			Collection: "mcq",
			Fields: func(row importer.Row, chapterID string, seq int) map[string]any {
				now := time.Now()
				return map[string]any{
					"chapter_id":   chapterID,
					"question":     strings.TrimSpace(row["question"]),
					"option1":      strings.TrimSpace(row["option1"]),
					"option2":      strings.TrimSpace(row["option2"]),
					"option3":      strings.TrimSpace(row["option3"]),
					"option4":      strings.TrimSpace(row["option4"]),
					"answer":       row["answer"],
					"explanation":  strings.TrimSpace(row["explanation"]),
					"created_at":   now,
					"last_updated": now,
				}
			},
			Identify: func(row importer.Row) string { return row["question"] },
		}
	}
	return s.run(ctx, "mcqs", rows, schema, taxSpec, leafFor, opts)
}

func (s *importService) ImportFlashcards(ctx context.Context, rows []importer.Row, opts ImportOptions) (*ImportSummary, error) {
	schema := importer.Schema{
		Required: []string{"subject", "chapter", "title", "description"},
	}
	taxSpec := importer.TaxonomySpec{
		SubjectColumn: "subject",
		ChapterColumn: "chapter",
		Subject: importer.NodeSpec{
			Collection: "subject",
			NameField:  "subject_name",
			Defaults: func(name string) map[string]any {
				now := time.Now()
				return map[string]any{
					"active":     true,
					"revised":    now,
					"created_at": now,
				}
			},
		},
		Chapter: importer.NodeSpec{
			Collection:  "chapter",
			NameField:   "chapter_name",
			ParentField: "subject_id",
			Defaults: func(name string) map[string]any {
				now := time.Now()
				return map[string]any{
					"priority":   1,
					"revised":    now,
					"created_at": now,
				}
			},
		},
		FoldCase: opts.FoldCase,
	}
	leafFor := func(tax *importer.Taxonomy) importer.LeafSpec {
		return importer.LeafSpec{
			Collection: "flashcard",
			Sequence:   &importer.Sequence{Field: "card_no"},
			Fields: func(row importer.Row, chapterID string, seq int) map[string]any {
				subjectID, _ := tax.SubjectID(row)
				return map[string]any{
					"card_no":     seq,
					"chapter_id":  chapterID,
					"subject_id":  subjectID,
					"title":       strings.TrimSpace(row["title"]),
					"description": strings.TrimSpace(row["description"]),
					"favorite":    false,
					"timestamp":   time.Now(),
				}
			},
			Identify: func(row importer.Row) string { return row["title"] },
		}
	}
	return s.run(ctx, "flashcards", rows, schema, taxSpec, leafFor, opts)
}

func (s *importService) ImportSyllabus(ctx context.Context, rows []importer.Row, opts ImportOptions) (*ImportSummary, error) {
	schema := importer.Schema{
		Required: []string{"subject_name", "topic_name", "syllabus_topic_name"},
	}
	taxSpec := importer.TaxonomySpec{
		SubjectColumn: "subject_name",
		ChapterColumn: "topic_name",
		Subject: importer.NodeSpec{
			Collection: "syllabus_subject",
			NameField:  "subject_name",
			Defaults: func(name string) map[string]any {
				return map[string]any{"created_at": time.Now()}
			},
		},
		Chapter: importer.NodeSpec{
			Collection:  "syllabus_topic",
			NameField:   "topic_name",
			ParentField: "subject_id",
			Defaults: func(name string) map[string]any {
				return map[string]any{"created_at": time.Now()}
			},
		},
		FoldCase: opts.FoldCase,
	}
	leafFor := func(tax *importer.Taxonomy) importer.LeafSpec {
		return importer.LeafSpec{
			Collection: "syllabus_item",
			Fields: func(row importer.Row, chapterID string, seq int) map[string]any {
				return map[string]any{
					"topic_id":   chapterID,
					"topic_name": strings.TrimSpace(row["syllabus_topic_name"]),
					"completed":  false,
					"created_at": time.Now(),
				}
			},
			Identify: func(row importer.Row) string { return row["syllabus_topic_name"] },
		}
	}
	return s.run(ctx, "syllabus", rows, schema, taxSpec, leafFor, opts)
}

func (s *importService) run(
	ctx context.Context,
	kind string,
	rows []importer.Row,
	schema importer.Schema,
	taxSpec importer.TaxonomySpec,
	leafFor func(*importer.Taxonomy) importer.LeafSpec,
	opts ImportOptions,
) (*ImportSummary, error) {
	log := s.log.With("kind", kind, "jobID", opts.JobID)
	log.Info("Starting import", "rows", len(rows))

	s.progress(opts.JobID, "validating", map[string]any{"rows": len(rows)})
	valid, rejected := importer.ValidateRows(rows, schema)
	if len(rejected) > 0 {
		log.Warn("Import rejected by validation", "rejected", len(rejected))
		summary := &ImportSummary{Rejected: rejected}
		s.done(opts.JobID, summary)
		return summary, nil
	}

	s.progress(opts.JobID, "resolving taxonomy", nil)
	tax, err := importer.ResolveTaxonomy(ctx, s.store, valid, taxSpec)
	if err != nil {
		log.Error("Taxonomy resolution failed", "error", err)
		return nil, fmt.Errorf("resolving taxonomy: %w", err)
	}

	s.progress(opts.JobID, "inserting", map[string]any{
		"created_subjects": tax.CreatedSubjects,
		"created_chapters": tax.CreatedChapters,
	})
	result, err := importer.InsertLeaves(ctx, s.store, valid, tax, leafFor(tax))
	if err != nil {
		log.Error("Leaf insertion aborted", "error", err)
		return nil, fmt.Errorf("inserting records: %w", err)
	}

	summary := &ImportSummary{
		Added:           result.Added,
		CreatedSubjects: tax.CreatedSubjects,
		CreatedChapters: tax.CreatedChapters,
		Failed:          result.Failed,
	}
	log.Info("Import finished", "added", summary.Added, "failed", len(summary.Failed))
	s.done(opts.JobID, summary)
	return summary, nil
}

func (s *importService) progress(jobID uuid.UUID, stage string, detail map[string]any) {
	if jobID == uuid.Nil {
		return
	}
	data := map[string]any{"stage": stage}
	for k, v := range detail {
		data[k] = v
	}
	s.hub.Broadcast(sse.SSEMessage{
		Channel: sse.ImportChannel(jobID),
		Event:   sse.SSEEventImportProgress,
		Data:    data,
	})
}

func (s *importService) done(jobID uuid.UUID, summary *ImportSummary) {
	if jobID == uuid.Nil {
		return
	}
	s.hub.Broadcast(sse.SSEMessage{
		Channel: sse.ImportChannel(jobID),
		Event:   sse.SSEEventImportDone,
		Data:    summary,
	})
}
