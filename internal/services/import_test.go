package services

import (
	"context"
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/prepmate/prepmate-backend/internal/importer"
	"github.com/prepmate/prepmate-backend/internal/logger"
)

// memStore is an in-memory importer.Store that counts writes.
type memStore struct {
	collections map[string][]map[string]any
	nextID      int
	createCalls int
}

func newMemStore() *memStore {
	return &memStore{collections: make(map[string][]map[string]any)}
}

func (s *memStore) FindOne(ctx context.Context, collection string, filters map[string]any) (map[string]any, error) {
	for _, record := range s.collections[collection] {
		match := true
		for k, v := range filters {
			if record[k] != v {
				match = false
				break
			}
		}
		if match {
			return record, nil
		}
	}
	return nil, importer.ErrNotFound
}

func (s *memStore) FindMax(ctx context.Context, collection string, field string) (int, error) {
	max := 0
	for _, record := range s.collections[collection] {
		if n, ok := record[field].(int); ok && n > max {
			max = n
		}
	}
	return max, nil
}

func (s *memStore) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	s.createCalls++
	s.nextID++
	id := fmt.Sprintf("id-%d", s.nextID)
	record := map[string]any{"id": id}
	for k, v := range fields {
		record[k] = v
	}
	s.collections[collection] = append(s.collections[collection], record)
	return id, nil
}

func newTestImportService(store importer.Store) *importService {
	return &importService{
		store: store,
		log:   &logger.Logger{SugaredLogger: zap.NewNop().Sugar()},
	}
}

func TestImportFlashcardsRejectsBatchBeforeAnyWrite(t *testing.T) {
	store := newMemStore()
	svc := newTestImportService(store)

	rows := []importer.Row{
		{"subject": "History", "chapter": "Modern India", "title": "Charter Act", "description": "1853"},
		{"subject": "History", "chapter": "Modern India", "title": "Revolt of 1857", "description": "sepoy mutiny"},
		{"subject": "History", "chapter": "Modern India", "title": "", "description": "missing title"},
		{"subject": "History", "chapter": "Modern India", "title": "Partition of Bengal", "description": "1905"},
		{"subject": "History", "chapter": "Modern India", "title": "Quit India", "description": "1942"},
	}

	summary, err := svc.ImportFlashcards(context.Background(), rows, ImportOptions{})
	if err != nil {
		t.Fatalf("ImportFlashcards: %v", err)
	}
	if len(summary.Rejected) != 1 {
		t.Fatalf("rejected = %d, want 1", len(summary.Rejected))
	}
	if summary.Rejected[0].RowNumber != 4 {
		t.Fatalf("rejected row number = %d, want 4", summary.Rejected[0].RowNumber)
	}
	if summary.Added != 0 || summary.CreatedSubjects != 0 || summary.CreatedChapters != 0 {
		t.Fatalf("summary reports writes on a rejected batch: %+v", summary)
	}
	if store.createCalls != 0 {
		t.Fatalf("store received %d creates, want 0 on a rejected batch", store.createCalls)
	}
}

func TestImportMCQsWritesNormalizedBatch(t *testing.T) {
	store := newMemStore()
	svc := newTestImportService(store)

	rows := []importer.Row{
		{"subject": "Polity", "chapter": "Preamble", "question": "Q1", "option1": "1", "option2": "2", "option3": "3", "option4": "4", "answer": "A"},
		{"subject": "Polity", "chapter": "Preamble", "question": "Q2", "option1": "1", "option2": "2", "option3": "3", "option4": "4", "answer": " b "},
	}

	summary, err := svc.ImportMCQs(context.Background(), rows, ImportOptions{})
	if err != nil {
		t.Fatalf("ImportMCQs: %v", err)
	}
	if summary.Added != 2 || len(summary.Rejected) != 0 || len(summary.Failed) != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.CreatedSubjects != 1 || summary.CreatedChapters != 1 {
		t.Fatalf("created %d subjects, %d chapters, want 1/1", summary.CreatedSubjects, summary.CreatedChapters)
	}

	mcqs := store.collections["mcq"]
	if len(mcqs) != 2 {
		t.Fatalf("mcq count = %d, want 2", len(mcqs))
	}
	if mcqs[0]["answer"] != "a" || mcqs[1]["answer"] != "b" {
		t.Fatalf("answers not normalized: %v, %v", mcqs[0]["answer"], mcqs[1]["answer"])
	}
}
