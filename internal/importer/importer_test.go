package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// fakeStore is an in-memory Store with optional per-call create failures.
type fakeStore struct {
	collections map[string][]map[string]any
	nextID      int
	createCalls int
	failCreate  func(collection string, call int) error
}

func newFakeStore() *fakeStore {
	return &fakeStore{collections: make(map[string][]map[string]any)}
}

func (s *fakeStore) FindOne(ctx context.Context, collection string, filters map[string]any) (map[string]any, error) {
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
	return nil, ErrNotFound
}

func (s *fakeStore) FindMax(ctx context.Context, collection string, field string) (int, error) {
	max := 0
	for _, record := range s.collections[collection] {
		if n, ok := record[field].(int); ok && n > max {
			max = n
		}
	}
	return max, nil
}

func (s *fakeStore) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	s.createCalls++
	if s.failCreate != nil {
		if err := s.failCreate(collection, s.createCalls); err != nil {
			return "", err
		}
	}
	s.nextID++
	id := fmt.Sprintf("id-%d", s.nextID)
	record := map[string]any{"id": id}
	for k, v := range fields {
		record[k] = v
	}
	s.collections[collection] = append(s.collections[collection], record)
	return id, nil
}

func (s *fakeStore) count(collection string) int {
	return len(s.collections[collection])
}

func flashcardSpec(foldCase bool) TaxonomySpec {
	return TaxonomySpec{
		SubjectColumn: "subject",
		ChapterColumn: "chapter",
		Subject: NodeSpec{
			Collection: "subject",
			NameField:  "subject_name",
			Defaults:   func(name string) map[string]any { return map[string]any{"active": true} },
		},
		Chapter: NodeSpec{
			Collection:  "chapter",
			NameField:   "chapter_name",
			ParentField: "subject_id",
			Defaults:    func(name string) map[string]any { return map[string]any{"priority": 1} },
		},
		FoldCase: foldCase,
	}
}

func flashcardLeaf() LeafSpec {
	return LeafSpec{
		Collection: "flashcard",
		Sequence:   &Sequence{Field: "card_no"},
		Fields: func(row Row, chapterID string, seq int) map[string]any {
			return map[string]any{
				"card_no":     seq,
				"chapter_id":  chapterID,
				"title":       strings.TrimSpace(row["title"]),
				"description": strings.TrimSpace(row["description"]),
			}
		},
		Identify: func(row Row) string { return row["title"] },
	}
}

func historyRows() []Row {
	return []Row{
		{"subject": "History", "chapter": "Modern India", "title": "Charter Act", "description": "1853"},
		{"subject": "History", "chapter": "Modern India", "title": "Revolt of 1857", "description": "sepoy mutiny"},
	}
}

func TestValidateRows(t *testing.T) {
	schema := Schema{
		Required:    []string{"subject", "chapter", "question", "answer"},
		AnswerField: "answer",
	}

	cases := []struct {
		name       string
		row        Row
		wantValid  bool
		wantReason string
	}{
		{
			name:      "all_fields_present",
			row:       Row{"subject": "Polity", "chapter": "Preamble", "question": "Q", "answer": "a"},
			wantValid: true,
		},
		{
			name:       "missing_subject",
			row:        Row{"chapter": "Preamble", "question": "Q", "answer": "a"},
			wantReason: "missing subject",
		},
		{
			name:       "whitespace_only_chapter",
			row:        Row{"subject": "Polity", "chapter": "   ", "question": "Q", "answer": "a"},
			wantReason: "missing chapter",
		},
		{
			name:      "uppercase_answer_accepted",
			row:       Row{"subject": "Polity", "chapter": "Preamble", "question": "Q", "answer": "A"},
			wantValid: true,
		},
		{
			name:      "padded_answer_accepted",
			row:       Row{"subject": "Polity", "chapter": "Preamble", "question": "Q", "answer": " a "},
			wantValid: true,
		},
		{
			name:       "answer_e_rejected",
			row:        Row{"subject": "Polity", "chapter": "Preamble", "question": "Q", "answer": "e"},
			wantReason: "invalid answer",
		},
		{
			name:       "answer_ab_rejected",
			row:        Row{"subject": "Polity", "chapter": "Preamble", "question": "Q", "answer": "ab"},
			wantReason: "invalid answer",
		},
		{
			name:       "empty_answer_rejected",
			row:        Row{"subject": "Polity", "chapter": "Preamble", "question": "Q", "answer": ""},
			wantReason: "missing answer",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			valid, rejected := ValidateRows([]Row{tc.row}, schema)
			if tc.wantValid {
				if len(valid) != 1 || len(rejected) != 0 {
					t.Fatalf("got %d valid, %d rejected, want 1 valid", len(valid), len(rejected))
				}
				if got := valid[0]["answer"]; got != "a" {
					t.Fatalf("answer not normalized: got %q, want %q", got, "a")
				}
				return
			}
			if len(rejected) != 1 || len(valid) != 0 {
				t.Fatalf("got %d valid, %d rejected, want 1 rejected", len(valid), len(rejected))
			}
			if !strings.Contains(rejected[0].Reason, tc.wantReason) {
				t.Fatalf("reason %q does not contain %q", rejected[0].Reason, tc.wantReason)
			}
		})
	}
}

func TestValidateRowsLeavesInputRowsUntouched(t *testing.T) {
	schema := Schema{Required: []string{"subject", "answer"}, AnswerField: "answer"}
	row := Row{"subject": "Polity", "answer": " A "}

	valid, rejected := ValidateRows([]Row{row}, schema)
	if len(valid) != 1 || len(rejected) != 0 {
		t.Fatalf("got %d valid, %d rejected, want 1 valid", len(valid), len(rejected))
	}
	if got := valid[0]["answer"]; got != "a" {
		t.Fatalf("returned answer = %q, want %q", got, "a")
	}
	if got := row["answer"]; got != " A " {
		t.Fatalf("input row mutated: answer = %q, want %q", got, " A ")
	}
}

func TestValidateRowsReportsSpreadsheetRowNumbers(t *testing.T) {
	rows := []Row{
		{"subject": "Polity", "chapter": "Preamble", "question": "Q1", "answer": "a"},
		{"subject": "", "chapter": "Preamble", "question": "Q2", "answer": "b"},
		{"subject": "Polity", "chapter": "Preamble", "question": "Q3", "answer": "z"},
	}
	schema := Schema{Required: []string{"subject", "chapter", "question", "answer"}, AnswerField: "answer"}

	valid, rejected := ValidateRows(rows, schema)
	if len(valid) != 1 || len(rejected) != 2 {
		t.Fatalf("got %d valid, %d rejected, want 1 and 2", len(valid), len(rejected))
	}
	// Header is row 1, so input index 1 is spreadsheet row 3.
	if rejected[0].RowNumber != 3 {
		t.Fatalf("first rejection row number = %d, want 3", rejected[0].RowNumber)
	}
	if !strings.HasPrefix(rejected[0].Reason, "Row 3:") {
		t.Fatalf("reason %q should start with Row 3:", rejected[0].Reason)
	}
	if rejected[1].RowNumber != 4 {
		t.Fatalf("second rejection row number = %d, want 4", rejected[1].RowNumber)
	}
}

func TestResolveTaxonomyCreatesEachNodeOnce(t *testing.T) {
	store := newFakeStore()
	rows := historyRows()

	tax, err := ResolveTaxonomy(context.Background(), store, rows, flashcardSpec(false))
	if err != nil {
		t.Fatalf("ResolveTaxonomy: %v", err)
	}
	if store.count("subject") != 1 {
		t.Fatalf("subject count = %d, want 1", store.count("subject"))
	}
	if store.count("chapter") != 1 {
		t.Fatalf("chapter count = %d, want 1", store.count("chapter"))
	}
	if tax.CreatedSubjects != 1 || tax.CreatedChapters != 1 {
		t.Fatalf("created counts = %d/%d, want 1/1", tax.CreatedSubjects, tax.CreatedChapters)
	}

	id0, ok := tax.ChapterID(rows[0])
	if !ok {
		t.Fatal("chapter id missing for row 0")
	}
	id1, _ := tax.ChapterID(rows[1])
	if id0 != id1 {
		t.Fatalf("rows resolved to different chapters: %q vs %q", id0, id1)
	}
}

func TestResolveTaxonomyIsIdempotentAcrossRuns(t *testing.T) {
	store := newFakeStore()
	rows := historyRows()
	spec := flashcardSpec(false)

	first, err := ResolveTaxonomy(context.Background(), store, rows, spec)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := ResolveTaxonomy(context.Background(), store, rows, spec)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if second.CreatedSubjects != 0 || second.CreatedChapters != 0 {
		t.Fatalf("second run created %d subjects, %d chapters, want 0/0", second.CreatedSubjects, second.CreatedChapters)
	}
	firstID, _ := first.ChapterID(rows[0])
	secondID, _ := second.ChapterID(rows[0])
	if firstID != secondID {
		t.Fatalf("second run resolved a different chapter id: %q vs %q", secondID, firstID)
	}
	if store.count("subject") != 1 || store.count("chapter") != 1 {
		t.Fatalf("taxonomy grew across runs: %d subjects, %d chapters", store.count("subject"), store.count("chapter"))
	}
}

func TestResolveTaxonomyIsCaseSensitiveByDefault(t *testing.T) {
	store := newFakeStore()
	rows := []Row{
		{"subject": "History", "chapter": "Modern India", "title": "a"},
		{"subject": "history", "chapter": "Modern India", "title": "b"},
	}

	if _, err := ResolveTaxonomy(context.Background(), store, rows, flashcardSpec(false)); err != nil {
		t.Fatalf("ResolveTaxonomy: %v", err)
	}
	if store.count("subject") != 2 {
		t.Fatalf("subject count = %d, want 2 distinct case spellings", store.count("subject"))
	}

	folded := newFakeStore()
	if _, err := ResolveTaxonomy(context.Background(), folded, rows, flashcardSpec(true)); err != nil {
		t.Fatalf("ResolveTaxonomy folded: %v", err)
	}
	if folded.count("subject") != 1 {
		t.Fatalf("folded subject count = %d, want 1", folded.count("subject"))
	}
}

func TestResolveTaxonomyTrimsNames(t *testing.T) {
	store := newFakeStore()
	rows := []Row{
		{"subject": "History", "chapter": "Modern India"},
		{"subject": "  History  ", "chapter": "Modern India "},
	}

	if _, err := ResolveTaxonomy(context.Background(), store, rows, flashcardSpec(false)); err != nil {
		t.Fatalf("ResolveTaxonomy: %v", err)
	}
	if store.count("subject") != 1 || store.count("chapter") != 1 {
		t.Fatalf("got %d subjects, %d chapters, want 1/1 after trimming", store.count("subject"), store.count("chapter"))
	}
}

func TestResolveTaxonomyHonorsCancellation(t *testing.T) {
	store := newFakeStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ResolveTaxonomy(ctx, store, historyRows(), flashcardSpec(false))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if store.createCalls != 0 {
		t.Fatalf("store received %d creates after cancellation", store.createCalls)
	}
}

func TestInsertLeavesAssignsSequenceFromStoreMax(t *testing.T) {
	store := newFakeStore()
	// Pre-existing cards numbered up to 7.
	store.collections["flashcard"] = []map[string]any{
		{"id": "pre-1", "card_no": 3},
		{"id": "pre-2", "card_no": 7},
	}

	rows := historyRows()
	tax, err := ResolveTaxonomy(context.Background(), store, rows, flashcardSpec(false))
	if err != nil {
		t.Fatalf("ResolveTaxonomy: %v", err)
	}
	result, err := InsertLeaves(context.Background(), store, rows, tax, flashcardLeaf())
	if err != nil {
		t.Fatalf("InsertLeaves: %v", err)
	}
	if result.Added != 2 {
		t.Fatalf("added = %d, want 2", result.Added)
	}

	var got []int
	for _, record := range store.collections["flashcard"] {
		if strings.HasPrefix(record["id"].(string), "id-") {
			got = append(got, record["card_no"].(int))
		}
	}
	if len(got) != 2 || got[0] != 8 || got[1] != 9 {
		t.Fatalf("new card numbers = %v, want [8 9]", got)
	}
}

func TestInsertLeavesIsolatesPerRowFailures(t *testing.T) {
	store := newFakeStore()
	rows := []Row{
		{"subject": "History", "chapter": "Modern India", "title": "row1"},
		{"subject": "History", "chapter": "Modern India", "title": "row2"},
		{"subject": "History", "chapter": "Modern India", "title": "row3"},
		{"subject": "History", "chapter": "Modern India", "title": "row4"},
		{"subject": "History", "chapter": "Modern India", "title": "row5"},
	}
	tax, err := ResolveTaxonomy(context.Background(), store, rows, flashcardSpec(false))
	if err != nil {
		t.Fatalf("ResolveTaxonomy: %v", err)
	}

	failures := 0
	store.failCreate = func(collection string, call int) error {
		if collection == "flashcard" {
			failures++
			if failures == 2 {
				return errors.New("write refused")
			}
		}
		return nil
	}

	result, err := InsertLeaves(context.Background(), store, rows, tax, flashcardLeaf())
	if err != nil {
		t.Fatalf("InsertLeaves: %v", err)
	}
	if result.Added != 4 {
		t.Fatalf("added = %d, want 4", result.Added)
	}
	if len(result.Failed) != 1 {
		t.Fatalf("failed = %d, want 1", len(result.Failed))
	}
	if result.Failed[0].Identifier != "row2" {
		t.Fatalf("failed identifier = %q, want row2", result.Failed[0].Identifier)
	}
	if !strings.Contains(result.Failed[0].Reason, "write refused") {
		t.Fatalf("failed reason %q missing underlying error", result.Failed[0].Reason)
	}
}

func TestEndToEndImportTwice(t *testing.T) {
	store := newFakeStore()
	rows := historyRows()
	spec := flashcardSpec(false)
	leaf := flashcardLeaf()

	tax, err := ResolveTaxonomy(context.Background(), store, rows, spec)
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	result, err := InsertLeaves(context.Background(), store, rows, tax, leaf)
	if err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if result.Added != 2 {
		t.Fatalf("first run added = %d, want 2", result.Added)
	}
	if store.count("subject") != 1 || store.count("chapter") != 1 || store.count("flashcard") != 2 {
		t.Fatalf("after first run: %d subjects, %d chapters, %d cards", store.count("subject"), store.count("chapter"), store.count("flashcard"))
	}
	chapterID, _ := tax.ChapterID(rows[0])
	for _, card := range store.collections["flashcard"] {
		if card["chapter_id"] != chapterID {
			t.Fatalf("card %v not attached to chapter %q", card, chapterID)
		}
	}

	tax2, err := ResolveTaxonomy(context.Background(), store, rows, spec)
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	result2, err := InsertLeaves(context.Background(), store, rows, tax2, leaf)
	if err != nil {
		t.Fatalf("second insert: %v", err)
	}
	if tax2.CreatedSubjects != 0 || tax2.CreatedChapters != 0 {
		t.Fatalf("second run created taxonomy nodes: %d/%d", tax2.CreatedSubjects, tax2.CreatedChapters)
	}
	if result2.Added != 2 {
		t.Fatalf("second run added = %d, want 2", result2.Added)
	}

	var seqs []int
	for _, card := range store.collections["flashcard"] {
		seqs = append(seqs, card["card_no"].(int))
	}
	want := []int{1, 2, 3, 4}
	for i, n := range want {
		if seqs[i] != n {
			t.Fatalf("card numbers = %v, want %v", seqs, want)
		}
	}
}
