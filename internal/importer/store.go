// Package importer implements the bulk-import pipeline shared by the MCQ,
// flashcard and syllabus upload flows: row validation, two-pass
// subject/chapter resolution with lookup-or-create semantics, and
// sequenced leaf-record insertion. It is store-agnostic; callers supply a
// Store backed by whatever database holds the records.
package importer

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Store.FindOne when no record matches.
var ErrNotFound = errors.New("record not found")

// Store is the minimal collaborator contract the import pipeline needs.
// Implementations must apply equality filters exactly (no case folding).
type Store interface {
	// FindOne returns the first record in collection matching all filters,
	// or ErrNotFound.
	FindOne(ctx context.Context, collection string, filters map[string]any) (map[string]any, error)
	// FindMax returns the maximum value of a numeric field across the
	// collection, or 0 when the collection is empty.
	FindMax(ctx context.Context, collection string, field string) (int, error)
	// Create inserts a record and returns its new id.
	Create(ctx context.Context, collection string, fields map[string]any) (string, error)
}

// Row is one spreadsheet row keyed by header name.
type Row map[string]string
