package importer

import (
	"context"
	"fmt"
)

// Sequence enables batch numbering for a leaf type. The current maximum
// of Field is read once before the first row; rows then get max+1, max+2,
// ... in input order.
type Sequence struct {
	Field string
}

// LeafSpec describes how one validated row becomes a stored record.
// Fields receives the resolved chapter id and the assigned sequence
// number (0 when the leaf type is not sequenced). Identify supplies the
// text used to name the row in failure reports.
type LeafSpec struct {
	Collection string
	Sequence   *Sequence
	Fields     func(row Row, chapterID string, seq int) map[string]any
	Identify   func(row Row) string
}

// FailedRow records a per-row insertion failure.
type FailedRow struct {
	Identifier string `json:"identifier"`
	Reason     string `json:"reason"`
}

// Result summarizes leaf insertion.
type Result struct {
	Added  int         `json:"added"`
	Failed []FailedRow `json:"failed,omitempty"`
}

// InsertLeaves persists one record per row, sequentially in input order.
// A single row's create failure is recorded and the batch continues;
// only store errors outside row scope (the FindMax call) or context
// cancellation abort the run. Rows whose chapter was never resolved are
// skipped.
func InsertLeaves(ctx context.Context, store Store, rows []Row, tax *Taxonomy, leaf LeafSpec) (*Result, error) {
	result := &Result{}

	next := 0
	if leaf.Sequence != nil {
		maxExisting, err := store.FindMax(ctx, leaf.Collection, leaf.Sequence.Field)
		if err != nil {
			return nil, fmt.Errorf("reading max %s.%s: %w", leaf.Collection, leaf.Sequence.Field, err)
		}
		next = maxExisting
	}

	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		chapterID, ok := tax.ChapterID(row)
		if !ok {
			continue
		}
		seq := 0
		if leaf.Sequence != nil {
			next++
			seq = next
		}
		fields := leaf.Fields(row, chapterID, seq)
		if _, err := store.Create(ctx, leaf.Collection, fields); err != nil {
			identifier := ""
			if leaf.Identify != nil {
				identifier = leaf.Identify(row)
			}
			result.Failed = append(result.Failed, FailedRow{Identifier: identifier, Reason: err.Error()})
			continue
		}
		result.Added++
	}
	return result, nil
}
