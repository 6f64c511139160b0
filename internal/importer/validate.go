package importer

import (
	"fmt"
	"strings"
)

// Schema describes the required columns of an import type. When
// AnswerField is set, the column must hold one of a-d (case-insensitive)
// and is normalized to lowercase on the returned valid row.
type Schema struct {
	Required    []string
	AnswerField string
}

// RejectedRow pairs a failed input row with its reason. RowNumber is the
// spreadsheet row (input index + 2, accounting for the header row).
type RejectedRow struct {
	Index     int    `json:"index"`
	RowNumber int    `json:"row_number"`
	Reason    string `json:"reason"`
}

var validAnswers = map[string]bool{"a": true, "b": true, "c": true, "d": true}

// ValidateRows partitions rows into valid and rejected. A row fails when
// any required field is absent or whitespace-only after trimming, or when
// the answer field holds anything but a-d. Input rows are never modified;
// valid rows come back as copies with the answer lowercased. Callers must
// abort the whole import when rejected is non-empty; no writes happen
// before validation.
func ValidateRows(rows []Row, schema Schema) ([]Row, []RejectedRow) {
	var valid []Row
	var rejected []RejectedRow

	for i, row := range rows {
		reason := ""
		for _, field := range schema.Required {
			if strings.TrimSpace(row[field]) == "" {
				reason = fmt.Sprintf("missing %s", field)
				break
			}
		}
		answer := ""
		if reason == "" && schema.AnswerField != "" {
			answer = strings.ToLower(strings.TrimSpace(row[schema.AnswerField]))
			if !validAnswers[answer] {
				reason = "invalid answer (must be a, b, c, or d)"
			}
		}
		if reason != "" {
			rejected = append(rejected, RejectedRow{
				Index:     i,
				RowNumber: i + 2,
				Reason:    fmt.Sprintf("Row %d: %s", i+2, reason),
			})
			continue
		}

		out := make(Row, len(row))
		for k, v := range row {
			out[k] = v
		}
		if schema.AnswerField != "" {
			out[schema.AnswerField] = answer
		}
		valid = append(valid, out)
	}
	return valid, rejected
}
