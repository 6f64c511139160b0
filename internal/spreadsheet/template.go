package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

type templateSpec struct {
	headers []string
	sample  []any
}

var templates = map[string]templateSpec{
	"mcqs": {
		headers: []string{"subject", "chapter", "question", "option1", "option2", "option3", "option4", "answer", "explanation"},
		sample: []any{
			"History", "Modern India",
			"Who founded the Indian National Congress?",
			"A. O. Hume", "Dadabhai Naoroji", "W. C. Bonnerjee", "Surendranath Banerjee",
			"a",
			"Founded in 1885 with A. O. Hume as General Secretary.",
		},
	},
	"flashcards": {
		headers: []string{"subject", "chapter", "title", "description"},
		sample: []any{
			"History", "Modern India",
			"Charter Act 1853",
			"Separated legislative and executive functions of the Governor-General's council.",
		},
	},
	"syllabus": {
		headers: []string{"subject_name", "topic_name", "syllabus_topic_name"},
		sample: []any{
			"Polity", "Constitutional Framework", "Preamble and its amendability",
		},
	},
}

// TemplateTypes lists the import types Template accepts.
func TemplateTypes() []string {
	return []string{"mcqs", "flashcards", "syllabus"}
}

// Template builds the downloadable xlsx template for an import type, a
// header row plus one sample row.
func Template(importType string) (*excelize.File, error) {
	spec, ok := templates[importType]
	if !ok {
		return nil, fmt.Errorf("unknown import type %q", importType)
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	header := make([]any, len(spec.headers))
	for i, h := range spec.headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("writing header row: %w", err)
	}
	if err := f.SetSheetRow(sheet, "A2", &spec.sample); err != nil {
		return nil, fmt.Errorf("writing sample row: %w", err)
	}
	return f, nil
}
