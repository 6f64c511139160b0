package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// MCQImportRow is one question destined for the MCQ import column layout.
type MCQImportRow struct {
	Question    string
	Option1     string
	Option2     string
	Option3     string
	Option4     string
	Answer      string
	Explanation string
}

// MCQImportWorkbook builds an xlsx in the MCQ upload layout, with the
// given subject and chapter repeated on every row. The output round-trips
// through ReadRows into an MCQ import.
func MCQImportWorkbook(subject, chapter string, rows []MCQImportRow) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := templates["mcqs"].headers
	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("writing header row: %w", err)
	}

	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		values := []any{subject, chapter, row.Question, row.Option1, row.Option2, row.Option3, row.Option4, row.Answer, row.Explanation}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return f, nil
}
