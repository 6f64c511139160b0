package spreadsheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// MCQExportRow is one question in an export workbook.
type MCQExportRow struct {
	Question    string
	OptionA     string
	OptionB     string
	OptionC     string
	OptionD     string
	Answer      string
	Explanation string
}

// SubjectGroup is the set of questions exported under one subject.
type SubjectGroup struct {
	Subject string
	Rows    []MCQExportRow
}

var mcqExportHeaders = []any{"Subject", "Question", "OptionA", "OptionB", "OptionC", "OptionD", "Answer", "Explanation"}

// MCQWorkbook builds the export workbook, one sheet per subject. Sheet
// names are capped at 31 characters, the xlsx limit.
func MCQWorkbook(groups []SubjectGroup) (*excelize.File, error) {
	f := excelize.NewFile()

	used := make(map[string]bool)
	for i, group := range groups {
		sheet := sheetName(group.Subject, used)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return nil, fmt.Errorf("naming sheet %q: %w", sheet, err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, fmt.Errorf("adding sheet %q: %w", sheet, err)
			}
		}

		if err := f.SetSheetRow(sheet, "A1", &mcqExportHeaders); err != nil {
			return nil, fmt.Errorf("writing header on %q: %w", sheet, err)
		}
		for j, row := range group.Rows {
			cell := fmt.Sprintf("A%d", j+2)
			values := []any{group.Subject, row.Question, row.OptionA, row.OptionB, row.OptionC, row.OptionD, row.Answer, row.Explanation}
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				return nil, fmt.Errorf("writing row %d on %q: %w", j+2, sheet, err)
			}
		}
	}
	return f, nil
}

// sheetName caps a subject title at the 31-character sheet limit,
// counting runes so a multi-byte title is never split mid-rune, and
// suffixes repeats so two subjects cannot claim the same sheet. Sheet
// names are case-insensitive in xlsx, hence the lowercased keys.
func sheetName(subject string, used map[string]bool) string {
	name := truncateRunes(subject, 31)
	for n := 2; used[strings.ToLower(name)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		name = truncateRunes(subject, 31-len([]rune(suffix))) + suffix
	}
	used[strings.ToLower(name)] = true
	return name
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
