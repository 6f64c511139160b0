package spreadsheet

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

func TestReadRowsCSV(t *testing.T) {
	csv := strings.Join([]string{
		" subject , chapter ,title,description",
		"History,Modern India,Charter Act,1853",
		",,,",
		"History,Modern India,Revolt of 1857,",
	}, "\n")

	rows, err := ReadRows(strings.NewReader(csv), "cards.csv")
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (blank row skipped)", len(rows))
	}
	if rows[0]["subject"] != "History" {
		t.Fatalf("header not trimmed: row = %v", rows[0])
	}
	if rows[1]["title"] != "Revolt of 1857" {
		t.Fatalf("row 2 title = %q", rows[1]["title"])
	}
	if rows[1]["description"] != "" {
		t.Fatalf("short row should map missing cells to empty, got %q", rows[1]["description"])
	}
}

func TestReadRowsXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	data := [][]any{
		{"subject", "chapter", "question", "answer"},
		{"Polity", "Preamble", "Q1", "a"},
		{"Polity", "Preamble", "Q2", "b"},
	}
	for i, record := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &record); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("writing workbook: %v", err)
	}

	rows, err := ReadRows(&buf, "mcqs.xlsx")
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0]["question"] != "Q1" || rows[1]["answer"] != "b" {
		t.Fatalf("unexpected rows: %v", rows)
	}
}

func TestReadRowsRejectsUnknownExtension(t *testing.T) {
	if _, err := ReadRows(strings.NewReader("x"), "cards.pdf"); err == nil {
		t.Fatal("expected error for .pdf upload")
	}
}

func TestTemplateHeaders(t *testing.T) {
	for _, importType := range TemplateTypes() {
		t.Run(importType, func(t *testing.T) {
			f, err := Template(importType)
			if err != nil {
				t.Fatalf("Template: %v", err)
			}
			rows, err := f.GetRows(f.GetSheetName(0))
			if err != nil {
				t.Fatalf("GetRows: %v", err)
			}
			if len(rows) != 2 {
				t.Fatalf("template has %d rows, want header + sample", len(rows))
			}
			if len(rows[0]) != len(rows[1]) {
				t.Fatalf("sample width %d does not match header width %d", len(rows[1]), len(rows[0]))
			}
		})
	}

	if _, err := Template("habits"); err == nil {
		t.Fatal("expected error for unknown template type")
	}
}

func TestTemplateRoundTripsThroughReader(t *testing.T) {
	f, err := Template("flashcards")
	if err != nil {
		t.Fatalf("Template: %v", err)
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("writing workbook: %v", err)
	}

	rows, err := ReadRows(&buf, "template.xlsx")
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want the sample row", len(rows))
	}
	for _, key := range []string{"subject", "chapter", "title", "description"} {
		if rows[0][key] == "" {
			t.Fatalf("sample row missing %q: %v", key, rows[0])
		}
	}
}

func TestMCQWorkbook(t *testing.T) {
	longSubject := strings.Repeat("Indian Art and Culture Through", 2)
	groups := []SubjectGroup{
		{
			Subject: "History",
			Rows: []MCQExportRow{
				{Question: "Q1", OptionA: "1", OptionB: "2", OptionC: "3", OptionD: "4", Answer: "a", Explanation: "E1"},
				{Question: "Q2", OptionA: "1", OptionB: "2", OptionC: "3", OptionD: "4", Answer: "d"},
			},
		},
		{
			Subject: longSubject,
			Rows:    []MCQExportRow{{Question: "Q3", Answer: "b"}},
		},
	}

	f, err := MCQWorkbook(groups)
	if err != nil {
		t.Fatalf("MCQWorkbook: %v", err)
	}

	sheets := f.GetSheetList()
	if len(sheets) != 2 {
		t.Fatalf("got %d sheets, want 2", len(sheets))
	}
	if sheets[0] != "History" {
		t.Fatalf("first sheet = %q, want History", sheets[0])
	}
	if len(sheets[1]) != 31 {
		t.Fatalf("long sheet name length = %d, want 31", len(sheets[1]))
	}

	rows, err := f.GetRows("History")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("History sheet has %d rows, want header + 2", len(rows))
	}
	if rows[0][0] != "Subject" || rows[0][7] != "Explanation" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][1] != "Q1" || rows[1][6] != "a" {
		t.Fatalf("unexpected first data row: %v", rows[1])
	}
	if rows[2][0] != "History" {
		t.Fatalf("subject column not repeated per row: %v", rows[2])
	}
}

func TestMCQWorkbookSheetNamesSurviveMultibyteAndDuplicates(t *testing.T) {
	// 48 runes, 3 bytes each, so a byte-indexed cut would split a rune.
	subject := strings.Repeat("इतिहास", 8)
	groups := []SubjectGroup{
		{Subject: subject, Rows: []MCQExportRow{{Question: "Q1", Answer: "a"}}},
		{Subject: subject, Rows: []MCQExportRow{{Question: "Q2", Answer: "b"}}},
	}

	f, err := MCQWorkbook(groups)
	if err != nil {
		t.Fatalf("MCQWorkbook: %v", err)
	}

	sheets := f.GetSheetList()
	if len(sheets) != 2 {
		t.Fatalf("got %d sheets, want 2", len(sheets))
	}
	for _, name := range sheets {
		if !utf8.ValidString(name) {
			t.Fatalf("sheet name %q is not valid UTF-8", name)
		}
		if got := utf8.RuneCountInString(name); got > 31 {
			t.Fatalf("sheet name %q has %d runes, want at most 31", name, got)
		}
	}
	if sheets[0] == sheets[1] {
		t.Fatalf("duplicate subjects collapsed onto one sheet name %q", sheets[0])
	}
	if !strings.HasSuffix(sheets[1], " (2)") {
		t.Fatalf("second sheet %q missing duplicate suffix", sheets[1])
	}
}
