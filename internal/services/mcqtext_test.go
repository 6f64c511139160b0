package services

import (
	"strings"
	"testing"
)

func TestParseMCQBlocks(t *testing.T) {
	text := strings.Join([]string{
		"1. Who wrote the Arthashastra?",
		"(a) Kautilya",
		"(b) Kalidasa",
		"(c) Banabhatta",
		"(d) Vishakhadatta",
		"",
		"2) Which ruler issued the Rock Edicts?",
		"Ashoka",
		"Bindusara",
		"Chandragupta",
		"Kanishka",
	}, "\n")

	questions := ParseMCQBlocks(text)
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
	if questions[0].Number != 1 || questions[0].Question != "Who wrote the Arthashastra?" {
		t.Fatalf("unexpected first question: %+v", questions[0])
	}
	if questions[0].Options[0] != "Kautilya" {
		t.Fatalf("option prefix not stripped: %q", questions[0].Options[0])
	}
	if questions[1].Options[3] != "Kanishka" {
		t.Fatalf("bare options not kept: %+v", questions[1].Options)
	}
}

func TestParseMCQBlocksDropsMalformedBlocks(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"short_block", "1. Question?\n(a) one\n(b) two"},
		{"unnumbered_block", "Question without number?\none\ntwo\nthree\nfour"},
		{"empty_input", "\n\n\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseMCQBlocks(tc.text); len(got) != 0 {
				t.Fatalf("got %d questions, want 0", len(got))
			}
		})
	}
}

func TestParseAnswerKey(t *testing.T) {
	key, bad := ParseAnswerKey("1 a\n2. B\n3: c\nnot a key line\n4 - d\n5 xyz\n")
	if len(key) != 4 {
		t.Fatalf("got %d entries, want 4: %v", len(key), key)
	}
	if key[2] != "b" {
		t.Fatalf("answer not lowercased: %q", key[2])
	}
	if len(bad) != 2 {
		t.Fatalf("got %d bad lines, want 2: %v", len(bad), bad)
	}
	if bad[0] != "not a key line" {
		t.Fatalf("bad line not reported verbatim: %q", bad[0])
	}
}

func TestApplyAnswerKey(t *testing.T) {
	questions := []ParsedMCQ{{Number: 1}, {Number: 2}, {Number: 7}}
	ApplyAnswerKey(questions, map[int]string{1: "a", 7: "d"})

	if questions[0].Answer != "a" || questions[2].Answer != "d" {
		t.Fatalf("answers not applied: %+v", questions)
	}
	if questions[1].Answer != "" {
		t.Fatalf("unkeyed question got answer %q", questions[1].Answer)
	}
}

func TestParseInlineMCQs(t *testing.T) {
	text := strings.Join([]string{
		"1. The Preamble was amended by which",
		"constitutional amendment?",
		"a) 42nd",
		"b) 44th",
		"c) 24th",
		"d) 25th",
		"Answer: a",
		"",
		"Which article deals with the Finance Commission?",
		"a) Article 280",
		"b) Article 312",
		"c) Article 324",
		"d) Article 360",
		"Answer - C",
	}, "\n")

	questions := ParseInlineMCQs(text)
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
	if questions[0].Question != "The Preamble was amended by which constitutional amendment?" {
		t.Fatalf("multiline question not joined: %q", questions[0].Question)
	}
	if questions[0].Answer != "a" {
		t.Fatalf("answer = %q, want a", questions[0].Answer)
	}
	if questions[1].Options[0] != "Article 280" {
		t.Fatalf("unexpected option: %+v", questions[1].Options)
	}
	if questions[1].Answer != "c" {
		t.Fatalf("answer not lowercased: %q", questions[1].Answer)
	}
	if questions[1].Number != 2 {
		t.Fatalf("numbering not sequential: %d", questions[1].Number)
	}
}

func TestParseInlineMCQsDropsIncomplete(t *testing.T) {
	text := strings.Join([]string{
		"Question missing an answer line?",
		"a) one",
		"b) two",
		"c) three",
		"d) four",
		"",
		"Complete question?",
		"a) one",
		"b) two",
		"c) three",
		"d) four",
		"Answer: b",
	}, "\n")

	questions := ParseInlineMCQs(text)
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(questions))
	}
	if questions[0].Question != "Complete question?" {
		t.Fatalf("wrong question kept: %q", questions[0].Question)
	}
}
