package services

import (
	"regexp"
	"strconv"
	"strings"
)

// ParsedMCQ is one question recovered from pasted free text.
type ParsedMCQ struct {
	Number      int       `json:"number"`
	Question    string    `json:"question"`
	Options     [4]string `json:"options"`
	Answer      string    `json:"answer,omitempty"`
	Explanation string    `json:"explanation,omitempty"`
}

var (
	questionLineRe = regexp.MustCompile(`^(\d+)[.)]\s*(.+)$`)
	optionPrefixRe = regexp.MustCompile(`^\(([a-dA-D])\)\s*`)
	answerKeyRe    = regexp.MustCompile(`^(\d+)[\s.:\-]+([a-dA-D])$`)
	inlineOptionRe = regexp.MustCompile(`^([a-dA-D])[.)]\s*(.*)$`)
	inlineAnswerRe = regexp.MustCompile(`(?i)^answer\s*[:\-]?\s*([a-dA-D])\b`)
)

// ParseMCQBlocks parses the numbered-block grammar: blocks separated by
// blank lines, first line "<n>. <question>", then four option lines with
// optional "(a) ".."(d) " prefixes. Blocks that are short, unnumbered or
// otherwise malformed are dropped without report.
func ParseMCQBlocks(text string) []ParsedMCQ {
	var questions []ParsedMCQ

	for _, block := range splitBlocks(text) {
		if len(block) < 5 {
			continue
		}
		m := questionLineRe.FindStringSubmatch(block[0])
		if m == nil {
			continue
		}
		number, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		q := ParsedMCQ{Number: number, Question: strings.TrimSpace(m[2])}
		for i := 0; i < 4; i++ {
			q.Options[i] = strings.TrimSpace(optionPrefixRe.ReplaceAllString(block[i+1], ""))
		}
		questions = append(questions, q)
	}
	return questions
}

// ParseAnswerKey parses "<n> <letter>" lines into a number-to-answer map.
// Lines that fit neither that shape nor blank are skipped and returned
// verbatim so the caller can report them.
func ParseAnswerKey(text string) (map[int]string, []string) {
	answers := make(map[int]string)
	var bad []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := answerKeyRe.FindStringSubmatch(line)
		if m == nil {
			bad = append(bad, line)
			continue
		}
		number, err := strconv.Atoi(m[1])
		if err != nil {
			bad = append(bad, line)
			continue
		}
		answers[number] = strings.ToLower(m[2])
	}
	return answers, bad
}

// ApplyAnswerKey fills in answers by question number. Questions without a
// key entry keep an empty answer.
func ApplyAnswerKey(questions []ParsedMCQ, key map[int]string) {
	for i := range questions {
		if answer, ok := key[questions[i].Number]; ok {
			questions[i].Answer = answer
		}
	}
}

// ParseInlineMCQs parses the answer-inline grammar: question text spans
// lines until the "a)" option, options "a)".."d)" follow, then an
// "Answer: <letter>" line closes the question. Questions missing any of
// the four options or the answer line are dropped.
func ParseInlineMCQs(text string) []ParsedMCQ {
	var questions []ParsedMCQ

	var questionLines []string
	var current *ParsedMCQ
	optionCount := 0

	flush := func() {
		if current != nil && optionCount == 4 && current.Answer != "" {
			current.Question = strings.TrimSpace(current.Question)
			current.Number = len(questions) + 1
			questions = append(questions, *current)
		}
		current = nil
		optionCount = 0
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := inlineOptionRe.FindStringSubmatch(line); m != nil {
			letter := strings.ToLower(m[1])
			index := int(letter[0] - 'a')
			if index == 0 {
				if current != nil {
					flush()
				}
				current = &ParsedMCQ{Question: strings.Join(questionLines, " ")}
				questionLines = questionLines[:0]
			}
			if current != nil && index == optionCount {
				current.Options[index] = strings.TrimSpace(m[2])
				optionCount++
			}
			continue
		}

		if m := inlineAnswerRe.FindStringSubmatch(line); m != nil && current != nil {
			current.Answer = strings.ToLower(m[1])
			flush()
			continue
		}

		line = questionLineRe.ReplaceAllString(line, "$2")
		if current != nil && optionCount == 4 {
			// Expected an answer line; the pending question is
			// incomplete, and this line starts the next one.
			current = nil
			optionCount = 0
			questionLines = append(questionLines[:0], line)
			continue
		}
		if current == nil {
			questionLines = append(questionLines, line)
		}
	}
	flush()
	return questions
}

func splitBlocks(text string) [][]string {
	var blocks [][]string
	var block []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if len(block) > 0 {
				blocks = append(blocks, block)
				block = nil
			}
			continue
		}
		block = append(block, line)
	}
	if len(block) > 0 {
		blocks = append(blocks, block)
	}
	return blocks
}
