package question

import (
	"regexp"
	"strconv"
	"strings"
)

const sectionMarker = "---"

var (
	blockHeadingPattern = regexp.MustCompile(`(?i)###\s*Question\s*\d+`)
	optionLinePattern   = regexp.MustCompile(`^([A-D])\.\s*(.+)$`)
	promptPrefixPattern = regexp.MustCompile(`^[:#\s]+`)
	correctPrefix       = regexp.MustCompile(`(?i)^correct:\s*`)
)

// Parse extracts the questions of the first quiz section in text. The section
// is the region between two lines holding only "---". Malformed blocks are
// skipped, so the result may be empty but parsing never fails.
func Parse(text string) []Question {
	section, ok := ExtractSection(text)
	if !ok {
		return nil
	}
	var questions []Question
	for index, block := range blockHeadingPattern.Split(section, -1) {
		q, ok := parseBlock(block)
		if !ok {
			continue
		}
		// Ids follow the raw block position, so dropped blocks leave gaps.
		q.ID = "q" + strconv.Itoa(index+1)
		questions = append(questions, q)
	}
	return questions
}

// ExtractSection returns the interior of the first quiz section.
func ExtractSection(text string) (string, bool) {
	lines := strings.Split(text, "\n")
	start := -1
	for i, line := range lines {
		if strings.TrimSpace(line) != sectionMarker {
			continue
		}
		if start == -1 {
			start = i
			continue
		}
		return strings.Join(lines[start+1:i], "\n"), true
	}
	return "", false
}

// parseBlock turns one block body into a question.
func parseBlock(block string) (Question, bool) {
	if strings.TrimSpace(block) == "" {
		return Question{}, false
	}
	lines := nonBlankLines(block)
	if len(lines) < 3 {
		return Question{}, false
	}

	prompt := strings.TrimSpace(promptPrefixPattern.ReplaceAllString(lines[0], ""))
	var (
		options []string
		correct []string
		current string
	)
	flush := func() {
		if current != "" {
			options = append(options, current)
			current = ""
		}
	}

	for _, line := range lines[1:] {
		if match := optionLinePattern.FindStringSubmatch(line); match != nil {
			flush()
			current = match[2]
			continue
		}
		if strings.HasPrefix(strings.ToLower(line), "correct:") {
			flush()
			correct = append(correct, parseCorrectLetters(line)...)
			continue
		}
		if current != "" {
			current += " " + line
		}
	}
	flush()

	correct = dedupeLetters(correct)
	if prompt == "" || len(options) < MinOptions || len(options) > MaxOptions || len(correct) == 0 {
		return Question{}, false
	}
	q := Question{
		Prompt:          prompt,
		Options:         options,
		CorrectAnswers:  correct,
		MultipleCorrect: len(correct) > 1,
	}
	for _, letter := range correct {
		if !q.HasOption(letter) {
			return Question{}, false
		}
	}
	return q, true
}

// parseCorrectLetters reads the comma separated letters of a correct: line,
// keeping only A through D.
func parseCorrectLetters(line string) []string {
	rest := strings.TrimSpace(correctPrefix.ReplaceAllString(line, ""))
	var letters []string
	for _, part := range strings.Split(rest, ",") {
		letter := NormalizeLetter(part)
		if _, ok := LetterIndex(letter); ok {
			letters = append(letters, letter)
		}
	}
	return letters
}

// nonBlankLines returns the trimmed, non-empty lines of block.
func nonBlankLines(block string) []string {
	raw := strings.Split(strings.TrimSpace(block), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lines = append(lines, trimmed)
	}
	return lines
}
