package question

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a question bank.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question bank validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeBank trims whitespace, upper-cases answer letters, derives
// MultipleCorrect and validates every question of a bank.
func NormalizeBank(bank Bank) (Bank, error) {
	collector := &issueCollector{}
	if bank.Version == 0 {
		collector.add("version", "is required")
	} else if bank.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", bank.Version))
	}
	if len(bank.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	seenIDs := map[string]struct{}{}
	for i, q := range bank.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		q.ID = strings.TrimSpace(q.ID)
		if q.ID == "" {
			collector.add(prefix+".id", "is required")
		} else if _, exists := seenIDs[q.ID]; exists {
			collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", q.ID))
		} else {
			seenIDs[q.ID] = struct{}{}
		}

		q.Prompt = strings.TrimSpace(q.Prompt)
		if q.Prompt == "" {
			collector.add(prefix+".question", "is required")
		}

		q.Options = trimAll(q.Options)
		switch {
		case len(q.Options) < MinOptions:
			collector.add(prefix+".options", fmt.Sprintf("must include at least %d entries", MinOptions))
		case len(q.Options) > MaxOptions:
			collector.add(prefix+".options", fmt.Sprintf("must include at most %d entries", MaxOptions))
		}
		for optionIndex, option := range q.Options {
			if option == "" {
				collector.add(fmt.Sprintf("%s.options[%d]", prefix, optionIndex), "is required")
			}
		}

		letters := make([]string, 0, len(q.CorrectAnswers))
		for _, answer := range q.CorrectAnswers {
			letters = append(letters, NormalizeLetter(answer))
		}
		q.CorrectAnswers = dedupeLetters(letters)
		if len(q.CorrectAnswers) == 0 {
			collector.add(prefix+".correct_answers", "must include at least one entry")
		}
		for correctIndex, letter := range q.CorrectAnswers {
			if !q.HasOption(letter) {
				collector.add(fmt.Sprintf("%s.correct_answers[%d]", prefix, correctIndex), fmt.Sprintf("unknown option %q", letter))
			}
		}
		q.MultipleCorrect = len(q.CorrectAnswers) > 1
		bank.Questions[i] = q
	}

	if err := collector.result(); err != nil {
		return Bank{}, err
	}
	return bank, nil
}

func trimAll(values []string) []string {
	trimmed := make([]string, 0, len(values))
	for _, value := range values {
		trimmed = append(trimmed, strings.TrimSpace(value))
	}
	return trimmed
}
