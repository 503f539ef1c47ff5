package question

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestLoadBankYAML verifies YAML banks load and normalize properly.
func TestLoadBankYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "1.quiz.yml")
	payload := `version: 1
questions:
  - id: q1
    question: "  What is 2+2? "
    options: [" 4 ", "5"]
    correct_answers: ["a"]
  - id: q2
    question: "Pick the primes"
    options: ["2", "3", "4"]
    correct_answers: ["A", "b", "A"]
`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	bank, err := LoadBank(path)
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}
	if len(bank.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(bank.Questions))
	}
	first := bank.Questions[0]
	if first.Prompt != "What is 2+2?" {
		t.Fatalf("expected trimmed prompt, got %q", first.Prompt)
	}
	if first.Options[0] != "4" {
		t.Fatalf("expected trimmed option, got %q", first.Options[0])
	}
	if len(first.CorrectAnswers) != 1 || first.CorrectAnswers[0] != "A" || first.MultipleCorrect {
		t.Fatalf("unexpected single answer question: %+v", first)
	}
	second := bank.Questions[1]
	if len(second.CorrectAnswers) != 2 || !second.MultipleCorrect {
		t.Fatalf("expected deduplicated multi answer, got %+v", second)
	}
}

// TestLoadBankJSON verifies JSON banks are parsed and validated.
func TestLoadBankJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "2.quiz.json")
	payload := `{
  "version": 1,
  "questions": [
    {
      "id": "colors",
      "question": "Which color?",
      "options": ["red", "blue"],
      "correct_answers": ["B"]
    }
  ]
}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	bank, err := LoadBank(path)
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}
	if len(bank.Questions) != 1 || bank.Questions[0].ID != "colors" {
		t.Fatalf("unexpected bank: %+v", bank.Questions)
	}
}

// TestParseBankValidationErrors verifies invalid banks return every issue.
func TestParseBankValidationErrors(t *testing.T) {
	payload := `version: 1
questions:
  - id: dup
    question: "Q1"
    options: ["yes", "no", "maybe"]
    correct_answers: ["D"]
  - id: dup
    question: ""
    options: ["a"]
    correct_answers: []
`
	_, err := ParseBank([]byte(payload), FormatYAML)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	fields := map[string]bool{}
	for _, issue := range validationErr.Issues {
		fields[issue.Field] = true
	}
	for _, field := range []string{
		"questions[0].correct_answers[0]",
		"questions[1].id",
		"questions[1].question",
		"questions[1].options",
		"questions[1].correct_answers",
	} {
		if !fields[field] {
			t.Fatalf("expected issue for %s, got %+v", field, validationErr.Issues)
		}
	}
}

// TestParseBankRejectsUnknownFields verifies strict decoding.
func TestParseBankRejectsUnknownFields(t *testing.T) {
	payload := "version: 1\nquestions: []\nextra: true\n"
	if _, err := ParseBank([]byte(payload), FormatYAML); err == nil {
		t.Fatalf("expected unknown field error")
	}
}

// TestParseBankRejectsMultipleDocuments verifies only one document is accepted.
func TestParseBankRejectsMultipleDocuments(t *testing.T) {
	payload := "version: 1\n---\nversion: 1\n"
	_, err := ParseBank([]byte(payload), FormatYAML)
	if !errors.Is(err, ErrMultipleDocuments) {
		t.Fatalf("expected multiple documents error, got %v", err)
	}
}

// TestFormatForPath verifies extension based format detection.
func TestFormatForPath(t *testing.T) {
	if FormatForPath("bank.JSON") != FormatJSON {
		t.Fatalf("expected json format")
	}
	if FormatForPath("bank.yaml") != FormatYAML {
		t.Fatalf("expected yaml format")
	}
}
