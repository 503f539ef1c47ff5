package plain

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"quizdeck/internal/question"
	"quizdeck/internal/quiz"
	"quizdeck/internal/testutil"
)

const module = `# Module
---
### Question 1
What is X?
A. foo
B. bar
correct: A
### Question 2
Pick the vowels
A. a
B. b
C. e
correct: A, C
---`

func run(t *testing.T, input string) (*quiz.Session, string) {
	t.Helper()
	session, err := quiz.New(question.Parse(module))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	var out bytes.Buffer
	ctx := testutil.Context(t, time.Second)
	if err := Run(ctx, session, strings.NewReader(input), &out, Options{Title: "Module"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	return session, out.String()
}

// TestRunFullAttempt verifies answering, checking and submitting through the prompt.
func TestRunFullAttempt(t *testing.T) {
	session, out := run(t, "b\ncheck\na\ncheck\nnext\na,c\nsubmit\nquit\n")

	for _, want := range []string{
		"Question 1 of 2",
		"Incorrect. Correct answer: A",
		"Correct!",
		"Question 2 of 2 (answered 1)",
		"(select all that apply)",
		"Submitted: 2 of 2 correct",
		"Score: 2 / 2 (100%)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if score, ok := session.Score(); !ok || score != 2 {
		t.Fatalf("expected score 2, got %d (%v)", score, ok)
	}
}

// TestRunReportsBadInput verifies unknown commands are reported and skipped.
func TestRunReportsBadInput(t *testing.T) {
	session, out := run(t, "frobnicate\ngoto 7\n")
	if !strings.Contains(out, "unknown command") {
		t.Fatalf("expected unknown command message:\n%s", out)
	}
	if !strings.Contains(out, "No question 7") {
		t.Fatalf("expected range message:\n%s", out)
	}
	if session.CurrentIndex() != 0 {
		t.Fatalf("expected index 0, got %d", session.CurrentIndex())
	}
}

// TestRunRetake verifies retake prints the first question again.
func TestRunRetake(t *testing.T) {
	session, out := run(t, "a\nnext\na\nsubmit\nretake\n")
	if session.Submitted() || session.AnsweredCount() != 0 {
		t.Fatalf("expected a fresh attempt")
	}
	if strings.Count(out, "Question 1 of 2") != 2 {
		t.Fatalf("expected first question printed twice:\n%s", out)
	}
}

// TestRunSubmitWaitsForLastQuestion verifies submit is refused before the final question.
func TestRunSubmitWaitsForLastQuestion(t *testing.T) {
	session, out := run(t, "a\nsubmit\nnext\nsubmit\n")
	if !strings.Contains(out, "Submit from the last question (2 of 2)") {
		t.Fatalf("expected early submit to be refused:\n%s", out)
	}
	if strings.Count(out, "(last question: type submit when you are done)") != 1 {
		t.Fatalf("expected the submit hint on the last question only:\n%s", out)
	}
	if score, ok := session.Score(); !ok || score != 1 {
		t.Fatalf("expected score 1 after submitting from the last question, got %d %v", score, ok)
	}
}

// TestRunStopsOnCancelledContext verifies cancellation ends the loop.
func TestRunStopsOnCancelledContext(t *testing.T) {
	session, err := quiz.New(question.SampleQuestions())
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = Run(ctx, session, strings.NewReader("a\n"), &bytes.Buffer{}, Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
