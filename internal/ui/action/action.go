// Package action maps user intents onto quiz session operations for the views.
package action

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"quizdeck/internal/question"
	"quizdeck/internal/quiz"
)

// Kind identifies a user intent.
type Kind int

const (
	None Kind = iota
	Select
	Check
	Next
	Previous
	Jump
	Submit
	Retake
	Help
	Quit
)

// Action is a user intent with its argument.
type Action struct {
	Kind Kind
	// Letter is set for Select.
	Letter string
	// Target is the zero-based index for Jump.
	Target int
}

// Apply applies action to the session and returns the status line to show.
// Actions the session rejects leave it untouched and explain why.
func Apply(session *quiz.Session, action Action) string {
	current := session.Current()
	switch action.Kind {
	case Select, Check, Submit:
		if session.Submitted() {
			return "Quiz submitted; retake to answer again"
		}
	}
	switch action.Kind {
	case Select:
		if !session.SelectAnswer(current.ID, action.Letter) {
			letters := current.Letters()
			if len(letters) == 0 {
				return fmt.Sprintf("No option %s for this question", action.Letter)
			}
			return fmt.Sprintf("No option %s for this question (choose %s-%s)", action.Letter, letters[0], letters[len(letters)-1])
		}
		selected := session.Answer(current.ID)
		if len(selected) == 0 {
			return "Selection cleared"
		}
		return "Selected " + strings.Join(selected, ", ")
	case Check:
		if !session.CanCheck(current.ID) {
			return "Select an answer before checking"
		}
		if session.CheckCurrent() {
			return "Correct!"
		}
		return "Incorrect. Correct answer: " + strings.Join(current.CorrectAnswers, ", ")
	case Next:
		if !session.Next() {
			return "Already at the last question"
		}
	case Previous:
		if !session.Previous() {
			return "Already at the first question"
		}
	case Jump:
		if !session.Navigate(action.Target) {
			return fmt.Sprintf("No question %d", action.Target+1)
		}
	case Submit:
		if !session.IsLast() {
			return fmt.Sprintf("Submit from the last question (%d of %d)", session.Len(), session.Len())
		}
		if !session.CanSubmit() {
			return "Answer at least one question before submitting"
		}
		score := session.Submit()
		return fmt.Sprintf("Submitted: %d of %d correct", score, session.Len())
	case Retake:
		session.Retake()
		return "New attempt started"
	}
	return ""
}

// LetterForKey maps a selection key (a-d or 1-4) to its option letter.
func LetterForKey(k string) (string, bool) {
	if len(k) != 1 {
		return "", false
	}
	if k[0] >= '1' && k[0] <= '0'+question.MaxOptions {
		return question.Letter(int(k[0] - '1')), true
	}
	letter := question.NormalizeLetter(k)
	if _, ok := question.LetterIndex(letter); !ok {
		return "", false
	}
	return letter, true
}

// ErrUnknownCommand reports a line Parse does not understand.
var ErrUnknownCommand = errors.New("unknown command")

// Parse reads one line of the plain prompt. A comma or space separated list
// of letters selects each letter in turn; the other commands are check,
// next, prev, goto N, submit, retake, help and quit. Blank lines parse to no
// actions.
func Parse(line string) ([]Action, error) {
	fields := strings.Fields(strings.ToLower(strings.ReplaceAll(line, ",", " ")))
	if len(fields) == 0 {
		return nil, nil
	}
	switch fields[0] {
	case "check":
		return single(Check, fields)
	case "next", "n":
		return single(Next, fields)
	case "prev", "previous", "p":
		return single(Previous, fields)
	case "submit", "s":
		return single(Submit, fields)
	case "retake", "r":
		return single(Retake, fields)
	case "help", "?", "h":
		return single(Help, fields)
	case "quit", "exit", "q":
		return single(Quit, fields)
	case "goto", "g":
		if len(fields) != 2 {
			return nil, fmt.Errorf("goto expects a question number")
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid question number %q", fields[1])
		}
		return []Action{{Kind: Jump, Target: n - 1}}, nil
	}

	actions := make([]Action, 0, len(fields))
	for _, field := range fields {
		letter, ok := LetterForKey(field)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, strings.TrimSpace(line))
		}
		actions = append(actions, Action{Kind: Select, Letter: letter})
	}
	return actions, nil
}

func single(kind Kind, fields []string) ([]Action, error) {
	if len(fields) != 1 {
		return nil, fmt.Errorf("%s takes no arguments", fields[0])
	}
	return []Action{{Kind: kind}}, nil
}
