package quiz

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"quizdeck/internal/question"
)

// ErrNoQuestions indicates a session was requested for an empty question list.
var ErrNoQuestions = errors.New("quiz: no questions")

// DuplicateIDError reports a question id that appears more than once.
type DuplicateIDError struct {
	ID string
}

// Error returns a readable message for the duplicate id.
func (err *DuplicateIDError) Error() string {
	return fmt.Sprintf("quiz: duplicate question id %q", err.ID)
}

// State is the lifecycle state of a session.
type State int

const (
	// StateInProgress accepts answers, checks and navigation.
	StateInProgress State = iota
	// StateCompleted holds a fixed score until the next retake.
	StateCompleted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateInProgress:
		return "in_progress"
	case StateCompleted:
		return "completed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Session is the state of one quiz attempt over a fixed question list. It is
// not safe for concurrent use; the owning view drives it one action at a time.
type Session struct {
	attemptID string
	questions []question.Question
	positions map[string]int
	current   int
	answers   map[string][]string
	checked   map[string]bool
	revealed  map[string]bool
	submitted bool
	score     int

	observer Observer
	newID    func() string
	now      func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithObserver registers an observer for session transitions.
func WithObserver(observer Observer) Option {
	return func(s *Session) { s.observer = observer }
}

// WithAttemptIDs overrides attempt id generation.
func WithAttemptIDs(fn func() string) Option {
	return func(s *Session) { s.newID = fn }
}

// WithClock overrides the event timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New starts a session over questions. The list is copied and never changes
// for the lifetime of the session.
func New(questions []question.Question, opts ...Option) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	owned := slices.Clone(questions)
	positions := make(map[string]int, len(owned))
	for i := range owned {
		id := owned[i].ID
		if _, exists := positions[id]; exists {
			return nil, &DuplicateIDError{ID: id}
		}
		positions[id] = i
		owned[i].MultipleCorrect = len(owned[i].CorrectAnswers) > 1
	}
	s := &Session{
		questions: owned,
		positions: positions,
		newID:     uuid.NewString,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reset()
	s.emit(Event{Type: EventStarted})
	return s, nil
}

// AttemptID identifies the current attempt; it changes on every retake.
func (s *Session) AttemptID() string {
	return s.attemptID
}

// Len returns the number of questions.
func (s *Session) Len() int {
	return len(s.questions)
}

// Question returns the question at index.
func (s *Session) Question(index int) (question.Question, bool) {
	if index < 0 || index >= len(s.questions) {
		return question.Question{}, false
	}
	return s.questions[index], true
}

// CurrentIndex returns the zero-based index of the current question.
func (s *Session) CurrentIndex() int {
	return s.current
}

// Current returns the current question.
func (s *Session) Current() question.Question {
	return s.questions[s.current]
}

// State returns the lifecycle state.
func (s *Session) State() State {
	if s.submitted {
		return StateCompleted
	}
	return StateInProgress
}

// Submitted reports whether the attempt has been scored.
func (s *Session) Submitted() bool {
	return s.submitted
}

// Score returns the score and whether it is valid, which it is only after Submit.
func (s *Session) Score() (int, bool) {
	if !s.submitted {
		return 0, false
	}
	return s.score, true
}

// Answer returns the letters selected for a question, in selection order.
func (s *Session) Answer(id string) []string {
	return slices.Clone(s.answers[id])
}

// Checked returns the stored check result and whether a check has happened.
func (s *Session) Checked(id string) (correct bool, ok bool) {
	correct, ok = s.checked[id]
	return correct, ok
}

// Revealed reports whether feedback has been shown for a question.
func (s *Session) Revealed(id string) bool {
	return s.revealed[id]
}

// AnsweredCount returns the number of questions with a non-empty selection.
func (s *Session) AnsweredCount() int {
	return len(s.answers)
}

// SelectAnswer records a selection of letter for a question. Single answer
// questions replace the selection; multiple answer questions toggle the letter.
// Unknown ids, letters outside the question's options and calls on a
// completed attempt are ignored and report false.
func (s *Session) SelectAnswer(id, letter string) bool {
	if s.submitted {
		return false
	}
	position, ok := s.positions[id]
	if !ok {
		return false
	}
	q := s.questions[position]
	letter = question.NormalizeLetter(letter)
	if !q.HasOption(letter) {
		return false
	}

	var selection []string
	if q.MultipleCorrect {
		selection = toggle(s.answers[id], letter)
	} else {
		selection = []string{letter}
	}
	if len(selection) == 0 {
		delete(s.answers, id)
	} else {
		s.answers[id] = selection
	}
	s.emit(Event{
		Type:          EventSelected,
		QuestionIndex: position,
		QuestionID:    id,
		Letter:        letter,
		Selection:     slices.Clone(selection),
	})
	return true
}

// Navigate moves to target when it is a valid index. Out of range targets
// leave the current index unchanged and report false.
func (s *Session) Navigate(target int) bool {
	if target < 0 || target >= len(s.questions) {
		return false
	}
	if target == s.current {
		return true
	}
	s.current = target
	s.emit(Event{
		Type:          EventNavigated,
		QuestionIndex: target,
		QuestionID:    s.questions[target].ID,
	})
	return true
}

// Next moves to the following question if there is one.
func (s *Session) Next() bool {
	return s.Navigate(s.current + 1)
}

// Previous moves to the preceding question if there is one.
func (s *Session) Previous() bool {
	return s.Navigate(s.current - 1)
}

// IsLast reports whether the current question is the final one.
func (s *Session) IsLast() bool {
	return s.current == len(s.questions)-1
}

// CheckAnswer compares the current selection for a question with its correct
// answers, stores the result and marks the feedback revealed. Calling it again
// after the selection changes overwrites the stored result.
func (s *Session) CheckAnswer(id string) bool {
	if s.submitted {
		return s.checked[id]
	}
	position, ok := s.positions[id]
	if !ok {
		return false
	}
	correct := s.questions[position].IsCorrect(s.answers[id])
	s.checked[id] = correct
	s.revealed[id] = true
	s.emit(Event{
		Type:          EventChecked,
		QuestionIndex: position,
		QuestionID:    id,
		Selection:     slices.Clone(s.answers[id]),
		Correct:       correct,
	})
	return correct
}

// CheckCurrent checks the current question.
func (s *Session) CheckCurrent() bool {
	return s.CheckAnswer(s.questions[s.current].ID)
}

// CanCheck reports whether a question has a selection to check.
func (s *Session) CanCheck(id string) bool {
	return !s.submitted && len(s.answers[id]) > 0
}

// CanSubmit reports whether at least one question has been answered.
func (s *Session) CanSubmit() bool {
	return !s.submitted && len(s.answers) > 0
}

// Submit scores every question from its current selection, ignoring stored
// check results, and completes the attempt.
func (s *Session) Submit() int {
	score := 0
	for _, q := range s.questions {
		if q.IsCorrect(s.answers[q.ID]) {
			score++
		}
	}
	s.score = score
	s.submitted = true
	s.emit(Event{Type: EventSubmitted, Score: score, Total: len(s.questions)})
	return score
}

// Retake clears every answer and result and starts a new attempt over the
// same questions.
func (s *Session) Retake() {
	previous := s.attemptID
	s.reset()
	s.emit(Event{Type: EventRetaken, PreviousAttemptID: previous})
}

func (s *Session) reset() {
	s.attemptID = s.newID()
	s.current = 0
	s.answers = map[string][]string{}
	s.checked = map[string]bool{}
	s.revealed = map[string]bool{}
	s.submitted = false
	s.score = 0
}

func (s *Session) emit(event Event) {
	if s.observer == nil {
		return
	}
	event.AttemptID = s.attemptID
	if event.Total == 0 {
		event.Total = len(s.questions)
	}
	event.EmittedAt = s.now()
	s.observer.OnSessionEvent(event)
}

// toggle adds letter to selection if absent and removes it otherwise.
func toggle(selection []string, letter string) []string {
	if index := slices.Index(selection, letter); index >= 0 {
		return slices.Delete(slices.Clone(selection), index, index+1)
	}
	return append(slices.Clone(selection), letter)
}
