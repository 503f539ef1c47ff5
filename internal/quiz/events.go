package quiz

import "time"

// EventType identifies a session state transition for observers.
type EventType string

const (
	// EventStarted marks the first attempt of a new session. Later attempts
	// are announced by EventRetaken.
	EventStarted EventType = "started"
	// EventSelected marks a change to a question's selected answers.
	EventSelected EventType = "selected"
	// EventNavigated marks a move to another question.
	EventNavigated EventType = "navigated"
	// EventChecked marks an explicit answer check.
	EventChecked EventType = "checked"
	// EventSubmitted marks the attempt being scored.
	EventSubmitted EventType = "submitted"
	// EventRetaken marks the attempt being reset.
	EventRetaken EventType = "retaken"
)

// Event describes a single session transition.
type Event struct {
	Type              EventType
	AttemptID         string
	PreviousAttemptID string
	QuestionIndex     int
	QuestionID        string
	Letter            string
	Selection         []string
	Correct           bool
	Score             int
	Total             int
	EmittedAt         time.Time
}

// Observer receives session transitions, for logging or UI refresh.
type Observer interface {
	OnSessionEvent(event Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(event Event)

// OnSessionEvent calls fn(event).
func (fn ObserverFunc) OnSessionEvent(event Event) {
	fn(event)
}
