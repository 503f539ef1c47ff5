package logging

import (
	"github.com/rs/zerolog"

	"quizdeck/internal/quiz"
)

// SessionObserver writes quiz session transitions as structured records.
type SessionObserver struct {
	log zerolog.Logger
}

// NewSessionObserver scopes log to the quiz_session component.
func NewSessionObserver(log zerolog.Logger) *SessionObserver {
	return &SessionObserver{log: log.With().Str("component", "quiz_session").Logger()}
}

// OnSessionEvent implements quiz.Observer.
func (o *SessionObserver) OnSessionEvent(event quiz.Event) {
	var entry *zerolog.Event
	switch event.Type {
	case quiz.EventSelected, quiz.EventNavigated:
		entry = o.log.Debug()
	default:
		entry = o.log.Info()
	}
	entry = entry.
		Str("attempt_id", event.AttemptID).
		Str("event", string(event.Type)).
		Time("emitted_at", event.EmittedAt)

	switch event.Type {
	case quiz.EventSelected:
		entry = entry.
			Int("question_index", event.QuestionIndex).
			Str("question_id", event.QuestionID).
			Str("letter", event.Letter).
			Strs("selection", event.Selection)
	case quiz.EventNavigated:
		entry = entry.
			Int("question_index", event.QuestionIndex).
			Str("question_id", event.QuestionID)
	case quiz.EventChecked:
		entry = entry.
			Int("question_index", event.QuestionIndex).
			Str("question_id", event.QuestionID).
			Strs("selection", event.Selection).
			Bool("correct", event.Correct)
	case quiz.EventSubmitted:
		entry = entry.
			Int("score", event.Score).
			Int("total", event.Total).
			Int("percentage", quiz.Percentage(event.Score, event.Total))
	case quiz.EventRetaken:
		entry = entry.Str("previous_attempt_id", event.PreviousAttemptID)
	case quiz.EventStarted:
		entry = entry.Int("total", event.Total)
	}
	entry.Msg("quiz session " + string(event.Type))
}
