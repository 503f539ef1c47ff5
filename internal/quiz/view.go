package quiz

import (
	"slices"

	"quizdeck/internal/question"
)

// IndicatorStatus is the display bucket of a question in the progress strip.
type IndicatorStatus string

const (
	IndicatorCurrent    IndicatorStatus = "current"
	IndicatorCorrect    IndicatorStatus = "correct"
	IndicatorIncorrect  IndicatorStatus = "incorrect"
	IndicatorAnswered   IndicatorStatus = "answered"
	IndicatorUnanswered IndicatorStatus = "unanswered"
)

// Indicator is the read-only per-question projection used by views.
type Indicator struct {
	Index      int
	QuestionID string
	Current    bool
	Answered   bool
	Checked    bool
	Correct    bool
	Status     IndicatorStatus
}

// Snapshot is the read-only projection of a session used by views.
type Snapshot struct {
	AttemptID    string
	State        State
	Total        int
	CurrentIndex int
	Answered     int
	CanCheck     bool
	CanSubmit    bool
	Indicators   []Indicator
	Submitted    bool
	Score        int
	Percentage   int
}

// OptionView describes one option of a question for display.
type OptionView struct {
	Letter   string
	Text     string
	Selected bool
	// Correct and Wrong are only set once feedback is revealed.
	Correct bool
	Wrong   bool
}

// Result is the post-submit outcome of a single question.
type Result struct {
	Index    int
	Question question.Question
	Selected []string
	Correct  bool
}

// Snapshot projects the session state for views.
func (s *Session) Snapshot() Snapshot {
	current := s.questions[s.current]
	snap := Snapshot{
		AttemptID:    s.attemptID,
		State:        s.State(),
		Total:        len(s.questions),
		CurrentIndex: s.current,
		Answered:     s.AnsweredCount(),
		CanCheck:     s.CanCheck(current.ID),
		CanSubmit:    s.CanSubmit(),
		Indicators:   make([]Indicator, 0, len(s.questions)),
		Submitted:    s.submitted,
	}
	for i, q := range s.questions {
		snap.Indicators = append(snap.Indicators, s.indicator(i, q))
	}
	if s.submitted {
		snap.Score = s.score
		snap.Percentage = Percentage(s.score, len(s.questions))
	}
	return snap
}

func (s *Session) indicator(index int, q question.Question) Indicator {
	correct, checked := s.checked[q.ID]
	ind := Indicator{
		Index:      index,
		QuestionID: q.ID,
		Current:    index == s.current,
		Answered:   len(s.answers[q.ID]) > 0,
		Checked:    checked,
		Correct:    checked && correct,
	}
	switch {
	case ind.Current:
		ind.Status = IndicatorCurrent
	case ind.Checked && ind.Correct:
		ind.Status = IndicatorCorrect
	case ind.Checked:
		ind.Status = IndicatorIncorrect
	case ind.Answered:
		ind.Status = IndicatorAnswered
	default:
		ind.Status = IndicatorUnanswered
	}
	return ind
}

// Options describes the options of the question at index, with feedback
// markers when the question's feedback has been revealed.
func (s *Session) Options(index int) []OptionView {
	q, ok := s.Question(index)
	if !ok {
		return nil
	}
	selected := s.answers[q.ID]
	revealed := s.revealed[q.ID]
	views := make([]OptionView, 0, len(q.Options))
	for i, text := range q.Options {
		letter := question.Letter(i)
		view := OptionView{
			Letter:   letter,
			Text:     text,
			Selected: slices.Contains(selected, letter),
		}
		if revealed {
			view.Correct = slices.Contains(q.CorrectAnswers, letter)
			view.Wrong = view.Selected && !view.Correct
		}
		views = append(views, view)
	}
	return views
}

// Results computes the per-question outcome from the current selections.
func (s *Session) Results() []Result {
	results := make([]Result, 0, len(s.questions))
	for i, q := range s.questions {
		selected := slices.Clone(s.answers[q.ID])
		results = append(results, Result{
			Index:    i,
			Question: q,
			Selected: selected,
			Correct:  q.IsCorrect(selected),
		})
	}
	return results
}

// Percentage returns score as a whole percentage of total, rounding halves up.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return (score*200 + total) / (2 * total)
}
