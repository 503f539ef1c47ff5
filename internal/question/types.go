package question

// MaxOptions is the largest number of answer options a question may carry.
const MaxOptions = 4

// MinOptions is the smallest number of answer options a question may carry.
const MinOptions = 2

// Bank is a structured question bank loaded from JSON or YAML.
type Bank struct {
	Version   int        `json:"version" yaml:"version"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Question is a single multiple-choice question. Options are lettered by position,
// so Options[0] is A, Options[1] is B and so on.
type Question struct {
	ID              string   `json:"id" yaml:"id"`
	Prompt          string   `json:"question" yaml:"question"`
	Options         []string `json:"options" yaml:"options"`
	CorrectAnswers  []string `json:"correct_answers" yaml:"correct_answers"`
	MultipleCorrect bool     `json:"multiple_correct" yaml:"multiple_correct,omitempty"`
}

// Letters returns the option letters present on the question, in order.
func (q Question) Letters() []string {
	letters := make([]string, 0, len(q.Options))
	for i := range q.Options {
		letters = append(letters, Letter(i))
	}
	return letters
}

// HasOption reports whether letter names one of the question's options.
func (q Question) HasOption(letter string) bool {
	index, ok := LetterIndex(letter)
	return ok && index < len(q.Options)
}

// IsCorrect reports whether selected matches the correct answers as a set.
func (q Question) IsCorrect(selected []string) bool {
	return SameSet(selected, q.CorrectAnswers)
}

// Letter returns the option letter for a zero-based option index.
func Letter(index int) string {
	return string(rune('A' + index))
}

// LetterIndex returns the zero-based option index for an option letter.
func LetterIndex(letter string) (int, bool) {
	normalized := NormalizeLetter(letter)
	if len(normalized) != 1 {
		return 0, false
	}
	index := int(normalized[0] - 'A')
	if index < 0 || index >= MaxOptions {
		return 0, false
	}
	return index, true
}
