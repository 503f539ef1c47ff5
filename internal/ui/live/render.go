package live

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizdeck/internal/quiz"
)

var (
	colorTitle     = lipgloss.Color("33")
	colorMuted     = lipgloss.Color("242")
	colorCurrent   = lipgloss.Color("33")
	colorCorrect   = lipgloss.Color("42")
	colorIncorrect = lipgloss.Color("196")
	colorAnswered  = lipgloss.Color("214")
	colorSelected  = lipgloss.Color("141")
)

// renderHeader renders the module title and attempt position.
func renderHeader(title string, snap quiz.Snapshot, noColor bool) string {
	line := title
	if line == "" {
		line = "Quiz"
	}
	line += " | Question " + fmtInt(snap.CurrentIndex+1) + " of " + fmtInt(snap.Total) +
		" | Answered: " + fmtInt(snap.Answered)
	return stylizeBold(line, noColor, colorTitle)
}

// renderIndicators renders one numbered cell per question, coloured by status.
func renderIndicators(snap quiz.Snapshot, noColor bool) string {
	cells := make([]string, 0, len(snap.Indicators))
	for _, ind := range snap.Indicators {
		label := fmtInt(ind.Index + 1)
		if noColor {
			cells = append(cells, indicatorMarker(ind.Status, label))
			continue
		}
		cells = append(cells, stylize(" "+label+" ", false, indicatorColor(ind.Status)))
	}
	return strings.Join(cells, " ")
}

func indicatorMarker(status quiz.IndicatorStatus, label string) string {
	switch status {
	case quiz.IndicatorCurrent:
		return "[" + label + "]"
	case quiz.IndicatorCorrect:
		return label + "+"
	case quiz.IndicatorIncorrect:
		return label + "x"
	case quiz.IndicatorAnswered:
		return label + "*"
	default:
		return label
	}
}

func indicatorColor(status quiz.IndicatorStatus) lipgloss.Color {
	switch status {
	case quiz.IndicatorCurrent:
		return colorCurrent
	case quiz.IndicatorCorrect:
		return colorCorrect
	case quiz.IndicatorIncorrect:
		return colorIncorrect
	case quiz.IndicatorAnswered:
		return colorAnswered
	default:
		return colorMuted
	}
}

// renderQuestion renders the prompt and its options with selection and feedback markers.
func renderQuestion(session *quiz.Session, noColor bool) string {
	q := session.Current()
	lines := []string{stylizeBold(q.Prompt, noColor, lipgloss.Color(""))}
	if q.MultipleCorrect {
		lines = append(lines, stylize("Select all that apply", noColor, colorMuted))
	}
	lines = append(lines, "")
	for _, option := range session.Options(session.CurrentIndex()) {
		box := "( )"
		if q.MultipleCorrect {
			box = "[ ]"
		}
		if option.Selected {
			box = box[:1] + "x" + box[2:]
		}
		line := box + " " + option.Letter + ". " + option.Text
		switch {
		case option.Correct:
			line = stylize(line+"  ✓", noColor, colorCorrect)
		case option.Wrong:
			line = stylize(line+"  ✗", noColor, colorIncorrect)
		case option.Selected:
			line = stylize(line, noColor, colorSelected)
		}
		lines = append(lines, line)
	}
	if correct, ok := session.Checked(q.ID); ok && session.Revealed(q.ID) {
		lines = append(lines, "")
		if correct {
			lines = append(lines, stylizeBold("Correct!", noColor, colorCorrect))
		} else {
			lines = append(lines, stylizeBold("Incorrect. Correct answer: "+formatLetters(q.CorrectAnswers), noColor, colorIncorrect))
		}
	}
	hint := "Submit unlocks on the last question; press n for the next question"
	if session.IsLast() {
		hint = "Last question: press s to submit"
	}
	lines = append(lines, "", stylize(hint, noColor, colorMuted))
	return strings.Join(lines, "\n")
}

// renderScore renders the post-submit score line.
func renderScore(snap quiz.Snapshot, noColor bool) string {
	line := "Score: " + fmtInt(snap.Score) + " / " + fmtInt(snap.Total) + " (" + fmtInt(snap.Percentage) + "%)"
	color := colorCorrect
	if snap.Percentage < 50 {
		color = colorIncorrect
	}
	return stylizeBold(line, noColor, color)
}

// renderStatus renders the last status message.
func renderStatus(status string, noColor bool) string {
	if status == "" {
		return ""
	}
	return stylize(status, noColor, colorMuted)
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

func stylizeBold(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(text)
}
