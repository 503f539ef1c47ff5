package live

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"quizdeck/internal/quiz"
)

// tableStyles returns table styles for the results view.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Header = lipgloss.NewStyle().Padding(0, 1)
		styles.Cell = lipgloss.NewStyle().Padding(0, 1)
		styles.Selected = lipgloss.NewStyle()
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252")).Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	return styles
}

// columnsForWidth sizes the results columns, giving spare width to the question text.
func columnsForWidth(width int) []table.Column {
	const fixed = 4 + 10 + 10 + 9 + 10
	questionWidth := 40
	if width > fixed+questionWidth {
		questionWidth = width - fixed
	}
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Question", Width: questionWidth},
		{Title: "Yours", Width: 10},
		{Title: "Correct", Width: 10},
		{Title: "Result", Width: 9},
	}
}

// rowsForResults converts submitted results into table rows.
func rowsForResults(results []quiz.Result, questionWidth int) []table.Row {
	rows := make([]table.Row, 0, len(results))
	for _, result := range results {
		outcome := "wrong"
		if result.Correct {
			outcome = "correct"
		}
		rows = append(rows, table.Row{
			fmtInt(result.Index + 1),
			formatQuestionText(result.Question.Prompt, questionWidth),
			formatLetters(result.Selected),
			formatLetters(result.Question.CorrectAnswers),
			outcome,
		})
	}
	return rows
}
