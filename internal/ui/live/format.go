package live

import (
	"strconv"
	"strings"
)

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// formatQuestionText collapses whitespace and truncates text to limit runes.
func formatQuestionText(text string, limit int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	runes := []rune(normalized)
	if limit <= 3 || len(runes) <= limit {
		return normalized
	}
	return string(runes[:limit-3]) + "..."
}

// formatLetters renders a selection, or a dash when it is empty.
func formatLetters(letters []string) string {
	if len(letters) == 0 {
		return "-"
	}
	return strings.Join(letters, ", ")
}
