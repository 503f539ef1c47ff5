package question

import "strings"

// NormalizeLetter trims whitespace and upper-cases an option letter.
func NormalizeLetter(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

// dedupeLetters keeps the first occurrence of each letter, preserving order.
func dedupeLetters(letters []string) []string {
	seen := make(map[string]struct{}, len(letters))
	out := make([]string, 0, len(letters))
	for _, letter := range letters {
		if _, ok := seen[letter]; ok {
			continue
		}
		seen[letter] = struct{}{}
		out = append(out, letter)
	}
	return out
}
