package content

import (
	"regexp"
	"strings"
)

var titlePattern = regexp.MustCompile(`(?m)^#\s+(.+)$`)

// Module is a study module loaded from a markdown file.
type Module struct {
	ID      string
	Title   string
	Path    string
	Content string
}

// ExtractTitle returns the text of the first level-one heading, or
// "Module <id>" when there is none.
func ExtractTitle(markdown, id string) string {
	match := titlePattern.FindStringSubmatch(markdown)
	if match == nil {
		return "Module " + id
	}
	return strings.TrimSpace(match[1])
}
