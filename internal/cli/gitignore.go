package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// addGitignoreEntry makes sure the quiz log file is ignored by git. It
// reports whether .gitignore was created or changed.
func addGitignoreEntry(repoRoot, logPath string) (bool, error) {
	entry, err := gitignoreEntry(repoRoot, logPath)
	if err != nil {
		return false, err
	}

	path := filepath.Join(repoRoot, ".gitignore")
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("read .gitignore: %w", err)
	}
	text := string(data)
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == entry {
			return false, nil
		}
	}
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if err := os.WriteFile(path, []byte(text+entry+"\n"), 0o644); err != nil {
		return false, fmt.Errorf("write .gitignore: %w", err)
	}
	return true, nil
}

// gitignoreEntry turns logPath into a slash separated path relative to repoRoot.
func gitignoreEntry(repoRoot, logPath string) (string, error) {
	if strings.TrimSpace(logPath) == "" {
		return "", errors.New("log path is required")
	}
	rel := filepath.Clean(logPath)
	if filepath.IsAbs(rel) {
		var err error
		if rel, err = filepath.Rel(repoRoot, rel); err != nil {
			return "", fmt.Errorf("resolve %q: %w", logPath, err)
		}
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%q is outside the repo root", logPath)
	}
	return filepath.ToSlash(rel), nil
}
