package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"quizdeck/internal/config"
)

const quizModule = `# Signals

Reading material.

---
### Question 1
What is X?
A. foo
B. bar
correct: A

### Question 2
Pick the vowels
A. a
B. b
C. e
correct: A, C
---
`

// writeWorkspace creates a repo with a config, a quiz module and a reading-only module.
func writeWorkspace(t *testing.T, configBody string) (root, configPath string) {
	t.Helper()
	for _, key := range []string{config.EnvDataDir, config.EnvUIMode, config.EnvLogLevel, config.EnvLogFormat, config.EnvLogFile, config.EnvNoColor} {
		t.Setenv(key, "")
	}
	root = t.TempDir()
	writeFile(t, filepath.Join(root, "data", "1.md"), quizModule)
	writeFile(t, filepath.Join(root, "data", "2.md"), "# Reading Only\n\nNo quiz here.\n")
	configPath = config.ConfigPath(root)
	writeFile(t, configPath, configBody)
	return root, configPath
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func runCLI(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Run(args, &out, &errOut)
	return out.String(), errOut.String(), code
}
