package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1
data_dir: "data"
sample_fallback: true

ui:
  mode: auto
  no_color: false

log:
  level: info
  format: json
  file: ".quizdeck/quizdeck.log"
`

const exampleModule = `# Getting Started

Study material goes here. The quiz lives between the two separator lines.

---
### Question 1
Which file holds the quizdeck settings?
A. .quizdeck/config.yml
B. data/config.md
C. quiz.json
correct: A

### Question 2
Which answers are valid letters? (Select all that apply)
A. A
B. B
C. E
correct: A, B
---
`

// Scaffold writes a default config and, when the data directory does not
// exist yet, an example module. It refuses to overwrite an existing config.
func Scaffold(root string) (string, error) {
	if root == "" {
		return "", fmt.Errorf("repo root is required")
	}
	configPath := ConfigPath(root)
	if info, err := os.Stat(configPath); err == nil {
		if info.IsDir() {
			return "", fmt.Errorf("config path %q is a directory", configPath)
		}
		return "", fmt.Errorf("config file already exists at %q", configPath)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(ConfigDir(root), 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}

	dataDir := filepath.Join(root, DefaultDataDir)
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return "", fmt.Errorf("create data dir: %w", err)
		}
		if err := os.WriteFile(filepath.Join(dataDir, "1.md"), []byte(exampleModule), 0o644); err != nil {
			return "", fmt.Errorf("write example module: %w", err)
		}
	} else if err != nil {
		return "", fmt.Errorf("stat data dir: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return "", fmt.Errorf("write config file: %w", err)
	}
	return configPath, nil
}
