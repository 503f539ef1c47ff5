package config

import (
	"os"
	"path/filepath"
	"testing"
)

// validConfig returns a normalized config rooted at a fresh repo with a data dir.
func validConfig(t *testing.T) Config {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, DefaultDataDir), 0o755); err != nil {
		t.Fatalf("create data dir: %v", err)
	}
	cfg := Config{Version: 1, Root: root}
	Normalize(&cfg)
	return cfg
}

func writeConfig(t *testing.T, root, contents string) string {
	t.Helper()
	path := ConfigPath(root)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvDataDir, EnvUIMode, EnvLogLevel, EnvLogFormat, EnvLogFile, EnvNoColor} {
		t.Setenv(key, "")
	}
}
