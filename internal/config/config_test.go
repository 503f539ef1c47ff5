package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestParseConfigRejectsUnknownFields verifies strict decoding.
func TestParseConfigRejectsUnknownFields(t *testing.T) {
	_, err := ParseConfig([]byte("version: 1\nthemes: dark\n"))
	if err == nil || !strings.Contains(err.Error(), "themes") {
		t.Fatalf("expected unknown field error, got %v", err)
	}
}

// TestParseConfigRejectsMultipleDocuments verifies single-document configs.
func TestParseConfigRejectsMultipleDocuments(t *testing.T) {
	_, err := ParseConfig([]byte("version: 1\n---\nversion: 1\n"))
	if err == nil || !strings.Contains(err.Error(), "multiple YAML documents") {
		t.Fatalf("expected multiple documents error, got %v", err)
	}
}

// TestLoadAppliesDefaults verifies omitted settings receive defaults.
func TestLoadAppliesDefaults(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "data"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := writeConfig(t, root, "version: 1\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Root != root {
		t.Fatalf("expected root %q, got %q", root, cfg.Root)
	}
	if cfg.DataPath() != filepath.Join(root, "data") {
		t.Fatalf("unexpected data path %q", cfg.DataPath())
	}
	if cfg.UI.Mode != "auto" || cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if !cfg.UseSampleFallback() {
		t.Fatalf("expected sample fallback enabled by default")
	}
	if cfg.LogPath() != "" {
		t.Fatalf("expected file logging off, got %q", cfg.LogPath())
	}
}

// TestLoadReadsSettings verifies explicit settings survive normalization.
func TestLoadReadsSettings(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "modules"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := writeConfig(t, root, `version: 1
data_dir: modules
modules: ["2", "1"]
sample_fallback: false
ui:
  mode: Plain
  no_color: true
log:
  level: DEBUG
  format: pretty
  file: logs/quiz.log
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UI.Mode != "plain" || !cfg.UI.NoColor {
		t.Fatalf("unexpected ui %+v", cfg.UI)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "pretty" {
		t.Fatalf("unexpected log %+v", cfg.Log)
	}
	if cfg.LogPath() != filepath.Join(root, "logs", "quiz.log") {
		t.Fatalf("unexpected log path %q", cfg.LogPath())
	}
	if cfg.UseSampleFallback() {
		t.Fatalf("expected sample fallback disabled")
	}
	if len(cfg.Modules) != 2 || cfg.Modules[0] != "2" {
		t.Fatalf("unexpected modules %v", cfg.Modules)
	}
}

// TestLoadEnvOverrides verifies environment variables win over the file.
func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "other"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := writeConfig(t, root, "version: 1\nui:\n  mode: live\n")
	t.Setenv(EnvUIMode, "plain")
	t.Setenv(EnvDataDir, "other")
	t.Setenv(EnvNoColor, "1")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UI.Mode != "plain" || !cfg.UI.NoColor {
		t.Fatalf("expected env overrides, got %+v", cfg.UI)
	}
	if cfg.DataDir != "other" {
		t.Fatalf("expected data dir override, got %q", cfg.DataDir)
	}
}

// TestLoadDotenvOverrides verifies .env values apply without an exported variable.
func TestLoadDotenvOverrides(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "data"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, ".env"), []byte("QUIZDECK_LOG_LEVEL=warn\nQUIZDECK_LOG_FORMAT=pretty\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	path := writeConfig(t, root, "version: 1\n")
	t.Setenv(EnvLogFormat, "json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("expected .env level, got %q", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Fatalf("expected process env to win, got %q", cfg.Log.Format)
	}
}

// TestFindConfigPathWalksParents verifies upward discovery.
func TestFindConfigPathWalksParents(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "version: 1\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	found, err := FindConfigPath(nested)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found != path {
		t.Fatalf("expected %q, got %q", path, found)
	}
	if RepoRootFromConfigPath(found) != root {
		t.Fatalf("unexpected root %q", RepoRootFromConfigPath(found))
	}
}

// TestFindConfigPathMissingFile verifies a bare config dir is reported.
func TestFindConfigPathMissingFile(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(ConfigDir(root), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	_, err := FindConfigPath(root)
	if err == nil || !strings.Contains(err.Error(), "is missing") {
		t.Fatalf("expected missing config error, got %v", err)
	}
	if errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("expected a hard error, not ErrConfigNotFound")
	}
}

// TestResolveFallsBackToDefaults verifies defaults when no config exists.
func TestResolveFallsBackToDefaults(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "data"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	cfg, path, err := Resolve("", root)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if path != "" {
		t.Fatalf("expected no config path, got %q", path)
	}
	if cfg.DataPath() != filepath.Join(root, "data") {
		t.Fatalf("unexpected data path %q", cfg.DataPath())
	}
}

// TestScaffoldWritesLoadableConfig verifies init output loads cleanly.
func TestScaffoldWritesLoadableConfig(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()

	path, err := Scaffold(root)
	if err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load scaffold: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.DataPath(), "1.md")); err != nil {
		t.Fatalf("expected example module: %v", err)
	}
	if _, err := Scaffold(root); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected existing config error, got %v", err)
	}
}
