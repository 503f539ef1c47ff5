package config

import (
	"errors"
	"fmt"
	"os"
)

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, err
	}
	cfg.Root = RepoRootFromConfigPath(path)
	return finish(cfg)
}

// Resolve loads the config at explicitPath, or the nearest one above startDir.
// When no config file exists the defaults rooted at startDir are used and the
// returned path is empty.
func Resolve(explicitPath, startDir string) (Config, string, error) {
	if explicitPath != "" {
		cfg, err := Load(explicitPath)
		return cfg, explicitPath, err
	}
	path, err := FindConfigPath(startDir)
	if err == nil {
		cfg, err := Load(path)
		return cfg, path, err
	}
	if !errors.Is(err, ErrConfigNotFound) {
		return Config{}, "", err
	}
	root, err := absDir(startDir)
	if err != nil {
		return Config{}, "", err
	}
	cfg, err := finish(Config{Version: 1, Root: root})
	return cfg, "", err
}

func finish(cfg Config) (Config, error) {
	ApplyEnv(&cfg)
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
