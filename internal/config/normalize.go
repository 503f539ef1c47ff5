package config

import "strings"

// Defaults applied by Normalize.
const (
	DefaultUIMode    = "auto"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Normalize trims values and fills defaults for omitted settings.
func Normalize(cfg *Config) {
	cfg.DataDir = strings.TrimSpace(cfg.DataDir)
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}
	for i := range cfg.Modules {
		cfg.Modules[i] = strings.TrimSpace(cfg.Modules[i])
	}
	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = DefaultUIMode
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	cfg.Log.File = strings.TrimSpace(cfg.Log.File)
}
