package config

import "path/filepath"

// Config is the optional .quizdeck/config.yml document.
type Config struct {
	Version        int       `yaml:"version" validate:"required,eq=1"`
	DataDir        string    `yaml:"data_dir" validate:"required"`
	Modules        []string  `yaml:"modules" validate:"omitempty,unique,dive,required"`
	SampleFallback *bool     `yaml:"sample_fallback"`
	UI             UIConfig  `yaml:"ui"`
	Log            LogConfig `yaml:"log"`

	// Root is the directory relative paths resolve against. It is never read from YAML.
	Root string `yaml:"-"`
}

// UIConfig selects how quizzes are presented.
type UIConfig struct {
	Mode    string `yaml:"mode" validate:"oneof=auto live plain"`
	NoColor bool   `yaml:"no_color"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	Format string `yaml:"format" validate:"oneof=json pretty"`
	File   string `yaml:"file"`
}

// DataPath resolves the module directory against the config root.
func (cfg Config) DataPath() string {
	return cfg.resolve(cfg.DataDir)
}

// LogPath resolves the log file path, or returns "" when file logging is off.
func (cfg Config) LogPath() string {
	if cfg.Log.File == "" {
		return ""
	}
	return cfg.resolve(cfg.Log.File)
}

// UseSampleFallback reports whether modules without a quiz get the built-in questions.
func (cfg Config) UseSampleFallback() bool {
	return cfg.SampleFallback == nil || *cfg.SampleFallback
}

func (cfg Config) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cfg.Root, path)
}
