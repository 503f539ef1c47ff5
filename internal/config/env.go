package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Environment variables that override config file values.
const (
	EnvDataDir   = "QUIZDECK_DATA_DIR"
	EnvUIMode    = "QUIZDECK_UI_MODE"
	EnvLogLevel  = "QUIZDECK_LOG_LEVEL"
	EnvLogFormat = "QUIZDECK_LOG_FORMAT"
	EnvLogFile   = "QUIZDECK_LOG_FILE"
	EnvNoColor   = "NO_COLOR"
)

// ApplyEnv overlays environment variables onto cfg. Values in a .env file
// under cfg.Root are used when the process environment does not set them.
func ApplyEnv(cfg *Config) {
	env := environment{dotenv: readDotenv(cfg.Root)}

	cfg.DataDir = env.get(EnvDataDir, cfg.DataDir)
	cfg.UI.Mode = env.get(EnvUIMode, cfg.UI.Mode)
	cfg.Log.Level = env.get(EnvLogLevel, cfg.Log.Level)
	cfg.Log.Format = env.get(EnvLogFormat, cfg.Log.Format)
	cfg.Log.File = env.get(EnvLogFile, cfg.Log.File)
	if env.get(EnvNoColor, "") != "" {
		cfg.UI.NoColor = true
	}
}

type environment struct {
	dotenv map[string]string
}

func (e environment) get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	if v := e.dotenv[key]; v != "" {
		return v
	}
	return fallback
}

// readDotenv loads root/.env without touching the process environment.
// A missing or unreadable file yields no values.
func readDotenv(root string) map[string]string {
	if root == "" {
		return nil
	}
	values, err := godotenv.Read(filepath.Join(root, ".env"))
	if err != nil {
		return nil
	}
	return values
}

