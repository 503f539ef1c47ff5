package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"quizdeck/internal/config"
	"quizdeck/internal/content"
)

// workspace is the resolved config plus the module catalog it describes.
type workspace struct {
	cfg        config.Config
	configPath string
	catalog    content.Catalog
}

// openWorkspace loads the config at configPath, or discovers it from the
// working directory, and builds the catalog over its data directory.
func openWorkspace(configPath string) (workspace, error) {
	explicit := strings.TrimSpace(configPath)
	if explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return workspace{}, fmt.Errorf("resolve config path: %w", err)
		}
		explicit = abs
	}
	cfg, path, err := config.Resolve(explicit, "")
	if err != nil {
		return workspace{}, err
	}
	return workspace{
		cfg:        cfg,
		configPath: path,
		catalog: content.Catalog{
			Dir:            cfg.DataPath(),
			IDs:            cfg.Modules,
			SampleFallback: cfg.UseSampleFallback(),
		},
	}, nil
}
