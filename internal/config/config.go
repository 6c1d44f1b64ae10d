// Package config loads a workspace's ".phpindex.toml" configuration
// (spec.md section 6, "External Interfaces" — the workspace
// collaborator this repo now provides a concrete implementation of).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the resolved configuration for one workspace root.
type Config struct {
	// Roots are glob patterns (relative to the workspace root), e.g.
	// "src/**/*.php". They are loaded but not passed to the workspace
	// indexer, which scans every "**/*.php" file under each root.
	Roots []string `toml:"roots"`
	// Exclude lists glob patterns to skip.
	Exclude []string `toml:"exclude"`
	// CacheDir names a directory for the on-disk symbol cache. It is
	// loaded but no command opens a cache from it.
	CacheDir string `toml:"cache_dir"`
}

// Default returns the configuration used when no ".phpindex.toml" is
// present: index everything under the workspace root.
func Default() *Config {
	return &Config{
		Roots:    []string{"**/*.php"},
		CacheDir: ".phpindex-cache",
	}
}

// Load reads "<root>/.phpindex.toml" if present, falling back to
// Default.
func Load(root string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(root, ".phpindex.toml")
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// no config file: use defaults
	case err != nil:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	return cfg, nil
}
