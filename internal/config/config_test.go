package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, []string{"**/*.php"}, cfg.Roots)
	require.Equal(t, ".phpindex-cache", cfg.CacheDir)
}

func TestLoadReadsToml(t *testing.T) {
	dir := t.TempDir()
	contents := "roots = [\"src/**/*.php\"]\nexclude = [\"vendor/**\"]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".phpindex.toml"), []byte(contents), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, []string{"src/**/*.php"}, cfg.Roots)
	require.Equal(t, []string{"vendor/**"}, cfg.Exclude)
}
