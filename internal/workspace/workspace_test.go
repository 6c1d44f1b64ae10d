package workspace

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRunIndexesDiscoveredFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "src/Foo.php", "<?php class Foo {}")
	writeFile(t, dir, "src/Bar.php", "<?php class Bar {}")
	writeFile(t, dir, "vendor/Skip.php", "<?php class Skip {}")

	idx := &Indexer{Exclude: []string{"vendor/**"}}
	ws, result, err := idx.Run(context.Background(), []string{dir})
	require.NoError(t, err)
	require.Equal(t, 2, result.FilesIndexed)
	require.Equal(t, 0, result.FilesFailed)

	matches := ws.FuzzySearch("Foo", 0.5)
	require.NotEmpty(t, matches)
}

func TestRunWithoutExcludesIndexesEveryFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "src/Ok.php", "<?php class Ok {}")

	idx := &Indexer{}
	_, result, err := idx.Run(context.Background(), []string{dir})
	require.NoError(t, err)
	require.Equal(t, 1, result.FilesIndexed)
}
