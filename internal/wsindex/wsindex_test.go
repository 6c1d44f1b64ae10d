package wsindex

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shinyvision/phpindex/internal/symbol"
)

func buildFile() *symbol.Symbol {
	file := symbol.New(symbol.KindFile, "file:///a.php", symbol.Location{})
	class := symbol.New(symbol.KindClass, `App\UserRepository`, symbol.Location{})
	file.AddChild(class)
	method := symbol.New(symbol.KindMethod, "findByEmail", symbol.Location{})
	class.AddChild(method)
	return file
}

func TestIndexFileAndFuzzySearch(t *testing.T) {
	w := New()
	w.IndexFile("file:///a.php", buildFile())

	matches := w.FuzzySearch("findByEmail", 0.5)
	require.NotEmpty(t, matches)
	require.Equal(t, "findByEmail", matches[0].Entry.Symbol.Name)
}

func TestRemoveFileDropsEntries(t *testing.T) {
	w := New()
	w.IndexFile("file:///a.php", buildFile())
	require.NotEmpty(t, w.FileSymbols("file:///a.php"))

	w.RemoveFile("file:///a.php")
	require.Empty(t, w.FileSymbols("file:///a.php"))
	require.Empty(t, w.FuzzySearch("findByEmail", 0.1))
}

func TestReindexingFileReplacesEntries(t *testing.T) {
	w := New()
	w.IndexFile("file:///a.php", buildFile())

	fresh := symbol.New(symbol.KindFile, "file:///a.php", symbol.Location{})
	fresh.AddChild(symbol.New(symbol.KindFunction, "brandNewOne", symbol.Location{}))
	w.IndexFile("file:///a.php", fresh)

	entries := w.FileSymbols("file:///a.php")
	require.Len(t, entries, 1)
	require.Equal(t, "brandNewOne", entries[0].Symbol.Name)
}
