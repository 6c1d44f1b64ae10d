package cache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shinyvision/phpindex/internal/symbol"
)

func TestPutGetRoundTrip(t *testing.T) {
	dir := t.TempDir()
	c, err := Open(filepath.Join(dir, "cache.db"))
	require.NoError(t, err)
	defer c.Close()

	ctx := context.Background()
	rec := symbol.Record{
		File: symbol.New(symbol.KindFile, "file:///a.php", symbol.Location{URI: "file:///a.php"}),
		Refs: []symbol.Reference{{Kind: symbol.KindClass, Name: "Foo\\Bar"}},
	}

	require.NoError(t, c.Put(ctx, "file:///a.php", rec))

	got, ok, err := c.Get(ctx, "file:///a.php")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, rec.File.Name, got.File.Name)
	require.Equal(t, rec.Refs, got.Refs)

	_, ok, err = c.Get(ctx, "file:///missing.php")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPutOverwritesPriorRecord(t *testing.T) {
	dir := t.TempDir()
	c, err := Open(filepath.Join(dir, "cache.db"))
	require.NoError(t, err)
	defer c.Close()

	ctx := context.Background()
	uri := "file:///a.php"
	first := symbol.Record{File: symbol.New(symbol.KindFile, uri, symbol.Location{})}
	second := symbol.Record{File: symbol.New(symbol.KindFile, uri, symbol.Location{}), Refs: []symbol.Reference{{Kind: symbol.KindFunction, Name: "f"}}}

	require.NoError(t, c.Put(ctx, uri, first))
	require.NoError(t, c.Put(ctx, uri, second))

	got, ok, err := c.Get(ctx, uri)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got.Refs, 1)
}

func TestDeleteRemovesRecord(t *testing.T) {
	dir := t.TempDir()
	c, err := Open(filepath.Join(dir, "cache.db"))
	require.NoError(t, err)
	defer c.Close()

	ctx := context.Background()
	uri := "file:///a.php"
	require.NoError(t, c.Put(ctx, uri, symbol.Record{File: symbol.New(symbol.KindFile, uri, symbol.Location{})}))
	require.NoError(t, c.Delete(ctx, uri))

	_, ok, err := c.Get(ctx, uri)
	require.NoError(t, err)
	require.False(t, ok)
}
