package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shinyvision/phpindex/internal/symbol"
)

func TestUpdateSynchronousAnalysis(t *testing.T) {
	doc := NewDocument("file:///a.php")
	defer doc.Close()

	err := doc.Update(context.Background(), []byte("<?php class Foo {}"), false)
	require.NoError(t, err)

	idx := doc.Index()
	require.NotNil(t, idx.File)
	require.Len(t, idx.File.Children, 1)
	require.Equal(t, symbol.KindClass, idx.File.Children[0].Kind)
}

func TestStoreEvictsClosedDocuments(t *testing.T) {
	s := NewStore(1)
	a := s.RegisterOpen("file:///a.php")
	require.NotNil(t, a)

	s.Close("file:///a.php")
	b := s.Get("file:///b.php")
	require.NotNil(t, b)

	require.Len(t, s.docs, 1)
	require.Contains(t, s.docs, "file:///b.php")
}
