package mcpserver

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

func TestHandleDocumentSymbols(t *testing.T) {
	s := NewServer(t.TempDir())

	args, err := json.Marshal(documentSymbolsParams{
		URI:     "file:///a.php",
		Content: "<?php class Foo {}",
	})
	require.NoError(t, err)

	result, err := s.handleDocumentSymbols(context.Background(), &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{Arguments: args},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)
}

func TestHandleSearchSymbolsRejectsEmptyQuery(t *testing.T) {
	s := NewServer(t.TempDir())

	args, err := json.Marshal(searchSymbolsParams{Query: ""})
	require.NoError(t, err)

	result, err := s.handleSearchSymbols(context.Background(), &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{Arguments: args},
	})
	require.NoError(t, err)
	require.True(t, result.IsError)
}

func TestHandleIndexWorkspace(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Foo.php"), []byte("<?php class Foo {}"), 0o644))

	s := NewServer(dir)
	result, err := s.handleIndexWorkspace(context.Background(), &mcp.CallToolRequest{})
	require.NoError(t, err)
	require.False(t, result.IsError)
}
