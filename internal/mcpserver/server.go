// Package mcpserver exposes the extraction pass and workspace index as
// MCP tools, grounded on standardbeagle-lci's internal/mcp server
// (mcp.NewServer + AddTool wiring, stdio transport).
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shinyvision/phpindex/internal/lspintegration"
	"github.com/shinyvision/phpindex/internal/utils"
	"github.com/shinyvision/phpindex/internal/workspace"
	"github.com/shinyvision/phpindex/internal/wsindex"
)

// Server wraps an mcp.Server exposing phpindex's extraction pass and
// workspace index as tools.
type Server struct {
	server *mcp.Server
	ws     *wsindex.Workspace
	root   string
}

// NewServer builds a Server rooted at root, without indexing yet. The
// index_workspace tool fills the index that search_symbols queries;
// search_symbols does not index on its own, so before the first
// index_workspace call it finds nothing.
func NewServer(root string) *Server {
	s := &Server{
		root: root,
		ws:   wsindex.New(),
	}
	s.server = mcp.NewServer(&mcp.Implementation{
		Name:    "phpindex-mcp-server",
		Version: "0.1.0",
	}, nil)
	s.registerTools()
	return s
}

// Run serves the workspace over stdio, blocking until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerTools() {
	s.server.AddTool(&mcp.Tool{
		Name:        "index_workspace",
		Description: "Re-index every PHP file under the workspace root and report how many files succeeded or failed.",
		InputSchema: &jsonschema.Schema{Type: "object"},
	}, s.handleIndexWorkspace)

	s.server.AddTool(&mcp.Tool{
		Name:        "search_symbols",
		Description: "Fuzzy-search the workspace symbol index by acronym or suffix key (e.g. \"ur\" matches UserRepository).",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"query": {Type: "string", Description: "Search text"},
			},
			Required: []string{"query"},
		},
	}, s.handleSearchSymbols)

	s.server.AddTool(&mcp.Tool{
		Name:        "document_symbols",
		Description: "Run the extraction pass on a single PHP file's contents and return its symbol tree.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"uri":     {Type: "string", Description: "file:// URI to attribute locations to"},
				"content": {Type: "string", Description: "PHP source text"},
			},
			Required: []string{"uri", "content"},
		},
	}, s.handleDocumentSymbols)
}

func (s *Server) handleIndexWorkspace(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idx := &workspace.Indexer{Exclude: []string{"vendor/**"}}
	ws, result, err := idx.Run(ctx, []string{s.root})
	if err != nil {
		return errorResult(err), nil
	}
	s.ws = ws
	return jsonResult(map[string]any{
		"files_indexed": result.FilesIndexed,
		"files_failed":  result.FilesFailed,
	}), nil
}

type searchSymbolsParams struct {
	Query string `json:"query"`
}

func (s *Server) handleSearchSymbols(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params searchSymbolsParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return errorResult(fmt.Errorf("invalid parameters: %w", err)), nil
	}
	if params.Query == "" {
		return errorResult(fmt.Errorf("query must not be empty")), nil
	}

	matches := s.ws.FuzzySearch(params.Query, 0.5)
	out := make([]map[string]any, 0, len(matches))
	for _, m := range matches {
		out = append(out, map[string]any{
			"name":  m.Entry.Symbol.Name,
			"kind":  m.Entry.Symbol.Kind.String(),
			"uri":   m.Entry.URI,
			"score": m.Score,
		})
	}
	return jsonResult(map[string]any{"matches": out}), nil
}

type documentSymbolsParams struct {
	URI     string `json:"uri"`
	Content string `json:"content"`
}

func (s *Server) handleDocumentSymbols(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params documentSymbolsParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return errorResult(fmt.Errorf("invalid parameters: %w", err)), nil
	}

	uri := params.URI
	if uri == "" {
		uri = utils.PathToURI("stdin.php")
	}
	idx, err := lspintegration.ParseOnDemand(ctx, uri, []byte(params.Content))
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(idx.File), nil
}

func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}
}

func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
