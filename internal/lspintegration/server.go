// Package lspintegration exposes the extraction pass and workspace
// index over the language server protocol, grounded on the teacher's
// internal/server package: the same protocol.Handler wiring, trimmed
// to the two read-only symbol queries this indexer's core supports.
package lspintegration

import (
	"context"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	glspserver "github.com/tliron/glsp/server"

	"github.com/shinyvision/phpindex/internal/docstore"
	"github.com/shinyvision/phpindex/internal/phpast"
	"github.com/shinyvision/phpindex/internal/transform"
	"github.com/shinyvision/phpindex/internal/utils"
	"github.com/shinyvision/phpindex/internal/workspace"
	"github.com/shinyvision/phpindex/internal/wsindex"
)

const lsName = "phpindex"

var version = "0.1.0"

var logger = commonlog.GetLoggerf("phpindex.lsp")

// Server is the minimal language server front-end onto the extraction
// pass and workspace index.
type Server struct {
	docs *docstore.Store
	ws   *wsindex.Workspace
	root string
	h    protocol.Handler
}

// NewServer creates an unstarted Server.
func NewServer() *Server {
	s := &Server{
		docs: docstore.NewStore(64),
		ws:   wsindex.New(),
	}
	s.h = protocol.Handler{
		Initialize:                 s.initialize,
		Initialized:                s.initialized,
		Shutdown:                   s.shutdown,
		SetTrace:                   s.setTrace,
		TextDocumentDidOpen:        s.didOpen,
		TextDocumentDidChange:      s.didChange,
		TextDocumentDidClose:       s.didClose,
		TextDocumentDocumentSymbol: s.documentSymbol,
		WorkspaceSymbol:            s.workspaceSymbol,
	}
	return s
}

// Run starts the server on stdio, blocking until it exits.
func (s *Server) Run() error {
	server := glspserver.NewServer(&s.h, lsName, false)
	return server.RunStdio()
}

func (s *Server) initialize(_ *glsp.Context, params *protocol.InitializeParams) (any, error) {
	caps := s.h.CreateServerCapabilities()
	openClose := true
	change := protocol.TextDocumentSyncKindFull
	caps.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &openClose,
		Change:    &change,
	}
	caps.DocumentSymbolProvider = true
	caps.WorkspaceSymbolProvider = true

	if params.RootURI != nil {
		s.root = utils.UriToPath(*params.RootURI)
	} else if len(params.WorkspaceFolders) > 0 {
		s.root = utils.UriToPath(params.WorkspaceFolders[0].URI)
	} else {
		s.root = "."
	}

	go s.indexWorkspace()

	return protocol.InitializeResult{
		Capabilities: caps,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &version,
		},
	}, nil
}

func (s *Server) indexWorkspace() {
	idx := &workspace.Indexer{Exclude: []string{"vendor/**"}}
	ws, result, err := idx.Run(context.Background(), []string{s.root})
	if err != nil {
		logger.Warningf("workspace index failed: %v", err)
		return
	}
	s.ws = ws
	logger.Infof("indexed %d files (%d failed)", result.FilesIndexed, result.FilesFailed)
}

func (s *Server) initialized(_ *glsp.Context, _ *protocol.InitializedParams) error { return nil }
func (s *Server) shutdown(_ *glsp.Context) error                                   { return nil }
func (s *Server) setTrace(_ *glsp.Context, p *protocol.SetTraceParams) error {
	protocol.SetTraceValue(p.Value)
	return nil
}

func (s *Server) didOpen(_ *glsp.Context, p *protocol.DidOpenTextDocumentParams) error {
	doc := s.docs.RegisterOpen(p.TextDocument.URI)
	if err := doc.Update(context.Background(), []byte(p.TextDocument.Text), false); err != nil {
		return err
	}
	s.ws.IndexFile(p.TextDocument.URI, doc.Index().File)
	return nil
}

func (s *Server) didChange(_ *glsp.Context, p *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.Get(p.TextDocument.URI)
	var text string
	for _, c := range p.ContentChanges {
		if whole, ok := c.(protocol.TextDocumentContentChangeEventWhole); ok {
			text = whole.Text
		}
	}
	if err := doc.Update(context.Background(), []byte(text), true); err != nil {
		return err
	}
	return nil
}

func (s *Server) didClose(_ *glsp.Context, p *protocol.DidCloseTextDocumentParams) error {
	s.docs.Close(p.TextDocument.URI)
	s.ws.RemoveFile(p.TextDocument.URI)
	return nil
}

func (s *Server) documentSymbol(_ *glsp.Context, p *protocol.DocumentSymbolParams) (any, error) {
	doc := s.docs.Get(p.TextDocument.URI)
	idx := doc.Index()
	if idx.File == nil {
		return nil, nil
	}
	return toDocumentSymbols(idx.File.Children), nil
}

func (s *Server) workspaceSymbol(_ *glsp.Context, p *protocol.WorkspaceSymbolParams) ([]protocol.SymbolInformation, error) {
	matches := s.ws.FuzzySearch(p.Query, 0.6)
	out := make([]protocol.SymbolInformation, 0, len(matches))
	for _, m := range matches {
		out = append(out, toSymbolInformation(m.Entry))
	}
	return out, nil
}

// ParseOnDemand runs the extraction pass on content without touching
// the document store, used by callers (e.g. the CLI) that need a
// one-shot symbol tree.
func ParseOnDemand(ctx context.Context, uri string, content []byte) (*docstore.Index, error) {
	tree, err := phpast.Parse(ctx, uri, content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	file, refs, err := transform.Run(ctx, uri, tree)
	if err != nil {
		return nil, err
	}
	return &docstore.Index{File: file, Refs: refs}, nil
}
