// Command phpindex-mcp runs the MCP tool server on stdio, grounded on
// standardbeagle-lci's cmd/lci mcpServer.Start(ctx) wiring.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shinyvision/phpindex/internal/mcpserver"
)

func main() {
	root := "."
	if len(os.Args) > 1 {
		root = os.Args[1]
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	server := mcpserver.NewServer(root)
	if err := server.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "phpindex-mcp: %v\n", err)
		os.Exit(1)
	}
}
