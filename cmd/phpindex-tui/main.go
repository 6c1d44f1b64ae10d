// Command phpindex-tui is a terminal symbol browser over a workspace.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shinyvision/phpindex/internal/tui"
	"github.com/shinyvision/phpindex/internal/workspace"
)

func main() {
	root := "."
	if len(os.Args) > 1 {
		root = os.Args[1]
	}

	idx := &workspace.Indexer{Exclude: []string{"vendor/**"}}
	ws, result, err := idx.Run(context.Background(), []string{root})
	if err != nil {
		fmt.Fprintf(os.Stderr, "phpindex-tui: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "indexed %d files (%d failed)\n", result.FilesIndexed, result.FilesFailed)

	if err := tui.Run(ws); err != nil {
		fmt.Fprintf(os.Stderr, "phpindex-tui: %v\n", err)
		os.Exit(1)
	}
}
