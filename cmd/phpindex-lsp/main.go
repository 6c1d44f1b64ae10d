// Command phpindex-lsp runs the minimal language server front-end on
// stdio, grounded on the teacher's cmd entrypoint for internal/server.
package main

import (
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/shinyvision/phpindex/internal/lspintegration"
)

func main() {
	commonlog.Configure(1, nil)

	server := lspintegration.NewServer()
	if err := server.Run(); err != nil {
		os.Exit(1)
	}
}
