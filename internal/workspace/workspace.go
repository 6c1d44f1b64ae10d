// Package workspace drives the extraction pass over every PHP file
// under a set of roots, fanning out one internal/transform.Pass per
// document the way spec.md section 5 describes: one resolver and
// transformer stack per document, no mutable state shared across
// documents, results collected into a single internal/wsindex.Workspace.
package workspace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"github.com/shinyvision/phpindex/internal/phpast"
	"github.com/shinyvision/phpindex/internal/transform"
	"github.com/shinyvision/phpindex/internal/utils"
	"github.com/shinyvision/phpindex/internal/wsindex"
)

var logger = commonlog.GetLoggerf("phpindex.workspace")

// Result summarizes one indexing run.
type Result struct {
	FilesIndexed int
	FilesFailed  int
}

// Indexer walks a set of workspace roots and populates a
// wsindex.Workspace by running the extraction pass on every PHP file
// it finds.
type Indexer struct {
	// Exclude holds doublestar patterns (relative to each root)
	// skipped during the walk, e.g. "vendor/**".
	Exclude []string
}

// Run globs every "**/*.php" file under roots and indexes it,
// bounded to runtime.GOMAXPROCS(0) concurrent passes. A per-file
// parse or transform failure is logged and counted, and does not
// abort the run; ctx cancellation stops the walk and returns ctx.Err().
func (idx *Indexer) Run(ctx context.Context, roots []string) (*wsindex.Workspace, Result, error) {
	ws := wsindex.New()
	var result Result

	files, err := idx.discover(roots)
	if err != nil {
		return ws, result, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, runtime.GOMAXPROCS(0)))

	type outcome struct {
		uri string
		err error
	}
	outcomes := make(chan outcome, len(files))

	for _, path := range files {
		path := path
		g.Go(func() error {
			uri := utils.PathToURI(path)
			err := idx.indexOne(gctx, uri, path, ws)
			select {
			case outcomes <- outcome{uri: uri, err: err}:
			case <-gctx.Done():
			}
			return nil
		})
	}

	go func() {
		_ = g.Wait()
		close(outcomes)
	}()

	for o := range outcomes {
		if o.err != nil {
			result.FilesFailed++
			logger.Warningf("indexing %s failed: %v", o.uri, o.err)
			continue
		}
		result.FilesIndexed++
	}

	if ctx.Err() != nil {
		return ws, result, ctx.Err()
	}
	return ws, result, nil
}

func (idx *Indexer) indexOne(ctx context.Context, uri, path string, ws *wsindex.Workspace) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	tree, err := phpast.Parse(ctx, uri, content)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	defer tree.Close()

	file, _, err := transform.Run(ctx, uri, tree)
	if err != nil {
		return fmt.Errorf("transform %s: %w", path, err)
	}

	ws.IndexFile(uri, file)
	return nil
}

func (idx *Indexer) discover(roots []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, root := range roots {
		matches, err := doublestar.FilepathGlob(filepath.Join(root, "**", "*.php"))
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", root, err)
		}
		for _, m := range matches {
			if idx.isExcluded(root, m) {
				continue
			}
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	return files, nil
}

func (idx *Indexer) isExcluded(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	for _, pattern := range idx.Exclude {
		if matched, _ := doublestar.Match(pattern, rel); matched {
			return true
		}
	}
	return false
}
