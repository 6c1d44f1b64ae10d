// Package docstore holds parsed PHP documents and their extracted
// symbol index, debouncing re-analysis the way an editor-facing indexer
// must (spec.md section 1, "the document store that holds source
// text" — an excluded collaborator this repo now implements
// concretely).
package docstore

import (
	"context"
	"sync"
	"time"

	"github.com/tliron/commonlog"

	"github.com/shinyvision/phpindex/internal/phpast"
	"github.com/shinyvision/phpindex/internal/symbol"
	"github.com/shinyvision/phpindex/internal/transform"
)

// analysisDebounceInterval bounds how often a rapidly-typing editor
// triggers a full re-analysis.
const analysisDebounceInterval = 500 * time.Millisecond

var logger = commonlog.GetLoggerf("phpindex.docstore")

// Index is the extracted result for one document.
type Index struct {
	File *symbol.Symbol
	Refs []symbol.Reference
}

// Document owns a parsed PHP tree together with its current Index. All
// methods are safe for concurrent use.
type Document struct {
	uri string

	mu      sync.RWMutex
	content []byte
	tree    *phpast.Tree
	index   Index

	timerMu sync.Mutex
	timer   *time.Timer
}

// NewDocument constructs an empty Document for uri.
func NewDocument(uri string) *Document {
	return &Document{uri: uri}
}

// URI returns the document's identifying URI.
func (d *Document) URI() string {
	return d.uri
}

// Update replaces the document's content, reparses it immediately, and
// schedules a debounced re-analysis. debounce=false forces synchronous
// analysis, used when opening a file for the first time.
func (d *Document) Update(ctx context.Context, content []byte, debounce bool) error {
	d.mu.Lock()
	d.content = content
	if d.tree != nil {
		d.tree.Close()
	}
	tree, err := phpast.Parse(ctx, d.uri, content)
	if err != nil {
		d.mu.Unlock()
		return err
	}
	d.tree = tree
	d.mu.Unlock()

	if !debounce {
		return d.analyze(ctx)
	}

	d.timerMu.Lock()
	defer d.timerMu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(analysisDebounceInterval, func() {
		if err := d.analyze(context.Background()); err != nil {
			logger.Warningf("analysis of %s failed: %v", d.uri, err)
		}
	})
	return nil
}

func (d *Document) analyze(ctx context.Context) error {
	// Hold the read lock for the whole walk so Update and Close cannot
	// close the tree underneath it.
	d.mu.RLock()
	tree := d.tree
	if tree == nil {
		d.mu.RUnlock()
		return nil
	}
	file, refs, err := transform.Run(ctx, d.uri, tree)
	d.mu.RUnlock()
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.index = Index{File: file, Refs: refs}
	d.mu.Unlock()
	return nil
}

// Index returns the most recently completed analysis result.
func (d *Document) Index() Index {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.index
}

// Close releases the underlying parsed tree and any pending timer.
func (d *Document) Close() {
	d.timerMu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timerMu.Unlock()

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.tree != nil {
		d.tree.Close()
		d.tree = nil
	}
}
