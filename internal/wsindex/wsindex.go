// Package wsindex holds the workspace-wide symbol index that
// internal/transform populates one file at a time, and answers fuzzy
// workspace/symbol style lookups over it (spec.md section 4.6).
package wsindex

import (
	"sort"
	"sync"

	"github.com/hbollon/go-edlib"

	"github.com/shinyvision/phpindex/internal/symbol"
)

// Entry is one indexed symbol together with the URI of the file it
// came from, since Workspace flattens across many documents.
type Entry struct {
	URI    string
	Symbol *symbol.Symbol
}

// Workspace is the concurrency-safe aggregate symbol index. Writers
// (each internal/workspace worker, the LSP front-end) call IndexFile
// with one file's worth of symbols at a time, after that file's pass
// completes; a mutex serialises them against each other and readers.
type Workspace struct {
	mu      sync.RWMutex
	byURI   map[string][]Entry
	acronym map[string][]Entry
	suffix  map[string][]Entry
}

// New constructs an empty Workspace.
func New() *Workspace {
	return &Workspace{
		byURI:   make(map[string][]Entry),
		acronym: make(map[string][]Entry),
		suffix:  make(map[string][]Entry),
	}
}

// IndexFile replaces uri's entries with the symbols reachable from
// file (the File symbol itself is not indexed), keyed by their acronym
// and suffix keys for fuzzy lookup.
func (w *Workspace) IndexFile(uri string, file *symbol.Symbol) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.removeURILocked(uri)

	var entries []Entry
	file.Walk(func(s *symbol.Symbol) {
		if s.Kind == symbol.KindFile {
			return
		}
		entry := Entry{URI: uri, Symbol: s}
		entries = append(entries, entry)

		if acr := s.Acronym(); acr != "" {
			w.acronym[acr] = append(w.acronym[acr], entry)
		}
		for _, key := range s.SuffixKeys() {
			w.suffix[key] = append(w.suffix[key], entry)
		}
	})
	w.byURI[uri] = entries
}

// RemoveFile drops every entry previously indexed for uri, used when a
// document is closed or deleted from the workspace.
func (w *Workspace) RemoveFile(uri string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.removeURILocked(uri)
}

func (w *Workspace) removeURILocked(uri string) {
	if _, ok := w.byURI[uri]; !ok {
		return
	}
	delete(w.byURI, uri)
	for key, entries := range w.acronym {
		w.acronym[key] = filterOutURI(entries, uri)
	}
	for key, entries := range w.suffix {
		w.suffix[key] = filterOutURI(entries, uri)
	}
}

func filterOutURI(entries []Entry, uri string) []Entry {
	out := entries[:0:0]
	for _, e := range entries {
		if e.URI != uri {
			out = append(out, e)
		}
	}
	return out
}

// Match is one ranked fuzzy search result.
type Match struct {
	Entry Entry
	Score float64
}

// FuzzySearch ranks every indexed symbol against query by Jaro-Winkler
// similarity of the query to the symbol's acronym and suffix keys,
// returning the best matches above threshold sorted by descending
// score.
func (w *Workspace) FuzzySearch(query string, threshold float64) []Match {
	if query == "" {
		return nil
	}
	w.mu.RLock()
	defer w.mu.RUnlock()

	best := make(map[*symbol.Symbol]Match)
	rank := func(key string, entries []Entry) {
		score, err := edlib.StringsSimilarity(query, key, edlib.JaroWinkler)
		if err != nil || float64(score) < threshold {
			return
		}
		for _, e := range entries {
			if m, ok := best[e.Symbol]; !ok || float64(score) > m.Score {
				best[e.Symbol] = Match{Entry: e, Score: float64(score)}
			}
		}
	}
	for key, entries := range w.acronym {
		rank(key, entries)
	}
	for key, entries := range w.suffix {
		rank(key, entries)
	}

	matches := make([]Match, 0, len(best))
	for _, m := range best {
		matches = append(matches, m)
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Entry.Symbol.Name < matches[j].Entry.Symbol.Name
	})
	return matches
}

// FileSymbols returns the entries indexed for uri, or nil if it is not
// currently indexed.
func (w *Workspace) FileSymbols(uri string) []Entry {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.byURI[uri]
}
