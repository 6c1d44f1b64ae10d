package docstore

import "sync"

// Store is a bounded collection of Documents keyed by URI, evicting
// closed (not editor-open) entries first when over capacity, mirroring
// the teacher's LRU-ish document store.
type Store struct {
	mu       sync.Mutex
	capacity int
	docs     map[string]*Document
	open     map[string]bool
	order    []string
}

// NewStore constructs a Store that holds at most capacity documents
// before evicting.
func NewStore(capacity int) *Store {
	return &Store{
		capacity: capacity,
		docs:     make(map[string]*Document),
		open:     make(map[string]bool),
	}
}

// RegisterOpen marks uri as open in the editor, exempting it from
// eviction, and returns its Document, creating one if needed.
func (s *Store) RegisterOpen(uri string) *Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.open[uri] = true
	return s.getOrCreateLocked(uri)
}

// Get returns uri's Document, creating one if needed, without marking
// it open.
func (s *Store) Get(uri string) *Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrCreateLocked(uri)
}

func (s *Store) getOrCreateLocked(uri string) *Document {
	if doc, ok := s.docs[uri]; ok {
		s.touchLocked(uri)
		return doc
	}
	doc := NewDocument(uri)
	s.docs[uri] = doc
	s.order = append(s.order, uri)
	s.evictLocked()
	return doc
}

func (s *Store) touchLocked(uri string) {
	for i, u := range s.order {
		if u == uri {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.order = append(s.order, uri)
}

// Close marks uri as no longer open in the editor. Its Document is
// kept around until capacity pressure evicts it.
func (s *Store) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.open, uri)
}

func (s *Store) evictLocked() {
	if s.capacity <= 0 {
		return
	}
	for len(s.docs) > s.capacity {
		evicted := false
		for i, uri := range s.order {
			if s.open[uri] {
				continue
			}
			if doc, ok := s.docs[uri]; ok {
				doc.Close()
			}
			delete(s.docs, uri)
			s.order = append(s.order[:i], s.order[i+1:]...)
			evicted = true
			break
		}
		if !evicted {
			return
		}
	}
}
