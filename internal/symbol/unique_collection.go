package symbol

// superglobals lists the PHP names that are never emitted as Variable
// or Parameter symbols, per spec.md section 4.4.
var superglobals = map[string]struct{}{
	"$GLOBALS":              {},
	"$_SERVER":              {},
	"$_GET":                 {},
	"$_POST":                {},
	"$_FILES":               {},
	"$_REQUEST":             {},
	"$_SESSION":             {},
	"$_ENV":                 {},
	"$_COOKIE":              {},
	"$php_errormsg":         {},
	"$HTTP_RAW_POST_DATA":   {},
	"$http_response_header": {},
	"$argc":                 {},
	"$argv":                 {},
	"$this":                 {},
}

// IsSuperglobal reports whether name (including its leading "$") is
// one of the PHP superglobals that must never be emitted as a symbol.
func IsSuperglobal(name string) bool {
	_, ok := superglobals[name]
	return ok
}

// UniqueSymbolCollection preserves insertion order while deduplicating
// Variable and Parameter symbols by name and suppressing superglobals.
// Every other kind of symbol is always appended (spec.md section 4.4).
type UniqueSymbolCollection struct {
	items []*Symbol
	seen  map[string]struct{}
}

// NewUniqueSymbolCollection constructs an empty collection.
func NewUniqueSymbolCollection() *UniqueSymbolCollection {
	return &UniqueSymbolCollection{seen: make(map[string]struct{})}
}

// Append adds a single symbol, applying dedup/suppression rules for
// Variable and Parameter kinds.
func (c *UniqueSymbolCollection) Append(s *Symbol) {
	if s == nil {
		return
	}
	if s.Kind != KindVariable && s.Kind != KindParameter {
		c.items = append(c.items, s)
		return
	}
	if IsSuperglobal(s.Name) {
		return
	}
	if _, ok := c.seen[s.Name]; ok {
		return
	}
	c.seen[s.Name] = struct{}{}
	c.items = append(c.items, s)
}

// AppendAll adds every symbol in order, one at a time.
func (c *UniqueSymbolCollection) AppendAll(items []*Symbol) {
	for _, s := range items {
		c.Append(s)
	}
}

// Snapshot returns the current contents as an ordered slice. The
// returned slice must not be mutated by the caller.
func (c *UniqueSymbolCollection) Snapshot() []*Symbol {
	return c.items
}

// Len returns the number of symbols currently held.
func (c *UniqueSymbolCollection) Len() int {
	return len(c.items)
}
