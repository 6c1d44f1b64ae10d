// Package symbol defines the hierarchical symbol tree and reference
// list produced by the transformer pass, plus the acronym/suffix-key
// derivations that feed workspace-wide fuzzy lookup.
package symbol

import "github.com/shinyvision/phpindex/internal/nameutil"

// Doc carries the description and resolved type PHPDoc contributed to
// a symbol (spec.md section 4.5).
type Doc struct {
	Description string
	Type        string
}

// Symbol is one node of the hierarchical symbol tree rooted at a File
// symbol (spec.md section 3).
type Symbol struct {
	Kind      Kind
	Name      string
	Modifiers Modifier
	Type      string
	Location  Location
	Scope     string
	Value     string
	Children  []*Symbol
	Associated []Reference
	Doc       Doc
}

// New constructs a Symbol with the given kind, name and location. The
// remaining fields are set directly on the returned Symbol before it
// is appended to a parent's Children.
func New(kind Kind, name string, loc Location) *Symbol {
	return &Symbol{Kind: kind, Name: name, Location: loc}
}

// AddChild appends a child symbol and stamps its Scope to this
// symbol's fully-qualified Name, honoring the scope-closure invariant
// (spec.md section 3, "for any symbol with non-empty children,
// child.scope == parent.qualifiedName").
func (s *Symbol) AddChild(child *Symbol) {
	if child == nil {
		return
	}
	child.Scope = s.Name
	s.Children = append(s.Children, child)
}

// IsAnonymous reports whether the symbol represents an anonymous class
// or closure.
func (s *Symbol) IsAnonymous() bool {
	return s.Modifiers.Has(ModAnonymous)
}

// Acronym derives the fuzzy-search acronym for the symbol's name.
// Anonymous symbols have an opaque, non-searchable acronym (empty
// string) since their names are synthetic (spec.md section 4.6 only
// defines acronyms for "non-anonymous" symbols).
func (s *Symbol) Acronym() string {
	if s.IsAnonymous() {
		return ""
	}
	return nameutil.Acronym(s.Name)
}

// SuffixKeys derives the fuzzy-search suffix keys for the symbol's
// name. See Acronym for the anonymous-symbol exclusion.
func (s *Symbol) SuffixKeys() []string {
	if s.IsAnonymous() {
		return nil
	}
	return nameutil.SuffixKeys(s.Name)
}

// Walk visits s and every descendant in pre-order.
func (s *Symbol) Walk(visit func(*Symbol)) {
	if s == nil {
		return
	}
	visit(s)
	for _, c := range s.Children {
		c.Walk(visit)
	}
}
