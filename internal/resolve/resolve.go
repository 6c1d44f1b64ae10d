// Package resolve implements PHP's name-resolution rules: namespace
// prefixes, use-aliases, and the relative/qualified/fully-qualified
// name forms (spec.md section 4.1).
package resolve

import (
	"strings"

	"github.com/shinyvision/phpindex/internal/nameutil"
	"github.com/shinyvision/phpindex/internal/symbol"
)

// reservedWords never resolve against a namespace or use-table; they
// pass through name resolution unchanged (spec.md section 4.1).
var reservedWords = map[string]struct{}{
	"int": {}, "string": {}, "bool": {}, "float": {}, "iterable": {},
	"true": {}, "false": {}, "null": {}, "void": {}, "object": {},
	"self": {}, "parent": {}, "static": {}, "mixed": {}, "never": {},
	"array": {}, "callable": {},
}

// IsReserved reports whether name is a PHP reserved word that resolves
// to itself regardless of namespace or use-table.
func IsReserved(name string) bool {
	_, ok := reservedWords[strings.ToLower(name)]
	return ok
}

// UseRule is one entry of the file's use-table: an alias mapped to a
// fully-qualified target name for a specific kind.
type UseRule struct {
	Alias  string
	Target string
	Kind   symbol.Kind
}

// Resolver holds the per-file name-resolution state: the current
// namespace, the ordered use-rules parsed so far, and the stack of
// enclosing class symbols so self/static/parent resolve (spec.md
// section 3, "NameResolver (per-file)").
//
// A fresh Resolver is created per document; use-rules are added to it
// during pre-order traversal of use-clause nodes, so names appearing
// earlier in the file are resolved against whatever the use-table
// contained at that point (spec.md section 4.1, "Ordering").
type Resolver struct {
	namespaceName string
	rules         map[string]UseRule // key: kind + "\x00" + lowercase(alias)
	classStack    []*symbol.Symbol
}

// New constructs a resolver for a fresh document in the global
// namespace.
func New() *Resolver {
	return &Resolver{rules: make(map[string]UseRule)}
}

// Namespace returns the current namespace name (empty for the global
// namespace).
func (r *Resolver) Namespace() string {
	return r.namespaceName
}

// SetNamespace sets the current namespace, as done on pre-order visit
// of a namespace declaration (spec.md section 4.3, NamespaceDefinition).
func (r *Resolver) SetNamespace(name string) {
	r.namespaceName = strings.Trim(name, `\`)
}

func ruleKey(kind symbol.Kind, alias string) string {
	return string(rune(kind)) + "\x00" + strings.ToLower(alias)
}

// AddUseRule registers a use-import so that subsequent unqualified or
// qualified names resolve through it.
func (r *Resolver) AddUseRule(alias, target string, kind symbol.Kind) {
	alias = strings.Trim(alias, `\`)
	target = strings.Trim(target, `\`)
	if alias == "" || target == "" {
		return
	}
	r.rules[ruleKey(kind, alias)] = UseRule{Alias: alias, Target: target, Kind: kind}
}

func (r *Resolver) lookupAlias(alias string, kind symbol.Kind) (string, bool) {
	rule, ok := r.rules[ruleKey(kind, alias)]
	if !ok {
		return "", false
	}
	return rule.Target, true
}

// ResolveRelative prepends the current namespace, for names at their
// declaration site (class/function/const/trait/interface names).
func (r *Resolver) ResolveRelative(name string) string {
	name = strings.Trim(name, `\`)
	return nameutil.JoinFQN(r.namespaceName, name)
}

// ResolveRelativeToNamespace implements the `namespace\Foo` syntactic
// form: always prepend the current namespace, regardless of use-rules.
func (r *Resolver) ResolveRelativeToNamespace(name string) string {
	name = strings.TrimPrefix(name, `\`)
	return nameutil.JoinFQN(r.namespaceName, name)
}

// ResolveNotFullyQualified implements PHP's unqualified/qualified
// resolution for a name that is neither `\Foo` (fully qualified) nor
// `namespace\Foo` (relative-to-namespace).
func (r *Resolver) ResolveNotFullyQualified(name string, kind symbol.Kind) string {
	if IsReserved(name) {
		return name
	}

	if !strings.Contains(name, `\`) {
		if target, ok := r.lookupAlias(name, kind); ok {
			return target
		}
		return nameutil.JoinFQN(r.namespaceName, name)
	}

	first, rest, _ := strings.Cut(name, `\`)
	if target, ok := r.lookupAlias(first, symbol.KindClass); ok {
		return nameutil.JoinFQN(target, rest)
	}
	return nameutil.JoinFQN(r.namespaceName, name)
}

// PushClass makes sym the innermost enclosing class for self/static/
// parent resolution.
func (r *Resolver) PushClass(sym *symbol.Symbol) {
	r.classStack = append(r.classStack, sym)
}

// PopClass removes the innermost enclosing class.
func (r *Resolver) PopClass() {
	if len(r.classStack) == 0 {
		return
	}
	r.classStack = r.classStack[:len(r.classStack)-1]
}

// CurrentClass returns the innermost enclosing class symbol, or nil at
// the top level.
func (r *Resolver) CurrentClass() *symbol.Symbol {
	if len(r.classStack) == 0 {
		return nil
	}
	return r.classStack[len(r.classStack)-1]
}

// ResolveSelfLike resolves "self", "static" and "parent" against the
// enclosing class stack. It returns ok=false when there is no
// enclosing class, or (for "parent") the class has no recorded base.
func (r *Resolver) ResolveSelfLike(name string) (string, bool) {
	cur := r.CurrentClass()
	if cur == nil {
		return "", false
	}
	switch strings.ToLower(name) {
	case "self", "static":
		return cur.Name, true
	case "parent":
		for _, ref := range cur.Associated {
			if ref.Kind == symbol.KindClass {
				return ref.Name, true
			}
		}
		return "", false
	default:
		return "", false
	}
}
