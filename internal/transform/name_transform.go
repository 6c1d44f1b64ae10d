package transform

import (
	"strings"

	"github.com/shinyvision/phpindex/internal/phpast"
	"github.com/shinyvision/phpindex/internal/symbol"
)

// isNameNode reports whether n is one of the name-family phrase types:
// qualified, relative, fully-qualified, or bare (spec.md section 4.3,
// "Qualified / Relative / FullyQualified name transformers").
func isNameNode(n phpast.Node) bool {
	switch n.Type() {
	case "qualified_name", "relative_name", "name", "namespace_name":
		return true
	default:
		return false
	}
}

// resolveName implements the three name-transformer forms and records
// a Reference of the given kind at n's location. It returns the
// resolved fully-qualified name.
func (p *Pass) resolveName(n phpast.Node, kind symbol.Kind) string {
	if n.IsNull() {
		return ""
	}
	raw := n.Text()

	var resolved string
	var unresolved string

	switch {
	case strings.HasPrefix(raw, `\`):
		resolved = strings.TrimPrefix(raw, `\`)
	case strings.HasPrefix(raw, `namespace\`):
		resolved = p.resolver.ResolveRelativeToNamespace(strings.TrimPrefix(raw, `namespace\`))
	default:
		if self, ok := p.resolver.ResolveSelfLike(raw); ok {
			resolved = self
		} else {
			resolved = p.resolver.ResolveNotFullyQualified(raw, kind)
			if resolved != raw && (kind == symbol.KindFunction || kind == symbol.KindConstant) {
				unresolved = raw
			}
		}
	}

	p.refs = append(p.refs, symbol.Reference{
		Kind:           kind,
		Name:           resolved,
		UnresolvedName: unresolved,
		Range:          n.Location(),
	})
	return resolved
}

// resolveDeclarationName implements resolveRelative for a
// declaration's own name (spec.md section 4.1): it is always joined to
// the current namespace, never looked up against use-rules.
func (p *Pass) resolveDeclarationName(short string) string {
	return p.resolver.ResolveRelative(short)
}
