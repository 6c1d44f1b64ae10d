package transform

import (
	"strings"

	"github.com/shinyvision/phpindex/internal/nameutil"
	"github.com/shinyvision/phpindex/internal/phpast"
	"github.com/shinyvision/phpindex/internal/symbol"
)

// transformNamespaceUse implements NamespaceUseDeclaration /
// NamespaceUseClause (spec.md section 4.3): each clause becomes a Use
// symbol and contributes a use-rule to the resolver immediately so
// later names in the file resolve against it.
func (p *Pass) transformNamespaceUse(n phpast.Node) []*symbol.Symbol {
	kind := useKindOf(n)
	prefix := ""

	var out []*symbol.Symbol
	for i := 0; i < n.NamedChildCount(); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "namespace_name":
			prefix = strings.Trim(child.Text(), `\`)
		case "namespace_use_group":
			groupKind := kind
			for j := 0; j < child.NamedChildCount(); j++ {
				clause := child.NamedChild(j)
				if clause.Type() != "namespace_use_clause" {
					continue
				}
				out = append(out, p.transformUseClause(clause, prefix, groupKind))
			}
		case "namespace_use_clause":
			out = append(out, p.transformUseClause(child, prefix, kind))
		}
	}
	return out
}

func useKindOf(n phpast.Node) symbol.Kind {
	for i := 0; i < n.NamedChildCount(); i++ {
		switch n.NamedChild(i).Type() {
		case "function":
			return symbol.KindFunction
		case "const":
			return symbol.KindConstant
		}
	}
	return symbol.KindClass
}

func (p *Pass) transformUseClause(clause phpast.Node, prefix string, kind symbol.Kind) *symbol.Symbol {
	nameNode := clause.ChildByField("name")
	if nameNode.IsNull() {
		for i := 0; i < clause.NamedChildCount(); i++ {
			if isNameNode(clause.NamedChild(i)) {
				nameNode = clause.NamedChild(i)
				break
			}
		}
	}
	base := ""
	if !nameNode.IsNull() {
		base = strings.Trim(nameNode.Text(), `\`)
	}

	target := base
	if prefix != "" {
		target = prefix + `\` + base
	}
	target = strings.Trim(target, `\`)

	aliasNode := clause.ChildByField("alias")
	alias := ""
	if !aliasNode.IsNull() {
		alias = aliasNode.Text()
	}
	if alias == "" {
		_, alias = nameutil.SplitFQN(target)
	}

	p.resolver.AddUseRule(alias, target, kind)

	sym := symbol.New(symbol.KindUse, alias, clause.Location())
	sym.Modifiers = symbol.ModUse
	sym.Associated = append(sym.Associated, symbol.Reference{
		Kind:  kind,
		Name:  target,
		Range: clause.Location(),
	})
	return sym
}
