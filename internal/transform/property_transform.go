package transform

import (
	"github.com/shinyvision/phpindex/internal/phpast"
	"github.com/shinyvision/phpindex/internal/phpdoc"
	"github.com/shinyvision/phpindex/internal/symbol"
)

// transformPropertyDeclaration implements PropertyDeclaration /
// PropertyElement (spec.md section 4.3): the declaration's modifier
// list is stamped onto each element's symbol; default visibility is
// Public.
func (p *Pass) transformPropertyDeclaration(n phpast.Node) []*symbol.Symbol {
	mods := withDefaultVisibility(methodModifiers(n))
	doc := p.doc.consume()

	var out []*symbol.Symbol
	for i := 0; i < n.NamedChildCount(); i++ {
		el := n.NamedChild(i)
		if el.Type() != "property_element" {
			continue
		}
		out = append(out, p.transformPropertyElement(el, mods, doc))
	}
	return out
}

func (p *Pass) transformPropertyElement(n phpast.Node, mods symbol.Modifier, doc *phpdoc.Doc) *symbol.Symbol {
	nameNode := n.ChildByField("name")
	name := nameNode.Text()

	sym := symbol.New(symbol.KindProperty, name, n.Location())
	sym.Modifiers = mods

	if def := n.ChildByField("default_value"); !def.IsNull() {
		sym.Value = def.Text()
	}

	if doc != nil {
		for _, tag := range doc.Tags {
			if tag.Name == "var" && (tag.Var == "" || tag.Var == name) {
				sym.Doc.Type = tag.Type
				break
			}
		}
	}

	return sym
}
