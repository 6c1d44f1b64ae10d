package transform

import (
	"github.com/shinyvision/phpindex/internal/phpast"
	"github.com/shinyvision/phpindex/internal/symbol"
)

// transformSimpleVariable implements SimpleVariable (spec.md section
// 4.3): a Variable symbol plus a Reference at the variable's range.
// Superglobals and repeated names within the same scope are collapsed
// later by UniqueSymbolCollection.
func (p *Pass) transformSimpleVariable(n phpast.Node) *symbol.Symbol {
	name := n.Text()
	p.refs = append(p.refs, symbol.Reference{Kind: symbol.KindVariable, Name: name, Range: n.Location()})
	return symbol.New(symbol.KindVariable, name, n.Location())
}

// transformCatchVariable implements CatchClauseVariable: treated as an
// ordinary Variable symbol, inserted into the nearest enclosing
// transformer's children.
func (p *Pass) transformCatchVariable(n phpast.Node) *symbol.Symbol {
	return p.transformSimpleVariable(n)
}
