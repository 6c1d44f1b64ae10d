package transform

import (
	"github.com/shinyvision/phpindex/internal/phpast"
	"github.com/shinyvision/phpindex/internal/symbol"
)

func classLikeKind(nodeType string) symbol.Kind {
	switch nodeType {
	case "interface_declaration":
		return symbol.KindInterface
	case "trait_declaration":
		return symbol.KindTrait
	default:
		return symbol.KindClass
	}
}

// transformClassLike implements the Class/Interface/Trait Declaration
// transformer (spec.md section 4.3): pushes the partially-filled
// symbol onto the resolver's class stack before processing members so
// self/static/parent resolve correctly for nested declarations.
func (p *Pass) transformClassLike(n phpast.Node) *symbol.Symbol {
	kind := classLikeKind(n.Type())
	nameNode := n.ChildByField("name")

	var resolved, short string
	if !nameNode.IsNull() {
		short = nameNode.Text()
		resolved = p.resolveDeclarationName(short)
	} else {
		resolved = p.anonName("class", n)
	}

	sym := symbol.New(kind, resolved, n.Location())
	sym.Modifiers |= classModifiers(n)
	if nameNode.IsNull() {
		sym.Modifiers |= symbol.ModAnonymous
	}

	doc := p.doc.consume()
	if doc != nil {
		sym.Doc = symbol.Doc{Description: doc.Description}
	}

	if !nameNode.IsNull() {
		p.refs = append(p.refs, symbol.Reference{Kind: kind, Name: resolved, Range: nameNode.Location()})
	}

	p.resolver.PushClass(sym)
	defer p.resolver.PopClass()

	p.absorbBaseClauseChildren(sym, n, "base_clause", symbol.KindClass)
	p.absorbBaseClauseChildren(sym, n, "class_interface_clause", symbol.KindClass)

	body := n.ChildByField("body")
	children := symbol.NewUniqueSymbolCollection()
	if !body.IsNull() {
		p.absorbClassMembers(sym, children, body)
	}
	if doc != nil {
		attachMagicMembers(children, doc, p)
	}

	sym.Children = children.Snapshot()
	for _, c := range sym.Children {
		c.Scope = sym.Name
	}
	return sym
}

func classModifiers(n phpast.Node) symbol.Modifier {
	var mods symbol.Modifier
	for i := 0; i < n.NamedChildCount(); i++ {
		switch n.NamedChild(i).Type() {
		case "abstract_modifier":
			mods |= symbol.ModAbstract
		case "final_modifier":
			mods |= symbol.ModFinal
		}
	}
	return mods
}

// absorbBaseClauseChildren finds every named child of the given
// grammar type and records it as an Associated reference of kind.
func (p *Pass) absorbBaseClauseChildren(sym *symbol.Symbol, n phpast.Node, clauseType string, kind symbol.Kind) {
	for i := 0; i < n.NamedChildCount(); i++ {
		clause := n.NamedChild(i)
		if clause.Type() != clauseType {
			continue
		}
		p.absorbAssociatedNames(sym, clause, kind)
	}
}

func (p *Pass) absorbAssociatedNames(sym *symbol.Symbol, clause phpast.Node, kind symbol.Kind) {
	if isNameNode(clause) {
		resolved := p.resolveName(clause, kind)
		sym.Associated = append(sym.Associated, symbol.Reference{Kind: kind, Name: resolved, Range: clause.Location()})
		return
	}
	for i := 0; i < clause.NamedChildCount(); i++ {
		child := clause.NamedChild(i)
		if isNameNode(child) {
			resolved := p.resolveName(child, kind)
			sym.Associated = append(sym.Associated, symbol.Reference{Kind: kind, Name: resolved, Range: child.Location()})
		}
	}
}

// absorbClassMembers dispatches every member declaration in a class,
// interface or trait body.
func (p *Pass) absorbClassMembers(owner *symbol.Symbol, dst *symbol.UniqueSymbolCollection, body phpast.Node) {
	for i := 0; i < body.NamedChildCount(); i++ {
		member := body.NamedChild(i)
		switch member.Type() {
		case "comment":
			p.captureComment(member)
		case "method_declaration":
			dst.Append(p.transformMethod(member))
		case "property_declaration":
			dst.AppendAll(p.transformPropertyDeclaration(member))
		case "const_declaration":
			dst.AppendAll(p.transformConstDeclaration(member, true))
		case "use_declaration":
			p.absorbAssociatedNames(owner, member, symbol.KindTrait)
		}
	}
	// body's closing "}" is an unnamed token, never visited above;
	// treat finishing the member list as reaching it (spec.md section
	// 4.5, "cleared on a close-brace token").
	p.doc.clear()
}

// transformAnonymousClass implements AnonymousClassDeclaration
// (spec.md section 4.3): its name is a deterministic synthetic string
// and it carries the Anonymous modifier.
func (p *Pass) transformAnonymousClass(n phpast.Node) *symbol.Symbol {
	resolved := p.anonName("class", n)
	sym := symbol.New(symbol.KindClass, resolved, n.Location())
	sym.Modifiers |= symbol.ModAnonymous

	p.absorbBaseClauseChildren(sym, n, "base_clause", symbol.KindClass)
	p.absorbBaseClauseChildren(sym, n, "class_interface_clause", symbol.KindClass)

	p.resolver.PushClass(sym)
	defer p.resolver.PopClass()

	body := n.ChildByField("body")
	children := symbol.NewUniqueSymbolCollection()
	if !body.IsNull() {
		p.absorbClassMembers(sym, children, body)
	}
	sym.Children = children.Snapshot()
	for _, c := range sym.Children {
		c.Scope = sym.Name
	}
	return sym
}
