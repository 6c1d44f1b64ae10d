package transform

import (
	"strings"

	"github.com/shinyvision/phpindex/internal/phpast"
	"github.com/shinyvision/phpindex/internal/phpdoc"
	"github.com/shinyvision/phpindex/internal/symbol"
)

// transformFunction implements the Function Declaration transformer
// (spec.md section 4.3, "Method / Function Declaration"), for named
// functions as well as closures and arrow functions, which get a
// synthetic name and the Anonymous modifier.
func (p *Pass) transformFunction(n phpast.Node, _ *symbol.Modifier) *symbol.Symbol {
	nameNode := n.ChildByField("name")
	var resolved, short string
	if !nameNode.IsNull() {
		short = nameNode.Text()
		resolved = p.resolveDeclarationName(short)
	} else {
		resolved = p.anonName("closure", n)
	}

	sym := symbol.New(symbol.KindFunction, resolved, n.Location())
	if nameNode.IsNull() {
		sym.Modifiers |= symbol.ModAnonymous
	}

	doc := p.doc.consume()
	if !nameNode.IsNull() {
		p.refs = append(p.refs, symbol.Reference{Kind: symbol.KindFunction, Name: resolved, Range: nameNode.Location()})
	}

	p.fillFunctionBody(sym, n, doc)
	return sym
}

// transformMethod implements Method Declaration. Default visibility is
// Public when no visibility_modifier is present (spec.md section 3,
// "Invariants").
func (p *Pass) transformMethod(n phpast.Node) *symbol.Symbol {
	nameNode := n.ChildByField("name")
	name := ""
	if !nameNode.IsNull() {
		name = nameNode.Text()
	}

	sym := symbol.New(symbol.KindMethod, name, n.Location())
	sym.Modifiers = withDefaultVisibility(methodModifiers(n))

	doc := p.doc.consume()
	if !nameNode.IsNull() {
		p.refs = append(p.refs, symbol.Reference{Kind: symbol.KindMethod, Name: name, Range: nameNode.Location()})
	}

	p.fillFunctionBody(sym, n, doc)
	return sym
}

func methodModifiers(n phpast.Node) symbol.Modifier {
	var mods symbol.Modifier
	for i := 0; i < n.NamedChildCount(); i++ {
		switch child := n.NamedChild(i); child.Type() {
		case "visibility_modifier":
			mods |= visibilityFromText(child.Text())
		case "static_modifier":
			mods |= symbol.ModStatic
		case "abstract_modifier":
			mods |= symbol.ModAbstract
		case "final_modifier":
			mods |= symbol.ModFinal
		}
	}
	return mods
}

func visibilityFromText(text string) symbol.Modifier {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "private":
		return symbol.ModPrivate
	case "protected":
		return symbol.ModProtected
	default:
		return symbol.ModPublic
	}
}

// withDefaultVisibility adds ModPublic when none of the three explicit
// visibility bits is already set (spec.md section 3, "default
// visibility for methods is Public").
func withDefaultVisibility(mods symbol.Modifier) symbol.Modifier {
	if mods.Has(symbol.ModPrivate) || mods.Has(symbol.ModProtected) || mods.Has(symbol.ModPublic) {
		return mods
	}
	return mods | symbol.ModPublic
}

// fillFunctionBody assembles parameters, return type and the body's
// local declarations, shared by functions, methods and closures.
func (p *Pass) fillFunctionBody(sym *symbol.Symbol, n phpast.Node, doc *phpdoc.Doc) {
	children := symbol.NewUniqueSymbolCollection()

	params := n.ChildByField("parameters")
	if !params.IsNull() {
		for i := 0; i < params.NamedChildCount(); i++ {
			param := params.NamedChild(i)
			switch param.Type() {
			case "simple_parameter", "variadic_parameter", "property_promotion_parameter":
				children.Append(p.transformParameter(param, doc))
			}
		}
	}

	if useClause := findChildType(n, "anonymous_function_use_clause"); !useClause.IsNull() {
		for i := 0; i < useClause.NamedChildCount(); i++ {
			children.Append(p.transformUseVariable(useClause.NamedChild(i)))
		}
	}

	returnType := n.ChildByField("return_type")
	if !returnType.IsNull() {
		sym.Type = p.transformTypeDeclaration(returnType)
	}

	body := n.ChildByField("body")
	if !body.IsNull() {
		for i := 0; i < body.NamedChildCount(); i++ {
			p.absorbStatement(children, body.NamedChild(i))
		}
	}

	sym.Children = children.Snapshot()
	for _, c := range sym.Children {
		c.Scope = sym.Name
	}
}

func findChildType(n phpast.Node, nodeType string) phpast.Node {
	for i := 0; i < n.NamedChildCount(); i++ {
		if child := n.NamedChild(i); child.Type() == nodeType {
			return child
		}
	}
	return phpast.Node{}
}

// transformParameter implements Parameter Declaration: name, type,
// default value text, Reference/Variadic modifiers, and any matching
// PHPDoc @param entry.
func (p *Pass) transformParameter(n phpast.Node, doc *phpdoc.Doc) *symbol.Symbol {
	nameNode := n.ChildByField("name")
	name := ""
	if !nameNode.IsNull() {
		name = nameNode.Text()
	}

	sym := symbol.New(symbol.KindParameter, name, n.Location())

	if typeNode := n.ChildByField("type"); !typeNode.IsNull() {
		sym.Type = p.transformTypeDeclaration(typeNode)
	}
	if def := n.ChildByField("default_value"); !def.IsNull() {
		sym.Value = def.Text()
	}
	if n.Type() == "variadic_parameter" {
		sym.Modifiers |= symbol.ModVariadic
	}
	for i := 0; i < n.NamedChildCount(); i++ {
		switch n.NamedChild(i).Type() {
		case "by_ref", "reference_modifier":
			sym.Modifiers |= symbol.ModReference
		case "visibility_modifier":
			sym.Modifiers |= visibilityFromText(n.NamedChild(i).Text())
		}
	}

	if doc != nil {
		for _, tag := range doc.Tags {
			if tag.Name == "param" && tag.Var == name {
				sym.Doc.Type = tag.Type
				break
			}
		}
	}

	return sym
}

// transformUseVariable implements the closure use-clause: each
// use-variable becomes a Variable symbol carrying the Use modifier
// (and Reference when captured by reference).
func (p *Pass) transformUseVariable(n phpast.Node) *symbol.Symbol {
	nameNode := n
	if nameNode.Type() != "variable_name" {
		nameNode = findChildType(n, "variable_name")
	}
	name := nameNode.Text()
	sym := symbol.New(symbol.KindVariable, name, n.Location())
	sym.Modifiers |= symbol.ModUse
	if byRef := findChildType(n, "by_ref"); !byRef.IsNull() {
		sym.Modifiers |= symbol.ModReference
	}
	return sym
}

// transformTypeDeclaration implements the TypeDeclaration transformer
// (spec.md section 4.3): callable/array pass through, reserved scalars
// stay as-is, and named types resolve through the name resolver.
func (p *Pass) transformTypeDeclaration(n phpast.Node) string {
	switch n.Type() {
	case "optional_type", "nullable_type":
		if n.NamedChildCount() > 0 {
			return "?" + p.transformTypeDeclaration(n.NamedChild(0))
		}
		return "?"
	case "union_type":
		return p.joinTypeParts(n, "|")
	case "intersection_type":
		return p.joinTypeParts(n, "&")
	case "primitive_type":
		return strings.ToLower(n.Text())
	case "named_type":
		if n.NamedChildCount() > 0 {
			return p.transformTypeDeclaration(n.NamedChild(0))
		}
		return n.Text()
	default:
		if isNameNode(n) {
			return p.resolveName(n, symbol.KindClass)
		}
		text := n.Text()
		switch strings.ToLower(text) {
		case "callable", "array":
			return strings.ToLower(text)
		default:
			return text
		}
	}
}

func (p *Pass) joinTypeParts(n phpast.Node, sep string) string {
	parts := make([]string, 0, n.NamedChildCount())
	for i := 0; i < n.NamedChildCount(); i++ {
		parts = append(parts, p.transformTypeDeclaration(n.NamedChild(i)))
	}
	return strings.Join(parts, sep)
}
