package transform

import (
	"strings"

	"github.com/shinyvision/phpindex/internal/phpast"
	"github.com/shinyvision/phpindex/internal/phpdoc"
	"github.com/shinyvision/phpindex/internal/symbol"
)

// transformConstDeclaration implements ConstElement for both top-level
// `const X = …;` and class constants (spec.md section 4.3): top-level
// names resolve relative to the current namespace; class constants are
// implicitly Static.
func (p *Pass) transformConstDeclaration(n phpast.Node, isClassConst bool) []*symbol.Symbol {
	var mods symbol.Modifier
	doc := p.doc.consume()
	if isClassConst {
		mods = withDefaultVisibility(methodModifiers(n) | symbol.ModStatic)
	}

	var out []*symbol.Symbol
	for i := 0; i < n.NamedChildCount(); i++ {
		el := n.NamedChild(i)
		if el.Type() != "const_element" {
			continue
		}
		out = append(out, p.transformConstElement(el, isClassConst, mods, doc))
	}
	return out
}

func (p *Pass) transformConstElement(n phpast.Node, isClassConst bool, mods symbol.Modifier, doc *phpdoc.Doc) *symbol.Symbol {
	nameNode := n.ChildByField("name")
	short := nameNode.Text()

	var resolved string
	kind := symbol.KindConstant
	if isClassConst {
		resolved = short
		kind = symbol.KindClassConstant
	} else {
		resolved = p.resolveDeclarationName(short)
	}

	sym := symbol.New(kind, resolved, n.Location())
	sym.Modifiers = mods

	value := n.ChildByField("value")
	if !value.IsNull() {
		sym.Value = value.Text()
		sym.Type = scalarLiteralType(value)
	}

	if !isClassConst {
		p.refs = append(p.refs, symbol.Reference{Kind: symbol.KindConstant, Name: resolved, Range: nameNode.Location()})
	}

	if doc != nil {
		for _, tag := range doc.Tags {
			if tag.Name == "var" {
				sym.Doc.Type = tag.Type
				break
			}
		}
	}

	return sym
}

// scalarLiteralType implements the PHP scalar type recognised for a
// literal initializer, empty for anything else (spec.md section 4.3,
// "ConstElement").
func scalarLiteralType(n phpast.Node) string {
	switch n.Type() {
	case "string", "encapsed_string":
		return "string"
	case "integer":
		return "int"
	case "float", "floating_point_number":
		return "float"
	case "boolean", "true", "false":
		return "bool"
	default:
		return ""
	}
}

// transformDefineCall implements the FunctionCallExpression
// specialisation for `define(...)` (spec.md section 4.3): a malformed
// call (missing/non-string first argument) emits nothing.
func (p *Pass) transformDefineCall(n phpast.Node) *symbol.Symbol {
	if n.Type() != "function_call_expression" {
		return nil
	}
	fn := n.ChildByField("function")
	if fn.IsNull() {
		return nil
	}
	callee := strings.TrimPrefix(fn.Text(), `\`)
	if callee != "define" {
		return nil
	}

	args := n.ChildByField("arguments")
	if args.IsNull() {
		return nil
	}

	var argNodes []phpast.Node
	for i := 0; i < args.NamedChildCount(); i++ {
		arg := args.NamedChild(i)
		if arg.Type() == "argument" && arg.NamedChildCount() > 0 {
			arg = arg.NamedChild(0)
		}
		argNodes = append(argNodes, arg)
	}
	if len(argNodes) < 1 {
		return nil
	}

	nameArg := argNodes[0]
	if scalarLiteralType(nameArg) != "string" {
		return nil
	}
	name := strings.Trim(nameArg.Text(), "'\"")
	name = strings.TrimPrefix(name, `\`)
	if name == "" {
		return nil
	}

	sym := symbol.New(symbol.KindConstant, name, n.Location())
	if len(argNodes) >= 2 {
		valueArg := argNodes[1]
		if t := scalarLiteralType(valueArg); t != "" {
			sym.Value = valueArg.Text()
			sym.Type = t
		}
	}

	p.refs = append(p.refs, symbol.Reference{Kind: symbol.KindConstant, Name: name, Range: nameArg.Location()})
	return sym
}
