// Package transform implements the symbol-extraction pass: a
// recursive-descent walk of a PHP syntax tree that dispatches each
// statement and expression node to the transformer that knows its
// shape, producing a hierarchical symbol tree plus a flat reference
// list (spec.md section 4.2, "Transformer Protocol").
package transform

import (
	"context"
	"strconv"
	"strings"

	"github.com/shinyvision/phpindex/internal/phpast"
	"github.com/shinyvision/phpindex/internal/resolve"
	"github.com/shinyvision/phpindex/internal/symbol"
)

// Pass holds the mutable per-document state the walk threads through:
// the name resolver, the last-seen PHPDoc slot, and the flat reference
// list (spec.md section 3, "Lifecycle").
type Pass struct {
	uri      string
	resolver *resolve.Resolver
	doc      docSlot
	refs     []symbol.Reference
	ctx      context.Context
}

// Run walks tree and produces the file's root symbol plus its
// reference list. On context cancellation, both return values are the
// zero value: a cancelled pass discards its partial output (spec.md
// section 5, "Cancellation").
func Run(ctx context.Context, uri string, tree *phpast.Tree) (*symbol.Symbol, []symbol.Reference, error) {
	p := &Pass{uri: uri, resolver: resolve.New()}

	root := tree.Root()
	fileSym := symbol.New(symbol.KindFile, uri, root.Location())
	children := symbol.NewUniqueSymbolCollection()

	p.ctx = ctx
	p.absorbSiblings(children, root.NamedChildren())
	if ctx.Err() != nil {
		return nil, nil, ctx.Err()
	}

	fileSym.Children = children.Snapshot()
	for _, c := range fileSym.Children {
		c.Scope = fileSym.Name
	}
	return fileSym, p.refs, nil
}

// absorbSiblings walks a slice of statement-level nodes that share a
// single enclosing namespace scope, handling both bracketed
// (`namespace Foo { ... }`) and semicolon (`namespace Foo;`) forms. In
// the semicolon form every remaining sibling belongs to the namespace
// even though the grammar does not bracket them (spec.md section 4.3,
// "NamespaceDefinition").
func (p *Pass) absorbSiblings(dst *symbol.UniqueSymbolCollection, nodes []phpast.Node) {
	for i := 0; i < len(nodes); i++ {
		if p.ctx != nil {
			select {
			case <-p.ctx.Done():
				return
			default:
			}
		}
		n := nodes[i]
		if n.Type() == "namespace_definition" || n.Type() == "namespace_declaration" {
			i = p.absorbNamespace(dst, nodes, i)
			continue
		}
		p.absorbStatement(dst, n)
	}
}

// absorbNamespace consumes the namespace_definition node at index i
// (and, for the semicolon form, every remaining sibling) and returns
// the index of the last node it consumed.
func (p *Pass) absorbNamespace(dst *symbol.UniqueSymbolCollection, nodes []phpast.Node, i int) int {
	n := nodes[i]
	nameNode := n.ChildByField("name")
	name := ""
	if !nameNode.IsNull() {
		name = nameNode.Text()
	}
	p.resolver.SetNamespace(name)

	nsSym := symbol.New(symbol.KindNamespace, p.resolver.Namespace(), n.Location())
	nsChildren := symbol.NewUniqueSymbolCollection()

	body := n.ChildByField("body")
	last := i
	if !body.IsNull() {
		p.absorbSiblings(nsChildren, body.NamedChildren())
		// bracketed form's closing "}" is an unnamed token (spec.md
		// section 4.5, "cleared on a close-brace token").
		p.doc.clear()
	} else {
		p.absorbSiblings(nsChildren, nodes[i+1:])
		last = len(nodes) - 1
	}

	nsSym.Children = nsChildren.Snapshot()
	for _, c := range nsSym.Children {
		c.Scope = nsSym.Name
	}
	dst.Append(nsSym)
	return last
}

// absorbStatement dispatches a single non-namespace statement node,
// appending whatever symbols it produces into dst.
func (p *Pass) absorbStatement(dst *symbol.UniqueSymbolCollection, n phpast.Node) {
	if n.Type() == "comment" {
		p.captureComment(n)
		return
	}

	switch n.Type() {
	case "namespace_use_declaration":
		dst.AppendAll(p.transformNamespaceUse(n))
	case "class_declaration", "interface_declaration", "trait_declaration":
		dst.Append(p.transformClassLike(n))
	case "function_definition":
		dst.Append(p.transformFunction(n, nil))
	case "const_declaration":
		dst.AppendAll(p.transformConstDeclaration(n, false))
	case "expression_statement":
		p.absorbExpressionStatement(dst, n)
	case "compound_statement", "declaration_list", "namespace_use_group":
		for i := 0; i < n.NamedChildCount(); i++ {
			p.absorbStatement(dst, n.NamedChild(i))
		}
		// The grammar exposes a brace-delimited body's closing "}" only
		// as an unnamed token, so NamedChildren never yields it; treat
		// finishing this body's statement list as reaching it (spec.md
		// section 4.5, "cleared on a close-brace token").
		p.doc.clear()
	default:
		p.walkForNestedDeclarations(dst, n)
	}
}

// walkForNestedDeclarations descends into statement bodies (if, while,
// try, etc.) purely to surface declarations reachable underneath them
// (variables, nested functions, anonymous classes) without modelling
// control flow itself, which is out of scope (spec.md section 1,
// Non-goals: "evaluating PHP expressions").
func (p *Pass) walkForNestedDeclarations(dst *symbol.UniqueSymbolCollection, n phpast.Node) {
	for i := 0; i < n.NamedChildCount(); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "class_declaration", "interface_declaration", "trait_declaration",
			"function_definition", "namespace_use_declaration", "const_declaration",
			"expression_statement", "comment":
			p.absorbStatement(dst, child)
		case "catch_clause":
			if v := child.ChildByField("name"); !v.IsNull() {
				dst.Append(p.transformCatchVariable(v))
			}
			p.walkForNestedDeclarations(dst, child)
		case "anonymous_class_creation_expression":
			dst.Append(p.transformAnonymousClass(child))
		case "anonymous_function_creation_expression", "arrow_function":
			dst.Append(p.transformFunction(child, nil))
		default:
			p.collectAssignmentTargets(dst, child)
			p.walkForNestedDeclarations(dst, child)
		}
	}
}

func (p *Pass) absorbExpressionStatement(dst *symbol.UniqueSymbolCollection, n phpast.Node) {
	for i := 0; i < n.NamedChildCount(); i++ {
		expr := n.NamedChild(i)
		if sym := p.transformDefineCall(expr); sym != nil {
			dst.Append(sym)
			return
		}
		p.collectAssignmentTargets(dst, expr)
		p.collectAnonymousDeclarations(dst, expr)
		p.collectReferencesInExpression(expr)
	}
}

// collectAnonymousDeclarations surfaces anonymous classes and closures
// wherever they occur in an expression subtree, since the grammar
// nests them under ordinary expressions (e.g. an assignment) rather
// than under statement-level declaration nodes.
func (p *Pass) collectAnonymousDeclarations(dst *symbol.UniqueSymbolCollection, n phpast.Node) {
	if n.IsNull() {
		return
	}
	switch n.Type() {
	case "anonymous_class_creation_expression":
		dst.Append(p.transformAnonymousClass(n))
		return
	case "anonymous_function_creation_expression", "arrow_function":
		dst.Append(p.transformFunction(n, nil))
		return
	}
	for i := 0; i < n.NamedChildCount(); i++ {
		p.collectAnonymousDeclarations(dst, n.NamedChild(i))
	}
}

// collectAssignmentTargets surfaces SimpleVariable declarations at
// assignment targets only (spec.md section 4.3, "SimpleVariable"),
// finding every assignment_expression / augmented_assignment_expression
// in the subtree and, for each, transforming the variable(s) it binds.
// It does not descend into a member/scoped/subscript access on the way
// to a target, so `$o->prop = 1` binds nothing for `$o` (the receiver
// is a use, not a declaration, and is handled instead by
// collectReferencesInExpression). Destructuring targets
// (`[$a, $b] = $x`, `list($a, $b) = $x`) recurse through their element
// list looking for the same shape.
func (p *Pass) collectAssignmentTargets(dst *symbol.UniqueSymbolCollection, n phpast.Node) {
	if n.IsNull() {
		return
	}
	switch n.Type() {
	case "assignment_expression", "augmented_assignment_expression":
		p.collectAssignmentTarget(dst, n.ChildByField("left"))
		p.collectAssignmentTargets(dst, n.ChildByField("right"))
		return
	}
	for i := 0; i < n.NamedChildCount(); i++ {
		p.collectAssignmentTargets(dst, n.NamedChild(i))
	}
}

// collectAssignmentTarget transforms a single assignment left-hand
// side, recursing through destructuring wrappers but stopping at any
// access expression (member, scoped, subscript) since those assign
// into an existing value rather than declaring a variable.
func (p *Pass) collectAssignmentTarget(dst *symbol.UniqueSymbolCollection, n phpast.Node) {
	if n.IsNull() {
		return
	}
	switch n.Type() {
	case "variable_name":
		dst.Append(p.transformSimpleVariable(n))
	case "by_ref":
		for i := 0; i < n.NamedChildCount(); i++ {
			p.collectAssignmentTarget(dst, n.NamedChild(i))
		}
	case "array_creation_expression", "list_literal":
		for i := 0; i < n.NamedChildCount(); i++ {
			p.collectAssignmentTarget(dst, n.NamedChild(i))
		}
	case "array_element_initializer":
		p.collectAssignmentTarget(dst, n.ChildByField("value"))
	}
}

// anonName produces a deterministic synthetic name for an anonymous
// class or closure, stable for the same (document, node-start-offset)
// pair (spec.md section 3, "Invariants").
func (p *Pass) anonName(prefix string, n phpast.Node) string {
	loc := n.Location()
	short := p.uri
	if idx := strings.LastIndexByte(short, '/'); idx >= 0 {
		short = short[idx+1:]
	}
	return prefix + "@" + short + "#" + strconv.Itoa(int(loc.StartByte))
}
