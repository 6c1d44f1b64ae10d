package transform

import (
	"strings"

	"github.com/shinyvision/phpindex/internal/phpast"
	"github.com/shinyvision/phpindex/internal/symbol"
)

// collectReferencesInExpression walks an expression subtree recording
// References for names it can classify: object creation and function
// calls, member/scoped access, and class constant access (spec.md
// section 4.3, "MemberAccessExpression / ScopedCallExpression /
// ClassConstantAccessExpression / PropertyAccessExpression /
// MethodCallExpression").
func (p *Pass) collectReferencesInExpression(n phpast.Node) {
	if n.IsNull() {
		return
	}

	switch n.Type() {
	case "object_creation_expression":
		class := n.ChildByField("class")
		if class.IsNull() {
			// The PHP grammar leaves the class operand of `new X()`
			// unfielded; take the first name-family child instead.
			for i := 0; i < n.NamedChildCount(); i++ {
				if c := n.NamedChild(i); isNameNode(c) {
					class = c
					break
				}
			}
		}
		p.resolveOrRecurse(class, symbol.KindClass)
		p.collectReferencesInExpression(n.ChildByField("arguments"))
		return

	case "function_call_expression":
		fn := n.ChildByField("function")
		p.resolveOrRecurse(fn, symbol.KindFunction)
		p.collectReferencesInExpression(n.ChildByField("arguments"))
		return

	case "scoped_call_expression", "class_constant_access_expression", "scoped_property_access_expression":
		scope := n.ChildByField("scope")
		p.resolveOrRecurse(scope, symbol.KindClass)
		p.recordMemberName(n.ChildByField("name"), scopedMemberKind(n.Type()))
		p.collectReferencesInExpression(n.ChildByField("arguments"))
		return

	case "member_access_expression", "nullsafe_member_access_expression":
		p.collectReferencesInExpression(n.ChildByField("object"))
		p.recordPropertyName(n.ChildByField("name"))
		return

	case "member_call_expression":
		p.collectReferencesInExpression(n.ChildByField("object"))
		p.recordMemberName(n.ChildByField("name"), symbol.KindMethod)
		p.collectReferencesInExpression(n.ChildByField("arguments"))
		return

	case "variable_name":
		return
	}

	if isNameNode(n) {
		p.resolveName(n, symbol.KindClass)
		return
	}

	for i := 0; i < n.NamedChildCount(); i++ {
		p.collectReferencesInExpression(n.NamedChild(i))
	}
}

func scopedMemberKind(nodeType string) symbol.Kind {
	switch nodeType {
	case "class_constant_access_expression":
		return symbol.KindClassConstant
	case "scoped_property_access_expression":
		return symbol.KindProperty
	default:
		return symbol.KindMethod
	}
}

func (p *Pass) resolveOrRecurse(n phpast.Node, kind symbol.Kind) {
	if n.IsNull() {
		return
	}
	if isNameNode(n) {
		p.resolveName(n, kind)
		return
	}
	p.collectReferencesInExpression(n)
}

func (p *Pass) recordMemberName(nameNode phpast.Node, kind symbol.Kind) {
	if nameNode.IsNull() {
		return
	}
	p.refs = append(p.refs, symbol.Reference{
		Kind:  kind,
		Name:  nameNode.Text(),
		Range: nameNode.Location(),
	})
}

// recordPropertyName normalises an instance-property reference's name
// to carry a leading "$", matching how property declarations store
// their names (spec.md section 4.3).
func (p *Pass) recordPropertyName(nameNode phpast.Node) {
	if nameNode.IsNull() {
		return
	}
	name := nameNode.Text()
	if !strings.HasPrefix(name, "$") {
		name = "$" + name
	}
	p.refs = append(p.refs, symbol.Reference{
		Kind:  symbol.KindProperty,
		Name:  name,
		Range: nameNode.Location(),
	})
}
