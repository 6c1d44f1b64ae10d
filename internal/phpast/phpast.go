// Package phpast adapts github.com/alexaandru/go-tree-sitter-bare and
// the PHP grammar from github.com/alexaandru/go-sitter-forest/php into
// the phrase/token view the transformer protocol drives (spec.md
// section 4, "phrase nodes ~ named tree-sitter nodes, tokens ~
// unnamed/leaf nodes").
package phpast

import (
	"context"
	"fmt"

	phpforest "github.com/alexaandru/go-sitter-forest/php"
	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/shinyvision/phpindex/internal/symbol"
)

// Tree owns a parsed PHP syntax tree together with the source it was
// parsed from. Callers must call Close when done to release the
// tree-sitter tree.
type Tree struct {
	URI     string
	Content []byte
	tree    *sitter.Tree
}

// Node is a single tree-sitter node, paired with the source buffer it
// was parsed from so Text and Location can be computed on demand.
type Node struct {
	inner   sitter.Node
	content []byte
	uri     string
}

func newParser() *sitter.Parser {
	parser := sitter.NewParser()
	lang := sitter.NewLanguage(phpforest.GetLanguage())
	_ = parser.SetLanguage(lang)
	return parser
}

// Parse parses PHP source into a Tree. The returned Tree must be
// closed by the caller.
func Parse(ctx context.Context, uri string, content []byte) (*Tree, error) {
	parser := newParser()
	tree, err := parser.ParseString(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("phpast: parse %s: %w", uri, err)
	}
	return &Tree{URI: uri, Content: content, tree: tree}, nil
}

// Close releases the underlying tree-sitter tree.
func (t *Tree) Close() {
	if t.tree != nil {
		t.tree.Close()
	}
}

// Root returns the root node of the tree, normally a "program" phrase.
func (t *Tree) Root() Node {
	return Node{inner: t.tree.RootNode(), content: t.Content, uri: t.URI}
}

// IsNull reports whether the node is the tree-sitter zero value, i.e.
// a missing optional child.
func (n Node) IsNull() bool {
	return n.inner.IsNull()
}

// Type is the tree-sitter grammar node type, e.g. "class_declaration"
// or "\\" for a token.
func (n Node) Type() string {
	return n.inner.Type()
}

// IsPhrase reports whether the node is a named (non-terminal) node, as
// opposed to a token/leaf.
func (n Node) IsPhrase() bool {
	return n.inner.IsNamed()
}

// Text returns the node's source text.
func (n Node) Text() string {
	if n.inner.IsNull() {
		return ""
	}
	return n.inner.Content(n.content)
}

// Location builds a symbol.Location covering this node's span.
func (n Node) Location() symbol.Location {
	if n.inner.IsNull() {
		return symbol.Location{URI: n.uri}
	}
	start := n.inner.StartPoint()
	end := n.inner.EndPoint()
	return symbol.Location{
		URI:         n.uri,
		StartByte:   uint32(n.inner.StartByte()),
		EndByte:     uint32(n.inner.EndByte()),
		StartLine:   int(start.Row) + 1,
		StartColumn: int(start.Column),
		EndLine:     int(end.Row) + 1,
		EndColumn:   int(end.Column),
	}
}

// ChildByField returns the named field child, e.g. "name" or "body".
// The zero Node (IsNull() true) is returned when the field is absent.
func (n Node) ChildByField(field string) Node {
	return n.wrap(n.inner.ChildByFieldName(field))
}

// NamedChildCount returns the number of named (phrase) children.
func (n Node) NamedChildCount() int {
	return int(n.inner.NamedChildCount())
}

// NamedChild returns the i-th named child.
func (n Node) NamedChild(i int) Node {
	return n.wrap(n.inner.NamedChild(uint32(i)))
}

// NamedChildren returns all named children in source order.
func (n Node) NamedChildren() []Node {
	count := n.NamedChildCount()
	out := make([]Node, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, n.NamedChild(i))
	}
	return out
}

// Parent returns the enclosing node.
func (n Node) Parent() Node {
	return n.wrap(n.inner.Parent())
}

func (n Node) wrap(inner sitter.Node) Node {
	return Node{inner: inner, content: n.content, uri: n.uri}
}
