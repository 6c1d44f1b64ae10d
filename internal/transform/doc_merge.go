package transform

import (
	"strings"

	"github.com/shinyvision/phpindex/internal/phpast"
	"github.com/shinyvision/phpindex/internal/phpdoc"
	"github.com/shinyvision/phpindex/internal/symbol"
	"github.com/shinyvision/phpindex/internal/typestring"
)

// docSlot is the pass's single-slot "last seen" PHPDoc cache (spec.md
// section 4.5): a `/** ... */` comment is held here until the next
// declaration transformer claims it, or it is cleared by a close-brace
// token. Only doc comments (starting with "/**") are ever stored; a
// plain "//" or "/*" comment clears whatever was pending, mirroring
// the observed behaviour that non-doc comments break the association
// between a doc block and a following declaration.
type docSlot struct {
	pending *phpdoc.Doc
}

func (d *docSlot) capture(raw string) {
	if !strings.HasPrefix(raw, "/**") {
		d.pending = nil
		return
	}
	parsed := phpdoc.Parse(raw)
	d.pending = &parsed
}

func (d *docSlot) consume() *phpdoc.Doc {
	doc := d.pending
	d.pending = nil
	return doc
}

func (d *docSlot) clear() {
	d.pending = nil
}

func (p *Pass) captureComment(n phpast.Node) {
	p.doc.capture(n.Text())
}

// attachMagicMembers synthesises child symbols for @property*/@method
// tags on a class/interface/trait's doc comment (spec.md section 4.5,
// "PHPDoc Merging"). Every synthesised symbol carries Magic and Public;
// property-read/write additionally set ReadOnly/WriteOnly, and a
// `@method static` tag sets Static.
func attachMagicMembers(children *symbol.UniqueSymbolCollection, doc *phpdoc.Doc, p *Pass) {
	for _, tag := range doc.Tags {
		switch tag.Name {
		case "property", "property-read", "property-write":
			children.Append(magicPropertySymbol(tag, p))
		case "method":
			children.Append(magicMethodSymbol(tag, p))
		}
	}
}

func magicPropertySymbol(tag phpdoc.Tag, p *Pass) *symbol.Symbol {
	sym := symbol.New(symbol.KindProperty, tag.Var, symbol.Location{})
	sym.Modifiers = symbol.ModMagic | symbol.ModPublic
	switch tag.Name {
	case "property-read":
		sym.Modifiers |= symbol.ModReadOnly
	case "property-write":
		sym.Modifiers |= symbol.ModWriteOnly
	}
	if tag.Type != "" {
		sym.Type = typestring.Join(typestring.ResolveExpr(p.resolver, tag.Type))
	}
	return sym
}

func magicMethodSymbol(tag phpdoc.Tag, p *Pass) *symbol.Symbol {
	sym := symbol.New(symbol.KindMethod, tag.Var, symbol.Location{})
	sym.Modifiers = symbol.ModMagic | symbol.ModPublic
	if strings.HasPrefix(tag.Rest, "static") {
		sym.Modifiers |= symbol.ModStatic
	}
	if tag.Type != "" {
		sym.Type = typestring.Join(typestring.ResolveExpr(p.resolver, tag.Type))
	}
	return sym
}
