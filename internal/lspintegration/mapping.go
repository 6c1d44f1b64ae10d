package lspintegration

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/shinyvision/phpindex/internal/symbol"
	"github.com/shinyvision/phpindex/internal/wsindex"
)

func toLSPRange(loc symbol.Location) protocol.Range {
	startLine := uint32(0)
	if loc.StartLine > 0 {
		startLine = uint32(loc.StartLine - 1)
	}
	endLine := uint32(0)
	if loc.EndLine > 0 {
		endLine = uint32(loc.EndLine - 1)
	}
	return protocol.Range{
		Start: protocol.Position{Line: startLine, Character: uint32(loc.StartColumn)},
		End:   protocol.Position{Line: endLine, Character: uint32(loc.EndColumn)},
	}
}

func toSymbolKind(k symbol.Kind) protocol.SymbolKind {
	switch k {
	case symbol.KindClass, symbol.KindFile:
		return protocol.SymbolKindClass
	case symbol.KindInterface:
		return protocol.SymbolKindInterface
	case symbol.KindTrait:
		return protocol.SymbolKindClass
	case symbol.KindFunction:
		return protocol.SymbolKindFunction
	case symbol.KindMethod:
		return protocol.SymbolKindMethod
	case symbol.KindParameter, symbol.KindVariable:
		return protocol.SymbolKindVariable
	case symbol.KindProperty:
		return protocol.SymbolKindProperty
	case symbol.KindClassConstant, symbol.KindConstant:
		return protocol.SymbolKindConstant
	case symbol.KindNamespace:
		return protocol.SymbolKindNamespace
	default:
		return protocol.SymbolKindVariable
	}
}

func toDocumentSymbols(children []*symbol.Symbol) []protocol.DocumentSymbol {
	out := make([]protocol.DocumentSymbol, 0, len(children))
	for _, c := range children {
		kind := toSymbolKind(c.Kind)
		out = append(out, protocol.DocumentSymbol{
			Name:           c.Name,
			Kind:           kind,
			Range:          toLSPRange(c.Location),
			SelectionRange: toLSPRange(c.Location),
			Children:       toDocumentSymbols(c.Children),
		})
	}
	return out
}

func toSymbolInformation(e wsindex.Entry) protocol.SymbolInformation {
	return protocol.SymbolInformation{
		Name: e.Symbol.Name,
		Kind: toSymbolKind(e.Symbol.Kind),
		Location: protocol.Location{
			URI:   protocol.DocumentUri(e.URI),
			Range: toLSPRange(e.Symbol.Location),
		},
	}
}
