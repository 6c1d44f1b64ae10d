package tui

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlightPHP renders text as PHP with ANSI 16m-color escapes. It
// returns the plain text if no PHP lexer is available or tokenising or
// formatting fails; a missing style or formatter is replaced by
// chroma's fallback one.
func highlightPHP(text string) string {
	lex := lexers.Get("php")
	if lex == nil {
		return text
	}
	lex = chroma.Coalesce(lex)

	sty := styles.Get("monokai")
	if sty == nil {
		sty = styles.Fallback
	}
	fmtr := formatters.Get("terminal16m")
	if fmtr == nil {
		fmtr = formatters.Fallback
	}

	iterator, err := lex.Tokenise(nil, text)
	if err != nil {
		return text
	}
	var b strings.Builder
	if err := fmtr.Format(&b, sty, iterator); err != nil {
		return text
	}
	return b.String()
}
