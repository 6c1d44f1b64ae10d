package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shinyvision/phpindex/internal/symbol"
)

// TestScopeClosure verifies invariant 4 (spec.md section 8): for every
// non-file symbol with children, every child's scope equals the
// parent's fully-qualified name.
func TestScopeClosure(t *testing.T) {
	file, _ := mustRun(t, `<?php
namespace A\B;

class C {
	public $prop;

	public function m($x) {
		$local = 1;
	}
}
`)

	var walk func(sym *symbol.Symbol)
	walk = func(sym *symbol.Symbol) {
		for _, c := range sym.Children {
			require.Equal(t, sym.Name, c.Scope, "child %q of %q has wrong scope", c.Name, sym.Name)
			walk(c)
		}
	}
	walk(file)
}
