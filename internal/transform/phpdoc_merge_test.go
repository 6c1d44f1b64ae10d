package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shinyvision/phpindex/internal/symbol"
)

// TestMagicMemberModifierLaw verifies invariant 6 (spec.md section 8).
func TestMagicMemberModifierLaw(t *testing.T) {
	file, _ := mustRun(t, `<?php
/**
 * @property int $x
 * @property-read string $y
 * @property-write bool $z
 * @method static self make()
 */
class K {}
`)

	class := findChild(file, symbol.KindClass, "K")
	require.NotNil(t, class)

	x := findChild(class, symbol.KindProperty, `$x`)
	require.NotNil(t, x)
	require.True(t, x.Modifiers.Has(symbol.ModMagic))
	require.True(t, x.Modifiers.Has(symbol.ModPublic))

	y := findChild(class, symbol.KindProperty, `$y`)
	require.NotNil(t, y)
	require.True(t, y.Modifiers.Has(symbol.ModReadOnly))

	z := findChild(class, symbol.KindProperty, `$z`)
	require.NotNil(t, z)
	require.True(t, z.Modifiers.Has(symbol.ModWriteOnly))

	make := findChild(class, symbol.KindMethod, "make")
	require.NotNil(t, make)
	require.True(t, make.Modifiers.Has(symbol.ModMagic))
	require.True(t, make.Modifiers.Has(symbol.ModStatic))
}
