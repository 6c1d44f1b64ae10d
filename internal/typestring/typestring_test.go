package typestring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shinyvision/phpindex/internal/resolve"
	"github.com/shinyvision/phpindex/internal/symbol"
)

func TestParseUnion(t *testing.T) {
	require.Equal(t, []string{"int", "string"}, Parse("int|string"))
}

func TestParseNullable(t *testing.T) {
	require.Equal(t, []string{"Foo", "null"}, Parse("?Foo"))
}

func TestParseIntersection(t *testing.T) {
	require.Equal(t, []string{"Countable", "Traversable"}, Parse("Countable&Traversable"))
}

func TestResolveUsesNamespaceAndAliases(t *testing.T) {
	r := resolve.New()
	r.SetNamespace("App")
	r.AddUseRule("Bar", `Vendor\Bar`, symbol.KindClass)

	got := ResolveExpr(r, "Bar")
	require.Equal(t, []string{`Vendor\Bar`}, got)
}

func TestResolveFullyQualifiedUnchanged(t *testing.T) {
	r := resolve.New()
	r.SetNamespace("App")
	got := ResolveExpr(r, `\Vendor\Baz`)
	require.Equal(t, []string{`Vendor\Baz`}, got)
}

func TestResolveReservedWordLowercased(t *testing.T) {
	r := resolve.New()
	got := ResolveExpr(r, "INT")
	require.Equal(t, []string{"int"}, got)
}

func TestJoinOrdersNullLast(t *testing.T) {
	require.Equal(t, "Foo|null", Join([]string{"null", "Foo"}))
}
