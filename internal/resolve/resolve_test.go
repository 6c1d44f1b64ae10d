package resolve

import (
	"testing"

	"github.com/shinyvision/phpindex/internal/symbol"
)

func TestResolveRelative(t *testing.T) {
	r := New()
	r.SetNamespace(`A\B`)
	if got := r.ResolveRelative("C"); got != `A\B\C` {
		t.Errorf("ResolveRelative = %q", got)
	}
}

func TestResolveNotFullyQualifiedUsesAlias(t *testing.T) {
	r := New()
	r.SetNamespace("App")
	r.AddUseRule("B", `Foo\Bar`, symbol.KindClass)

	if got := r.ResolveNotFullyQualified("B", symbol.KindClass); got != `Foo\Bar` {
		t.Errorf("ResolveNotFullyQualified(B) = %q", got)
	}
	if got := r.ResolveNotFullyQualified("Unaliased", symbol.KindClass); got != `App\Unaliased` {
		t.Errorf("ResolveNotFullyQualified(Unaliased) = %q", got)
	}
}

func TestResolveNotFullyQualifiedQualifiedFirstSegment(t *testing.T) {
	r := New()
	r.SetNamespace("App")
	r.AddUseRule("B", `Foo\Bar`, symbol.KindClass)

	if got := r.ResolveNotFullyQualified(`B\Baz`, symbol.KindClass); got != `Foo\Bar\Baz` {
		t.Errorf("ResolveNotFullyQualified(B\\Baz) = %q", got)
	}
}

func TestResolveNotFullyQualifiedReservedWordUnchanged(t *testing.T) {
	r := New()
	r.SetNamespace("App")
	if got := r.ResolveNotFullyQualified("int", symbol.KindClass); got != "int" {
		t.Errorf("reserved word rewritten: %q", got)
	}
}

// Invariant 3 (spec.md section 8): applying the resolver to an
// already fully-qualified name returns it unchanged. A
// FullyQualified-name transformer feeds names here with their leading
// "\" already stripped (spec.md section 4.3), so ResolveNotFullyQualified
// is never invoked for that form; but re-resolving the resulting FQN
// through ResolveRelativeToNamespace with no namespace must still be a
// no-op, which is the idempotence surface Resolver itself owns.
func TestResolutionIdempotence(t *testing.T) {
	r := New()
	fqn := `Foo\Bar\Baz`
	if got := r.ResolveRelativeToNamespace(fqn); got != fqn {
		t.Errorf("ResolveRelativeToNamespace(%q) = %q, want unchanged", fqn, got)
	}
}
