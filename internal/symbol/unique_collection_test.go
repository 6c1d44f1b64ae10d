package symbol

import "testing"

func TestUniqueSymbolCollectionDedupesVariables(t *testing.T) {
	c := NewUniqueSymbolCollection()
	c.Append(New(KindVariable, "$a", Location{}))
	c.Append(New(KindVariable, "$a", Location{}))
	c.Append(New(KindVariable, "$b", Location{}))
	c.Append(New(KindVariable, "$this", Location{}))
	c.Append(New(KindVariable, "$GLOBALS", Location{}))

	got := c.Snapshot()
	if len(got) != 2 {
		t.Fatalf("Snapshot() = %d symbols, want 2: %+v", len(got), got)
	}
	if got[0].Name != "$a" || got[1].Name != "$b" {
		t.Errorf("unexpected order/contents: %+v", got)
	}
}

func TestUniqueSymbolCollectionAlwaysAppendsOtherKinds(t *testing.T) {
	c := NewUniqueSymbolCollection()
	c.Append(New(KindClass, "Foo", Location{}))
	c.Append(New(KindClass, "Foo", Location{}))
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (non-variable symbols are never deduped)", c.Len())
	}
}

func TestUniqueSymbolCollectionDedupesParameters(t *testing.T) {
	c := NewUniqueSymbolCollection()
	c.Append(New(KindParameter, "$x", Location{}))
	c.Append(New(KindParameter, "$x", Location{}))
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
}
