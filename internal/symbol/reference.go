package symbol

// Reference is a single occurrence of a name that denotes a symbol
// (spec.md section 3).
type Reference struct {
	Kind           Kind
	Name           string
	UnresolvedName string
	Range          Location
	Type           string
}

// HasUnresolvedName reports whether resolution rewrote the reference's
// name, meaning the original written form was preserved for a later
// global-namespace fallback lookup (spec.md section 4.3, function and
// constant name transformers).
func (r Reference) HasUnresolvedName() bool {
	return r.UnresolvedName != "" && r.UnresolvedName != r.Name
}
