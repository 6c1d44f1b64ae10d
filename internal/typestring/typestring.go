// Package typestring turns PHP's declared and doc-block type
// expressions into resolved type strings, splitting unions and
// intersections and running each member name through the resolver
// (spec.md section 4.2, "Type strings").
package typestring

import (
	"sort"
	"strings"

	"github.com/shinyvision/phpindex/internal/resolve"
	"github.com/shinyvision/phpindex/internal/symbol"
)

// Nullable is the PHP nullability member appended for a leading "?" or
// an explicit "null" union member.
const Nullable = "null"

// Parse splits a raw declared-type expression (as it appears in source,
// e.g. "?Foo\Bar", "int|string", "Countable&Traversable") into its
// member names, in source order, without resolving them.
func Parse(expr string) []string {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil
	}

	nullable := strings.HasPrefix(expr, "?")
	expr = strings.TrimPrefix(expr, "?")
	expr = strings.Trim(expr, "()")

	sep := byte('|')
	if strings.Contains(expr, "&") && !strings.Contains(expr, "|") {
		sep = '&'
	}

	var parts []string
	for _, p := range strings.Split(expr, string(sep)) {
		p = strings.TrimSpace(p)
		p = strings.Trim(p, "()")
		if p != "" {
			parts = append(parts, p)
		}
	}
	if nullable {
		parts = append(parts, Nullable)
	}
	return parts
}

// Resolve resolves each member of a parsed type expression against r,
// using the Class use-table, and returns the resolved names
// deduplicated but in first-seen order. "null" and reserved words are
// not namespace-resolved; reserved words are lowercased.
func Resolve(r *resolve.Resolver, parts []string) []string {
	seen := make(map[string]struct{}, len(parts))
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		resolved := resolveOne(r, p)
		if resolved == "" {
			continue
		}
		if _, ok := seen[resolved]; ok {
			continue
		}
		seen[resolved] = struct{}{}
		out = append(out, resolved)
	}
	return out
}

func resolveOne(r *resolve.Resolver, name string) string {
	if name == "" {
		return ""
	}
	if strings.EqualFold(name, Nullable) {
		return Nullable
	}
	if resolve.IsReserved(name) {
		return strings.ToLower(name)
	}
	if strings.HasPrefix(name, `\`) {
		return strings.TrimPrefix(name, `\`)
	}
	if self, ok := r.ResolveSelfLike(name); ok {
		return self
	}
	return r.ResolveNotFullyQualified(name, symbol.KindClass)
}

// ResolveExpr is a convenience wrapper combining Parse and Resolve.
func ResolveExpr(r *resolve.Resolver, expr string) []string {
	return Resolve(r, Parse(expr))
}

// Join renders a resolved member list back into a single "|"-joined
// display string, with "null" ordered last if present.
func Join(parts []string) string {
	if len(parts) == 0 {
		return ""
	}
	ordered := make([]string, len(parts))
	copy(ordered, parts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i] != Nullable && ordered[j] == Nullable
	})
	return strings.Join(ordered, "|")
}
