// Package nameutil computes acronyms and suffix keys used for fuzzy
// symbol lookup, and splits fully-qualified PHP names into segments.
package nameutil

import (
	"strings"
	"unicode"
)

// StripSigil removes a leading "$" or "_" from a symbol name so word
// boundaries can be computed uniformly across variables, properties and
// plain identifiers.
func StripSigil(name string) string {
	for len(name) > 0 && (name[0] == '$' || name[0] == '_') {
		name = name[1:]
	}
	return name
}

// Acronym derives the short fuzzy-search acronym for a symbol name.
//
// camelCase names contribute one letter per uppercase boundary (and the
// first letter); snake_case and SCREAMING_CASE names contribute the
// first letter of each underscore-delimited part.
func Acronym(name string) string {
	name = StripSigil(name)
	if name == "" {
		return ""
	}

	if strings.Contains(name, "_") {
		var b strings.Builder
		for _, part := range strings.Split(name, "_") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			r := []rune(part)[0]
			b.WriteRune(unicode.ToLower(r))
		}
		return b.String()
	}

	runes := []rune(name)
	var b strings.Builder
	b.WriteRune(unicode.ToLower(runes[0]))
	for _, r := range runes[1:] {
		if unicode.IsUpper(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// SuffixKeys produces every right-suffix of name usable as a fuzzy
// lookup key from the right, lowercased, starting with the full
// (lowercased, sigil included) name.
//
// A boundary starts a new suffix at: the character following any of
// "$", "_" or "\\" (sigils, snake_case parts, namespace segments), and
// at a camelCase transition (lower-to-upper, or an acronym run ending
// before a lowercase letter, e.g. "XMLParser" boundaries before
// "Parser"). This reproduces the worked examples in spec.md section
// 4.6, including "$myProperty" -> ["$myproperty", "myproperty",
// "property"], where stripping the sigil is itself the first boundary.
func SuffixKeys(name string) []string {
	if name == "" {
		return nil
	}
	runes := []rune(name)

	isSep := func(r rune) bool {
		return r == '$' || r == '_' || r == '\\'
	}

	boundaries := make([]int, 0, 4)
	for i := 1; i < len(runes); i++ {
		if isSep(runes[i-1]) {
			boundaries = append(boundaries, i)
			continue
		}
		if !unicode.IsUpper(runes[i]) {
			continue
		}
		prev := runes[i-1]
		switch {
		case unicode.IsLower(prev):
			boundaries = append(boundaries, i)
		case unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			boundaries = append(boundaries, i)
		}
	}

	keys := make([]string, 0, len(boundaries)+1)
	seen := make(map[string]struct{}, len(boundaries)+1)

	add := func(s string) {
		s = strings.ToLower(s)
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		keys = append(keys, s)
	}

	add(string(runes))
	for _, b := range boundaries {
		add(string(runes[b:]))
	}

	return keys
}

// SplitFQN splits a fully-qualified PHP name into its namespace prefix
// (possibly empty) and its final segment.
func SplitFQN(fqn string) (namespace, short string) {
	fqn = strings.TrimPrefix(fqn, `\`)
	idx := strings.LastIndex(fqn, `\`)
	if idx < 0 {
		return "", fqn
	}
	return fqn[:idx], fqn[idx+1:]
}

// JoinFQN joins a namespace and a name with a single backslash,
// tolerating an empty namespace.
func JoinFQN(namespace, name string) string {
	name = strings.TrimPrefix(name, `\`)
	if namespace == "" {
		return name
	}
	return namespace + `\` + name
}
