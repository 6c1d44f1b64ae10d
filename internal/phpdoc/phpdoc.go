// Package phpdoc parses PHP doc comments ("/** ... */") into tags:
// @param, @return, @var, @property(-read|-write), @method, and a plain
// description (spec.md section 2, "PHPDoc parser").
package phpdoc

import (
	"regexp"
	"strings"
)

// Tag is one parsed PHPDoc tag line.
type Tag struct {
	Name string // "param", "return", "var", "property", "property-read", "property-write", "method"
	Type string // raw (unresolved) type expression, may be a union like "int|string"
	Var  string // for @param/@var/@property*, the "$name" the tag documents; for @method, the method name; empty for @return
	Rest string // remaining text after type/name (used for @method's signature, or free text)
}

// Doc is a fully parsed doc comment.
type Doc struct {
	Description string
	Tags        []Tag
}

var (
	tagLineRe   = regexp.MustCompile(`(?m)^\s*\*?\s*@(\S+)(.*)$`)
	paramTagRe  = regexp.MustCompile(`^\s*(\S+)?\s*(\$[A-Za-z_][A-Za-z0-9_]*)?\s*(.*)$`)
	methodTagRe = regexp.MustCompile(`^\s*(static\s+)?(\S+)?\s+([A-Za-z_][A-Za-z0-9_]*)\s*\(([^)]*)\)\s*$`)
)

// Parse parses the raw text of a "/** ... */" comment. Malformed tags
// are dropped, never producing an error (spec.md section 7,
// "PHPDoc parse failures: the tag is dropped; no symbol corruption").
func Parse(raw string) Doc {
	body := stripDelimiters(raw)

	var desc []string
	var tags []Tag

	lines := strings.Split(body, "\n")
	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(stripLeadingStar(lines[i]))
		if line == "" {
			i++
			continue
		}
		if !strings.HasPrefix(line, "@") {
			desc = append(desc, line)
			i++
			continue
		}
		tag, ok := parseTagLine(line)
		if ok {
			tags = append(tags, tag)
		}
		i++
	}

	return Doc{Description: strings.TrimSpace(strings.Join(desc, " ")), Tags: tags}
}

func stripDelimiters(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "/**")
	s = strings.TrimPrefix(s, "/*")
	s = strings.TrimSuffix(s, "*/")
	return s
}

func stripLeadingStar(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	trimmed = strings.TrimPrefix(trimmed, "*")
	return trimmed
}

func parseTagLine(line string) (Tag, bool) {
	m := tagLineRe.FindStringSubmatch(line)
	if m == nil {
		return Tag{}, false
	}
	name := strings.ToLower(m[1])
	rest := strings.TrimSpace(m[2])

	switch name {
	case "param", "var", "property", "property-read", "property-write":
		pm := paramTagRe.FindStringSubmatch(rest)
		if pm == nil {
			return Tag{}, false
		}
		return Tag{Name: name, Type: pm[1], Var: pm[2], Rest: strings.TrimSpace(pm[3])}, true
	case "return":
		fields := strings.SplitN(rest, " ", 2)
		typ := ""
		desc := ""
		if len(fields) > 0 {
			typ = fields[0]
		}
		if len(fields) > 1 {
			desc = strings.TrimSpace(fields[1])
		}
		return Tag{Name: name, Type: typ, Rest: desc}, true
	case "method":
		mm := methodTagRe.FindStringSubmatch(rest)
		if mm == nil {
			return Tag{}, false
		}
		static := strings.TrimSpace(mm[1]) != ""
		typ := mm[2]
		methodName := mm[3]
		params := mm[4]
		restText := params
		if static {
			restText = "static " + restText
		}
		return Tag{Name: name, Type: typ, Var: methodName, Rest: restText}, true
	default:
		return Tag{Name: name, Rest: rest}, true
	}
}

// SplitUnion splits a doc-tag type expression on "|", trimming a
// leading "?" nullability marker into an explicit "null" member. This
// mirrors what internal/typestring.Parse does for declared types, but
// is intentionally kept dependency-free here so PHPDoc parsing never
// needs a name resolver to produce raw parts.
func SplitUnion(expr string) []string {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil
	}
	nullable := strings.HasPrefix(expr, "?")
	expr = strings.TrimPrefix(expr, "?")

	var parts []string
	for _, p := range strings.Split(expr, "|") {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	if nullable {
		parts = append(parts, "null")
	}
	return parts
}
