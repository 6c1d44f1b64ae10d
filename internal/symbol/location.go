package symbol

// Location packs a source position the way the teacher's
// rangeFromNode (internal/php/static_analysis.go) does: byte offsets
// plus 1-based lines and 0-based columns, tied to a document URI.
type Location struct {
	URI         string
	StartByte   uint32
	EndByte     uint32
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// Contains reports whether byte offset b falls within the location's
// byte range.
func (l Location) Contains(b uint32) bool {
	return b >= l.StartByte && b < l.EndByte
}
