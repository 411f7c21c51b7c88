package token

// SkipSpace advances off past JSON whitespace (space, tab, CR, LF),
// recording newline offsets in doc for position reporting.
func SkipSpace(d []byte, off int, doc *PosDoc) int {
	for off < len(d) {
		switch d[off] {
		case ' ', '\t', '\r':
		case '\n':
			if doc != nil {
				doc.nl(off)
			}
		default:
			return off
		}
		off++
	}
	return off
}

// Keyword reports whether d begins with kw as a whole word, ie not
// followed by a letter, digit, or underscore.
func Keyword(d []byte, kw string) bool {
	if len(d) < len(kw) {
		return false
	}
	if string(d[:len(kw)]) != kw {
		return false
	}
	if len(d) == len(kw) {
		return true
	}
	c := d[len(kw)]
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return false
	case c >= '0' && c <= '9', c == '_':
		return false
	}
	return true
}
