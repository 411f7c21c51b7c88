package token

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NeedsEscape returns true if quoting v requires escape work, ie if v
// contains a quote, a backslash, or a control character.
func NeedsEscape(v string) bool {
	for _, r := range v {
		switch r {
		case '"', '\\':
			return true
		default:
			if unicode.IsControl(r) {
				return true
			}
		}
	}
	return false
}

// Quote returns the JSON string literal for v, including the surrounding
// double quotes. When v contains nothing needing an escape, it is used
// verbatim; otherwise escapes are substituted in a single pass, backslash
// first so no substitution output is re-escaped.
func Quote(v string) string {
	if !NeedsEscape(v) {
		return `"` + v + `"`
	}
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '\\':
			d = append(d, '\\', '\\')
		case '"':
			d = append(d, '\\', '"')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// QuotedSpan scans a double-quoted string literal starting at d[0]. It
// returns the total length of the literal including both quotes and
// whether the literal contains any backslash. The scan validates escape
// sequences but does not decode them.
func QuotedSpan(d []byte) (n int, esc bool, err error) {
	if len(d) == 0 || d[0] != '"' {
		return 0, false, ErrUnterminated
	}
	escaped := false
	i := 1
	N := len(d)
	for i < N {
		r, sz := utf8.DecodeRune(d[i:])
		i += sz
		switch r {
		case utf8.RuneError:
			return 0, esc, ErrBadUTF8
		case '"':
			if !escaped {
				return i, esc, nil
			}
			escaped = false
		case 'u':
			if escaped {
				if i+4 > N {
					return 0, esc, ErrUnterminated
				}
				if !allHex(d[i : i+4]) {
					return 0, esc, ErrBadUnicode
				}
				i += 4
			}
			escaped = false
		case '/', 'b', 'f', 'n', 'r', 't':
			escaped = false
		case '\\':
			esc = true
			escaped = !escaped
		default:
			if unicode.IsControl(r) {
				return 0, esc, ErrUnicodeControl
			}
			if escaped {
				return 0, esc, ErrBadEscape
			}
			escaped = false
		}
	}
	return 0, esc, ErrUnterminated
}

func allHex(d []byte) bool {
	for _, c := range d {
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}

// Unquote decodes the JSON string literal v (quotes included) to its
// native value.
func Unquote(v string) (string, error) {
	d := []byte(v)
	n, esc, err := QuotedSpan(d)
	if err != nil {
		return "", err
	}
	if n != len(v) {
		return "", ErrUnterminated
	}
	if !esc {
		return v[1 : n-1], nil
	}
	return QuotedToString(d), nil
}

// QuotedToString decodes a validated quoted literal. Decoding is a single
// left-to-right pass; decoded output is never re-examined, so a decoded
// "\n" is not mistaken for a literal newline. Callers must have validated
// d with QuotedSpan first.
func QuotedToString(d []byte) string {
	b := &strings.Builder{}
	i := 1
	esc := false
	for i < len(d) {
		r, sz := utf8.DecodeRune(d[i:])
		i += sz
		switch r {
		case '\\':
			if esc {
				b.WriteByte('\\')
			}
			esc = !esc
		case '"':
			if !esc {
				if i != len(d) {
					panic(fmt.Sprintf("internal string: trailing %q", string(d[i:])))
				}
				return b.String()
			}
			b.WriteByte('"')
			esc = false
		default:
			if !esc {
				b.WriteRune(r)
				continue
			}
			esc = false
			switch r {
			case 't':
				b.WriteByte('\t')
			case 'n':
				b.WriteByte('\n')
			case 'f':
				b.WriteByte('\f')
			case 'r':
				b.WriteByte('\r')
			case '/':
				b.WriteByte('/')
			case 'b':
				b.WriteByte('\b')
			case 'u':
				if len(d[i:]) < 4 {
					b.WriteRune(utf8.RuneError)
					return b.String()
				}
				dst := []byte{0, 0}
				_, err := hex.Decode(dst, d[i:i+4])
				if err != nil {
					b.WriteRune(utf8.RuneError)
					return b.String()
				}
				// one UTF-16 code unit, surrogate halves are not combined
				r := rune(dst[0])<<8 | rune(dst[1])
				b.WriteRune(r)
				i += 4
			default:
				panic(fmt.Sprintf("internal string: escape %q", string(r)))
			}
		}
	}
	return b.String()
}
