package jpath

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrPath is the kind of every malformed path pattern error.
var ErrPath = errors.New("malformed path pattern")

// Path is one segment of a parsed path expression. Exactly one of Key,
// Index, and Dims is set. Dims holds a multi-index of two or more
// entries; a single index is stored in Index.
type Path struct {
	Key   *string
	Index *int
	Dims  []int
	Next  *Path
}

// Parse parses a path expression into a linked segment sequence. The
// result is read-only for the remainder of an operation.
func Parse(path string) (*Path, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrPath)
	}
	root := &Path{}
	if err := parseFrag(path, 0, root); err != nil {
		return nil, err
	}
	return root, nil
}

func parseFrag(path string, off int, parent *Path) error {
	if off >= len(path) {
		return fmt.Errorf("%w: expected segment at offset %d", ErrPath, off)
	}
	var rest int
	switch path[off] {
	case '[':
		ixs, n, err := parseIndexList(path, off)
		if err != nil {
			return err
		}
		if len(ixs) == 1 {
			parent.Index = &ixs[0]
		} else {
			parent.Dims = ixs
		}
		rest = n
	case '.':
		return fmt.Errorf("%w: empty key at offset %d", ErrPath, off)
	default:
		key, n, err := parseKey(path, off)
		if err != nil {
			return err
		}
		parent.Key = &key
		rest = n
	}
	if rest == len(path) {
		return nil
	}
	// a key segment stops only at an unescaped "." or "[", an index
	// segment stops at "]"; either way the next segment starts after
	// an optional dot
	if path[rest] == '.' {
		rest++
	} else if path[rest] != '[' {
		return fmt.Errorf("%w: expected '.' or '[' at offset %d", ErrPath, rest)
	}
	next := &Path{}
	if err := parseFrag(path, rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

// parseKey scans a key segment, resolving backslash escapes to literal
// characters. It stops at the first unescaped "." or "[".
func parseKey(path string, off int) (string, int, error) {
	b := &strings.Builder{}
	i := off
	for i < len(path) {
		c := path[i]
		switch c {
		case '\\':
			if i+1 >= len(path) {
				return "", 0, fmt.Errorf("%w: trailing backslash at offset %d", ErrPath, i)
			}
			b.WriteByte(path[i+1])
			i += 2
		case '.', '[':
			return b.String(), i, nil
		case ']':
			return "", 0, fmt.Errorf("%w: unexpected ']' at offset %d", ErrPath, i)
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String(), i, nil
}

// parseIndexList scans "[" index ("," index)* "]" returning the indices
// and the offset just past the closing bracket. Rank limits are enforced
// by the engines, not here.
func parseIndexList(path string, off int) ([]int, int, error) {
	end := strings.IndexByte(path[off+1:], ']')
	if end == -1 {
		return nil, 0, fmt.Errorf("%w: expected '[' <index> ']' at offset %d", ErrPath, off)
	}
	body := path[off+1 : off+1+end]
	parts := strings.Split(body, ",")
	ixs := make([]int, 0, len(parts))
	for _, part := range parts {
		ix, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, 0, fmt.Errorf("%w: invalid index %q: %v", ErrPath, part, err)
		}
		ixs = append(ixs, ix)
	}
	return ixs, off + end + 2, nil
}

// String returns the canonical path expression for p.
func (p *Path) String() string {
	if p == nil {
		return ""
	}
	buf := bytes.NewBuffer(nil)
	x := p
	for x != nil {
		switch {
		case x.Key != nil:
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			buf.WriteString(EscapeKey(*x.Key))
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		case len(x.Dims) > 0:
			buf.WriteByte('[')
			for i, ix := range x.Dims {
				if i > 0 {
					buf.WriteByte(',')
				}
				buf.WriteString(strconv.Itoa(ix))
			}
			buf.WriteByte(']')
		}
		x = x.Next
	}
	return buf.String()
}

// EscapeKey backslash-escapes the path metacharacters in a key so the
// result parses back to the same key.
func EscapeKey(key string) string {
	if !strings.ContainsAny(key, `.[]\`) {
		return key
	}
	b := &strings.Builder{}
	for i := 0; i < len(key); i++ {
		switch key[i] {
		case '.', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteByte(key[i])
	}
	return b.String()
}

func (p *Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Path) UnmarshalText(d []byte) error {
	pp, err := Parse(string(d))
	if err != nil {
		return err
	}
	*p = *pp
	return nil
}
