package parse

import (
	"errors"
	"strconv"

	"github.com/signadot/jot/ir"
	"github.com/signadot/jot/token"
)

// Parse parses d as a single JSON document. Anything other than
// whitespace after the root value is an error.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{d: d, doc: token.NewPosDoc(d), opts: pOpts}
	off := token.SkipSpace(d, 0, p.doc)
	res, off, err := p.value(nil, off)
	if err != nil {
		return nil, err
	}
	off = token.SkipSpace(d, off, p.doc)
	if off != len(d) {
		return nil, p.errAt(ErrSyntax, off)
	}
	return res, nil
}

// ParseAt parses the JSON value anchored at off in d and returns it
// together with the offset one past its last byte. It does not demand
// that the value exhaust d.
func ParseAt(d []byte, off int, opts ...ParseOption) (*ir.Node, int, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{d: d, doc: token.NewPosDoc(d), opts: pOpts}
	return p.value(nil, token.SkipSpace(d, off, p.doc))
}

type parser struct {
	d    []byte
	doc  *token.PosDoc
	opts *parseOpts
}

func (p *parser) errAt(sent error, off int) error {
	return &Error{Err: sent, Pos: *p.doc.Pos(off)}
}

func (p *parser) trackPos(node *ir.Node, off int) {
	if p.opts.positions != nil {
		p.opts.positions[node] = p.doc.Pos(off)
	}
}

// value parses the value anchored exactly at off. The anchor byte
// selects the production; nothing backtracks.
func (p *parser) value(parent *ir.Node, off int) (*ir.Node, int, error) {
	if off >= len(p.d) {
		return nil, off, p.errAt(ErrSyntax, off)
	}
	switch c := p.d[off]; {
	case c == '{':
		return p.object(parent, off)
	case c == '[':
		return p.array(parent, off)
	case c == '"':
		return p.string_(parent, off)
	case c == '-' || c >= '0' && c <= '9':
		return p.number(parent, off)
	case c == 't':
		if token.Keyword(p.d[off:], "true") {
			res := ir.FromBool(true)
			res.Parent = parent
			p.trackPos(res, off)
			return res, off + len("true"), nil
		}
	case c == 'f':
		if token.Keyword(p.d[off:], "false") {
			res := ir.FromBool(false)
			res.Parent = parent
			p.trackPos(res, off)
			return res, off + len("false"), nil
		}
	case c == 'n':
		if token.Keyword(p.d[off:], "null") {
			res := ir.Null()
			res.Parent = parent
			p.trackPos(res, off)
			return res, off + len("null"), nil
		}
	}
	return nil, off, p.errAt(ErrSyntax, off)
}

func (p *parser) string_(parent *ir.Node, off int) (*ir.Node, int, error) {
	n, esc, err := token.QuotedSpan(p.d[off:])
	if err != nil {
		return nil, off, p.errAt(err, off)
	}
	var v string
	if esc {
		v = token.QuotedToString(p.d[off : off+n])
	} else {
		v = string(p.d[off+1 : off+n-1])
	}
	res := ir.FromString(v)
	res.Parent = parent
	p.trackPos(res, off)
	return res, off + n, nil
}

func (p *parser) number(parent *ir.Node, off int) (*ir.Node, int, error) {
	n, isFloat, err := token.Number(p.d[off:])
	if err != nil {
		return nil, off, p.errAt(err, off)
	}
	lit := string(p.d[off : off+n])
	var res *ir.Node
	if !isFloat {
		i, err := strconv.ParseInt(lit, 10, 64)
		if err == nil {
			res = ir.FromInt(i)
		}
		// out of int64 range, fall through to float
	}
	if res == nil {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, off, p.errAt(token.ErrNumber, off)
		}
		res = ir.FromFloat(f)
	}
	res.Parent = parent
	p.trackPos(res, off)
	return res, off + n, nil
}

func (p *parser) object(parent *ir.Node, off int) (*ir.Node, int, error) {
	res := &ir.Node{Type: ir.ObjectType, Parent: parent}
	p.trackPos(res, off)
	off++ // '{'
	var kvs []ir.KeyVal
	byKey := map[string]int{}
	for {
		off = token.SkipSpace(p.d, off, p.doc)
		if off >= len(p.d) {
			return nil, off, p.errAt(ErrDelim, off)
		}
		if p.d[off] == '}' {
			if len(kvs) > 0 {
				return nil, off, p.errAt(ErrKey, off)
			}
			return ir.FromKeyValsAt(res, nil), off + 1, nil
		}
		key, next, err := p.memberKey(off)
		if err != nil {
			return nil, off, err
		}
		off = token.SkipSpace(p.d, next, p.doc)
		if off >= len(p.d) || p.d[off] != ':' {
			return nil, off, p.errAt(ErrDelim, off)
		}
		off = token.SkipSpace(p.d, off+1, p.doc)
		val, next, err := p.value(res, off)
		if err != nil {
			return nil, off, p.valueErr(err, off)
		}
		off = next
		if at, dup := byKey[key]; dup {
			// last member wins, at the first member's position
			kvs[at].Val = val
		} else {
			byKey[key] = len(kvs)
			kvs = append(kvs, ir.KeyVal{Key: ir.FromString(key), Val: val})
		}
		off = token.SkipSpace(p.d, off, p.doc)
		if off >= len(p.d) {
			return nil, off, p.errAt(ErrDelim, off)
		}
		switch p.d[off] {
		case ',':
			off++
		case '}':
			return ir.FromKeyValsAt(res, kvs), off + 1, nil
		default:
			return nil, off, p.errAt(ErrDelim, off)
		}
	}
}

func (p *parser) memberKey(off int) (string, int, error) {
	if p.d[off] != '"' {
		return "", off, p.errAt(ErrKey, off)
	}
	n, esc, err := token.QuotedSpan(p.d[off:])
	if err != nil {
		return "", off, p.errAt(err, off)
	}
	if esc {
		return token.QuotedToString(p.d[off : off+n]), off + n, nil
	}
	return string(p.d[off+1 : off+n-1]), off + n, nil
}

func (p *parser) array(parent *ir.Node, off int) (*ir.Node, int, error) {
	res := &ir.Node{Type: ir.ArrayType, Parent: parent}
	p.trackPos(res, off)
	off++ // '['
	var vals []*ir.Node
	for {
		off = token.SkipSpace(p.d, off, p.doc)
		if off >= len(p.d) {
			return nil, off, p.errAt(ErrDelim, off)
		}
		if p.d[off] == ']' {
			if len(vals) > 0 {
				return nil, off, p.errAt(ErrValue, off)
			}
			return fillArray(res, vals), off + 1, nil
		}
		val, next, err := p.value(res, off)
		if err != nil {
			return nil, off, p.valueErr(err, off)
		}
		vals = append(vals, val)
		off = token.SkipSpace(p.d, next, p.doc)
		if off >= len(p.d) {
			return nil, off, p.errAt(ErrDelim, off)
		}
		switch p.d[off] {
		case ',':
			off++
		case ']':
			return fillArray(res, vals), off + 1, nil
		default:
			return nil, off, p.errAt(ErrDelim, off)
		}
	}
}

func fillArray(res *ir.Node, vals []*ir.Node) *ir.Node {
	res.Values = vals
	for i, v := range vals {
		v.Parent = res
		v.ParentIndex = i
	}
	return res
}

// valueErr rewraps a failure to start a value at off as ErrValue, so
// `{"a":}` reports a missing value rather than a syntax error. Errors
// from deeper in the subtree pass through.
func (p *parser) valueErr(err error, off int) error {
	var pe *Error
	if errors.As(err, &pe) && errors.Is(pe.Err, ErrSyntax) && pe.Pos.I == off {
		return p.errAt(ErrValue, off)
	}
	return err
}
