package ir

import (
	"fmt"

	"github.com/signadot/jot/ir/jpath"
)

// GetPath navigates the tree under node using a path expression and
// returns a clone of the addressed value.
//
// Example:
//
//	root.GetPath("a.b[2]") returns element 2 of the array at field "b"
//	of the object at field "a".
//
// Negative indices count from the end ("[-1]" is the last element).
// Multi-indices ("[i,j]", "[i,j,k]") address cells of nested arrays of
// matching rank.
func (node *Node) GetPath(path string) (*Node, error) {
	p, err := jpath.Parse(path)
	if err != nil {
		return nil, err
	}
	return node.getPath(p)
}

func (node *Node) getPath(p *jpath.Path) (*Node, error) {
	res := node
	for p != nil {
		switch {
		case p.Key != nil:
			if res.Type != ObjectType {
				return nil, fmt.Errorf("%w: %s at %q", ErrNotObject, res.Type, *p.Key)
			}
			v := Get(res, *p.Key)
			if v == nil {
				return nil, fmt.Errorf("%w: %q", ErrMissingKey, *p.Key)
			}
			res = v
		case p.Index != nil:
			v, err := arrayAt(res, *p.Index)
			if err != nil {
				return nil, err
			}
			res = v
		default:
			v, err := arrayCell(res, p.Dims)
			if err != nil {
				return nil, err
			}
			res = v
		}
		p = p.Next
	}
	return res.Clone(), nil
}

func arrayAt(y *Node, ix int) (*Node, error) {
	if y.Type != ArrayType {
		return nil, fmt.Errorf("%w: %s at [%d]", ErrNotArray, y.Type, ix)
	}
	n := len(y.Values)
	i := ix
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return nil, fmt.Errorf("%w: %d (len %d)", ErrIndexRange, ix, n)
	}
	return y.Values[i], nil
}

// arrayCell resolves a multi-index against a nested array, one rank per
// index. The addressed array must actually have the rank the index
// claims.
func arrayCell(y *Node, dims []int) (*Node, error) {
	if len(dims) > 3 {
		return nil, fmt.Errorf("%w: %d dimensions", ErrDims, len(dims))
	}
	res := y
	for di, ix := range dims {
		if res.Type != ArrayType {
			if di == 0 {
				return nil, fmt.Errorf("%w: %s at [%d]", ErrNotArray, res.Type, ix)
			}
			return nil, fmt.Errorf("%w: %s at dimension %d", ErrDimMismatch, res.Type, di)
		}
		v, err := arrayAt(res, ix)
		if err != nil {
			return nil, err
		}
		res = v
	}
	return res, nil
}
