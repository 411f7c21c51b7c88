package ir

import (
	"fmt"
	"slices"

	"github.com/signadot/jot/ir/jpath"
)

// SetPath assigns val at the location path addresses under node and
// returns the rebuilt root. Missing structure along the path is
// materialized: a Key segment makes an object level, an Index segment an
// array level, and a pre-existing value of the wrong kind at a level is
// discarded wholesale. Arrays grow (null-padded) as needed; index -1
// appends after the current last element and indices <= -2 resolve
// against the current length before the write.
//
// Every container on the walked path is reconstructed rather than
// mutated, so trees sharing structure with node are unaffected.
func (node *Node) SetPath(path string, val *Node) (*Node, error) {
	p, err := parseWritePath(path)
	if err != nil {
		return nil, err
	}
	if val == nil {
		val = Null()
	}
	return upsert(node, p, val)
}

// DeletePath removes the entry path addresses under node and returns the
// rebuilt root. Deleting an absent object key is a no-op; deleting an
// out-of-range array index is an error. Array deletion shifts every
// later element left by one, preserving contiguity.
func (node *Node) DeletePath(path string) (*Node, error) {
	p, err := parseWritePath(path)
	if err != nil {
		return nil, err
	}
	return upsert(node, p, nil)
}

// parseWritePath tokenizes path and rewrites multi-index segments into
// chains of single indices: the mutate engine sees one array level per
// rank.
func parseWritePath(path string) (*jpath.Path, error) {
	p, err := jpath.Parse(path)
	if err != nil {
		return nil, err
	}
	root := &jpath.Path{}
	dst := root
	first := true
	link := func() *jpath.Path {
		if first {
			first = false
			return dst
		}
		dst.Next = &jpath.Path{}
		dst = dst.Next
		return dst
	}
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Key != nil:
			link().Key = x.Key
		case x.Index != nil:
			link().Index = x.Index
		default:
			if len(x.Dims) > 3 {
				return nil, fmt.Errorf("%w: %d dimensions", ErrDims, len(x.Dims))
			}
			for i := range x.Dims {
				link().Index = &x.Dims[i]
			}
		}
	}
	return root, nil
}

// upsert is the single recursive mutate procedure. A nil val is the
// delete sentinel: recursion bottoming out past the last segment returns
// it upward, and the parent level removes the addressed entry when it
// sees it. Otherwise the returned value is assigned at the resolved
// location. Each level returns a freshly built container the caller
// re-installs into its own parent.
func upsert(node *Node, p *jpath.Path, val *Node) (*Node, error) {
	if p == nil {
		return val, nil
	}
	if p.Key != nil {
		return upsertField(node, p, val)
	}
	return upsertIndex(node, p, val)
}

func upsertField(node *Node, p *jpath.Path, val *Node) (*Node, error) {
	key := *p.Key
	var kvs []KeyVal
	if node != nil && node.Type == ObjectType {
		kvs = make([]KeyVal, 0, len(node.Fields)+1)
		for i := range node.Fields {
			kvs = append(kvs, KeyVal{Key: node.Fields[i], Val: node.Values[i]})
		}
	}
	// anything but an object here is discarded wholesale
	fi := -1
	for i := range kvs {
		if kvs[i].Key.String == key {
			fi = i
			break
		}
	}
	var child *Node
	if fi >= 0 {
		child = kvs[fi].Val
	}
	res, err := upsert(child, p.Next, val)
	if err != nil {
		return nil, err
	}
	switch {
	case res == nil:
		if fi >= 0 {
			kvs = slices.Delete(kvs, fi, fi+1)
		}
	case fi >= 0:
		kvs[fi].Val = res
	default:
		kvs = append(kvs, KeyVal{Key: FromString(key), Val: res})
	}
	return FromKeyVals(kvs), nil
}

func upsertIndex(node *Node, p *jpath.Path, val *Node) (*Node, error) {
	del := val == nil
	var vals []*Node
	if node != nil && node.Type == ArrayType {
		vals = slices.Clone(node.Values)
	}
	n := len(vals)
	ix := *p.Index
	if del {
		// deletion resolves like a read and never grows
		if ix < 0 {
			ix += n
		}
		if ix < 0 || ix >= n {
			return nil, fmt.Errorf("%w: %d (len %d)", ErrDeleteIndex, *p.Index, n)
		}
	} else {
		// -1 appends, -2 is the current last element
		if ix < 0 {
			ix = n + ix + 1
		}
		if ix < 0 {
			return nil, fmt.Errorf("%w: %d (len %d)", ErrIndexRange, *p.Index, n)
		}
		for len(vals) <= ix {
			vals = append(vals, Null())
		}
	}
	var child *Node
	if ix < n {
		child = vals[ix]
	}
	res, err := upsert(child, p.Next, val)
	if err != nil {
		return nil, err
	}
	if res == nil {
		vals = slices.Delete(vals, ix, ix+1)
	} else {
		vals[ix] = res
	}
	return FromSlice(vals), nil
}
