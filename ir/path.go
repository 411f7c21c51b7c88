package ir

import (
	"strconv"

	"github.com/signadot/jot/ir/jpath"
)

// PathString returns the path expression of this node's position in its
// tree, built from the parent bookkeeping.
//
// Examples:
//   - root node → ""
//   - object field "a" → "a"
//   - array element at index 0 → "[0]"
//   - nested "a[0].b" → "a[0].b"
func (node *Node) PathString() string {
	if node.Parent == nil {
		return ""
	}
	switch node.Parent.Type {
	case ObjectType:
		f := jpath.EscapeKey(node.ParentField)
		prefix := node.Parent.PathString()
		if prefix == "" {
			return f
		}
		return prefix + "." + f
	case ArrayType:
		return node.Parent.PathString() + "[" + strconv.Itoa(node.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}
