// Package jot is a JSON value tree library with a path based query and
// mutation surface.
//
// Parsing builds *ir.Node trees, encode renders them with configurable
// layout, and paths like "a.b[0].c" read or rewrite subtrees. The root
// package wraps these for common text-in, text-out workflows; the
// subpackages expose the full surface.
package jot

import (
	"os"

	"github.com/signadot/jot/encode"
	"github.com/signadot/jot/ir"
	"github.com/signadot/jot/parse"
)

func Parse(d []byte) (*ir.Node, error) {
	return parse.Parse(d)
}

// Minify parses src and re-encodes it in compact wire form.
func Minify(src []byte) ([]byte, error) {
	node, err := parse.Parse(src)
	if err != nil {
		return nil, err
	}
	s, err := encode.String(node, encode.EncodeCompact())
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// Unminify parses src and re-encodes it pretty, tab indented with one
// entry per line.
func Unminify(src []byte) ([]byte, error) {
	node, err := parse.Parse(src)
	if err != nil {
		return nil, err
	}
	s, err := encode.String(node)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func MinifyFile(path string) ([]byte, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Minify(d)
}

func UnminifyFile(path string) ([]byte, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Unminify(d)
}

// Get returns a copy of the value at path in doc.
func Get(doc *ir.Node, path string) (*ir.Node, error) {
	return doc.GetPath(path)
}

// Set returns a document with val installed at path, materializing
// missing containers along the way. doc may share subtrees with the
// result; containers on the path are rebuilt.
func Set(doc *ir.Node, path string, val *ir.Node) (*ir.Node, error) {
	return doc.SetPath(path, val)
}

// Delete returns a document without the value at path. Deleting an
// absent object key is a no-op.
func Delete(doc *ir.Node, path string) (*ir.Node, error) {
	return doc.DeletePath(path)
}

// Append appends val to the array at path.
func Append(doc *ir.Node, path string, val *ir.Node) (*ir.Node, error) {
	return doc.SetPath(path+"[-1]", val)
}

// GetText extracts the value at path from the JSON document doc,
// returning it in compact form.
func GetText(doc []byte, path string) ([]byte, error) {
	node, err := parse.Parse(doc)
	if err != nil {
		return nil, err
	}
	res, err := node.GetPath(path)
	if err != nil {
		return nil, err
	}
	s, err := encode.String(res, encode.EncodeCompact())
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// SetText installs the JSON value at path in the JSON document doc,
// returning the updated document in compact form.
func SetText(doc []byte, path string, value []byte) ([]byte, error) {
	node, err := parse.Parse(doc)
	if err != nil {
		return nil, err
	}
	val, err := parse.Parse(value)
	if err != nil {
		return nil, err
	}
	node, err = node.SetPath(path, val)
	if err != nil {
		return nil, err
	}
	s, err := encode.String(node, encode.EncodeCompact())
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}
