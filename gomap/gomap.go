// Package gomap converts between ir trees and generic Go values, the
// shapes encoding/json produces: map[string]any, []any, and scalars.
package gomap

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/signadot/jot/ir"
)

var ErrUnsupported = errors.New("unsupported go value")

// FromAny builds an ir tree from v. Map keys come out in sorted order;
// use ir.FromKeyVals directly when insertion order matters.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case []byte:
		return ir.FromBytes(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, e := range x {
			node, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			vals[i] = node
		}
		return ir.FromSlice(vals), nil
	case map[string]any:
		kvs := make([]ir.KeyVal, 0, len(x))
		for _, key := range slices.Sorted(maps.Keys(x)) {
			val, err := FromAny(x[key])
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: ir.FromString(key), Val: val})
		}
		return ir.FromKeyVals(kvs), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}

// ToAny converts an ir tree to generic Go values. Integral numbers come
// out as int64, others as float64; binary nodes come out as []byte.
func ToAny(node *ir.Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return node.Bool
	case ir.StringType:
		return node.String
	case ir.BinaryType:
		return node.Bytes
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return int64(0)
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = ToAny(v)
		}
		return res
	case ir.ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			res[f.String] = ToAny(node.Values[i])
		}
		return res
	default:
		return nil
	}
}
