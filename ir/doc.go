// Package ir provides the generic value tree produced by parsing JSON and
// consumed by encoding and the path engines.
//
// # Node Structure
//
// A Node represents a single JSON value as a recursive tagged union: the
// Type field selects which of the remaining fields carry the value.
//
//   - NullType: no value fields
//   - BoolType: Bool
//   - NumberType: Int64 or Float64, exactly one set. Integral literals
//     without fraction or exponent parse to Int64, all others to Float64.
//   - StringType: String, holding native (unescaped) text
//   - ArrayType: Values, a dense 0-based ordered sequence
//   - ObjectType: Fields[i] is the string key for Values[i]; insertion
//     order is preserved and keys are unique
//   - BinaryType: Bytes, raw payload encoded as an unpadded base64 quoted
//     string on output. The parser never produces BinaryType.
//
// Each node maintains parent bookkeeping (Parent, ParentIndex,
// ParentField) so a node can report its own location with PathString.
//
// # Creating Nodes
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromKeyVals([]ir.KeyVal{{Key: ir.FromString("k"), Val: num}})
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// # Path Operations
//
// GetPath reads a deep location, SetPath and DeletePath rewrite one. All
// three share the path grammar of package ir/jpath: "a.b[2].c", negative
// indices from the end, and multi-indices "[i,j]" for nested arrays.
// SetPath and DeletePath rebuild every container on the walked path rather
// than mutating shared structure; the returned root is the caller's new
// tree.
//
// # Thread Safety
//
// Node trees are exclusively owned by their caller and are not safe for
// concurrent mutation.
package ir
