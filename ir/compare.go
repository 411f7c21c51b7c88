package ir

import (
	"bytes"
	"cmp"
	"maps"
	"slices"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case BinaryType:
		return bytes.Compare(a.Bytes, b.Bytes)
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	case NullType:
		return 0
	}
	return 0
}

// Equal reports structural equality: same types, equal scalar values,
// equal key sets with equal values, equal array orders.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String < Binary < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case StringType:
		return 3
	case BinaryType:
		return 4
	case ArrayType:
		return 5
	case ObjectType:
		return 6
	}
	return 7
}

// compareNumbers compares numerically across the Int64/Float64 split, so
// FromInt(1) equals FromFloat(1).
func compareNumbers(a, b *Node) int {
	if a.Int64 != nil && b.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	return cmp.Compare(numFloat(a), numFloat(b))
}

func numFloat(y *Node) float64 {
	if y.Float64 != nil {
		return *y.Float64
	}
	if y.Int64 != nil {
		return float64(*y.Int64)
	}
	return 0
}

func compareArrays(a, b *Node) int {
	n := min(len(a.Values), len(b.Values))
	for i := range n {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Values), len(b.Values))
}

// compareObjects compares by key order after sorting keys, so two objects
// holding the same entries in different insertion orders are equal.
func compareObjects(a, b *Node) int {
	aMap, bMap := ToMap(a), ToMap(b)
	aKeys := sortedKeys(aMap)
	bKeys := sortedKeys(bMap)
	n := min(len(aKeys), len(bKeys))
	for i := range n {
		if c := strings.Compare(aKeys[i], bKeys[i]); c != 0 {
			return c
		}
		if c := Compare(aMap[aKeys[i]], bMap[bKeys[i]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(aKeys), len(bKeys))
}

func sortedKeys(m map[string]*Node) []string {
	return slices.Sorted(maps.Keys(m))
}
