package ir

import "testing"

func TestCompareScalars(t *testing.T) {
	cts := []struct {
		a, b *Node
		want int
	}{
		{a: Null(), b: Null(), want: 0},
		{a: Null(), b: FromBool(false), want: -1},
		{a: FromBool(false), b: FromBool(true), want: -1},
		{a: FromInt(1), b: FromInt(2), want: -1},
		{a: FromInt(1), b: FromFloat(1), want: 0},
		{a: FromFloat(1.5), b: FromInt(1), want: 1},
		{a: FromString("a"), b: FromString("b"), want: -1},
		{a: FromInt(100), b: FromString("0"), want: -1},
		{a: FromBytes([]byte{1}), b: FromBytes([]byte{2}), want: -1},
	}
	for i, ct := range cts {
		if got := Compare(ct.a, ct.b); got != ct.want {
			t.Errorf("case %d: got %d want %d", i, got, ct.want)
		}
		if got := Compare(ct.b, ct.a); got != -ct.want {
			t.Errorf("case %d reversed: got %d want %d", i, got, -ct.want)
		}
	}
}

func TestCompareContainers(t *testing.T) {
	a := FromSlice([]*Node{FromInt(1), FromInt(2)})
	b := FromSlice([]*Node{FromInt(1), FromInt(3)})
	if Compare(a, b) != -1 {
		t.Error("array element order")
	}
	shorter := FromSlice([]*Node{FromInt(1)})
	if Compare(shorter, a) != -1 {
		t.Error("shorter array sorts first")
	}
	if Compare(a, FromKeyVals(nil)) != -1 {
		t.Error("arrays sort before objects")
	}
}

func TestEqualObjectOrderInsensitive(t *testing.T) {
	a := FromKeyVals([]KeyVal{
		{Key: FromString("x"), Val: FromInt(1)},
		{Key: FromString("y"), Val: FromInt(2)},
	})
	b := FromKeyVals([]KeyVal{
		{Key: FromString("y"), Val: FromInt(2)},
		{Key: FromString("x"), Val: FromInt(1)},
	})
	if !Equal(a, b) {
		t.Error("insertion order should not affect equality")
	}
	c, _ := b.SetPath("y", FromInt(3))
	if Equal(a, c) {
		t.Error("differing values compared equal")
	}
}

func TestHashAgreesWithEqual(t *testing.T) {
	a := testTree()
	b := testTree()
	if a.Hash() != b.Hash() {
		t.Error("equal trees hash differently")
	}
	c, _ := b.SetPath("a", FromInt(2))
	if a.Hash() == c.Hash() {
		t.Error("differing trees hash equal")
	}
}
