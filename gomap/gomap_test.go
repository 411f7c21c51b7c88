package gomap

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/jot/ir"
)

func TestRoundTrip(t *testing.T) {
	in := map[string]any{
		"name": "alice",
		"age":  int64(30),
		"tags": []any{"x", true, nil},
		"pi":   3.5,
	}
	node, err := FromAny(in)
	if err != nil {
		t.Fatal(err)
	}
	out := ToAny(node)
	if d := cmp.Diff(in, out); d != "" {
		t.Errorf("round trip (-in +out):\n%s", d)
	}
}

func TestFromAnyInts(t *testing.T) {
	node, err := FromAny(int(7))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(node, ir.FromInt(7)) {
		t.Error("int")
	}
	node, err = FromAny(float32(1.5))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(node, ir.FromFloat(1.5)) {
		t.Error("float32")
	}
}

func TestFromAnyUnsupported(t *testing.T) {
	_, err := FromAny(struct{}{})
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("got %v", err)
	}
	_, err = FromAny([]any{make(chan int)})
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("nested: got %v", err)
	}
}

func TestToAnyBinary(t *testing.T) {
	v := ToAny(ir.FromBytes([]byte{1, 2}))
	b, ok := v.([]byte)
	if !ok || len(b) != 2 {
		t.Errorf("got %T", v)
	}
}
