package parse

import (
	"errors"
	"math"
	"testing"

	"github.com/signadot/jot/ir"
	"github.com/signadot/jot/token"
)

func TestParseScalars(t *testing.T) {
	pts := []struct {
		in   string
		want *ir.Node
	}{
		{in: "null", want: ir.Null()},
		{in: "true", want: ir.FromBool(true)},
		{in: "false", want: ir.FromBool(false)},
		{in: "0", want: ir.FromInt(0)},
		{in: "-42", want: ir.FromInt(-42)},
		{in: "1.5", want: ir.FromFloat(1.5)},
		{in: "2e3", want: ir.FromFloat(2000)},
		{in: "-0.25", want: ir.FromFloat(-0.25)},
		{in: `""`, want: ir.FromString("")},
		{in: `"hi"`, want: ir.FromString("hi")},
		{in: `"a\nb"`, want: ir.FromString("a\nb")},
		{in: `"q\"q"`, want: ir.FromString(`q"q`)},
		{in: `"A"`, want: ir.FromString("A")},
		{in: "  true\n", want: ir.FromBool(true)},
	}
	for _, pt := range pts {
		got, err := Parse([]byte(pt.in))
		if err != nil {
			t.Errorf("Parse(%q): %v", pt.in, err)
			continue
		}
		if !ir.Equal(got, pt.want) {
			t.Errorf("Parse(%q): got %v want %v", pt.in, got, pt.want)
		}
	}
}

func TestParseIntOverflowBecomesFloat(t *testing.T) {
	got, err := Parse([]byte("9223372036854775808"))
	if err != nil {
		t.Fatal(err)
	}
	if got.Float64 == nil || got.Int64 != nil {
		t.Fatalf("got %+v, want float", got)
	}
	if *got.Float64 != math.Pow(2, 63) {
		t.Errorf("got %v", *got.Float64)
	}
}

func TestParseContainers(t *testing.T) {
	in := `{"a": 1, "b": [true, null, "x"], "c": {"d": []}}`
	got, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != ir.ObjectType || len(got.Fields) != 3 {
		t.Fatalf("root: %s with %d fields", got.Type, len(got.Fields))
	}
	b := ir.Get(got, "b")
	if b.Type != ir.ArrayType || len(b.Values) != 3 {
		t.Fatalf("b: %s len %d", b.Type, len(b.Values))
	}
	if !ir.Equal(b.Values[2], ir.FromString("x")) {
		t.Error("b[2]")
	}
	if b.Parent != got || b.ParentField != "b" {
		t.Error("parent bookkeeping")
	}
	d := ir.Get(ir.Get(got, "c"), "d")
	if d.Type != ir.ArrayType || len(d.Values) != 0 {
		t.Error("empty nested array")
	}
}

func TestParseDuplicateKeys(t *testing.T) {
	got, err := Parse([]byte(`{"a": 1, "b": 2, "a": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Fields) != 2 {
		t.Fatalf("%d fields", len(got.Fields))
	}
	// last value wins but the member keeps its first position
	if got.Fields[0].String != "a" || !ir.Equal(got.Values[0], ir.FromInt(3)) {
		t.Errorf("field 0: %s=%v", got.Fields[0].String, got.Values[0])
	}
	if got.Fields[1].String != "b" {
		t.Errorf("field 1: %s", got.Fields[1].String)
	}
}

func TestParseErrs(t *testing.T) {
	ets := []struct {
		in string
		e  error
	}{
		{in: "", e: ErrSyntax},
		{in: "tru", e: ErrSyntax},
		{in: "@", e: ErrSyntax},
		{in: "true false", e: ErrSyntax},
		{in: `{"a":}`, e: ErrValue},
		{in: `{"a" 1}`, e: ErrDelim},
		{in: `{1: 2}`, e: ErrKey},
		{in: `{"a": 1,}`, e: ErrKey},
		{in: `{"a": 1`, e: ErrDelim},
		{in: "[1 2]", e: ErrDelim},
		{in: "[1,]", e: ErrValue},
		{in: "[,]", e: ErrValue},
		{in: `"ab`, e: token.ErrUnterminated},
		{in: `"a\qb"`, e: token.ErrBadEscape},
		{in: "01", e: token.ErrNumberLeadingZero},
	}
	for _, et := range ets {
		_, err := Parse([]byte(et.in))
		if err == nil {
			t.Errorf("Parse(%q): expected error", et.in)
			continue
		}
		if !errors.Is(err, et.e) {
			t.Errorf("Parse(%q): got %v want %v", et.in, err, et.e)
		}
	}
}

func TestParseErrValuePosition(t *testing.T) {
	_, err := Parse([]byte(`{"a":}`))
	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("err %T", err)
	}
	if pe.Pos.I != 5 {
		t.Errorf("offset %d, want 5", pe.Pos.I)
	}
}

func TestParseAt(t *testing.T) {
	d := []byte(`  [1, 2] trailing`)
	got, off, err := ParseAt(d, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(got, ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})) {
		t.Error("value")
	}
	if off != 8 {
		t.Errorf("next offset %d, want 8", off)
	}
}

func TestParsePositions(t *testing.T) {
	poss := map[*ir.Node]*token.Pos{}
	got, err := Parse([]byte("{\n  \"a\": 10\n}"), ParsePositions(poss))
	if err != nil {
		t.Fatal(err)
	}
	a := ir.Get(got, "a")
	pos, ok := poss[a]
	if !ok {
		t.Fatal("no position for a")
	}
	line, col := pos.LineCol()
	if line != 1 || col != 7 {
		t.Errorf("line=%d col=%d", line, col)
	}
}
