package encode

import (
	"testing"

	"github.com/signadot/jot/ir"
)

func testNode() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("a"), Val: ir.FromInt(1)},
		{Key: ir.FromString("b"), Val: ir.FromSlice([]*ir.Node{
			ir.FromBool(true), ir.Null(),
		})},
	})
}

func TestEncodeCompact(t *testing.T) {
	got := MustString(testNode(), EncodeCompact())
	want := `{"a":1,"b":[true,null]}`
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEncodePretty(t *testing.T) {
	got := MustString(testNode())
	want := "{\n\t\"a\": 1,\n\t\"b\": [\n\t\ttrue,\n\t\tnull\n\t]\n}"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEncodeKnobs(t *testing.T) {
	kts := []struct {
		name string
		opts []EncodeOption
		want string
	}{
		{
			name: "spaces",
			opts: []EncodeOption{EncodeCompact(), ValueDelim(" ")},
			want: `{"a": 1,"b": [true,null]}`,
		},
		{
			name: "two-space-indent",
			opts: []EncodeOption{EncodeIndent("  "), ObjectDelim("\n"), ArrayDelim("\n"), ValueDelim(" ")},
			want: "{\n  \"a\": 1,\n  \"b\": [\n    true,\n    null\n  ]\n}",
		},
		{
			name: "key-delim",
			opts: []EncodeOption{EncodeCompact(), KeyDelim(" ")},
			want: `{"a" :1,"b" :[true,null]}`,
		},
	}
	for _, kt := range kts {
		got := MustString(testNode(), kt.opts...)
		if got != kt.want {
			t.Errorf("%s: got %q want %q", kt.name, got, kt.want)
		}
	}
}

func TestEncodeScalars(t *testing.T) {
	sts := []struct {
		node *ir.Node
		want string
	}{
		{node: ir.FromString("hi"), want: `"hi"`},
		{node: ir.FromString("a\nb"), want: `"a\nb"`},
		{node: ir.FromInt(-3), want: "-3"},
		{node: ir.FromFloat(1.5), want: "1.5"},
		{node: ir.FromFloat(2000), want: "2000.0"},
		{node: ir.FromBool(false), want: "false"},
		{node: ir.Null(), want: "null"},
		{node: ir.FromKeyVals(nil), want: "{}"},
		{node: ir.FromSlice(nil), want: "[]"},
	}
	for _, st := range sts {
		if got := MustString(st.node); got != st.want {
			t.Errorf("got %q want %q", got, st.want)
		}
	}
}

func TestEncodeBinary(t *testing.T) {
	// "any carnal pleasure" base64 exercises padding stripping
	node := ir.FromBytes([]byte("any carnal pleasure"))
	if got := MustString(node); got != `"YW55IGNhcm5hbCBwbGVhc3VyZQ"` {
		t.Errorf("std: %q", got)
	}
	bin := ir.FromBytes([]byte{0xfb, 0xff})
	if got := MustString(bin, EncodeBase64URL()); got != `"-_8"` {
		t.Errorf("url: %q", got)
	}
	if got := MustString(bin); got != `"+/8"` {
		t.Errorf("std alphabet: %q", got)
	}
}

func TestEncodeForeignTypeSilent(t *testing.T) {
	node := &ir.Node{Type: ir.Type(42)}
	if got := MustString(node); got != "" {
		t.Errorf("got %q, want no output", got)
	}
	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), {Type: ir.Type(42)}})
	if got := MustString(arr, EncodeCompact()); got != "[1,]" {
		t.Errorf("got %q", got)
	}
}
