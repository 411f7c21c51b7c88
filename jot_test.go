package jot

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/jot/ir"
)

var sampleDoc = []byte(`{
	"name": "alice",
	"age": 30,
	"tags": ["x", "y"],
	"grid": [[1, 2], [3, 4]]
}`)

func TestMinifyUnminifyRoundTrip(t *testing.T) {
	minified, err := Minify(sampleDoc)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"name":"alice","age":30,"tags":["x","y"],"grid":[[1,2],[3,4]]}`
	if d := cmp.Diff(want, string(minified)); d != "" {
		t.Errorf("minify (-want +got):\n%s", d)
	}
	// minify is idempotent
	again, err := Minify(minified)
	if err != nil {
		t.Fatal(err)
	}
	if string(again) != string(minified) {
		t.Error("minify not idempotent")
	}
	// formatting does not affect the parsed value
	pretty, err := Unminify(minified)
	if err != nil {
		t.Fatal(err)
	}
	a, err := Parse(minified)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse(pretty)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(a, b) {
		t.Error("pretty and compact forms parse differently")
	}
}

func TestGetSetDelete(t *testing.T) {
	doc, err := Parse(sampleDoc)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Get(doc, "grid[1,0]")
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(got, ir.FromInt(3)) {
		t.Errorf("grid[1,0]: %v", got)
	}
	doc, err = Set(doc, "tags[-1]", ir.FromString("z"))
	if err != nil {
		t.Fatal(err)
	}
	doc, err = Append(doc, "tags", ir.FromString("w"))
	if err != nil {
		t.Fatal(err)
	}
	tags := ir.Get(doc, "tags")
	if len(tags.Values) != 4 {
		t.Fatalf("tags len %d", len(tags.Values))
	}
	doc, err = Delete(doc, "tags[0]")
	if err != nil {
		t.Fatal(err)
	}
	got, err = Get(doc, "tags[0]")
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(got, ir.FromString("y")) {
		t.Errorf("tags[0] after delete: %v", got)
	}
}

func TestText(t *testing.T) {
	got, err := GetText(sampleDoc, "tags")
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(`["x","y"]`, string(got)); d != "" {
		t.Errorf("GetText (-want +got):\n%s", d)
	}
	doc, err := SetText(sampleDoc, "age", []byte("31"))
	if err != nil {
		t.Fatal(err)
	}
	got, err = GetText(doc, "age")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "31" {
		t.Errorf("age: %s", got)
	}
}

func TestArrayOrder(t *testing.T) {
	doc, err := Parse([]byte("[1, 2, 3]"))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Values) != 3 {
		t.Fatalf("len %d", len(doc.Values))
	}
	for i, v := range doc.Values {
		if !ir.Equal(v, ir.FromInt(int64(i+1))) {
			t.Errorf("element %d out of order", i)
		}
	}
	last, err := Get(doc, "[-1]")
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(last, ir.FromInt(3)) {
		t.Errorf("[-1]: %v", last)
	}
}

func TestDecodeBinary(t *testing.T) {
	node, err := DecodeBinary("YW55", false)
	if err != nil {
		t.Fatal(err)
	}
	if string(node.Bytes) != "any" {
		t.Errorf("bytes: %q", node.Bytes)
	}
	// padded input is accepted
	node, err = DecodeBinary("YQ==", false)
	if err != nil {
		t.Fatal(err)
	}
	if string(node.Bytes) != "a" {
		t.Errorf("bytes: %q", node.Bytes)
	}
	if _, err := DecodeBinary("-_8", true); err != nil {
		t.Errorf("url safe: %v", err)
	}
}
