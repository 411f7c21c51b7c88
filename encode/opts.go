package encode

import "github.com/signadot/jot/ir"

type EncState struct {
	depth int

	objectIndent string
	objectDelim  string
	keyDelim     string
	valueDelim   string
	arrayIndent  string
	arrayDelim   string

	base64URL bool

	// per depth indent cache, the same depth recurs across siblings
	objIndents []string
	arrIndents []string

	colorType ir.Type
	Color     func(ir.Type, ColorAttr, string) string
}

type EncodeOption func(*EncState)

// EncodeCompact clears all six layout knobs, producing wire form with
// no whitespace outside of string values.
func EncodeCompact() EncodeOption {
	return func(es *EncState) {
		es.objectIndent = ""
		es.objectDelim = ""
		es.keyDelim = ""
		es.valueDelim = ""
		es.arrayIndent = ""
		es.arrayDelim = ""
	}
}

// EncodeIndent sets both the object and array entry indents.
func EncodeIndent(v string) EncodeOption {
	return func(es *EncState) {
		es.objectIndent = v
		es.arrayIndent = v
	}
}

func ObjectIndent(v string) EncodeOption {
	return func(es *EncState) { es.objectIndent = v }
}
func ObjectDelim(v string) EncodeOption {
	return func(es *EncState) { es.objectDelim = v }
}
func KeyDelim(v string) EncodeOption {
	return func(es *EncState) { es.keyDelim = v }
}
func ValueDelim(v string) EncodeOption {
	return func(es *EncState) { es.valueDelim = v }
}
func ArrayIndent(v string) EncodeOption {
	return func(es *EncState) { es.arrayIndent = v }
}
func ArrayDelim(v string) EncodeOption {
	return func(es *EncState) { es.arrayDelim = v }
}

// EncodeBase64URL makes binary nodes render in the URL safe base64
// alphabet instead of the standard one.
func EncodeBase64URL() EncodeOption {
	return func(es *EncState) { es.base64URL = true }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}
