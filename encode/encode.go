package encode

import (
	"encoding/base64"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/jot/ir"
	"github.com/signadot/jot/token"
)

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		objectIndent: "\t",
		objectDelim:  "\n",
		valueDelim:   " ",
		arrayIndent:  "\t",
		arrayDelim:   "\n",
	}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil {
		return nil
	}
	es.colorType = node.Type
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return encodeString(node, w, es)
	case ir.NumberType:
		return encodeNumber(node, w, es)
	case ir.BoolType:
		return encodeBool(node, w, es)
	case ir.NullType:
		return encodeNull(node, w, es)
	case ir.BinaryType:
		return encodeBinary(node, w, es)
	default:
		// foreign types contribute no output
		return nil
	}
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	n := len(node.Fields)
	if n == 0 {
		return writeString(w, "{}")
	}
	if err := writeString(w, "{"); err != nil {
		return err
	}
	es.depth++
	for i, yField := range node.Fields {
		if err := writeEntryPrefix(w, es.objectDelim, objIndent(es)); err != nil {
			return err
		}
		if err := writeField(w, yField.String, es); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
		es.colorType = ir.ObjectType
		if i < n-1 {
			if err := writeSep(w, ",", es); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeEntryPrefix(w, es.objectDelim, objIndent(es)); err != nil {
		return err
	}
	return writeString(w, "}")
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	n := len(node.Values)
	if n == 0 {
		return writeString(w, "[]")
	}
	if err := writeString(w, "["); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if err := writeEntryPrefix(w, es.arrayDelim, arrIndent(es)); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
		es.colorType = ir.ArrayType
		if i < n-1 {
			if err := writeSep(w, ",", es); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeEntryPrefix(w, es.arrayDelim, arrIndent(es)); err != nil {
		return err
	}
	return writeString(w, "]")
}

func writeField(w io.Writer, f string, es *EncState) error {
	f = token.Quote(f)
	if es.Color != nil {
		f = es.Color(ir.ObjectType, FieldColor, f)
	}
	sep := ":"
	if es.Color != nil {
		sep = es.Color(ir.ObjectType, SepColor, sep)
	}
	return writeString(w, f+es.keyDelim+sep+es.valueDelim)
}

func encodeString(node *ir.Node, w io.Writer, es *EncState) error {
	v := token.Quote(node.String)
	return writeValue(w, ir.StringType, v, es)
}

func encodeNumber(node *ir.Node, w io.Writer, es *EncState) error {
	var v string
	switch {
	case node.Int64 != nil:
		v = strconv.FormatInt(*node.Int64, 10)
	case node.Float64 != nil:
		v = strconv.FormatFloat(*node.Float64, 'g', -1, 64)
		if !strings.ContainsAny(v, ".eE") {
			v += ".0"
		}
	default:
		v = "0"
	}
	return writeValue(w, ir.NumberType, v, es)
}

func encodeBool(node *ir.Node, w io.Writer, es *EncState) error {
	return writeValue(w, ir.BoolType, strconv.FormatBool(node.Bool), es)
}

func encodeNull(_ *ir.Node, w io.Writer, es *EncState) error {
	return writeValue(w, ir.NullType, "null", es)
}

// encodeBinary renders the payload as a quoted unpadded base64 string.
// There is no inverse on the parse side; readers see a plain string.
func encodeBinary(node *ir.Node, w io.Writer, es *EncState) error {
	enc := base64.RawStdEncoding
	if es.base64URL {
		enc = base64.RawURLEncoding
	}
	v := `"` + enc.EncodeToString(node.Bytes) + `"`
	return writeValue(w, ir.BinaryType, v, es)
}

func writeValue(w io.Writer, t ir.Type, v string, es *EncState) error {
	if es.Color != nil {
		v = es.Color(t, ValueColor, v)
	}
	return writeString(w, v)
}

func writeSep(w io.Writer, sep string, es *EncState) error {
	if es.Color != nil {
		sep = es.Color(es.colorType, SepColor, sep)
	}
	return writeString(w, sep)
}

func writeEntryPrefix(w io.Writer, delim, indent string) error {
	if delim == "" && indent == "" {
		return nil
	}
	return writeString(w, delim+indent)
}

func objIndent(es *EncState) string {
	return depthIndent(&es.objIndents, es.objectIndent, es.depth)
}

func arrIndent(es *EncState) string {
	return depthIndent(&es.arrIndents, es.arrayIndent, es.depth)
}

func depthIndent(cache *[]string, unit string, depth int) string {
	if unit == "" {
		return ""
	}
	for len(*cache) <= depth {
		*cache = append(*cache, strings.Repeat(unit, len(*cache)))
	}
	return (*cache)[depth]
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
