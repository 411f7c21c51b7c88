// Package encode renders ir nodes as JSON text.
//
// Layout is controlled by six independent knobs: object entry indent,
// object entry delimiter, key to colon delimiter, colon to value
// delimiter, array entry indent, and array entry delimiter. With all
// six empty the output is compact wire form; the defaults produce
// pretty output, tab indented and newline delimited.
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	s, err := encode.String(node)
//	s, err = encode.String(node, encode.EncodeCompact())
package encode
