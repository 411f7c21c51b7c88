package jot

import (
	"encoding/base64"
	"strings"

	"github.com/signadot/jot/ir"
)

// DecodeBinary decodes base64 text, padded or not, into a binary node.
// The inverse of encoding an ir.FromBytes node.
func DecodeBinary(v string, urlSafe bool) (*ir.Node, error) {
	enc := base64.RawStdEncoding
	if urlSafe {
		enc = base64.RawURLEncoding
	}
	d, err := enc.DecodeString(strings.TrimRight(v, "="))
	if err != nil {
		return nil, err
	}
	return ir.FromBytes(d), nil
}
