package encode

import (
	"bytes"

	"github.com/signadot/jot/ir"
)

func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func MustString(node *ir.Node, opts ...EncodeOption) string {
	res, err := String(node, opts...)
	if err != nil {
		panic(err)
	}
	return res
}
