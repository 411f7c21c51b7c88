package jot

import (
	"github.com/signadot/jot/debug"
	"github.com/signadot/jot/encode"
	"github.com/signadot/jot/ir"
	"github.com/signadot/jot/parse"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

// Patch applies an RFC 6902 patch document to doc and returns the
// patched tree. The patch is applied over the compact encoding, so
// numeric values come back canonicalized.
func Patch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	p, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, err
	}
	d, err := encode.String(doc, encode.EncodeCompact())
	if err != nil {
		return nil, err
	}
	res, err := p.Apply([]byte(d))
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("patch: %s -> %s\n", d, string(res))
	}
	return parse.Parse(res)
}

// MergePatch applies an RFC 7386 merge patch document to doc.
func MergePatch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	d, err := encode.String(doc, encode.EncodeCompact())
	if err != nil {
		return nil, err
	}
	res, err := jsonpatch.MergePatch([]byte(d), patch)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("merge patch: %s -> %s\n", d, string(res))
	}
	return parse.Parse(res)
}
