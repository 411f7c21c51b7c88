package jot

import (
	"github.com/signadot/jot/encode"
	"github.com/signadot/jot/ir"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a line based diff between the pretty encodings of a
// and b.
func Diff(a, b *ir.Node) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	ta := encode.MustString(a) + "\n"
	tb := encode.MustString(b) + "\n"
	ca, cb, lines := dmp.DiffLinesToChars(ta, tb)
	diffs := dmp.DiffMain(ca, cb, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

// DiffText renders Diff with terminal colors on changed lines.
func DiffText(a, b *ir.Node) string {
	dmp := diffmatchpatch.New()
	return dmp.DiffPrettyText(Diff(a, b))
}
