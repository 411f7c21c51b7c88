// Package token provides the low-level scanning primitives shared by the
// JSON parser and the path engines: whitespace skipping, quoted string
// spans and their escape codec, number and keyword recognition, and
// offset-to-line/column position reporting for errors.
//
// All scanners are anchored: they match only at the offset they are given
// and never look past unmatched input.
package token
