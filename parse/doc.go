// Package parse builds ir trees from JSON text.
//
// Parsing is a recursive descent anchored at a byte offset: every
// production consumes exactly the bytes of its value and reports the
// offset one past it, so a document can be parsed incrementally or
// embedded in a larger buffer via ParseAt.
package parse
