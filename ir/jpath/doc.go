// Package jpath parses compact path expressions addressing locations in
// an ir.Node tree.
//
// Grammar:
//
//	path    = segment ( "." segment )*
//	segment = key | "[" index ( "," index ){0,2} "]"
//
// A key is bare text; a backslash escapes any following character,
// including ".", "[", and "]". An index is a signed integer; negative
// indices count from the end of the array. A bracket group with two or
// three indices addresses a cell of a nested (multi-dimensional) array.
//
// A path string is tokenized once into an immutable linked sequence of
// Path segments which both the read and the mutate engines then share.
package jpath
