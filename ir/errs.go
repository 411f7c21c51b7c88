package ir

import (
	"errors"

	"github.com/signadot/jot/ir/jpath"
)

var (
	// ErrPath wraps malformed path patterns, see jpath.ErrPath.
	ErrPath = jpath.ErrPath

	ErrNotObject   = errors.New("key access on non-object")
	ErrMissingKey  = errors.New("missing key")
	ErrNotArray    = errors.New("index access on non-array")
	ErrIndexRange  = errors.New("index out of range")
	ErrDimMismatch = errors.New("dimensionality mismatch")
	ErrDims        = errors.New("unsupported dimensionality")
	ErrDeleteIndex = errors.New("invalid index for delete")
)
