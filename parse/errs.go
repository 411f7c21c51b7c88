package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/jot/token"
)

var (
	// ErrSyntax indicates no JSON value starts at the anchor offset.
	ErrSyntax = errors.New("not JSON syntax")
	// ErrKey indicates an object member without a quoted key.
	ErrKey = errors.New("expected object key")
	// ErrValue indicates a member or element position with no value.
	ErrValue = errors.New("expected value")
	// ErrDelim indicates a missing ':', ',' or closing bracket.
	ErrDelim = errors.New("expected delimiter")
)

// Error wraps a parse or scan sentinel with the position at which it
// occurred.
type Error struct {
	Err error
	Pos token.Pos
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
