package parse

import (
	"errors"

	"github.com/signadot/jsondoc/token"
)

// Error is the error type of every parse failure. It wraps one of the
// sentinels below or one of the token package sentinels.
type Error = token.Error

var (
	ErrTrailing = errors.New("trailing data after document")
	ErrTooDeep  = errors.New("nesting too deep")
)
