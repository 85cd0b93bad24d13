package ir

import (
	"errors"
	"fmt"

	"github.com/signadot/jsondoc/ir/docpath"
)

var (
	ErrInternal = errors.New("internal error")

	ErrPathNotFound     = errors.New("path not found")
	ErrPathOutOfRange   = errors.New("path out of range")
	ErrPathTypeMismatch = errors.New("path type mismatch")
)

// ResolveError reports the segment at which a path stopped resolving.
type ResolveError struct {
	// Path is the path being resolved.
	Path string
	// Index is the position of Segment in the path.
	Index   int
	Segment docpath.Segment
	// At is the absolute path of the node Segment was applied to.
	At  string
	Err error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("path %q: at %s: %v", e.Path, e.At, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}
