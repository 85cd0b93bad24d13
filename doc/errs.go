package doc

import (
	"errors"

	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/ir/docpath"
)

var (
	ErrNotFound     = ir.ErrPathNotFound
	ErrOutOfRange   = ir.ErrPathOutOfRange
	ErrTypeMismatch = ir.ErrPathTypeMismatch
	ErrSyntax       = docpath.ErrSyntax

	ErrClosed = errors.New("document closed")
	ErrConfig = errors.New("invalid document config")
)
