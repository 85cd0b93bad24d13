// Package token provides the JSON scanner used by the document parser.
//
// A [Scanner] walks an input buffer once, producing one [Token] per call to
// [Scanner.Next]. Tokens refer to the input by offset and slice; nothing is
// copied until a string token is decoded with [Token.String].
//
// Errors are reported as [*Error] values which carry a [Pos] and wrap one of
// the sentinel errors in this package, so callers can use errors.Is to
// classify them.
package token
