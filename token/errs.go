package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpected        = errors.New("unexpected token")
	ErrEOF               = errors.New("unexpected end of input")
	ErrUnterminated      = errors.New("unterminated string")
	ErrBadUTF8           = errors.New("bad utf8")
	ErrBadEscape         = errors.New("invalid escape")
	ErrBadUnicode        = errors.New("invalid unicode escape")
	ErrControl           = errors.New("control character in string")
	ErrNumber            = errors.New("invalid number")
	ErrNumberLeadingZero = errors.New("invalid number: leading zero")
	ErrNumberRange       = errors.New("number out of range")
)

// Error is a scan or parse failure at a position in the input.
type Error struct {
	Err    error
	Detail string
	Pos    Pos
}

func NewError(e error, p Pos, detail string) *Error {
	return &Error{Err: e, Pos: p, Detail: detail}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Offset is the byte offset of the failure.
func (e *Error) Offset() int {
	return e.Pos.I
}

// Reason is the human readable description without position information.
func (e *Error) Reason() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Detail
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Reason(), e.Pos.String())
}

func UnexpectedErr(what string, p Pos) error {
	return NewError(ErrUnexpected, p, what)
}

func ExpectedErr(what string, t *Token, p Pos) error {
	if t.Type == TEOF {
		return NewError(ErrEOF, p, "expected "+what)
	}
	return NewError(ErrUnexpected, p, fmt.Sprintf("expected %s, got %s", what, t.Describe()))
}
