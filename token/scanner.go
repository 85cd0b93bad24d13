package token

import (
	"bytes"
	"errors"
	"fmt"
)

// Scanner produces JSON tokens from an in-memory buffer in a single pass.
type Scanner struct {
	d   []byte
	i   int
	doc *PosDoc
}

func NewScanner(d []byte) *Scanner {
	return &Scanner{d: d, doc: NewPosDoc(d)}
}

// Doc returns the position document for the scanned input.
func (s *Scanner) Doc() *PosDoc {
	return s.doc
}

// Offset is the offset of the next unread byte.
func (s *Scanner) Offset() int {
	return s.i
}

func (s *Scanner) Pos(i int) Pos {
	return s.doc.Pos(i)
}

var (
	litNull  = []byte("null")
	litTrue  = []byte("true")
	litFalse = []byte("false")
)

// Next scans the next token. At the end of input it returns a TEOF token
// and a nil error, repeatedly.
func (s *Scanner) Next() (Token, error) {
	s.skipSpace()
	start := s.i
	if start >= len(s.d) {
		return Token{Type: TEOF, Pos: s.doc.Pos(start)}, nil
	}
	switch c := s.d[start]; c {
	case '{':
		return s.punct(TLCurl), nil
	case '}':
		return s.punct(TRCurl), nil
	case '[':
		return s.punct(TLSquare), nil
	case ']':
		return s.punct(TRSquare), nil
	case ':':
		return s.punct(TColon), nil
	case ',':
		return s.punct(TComma), nil
	case '"':
		n, esc, err := scanString(s.d[start:])
		if err != nil {
			if errors.Is(err, ErrUnterminated) {
				return Token{}, NewError(err, s.doc.Pos(start), "string opened here")
			}
			return Token{}, NewError(err, s.doc.Pos(start+n), "")
		}
		s.i += n
		return Token{Type: TString, Pos: s.doc.Pos(start), Bytes: s.d[start:s.i], Escaped: esc}, nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		n, isFloat, err := number(s.d[start:])
		if err != nil {
			return Token{}, NewError(err, s.doc.Pos(start+n), "")
		}
		s.i += n
		tt := TInteger
		if isFloat {
			tt = TFloat
		}
		return Token{Type: tt, Pos: s.doc.Pos(start), Bytes: s.d[start:s.i]}, nil
	case 'n':
		return s.literal(litNull, TNull)
	case 't':
		return s.literal(litTrue, TTrue)
	case 'f':
		return s.literal(litFalse, TFalse)
	default:
		return Token{}, UnexpectedErr(fmt.Sprintf("character %q", rune(c)), s.doc.Pos(start))
	}
}

func (s *Scanner) punct(tt TokenType) Token {
	t := Token{Type: tt, Pos: s.doc.Pos(s.i), Bytes: s.d[s.i : s.i+1]}
	s.i++
	return t
}

func (s *Scanner) literal(lit []byte, tt TokenType) (Token, error) {
	start := s.i
	if !bytes.HasPrefix(s.d[start:], lit) {
		end := start + 1
		for end < len(s.d) && end-start < len(lit) && isIdent(s.d[end]) {
			end++
		}
		return Token{}, UnexpectedErr(fmt.Sprintf("literal %q", s.d[start:end]), s.doc.Pos(start))
	}
	s.i += len(lit)
	return Token{Type: tt, Pos: s.doc.Pos(start), Bytes: s.d[start:s.i]}, nil
}

func isIdent(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func (s *Scanner) skipSpace() {
	for s.i < len(s.d) {
		switch s.d[s.i] {
		case ' ', '\t', '\n', '\r':
			s.i++
		default:
			return
		}
	}
}
