package token

import (
	"strconv"
)

type TokenType int

const (
	TEOF TokenType = iota
	TNull
	TTrue
	TFalse
	TInteger
	TFloat
	TString
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TColon
	TComma
)

func (t TokenType) String() string {
	s, ok := map[TokenType]string{
		TEOF:     "TEOF",
		TNull:    "TNull",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TInteger: "TInteger",
		TFloat:   "TFloat",
		TString:  "TString",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TColon:   "TColon",
		TComma:   "TComma",
	}[t]
	if ok {
		return s
	}
	return "<unknown token>"
}

// Token is one lexical element. Bytes aliases the scanned input.
type Token struct {
	Type  TokenType
	Pos   Pos
	Bytes []byte

	// Escaped is set on strings containing at least one backslash escape.
	Escaped bool
}

// String returns the decoded value of a string token and the raw text of
// any other token.
func (t *Token) String() string {
	if t.Type != TString {
		return string(t.Bytes)
	}
	if !t.Escaped {
		return string(t.Bytes[1 : len(t.Bytes)-1])
	}
	return unquote(t.Bytes)
}

// Describe renders the token for error messages.
func (t *Token) Describe() string {
	switch t.Type {
	case TEOF:
		return "end of input"
	case TString:
		if len(t.Bytes) > 32 {
			return "string " + strconv.Quote(string(t.Bytes[:29])+"...")
		}
		return "string " + string(t.Bytes)
	default:
		return strconv.Quote(string(t.Bytes))
	}
}

func (t *Token) IsValue() bool {
	switch t.Type {
	case TNull, TTrue, TFalse, TInteger, TFloat, TString, TLCurl, TLSquare:
		return true
	}
	return false
}
