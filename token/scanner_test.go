package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func scanAll(t *testing.T, in string) []Token {
	t.Helper()
	s := NewScanner([]byte(in))
	var res []Token
	for {
		tok, err := s.Next()
		if err != nil {
			t.Fatalf("scan %q: %v", in, err)
		}
		res = append(res, tok)
		if tok.Type == TEOF {
			return res
		}
	}
}

func TestScanTypes(t *testing.T) {
	in := ` {"a" : [1, -2.5e3, true,false ,null, 0, 7E+2]}`
	want := []TokenType{
		TLCurl, TString, TColon, TLSquare,
		TInteger, TComma, TFloat, TComma, TTrue, TComma, TFalse, TComma, TNull,
		TComma, TInteger, TComma, TFloat,
		TRSquare, TRCurl, TEOF,
	}
	toks := scanAll(t, in)
	got := make([]TokenType, len(toks))
	for i := range toks {
		got[i] = toks[i].Type
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token types (-want +got):\n%s", diff)
	}
	if toks[1].Pos.I != 2 {
		t.Errorf("string pos: got %d want 2", toks[1].Pos.I)
	}
	if string(toks[6].Bytes) != "-2.5e3" {
		t.Errorf("float bytes: got %q", toks[6].Bytes)
	}
}

func TestScanStrings(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`""`, ""},
		{`"plain"`, "plain"},
		{`"a\nb\tc"`, "a\nb\tc"},
		{`"q\"\\\/"`, `q"\/`},
		{`"\b\f\r"`, "\b\f\r"},
		{`"été"`, "été"},
		{`"😀"`, "😀"},
		{`"\ud800x"`, "�x"},
		{`"\ud800A"`, "�A"},
		{`"\ude00\ud83d"`, "��"},
		{`"日本語"`, "日本語"},
	}
	for _, tt := range tests {
		toks := scanAll(t, tt.in)
		if toks[0].Type != TString {
			t.Errorf("%s: got %s", tt.in, toks[0].Type)
			continue
		}
		if got := toks[0].String(); got != tt.want {
			t.Errorf("%s: got %q want %q", tt.in, got, tt.want)
		}
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
		off int
	}{
		{`"abc`, ErrUnterminated, 0},
		{`"abc\`, ErrUnterminated, 0},
		{`"\u12`, ErrUnterminated, 0},
		{`"a\qb"`, ErrBadEscape, 2},
		{`"\u12G4"`, ErrBadUnicode, 1},
		{"\"a\x01\"", ErrControl, 2},
		{"\"\xff\"", ErrBadUTF8, 1},
		{`01`, ErrNumberLeadingZero, 1},
		{`-`, ErrNumber, 1},
		{`-a`, ErrNumber, 1},
		{`1.`, ErrNumber, 2},
		{`1.e5`, ErrNumber, 2},
		{`1e`, ErrNumber, 2},
		{`1e+`, ErrNumber, 3},
		{`tru`, ErrUnexpected, 0},
		{`nul1`, ErrUnexpected, 0},
		{`  @`, ErrUnexpected, 2},
		{`'a'`, ErrUnexpected, 0},
	}
	for _, tt := range tests {
		s := NewScanner([]byte(tt.in))
		_, err := s.Next()
		if !errors.Is(err, tt.err) {
			t.Errorf("%q: got %v want %v", tt.in, err, tt.err)
			continue
		}
		var te *Error
		if !errors.As(err, &te) {
			t.Errorf("%q: %T is not *Error", tt.in, err)
			continue
		}
		if te.Offset() != tt.off {
			t.Errorf("%q: offset %d want %d", tt.in, te.Offset(), tt.off)
		}
	}
}

func TestScanEOFRepeats(t *testing.T) {
	s := NewScanner([]byte("  "))
	for range 3 {
		tok, err := s.Next()
		if err != nil || tok.Type != TEOF {
			t.Fatalf("got %s %v", tok.Type, err)
		}
	}
}

func TestPosLineCol(t *testing.T) {
	d := NewPosDoc([]byte("ab\ncd\n\nx"))
	tests := []struct {
		off, line, col int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{3, 2, 1},
		{4, 2, 2},
		{6, 3, 1},
		{7, 4, 1},
		{100, 4, 2},
	}
	for _, tt := range tests {
		l, c := d.LineCol(tt.off)
		if l != tt.line || c != tt.col {
			t.Errorf("offset %d: got %d:%d want %d:%d", tt.off, l, c, tt.line, tt.col)
		}
	}
}
