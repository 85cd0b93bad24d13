package token

import (
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// scanString scans the double quoted string at the start of d. It returns the
// length including both quotes and whether an escape was seen. On error the
// length is the offset of the offending byte.
func scanString(d []byte) (int, bool, error) {
	esc := false
	i := 1
	n := len(d)
	for i < n {
		c := d[i]
		switch {
		case c == '"':
			return i + 1, esc, nil
		case c == '\\':
			esc = true
			if i+1 >= n {
				return i, esc, ErrUnterminated
			}
			switch d[i+1] {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				i += 2
			case 'u':
				if i+6 > n {
					return i, esc, ErrUnterminated
				}
				if !allHex(d[i+2 : i+6]) {
					return i, esc, ErrBadUnicode
				}
				i += 6
			default:
				return i, esc, ErrBadEscape
			}
		case c < 0x20:
			return i, esc, ErrControl
		case c < utf8.RuneSelf:
			i++
		default:
			r, sz := utf8.DecodeRune(d[i:])
			if r == utf8.RuneError && sz == 1 {
				return i, esc, ErrBadUTF8
			}
			i += sz
		}
	}
	return i, esc, ErrUnterminated
}

func allHex(d []byte) bool {
	for _, c := range d {
		if hexVal(c) < 0 {
			return false
		}
	}
	return true
}

func hexVal(c byte) rune {
	switch {
	case '0' <= c && c <= '9':
		return rune(c - '0')
	case 'a' <= c && c <= 'f':
		return rune(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return rune(c-'A') + 10
	}
	return -1
}

func hexRune(d []byte) rune {
	var r rune
	for _, c := range d[:4] {
		r = r<<4 | hexVal(c)
	}
	return r
}

// unquote decodes a string token already validated by scanString.
// Unpaired surrogates decode to U+FFFD.
func unquote(d []byte) string {
	b := &strings.Builder{}
	b.Grow(len(d) - 2)
	end := len(d) - 1
	i := 1
	for i < end {
		c := d[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		switch d[i+1] {
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			r := hexRune(d[i+2 : i+6])
			i += 6
			if utf16.IsSurrogate(r) {
				dec := unicode.ReplacementChar
				if i+6 <= end && d[i] == '\\' && d[i+1] == 'u' {
					dec = utf16.DecodeRune(r, hexRune(d[i+2:i+6]))
					if dec != unicode.ReplacementChar {
						i += 6
					}
				}
				r = dec
			}
			b.WriteRune(r)
			continue
		default:
			// '"', '\\' and '/'
			b.WriteByte(d[i+1])
		}
		i += 2
	}
	return b.String()
}
