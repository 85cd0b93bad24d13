package docpath

import (
	"errors"
	"fmt"
	"strings"
)

var ErrSyntax = errors.New("path syntax error")

type SyntaxError struct {
	Path   string
	Offset int
	Detail string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s at offset %d in %q", ErrSyntax, e.Detail, e.Offset, e.Path)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// Path is a parsed document path.
type Path struct {
	Absolute bool
	Segments []Segment
}

// Root is the absolute path with no segments.
func Root() Path {
	return Path{Absolute: true}
}

// Parse parses a path string. The empty string and "/" both denote the
// root. A single trailing slash is ignored; inner empty segments are the
// empty key.
//
// Returns a *SyntaxError only for malformed escapes.
func Parse(p string) (Path, error) {
	res := Path{}
	if p == "" {
		res.Absolute = true
		return res, nil
	}
	off := 0
	if p[0] == '/' {
		res.Absolute = true
		off = 1
	}
	var (
		buf     []byte
		escaped bool
	)
	for i := off; i < len(p); i++ {
		c := p[i]
		switch c {
		case '\\':
			if i+1 >= len(p) {
				return Path{}, &SyntaxError{Path: p, Offset: i, Detail: "trailing backslash"}
			}
			switch n := p[i+1]; n {
			case '/', '\\', '.':
				buf = append(buf, n)
				escaped = true
				i++
			default:
				return Path{}, &SyntaxError{Path: p, Offset: i, Detail: fmt.Sprintf("invalid escape %q", p[i:i+2])}
			}
		case '/':
			res.Segments = append(res.Segments, segment(buf, escaped))
			buf = buf[:0]
			escaped = false
		default:
			buf = append(buf, c)
		}
	}
	if len(buf) > 0 || escaped {
		res.Segments = append(res.Segments, segment(buf, escaped))
	}
	return res, nil
}

// MustParse is like Parse but panics on error.
func MustParse(p string) Path {
	res, err := Parse(p)
	if err != nil {
		panic(err)
	}
	return res
}

func segment(d []byte, escaped bool) Segment {
	s := string(d)
	if escaped {
		return Key(s)
	}
	if s == ".." {
		return Parent()
	}
	if i, _, ok := ParseIndex(s); ok {
		return Segment{Kind: IndexSegment, Index: i, Key: s}
	}
	return Key(s)
}

// IsRoot reports whether p always designates the document root.
func (p Path) IsRoot() bool {
	return p.Absolute && len(p.Segments) == 0
}

func (p Path) String() string {
	if p.Absolute {
		return Format(p.Segments)
	}
	return join(p.Segments)
}

// Format renders segments as an absolute path. The root is "/". When the
// last segment is the empty key a trailing slash keeps it from being
// dropped by Parse.
func Format(segs []Segment) string {
	return "/" + join(segs)
}

func join(segs []Segment) string {
	if len(segs) == 0 {
		return ""
	}
	b := &strings.Builder{}
	for i, seg := range segs {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(seg.String())
	}
	if last := segs[len(segs)-1]; last.Kind == KeySegment && last.Key == "" {
		b.WriteByte('/')
	}
	return b.String()
}
