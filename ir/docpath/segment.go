package docpath

import (
	"strconv"
	"strings"
)

type Kind int

const (
	KeySegment Kind = iota
	IndexSegment
	ParentSegment
)

func (k Kind) String() string {
	switch k {
	case KeySegment:
		return "key"
	case IndexSegment:
		return "index"
	case ParentSegment:
		return "parent"
	}
	return "<unknown segment kind>"
}

// Segment is one step of a path. Index segments keep their source text in
// Key so they can address object fields named by digits.
type Segment struct {
	Kind  Kind
	Key   string
	Index int
}

func Key(k string) Segment {
	return Segment{Kind: KeySegment, Key: k}
}

func Index(i int) Segment {
	return Segment{Kind: IndexSegment, Index: i, Key: strconv.Itoa(i)}
}

func Parent() Segment {
	return Segment{Kind: ParentSegment, Key: ".."}
}

// String returns the segment as it appears in a path.
func (s Segment) String() string {
	switch s.Kind {
	case IndexSegment:
		if s.Key != "" {
			return s.Key
		}
		return strconv.Itoa(s.Index)
	case ParentSegment:
		return ".."
	}
	return Escape(s.Key)
}

// Escape escapes a key so it parses back as a single key segment.
func Escape(key string) string {
	if key == ".." {
		return `\..`
	}
	if !strings.ContainsAny(key, `/\`) {
		return key
	}
	b := &strings.Builder{}
	b.Grow(len(key) + 2)
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c == '/' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// ParseIndex returns the index written by s, whether s is all digits and
// whether the digits fit in an int.
func ParseIndex(s string) (i int, digits bool, ok bool) {
	if !IsDigits(s) {
		return 0, false, false
	}
	i, err := strconv.Atoi(s)
	return i, true, err == nil
}

func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
