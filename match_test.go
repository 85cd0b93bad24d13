package jsondoc

import (
	"testing"

	"github.com/signadot/jsondoc/value"
)

type matchTest struct {
	in    string
	match string
	res   bool
}

var matchTests = []matchTest{
	{
		in:    `1`,
		match: `1`,
		res:   true,
	},
	{
		in:    `0`,
		match: `1`,
		res:   false,
	},
	{
		in:    `1`,
		match: `1.0`,
		res:   false,
	},
	{
		in:    `[1]`,
		match: `[1]`,
		res:   true,
	},
	{
		in:    `[]`,
		match: `[]`,
		res:   true,
	},
	{
		in:    `[1]`,
		match: `[2]`,
		res:   false,
	},
	{
		in:    `[1]`,
		match: `"hello"`,
		res:   false,
	},
	{
		in:    `{"a":"b","c":"d"}`,
		match: `{"a":"b"}`,
		res:   true,
	},
	{
		in:    `{"a":"b"}`,
		match: `{"a":"b","c":"d"}`,
		res:   false,
	},
	{
		in:    `{"a":"b"}`,
		match: `null`,
		res:   true,
	},
	{
		in:    `{"a":{"b":[1,{"c":true}]}}`,
		match: `{"a":{"b":[null,{"c":true}]}}`,
		res:   true,
	},
	{
		in:    `{"a":{"b":[1,{"c":true}]}}`,
		match: `{"a":{"b":[null]}}`,
		res:   false,
	},
}

func mustLoad(t *testing.T, s string) value.Value {
	t.Helper()
	v, err := Load([]byte(s))
	if err != nil {
		t.Fatalf("load %s: %v", s, err)
	}
	return v
}

func TestMatch(t *testing.T) {
	for _, mt := range matchTests {
		doc := mustLoad(t, mt.in)
		match := mustLoad(t, mt.match)
		if got := Match(doc, match); got != mt.res {
			t.Errorf("match %s against %s: got %t want %t", mt.match, mt.in, got, mt.res)
		}
	}
}

func TestTrim(t *testing.T) {
	tests := []struct {
		match string
		in    string
		want  string
	}{
		{`{"a":null}`, `{"a":1,"b":2}`, `{"a":1}`},
		{`{"a":{"x":null}}`, `{"b":2,"a":{"x":1,"y":2}}`, `{"a":{"x":1}}`},
		{`[{"k":2}]`, `[{"k":1,"v":"a"},{"k":2,"v":"b"}]`, `[{"k":2}]`},
		{`[null,null]`, `[3]`, `[3]`},
		{`"s"`, `{"a":1}`, `{"a":1}`},
	}
	for _, tt := range tests {
		got := Trim(mustLoad(t, tt.match), mustLoad(t, tt.in))
		if got.String() != tt.want {
			t.Errorf("trim %s by %s: got %s want %s", tt.in, tt.match, got, tt.want)
		}
	}
}
