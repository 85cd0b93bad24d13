package encode

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/signadot/jsondoc/format"
	"github.com/signadot/jsondoc/value"
)

func sample() value.Value {
	huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	inner := value.NewObject(
		value.Member{Key: "z", Value: value.FromBool(true)},
		value.Member{Key: "a", Value: value.Null()},
	)
	return value.FromObject(value.NewObject(
		value.Member{Key: "name", Value: value.FromString("a \"quoted\" name")},
		value.Member{Key: "list", Value: value.FromArray(value.FromInt(1), value.FromFloat(2), value.FromBigInt(huge))},
		value.Member{Key: "inner", Value: value.FromObject(inner)},
		value.Member{Key: "empty", Value: value.FromArray()},
		value.Member{Key: "none", Value: value.FromObject(nil)},
	))
}

func TestEncodeJSON(t *testing.T) {
	want := `{
  "name": "a \"quoted\" name",
  "list": [
    1,
    2.0,
    123456789012345678901234567890
  ],
  "inner": {
    "z": true,
    "a": null
  },
  "empty": [],
  "none": {}
}
`
	buf := &bytes.Buffer{}
	if err := Encode(sample(), buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeWire(t *testing.T) {
	v := sample()
	got := MustString(v, EncodeWire(true))
	if got != v.String() {
		t.Errorf("got %s want %s", got, v.String())
	}
}

func TestEncodeIndent(t *testing.T) {
	v := value.FromArray(value.FromArray(value.FromInt(1)))
	got := MustString(v, Indent(4))
	want := "[\n    [\n        1\n    ]\n]"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEncodeScalars(t *testing.T) {
	tests := []struct {
		v    value.Value
		want string
	}{
		{value.Null(), "null"},
		{value.FromBool(false), "false"},
		{value.FromInt(-7), "-7"},
		{value.FromFloat(1e-7), "1e-07"},
		{value.FromString("tab\there"), `"tab\there"`},
	}
	for _, tt := range tests {
		if got := MustString(tt.v); got != tt.want {
			t.Errorf("got %s want %s", got, tt.want)
		}
	}
}

func TestEncodeColors(t *testing.T) {
	old := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = old }()

	v := value.FromObject(value.NewObject(value.Member{Key: "k", Value: value.FromString("v")}))
	colored := MustString(v, EncodeColors(NewColors()))
	if !strings.Contains(colored, "\x1b[") {
		t.Errorf("no escape sequences in %q", colored)
	}
	plain := MustString(v, EncodeColors(nil))
	if strings.Contains(plain, "\x1b[") {
		t.Errorf("escape sequences in %q", plain)
	}
	if plain != "{\n  \"k\": \"v\"\n}" {
		t.Errorf("got %q", plain)
	}
}

func TestColorsEscapePercent(t *testing.T) {
	c := NewColors()
	got := c.Color(value.StringKind, ValueColor, `"100%"`)
	if !strings.Contains(got, `"100%"`) {
		t.Errorf("got %q", got)
	}
	if c.Color(value.ArrayKind, FieldColor, "x") != "x" {
		t.Error("missing entry not defaulted")
	}
}

func TestEncodeYAML(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Encode(sample(), buf, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{
		"name:",
		"quoted",
		"2.0",
		"123456789012345678901234567890",
		"z: true",
		"a: null",
		"empty: []",
		"none: {}",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("%q missing from\n%s", want, got)
		}
	}
	if strings.Index(got, "z: true") > strings.Index(got, "a: null") {
		t.Errorf("member order lost:\n%s", got)
	}
	if strings.Index(got, "name:") > strings.Index(got, "list:") {
		t.Errorf("member order lost:\n%s", got)
	}
}

func TestFormatFromOpts(t *testing.T) {
	if f := FormatFromOpts(Indent(3), EncodeFormat(format.YAMLFormat)); f != format.YAMLFormat {
		t.Errorf("got %s", f)
	}
	if f := FormatFromOpts(); f != format.JSONFormat {
		t.Errorf("default %s", f)
	}
}

func TestBadFormat(t *testing.T) {
	err := Encode(value.Null(), &bytes.Buffer{}, EncodeFormat(format.Format(7)))
	if err == nil {
		t.Error("no error")
	}
}
