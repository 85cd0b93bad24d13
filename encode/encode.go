package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/signadot/jsondoc/format"
	"github.com/signadot/jsondoc/value"
)

type EncState struct {
	depth, indent int
	format        format.Format
	wire          bool

	Color func(value.Kind, ColorAttr, string) string
}

// Encode writes v to w followed by a newline. Object members keep their
// order.
func Encode(v value.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		if err := encodeJSON(v, w, es); err != nil {
			return err
		}
		return writeString(w, "\n")
	case format.YAMLFormat:
		return encodeYAML(v, w, es)
	}
	return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func (es *EncState) color(k value.Kind, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, a, s)
}

func writeSep(w io.Writer, es *EncState, k value.Kind, sep string) error {
	return writeString(w, es.color(k, SepColor, sep))
}

func encodeJSON(v value.Value, w io.Writer, es *EncState) error {
	switch v.Kind() {
	case value.ArrayKind:
		return encodeArray(v, w, es)
	case value.ObjectKind:
		return encodeObject(v, w, es)
	}
	return writeString(w, es.color(v.Kind(), ValueColor, string(v.AppendJSON(nil))))
}

func encodeArray(v value.Value, w io.Writer, es *EncState) error {
	elts := v.Array()
	if len(elts) == 0 {
		return writeSep(w, es, value.ArrayKind, "[]")
	}
	if err := writeSep(w, es, value.ArrayKind, "["); err != nil {
		return err
	}
	es.depth++
	for i, e := range elts {
		if i > 0 {
			if err := writeSep(w, es, value.ArrayKind, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encodeJSON(e, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, value.ArrayKind, "]")
}

func encodeObject(v value.Value, w io.Writer, es *EncState) error {
	members := v.Object().Members()
	if len(members) == 0 {
		return writeSep(w, es, value.ObjectKind, "{}")
	}
	if err := writeSep(w, es, value.ObjectKind, "{"); err != nil {
		return err
	}
	colon := ":"
	if !es.wire {
		colon = ": "
	}
	es.depth++
	for i, m := range members {
		if i > 0 {
			if err := writeSep(w, es, value.ObjectKind, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		key := string(value.AppendQuoted(nil, m.Key))
		if err := writeString(w, es.color(value.ObjectKind, FieldColor, key)); err != nil {
			return err
		}
		if err := writeSep(w, es, value.ObjectKind, colon); err != nil {
			return err
		}
		if err := encodeJSON(m.Value, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, value.ObjectKind, "}")
}

// yamlNumber renders numbers with the JSON spelling so that big integers
// keep every digit and floats keep a fraction.
type yamlNumber struct {
	text []byte
}

func (n yamlNumber) MarshalYAML() ([]byte, error) {
	return n.text, nil
}

func toYAML(v value.Value) any {
	switch v.Kind() {
	case value.NullKind:
		return nil
	case value.BoolKind:
		return v.Bool()
	case value.IntKind:
		return v.Int()
	case value.BigIntKind:
		return yamlNumber{v.BigInt().Append(nil, 10)}
	case value.FloatKind:
		return yamlNumber{value.AppendFloat(nil, v.Float())}
	case value.StringKind:
		return v.Str()
	case value.ArrayKind:
		res := make([]any, 0, v.Len())
		for _, e := range v.Array() {
			res = append(res, toYAML(e))
		}
		return res
	case value.ObjectKind:
		res := make(yaml.MapSlice, 0, v.Len())
		for k, e := range v.Object().All() {
			res = append(res, yaml.MapItem{Key: k, Value: toYAML(e)})
		}
		return res
	}
	return nil
}

func encodeYAML(v value.Value, w io.Writer, es *EncState) error {
	yopts := []yaml.EncodeOption{yaml.Indent(es.indent)}
	if es.wire {
		yopts = append(yopts, yaml.Flow(true))
	}
	d, err := yaml.MarshalWithOptions(toYAML(v), yopts...)
	if err != nil {
		return fmt.Errorf("yaml: %w", err)
	}
	_, err = w.Write(d)
	return err
}
