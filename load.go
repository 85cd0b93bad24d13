package jsondoc

import (
	"io"

	"github.com/signadot/jsondoc/doc"
	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/value"
)

// Load parses d and returns its root as a value.
func Load(d []byte, opts ...Option) (value.Value, error) {
	return Fetch(d, "/", opts...)
}

// Fetch parses d and returns the value at path.
func Fetch(d []byte, path string, opts ...Option) (value.Value, error) {
	cfg := NewConfig(opts...)
	var res value.Value
	err := doc.With(d, func(dd *doc.Document) error {
		v, err := dd.Fetch(path)
		if err != nil {
			return err
		}
		res = v
		return nil
	}, cfg.DocOptions()...)
	return res, err
}

// Dump encodes v to w.
func Dump(v value.Value, w io.Writer, opts ...Option) error {
	return encode.Encode(v, w, NewConfig(opts...).EncodeOptions()...)
}
