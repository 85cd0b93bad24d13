package doc

import (
	"bytes"
	"encoding/json"
)

// Raw returns the compact JSON text of the node. Duplicate keys appear
// once, with their last value.
func (c *Cursor) Raw(path ...string) ([]byte, error) {
	id, err := c.resolve(path)
	if err != nil {
		return nil, err
	}
	return c.s.a.AppendJSON(nil, id), nil
}

// Decode unmarshals the node into p as encoding/json would. Numbers
// decoded into an interface become json.Number so that big integers keep
// their digits.
func (c *Cursor) Decode(p any, path ...string) error {
	d, err := c.Raw(path...)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	return dec.Decode(p)
}
