package ir

import (
	"fmt"
	"strconv"

	"github.com/signadot/jsondoc/value"
)

// AppendJSON appends the compact JSON encoding of the subtree at id to dst
// without materializing it.
func (a *Arena) AppendJSON(dst []byte, id NodeID) []byte {
	n := &a.nodes[id]
	switch n.Type {
	case NullType:
		return append(dst, "null"...)
	case BoolType:
		return strconv.AppendBool(dst, n.Bool)
	case IntegerType:
		if n.Big != nil {
			return n.Big.Append(dst, 10)
		}
		return strconv.AppendInt(dst, n.Int, 10)
	case FloatType:
		return value.AppendFloat(dst, n.Float)
	case StringType:
		return value.AppendQuoted(dst, n.String)
	case ArrayType:
		dst = append(dst, '[')
		for i, k := range a.Children(id) {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = a.AppendJSON(dst, k)
		}
		return append(dst, ']')
	case ObjectType:
		dst = append(dst, '{')
		for i, k := range a.Children(id) {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = value.AppendQuoted(dst, a.nodes[k].ParentField)
			dst = append(dst, ':')
			dst = a.AppendJSON(dst, k)
		}
		return append(dst, '}')
	}
	panic(fmt.Errorf("%w: node %d has type %s", ErrInternal, id, n.Type))
}
