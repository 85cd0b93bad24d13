package ir

import (
	"fmt"
	"math/big"

	"github.com/signadot/jsondoc/value"
)

// Materialize builds an independent value for the subtree at id. Object
// member order follows document order.
func (a *Arena) Materialize(id NodeID) value.Value {
	n := &a.nodes[id]
	switch n.Type {
	case NullType:
		return value.Null()
	case BoolType:
		return value.FromBool(n.Bool)
	case IntegerType:
		if n.Big != nil {
			return value.FromBigInt(new(big.Int).Set(n.Big))
		}
		return value.FromInt(n.Int)
	case FloatType:
		return value.FromFloat(n.Float)
	case StringType:
		return value.FromString(n.String)
	case ArrayType:
		kids := a.Children(id)
		vs := make([]value.Value, len(kids))
		for i, k := range kids {
			vs[i] = a.Materialize(k)
		}
		return value.FromArray(vs...)
	case ObjectType:
		kids := a.Children(id)
		o := value.NewObjectCap(len(kids))
		for _, k := range kids {
			o.Set(a.nodes[k].ParentField, a.Materialize(k))
		}
		return value.FromObject(o)
	}
	panic(fmt.Errorf("%w: node %d has type %s", ErrInternal, id, n.Type))
}
