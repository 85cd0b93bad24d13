// Package value holds fully materialized JSON values.
//
// A [Value] is a closed tagged union: its [Kind] says which accessor is
// meaningful. Values are produced by materializing a parsed document and are
// independent of it.
package value

import (
	"fmt"
	"math/big"
)

type Kind int

const (
	NullKind Kind = iota
	BoolKind
	IntKind
	BigIntKind
	FloatKind
	StringKind
	ArrayKind
	ObjectKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NullKind:   "Null",
		BoolKind:   "Bool",
		IntKind:    "Int",
		BigIntKind: "BigInt",
		FloatKind:  "Float",
		StringKind: "String",
		ArrayKind:  "Array",
		ObjectKind: "Object",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

// Value is a materialized JSON value. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	big  *big.Int
	f    float64
	s    string
	arr  []Value
	obj  *Object
}

func Null() Value {
	return Value{}
}

func FromBool(b bool) Value {
	return Value{kind: BoolKind, b: b}
}

func FromInt(i int64) Value {
	return Value{kind: IntKind, i: i}
}

// FromBigInt takes ownership of b. Values that fit in an int64 become
// IntKind values.
func FromBigInt(b *big.Int) Value {
	if b.IsInt64() {
		return FromInt(b.Int64())
	}
	return Value{kind: BigIntKind, big: b}
}

func FromFloat(f float64) Value {
	return Value{kind: FloatKind, f: f}
}

func FromString(s string) Value {
	return Value{kind: StringKind, s: s}
}

func FromArray(vs ...Value) Value {
	if vs == nil {
		vs = []Value{}
	}
	return Value{kind: ArrayKind, arr: vs}
}

func FromObject(o *Object) Value {
	if o == nil {
		o = NewObject()
	}
	return Value{kind: ObjectKind, obj: o}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == NullKind }

func (v Value) Bool() bool { return v.b }

func (v Value) Int() int64 { return v.i }

// BigInt returns the integer of an IntKind or BigIntKind value.
func (v Value) BigInt() *big.Int {
	switch v.kind {
	case IntKind:
		return big.NewInt(v.i)
	case BigIntKind:
		return new(big.Int).Set(v.big)
	}
	return nil
}

func (v Value) Float() float64 { return v.f }

// Str returns the string of a StringKind value.
func (v Value) Str() string { return v.s }

func (v Value) Array() []Value { return v.arr }

func (v Value) Object() *Object { return v.obj }

// Len is the number of elements or members of a container, 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case ArrayKind:
		return len(v.arr)
	case ObjectKind:
		return v.obj.Len()
	}
	return 0
}

// Equal reports deep equality. Object member order is not significant and
// integers never equal floats.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case NullKind:
		return true
	case BoolKind:
		return v.b == o.b
	case IntKind:
		return v.i == o.i
	case BigIntKind:
		return v.big.Cmp(o.big) == 0
	case FloatKind:
		return v.f == o.f
	case StringKind:
		return v.s == o.s
	case ArrayKind:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	case ObjectKind:
		return v.obj.Equal(o.obj)
	}
	panic(fmt.Sprintf("value: unknown kind %d", v.kind))
}

// Interface converts v to plain Go values: nil, bool, int64, *big.Int,
// float64, string, []any and map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case NullKind:
		return nil
	case BoolKind:
		return v.b
	case IntKind:
		return v.i
	case BigIntKind:
		return new(big.Int).Set(v.big)
	case FloatKind:
		return v.f
	case StringKind:
		return v.s
	case ArrayKind:
		res := make([]any, len(v.arr))
		for i := range v.arr {
			res[i] = v.arr[i].Interface()
		}
		return res
	case ObjectKind:
		res := make(map[string]any, v.obj.Len())
		for _, m := range v.obj.members {
			res[m.Key] = m.Value.Interface()
		}
		return res
	}
	panic(fmt.Sprintf("value: unknown kind %d", v.kind))
}

// String renders v as compact JSON.
func (v Value) String() string {
	return string(v.AppendJSON(nil))
}
