package value

import (
	"math/big"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func obj(kvs ...any) Value {
	o := NewObject()
	for i := 0; i < len(kvs); i += 2 {
		o.Set(kvs[i].(string), kvs[i+1].(Value))
	}
	return FromObject(o)
}

func TestEqual(t *testing.T) {
	big1, _ := new(big.Int).SetString("12345678901234567890123456789", 10)
	big2, _ := new(big.Int).SetString("12345678901234567890123456789", 10)
	tests := []struct {
		a, b Value
		eq   bool
	}{
		{Null(), Null(), true},
		{Null(), FromBool(false), false},
		{FromBool(true), FromBool(true), true},
		{FromInt(3), FromInt(3), true},
		{FromInt(3), FromFloat(3), false},
		{FromBigInt(big1), FromBigInt(big2), true},
		{FromBigInt(big.NewInt(7)), FromInt(7), true},
		{FromString("a"), FromString("a"), true},
		{FromArray(FromInt(1), FromInt(2)), FromArray(FromInt(1), FromInt(2)), true},
		{FromArray(FromInt(1), FromInt(2)), FromArray(FromInt(2), FromInt(1)), false},
		{FromArray(), FromArray(), true},
		{obj("a", FromInt(1), "b", FromInt(2)), obj("b", FromInt(2), "a", FromInt(1)), true},
		{obj("a", FromInt(1)), obj("a", FromInt(1), "b", Null()), false},
		{obj("a", FromInt(1)), obj("a", FromInt(2)), false},
	}
	for i, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.eq {
			t.Errorf("%d: %s == %s: got %t", i, tt.a, tt.b, got)
		}
		if got := tt.b.Equal(tt.a); got != tt.eq {
			t.Errorf("%d: %s == %s: got %t (reversed)", i, tt.b, tt.a, got)
		}
	}
}

func TestObjectOrderAndIndex(t *testing.T) {
	o := NewObject()
	var want []string
	for i := range 20 {
		k := "k" + strconv.Itoa(i)
		o.Set(k, FromInt(int64(i)))
		want = append(want, k)
	}
	o.Set("k3", FromString("replaced"))
	if diff := cmp.Diff(want, o.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	v, ok := o.Get("k3")
	if !ok || v.Str() != "replaced" {
		t.Errorf("k3: got %s %t", v, ok)
	}
	v, ok = o.Get("k19")
	if !ok || v.Int() != 19 {
		t.Errorf("k19: got %s %t", v, ok)
	}
	if _, ok := o.Get("missing"); ok {
		t.Error("missing key found")
	}
	n := 0
	for k, v := range o.All() {
		if k == "k5" {
			if v.Int() != 5 {
				t.Errorf("k5: %s", v)
			}
			break
		}
		n++
	}
	if n != 5 {
		t.Errorf("break after %d members", n)
	}
}

func TestInterface(t *testing.T) {
	b, _ := new(big.Int).SetString("-98765432109876543210", 10)
	v := obj(
		"n", Null(),
		"b", FromBool(true),
		"i", FromInt(-4),
		"big", FromBigInt(b),
		"f", FromFloat(1.5),
		"s", FromString("x"),
		"a", FromArray(FromInt(1), obj()),
	)
	got := v.Interface()
	want := map[string]any{
		"n":   nil,
		"b":   true,
		"i":   int64(-4),
		"big": b,
		"f":   1.5,
		"s":   "x",
		"a":   []any{int64(1), map[string]any{}},
	}
	opt := cmp.Comparer(func(x, y *big.Int) bool { return x.Cmp(y) == 0 })
	if diff := cmp.Diff(want, got, opt); diff != "" {
		t.Errorf("interface (-want +got):\n%s", diff)
	}
}

func TestString(t *testing.T) {
	b, _ := new(big.Int).SetString("12345678901234567890123456789", 10)
	tests := []struct {
		v    Value
		want string
	}{
		{Null(), "null"},
		{FromBool(false), "false"},
		{FromInt(12345), "12345"},
		{FromBigInt(b), "12345678901234567890123456789"},
		{FromFloat(12345.6789), "12345.6789"},
		{FromFloat(12345.6789e7), "123456789000.0"},
		{FromFloat(3), "3.0"},
		{FromFloat(-0.5), "-0.5"},
		{FromFloat(1e21), "1e+21"},
		{FromFloat(1.5e-7), "1.5e-07"},
		{FromString("a \"q\"\n\\\x01é"), `"a \"q\"\n\\\u0001é"`},
		{FromArray(), "[]"},
		{obj(), "{}"},
		{obj("one", FromBool(true), "two", FromArray(FromInt(1), Null())), `{"one":true,"two":[1,null]}`},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("got %s want %s", got, tt.want)
		}
	}
}
