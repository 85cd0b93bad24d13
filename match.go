package jsondoc

import (
	"github.com/signadot/jsondoc/debug"
	"github.com/signadot/jsondoc/value"
)

// Match reports whether doc has the shape of pattern. A null pattern
// matches anything, an object pattern matches objects holding at least its
// keys with matching values and an array pattern matches arrays of the same
// length element by element. Other patterns must equal doc.
func Match(doc, pattern value.Value) bool {
	if debug.Doc() {
		debug.Logf("match %s against %s", pattern.Kind(), doc.Kind())
	}
	if pattern.IsNull() {
		return true
	}
	if doc.Kind() != pattern.Kind() {
		return false
	}
	switch pattern.Kind() {
	case value.ObjectKind:
		return matchObj(doc, pattern)
	case value.ArrayKind:
		return matchArray(doc, pattern)
	}
	return doc.Equal(pattern)
}

func matchObj(doc, pattern value.Value) bool {
	d := doc.Object()
	for k, m := range pattern.Object().All() {
		v, ok := d.Get(k)
		if !ok || !Match(v, m) {
			return false
		}
	}
	return true
}

func matchArray(doc, pattern value.Value) bool {
	dv, mv := doc.Array(), pattern.Array()
	if len(dv) != len(mv) {
		return false
	}
	for i := range dv {
		if !Match(dv[i], mv[i]) {
			return false
		}
	}
	return true
}

// Trim filters doc down to the parts named by pattern. Object members
// missing from pattern are dropped; for arrays each pattern element keeps
// the first unused matching element of doc.
func Trim(pattern, doc value.Value) value.Value {
	switch {
	case pattern.Kind() == value.ObjectKind && doc.Kind() == value.ObjectKind:
		m := pattern.Object()
		res := value.NewObjectCap(m.Len())
		for k, v := range doc.Object().All() {
			mv, ok := m.Get(k)
			if !ok {
				continue
			}
			res.Set(k, Trim(mv, v))
		}
		return value.FromObject(res)
	case pattern.Kind() == value.ArrayKind && doc.Kind() == value.ArrayKind:
		elts := doc.Array()
		used := make([]bool, len(elts))
		var res []value.Value
		for _, me := range pattern.Array() {
			for i, de := range elts {
				if used[i] || !Match(de, me) {
					continue
				}
				res = append(res, Trim(me, de))
				used[i] = true
				break
			}
		}
		return value.FromArray(res...)
	}
	return doc
}
