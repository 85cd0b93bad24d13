package value

import (
	"iter"
)

// indexAt is the member count above which an Object keeps a key index.
const indexAt = 8

type Member struct {
	Key   string
	Value Value
}

// Object is an insertion ordered mapping with unique keys.
type Object struct {
	members []Member
	index   map[string]int
}

func NewObject(members ...Member) *Object {
	o := &Object{members: make([]Member, 0, len(members))}
	for _, m := range members {
		o.Set(m.Key, m.Value)
	}
	return o
}

// NewObjectCap returns an empty object with room for n members.
func NewObjectCap(n int) *Object {
	return &Object{members: make([]Member, 0, n)}
}

func (o *Object) find(k string) int {
	if o.index != nil {
		if i, ok := o.index[k]; ok {
			return i
		}
		return -1
	}
	for i := range o.members {
		if o.members[i].Key == k {
			return i
		}
	}
	return -1
}

// Set adds k or replaces its value in place.
func (o *Object) Set(k string, v Value) {
	if i := o.find(k); i >= 0 {
		o.members[i].Value = v
		return
	}
	o.members = append(o.members, Member{Key: k, Value: v})
	n := len(o.members)
	switch {
	case o.index != nil:
		o.index[k] = n - 1
	case n > indexAt:
		o.index = make(map[string]int, n)
		for i := range o.members {
			o.index[o.members[i].Key] = i
		}
	}
}

func (o *Object) Get(k string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}
	i := o.find(k)
	if i < 0 {
		return Value{}, false
	}
	return o.members[i].Value, true
}

func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

func (o *Object) Keys() []string {
	res := make([]string, o.Len())
	for i := range res {
		res[i] = o.members[i].Key
	}
	return res
}

// Members returns the members in insertion order. The slice must not be
// modified.
func (o *Object) Members() []Member {
	if o == nil {
		return nil
	}
	return o.members
}

func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, m := range o.Members() {
			if !yield(m.Key, m.Value) {
				return
			}
		}
	}
}

func (o *Object) Equal(p *Object) bool {
	if o.Len() != p.Len() {
		return false
	}
	for _, m := range o.Members() {
		pv, ok := p.Get(m.Key)
		if !ok || !m.Value.Equal(pv) {
			return false
		}
	}
	return true
}
