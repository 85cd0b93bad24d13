package ir

import (
	"iter"
	"slices"
)

// indexAt is the child count above which an object gets a key index.
const indexAt = 8

// Arena owns every node of one parsed document. It is immutable once built,
// so any number of goroutines may read it concurrently.
type Arena struct {
	nodes     []Node
	kids      []NodeID
	index     map[NodeID]map[string]NodeID
	root      NodeID
	reachable int
	released  bool
}

func (a *Arena) Root() NodeID {
	return a.root
}

// Node returns the node record for id. The record must not be modified.
func (a *Arena) Node(id NodeID) *Node {
	return &a.nodes[id]
}

// Valid reports whether id names a reachable node of an unreleased arena.
func (a *Arena) Valid(id NodeID) bool {
	if a.Released() || id < 0 || int(id) >= len(a.nodes) {
		return false
	}
	return !a.nodes[id].Detached()
}

func (a *Arena) Type(id NodeID) Type {
	return a.nodes[id].Type
}

func (a *Arena) Parent(id NodeID) NodeID {
	return a.nodes[id].Parent
}

// Children returns the children of id in document order.
func (a *Arena) Children(id NodeID) []NodeID {
	n := &a.nodes[id]
	return slices.Clip(a.kids[n.kids : n.kids+n.nKids])
}

func (a *Arena) Len(id NodeID) int {
	return int(a.nodes[id].nKids)
}

// Child returns the i'th (0-based) child of id.
func (a *Arena) Child(id NodeID, i int) (NodeID, bool) {
	n := &a.nodes[id]
	if i < 0 || i >= int(n.nKids) {
		return NoNode, false
	}
	return a.kids[int(n.kids)+i], true
}

// Lookup returns the child of object id with key k.
func (a *Arena) Lookup(id NodeID, k string) (NodeID, bool) {
	if a.nodes[id].Type != ObjectType {
		return NoNode, false
	}
	if idx, ok := a.index[id]; ok {
		c, ok := idx[k]
		return c, ok
	}
	for _, c := range a.Children(id) {
		if a.nodes[c].ParentField == k {
			return c, true
		}
	}
	return NoNode, false
}

// Key returns the key of id within its parent; array indices are offset by
// base.
func (a *Arena) Key(id NodeID, base int) Key {
	n := &a.nodes[id]
	if n.Parent == NoNode {
		return Key{}
	}
	if a.nodes[n.Parent].Type == ObjectType {
		return Key{Kind: FieldKey, Field: n.ParentField}
	}
	return Key{Kind: IndexKey, Index: n.ParentIndex + base}
}

// Depth is the number of ancestors of id.
func (a *Arena) Depth(id NodeID) int {
	d := 0
	for p := a.nodes[id].Parent; p != NoNode; p = a.nodes[p].Parent {
		d++
	}
	return d
}

// Size is the number of nodes reachable from the root.
func (a *Arena) Size() int {
	return a.reachable
}

// Leaves yields the scalar nodes under id depth first, left to right. A
// scalar id yields itself.
func (a *Arena) Leaves(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		if !a.nodes[id].Type.IsContainer() {
			yield(id)
			return
		}
		type frame struct {
			kids []NodeID
			i    int
		}
		stack := []frame{{kids: a.Children(id)}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.i == len(top.kids) {
				stack = stack[:len(stack)-1]
				continue
			}
			k := top.kids[top.i]
			top.i++
			if a.nodes[k].Type.IsContainer() {
				stack = append(stack, frame{kids: a.Children(k)})
				continue
			}
			if !yield(k) {
				return
			}
		}
	}
}

// Release drops the nodes. The arena must not be used afterwards.
func (a *Arena) Release() {
	a.nodes = nil
	a.kids = nil
	a.index = nil
	a.released = true
}

func (a *Arena) Released() bool {
	return a.released
}
