package ir

import (
	"fmt"
)

// Builder assembles an Arena. Nodes are added in document order and each
// container is finished once all of its children have been added.
type Builder struct {
	a        *Arena
	detached bool
}

// NewBuilder returns a builder with room for about n nodes.
func NewBuilder(n int) *Builder {
	return &Builder{a: &Arena{
		nodes: make([]Node, 0, n),
		kids:  make([]NodeID, 0, n),
		root:  NoNode,
	}}
}

// Add appends n and returns its id. Linkage fields other than ParentField
// are set by Finish.
func (b *Builder) Add(n Node) NodeID {
	n.Parent = NoNode
	n.ParentIndex = 0
	n.kids, n.nKids = 0, 0
	n.detach = false
	b.a.nodes = append(b.a.nodes, n)
	return NodeID(len(b.a.nodes) - 1)
}

func (b *Builder) Node(id NodeID) *Node {
	return &b.a.nodes[id]
}

// Len is the number of nodes added so far.
func (b *Builder) Len() int {
	return len(b.a.nodes)
}

// Finish attaches kids to the container id in the given order.
func (b *Builder) Finish(id NodeID, kids []NodeID) {
	a := b.a
	off := len(a.kids)
	a.kids = append(a.kids, kids...)
	n := &a.nodes[id]
	if !n.Type.IsContainer() {
		panic(fmt.Errorf("%w: finish on %s node %d", ErrInternal, n.Type, id))
	}
	n.kids = int32(off)
	n.nKids = int32(len(kids))
	for i, k := range kids {
		c := &a.nodes[k]
		c.Parent = id
		c.ParentIndex = i
	}
	if n.Type == ObjectType && len(kids) > indexAt {
		idx := make(map[string]NodeID, len(kids))
		for _, k := range kids {
			idx[a.nodes[k].ParentField] = k
		}
		if a.index == nil {
			a.index = map[NodeID]map[string]NodeID{}
		}
		a.index[id] = idx
	}
}

// Detach marks id as superseded; it will not be attached to any parent.
func (b *Builder) Detach(id NodeID) {
	b.a.nodes[id].detach = true
	b.detached = true
}

// Arena completes the build with root as the document root. The builder
// must not be used afterwards.
func (b *Builder) Arena(root NodeID) *Arena {
	a := b.a
	b.a = nil
	a.root = root
	a.reachable = len(a.nodes)
	if b.detached {
		a.reachable = a.count(root)
	}
	return a
}

func (a *Arena) count(id NodeID) int {
	n := 1
	stack := []NodeID{id}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		kids := a.Children(top)
		n += len(kids)
		stack = append(stack, kids...)
	}
	return n
}
