package doc

import (
	"iter"

	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/value"
)

// EachValue calls visit with every scalar under the node, depth first and
// left to right. A scalar node is visited itself. The first error returned
// by visit stops the walk and is returned.
func (c *Cursor) EachValue(visit func(value.Value) error, path ...string) error {
	id, err := c.resolve(path)
	if err != nil {
		return err
	}
	for l := range c.leaves(id) {
		if err := visit(c.s.a.Materialize(l)); err != nil {
			return err
		}
	}
	return nil
}

// EachLeaf is like EachValue but visits a cursor positioned at each
// scalar.
func (c *Cursor) EachLeaf(visit func(*Cursor) error, path ...string) error {
	id, err := c.resolve(path)
	if err != nil {
		return err
	}
	for l := range c.leaves(id) {
		if err := visit(c.at(l)); err != nil {
			return err
		}
	}
	return nil
}

// EachBranch calls visit with a cursor at each immediate child of the
// node, in document order. Scalars have no children.
func (c *Cursor) EachBranch(visit func(*Cursor) error, path ...string) error {
	id, err := c.resolve(path)
	if err != nil {
		return err
	}
	for _, k := range c.s.a.Children(id) {
		if err := visit(c.at(k)); err != nil {
			return err
		}
	}
	return nil
}

// Values returns the scalars EachValue would visit as an iterator. The
// iterator stops early if the document is closed.
func (c *Cursor) Values(path ...string) (iter.Seq[value.Value], error) {
	id, err := c.resolve(path)
	if err != nil {
		return nil, err
	}
	return func(yield func(value.Value) bool) {
		for l := range c.leaves(id) {
			if !yield(c.s.a.Materialize(l)) {
				return
			}
		}
	}, nil
}

// Branches returns the cursors EachBranch would visit as an iterator.
func (c *Cursor) Branches(path ...string) (iter.Seq[*Cursor], error) {
	id, err := c.resolve(path)
	if err != nil {
		return nil, err
	}
	return func(yield func(*Cursor) bool) {
		if c.check() != nil {
			return
		}
		for _, k := range c.s.a.Children(id) {
			if c.check() != nil || !yield(c.at(k)) {
				return
			}
		}
	}, nil
}

func (c *Cursor) leaves(id ir.NodeID) iter.Seq[ir.NodeID] {
	return func(yield func(ir.NodeID) bool) {
		if c.check() != nil {
			return
		}
		for l := range c.s.a.Leaves(id) {
			if !yield(l) || c.check() != nil {
				return
			}
		}
	}
}
