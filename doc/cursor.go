package doc

import (
	"github.com/signadot/jsondoc/debug"
	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/ir/docpath"
	"github.com/signadot/jsondoc/value"
)

// Cursor is a position in a document. Failed operations never move it.
type Cursor struct {
	s   *arena
	cur ir.NodeID
}

func (c *Cursor) check() error {
	if c.s.closed.Load() {
		return ErrClosed
	}
	return nil
}

// resolve returns the node designated by paths relative to the cursor.
func (c *Cursor) resolve(paths []string) (ir.NodeID, error) {
	if err := c.check(); err != nil {
		return ir.NoNode, err
	}
	id := c.cur
	for _, p := range paths {
		pp, err := docpath.Parse(p)
		if err != nil {
			return ir.NoNode, err
		}
		id, err = c.s.a.Resolve(pp, id, c.s.base)
		if err != nil {
			return ir.NoNode, err
		}
	}
	return id, nil
}

func (c *Cursor) at(id ir.NodeID) *Cursor {
	return &Cursor{s: c.s, cur: id}
}

// Move moves the cursor to path.
func (c *Cursor) Move(path string) error {
	id, err := c.resolve([]string{path})
	if err != nil {
		return err
	}
	if debug.Doc() {
		debug.Logf("move %q: %s -> %s", path, c.s.a.Path(c.cur, c.s.base), c.s.a.Path(id, c.s.base))
	}
	c.cur = id
	return nil
}

// Where returns the absolute path of the cursor, or "" once the document
// is closed.
func (c *Cursor) Where() string {
	if c.check() != nil {
		return ""
	}
	return c.s.a.Path(c.cur, c.s.base)
}

// Home moves the cursor to the root.
func (c *Cursor) Home() {
	if c.check() != nil {
		return
	}
	c.cur = c.s.a.Root()
}

// Clone returns a cursor at the same position.
func (c *Cursor) Clone() *Cursor {
	return c.at(c.cur)
}

// Base returns the index of the first array element in paths.
func (c *Cursor) Base() int {
	return c.s.base
}

func (c *Cursor) Type(path ...string) (ir.Type, error) {
	id, err := c.resolve(path)
	if err != nil {
		return ir.NullType, err
	}
	return c.s.a.Type(id), nil
}

// LocalKey returns the key of the node within its parent: a field name
// for object members, an index for array elements and the zero Key for
// the root.
func (c *Cursor) LocalKey(path ...string) (ir.Key, error) {
	id, err := c.resolve(path)
	if err != nil {
		return ir.Key{}, err
	}
	return c.s.a.Key(id, c.s.base), nil
}

// Fetch materializes the node as an independent value.
func (c *Cursor) Fetch(path ...string) (value.Value, error) {
	id, err := c.resolve(path)
	if err != nil {
		return value.Value{}, err
	}
	return c.s.a.Materialize(id), nil
}

// Len returns the number of children of the node; scalars have none.
func (c *Cursor) Len(path ...string) (int, error) {
	id, err := c.resolve(path)
	if err != nil {
		return 0, err
	}
	return c.s.a.Len(id), nil
}

// Size returns the number of nodes in the document, or 0 once it is
// closed.
func (c *Cursor) Size() int {
	if c.check() != nil {
		return 0
	}
	return c.s.a.Size()
}
