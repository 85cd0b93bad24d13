package ir

import (
	"fmt"

	"github.com/signadot/jsondoc/debug"
	"github.com/signadot/jsondoc/ir/docpath"
)

// Resolve walks p from start, or from the root when p is absolute. Array
// index segments are offset by base.
//
// Errors are *ResolveError wrapping ErrPathNotFound, ErrPathOutOfRange or
// ErrPathTypeMismatch.
func (a *Arena) Resolve(p docpath.Path, start NodeID, base int) (NodeID, error) {
	cur := start
	if p.Absolute {
		cur = a.root
	}
	for i, seg := range p.Segments {
		next, err := a.step(cur, seg, base)
		if err != nil {
			if debug.Path() {
				debug.Logf("resolve %s: segment %d (%s) failed at %s: %v", p, i, seg, a.Path(cur, base), err)
			}
			return NoNode, &ResolveError{
				Path:    p.String(),
				Index:   i,
				Segment: seg,
				At:      a.Path(cur, base),
				Err:     err,
			}
		}
		cur = next
	}
	return cur, nil
}

func (a *Arena) step(cur NodeID, seg docpath.Segment, base int) (NodeID, error) {
	n := &a.nodes[cur]
	switch seg.Kind {
	case docpath.ParentSegment:
		if n.Parent == NoNode {
			return NoNode, fmt.Errorf("%w: no parent above root", ErrPathOutOfRange)
		}
		return n.Parent, nil
	case docpath.IndexSegment:
		switch n.Type {
		case ArrayType:
			return a.elem(cur, seg.Index, base)
		case ObjectType:
			return a.field(cur, seg.Key)
		}
	case docpath.KeySegment:
		switch n.Type {
		case ObjectType:
			return a.field(cur, seg.Key)
		case ArrayType:
			i, digits, ok := docpath.ParseIndex(seg.Key)
			if ok {
				return a.elem(cur, i, base)
			}
			if digits {
				return NoNode, fmt.Errorf("%w: index %s", ErrPathOutOfRange, seg.Key)
			}
		}
	default:
		return NoNode, fmt.Errorf("%w: segment kind %s", ErrInternal, seg.Kind)
	}
	return NoNode, fmt.Errorf("%w: %s segment %q on %s", ErrPathTypeMismatch, seg.Kind, seg.Key, n.Type)
}

func (a *Arena) elem(cur NodeID, i, base int) (NodeID, error) {
	c, ok := a.Child(cur, i-base)
	if !ok {
		return NoNode, fmt.Errorf("%w: index %d of array with %d elements", ErrPathOutOfRange, i, a.Len(cur))
	}
	return c, nil
}

func (a *Arena) field(cur NodeID, k string) (NodeID, error) {
	c, ok := a.Lookup(cur, k)
	if !ok {
		return NoNode, fmt.Errorf("%w: key %q", ErrPathNotFound, k)
	}
	return c, nil
}
