package ir

import (
	"slices"

	"github.com/signadot/jsondoc/ir/docpath"
)

// Segments returns the absolute path segments from the root to id.
func (a *Arena) Segments(id NodeID, base int) []docpath.Segment {
	var segs []docpath.Segment
	for cur := id; a.nodes[cur].Parent != NoNode; cur = a.nodes[cur].Parent {
		k := a.Key(cur, base)
		if k.Kind == IndexKey {
			segs = append(segs, docpath.Index(k.Index))
			continue
		}
		segs = append(segs, docpath.Key(k.Field))
	}
	slices.Reverse(segs)
	return segs
}

// Path renders the absolute path of id. Resolving the result from any node
// of the same arena yields id.
func (a *Arena) Path(id NodeID, base int) string {
	return docpath.Format(a.Segments(id, base))
}
