// Package ir holds the node arena of a parsed JSON document.
//
// An Arena stores every node of one document in a flat slice indexed by
// NodeID. Each node records its type, its scalar payload, its parent and
// its key within that parent; containers own a contiguous run of child
// ids. Arenas are built with a Builder and are read-only afterwards.
//
// Paths are resolved against an arena with [Arena.Resolve] and rendered
// with [Arena.Path]; both take the base of array indices.
package ir
