package ir

import (
	"math/big"
	"strconv"
)

// NodeID identifies a node within its Arena. Ids are dense and assigned in
// document order.
type NodeID int32

// NoNode is the parent of the root.
const NoNode NodeID = -1

// Node is one parsed JSON value. Payload fields are set according to Type;
// Big is set instead of Int for integers outside the int64 range.
type Node struct {
	Type        Type
	Parent      NodeID
	ParentIndex int
	ParentField string

	Bool   bool
	Int    int64
	Big    *big.Int
	Float  float64
	String string

	kids   int32
	nKids  int32
	detach bool
}

// IsBig reports whether an integer node holds a big integer.
func (n *Node) IsBig() bool {
	return n.Type == IntegerType && n.Big != nil
}

// Detached reports whether the node was superseded by a later duplicate
// key and is no longer reachable from the root.
func (n *Node) Detached() bool {
	return n.detach
}

type KeyKind int

const (
	NoKey KeyKind = iota
	FieldKey
	IndexKey
)

// Key is a node's key within its parent.
type Key struct {
	Kind  KeyKind
	Field string
	Index int
}

func (k Key) IsZero() bool {
	return k.Kind == NoKey
}

func (k Key) String() string {
	switch k.Kind {
	case FieldKey:
		return k.Field
	case IndexKey:
		return strconv.Itoa(k.Index)
	}
	return ""
}

// Interface returns nil, the field string or the index int.
func (k Key) Interface() any {
	switch k.Kind {
	case FieldKey:
		return k.Field
	case IndexKey:
		return k.Index
	}
	return nil
}
