package suffixtree

import "errors"

// NodeRef addresses a node in the tree.
//
// A non-negative ref is an index into the inner-node arena. A negative
// ref encodes a leaf with number -(ref+1); leaves have no record.
type NodeRef = int32

// EdgeRef is an edge-arena record index.
type EdgeRef = int32

// NoEdge marks an empty child slot.
const NoEdge = EdgeRef(-1)

// invalidStart marks edge labels that must never be read (dummy edges).
const invalidStart = int32(-1)

var (
	ErrTerminalNotInAlphabet = errors.New("suffixtree: alphabet does not contain the terminal byte")
	ErrTerminalInSource      = errors.New("suffixtree: source contains the terminal byte")
	ErrAlphabetMismatch      = errors.New("suffixtree: source contains bytes outside the alphabet")
)

// IsLeaf reports whether ref encodes a leaf.
func IsLeaf(ref NodeRef) bool {
	return ref < 0
}

// LeafID returns the leaf number encoded by ref.
func LeafID(ref NodeRef) int32 {
	if !IsLeaf(ref) {
		panic("suffixtree: LeafID of inner node ref")
	}
	return -ref - 1
}

// leafRef encodes leaf number id as a NodeRef.
func leafRef(id int32) NodeRef {
	return -(id + 1)
}
