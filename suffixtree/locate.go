package suffixtree

import (
	"bytes"

	"github.com/forestrie/go-suffixtree/alphabet"
)

// IndexOf returns the position of the leftmost occurrence of pattern in
// the source string, or -1 if pattern does not occur. The empty pattern
// occurs at 0.
//
// Pattern bytes outside the alphabet cannot occur and yield -1, as does
// a pattern containing the Terminal byte (it is not part of the source).
func (t *Tree) IndexOf(pattern []byte) int32 {
	if len(pattern) == 0 {
		return 0
	}
	if bytes.IndexByte(pattern, alphabet.Terminal) >= 0 {
		return -1
	}

	it := position{node: t.root, edge: NoEdge}

	// Tracks the most recently fully traversed edge, for the case where
	// the pattern ends exactly at an inner node. Seeded with a dummy
	// edge only so it is always a valid ref; any match of length >= 1
	// overwrites it before it can be read.
	lastEdge := t.node(t.dummy()).children[0]

	for _, c := range pattern {
		if it.edge == NoEdge {
			k := t.alpha.IndexOf(c)
			if k < 0 {
				return -1
			}
			it.edge = t.node(it.node).children[k]
			if it.edge == NoEdge {
				return -1
			}
		}

		e := t.edge(it.edge)
		if t.expanded[e.start+it.depth] != c {
			return -1
		}
		it.depth++

		if it.depth == e.length {
			lastEdge = it.edge

			it.node = e.child
			it.edge = NoEdge
			it.depth = 0

			// The expanded string ends with the unique Terminal, which
			// the pattern cannot contain, so a full edge traversal
			// never runs onto a leaf.
			if IsLeaf(it.node) {
				panic("suffixtree: pattern walk descended onto a leaf")
			}
		}
	}

	// The match end is on the last edge entered; if the pattern ended
	// exactly at a node, that is the far end of the edge leading in.
	eRef, depth := it.edge, it.depth
	if eRef == NoEdge {
		eRef = lastEdge
		depth = t.edge(eRef).length
	}

	return t.edge(eRef).start + depth - int32(len(pattern))
}

// Contains reports whether pattern occurs in the source string.
func (t *Tree) Contains(pattern []byte) bool {
	return t.IndexOf(pattern) != -1
}
