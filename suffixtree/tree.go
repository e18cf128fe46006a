package suffixtree

import (
	"bytes"

	"github.com/forestrie/go-suffixtree/alphabet"
)

// Tree is a suffix tree over a single source string.
//
// A Tree is immutable once New returns and may be shared across
// goroutines for queries; IndexOf keeps its traversal state in a local
// value, never on the tree.
type Tree struct {
	// expanded is the source with one Terminal byte appended. All edge
	// label positions index into it.
	expanded []byte
	alpha    alphabet.Alphabet

	arena

	root NodeRef

	// leafCount is the number of leaf ids assigned so far. It is local
	// to this tree and equals len(expanded) once construction finishes.
	leafCount int32
}

// New constructs the suffix tree of source over alphabet a.
//
// Every byte of source must be a member of a, and source must not
// contain the Terminal byte (it is appended internally).
func New(source []byte, a alphabet.Alphabet) (*Tree, error) {
	if !a.Contains(alphabet.Terminal) {
		return nil, ErrTerminalNotInAlphabet
	}
	if bytes.IndexByte(source, alphabet.Terminal) >= 0 {
		return nil, ErrTerminalInSource
	}

	expanded := make([]byte, 0, len(source)+1)
	expanded = append(expanded, source...)
	expanded = append(expanded, alphabet.Terminal)
	if !a.ContainsAll(expanded) {
		return nil, ErrAlphabetMismatch
	}

	t := &Tree{
		expanded: expanded,
		alpha:    a,
		arena:    arena{width: a.Size()},
	}

	t.root = t.newNode()
	dummy := t.newDummy()
	t.node(t.root).suffixLink = dummy

	t.construct()
	return t, nil
}

// newDummy allocates the auxiliary node above the root. Each alphabet
// symbol gets a unit-length edge back to the root, so a one-character
// descent from the dummy always lands at the root. The dummy's own
// suffix link is never followed; it starts out pointing at itself, and
// branch may later overwrite it as a scratch stitch target.
func (t *Tree) newDummy() NodeRef {
	dummy := t.newNode()
	t.node(dummy).suffixLink = dummy

	children := t.node(dummy).children
	for s := range children {
		eRef := t.newEdge()
		e := t.edge(eRef)
		e.start = invalidStart
		e.length = 1
		e.child = t.root
		children[s] = eRef
	}
	return dummy
}

// dummy returns the auxiliary node above the root.
func (t *Tree) dummy() NodeRef {
	return t.node(t.root).suffixLink
}

// LeafCount returns the number of leaves in the tree. For a source of m
// bytes this is always m+1, one leaf per suffix of the expanded string.
func (t *Tree) LeafCount() int {
	return int(t.leafCount)
}
