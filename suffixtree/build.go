package suffixtree

// construct runs Ukkonen's online construction over the expanded
// string. Per character there are three classical stages; the first
// (extending every leaf label by one character) is implicit here, since
// leaf edges are created with their final length and grow by virtue of
// characters being consumed.
func (t *Tree) construct() {
	it := position{node: t.root, edge: NoEdge}

	for pos := int32(0); pos < int32(len(t.expanded)); pos++ {
		t.branch(pos, &it)
		t.advance(t.expanded[pos], &it)
	}
}

// branch is the second Ukkonen stage: for every implicit suffix that
// cannot yet continue with the character at pos, create the missing
// branch, then hop the suffix link and rescan to the next shorter
// suffix. The stage ends once the active point can continue with the
// new character (which advance then consumes).
//
// Nodes created by edge splits are stitched together by suffix links as
// they appear: each new node becomes the link target of the previous
// one, and the final pending node links to wherever the active point
// settles.
func (t *Tree) branch(pos int32, it *position) {
	// Seed with the dummy so the unconditional stitch below has a
	// harmless target when no split happens (the dummy's own suffix
	// link is never read).
	last := t.dummy()

	if t.gapInEdge(pos, it) {
		last = t.splitEdge(it)
		t.addLeafEdge(pos, last)
		t.followSuffixLink(it)
	}

	for t.gapInEdge(pos, it) {
		u := t.splitEdge(it)
		t.node(last).suffixLink = u
		last = u
		t.addLeafEdge(pos, u)
		t.followSuffixLink(it)
	}

	t.node(last).suffixLink = it.node

	for t.gapAtNode(pos, it) {
		// Nodes here already exist and are already linked; only the
		// missing leaf edge is added.
		t.addLeafEdge(pos, it.node)
		t.followSuffixLink(it)
	}
}

// gapInEdge reports whether the active point lies inside an edge whose
// label does not continue with the character at pos.
func (t *Tree) gapInEdge(pos int32, it *position) bool {
	if it.depth == 0 {
		return false
	}
	e := t.edge(it.edge)
	return t.expanded[e.start+it.depth] != t.expanded[pos]
}

// gapAtNode reports whether the active point sits exactly at a node
// with no child edge on the character at pos. Never true at the dummy,
// which has a child on every symbol.
func (t *Tree) gapAtNode(pos int32, it *position) bool {
	if it.depth != 0 {
		return false
	}
	c := t.expanded[pos]
	return t.node(it.node).children[t.alpha.IndexOf(c)] == NoEdge
}

// splitEdge breaks the active edge at the active depth, inserting a new
// inner node u. The existing edge record keeps the label head and now
// ends at u; a fresh edge under u carries the label tail to the
// original child. Returns u, whose suffix link is stitched by branch.
func (t *Tree) splitEdge(it *position) NodeRef {
	// Allocate first: arena pointers do not survive allocation.
	tailRef := t.newEdge()
	u := t.newNode()

	e := t.edge(it.edge)
	mid := e.start + it.depth

	tail := t.edge(tailRef)
	tail.start = mid
	tail.length = e.length - it.depth
	tail.child = e.child

	t.node(u).children[t.alpha.IndexOf(t.expanded[mid])] = tailRef

	e.length = it.depth
	e.child = u
	return u
}

// addLeafEdge hangs a fresh leaf edge for the suffix starting at pos
// off n. The edge is born with its final length, reaching the end of
// the expanded string.
func (t *Tree) addLeafEdge(pos int32, n NodeRef) {
	leaf := leafRef(t.leafCount)
	t.leafCount++

	eRef := t.newEdge()
	e := t.edge(eRef)
	e.start = pos
	e.length = int32(len(t.expanded)) - pos
	e.child = leaf

	slot := &t.node(n).children[t.alpha.IndexOf(t.expanded[pos])]
	if *slot != NoEdge {
		panic("suffixtree: leaf edge slot already occupied")
	}
	*slot = eRef
}
