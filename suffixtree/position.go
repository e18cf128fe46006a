package suffixtree

// position is a location inside the tree: an origin node, the edge
// leaving it that the location lies on, and how many label characters
// deep into that edge it is. depth 0 means the location is exactly at
// node and edge is NoEdge.
//
// The builder's active point and the locator's walk state are both
// position values.
type position struct {
	node  NodeRef
	edge  EdgeRef
	depth int32
}

// followSuffixLink moves it to the position representing the current
// implicit string with its first character dropped: hop the origin's
// suffix link, then rescan by whole-edge skips. The remaining substring
// is known to be present already, so only the first symbol of each hop
// is examined (the skip/count trick).
func (t *Tree) followSuffixLink(it *position) {
	if it.depth == 0 {
		it.node = t.node(it.node).suffixLink
		it.edge = NoEdge
		return
	}

	// The label being rescanned is that of the current edge; its start
	// survives the hop, the origin does not.
	start := t.edge(it.edge).start

	it.node = t.node(it.node).suffixLink
	it.edge = t.node(it.node).children[t.alpha.IndexOf(t.expanded[start])]
	if it.edge == NoEdge {
		panic("suffixtree: rescan found no edge for a present substring")
	}

	processed := int32(0)
	for it.depth >= t.edge(it.edge).length {
		e := t.edge(it.edge)
		it.node = e.child
		it.depth -= e.length
		processed += e.length

		if it.depth == 0 {
			it.edge = NoEdge
			return
		}

		it.edge = t.node(it.node).children[t.alpha.IndexOf(t.expanded[start+processed])]
		if it.edge == NoEdge {
			panic("suffixtree: rescan found no edge for a present substring")
		}
	}
}

// advance moves it one character down the tree on symbol c. The caller
// guarantees c is reachable: either the current edge continues with c,
// or the origin node has a child edge on c.
func (t *Tree) advance(c byte, it *position) {
	if it.depth == 0 {
		it.edge = t.node(it.node).children[t.alpha.IndexOf(c)]
		if it.edge == NoEdge {
			panic("suffixtree: descent on an absent symbol")
		}
	}

	e := t.edge(it.edge)
	it.depth++

	if it.depth == e.length {
		it.node = e.child
		it.edge = NoEdge
		it.depth = 0
	}
}
