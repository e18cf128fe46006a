package suffixtree

// node is an inner vertex. children holds one edge slot per alphabet
// symbol, indexed by the symbol's dense index.
type node struct {
	suffixLink NodeRef
	children   []EdgeRef
}

// edge is a labelled arc to a child node or leaf. The label is
// expanded[start : start+length]. Edges to leaves are created with
// length running to the end of the expanded string.
type edge struct {
	start  int32
	length int32
	child  NodeRef
}

// arena owns the two append-only record stores. Refs are stable for the
// lifetime of the tree; there is no deletion.
type arena struct {
	nodes []node
	edges []edge

	// width is the alphabet size, the children slot count of every node.
	width int
}

func (a *arena) newNode() NodeRef {
	children := make([]EdgeRef, a.width)
	for i := range children {
		children[i] = NoEdge
	}
	a.nodes = append(a.nodes, node{children: children})
	return NodeRef(len(a.nodes) - 1)
}

func (a *arena) newEdge() EdgeRef {
	a.edges = append(a.edges, edge{})
	return EdgeRef(len(a.edges) - 1)
}

// node returns the record for ref. ref must address an inner node.
//
// The returned pointer is invalidated by the next newNode.
func (a *arena) node(ref NodeRef) *node {
	return &a.nodes[ref]
}

// edge returns the record for ref.
//
// The returned pointer is invalidated by the next newEdge.
func (a *arena) edge(ref EdgeRef) *edge {
	if ref == NoEdge {
		panic("suffixtree: edge lookup with NoEdge")
	}
	return &a.edges[ref]
}
