package suffixtree

/*

# Suffix tree over a dense byte alphabet (arena refs, online construction)

This package builds a suffix tree for a byte string by Ukkonen's online
algorithm and answers leftmost-occurrence substring queries against it.

It follows the same style as the rest of our index primitives:

- small, composable functions
- flat append-only stores addressed by integer refs
- index arithmetic instead of pointers

## Core invariants

Construction relies on:

1. the source string contains no Terminal byte; exactly one Terminal is
   appended, so every suffix of the expanded string ends at a leaf and no
   suffix is a prefix of another
2. every byte of the expanded string is a member of the alphabet
3. leaf edges are created with their final length (end of the expanded
   string), so the first Ukkonen rule is a no-op and leaf labels grow
   implicitly as characters are consumed

If (3) were relaxed to build a tree incrementally across multiple
appends, the stored leaf lengths would go stale. Whole-string
construction is the supported mode.

## Why refs instead of pointers

Suffix links are cyclic (root links to the dummy, whose unit edges return
to the root), so a pointer-owned node graph would be cyclic too. With two
append-only arenas and int32 refs the ownership story is a pair of slices;
leaves are never allocated at all, they are encoded as negative refs:

	ref >= 0  inner node, index into the node arena
	ref < 0   leaf number -(ref+1)

## The dummy node

The root's suffix link is an auxiliary "dummy" node with a unit-length
edge back to the root on every alphabet symbol. After a suffix-link hop
the rescan loop then needs no special case at the top of the tree: from
the dummy, any one-character descent lands at the root. No other control
flow touches the dummy.

*/
