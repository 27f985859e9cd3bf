package core

// ChildRef is a tagged reference from an internal node to one of its two
// children: either another internal node or a leaf. The tag lives in the
// high bit so a flat node array stays compact.
type ChildRef uint32

const leafBit ChildRef = 1 << 31

// NodeRef returns a reference to the internal node at index i.
func NodeRef(i int) ChildRef {
	return ChildRef(i)
}

// LeafRef returns a reference to the leaf at index i.
func LeafRef(i int) ChildRef {
	return ChildRef(i) | leafBit
}

// IsLeaf reports whether the reference points at a leaf.
func (r ChildRef) IsLeaf() bool {
	return r&leafBit != 0
}

// NodeIndex returns the internal-node index of a non-leaf reference.
func (r ChildRef) NodeIndex() int {
	return int(r &^ leafBit)
}

// LeafIndex returns the leaf index of a leaf reference.
func (r ChildRef) LeafIndex() int {
	return int(r &^ leafBit)
}

// Node is one internal node of a flat bounding volume hierarchy.
// Leaves carry no box of their own; their geometry belongs to the
// primitives the builder indexed.
type Node struct {
	Box   AABB
	Left  ChildRef
	Right ChildRef
}

// Tree is a binary bounding volume hierarchy over P primitives, encoded as
// a flat array of P-1 internal nodes. The root is node 0; the P leaves are
// implicit and addressed by leaf index 0..P-1.
type Tree struct {
	Nodes []Node
}

// NodeCount returns the number of internal nodes.
func (t *Tree) NodeCount() int {
	return len(t.Nodes)
}

// LeafCount returns the number of leaves (one per primitive).
func (t *Tree) LeafCount() int {
	return len(t.Nodes) + 1
}

// Node returns the internal node at index i.
func (t *Tree) Node(i int) Node {
	return t.Nodes[i]
}
