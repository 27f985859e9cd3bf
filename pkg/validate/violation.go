package validate

import (
	"fmt"
	"io"
)

// Kind identifies the class of a violation found by Check.
type Kind int

const (
	// RootReferenced means the root node appears as a child of another node.
	RootReferenced Kind = iota
	// NodeRefCount means a non-root internal node is referenced as a child
	// a number of times other than exactly once.
	NodeRefCount
	// LeafRefCount means a leaf is referenced as a child a number of times
	// other than exactly once.
	LeafRefCount
	// VolumeOrder means a child node's box volume exceeds its parent's.
	VolumeOrder
)

// Violation is one structural or geometric defect found in a hierarchy.
// Which fields are meaningful depends on Kind: reference-count kinds fill
// Node and Count (Node holds the leaf index for LeafRefCount); VolumeOrder
// fills Node, Child and the two volumes.
type Violation struct {
	Kind         Kind
	Node         int
	Child        int
	Count        int
	ParentVolume float64
	ChildVolume  float64
}

func (v Violation) String() string {
	switch v.Kind {
	case RootReferenced:
		return fmt.Sprintf("root node was referenced %d times", v.Count)
	case NodeRefCount:
		return fmt.Sprintf("node %d was referenced %d times", v.Node, v.Count)
	case LeafRefCount:
		return fmt.Sprintf("leaf %d was referenced %d times", v.Node, v.Count)
	case VolumeOrder:
		return fmt.Sprintf("node %d volume %8.04f is less than child node %d volume %8.04f",
			v.Node, v.ParentVolume, v.Child, v.ChildVolume)
	default:
		return fmt.Sprintf("unknown violation kind %d", int(v.Kind))
	}
}

// Report writes one human-readable diagnostic line per violation to w.
// Formatting lives here so Check itself stays a pure function over the
// hierarchy.
func Report(w io.Writer, violations []Violation) {
	for _, v := range violations {
		fmt.Fprintln(w, v.String())
	}
}
