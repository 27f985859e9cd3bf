package validate

import "github.com/dmaas/go-bvh-verify/pkg/core"

// Status is the overall outcome of a hierarchy check.
type Status int

const (
	Success Status = iota
	Failure
)

// Hierarchy is the read-only view of a bounding volume hierarchy that the
// checker consumes: a flat array of internal nodes over implicit leaves,
// with the root at index 0. *core.Tree implements it; builders can supply
// their own encoding.
type Hierarchy interface {
	NodeCount() int
	Node(i int) core.Node
}

// Check audits a hierarchy in two phases: a structural reference-count
// audit over every node and leaf, then, only if the structure is sound, a
// geometric audit proving that no child's box volume exceeds its parent's.
// If errorsFatal is true, the audit stops at the first violating node (the
// geometric phase keeps a left-biased early return, see checkVolumes);
// otherwise every node is visited and every violation collected.
// Violations are returned in detection order.
func Check(h Hierarchy, errorsFatal bool) (Status, []Violation) {
	status, violations := checkStructure(h, errorsFatal)
	if status != Success {
		return status, violations
	}
	return checkVolumes(h, errorsFatal)
}

// checkStructure verifies the tree's reference counts in one sweep over the
// internal nodes: the root must never appear as a child, every other
// internal node must appear as a child exactly once, and every leaf must
// appear as a child exactly once.
func checkStructure(h Hierarchy, errorsFatal bool) (Status, []Violation) {
	var violations []Violation

	nodeCounts := make([]int, h.NodeCount())
	leafCounts := make([]int, h.NodeCount()+1)

	for i := 0; i < h.NodeCount(); i++ {
		node := h.Node(i)

		if node.Left.IsLeaf() {
			leafCounts[node.Left.LeafIndex()]++
		} else {
			nodeCounts[node.Left.NodeIndex()]++
		}

		if node.Right.IsLeaf() {
			leafCounts[node.Right.LeafIndex()]++
		} else {
			nodeCounts[node.Right.NodeIndex()]++
		}
	}

	if len(nodeCounts) > 0 && nodeCounts[0] > 0 {
		violations = append(violations, Violation{Kind: RootReferenced, Node: 0, Count: nodeCounts[0]})
		if errorsFatal {
			return Failure, violations
		}
	}

	for i := 1; i < len(nodeCounts); i++ {
		if nodeCounts[i] != 1 {
			violations = append(violations, Violation{Kind: NodeRefCount, Node: i, Count: nodeCounts[i]})
			if errorsFatal {
				return Failure, violations
			}
		}
	}

	for i, n := range leafCounts {
		if n != 1 {
			violations = append(violations, Violation{Kind: LeafRefCount, Node: i, Count: n})
			if errorsFatal {
				return Failure, violations
			}
		}
	}

	if len(violations) > 0 {
		return Failure, violations
	}
	return Success, nil
}

// frame is one suspended step of the explicit volume-audit descent. stage
// tracks how far the frame has progressed so results arriving from the
// left and right descents can propagate differently.
type frame struct {
	node   int
	stage  int // 0: audit this node, 1: left result ready, 2: right result ready
	status Status
}

// checkVolumes walks the tree in preorder with an explicit frame stack
// (recursion depth would otherwise equal tree height) and records a
// violation for every internal child whose box volume exceeds its
// parent's. Both children of a node are always checked and recorded before
// any early return.
//
// Under errorsFatal the early-return behavior is asymmetric: a node with a
// local violation fails immediately without descending; a Failure
// surfacing through the left-child descent aborts the enclosing frame
// before its right subtree is visited; a Failure from the right-child
// descent only folds into the frame's status and propagates after that
// frame completes. Callers observe the asymmetry in which violations get
// reported, so it must not be changed to a symmetric early return.
func checkVolumes(h Hierarchy, errorsFatal bool) (Status, []Violation) {
	if h.NodeCount() == 0 {
		return Success, nil
	}

	var violations []Violation

	stack := []frame{{node: 0}}
	ret := Success // result of the most recently completed frame

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		node := h.Node(f.node)

		switch f.stage {
		case 0:
			parentVolume := node.Box.Volume()
			errs := 0

			if !node.Left.IsLeaf() {
				child := node.Left.NodeIndex()
				childVolume := h.Node(child).Box.Volume()
				if parentVolume < childVolume {
					violations = append(violations, Violation{
						Kind:         VolumeOrder,
						Node:         f.node,
						Child:        child,
						ParentVolume: parentVolume,
						ChildVolume:  childVolume,
					})
					errs++
				}
			}

			if !node.Right.IsLeaf() {
				child := node.Right.NodeIndex()
				childVolume := h.Node(child).Box.Volume()
				if parentVolume < childVolume {
					violations = append(violations, Violation{
						Kind:         VolumeOrder,
						Node:         f.node,
						Child:        child,
						ParentVolume: parentVolume,
						ChildVolume:  childVolume,
					})
					errs++
				}
			}

			if errs > 0 && errorsFatal {
				ret = Failure
				stack = stack[:len(stack)-1]
				continue
			}

			if errs > 0 {
				f.status = Failure
			} else {
				f.status = Success
			}

			f.stage = 1
			if !node.Left.IsLeaf() {
				stack = append(stack, frame{node: node.Left.NodeIndex()})
			} else {
				ret = Success
			}

		case 1:
			if ret == Failure {
				if errorsFatal {
					ret = Failure
					stack = stack[:len(stack)-1]
					continue
				}
				f.status = Failure
			}

			f.stage = 2
			if !node.Right.IsLeaf() {
				stack = append(stack, frame{node: node.Right.NodeIndex()})
			} else {
				ret = Success
			}

		case 2:
			if ret == Failure {
				f.status = Failure
			}
			ret = f.status
			stack = stack[:len(stack)-1]
		}
	}

	if ret == Failure {
		return Failure, violations
	}
	return Success, violations
}
