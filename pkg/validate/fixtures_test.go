package validate

import (
	"github.com/dmaas/go-bvh-verify/pkg/core"
)

// unitBoxes returns p unit cubes laid out along the X axis, one per leaf.
func unitBoxes(p int) []core.AABB {
	boxes := make([]core.AABB, p)
	for i := range boxes {
		boxes[i] = core.NewAABB(
			core.NewVec3(float64(i), 0, 0),
			core.NewVec3(float64(i)+1, 1, 1),
		)
	}
	return boxes
}

// buildTree constructs a well-formed hierarchy over the given leaf boxes by
// median split, for use as a known-good fixture. Left subtrees are emitted
// before right subtrees, so the left spine occupies consecutive indices
// starting at the root.
func buildTree(leafBoxes []core.AABB) *core.Tree {
	t := &core.Tree{}
	buildSubtree(t, leafBoxes, 0, len(leafBoxes))
	return t
}

func buildSubtree(t *core.Tree, boxes []core.AABB, lo, hi int) core.ChildRef {
	if hi-lo == 1 {
		return core.LeafRef(lo)
	}

	// Reserve this node's slot before recursing so the root lands at index 0.
	idx := len(t.Nodes)
	t.Nodes = append(t.Nodes, core.Node{})

	mid := (lo + hi) / 2
	left := buildSubtree(t, boxes, lo, mid)
	right := buildSubtree(t, boxes, mid, hi)

	box := boxes[lo]
	for i := lo + 1; i < hi; i++ {
		box = box.Union(boxes[i])
	}

	t.Nodes[idx] = core.Node{Box: box, Left: left, Right: right}
	return core.NodeRef(idx)
}
