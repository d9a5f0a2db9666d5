package dom

import "sort"

type hit struct {
	node  *Node
	z     int
	order int
}

// ElementsFromPoint implements Container. It returns n and every descendant
// whose bounding rect contains (x, y), topmost first. Paint order is the
// effective z-index, then document order, so children paint over parents
// and later siblings over earlier ones.
func (n *Node) ElementsFromPoint(x, y float64) []Element {
	var hits []hit
	order := 0
	n.Walk(func(c *Node) bool {
		if c.BoundingRect().Contains(x, y) {
			hits = append(hits, hit{node: c, z: c.zIndex(), order: order})
		}
		order++
		return true
	})

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].z != hits[j].z {
			return hits[i].z > hits[j].z
		}
		return hits[i].order > hits[j].order
	})

	out := make([]Element, len(hits))
	for i, h := range hits {
		out[i] = h.node
	}
	return out
}

// PaintOrder returns n's subtree in the order it should be painted, bottom
// first. It is the reverse of the hit-test order for a point covering every
// node.
func (n *Node) PaintOrder() []*Node {
	var nodes []hit
	order := 0
	n.Walk(func(c *Node) bool {
		nodes = append(nodes, hit{node: c, z: c.zIndex(), order: order})
		order++
		return true
	})
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].z != nodes[j].z {
			return nodes[i].z < nodes[j].z
		}
		return nodes[i].order < nodes[j].order
	})
	out := make([]*Node, len(nodes))
	for i, h := range nodes {
		out[i] = h.node
	}
	return out
}
