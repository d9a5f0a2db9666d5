package dom

// Ref is a mutable cell pointing at a mounted node.
type Ref struct {
	Current *Node
}

// Element returns Current as an Element, or a nil interface when nothing is
// mounted.
func (r *Ref) Element() Element {
	if r == nil || r.Current == nil {
		return nil
	}
	return r.Current
}

// Mount records n's current attributes and styles as declared by render and
// points the refs in n's subtree at their nodes.
func Mount(n *Node) {
	n.Walk(func(c *Node) bool {
		c.declaredAttrs = keySet(c.attrs)
		c.declaredStyle = keySet(c.style)
		if c.ref != nil {
			c.ref.Current = c
		}
		return true
	})
}

// Unmount clears refs in n's subtree that still point into it.
func Unmount(n *Node) {
	n.Walk(func(c *Node) bool {
		if c.ref != nil && c.ref.Current == c {
			c.ref.Current = nil
		}
		return true
	})
}

// Patch updates the mounted node dst to match the freshly rendered src and
// returns dst. src is consumed and must not be used afterwards.
//
// Attributes and style properties declared by src overwrite dst; those dst
// declared on its previous render but src no longer declares are removed.
// Properties set imperatively (never declared by a render) survive, so a
// drag in progress keeps its size and transform overrides across renders.
// Children are patched by position; a child whose tag changed is replaced.
func Patch(dst, src *Node) *Node {
	dst.tag = src.tag
	dst.text = src.text
	dst.handlers = src.handlers

	dst.declaredAttrs = patchMap(dst.attrs, src.attrs, dst.declaredAttrs)
	dst.declaredStyle = patchMap(dst.style, src.style, dst.declaredStyle)

	if dst.ref != nil && dst.ref != src.ref && dst.ref.Current == dst {
		dst.ref.Current = nil
	}
	dst.ref = src.ref
	if dst.ref != nil {
		dst.ref.Current = dst
	}

	srcChildren := src.children
	old := dst.children
	next := make([]*Node, 0, len(srcChildren))
	for i, sc := range srcChildren {
		if i < len(old) && old[i].tag == sc.tag {
			next = append(next, Patch(old[i], sc))
			continue
		}
		if i < len(old) {
			Unmount(old[i])
		}
		Mount(sc)
		next = append(next, sc)
	}
	for _, extra := range old[min(len(old), len(srcChildren)):] {
		Unmount(extra)
	}
	dst.SetChildren(next...)
	return dst
}

func patchMap(dst, src map[string]string, declared map[string]struct{}) map[string]struct{} {
	for k := range declared {
		if _, still := src[k]; !still {
			delete(dst, k)
		}
	}
	for k, v := range src {
		dst[k] = v
	}
	return keySet(src)
}

func keySet(m map[string]string) map[string]struct{} {
	out := make(map[string]struct{}, len(m))
	for k := range m {
		out[k] = struct{}{}
	}
	return out
}
