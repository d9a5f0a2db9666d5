package dom

import (
	"maps"
	"slices"
)

// Node is a retained element: a tag, optional text, inline styles,
// attributes, pointer handlers and children.
type Node struct {
	tag      string
	text     string
	attrs    map[string]string
	style    map[string]string
	parent   *Node
	children []*Node
	rect     Rect
	ref      *Ref
	handlers map[EventType]Handler

	// Keys set by the last render; see Patch.
	declaredAttrs map[string]struct{}
	declaredStyle map[string]struct{}
}

var (
	_ Element   = (*Node)(nil)
	_ Container = (*Node)(nil)
)

// NewNode creates a detached node with the given children.
func NewNode(tag string, children ...*Node) *Node {
	n := &Node{
		tag:   tag,
		attrs: make(map[string]string),
		style: make(map[string]string),
	}
	n.AppendChild(children...)
	return n
}

// Tag returns the node's tag name.
func (n *Node) Tag() string { return n.tag }

// Text returns the node's text content (not including descendants).
func (n *Node) Text() string { return n.text }

// SetText replaces the node's text content.
func (n *Node) SetText(text string) { n.text = text }

// WithText sets the text content and returns n.
func (n *Node) WithText(text string) *Node {
	n.text = text
	return n
}

// WithStyle sets an inline style property and returns n.
func (n *Node) WithStyle(name, value string) *Node {
	n.SetStyle(name, value)
	return n
}

// WithAttribute sets an attribute and returns n.
func (n *Node) WithAttribute(name, value string) *Node {
	n.SetAttribute(name, value)
	return n
}

// WithRef attaches ref; it is pointed at the node once the node is mounted.
func (n *Node) WithRef(ref *Ref) *Node {
	n.ref = ref
	return n
}

// On registers handler for the event type and returns n. A nil handler
// removes the registration.
func (n *Node) On(t EventType, handler Handler) *Node {
	if handler == nil {
		delete(n.handlers, t)
		return n
	}
	if n.handlers == nil {
		n.handlers = make(map[EventType]Handler)
	}
	n.handlers[t] = handler
	return n
}

// Handler returns the handler registered for t, if any.
func (n *Node) Handler(t EventType) Handler { return n.handlers[t] }

// Style implements Element.
func (n *Node) Style(name string) string { return n.style[name] }

// SetStyle implements Element.
func (n *Node) SetStyle(name, value string) {
	if value == "" {
		delete(n.style, name)
		return
	}
	n.style[name] = value
}

// StyleNames returns the set inline style property names, sorted.
func (n *Node) StyleNames() []string {
	return slices.Sorted(maps.Keys(n.style))
}

// Attribute implements Element.
func (n *Node) Attribute(name string) string { return n.attrs[name] }

// SetAttribute implements Element.
func (n *Node) SetAttribute(name, value string) {
	if value == "" {
		delete(n.attrs, name)
		return
	}
	n.attrs[name] = value
}

// Parent returns the parent node, or nil.
func (n *Node) Parent() *Node { return n.parent }

// ParentElement implements Element.
func (n *Node) ParentElement() Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// Children returns the direct children. The slice must not be modified.
func (n *Node) Children() []*Node { return n.children }

// AppendChild adds children at the end, detaching them from any previous
// parent.
func (n *Node) AppendChild(children ...*Node) {
	for _, c := range children {
		if c == nil {
			continue
		}
		c.detach()
		c.parent = n
		n.children = append(n.children, c)
	}
}

// SetChildren replaces all children. Previous children that are not in the
// new set are detached.
func (n *Node) SetChildren(children ...*Node) {
	for _, old := range n.children {
		old.parent = nil
	}
	n.children = nil
	n.AppendChild(children...)
}

// RemoveChild detaches child if it is a direct child of n.
func (n *Node) RemoveChild(child *Node) {
	if child != nil && child.parent == n {
		child.detach()
	}
}

func (n *Node) detach() {
	if n.parent == nil {
		return
	}
	p := n.parent
	p.children = slices.DeleteFunc(p.children, func(c *Node) bool { return c == n })
	n.parent = nil
}

// ChildIndex implements Container.
func (n *Node) ChildIndex(child Element) int {
	c, ok := child.(*Node)
	if !ok || c == nil {
		return -1
	}
	return slices.Index(n.children, c)
}

// Contains implements Element.
func (n *Node) Contains(other Element) bool {
	o, ok := other.(*Node)
	if !ok || o == nil {
		return false
	}
	for ; o != nil; o = o.parent {
		if o == n {
			return true
		}
	}
	return false
}

// Walk visits n and its descendants in document order. Returning false from
// fn skips the node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Clone returns a detached deep copy of n's subtree. Handlers and refs are
// shared with the original; layout rects are not copied.
func (n *Node) Clone() *Node {
	c := &Node{
		tag:      n.tag,
		text:     n.text,
		attrs:    maps.Clone(n.attrs),
		style:    maps.Clone(n.style),
		ref:      n.ref,
		handlers: maps.Clone(n.handlers),
	}
	for _, child := range n.children {
		cc := child.Clone()
		cc.parent = c
		c.children = append(c.children, cc)
	}
	return c
}

// LayoutRect implements Element.
func (n *Node) LayoutRect() Rect { return n.rect }

// SetLayoutRect assigns the box computed by a layout pass.
func (n *Node) SetLayoutRect(r Rect) { n.rect = r }

// SizedRect returns the layout rect with width and height overrides applied.
// Unparseable overrides are ignored here; layout passes report them.
func (n *Node) SizedRect() Rect {
	r := n.rect
	if v := n.style[PropWidth]; v != "" {
		if w, err := ParsePx(v); err == nil {
			r.Width = w
		}
	}
	if v := n.style[PropHeight]; v != "" {
		if h, err := ParsePx(v); err == nil {
			r.Height = h
		}
	}
	return r
}

// BoundingRect implements Element.
func (n *Node) BoundingRect() Rect {
	dx, dy := n.translation()
	return n.SizedRect().Translate(dx, dy)
}

// translation sums the translate transforms of n and its ancestors.
func (n *Node) translation() (dx, dy float64) {
	for p := n; p != nil; p = p.parent {
		if x, y, err := ParseTranslate(p.style[PropTransform]); err == nil {
			dx += x
			dy += y
		}
	}
	return dx, dy
}

// zIndex returns the z-index of the nearest node, starting at n, that sets
// one. Nodes without a positioned ancestor paint at 0.
func (n *Node) zIndex() int {
	for p := n; p != nil; p = p.parent {
		if z, ok, err := ParseZIndex(p.style[PropZIndex]); err == nil && ok {
			return z
		}
	}
	return 0
}
