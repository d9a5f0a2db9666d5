package dom

// Element is the capability the interaction controller needs from a rendered
// grid item. Implementations are owned elsewhere; holders mutate presentation
// state only and never control the element's lifecycle.
type Element interface {
	// BoundingRect returns the on-screen box, including size overrides and
	// translations.
	BoundingRect() Rect

	// LayoutRect returns the box assigned by layout, before overrides.
	LayoutRect() Rect

	// Style returns an inline style property, or "" when unset.
	Style(name string) string

	// SetStyle sets an inline style property. An empty value removes it.
	SetStyle(name, value string)

	// Attribute returns an attribute value, or "" when unset.
	Attribute(name string) string

	// SetAttribute sets an attribute. An empty value removes it.
	SetAttribute(name, value string)

	// ParentElement returns the parent, or nil for a root.
	ParentElement() Element

	// Contains reports whether other is this element or one of its
	// descendants.
	Contains(other Element) bool
}

// Container is the grid container: an element that can hit-test its subtree
// and locate its direct children.
type Container interface {
	Element

	// ElementsFromPoint returns every element under (x, y), topmost first.
	ElementsFromPoint(x, y float64) []Element

	// ChildIndex returns the index of child among the direct children, or -1.
	ChildIndex(child Element) int
}
