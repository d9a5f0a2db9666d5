package render

import (
	"strconv"

	"github.com/felixfbecker/resizegrid/pkg/dom"
)

// HandleProps are the props for an item's resize handle.
type HandleProps struct {
	TabIndex      int
	OnPointerDown dom.Handler
	Ref           *dom.Ref
}

// Apply attaches the props to n and returns n.
func (p HandleProps) Apply(n *dom.Node) *dom.Node {
	return n.
		WithAttribute(dom.AttrTabIndex, strconv.Itoa(p.TabIndex)).
		WithRef(p.Ref).
		On(dom.PointerDown, p.OnPointerDown)
}

// ItemProps are the props for one grid item.
type ItemProps struct {
	Key string

	// Style holds the grid placement properties for the item.
	Style map[string]string

	TabIndex      int
	OnPointerDown dom.Handler
	Ref           *dom.Ref

	Handle HandleProps
}

// Apply attaches the props, except the handle props, to n and returns n.
// Applying twice is harmless.
func (p ItemProps) Apply(n *dom.Node) *dom.Node {
	for name, value := range p.Style {
		n.SetStyle(name, value)
	}
	return n.
		WithAttribute(dom.AttrKey, p.Key).
		WithAttribute(dom.AttrTabIndex, strconv.Itoa(p.TabIndex)).
		WithRef(p.Ref).
		On(dom.PointerDown, p.OnPointerDown)
}
