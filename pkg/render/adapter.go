package render

import (
	"github.com/felixfbecker/resizegrid/pkg/dom"
	"github.com/felixfbecker/resizegrid/pkg/errors"
	"github.com/felixfbecker/resizegrid/pkg/grid"
)

// Adapter builds one element per layout entry. props[i] belongs to
// layout[i]. Implementations must return exactly len(layout) elements, in
// layout order, or an error.
type Adapter interface {
	Items(layout grid.Layout, props []ItemProps) ([]*dom.Node, error)
}

// RenderFunc renders a single item. The function should apply
// props.Handle to its resize handle element; the item props are applied to
// the returned element by Items.
type RenderFunc func(item grid.ItemConfig, props ItemProps) *dom.Node

// Items implements Adapter.
func (f RenderFunc) Items(layout grid.Layout, props []ItemProps) ([]*dom.Node, error) {
	nodes := make([]*dom.Node, len(layout))
	for i, item := range layout {
		n := f(item, props[i])
		if n == nil {
			return nil, errors.New(errors.ErrCodeInvalidTemplate, "render function returned no element for %q", item.Key)
		}
		nodes[i] = props[i].Apply(n)
	}
	return nodes, nil
}

// HandleTag is the tag of the handle added by Paired.
const HandleTag = "handle"

type paired struct {
	children []*dom.Node
}

// Paired returns an Adapter that pairs children with layout entries by
// position. Each item is a copy of its child with a one-cell resize handle
// in the bottom-right corner. The children themselves are never mounted.
func Paired(children ...*dom.Node) Adapter {
	return paired{children: children}
}

func (p paired) Items(layout grid.Layout, props []ItemProps) ([]*dom.Node, error) {
	if len(p.children) != len(layout) {
		return nil, errors.New(errors.ErrCodeChildCountMismatch,
			"got %d children for %d layout entries", len(p.children), len(layout))
	}
	nodes := make([]*dom.Node, len(layout))
	for i, child := range p.children {
		if child == nil {
			return nil, errors.New(errors.ErrCodeInvalidTemplate, "child %d is nil", i)
		}
		item := props[i].Apply(child.Clone())
		item.AppendChild(props[i].Handle.Apply(DefaultHandle()))
		nodes[i] = item
	}
	return nodes, nil
}

// DefaultHandle returns a one-cell handle pinned to the bottom-right corner
// of its item.
func DefaultHandle() *dom.Node {
	return dom.NewNode(HandleTag).
		WithStyle(dom.PropPosition, dom.PositionAbsolute).
		WithStyle(dom.PropRight, "0").
		WithStyle(dom.PropBottom, "0")
}
