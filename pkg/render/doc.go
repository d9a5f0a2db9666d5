// Package render maps a layout onto a retained element tree and wires the
// pointer handlers of the interaction controller.
//
// # Overview
//
// A [Grid] owns the container element, the keyed item elements mounted in it
// and an [interact.Controller]. It never stores the layout: every call to
// [Grid.Render] receives the host's committed layout, and every change the
// user makes comes back through the host's change callback.
//
// Items are produced by an [Adapter]. Two are provided:
//
//   - [RenderFunc] calls a function per item with prepared [ItemProps],
//     including [HandleProps] for a separate resize handle. This is the
//     canonical shape.
//   - [Paired] pairs pre-built elements with layout entries by position and
//     gives each a default handle. The element count must match the layout.
//
// # Rendering
//
//	g := render.NewGrid(render.RenderFunc(func(item grid.ItemConfig, p render.ItemProps) *dom.Node {
//	    handle := p.Handle.Apply(dom.NewNode("span"))
//	    return dom.NewNode("div", dom.NewNode("p").WithText(item.Key), handle)
//	}), placement.DefaultTemplate(), host.SetLayout)
//
//	root, err := g.Render(host.Layout())
//
// Render validates the layout, builds the elements, reconciles them into the
// mounted tree by key, then runs a layout pass that assigns every element its
// rect from the grid template. Elements keep their identity across renders,
// so a drag in progress survives the re-render its own proposals cause.
package render
