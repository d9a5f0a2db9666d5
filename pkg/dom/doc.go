// Package dom provides a minimal retained element tree for grid widgets.
//
// The interaction controller never owns the elements it manipulates. It holds
// a non-owning handle through the [Element] capability interface (read the
// bounding box, read and write inline style properties and attributes, walk
// ancestry) and the grid container through [Container], which adds hit
// testing. [Node] is the concrete implementation used by the rendering
// adapter and the terminal host, but any type satisfying the interfaces can
// be driven by the controller.
//
// # Styles
//
// Inline styles are CSS-like string properties. The codecs in css.go format
// and parse the handful of values the widget uses:
//
//	n.SetStyle(dom.PropGridColumnEnd, dom.Span(3)) // "span 3"
//	n.SetStyle(dom.PropWidth, dom.Px(250))         // "250px"
//	n.SetStyle(dom.PropTransform, dom.Translate(4, -2))
//
// # Geometry
//
// A node's layout rect is assigned by a layout pass. [Node.BoundingRect]
// applies width/height overrides and the accumulated translate of the node
// and its ancestors, so a dragged item and its resize handle move together.
//
// # Events
//
// [Dispatch] hit-tests a pointer event and bubbles it from the topmost
// element up to the root. Points that miss every element are delivered to
// the root, so container-level listeners always observe moves and releases.
package dom
