package interact

import (
	"time"

	"github.com/felixfbecker/resizegrid/pkg/dom"
)

// SpanSize is the size in pixels of one grid span unit on each axis.
type SpanSize struct {
	Column float64
	Row    float64
}

// Snapshot is the state captured at pointer-down. It is read-only for the
// rest of the gesture and discarded on pointer-up.
type Snapshot struct {
	Key       string
	Operation Operation

	// MouseDown is the pointer position at pointer-down.
	MouseDown dom.Point

	// SizeOfOneSpan is derived from the item's bounds and its spans at
	// pointer-down.
	SizeOfOneSpan SpanSize

	// Bounds is the item's bounding rect at pointer-down.
	Bounds dom.Rect

	// Active is the grid item being dragged.
	Active dom.Element

	// Operating is the element the pointer went down on: the item for a
	// move, the handle for a resize.
	Operating dom.Element

	StartedAt time.Time

	saved presentation
}

// presentation holds the values the controller overrides during a drag so
// pointer-up can put them back.
type presentation struct {
	width, height, zIndex, transform string
	grabbed                          string
}

func savePresentation(active, operating dom.Element) presentation {
	return presentation{
		width:     active.Style(dom.PropWidth),
		height:    active.Style(dom.PropHeight),
		zIndex:    active.Style(dom.PropZIndex),
		transform: active.Style(dom.PropTransform),
		grabbed:   operating.Attribute(dom.AttrAriaGrabbed),
	}
}

func (p presentation) restore(active, operating dom.Element) {
	active.SetStyle(dom.PropWidth, p.width)
	active.SetStyle(dom.PropHeight, p.height)
	active.SetStyle(dom.PropZIndex, p.zIndex)
	active.SetStyle(dom.PropTransform, p.transform)
	operating.SetAttribute(dom.AttrAriaGrabbed, p.grabbed)
}
