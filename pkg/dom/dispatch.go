package dom

// EventType identifies a pointer event.
type EventType int

const (
	PointerDown EventType = iota + 1
	PointerMove
	PointerUp
)

// String returns a string representation of the event type.
func (t EventType) String() string {
	switch t {
	case PointerDown:
		return "pointerdown"
	case PointerMove:
		return "pointermove"
	case PointerUp:
		return "pointerup"
	default:
		return "none"
	}
}

// PointerEvent is a pointer event travelling through the tree.
type PointerEvent struct {
	Type  EventType
	Point Point

	// Target is the topmost element under Point, or the dispatch root when
	// nothing was hit.
	Target Element

	// CurrentTarget is the element whose handler is running.
	CurrentTarget Element

	stopped bool
}

// StopPropagation prevents ancestors of CurrentTarget from seeing the event.
func (e *PointerEvent) StopPropagation() { e.stopped = true }

// Stopped reports whether propagation was stopped.
func (e *PointerEvent) Stopped() bool { return e.stopped }

// Handler handles a pointer event.
type Handler func(e *PointerEvent)

// Dispatch delivers e to the topmost node under e.Point and bubbles it up to
// root. It reports whether any handler ran.
func Dispatch(root *Node, e *PointerEvent) bool {
	target := root
	if hits := root.ElementsFromPoint(e.Point.X, e.Point.Y); len(hits) > 0 {
		target = hits[0].(*Node)
	}
	e.Target = target

	handled := false
	for n := target; n != nil; n = n.parent {
		if h := n.handlers[e.Type]; h != nil {
			e.CurrentTarget = n
			h(e)
			handled = true
			if e.stopped {
				break
			}
		}
		if n == root {
			break
		}
	}
	e.CurrentTarget = nil
	return handled
}
