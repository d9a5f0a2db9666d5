package interact

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/felixfbecker/resizegrid/pkg/dom"
	"github.com/felixfbecker/resizegrid/pkg/errors"
	"github.com/felixfbecker/resizegrid/pkg/grid"
	"github.com/felixfbecker/resizegrid/pkg/observability"
)

// ActiveZIndex is the stacking order given to the dragged item so it paints
// above its siblings.
const ActiveZIndex = "1000"

// LayoutChangeFunc receives every layout the controller proposes. The
// controller never commits a layout itself.
type LayoutChangeFunc func(grid.Layout)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger for gesture diagnostics. Defaults to a logger
// that discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMaxSpan caps the spans a resize can produce. A value <= 0 leaves the
// axis unbounded.
func WithMaxSpan(columns, rows int) Option {
	return func(c *Controller) {
		c.maxColumnSpan = columns
		c.maxRowSpan = rows
	}
}

// WithClock overrides the time source used for gesture durations.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// Controller is the pointer interaction state machine.
type Controller struct {
	container dom.Container
	onChange  LayoutChangeFunc
	logger    *log.Logger
	now       func() time.Time

	maxColumnSpan int
	maxRowSpan    int

	drag *Snapshot
}

// NewController creates an idle controller for the grid container. onChange
// may be nil, in which case proposals are dropped.
func NewController(container dom.Container, onChange LayoutChangeFunc, opts ...Option) *Controller {
	c := &Controller{
		container: container,
		onChange:  onChange,
		logger:    log.New(io.Discard),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current state.
func (c *Controller) State() State {
	if c.drag != nil {
		return StateDragging
	}
	return StateIdle
}

// Snapshot returns a copy of the active gesture's snapshot. ok is false when
// idle.
func (c *Controller) Snapshot() (s Snapshot, ok bool) {
	if c.drag == nil {
		return Snapshot{}, false
	}
	return *c.drag, true
}

// Active returns the key of the item being dragged, or "" when idle.
func (c *Controller) Active() string {
	if c.drag == nil {
		return ""
	}
	return c.drag.Key
}

// PointerDown starts a gesture on the item with the given key.
//
// item is the rendered grid item and operating the element that received
// the press: the item itself for a move, its handle for a resize. A nil item
// means the element is not mounted (yet or anymore) and the press is
// ignored. A nil operating element defaults to item.
//
// The item's spans are read from its grid-column-end and grid-row-end
// styles. If either does not parse, no gesture starts and the error is
// returned with no presentation changes made.
//
// On success the unchanged layout is echoed to the host so that it
// re-renders with the item active.
func (c *Controller) PointerDown(current grid.Layout, key string, op Operation, item, operating dom.Element, at dom.Point) error {
	if item == nil {
		return nil
	}
	if operating == nil {
		operating = item
	}
	if !op.Valid() {
		return errors.New(errors.ErrCodeInvalidOperation, "unknown operation %d", int(op))
	}
	index := current.Index(key)
	if index < 0 {
		return errors.New(errors.ErrCodeNotFound, "item %q is not in the layout", key)
	}
	if c.drag != nil {
		// A press without a release in between; the prior gesture is over.
		c.PointerUp()
	}

	columnSpan, err := dom.ParseSpan(item.Style(dom.PropGridColumnEnd))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDimension, err, "read column span of %q", key)
	}
	rowSpan, err := dom.ParseSpan(item.Style(dom.PropGridRowEnd))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDimension, err, "read row span of %q", key)
	}

	bounds := item.BoundingRect()
	s := &Snapshot{
		Key:       key,
		Operation: op,
		MouseDown: at,
		SizeOfOneSpan: SpanSize{
			Column: bounds.Width / float64(columnSpan),
			Row:    bounds.Height / float64(rowSpan),
		},
		Bounds:    bounds,
		Active:    item,
		Operating: operating,
		StartedAt: c.now(),
		saved:     savePresentation(item, operating),
	}

	operating.SetAttribute(dom.AttrAriaGrabbed, "true")
	item.SetStyle(dom.PropZIndex, ActiveZIndex)
	c.drag = s

	observability.Gesture().OnGestureStart(key, op.String())
	c.logger.Debug("gesture started",
		"key", key,
		"operation", op,
		"bounds", bounds,
		"span_width", s.SizeOfOneSpan.Column,
		"span_height", s.SizeOfOneSpan.Row,
	)

	c.emit(current.WithItem(index, current[index]), observability.ReasonActivate)
	return nil
}

// PointerMove advances the active gesture to the pointer position at. It is
// a no-op when idle. current is the host's committed layout, which may lag
// behind the last proposal.
func (c *Controller) PointerMove(current grid.Layout, at dom.Point) error {
	s := c.drag
	if s == nil {
		return nil
	}
	delta := at.Sub(s.MouseDown)
	switch s.Operation {
	case OperationResize:
		return c.resize(current, s, delta)
	default:
		c.move(current, s, at, delta)
		return nil
	}
}

// PointerUp ends the active gesture, restoring the item's size, transform,
// stacking order and grabbed state. It is a no-op when idle.
func (c *Controller) PointerUp() {
	s := c.drag
	if s == nil {
		return
	}
	s.saved.restore(s.Active, s.Operating)
	c.drag = nil

	elapsed := c.now().Sub(s.StartedAt)
	observability.Gesture().OnGestureEnd(s.Key, s.Operation.String(), elapsed)
	c.logger.Debug("gesture ended", "key", s.Key, "operation", s.Operation, "duration", elapsed)
}

func (c *Controller) resize(current grid.Layout, s *Snapshot, delta dom.Point) error {
	if !usableSpanSize(s.SizeOfOneSpan.Column) || !usableSpanSize(s.SizeOfOneSpan.Row) {
		return errors.New(errors.ErrCodeInvalidDimension,
			"item %q has no measurable span size (%gx%g)", s.Key, s.SizeOfOneSpan.Column, s.SizeOfOneSpan.Row)
	}

	width := max(0, s.Bounds.Width+delta.X)
	height := max(0, s.Bounds.Height+delta.Y)
	s.Active.SetStyle(dom.PropWidth, dom.Px(width))
	s.Active.SetStyle(dom.PropHeight, dom.Px(height))

	index := current.Index(s.Key)
	if index < 0 {
		return nil
	}
	prev := current[index]
	columnSpan := grid.ClampSpan(grid.CalculateSpan(width, s.SizeOfOneSpan.Column), c.maxColumnSpan)
	rowSpan := grid.ClampSpan(grid.CalculateSpan(height, s.SizeOfOneSpan.Row), c.maxRowSpan)
	if columnSpan == prev.ColumnSpan && rowSpan == prev.RowSpan {
		return nil
	}

	c.logger.Debug("span changed",
		"key", s.Key,
		"from", []int{prev.ColumnSpan, prev.RowSpan},
		"to", []int{columnSpan, rowSpan},
	)
	c.emit(current.WithItem(index, prev.WithSpans(columnSpan, rowSpan)), observability.ReasonSpan)
	return nil
}

func (c *Controller) move(current grid.Layout, s *Snapshot, at, delta dom.Point) {
	if slot := c.slotUnder(s.Active, at); slot != nil {
		if target := c.container.ChildIndex(slot); target >= 0 {
			c.emit(current.MoveBefore(s.Key, target), observability.ReasonReorder)
		}
	}

	// Keep the item under the pointer. The item may have been reflowed to a
	// new slot since pointer-down, so translate relative to where layout has
	// it now rather than where it started.
	want := s.Bounds.Origin().Add(delta)
	laid := s.Active.LayoutRect()
	s.Active.SetStyle(dom.PropTransform, dom.Translate(want.X-laid.X, want.Y-laid.Y))
}

// slotUnder returns the direct child of the container under at, skipping
// the active item and its descendants. It returns nil over a gap or outside
// the grid.
func (c *Controller) slotUnder(active dom.Element, at dom.Point) dom.Element {
	for _, e := range c.container.ElementsFromPoint(at.X, at.Y) {
		if active.Contains(e) {
			continue
		}
		return c.gridItemOf(e)
	}
	return nil
}

// gridItemOf walks up from e to the ancestor that is a direct child of the
// container.
func (c *Controller) gridItemOf(e dom.Element) dom.Element {
	container := dom.Element(c.container)
	for e != nil {
		parent := e.ParentElement()
		if parent == nil {
			return nil
		}
		if parent == container {
			return e
		}
		e = parent
	}
	return nil
}

func (c *Controller) emit(layout grid.Layout, reason string) {
	if c.drag != nil {
		observability.Gesture().OnLayoutChange(c.drag.Key, c.drag.Operation.String(), reason)
	}
	if c.onChange != nil {
		c.onChange(layout)
	}
}

func usableSpanSize(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
