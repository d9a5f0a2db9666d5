package render

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/felixfbecker/resizegrid/pkg/dom"
	"github.com/felixfbecker/resizegrid/pkg/errors"
	"github.com/felixfbecker/resizegrid/pkg/grid"
	"github.com/felixfbecker/resizegrid/pkg/grid/placement"
	"github.com/felixfbecker/resizegrid/pkg/interact"
	"github.com/felixfbecker/resizegrid/pkg/observability"
)

// ContainerTag is the tag of the grid container element.
const ContainerTag = "grid"

// Option configures a Grid.
type Option func(*Grid)

// WithLogger sets the logger for the grid and its controller.
func WithLogger(l *log.Logger) Option { return func(g *Grid) { g.logger = l } }

// WithErrorHandler receives errors from pointer handlers.
func WithErrorHandler(fn func(error)) Option { return func(g *Grid) { g.onError = fn } }

// WithOrigin offsets the container from the screen origin.
func WithOrigin(p dom.Point) Option { return func(g *Grid) { g.origin = p } }

// WithControllerOptions passes extra options to the interaction controller.
func WithControllerOptions(opts ...interact.Option) Option {
	return func(g *Grid) { g.controllerOpts = append(g.controllerOpts, opts...) }
}

// Grid renders layouts into a persistent container and routes pointer
// events to its controller.
type Grid struct {
	adapter        Adapter
	template       placement.Template
	logger         *log.Logger
	onError        func(error)
	origin         dom.Point
	controllerOpts []interact.Option

	container  *dom.Node
	controller *interact.Controller

	mounted map[string]*dom.Node
	refs    map[string]*itemRefs
}

type itemRefs struct {
	item   dom.Ref
	handle dom.Ref
}

// NewGrid creates a grid that renders items with adapter on template.
// onChange receives every layout the user's gestures propose.
//
// Errors from pointer handlers cannot be returned to the event source; they
// go to the handler set with WithErrorHandler, or are logged.
func NewGrid(adapter Adapter, template placement.Template, onChange interact.LayoutChangeFunc, opts ...Option) *Grid {
	g := &Grid{
		adapter:   adapter,
		template:  template,
		container: dom.NewNode(ContainerTag).WithAttribute(dom.AttrClass, "grid"),
		mounted:   make(map[string]*dom.Node),
		refs:      make(map[string]*itemRefs),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.onError == nil {
		g.onError = func(err error) {
			g.logger.Error("pointer handler failed", "err", err)
		}
	}
	ctrlOpts := append([]interact.Option{
		interact.WithLogger(g.logger),
		interact.WithMaxSpan(template.Columns, 0),
	}, g.controllerOpts...)
	g.controller = interact.NewController(g.container, onChange, ctrlOpts...)
	return g
}

// Container returns the grid container element.
func (g *Grid) Container() *dom.Node { return g.container }

// Controller returns the grid's interaction controller.
func (g *Grid) Controller() *interact.Controller { return g.controller }

// Template returns the grid template.
func (g *Grid) Template() placement.Template { return g.template }

// Item returns the mounted element for key, or nil.
func (g *Grid) Item(key string) *dom.Node {
	if r, ok := g.refs[key]; ok {
		return r.item.Current
	}
	return nil
}

// Handle returns the mounted resize handle for key, or nil.
func (g *Grid) Handle(key string) *dom.Node {
	if r, ok := g.refs[key]; ok {
		return r.handle.Current
	}
	return nil
}

// Render renders layout and returns the container.
//
// Nothing is committed to the mounted tree unless the layout is valid and
// the adapter produced exactly one element per entry.
func (g *Grid) Render(layout grid.Layout) (root *dom.Node, err error) {
	start := time.Now()
	defer func() {
		observability.Render().OnRender(len(layout), time.Since(start), err)
	}()

	if err := g.template.Validate(); err != nil {
		return nil, err
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	for _, item := range layout {
		if err := g.template.ValidateColumnSpan(item.ColumnSpan); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "item %q", item.Key)
		}
	}

	props := make([]ItemProps, len(layout))
	for i, item := range layout {
		props[i] = g.props(layout, item)
	}
	nodes, err := g.adapter.Items(layout, props)
	if err != nil {
		return nil, err
	}
	if len(nodes) != len(layout) {
		return nil, errors.New(errors.ErrCodeChildCountMismatch,
			"adapter returned %d elements for %d layout entries", len(nodes), len(layout))
	}

	g.reconcile(layout, nodes)

	// Move and up listen on the container: a resize handle can be dragged
	// outside its item.
	g.container.On(dom.PointerMove, func(e *dom.PointerEvent) {
		g.report(g.controller.PointerMove(layout, e.Point))
	})
	g.container.On(dom.PointerUp, func(*dom.PointerEvent) {
		g.controller.PointerUp()
	})

	if err := g.Layout(); err != nil {
		return nil, err
	}
	return g.container, nil
}

// Layout assigns rects to the container and every mounted element, placing
// items by their grid-column-end and grid-row-end styles.
func (g *Grid) Layout() error {
	children := g.container.Children()
	spans := make([]placement.Span, len(children))
	for i, c := range children {
		columns, err := dom.ParseSpan(c.Style(dom.PropGridColumnEnd))
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidStyle, err, "item %q column span", c.Attribute(dom.AttrKey))
		}
		rows, err := dom.ParseSpan(c.Style(dom.PropGridRowEnd))
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidStyle, err, "item %q row span", c.Attribute(dom.AttrKey))
		}
		spans[i] = placement.Span{Columns: columns, Rows: rows}
	}

	areas := placement.Place(g.template, spans)
	width, height := g.template.Size(areas)
	g.container.SetLayoutRect(dom.Rect{X: g.origin.X, Y: g.origin.Y, Width: width, Height: height})
	for i, c := range children {
		c.SetLayoutRect(g.template.Bounds(areas[i]).Translate(g.origin.X, g.origin.Y))
		if err := dom.LayoutBox(c); err != nil {
			return err
		}
	}

	g.logger.Debug("laid out grid", "items", len(children), "rows", placement.Rows(areas))
	return nil
}

func (g *Grid) props(layout grid.Layout, item grid.ItemConfig) ItemProps {
	refs, ok := g.refs[item.Key]
	if !ok {
		refs = &itemRefs{}
		g.refs[item.Key] = refs
	}

	key := item.Key
	start := func(op interact.Operation) dom.Handler {
		return func(e *dom.PointerEvent) {
			// The handle sits inside the item; a resize must not also start
			// a move.
			e.StopPropagation()
			g.report(g.controller.PointerDown(layout, key, op, refs.item.Element(), e.CurrentTarget, e.Point))
		}
	}

	return ItemProps{
		Key: key,
		Style: map[string]string{
			dom.PropGridColumnEnd: dom.Span(item.ColumnSpan),
			dom.PropGridRowEnd:    dom.Span(item.RowSpan),
		},
		TabIndex:      0,
		OnPointerDown: start(interact.OperationMove),
		Ref:           &refs.item,
		Handle: HandleProps{
			TabIndex:      0,
			OnPointerDown: start(interact.OperationResize),
			Ref:           &refs.handle,
		},
	}
}

// reconcile mounts nodes into the container by key. Elements whose key was
// rendered before keep their identity and imperatively set state.
func (g *Grid) reconcile(layout grid.Layout, nodes []*dom.Node) {
	next := make(map[string]*dom.Node, len(nodes))
	children := make([]*dom.Node, len(nodes))
	for i, n := range nodes {
		key := layout[i].Key
		old, ok := g.mounted[key]
		switch {
		case ok && old.Tag() == n.Tag():
			children[i] = dom.Patch(old, n)
		default:
			if ok {
				dom.Unmount(old)
			}
			dom.Mount(n)
			children[i] = n
		}
		next[key] = children[i]
	}
	for key, old := range g.mounted {
		if _, ok := next[key]; !ok {
			dom.Unmount(old)
			delete(g.refs, key)
		}
	}
	g.mounted = next
	g.container.SetChildren(children...)
}

func (g *Grid) report(err error) {
	if err != nil {
		g.onError(err)
	}
}
