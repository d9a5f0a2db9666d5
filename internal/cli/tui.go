package cli

import (
	"cmp"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/felixfbecker/resizegrid/internal/config"
	"github.com/felixfbecker/resizegrid/pkg/dom"
	"github.com/felixfbecker/resizegrid/pkg/errors"
	"github.com/felixfbecker/resizegrid/pkg/grid"
	"github.com/felixfbecker/resizegrid/pkg/render"
)

// newItemSpan is the span on both axes of items added with "a".
const newItemSpan = 3

// =============================================================================
// session - the host application state
// =============================================================================

// session owns the committed layout and re-renders the grid whenever the
// controller proposes a new one. It is mutated only from the bubbletea
// update loop.
type session struct {
	grid   *render.Grid
	layout grid.Layout
	labels map[string]string
	focus  string
	added  int
	err    error
	logger *log.Logger
}

func newSession(cfg config.Config, logger *log.Logger) (*session, error) {
	s := &session{
		layout: cfg.Layout(),
		labels: cfg.Labels(),
		logger: logger,
	}
	s.grid = render.NewGrid(render.RenderFunc(s.renderItem), cfg.Template, s.commit,
		render.WithLogger(logger),
		render.WithOrigin(dom.Point{Y: headerHeight}),
		render.WithErrorHandler(s.fail),
	)
	if _, err := s.grid.Render(s.layout); err != nil {
		return nil, err
	}
	if len(s.layout) > 0 {
		s.focus = s.layout[0].Key
	}
	return s, nil
}

func (s *session) renderItem(item grid.ItemConfig, p render.ItemProps) *dom.Node {
	return dom.NewNode(tagCard,
		dom.NewNode(tagLabel).WithText(cmp.Or(s.labels[item.Key], item.Key)),
		dom.NewNode(tagLabel).
			WithText(fmt.Sprintf("%d×%d", item.ColumnSpan, item.RowSpan)).
			WithAttribute(dom.AttrClass, classMeta),
		p.Handle.Apply(render.DefaultHandle()),
	)
}

// commit accepts every proposal, like a host that stores the layout in its
// own state.
func (s *session) commit(l grid.Layout) {
	s.layout = l
	s.rerender()
}

func (s *session) rerender() {
	if _, err := s.grid.Render(s.layout); err != nil {
		s.fail(err)
		return
	}
	s.err = nil
}

func (s *session) fail(err error) {
	s.err = err
	s.logger.Error("grid", "err", err)
}

// mouse translates a terminal mouse event into a pointer event on the grid.
func (s *session) mouse(msg tea.MouseMsg) {
	var typ dom.EventType
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		typ = dom.PointerDown
	case tea.MouseActionMotion:
		typ = dom.PointerMove
	case tea.MouseActionRelease:
		typ = dom.PointerUp
	default:
		return
	}

	dom.Dispatch(s.grid.Container(), &dom.PointerEvent{
		Type:  typ,
		Point: dom.Point{X: float64(msg.X), Y: float64(msg.Y)},
	})
	if typ == dom.PointerDown {
		if key := s.grid.Controller().Active(); key != "" {
			s.focus = key
		}
	}
	// Size overrides changed; move handles and labels along.
	if err := s.grid.Layout(); err != nil {
		s.fail(err)
	}
}

func (s *session) add() {
	s.added++
	key := uuid.NewString()
	s.labels[key] = fmt.Sprintf("New %d", s.added)
	span := min(newItemSpan, s.grid.Template().Columns)
	s.layout = s.layout.Append(grid.ItemConfig{Key: key, ColumnSpan: span, RowSpan: newItemSpan})
	s.focus = key
	s.logger.Info("added item", "key", key)
	s.rerender()
}

func (s *session) removeFocused() {
	index := s.layout.Index(s.focus)
	if index < 0 {
		return
	}
	if s.grid.Controller().Active() == s.focus {
		s.grid.Controller().PointerUp()
	}
	removed := s.focus
	s.layout = s.layout.Remove(removed)
	delete(s.labels, removed)
	s.focus = ""
	if len(s.layout) > 0 {
		s.focus = s.layout[min(index, len(s.layout)-1)].Key
	}
	s.logger.Info("removed item", "key", removed)
	s.rerender()
}

func (s *session) cycleFocus(step int) {
	n := len(s.layout)
	if n == 0 {
		s.focus = ""
		return
	}
	i := max(s.layout.Index(s.focus), 0)
	s.focus = s.layout[((i+step)%n+n)%n].Key
}

func (s *session) status() string {
	if s.err != nil {
		return StyleError.Render(errors.UserMessage(s.err))
	}
	if snap, ok := s.grid.Controller().Snapshot(); ok {
		return StyleDim.Render(fmt.Sprintf("%s %s", snap.Operation, cmp.Or(s.labels[snap.Key], snap.Key)))
	}
	return StyleDim.Render(fmt.Sprintf("%d items", len(s.layout)))
}

// =============================================================================
// GridModel - bubbletea model for the interactive grid
// =============================================================================

// GridModel is the bubbletea model for the interactive grid.
type GridModel struct {
	s     *session
	stats fmt.Stringer

	Width  int
	Height int
}

// NewGridModel creates a model for cfg. stats, if not nil, is shown in the
// status line.
func NewGridModel(cfg config.Config, logger *log.Logger, stats fmt.Stringer) (GridModel, error) {
	s, err := newSession(cfg, logger)
	if err != nil {
		return GridModel{}, err
	}
	return GridModel{s: s, stats: stats}, nil
}

// Layout returns the committed layout.
func (m GridModel) Layout() grid.Layout { return m.s.layout }

func (m GridModel) Init() tea.Cmd {
	return nil
}

func (m GridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
	case tea.MouseMsg:
		m.s.mouse(msg)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.s.grid.Controller().PointerUp()
			if err := m.s.grid.Layout(); err != nil {
				m.s.fail(err)
			}
		case "tab":
			m.s.cycleFocus(1)
		case "shift+tab":
			m.s.cycleFocus(-1)
		case "a":
			m.s.add()
		case "d", "delete":
			m.s.removeFocused()
		}
	}
	return m, nil
}

func (m GridModel) View() string {
	width, height := m.Width, m.Height
	if width == 0 || height == 0 {
		r := m.s.grid.Container().LayoutRect()
		width, height = int(r.Right())+1, int(r.Bottom())+1
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render(appName))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render("drag to move · drag " + string(handleRune) + " to resize · tab focus · a add · d delete · q quit"))
	b.WriteString(strings.Repeat("\n", headerHeight))

	b.WriteString(paintGrid(m.s.grid.Container(), width, headerHeight, max(height-headerHeight-1, 0),
		m.s.focus, m.s.grid.Controller().Active()))
	b.WriteString("\n")

	status := m.s.status()
	if m.stats != nil {
		status += StyleDim.Render(" · " + m.stats.String())
	}
	b.WriteString(status)
	return b.String()
}
