package cli

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/felixfbecker/resizegrid/pkg/dom"
	"github.com/felixfbecker/resizegrid/pkg/render"
)

// Element tags and classes produced by the interactive grid.
const (
	tagCard   = "card"
	tagLabel  = "label"
	classMeta = "meta"

	handleRune = '◢'
)

type paintStyle int

const (
	paintPlain paintStyle = iota
	paintBorder
	paintBorderFocused
	paintBorderActive
	paintLabel
	paintMeta
	paintHandle
)

var paintStyles = map[paintStyle]lipgloss.Style{
	paintBorder:        lipgloss.NewStyle().Foreground(colorGray),
	paintBorderFocused: lipgloss.NewStyle().Foreground(colorCyan),
	paintBorderActive:  lipgloss.NewStyle().Foreground(colorYellow).Bold(true),
	paintLabel:         lipgloss.NewStyle().Foreground(colorWhite),
	paintMeta:          lipgloss.NewStyle().Foreground(colorDim),
	paintHandle:        lipgloss.NewStyle().Foreground(colorGreen),
}

// cell is one terminal cell. A zero rune marks the right half of a wide
// rune.
type cell struct {
	r     rune
	style paintStyle
}

// canvas is a grid of cells covering rows [top, top+height) of the screen.
type canvas struct {
	width, height, top int
	cells              []cell
}

func newCanvas(width, top, height int) *canvas {
	width, height = max(width, 0), max(height, 0)
	c := &canvas{width: width, height: height, top: top, cells: make([]cell, width*height)}
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
	return c
}

func (c *canvas) set(x, y int, r rune, style paintStyle) {
	y -= c.top
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = cell{r: r, style: style}
}

// text writes s at (x, y), truncated to maxWidth cells.
func (c *canvas) text(x, y, maxWidth int, s string, style paintStyle) {
	if maxWidth <= 0 {
		return
	}
	s = runewidth.Truncate(s, maxWidth, "…")
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.set(x, y, r, style)
		if w == 2 {
			c.set(x+1, y, 0, style)
		}
		x += w
	}
}

// box draws a rounded border around r and clears its interior.
func (c *canvas) box(r dom.Rect, style paintStyle) {
	x0, y0, x1, y1 := cells(r)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	b := lipgloss.RoundedBorder()
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			top, bottom := y == y0, y == y1-1
			left, right := x == x0, x == x1-1
			var s string
			switch {
			case top && left:
				s = b.TopLeft
			case top && right:
				s = b.TopRight
			case bottom && left:
				s = b.BottomLeft
			case bottom && right:
				s = b.BottomRight
			case top:
				s = b.Top
			case bottom:
				s = b.Bottom
			case left:
				s = b.Left
			case right:
				s = b.Right
			default:
				c.set(x, y, ' ', paintPlain)
				continue
			}
			c.set(x, y, []rune(s)[0], style)
		}
	}
}

// String renders the canvas, grouping runs of equally styled cells.
func (c *canvas) String() string {
	var b strings.Builder
	var run strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		current := paintPlain
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if st, ok := paintStyles[current]; ok {
				b.WriteString(st.Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for x := 0; x < c.width; x++ {
			cl := c.cells[y*c.width+x]
			if cl.r == 0 {
				continue
			}
			if cl.style != current {
				flush()
				current = cl.style
			}
			run.WriteRune(cl.r)
		}
		flush()
	}
	return b.String()
}

// cells converts r to the half-open cell range it covers.
func cells(r dom.Rect) (x0, y0, x1, y1 int) {
	return int(math.Floor(r.X)), int(math.Floor(r.Y)), int(math.Floor(r.Right())), int(math.Floor(r.Bottom()))
}

// paintGrid draws the grid rooted at root onto rows [top, top+height) of a
// width-wide screen, bottom-most element first.
func paintGrid(root *dom.Node, width, top, height int, focus, active string) string {
	cv := newCanvas(width, top, height)
	for _, n := range root.PaintOrder() {
		switch n.Tag() {
		case tagCard:
			style := paintBorder
			switch n.Attribute(dom.AttrKey) {
			case active:
				style = paintBorderActive
			case focus:
				style = paintBorderFocused
			}
			cv.box(n.BoundingRect(), style)
		case tagLabel:
			paintLabelNode(cv, n)
		case render.HandleTag:
			x, y, _, _ := cells(n.BoundingRect())
			cv.set(x, y, handleRune, paintHandle)
		}
	}
	return cv.String()
}

// paintLabelNode draws a label clipped to its card's interior.
func paintLabelNode(cv *canvas, n *dom.Node) {
	x, y, x1, _ := cells(n.BoundingRect())
	if p := n.Parent(); p != nil {
		px0, py0, px1, py1 := cells(p.BoundingRect())
		if y <= py0 || y >= py1-1 {
			return
		}
		x = max(x, px0+1)
		x1 = min(x1, px1-1)
	}
	style := paintLabel
	if n.Attribute(dom.AttrClass) == classMeta {
		style = paintMeta
	}
	cv.text(x, y, x1-x, n.Text(), style)
}
