// Package placement computes grid auto-placement for a layout.
//
// Browsers position items with `grid-column-end: span N` and no explicit
// start line using the CSS grid "sparse" auto-placement algorithm. Terminal
// hosts have no layout engine, so this package reproduces it: items are
// placed in sequence order, row-major, each at the first free position at or
// after the auto-placement cursor. Rows are created implicitly; the column
// count is fixed by the [Template].
package placement

import (
	"math"

	"github.com/felixfbecker/resizegrid/pkg/dom"
	"github.com/felixfbecker/resizegrid/pkg/errors"
)

// Template describes the explicit grid: a fixed number of equal-width
// columns and implicit rows of a fixed height.
type Template struct {
	Columns     int     `json:"columns" toml:"columns"`
	ColumnWidth float64 `json:"column_width" toml:"column_width"`
	RowHeight   float64 `json:"row_height" toml:"row_height"`
	ColumnGap   float64 `json:"column_gap" toml:"column_gap"`
	RowGap      float64 `json:"row_gap" toml:"row_gap"`
}

// DefaultTemplate returns a 12-column template sized for a terminal.
func DefaultTemplate() Template {
	return Template{
		Columns:     12,
		ColumnWidth: 6,
		RowHeight:   2,
		ColumnGap:   1,
		RowGap:      0,
	}
}

// Validate checks that the template describes a usable grid.
func (t Template) Validate() error {
	if t.Columns < 1 || t.Columns > errors.MaxSpan {
		return errors.New(errors.ErrCodeInvalidTemplate, "columns must be between 1 and %d, got %d", errors.MaxSpan, t.Columns)
	}
	if !positive(t.ColumnWidth) || !positive(t.RowHeight) {
		return errors.New(errors.ErrCodeInvalidTemplate, "track sizes must be positive, got %gx%g", t.ColumnWidth, t.RowHeight)
	}
	if t.ColumnGap < 0 || t.RowGap < 0 || math.IsNaN(t.ColumnGap) || math.IsNaN(t.RowGap) {
		return errors.New(errors.ErrCodeInvalidTemplate, "gaps must be non-negative")
	}
	return nil
}

// ValidateColumnSpan rejects a column span wider than the grid. Place
// would clamp it, leaving the item narrower than its declared span.
func (t Template) ValidateColumnSpan(span int) error {
	if span > t.Columns {
		return errors.New(errors.ErrCodeInvalidLayout, "column span %d is wider than the %d-column grid", span, t.Columns)
	}
	return nil
}

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 0) }

// Span is the requested size of an item in tracks.
type Span struct {
	Columns, Rows int
}

// Area is a placed item: zero-based start tracks plus spans.
type Area struct {
	Column, Row         int
	ColumnSpan, RowSpan int
}

// Place runs sparse auto-placement over spans in order and returns one area
// per span. Spans below 1 are treated as 1, column spans wider than the
// grid are clamped to the column count and row spans to errors.MaxSpan.
func Place(t Template, spans []Span) []Area {
	columns := max(t.Columns, 1)
	occ := &occupancy{columns: columns}
	areas := make([]Area, len(spans))

	row, col := 0, 0
	for i, s := range spans {
		a := Area{
			ColumnSpan: min(max(s.Columns, 1), columns),
			RowSpan:    min(max(s.Rows, 1), errors.MaxSpan),
		}
		for {
			if col+a.ColumnSpan > columns {
				row++
				col = 0
				continue
			}
			if !occ.overlaps(row, col, a.ColumnSpan, a.RowSpan) {
				break
			}
			col++
		}
		a.Row, a.Column = row, col
		occ.fill(a)
		areas[i] = a
		col += a.ColumnSpan
	}
	return areas
}

// Bounds returns the rectangle covered by a, relative to the grid origin.
func (t Template) Bounds(a Area) dom.Rect {
	return dom.Rect{
		X:      float64(a.Column) * (t.ColumnWidth + t.ColumnGap),
		Y:      float64(a.Row) * (t.RowHeight + t.RowGap),
		Width:  float64(a.ColumnSpan)*t.ColumnWidth + float64(a.ColumnSpan-1)*t.ColumnGap,
		Height: float64(a.RowSpan)*t.RowHeight + float64(a.RowSpan-1)*t.RowGap,
	}
}

// Rows returns the number of rows the areas occupy.
func Rows(areas []Area) int {
	rows := 0
	for _, a := range areas {
		rows = max(rows, a.Row+a.RowSpan)
	}
	return rows
}

// Size returns the extent of the grid holding areas. The width always covers
// every explicit column.
func (t Template) Size(areas []Area) (width, height float64) {
	width = float64(t.Columns)*t.ColumnWidth + float64(max(t.Columns-1, 0))*t.ColumnGap
	if rows := Rows(areas); rows > 0 {
		height = float64(rows)*t.RowHeight + float64(rows-1)*t.RowGap
	}
	return width, height
}

// occupancy tracks filled cells, growing rows on demand.
type occupancy struct {
	columns int
	cells   [][]bool
}

func (o *occupancy) overlaps(row, col, colSpan, rowSpan int) bool {
	for r := row; r < row+rowSpan && r < len(o.cells); r++ {
		for c := col; c < col+colSpan; c++ {
			if o.cells[r][c] {
				return true
			}
		}
	}
	return false
}

func (o *occupancy) fill(a Area) {
	for len(o.cells) < a.Row+a.RowSpan {
		o.cells = append(o.cells, make([]bool, o.columns))
	}
	for r := a.Row; r < a.Row+a.RowSpan; r++ {
		for c := a.Column; c < a.Column+a.ColumnSpan; c++ {
			o.cells[r][c] = true
		}
	}
}
