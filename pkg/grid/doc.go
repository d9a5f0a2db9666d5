// Package grid defines the layout model of a resizable, reorderable grid.
//
// A [Layout] is an ordered sequence of [ItemConfig] values. Order is the
// layout: items are placed by grid auto-placement in sequence order, so
// reordering the slice moves items on screen, and the column and row spans
// decide how many tracks each item occupies.
//
// Layouts are owned by the host application. Every helper in this package
// returns a new slice and leaves its receiver untouched, which lets the
// interaction controller propose a change without mutating the host's copy:
//
//	updated := layout.WithItem(i, grid.ItemConfig{Key: "1", ColumnSpan: 4, RowSpan: 3})
//	reordered := layout.MoveBefore("2", 0)
//
// [CalculateSpan] converts a dragged pixel dimension into a span count. It
// rounds up so the grid reflows neighbours out of the way instead of letting
// a growing item overlap them.
package grid
