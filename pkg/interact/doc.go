// Package interact implements the pointer interaction state machine of a
// resizable, reorderable grid.
//
// A [Controller] is either idle or dragging. Pointer-down on an item (move)
// or on its resize handle (resize) captures a [Snapshot]: the pointer
// position, the item's bounds and the pixel size of one grid span. Every
// subsequent pointer-move is computed against that snapshot:
//
//   - resize overrides the item's width and height and, whenever the rounded
//     up span count changes, emits a layout with the new spans;
//   - move hit-tests the grid container, finds the slot under the pointer
//     and emits a layout with the dragged item reinserted before it, while a
//     translate keeps the item under the pointer.
//
// Pointer-up restores every presentation override and returns to idle.
//
// The controller never stores the layout. Each call receives the host's
// current committed layout and proposals are delivered through the
// [LayoutChangeFunc]; the host decides what to commit.
//
// Controllers are driven from a single UI event loop and are not safe for
// concurrent use.
package interact
