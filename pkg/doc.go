// Package pkg holds the public libraries behind resizegrid, a grid of items
// that can be reordered by dragging and resized by dragging a corner handle.
//
// # Overview
//
// The libraries are layered bottom-up:
//
//  1. [grid] - the layout model: an ordered list of items and their spans
//  2. [grid/placement] - CSS grid auto-placement of spans onto tracks
//  3. [dom] - a small retained element tree with styles, hit testing and
//     pointer event dispatch
//  4. [interact] - the pointer state machine that turns gestures into new
//     layouts
//  5. [render] - maps a layout onto elements and wires them to the
//     controller
//
// [errors], [observability] and [buildinfo] support all of them.
//
// # Data Flow
//
// The host owns the committed layout and renders it:
//
//	host layout ──► render.Grid.Render ──► dom tree ──► screen
//	     ▲                                     │
//	     │                              pointer events
//	     │                                     ▼
//	     └──────── onChange(layout) ◄── interact.Controller
//
// The controller never mutates the host's layout. Each proposal is a new
// slice; the host decides whether to keep it and renders again.
//
// [grid]: https://pkg.go.dev/github.com/felixfbecker/resizegrid/pkg/grid
// [grid/placement]: https://pkg.go.dev/github.com/felixfbecker/resizegrid/pkg/grid/placement
// [dom]: https://pkg.go.dev/github.com/felixfbecker/resizegrid/pkg/dom
// [interact]: https://pkg.go.dev/github.com/felixfbecker/resizegrid/pkg/interact
// [render]: https://pkg.go.dev/github.com/felixfbecker/resizegrid/pkg/render
// [errors]: https://pkg.go.dev/github.com/felixfbecker/resizegrid/pkg/errors
// [observability]: https://pkg.go.dev/github.com/felixfbecker/resizegrid/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/felixfbecker/resizegrid/pkg/buildinfo
package pkg
