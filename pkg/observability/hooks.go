// Package observability provides hooks for metrics and tracing of grid
// interactions.
//
// The hooks pattern keeps the widget free of any observability backend:
//   - Hook interfaces describe the events the widget emits
//   - No-op implementations are installed by default
//   - Hosts register their own implementations at startup
//
// Hooks run synchronously on the UI event loop, so implementations must
// return quickly.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGestureHooks(&myGestureHooks{})
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// The widget calls hooks as gestures progress:
//
//	observability.Gesture().OnGestureStart(key, "resize")
//	observability.Gesture().OnLayoutChange(key, "resize", observability.ReasonSpan)
//	observability.Gesture().OnGestureEnd(key, "resize", time.Since(start))
package observability

import (
	"sync"
	"time"
)

// Reasons passed to GestureHooks.OnLayoutChange.
const (
	ReasonActivate = "activate" // echo emitted at pointer-down
	ReasonSpan     = "span"     // resize crossed a span boundary
	ReasonReorder  = "reorder"  // move hovered another slot
)

// =============================================================================
// Gesture Hooks
// =============================================================================

// GestureHooks receives events from the interaction controller.
type GestureHooks interface {
	// OnGestureStart records a pointer-down that started a gesture.
	OnGestureStart(key, operation string)

	// OnLayoutChange records a layout emitted to the host.
	OnLayoutChange(key, operation, reason string)

	// OnGestureEnd records a pointer-up that ended a gesture.
	OnGestureEnd(key, operation string, duration time.Duration)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from the rendering adapter.
type RenderHooks interface {
	// OnRender records one render of the grid.
	OnRender(items int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGestureHooks is a no-op implementation of GestureHooks.
type NoopGestureHooks struct{}

func (NoopGestureHooks) OnGestureStart(string, string)              {}
func (NoopGestureHooks) OnLayoutChange(string, string, string)      {}
func (NoopGestureHooks) OnGestureEnd(string, string, time.Duration) {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRender(int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	gestureHooks GestureHooks = NoopGestureHooks{}
	renderHooks  RenderHooks  = NoopRenderHooks{}
	hooksMu      sync.RWMutex
)

// SetGestureHooks registers custom gesture hooks. A nil value is ignored.
func SetGestureHooks(h GestureHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		gestureHooks = h
	}
}

// SetRenderHooks registers custom render hooks. A nil value is ignored.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Gesture returns the registered gesture hooks.
func Gesture() GestureHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return gestureHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	gestureHooks = NoopGestureHooks{}
	renderHooks = NoopRenderHooks{}
}
