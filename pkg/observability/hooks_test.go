package observability

import (
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	g := NoopGestureHooks{}
	g.OnGestureStart("1", "move")
	g.OnLayoutChange("1", "move", ReasonReorder)
	g.OnGestureEnd("1", "move", time.Second)

	r := NoopRenderHooks{}
	r.OnRender(7, time.Millisecond, nil)
	r.OnRender(0, 0, errors.New("boom"))
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Gesture().(NoopGestureHooks); !ok {
		t.Error("Gesture() should return NoopGestureHooks by default")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}

	customGesture := &testGestureHooks{}
	SetGestureHooks(customGesture)
	if Gesture() != customGesture {
		t.Error("SetGestureHooks should set custom hooks")
	}

	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	Reset()
	if _, ok := Gesture().(NoopGestureHooks); !ok {
		t.Error("Reset() should restore NoopGestureHooks")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Reset() should restore NoopRenderHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testGestureHooks{}
	SetGestureHooks(custom)
	SetGestureHooks(nil)

	if Gesture() != custom {
		t.Error("SetGestureHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testGestureHooks struct{ NoopGestureHooks }
type testRenderHooks struct{ NoopRenderHooks }
