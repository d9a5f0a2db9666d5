package dom

import (
	"slices"
	"testing"
)

// twoItems builds a container with two 10x4 items side by side, each with a
// 1x1 handle in its bottom-right corner.
func twoItems() (container, a, aHandle, b *Node) {
	aHandle = NewNode("handle")
	a = NewNode("item", aHandle)
	bHandle := NewNode("handle")
	b = NewNode("item", bHandle)
	container = NewNode("grid", a, b)

	container.SetLayoutRect(Rect{X: 0, Y: 0, Width: 21, Height: 4})
	a.SetLayoutRect(Rect{X: 0, Y: 0, Width: 10, Height: 4})
	b.SetLayoutRect(Rect{X: 11, Y: 0, Width: 10, Height: 4})
	aHandle.SetLayoutRect(Rect{X: 9, Y: 3, Width: 1, Height: 1})
	bHandle.SetLayoutRect(Rect{X: 20, Y: 3, Width: 1, Height: 1})
	return container, a, aHandle, b
}

func TestNodeTree(t *testing.T) {
	container, a, aHandle, b := twoItems()

	if a.Parent() != container || aHandle.Parent() != a {
		t.Fatal("parents not wired")
	}
	if container.ParentElement() != nil {
		t.Error("root ParentElement should be a nil interface")
	}
	if got := container.ChildIndex(b); got != 1 {
		t.Errorf("ChildIndex(b) = %d, want 1", got)
	}
	if got := container.ChildIndex(aHandle); got != -1 {
		t.Errorf("ChildIndex(grandchild) = %d, want -1", got)
	}
	if !a.Contains(aHandle) || !a.Contains(a) || a.Contains(b) {
		t.Error("Contains mismatch")
	}

	// Re-parenting detaches from the previous parent.
	b.AppendChild(aHandle)
	if len(a.Children()) != 0 || aHandle.Parent() != b {
		t.Errorf("AppendChild did not move the node: a has %d children", len(a.Children()))
	}
}

func TestNodeStyleAndAttributes(t *testing.T) {
	n := NewNode("item").
		WithStyle(PropGridColumnEnd, Span(3)).
		WithAttribute(AttrKey, "1")

	if n.Style(PropGridColumnEnd) != "span 3" {
		t.Errorf("Style = %q", n.Style(PropGridColumnEnd))
	}
	n.SetStyle(PropGridColumnEnd, "")
	if n.Style(PropGridColumnEnd) != "" {
		t.Error("empty value should remove the property")
	}
	if n.Attribute(AttrKey) != "1" {
		t.Errorf("Attribute = %q", n.Attribute(AttrKey))
	}
}

func TestBoundingRect(t *testing.T) {
	_, a, aHandle, _ := twoItems()

	a.SetStyle(PropWidth, Px(14))
	a.SetStyle(PropTransform, Translate(3, 1))

	want := Rect{X: 3, Y: 1, Width: 14, Height: 4}
	if got := a.BoundingRect(); got != want {
		t.Errorf("BoundingRect() = %v, want %v", got, want)
	}
	if got := a.LayoutRect(); got != (Rect{X: 0, Y: 0, Width: 10, Height: 4}) {
		t.Errorf("LayoutRect() = %v, changed by overrides", got)
	}

	// Descendants move with their translated ancestor.
	if got := aHandle.BoundingRect(); got.X != 12 || got.Y != 4 {
		t.Errorf("handle BoundingRect() = %v, want origin (12,4)", got)
	}
}

func TestElementsFromPoint(t *testing.T) {
	container, a, aHandle, b := twoItems()

	tests := []struct {
		name string
		x, y float64
		want []*Node
	}{
		{"item body", 2, 1, []*Node{a, container}},
		{"handle", 9, 3, []*Node{aHandle, a, container}},
		{"gap", 10, 1, []*Node{container}},
		{"second item", 12, 0, []*Node{b, container}},
		{"outside", 40, 40, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := container.ElementsFromPoint(tt.x, tt.y)
			if len(got) != len(tt.want) {
				t.Fatalf("ElementsFromPoint(%v,%v) returned %d elements, want %d", tt.x, tt.y, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != Element(tt.want[i]) {
					t.Errorf("element %d = <%s>, want <%s>", i, got[i].(*Node).Tag(), tt.want[i].Tag())
				}
			}
		})
	}
}

func TestElementsFromPointZIndex(t *testing.T) {
	container, a, aHandle, b := twoItems()

	// Drag a over b and raise it.
	a.SetStyle(PropTransform, Translate(11, 0))
	a.SetStyle(PropZIndex, "1000")

	got := container.ElementsFromPoint(12, 1)
	if len(got) != 3 || got[0] != Element(a) || got[1] != Element(b) {
		t.Fatalf("raised item should be topmost, got %d elements", len(got))
	}

	order := container.PaintOrder()
	if order[len(order)-1] != aHandle || order[len(order)-2] != a {
		t.Error("raised item and its handle should paint last")
	}
	if !slices.Contains(order, b) {
		t.Error("PaintOrder dropped a node")
	}
}

func TestClone(t *testing.T) {
	ref := &Ref{}
	child := NewNode("p").WithText("hi")
	n := NewNode("div", child).WithStyle(PropZIndex, "2").WithAttribute(AttrKey, "k").WithRef(ref)
	n.SetLayoutRect(Rect{Width: 5, Height: 5})

	c := n.Clone()
	if c.Parent() != nil {
		t.Error("clone is attached")
	}
	if c.LayoutRect() != (Rect{}) {
		t.Errorf("clone rect = %v, want zero", c.LayoutRect())
	}
	if c.Style(PropZIndex) != "2" || c.Attribute(AttrKey) != "k" {
		t.Error("clone lost style or attributes")
	}
	kids := c.Children()
	if len(kids) != 1 || kids[0] == child || kids[0].Text() != "hi" || kids[0].Parent() != c {
		t.Fatalf("clone children = %v", kids)
	}

	c.SetStyle(PropZIndex, "9")
	if n.Style(PropZIndex) != "2" {
		t.Error("clone shares style map with original")
	}
	if child.Parent() != n {
		t.Error("original child was moved")
	}
}
