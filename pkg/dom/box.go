package dom

import "github.com/felixfbecker/resizegrid/pkg/errors"

// Inset is the gap between an item's edge and its in-flow content; it leaves
// room for a one-cell border.
const Inset = 1

// LayoutBox lays out the descendants of a node whose own layout rect has
// already been assigned.
//
// Children with position: absolute are placed against the parent's sized
// rect using left/top or right/bottom plus width/height (each defaulting to
// one unit). Other children flow top to bottom inside the inset, one unit
// tall unless they set a height.
func LayoutBox(n *Node) error {
	box := n.SizedRect()
	box.X, box.Y = n.rect.X, n.rect.Y

	flowY := box.Y + Inset
	for _, c := range n.children {
		var r Rect
		var err error
		if c.style[PropPosition] == PositionAbsolute {
			r, err = absoluteRect(c, box)
		} else {
			r, err = flowRect(c, box, flowY)
			flowY += r.Height
		}
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidStyle, err, "layout <%s>", c.tag)
		}
		c.rect = r
		if err := LayoutBox(c); err != nil {
			return err
		}
	}
	return nil
}

func absoluteRect(c *Node, parent Rect) (Rect, error) {
	w, err := lengthOr(c, PropWidth, 1)
	if err != nil {
		return Rect{}, err
	}
	h, err := lengthOr(c, PropHeight, 1)
	if err != nil {
		return Rect{}, err
	}
	r := Rect{X: parent.X, Y: parent.Y, Width: w, Height: h}

	switch {
	case c.style[PropLeft] != "":
		left, err := ParsePx(c.style[PropLeft])
		if err != nil {
			return Rect{}, err
		}
		r.X = parent.X + left
	case c.style[PropRight] != "":
		right, err := ParsePx(c.style[PropRight])
		if err != nil {
			return Rect{}, err
		}
		r.X = parent.Right() - right - w
	}

	switch {
	case c.style[PropTop] != "":
		top, err := ParsePx(c.style[PropTop])
		if err != nil {
			return Rect{}, err
		}
		r.Y = parent.Y + top
	case c.style[PropBottom] != "":
		bottom, err := ParsePx(c.style[PropBottom])
		if err != nil {
			return Rect{}, err
		}
		r.Y = parent.Bottom() - bottom - h
	}
	return r, nil
}

func flowRect(c *Node, parent Rect, y float64) (Rect, error) {
	h, err := lengthOr(c, PropHeight, 1)
	if err != nil {
		return Rect{}, err
	}
	w := max(parent.Width-2*Inset, 0)
	if v := c.style[PropWidth]; v != "" {
		if w, err = ParsePx(v); err != nil {
			return Rect{}, err
		}
	}
	return Rect{X: parent.X + Inset, Y: y, Width: w, Height: h}, nil
}

func lengthOr(c *Node, prop string, def float64) (float64, error) {
	v := c.style[prop]
	if v == "" {
		return def, nil
	}
	return ParsePx(v)
}
