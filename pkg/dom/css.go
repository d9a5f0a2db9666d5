package dom

import (
	"math"
	"strconv"
	"strings"

	"github.com/felixfbecker/resizegrid/pkg/errors"
)

// Inline style properties understood by the grid.
const (
	PropGridColumnEnd = "grid-column-end"
	PropGridRowEnd    = "grid-row-end"
	PropWidth         = "width"
	PropHeight        = "height"
	PropZIndex        = "z-index"
	PropTransform     = "transform"
	PropPosition      = "position"
	PropLeft          = "left"
	PropTop           = "top"
	PropRight         = "right"
	PropBottom        = "bottom"
)

// Attributes understood by the grid.
const (
	AttrAriaGrabbed = "aria-grabbed"
	AttrTabIndex    = "tabindex"
	AttrKey         = "data-key"
	AttrClass       = "class"
)

// PositionAbsolute is the position value that takes a node out of flow.
const PositionAbsolute = "absolute"

const spanPrefix = "span "

// Span formats a grid span, e.g. "span 3".
func Span(n int) string {
	return spanPrefix + strconv.Itoa(n)
}

// ParseSpan parses a "span N" value with N >= 1.
func ParseSpan(value string) (int, error) {
	v := strings.TrimSpace(value)
	if !strings.HasPrefix(v, spanPrefix) {
		return 0, errors.New(errors.ErrCodeInvalidStyle, "expected %q, got %q", "span <n>", value)
	}
	n, err := strconv.Atoi(strings.TrimSpace(v[len(spanPrefix):]))
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidStyle, err, "parse span %q", value)
	}
	if n < 1 {
		return 0, errors.New(errors.ErrCodeInvalidStyle, "span must be at least 1, got %q", value)
	}
	return n, nil
}

// Px formats a length in pixels, e.g. "250px".
func Px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// ParsePx parses a pixel length. A bare "0" is accepted.
func ParsePx(value string) (float64, error) {
	v := strings.TrimSpace(value)
	if v == "0" {
		return 0, nil
	}
	num, ok := strings.CutSuffix(v, "px")
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidStyle, "expected a pixel length, got %q", value)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidStyle, err, "parse length %q", value)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.New(errors.ErrCodeInvalidStyle, "length %q is not finite", value)
	}
	return f, nil
}

// Translate formats a 2D translation, e.g. "translate(4px, -2px)".
func Translate(dx, dy float64) string {
	return "translate(" + Px(dx) + ", " + Px(dy) + ")"
}

// ParseTranslate parses a value produced by Translate. An empty value
// means no translation.
func ParseTranslate(value string) (dx, dy float64, err error) {
	v := strings.TrimSpace(value)
	if v == "" || v == "none" {
		return 0, 0, nil
	}
	args, ok := strings.CutPrefix(v, "translate(")
	if ok {
		args, ok = strings.CutSuffix(args, ")")
	}
	if !ok {
		return 0, 0, errors.New(errors.ErrCodeInvalidStyle, "expected translate(x, y), got %q", value)
	}
	xs, ys, ok := strings.Cut(args, ",")
	if !ok {
		return 0, 0, errors.New(errors.ErrCodeInvalidStyle, "translate needs two arguments, got %q", value)
	}
	if dx, err = ParsePx(xs); err != nil {
		return 0, 0, err
	}
	if dy, err = ParsePx(ys); err != nil {
		return 0, 0, err
	}
	return dx, dy, nil
}

// ParseZIndex parses a z-index. ok is false for "" and "auto".
func ParseZIndex(value string) (z int, ok bool, err error) {
	v := strings.TrimSpace(value)
	if v == "" || v == "auto" {
		return 0, false, nil
	}
	z, err = strconv.Atoi(v)
	if err != nil {
		return 0, false, errors.Wrap(errors.ErrCodeInvalidStyle, err, "parse z-index %q", value)
	}
	return z, true, nil
}
