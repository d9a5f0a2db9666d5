package grid

import (
	"math"

	"github.com/felixfbecker/resizegrid/pkg/errors"
)

// Span bounds shared by validation and resizing.
const (
	MinSpan = 1
	MaxSpan = errors.MaxSpan
)

// CalculateSpan converts a rendered dimension into a span count given the
// size of a single span unit. The result is ceil(dimension/sizeOfOneSpan),
// kept within [MinSpan, MaxSpan].
//
// Rounding up means a partially covered track is claimed by the item, so
// auto-placement pushes other items out of the way rather than letting the
// resized item overlap them.
func CalculateSpan(dimension, sizeOfOneSpan float64) int {
	if sizeOfOneSpan <= 0 || math.IsNaN(dimension) || math.IsNaN(sizeOfOneSpan) {
		return MinSpan
	}
	span := math.Ceil(dimension / sizeOfOneSpan)
	if span < MinSpan {
		return MinSpan
	}
	if span > MaxSpan {
		return MaxSpan
	}
	return int(span)
}

// ClampSpan limits span to [MinSpan, limit]. A limit <= 0 means unbounded.
func ClampSpan(span, limit int) int {
	if span < MinSpan {
		span = MinSpan
	}
	if limit > 0 && span > limit {
		span = limit
	}
	return span
}
