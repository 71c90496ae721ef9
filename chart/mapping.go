package chart

import (
	"golang.org/x/exp/constraints"
)

// MapTime converts a timestamp to a horizontal pixel offset within a
// surface of the given width. Timestamps outside of the frame map outside
// of [0,width]; it is up to the surface to clip them. A zero-length frame
// maps everything to zero.
func MapTime(ts int64, frame TimeFrame, width float32) float32 {
	span := distance(frame.start, frame.end)
	if span == 0 {
		return 0
	}
	// Compute in float64 so that nanosecond timestamps keep their precision.
	return float32(distance(frame.start, ts) / span * float64(width))
}

// distance returns b-a without wrapping when the difference does not fit
// in an int64.
func distance(a, b int64) float64 {
	if b >= a {
		return float64(uint64(b) - uint64(a))
	}
	return -float64(uint64(a) - uint64(b))
}

// MapCategory returns the vertical pixel center of row index out of count
// equally sized rows laid out between padding and height-padding. ok is
// false if count is not positive or the index is not one of the rows.
func MapCategory(index, count int, height, padding float32) (y float32, ok bool) {
	if count <= 0 || index < 0 || index >= count {
		return 0, false
	}
	padding, drawable := drawableHeight(height, padding)
	band := drawable / float32(count)
	return padding + band*(float32(index)+.5), true
}

// MapValue returns the vertical pixel offset of value on a linear scale
// from zero to maxValue. Zero maps to the center of the lowest of count
// label bands and maxValue to the center of the highest, so that values
// line up with the value labels. With a single band the scale spans the
// whole padded height. Values outside of [0,maxValue] are clamped. ok is
// false if maxValue or count is not positive.
func MapValue(value, maxValue float64, count int, height, padding float32) (y float32, ok bool) {
	if maxValue <= 0 || count <= 0 {
		return 0, false
	}
	padding, drawable := drawableHeight(height, padding)
	top, bottom := padding, padding+drawable
	if count > 1 {
		half := drawable / float32(count) / 2
		top += half
		bottom -= half
	}
	fraction := clamp(value, 0, maxValue) / maxValue
	return bottom - float32(fraction)*(bottom-top), true
}

// drawableHeight bounds padding to half of the height and returns it along
// with the height remaining between the paddings.
func drawableHeight(height, padding float32) (float32, float32) {
	height = max(height, 0)
	padding = clamp(padding, 0, height/2)
	return padding, height - 2*padding
}

func clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
