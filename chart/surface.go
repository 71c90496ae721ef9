package chart

import (
	"image/color"

	"gioui.org/f32"
)

// DashPattern is the on/off length in pixels of dashed strokes.
var DashPattern = [2]float32{3, 3}

// Stroke describes how a line or outline is drawn.
type Stroke struct {
	Color  color.NRGBA
	Width  float32
	Dashed bool
}

// Surface is a fixed-size 2D drawing target with its origin in the top
// left corner and Y growing downwards. Drawing outside of the surface is
// allowed and clipped.
type Surface interface {
	// Size returns the dimensions of the surface in pixels.
	Size() f32.Point
	Line(from, to f32.Point, stroke Stroke)
	// Circle draws a filled circle.
	Circle(center f32.Point, radius float32, fill color.NRGBA)
	// Ring draws the outline of a circle.
	Ring(center f32.Point, radius float32, stroke Stroke)
	// Text draws txt so that the point at fraction (ax,ay) of its bounding
	// box lands on at. (0,0) is the top left corner, (.5,.5) the center.
	Text(txt string, at f32.Point, ax, ay float32, style TextStyle)
	// MeasureText returns the size of the bounding box of txt.
	MeasureText(txt string, style TextStyle) f32.Point
}
