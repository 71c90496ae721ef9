// Package giosurface draws charts into Gio operation lists.
package giosurface

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/x/stroke"

	"git.sr.ht/~whereswaldon/timechart/chart"
)

// Surface is a chart.Surface recording into a Gio operation list. All
// coordinates are in pixels.
type Surface struct {
	ops    *op.Ops
	size   image.Point
	shaper *text.Shaper
}

var _ chart.Surface = (*Surface)(nil)

// New returns a surface of the given size drawing into ops. Text is shaped
// with shaper.
func New(ops *op.Ops, size image.Point, shaper *text.Shaper) *Surface {
	return &Surface{ops: ops, size: size, shaper: shaper}
}

// Fill paints the whole surface with c.
func (s *Surface) Fill(c color.NRGBA) {
	defer clip.Rect{Max: s.size}.Push(s.ops).Pop()
	paint.Fill(s.ops, c)
}

func (s *Surface) Size() f32.Point {
	return f32.Pt(float32(s.size.X), float32(s.size.Y))
}

func (s *Surface) Line(from, to f32.Point, st chart.Stroke) {
	shape := stroke.Stroke{
		Path: stroke.Path{
			Segments: []stroke.Segment{
				stroke.MoveTo(from),
				stroke.LineTo(to),
			},
		},
		Width: st.Width,
	}
	if st.Dashed {
		shape.Dashes = stroke.Dashes{Dashes: chart.DashPattern[:]}
	}
	paint.FillShape(s.ops, st.Color, shape.Op(s.ops))
}

func (s *Surface) Circle(center f32.Point, radius float32, fill color.NRGBA) {
	paint.FillShape(s.ops, fill, clip.Outline{Path: s.circle(center, radius)}.Op())
}

func (s *Surface) Ring(center f32.Point, radius float32, st chart.Stroke) {
	paint.FillShape(s.ops, st.Color, clip.Stroke{Path: s.circle(center, radius), Width: st.Width}.Op())
}

func (s *Surface) circle(center f32.Point, radius float32) clip.PathSpec {
	var p clip.Path
	p.Begin(s.ops)
	p.MoveTo(f32.Pt(center.X+radius, center.Y))
	p.Arc(f32.Pt(-radius, 0), f32.Pt(-radius, 0), 2*math.Pi)
	p.Close()
	return p.End()
}

// context returns a layout context with one pixel per dp and sp, so that
// chart sizes map directly onto the surface.
func (s *Surface) context() layout.Context {
	return layout.Context{
		Ops:         s.ops,
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Constraints: layout.Constraints{Max: s.size},
	}
}

// label lays txt out in a macro and returns it along with its size.
func (s *Surface) label(txt string, style chart.TextStyle) (op.CallOp, image.Point) {
	colorMacro := op.Record(s.ops)
	paint.ColorOp{Color: style.Color}.Add(s.ops)
	material := colorMacro.Stop()

	macro := op.Record(s.ops)
	dims := widget.Label{MaxLines: 1}.Layout(s.context(), s.shaper, font.Font{}, unit.Sp(style.Size), txt, material)
	return macro.Stop(), dims.Size
}

func (s *Surface) Text(txt string, at f32.Point, ax, ay float32, style chart.TextStyle) {
	call, size := s.label(txt, style)
	origin := image.Pt(
		int(math.Round(float64(at.X-ax*float32(size.X)))),
		int(math.Round(float64(at.Y-ay*float32(size.Y)))),
	)
	defer op.Offset(origin).Push(s.ops).Pop()
	call.Add(s.ops)
}

func (s *Surface) MeasureText(txt string, style chart.TextStyle) f32.Point {
	// The recorded label is never added, so it does not draw.
	_, size := s.label(txt, style)
	return f32.Pt(float32(size.X), float32(size.Y))
}
