// Package charttest provides a recording chart.Surface for tests.
package charttest

import (
	"image/color"

	"gioui.org/f32"

	"git.sr.ht/~whereswaldon/timechart/chart"
)

// Kind identifies a drawing call.
type Kind int

const (
	Line Kind = iota
	Circle
	Ring
	Text
)

func (k Kind) String() string {
	switch k {
	case Line:
		return "line"
	case Circle:
		return "circle"
	case Ring:
		return "ring"
	case Text:
		return "text"
	}
	return "unknown"
}

// Op is one recorded drawing call. Only the fields relevant to its Kind
// are set.
type Op struct {
	Kind Kind
	// From and To are the endpoints of a line. Circles and rings store
	// their center in From, text its anchor point.
	From, To f32.Point
	Radius   float32
	Stroke   chart.Stroke
	Fill     color.NRGBA
	Text     string
	Anchor   f32.Point
	Style    chart.TextStyle
}

// Recorder is a chart.Surface that records every call made on it.
type Recorder struct {
	W, H float32
	Ops  []Op
}

var _ chart.Surface = (*Recorder)(nil)

// New returns a recorder of the given size.
func New(w, h float32) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() f32.Point { return f32.Pt(r.W, r.H) }

func (r *Recorder) Line(from, to f32.Point, stroke chart.Stroke) {
	r.Ops = append(r.Ops, Op{Kind: Line, From: from, To: to, Stroke: stroke})
}

func (r *Recorder) Circle(center f32.Point, radius float32, fill color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: Circle, From: center, Radius: radius, Fill: fill})
}

func (r *Recorder) Ring(center f32.Point, radius float32, stroke chart.Stroke) {
	r.Ops = append(r.Ops, Op{Kind: Ring, From: center, Radius: radius, Stroke: stroke})
}

func (r *Recorder) Text(txt string, at f32.Point, ax, ay float32, style chart.TextStyle) {
	r.Ops = append(r.Ops, Op{Kind: Text, From: at, Text: txt, Anchor: f32.Pt(ax, ay), Style: style})
}

// MeasureText approximates every glyph as 0.6 em wide and one em high.
func (r *Recorder) MeasureText(txt string, style chart.TextStyle) f32.Point {
	return f32.Pt(float32(len([]rune(txt)))*style.Size*.6, style.Size)
}

// Filter returns the recorded ops of the given kind in call order.
func (r *Recorder) Filter(kind Kind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Count returns how many ops of the given kind were recorded.
func (r *Recorder) Count(kind Kind) int {
	return len(r.Filter(kind))
}

// Colored returns the recorded ops drawn in c, by stroke or fill.
func (r *Recorder) Colored(c color.NRGBA) []Op {
	var out []Op
	for _, op := range r.Ops {
		if (op.Kind == Circle && op.Fill == c) || ((op.Kind == Line || op.Kind == Ring) && op.Stroke.Color == c) {
			out = append(out, op)
		}
	}
	return out
}

// Texts returns the recorded strings in call order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Filter(Text) {
		out = append(out, op.Text)
	}
	return out
}

// Reset forgets every recorded op.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
