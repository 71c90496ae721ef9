package ggsurface

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"gioui.org/f32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~whereswaldon/timechart/chart"
)

var (
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	red   = color.NRGBA{R: 0xff, A: 0xff}
	blue  = color.NRGBA{B: 0xff, A: 0xff}
)

func newSurface(t *testing.T) *Surface {
	t.Helper()
	s, err := New(120, 80)
	require.NoError(t, err)
	s.Fill(white)
	return s
}

func at(s *Surface, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(s.Image().At(x, y)).(color.NRGBA)
}

func TestFillAndSize(t *testing.T) {
	s := newSurface(t)
	assert.Equal(t, f32.Pt(120, 80), s.Size())
	assert.Equal(t, white, at(s, 0, 0))
	assert.Equal(t, white, at(s, 119, 79))
}

func TestCircle(t *testing.T) {
	s := newSurface(t)
	s.Circle(f32.Pt(20, 20), 5, red)
	assert.Equal(t, red, at(s, 20, 20))
	assert.Equal(t, white, at(s, 30, 20))
}

func TestRing(t *testing.T) {
	s := newSurface(t)
	s.Ring(f32.Pt(40, 40), 10, chart.Stroke{Color: blue, Width: 3})
	assert.Equal(t, white, at(s, 40, 40))
	assert.Equal(t, blue, at(s, 49, 39))
}

func TestLine(t *testing.T) {
	s := newSurface(t)
	s.Line(f32.Pt(0, 40), f32.Pt(120, 40), chart.Stroke{Color: blue, Width: 4})
	for x := 5; x < 115; x += 10 {
		assert.Equal(t, blue, at(s, x, 40), "x=%d", x)
	}
	assert.Equal(t, white, at(s, 50, 50))
}

func TestDashedLine(t *testing.T) {
	s := newSurface(t)
	s.Line(f32.Pt(0, 60), f32.Pt(120, 60), chart.Stroke{Color: red, Width: 2, Dashed: true})
	painted := 0
	for x := 10; x < 110; x++ {
		if at(s, x, 60) != white {
			painted++
		}
	}
	// Half of the line is gaps, give or take antialiased edges.
	assert.Greater(t, painted, 30)
	assert.Less(t, painted, 80)

	// A later solid line must not inherit the dash pattern.
	s.Line(f32.Pt(0, 20), f32.Pt(120, 20), chart.Stroke{Color: red, Width: 2})
	for x := 10; x < 110; x++ {
		require.NotEqual(t, white, at(s, x, 20), "x=%d", x)
	}
}

func TestText(t *testing.T) {
	s := newSurface(t)
	style := chart.TextStyle{Color: color.NRGBA{A: 0xff}, Size: 14}
	size := s.MeasureText("No entries found", style)
	assert.Greater(t, size.X, float32(40))
	assert.Greater(t, size.Y, float32(5))
	assert.Greater(t, size.X, s.MeasureText("No", style).X)

	s.Text("WWWW", f32.Pt(60, 40), .5, .5, style)
	inked := false
	for y := 30; y < 50 && !inked; y++ {
		for x := 40; x < 80; x++ {
			if at(s, x, y) != white {
				inked = true
				break
			}
		}
	}
	assert.True(t, inked)
}

func TestEncodePNG(t *testing.T) {
	s := newSurface(t)
	chart.RenderEmptyMessage(chart.Pass{Surface: s, Style: chart.DefaultStyle()})
	var buf bytes.Buffer
	require.NoError(t, s.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 120, 80), img.Bounds())
}
