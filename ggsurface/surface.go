// Package ggsurface draws charts onto raster images with gg, for export
// and for tests that inspect pixels.
package ggsurface

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"

	"gioui.org/f32"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"git.sr.ht/~whereswaldon/timechart/chart"
)

var (
	regularOnce sync.Once
	regular     *opentype.Font
	regularErr  error
)

func regularFont() (*opentype.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = opentype.Parse(goregular.TTF)
	})
	return regular, regularErr
}

// Surface is a chart.Surface backed by an in-memory RGBA image.
type Surface struct {
	dc    *gg.Context
	font  *opentype.Font
	faces map[float32]font.Face
}

var _ chart.Surface = (*Surface)(nil)

// New returns a transparent surface of the given size in pixels.
func New(width, height int) (*Surface, error) {
	f, err := regularFont()
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	return &Surface{
		dc:    gg.NewContext(width, height),
		font:  f,
		faces: make(map[float32]font.Face),
	}, nil
}

// face returns the font face for size, caching it.
func (s *Surface) face(size float32) font.Face {
	if f, ok := s.faces[size]; ok {
		return f
	}
	f, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		// Fall back to the bitmap face for sizes opentype rejects.
		f = basicfont.Face7x13
	}
	s.faces[size] = f
	return f
}

// Fill paints the whole surface with c.
func (s *Surface) Fill(c color.NRGBA) {
	s.dc.SetColor(c)
	s.dc.Clear()
}

func (s *Surface) Size() f32.Point {
	return f32.Pt(float32(s.dc.Width()), float32(s.dc.Height()))
}

func (s *Surface) Line(from, to f32.Point, st chart.Stroke) {
	s.dc.SetColor(st.Color)
	s.dc.SetLineWidth(float64(st.Width))
	if st.Dashed {
		// Round caps would close the gaps of short dashes.
		s.dc.SetLineCapButt()
		s.dc.SetDash(float64(chart.DashPattern[0]), float64(chart.DashPattern[1]))
	} else {
		s.dc.SetLineCapRound()
		s.dc.SetDash()
	}
	s.dc.DrawLine(float64(from.X), float64(from.Y), float64(to.X), float64(to.Y))
	s.dc.Stroke()
}

func (s *Surface) Circle(center f32.Point, radius float32, fill color.NRGBA) {
	s.dc.SetColor(fill)
	s.dc.DrawCircle(float64(center.X), float64(center.Y), float64(radius))
	s.dc.Fill()
}

func (s *Surface) Ring(center f32.Point, radius float32, st chart.Stroke) {
	s.dc.SetColor(st.Color)
	s.dc.SetLineWidth(float64(st.Width))
	s.dc.SetDash()
	s.dc.DrawCircle(float64(center.X), float64(center.Y), float64(radius))
	s.dc.Stroke()
}

func (s *Surface) Text(txt string, at f32.Point, ax, ay float32, style chart.TextStyle) {
	s.dc.SetFontFace(s.face(style.Size))
	s.dc.SetColor(style.Color)
	s.dc.DrawStringAnchored(txt, float64(at.X), float64(at.Y), float64(ax), float64(ay))
}

func (s *Surface) MeasureText(txt string, style chart.TextStyle) f32.Point {
	s.dc.SetFontFace(s.face(style.Size))
	w, h := s.dc.MeasureString(txt)
	return f32.Pt(float32(w), float32(h))
}

// Image returns the rendered image.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// EncodePNG writes the rendered image to w as a PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// SavePNG writes the rendered image to the file at path.
func (s *Surface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
