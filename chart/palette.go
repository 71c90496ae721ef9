package chart

import (
	"image/color"
	"math"
	"math/rand"
	"slices"
	"sync"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// swatchCount is the number of curated colors per theme before the palette
// falls back to random colors.
const swatchCount = 24

// accentClearance is how many degrees of hue series colors keep away from
// the selection and hover accents.
const accentClearance = 25

var (
	accentHues    = []float64{hueOf(selectionColor), hueOf(hoverColor)}
	lightSwatches = swatches(.5, .6)
	darkSwatches  = swatches(.75, .45)
)

// swatches spreads hues around the HCL wheel by the golden ratio, which
// keeps neighboring series visually distinct for any prefix of the list.
func swatches(luminance, chroma float64) []color.NRGBA {
	out := make([]color.NRGBA, 0, swatchCount)
	for i := 0; len(out) < swatchCount; i++ {
		hue := math.Mod(float64(i+1)*math.Phi, 1) * 360
		c := toNRGBA(colorful.Hcl(hue, chroma, luminance).Clamped())
		if !slices.Contains(out, c) && !nearAccent(c) {
			out = append(out, c)
		}
	}
	return out
}

func hueOf(c color.NRGBA) float64 {
	cf, _ := colorful.MakeColor(c)
	h, _, _ := cf.Hcl()
	return h
}

// nearAccent reports whether c could be mistaken for an overlay accent.
// Greys have no meaningful hue and never are.
func nearAccent(c color.NRGBA) bool {
	cf, _ := colorful.MakeColor(c)
	h, chroma, _ := cf.Hcl()
	if chroma < .2 {
		return false
	}
	for _, a := range accentHues {
		d := math.Abs(h - a)
		if min(d, 360-d) < accentClearance {
			return true
		}
	}
	return false
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// Palette assigns stable, distinct colors to series indices. Colors are
// memoized per theme, so index i maps to the same color for the lifetime
// of the palette. A Palette is safe for concurrent use.
type Palette struct {
	mu    sync.Mutex
	rng   *rand.Rand
	light []color.NRGBA
	dark  []color.NRGBA
}

// NewPalette returns an empty palette whose fallback colors are seeded
// from the clock.
func NewPalette() *Palette {
	return NewPaletteWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewPaletteWithRand returns an empty palette drawing fallback colors from
// rng.
func NewPaletteWithRand(rng *rand.Rand) *Palette {
	return &Palette{rng: rng}
}

// Color returns the color assigned to the series at index for the given
// theme, assigning colors to every lower index first if necessary. Newly
// assigned colors are chosen from the curated swatches in order, skipping
// any already assigned or listed in excluded. Once the swatches run out,
// random opaque colors are used under the same rule, also avoiding the hues
// of the selection and hover accents.
func (p *Palette) Color(index int, dark bool, excluded ...color.NRGBA) color.NRGBA {
	index = max(index, 0)
	p.mu.Lock()
	defer p.mu.Unlock()
	assigned, swatches := &p.light, lightSwatches
	if dark {
		assigned, swatches = &p.dark, darkSwatches
	}
	taken := func(c color.NRGBA) bool {
		return slices.Contains(*assigned, c) || slices.Contains(excluded, c)
	}
	for len(*assigned) <= index {
		*assigned = append(*assigned, p.next(swatches, taken))
	}
	return (*assigned)[index]
}

func (p *Palette) next(swatches []color.NRGBA, taken func(color.NRGBA) bool) color.NRGBA {
	for _, c := range swatches {
		if !taken(c) {
			return c
		}
	}
	for {
		c := color.NRGBA{
			R: uint8(p.rng.Intn(256)),
			G: uint8(p.rng.Intn(256)),
			B: uint8(p.rng.Intn(256)),
			A: 0xff,
		}
		if !taken(c) && !nearAccent(c) {
			return c
		}
	}
}

// Assigned returns a copy of the colors assigned so far for a theme, in
// index order.
func (p *Palette) Assigned(dark bool) []color.NRGBA {
	p.mu.Lock()
	defer p.mu.Unlock()
	if dark {
		return slices.Clone(p.dark)
	}
	return slices.Clone(p.light)
}

// Swatches returns the curated colors for a theme.
func Swatches(dark bool) []color.NRGBA {
	if dark {
		return slices.Clone(darkSwatches)
	}
	return slices.Clone(lightSwatches)
}
