package chart

import (
	"image/color"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededPalette() *Palette {
	return NewPaletteWithRand(rand.New(rand.NewSource(1)))
}

func TestSwatchesAreDistinct(t *testing.T) {
	for _, dark := range []bool{false, true} {
		seen := map[color.NRGBA]bool{}
		for _, c := range Swatches(dark) {
			assert.False(t, seen[c], "duplicate swatch %v", c)
			assert.Equal(t, uint8(0xff), c.A)
			seen[c] = true
		}
		assert.Len(t, seen, swatchCount)
	}
}

func TestPaletteStable(t *testing.T) {
	p := seededPalette()
	third := p.Color(3, false)
	assert.Equal(t, third, p.Color(3, false))
	// Asking for a higher index first assigns every lower one in order.
	assert.Equal(t, lightSwatches[0], p.Color(0, false))
	assert.Equal(t, lightSwatches[3], third)
	assert.Len(t, p.Assigned(false), 4)
	assert.Empty(t, p.Assigned(true))
}

func TestPaletteThemesAreIndependent(t *testing.T) {
	p := seededPalette()
	assert.Equal(t, lightSwatches[0], p.Color(0, false))
	assert.Equal(t, darkSwatches[0], p.Color(0, true))
	assert.NotEqual(t, p.Color(0, false), p.Color(0, true))
}

func TestPaletteDistinctBeyondSwatches(t *testing.T) {
	p := seededPalette()
	seen := map[color.NRGBA]int{}
	for i := 0; i < 3*swatchCount; i++ {
		c := p.Color(i, false)
		prev, dup := seen[c]
		require.False(t, dup, "index %d reuses the color of index %d", i, prev)
		assert.Equal(t, uint8(0xff), c.A)
		seen[c] = i
	}
}

func TestPaletteExcluded(t *testing.T) {
	p := seededPalette()
	assert.Equal(t, lightSwatches[1], p.Color(0, false, lightSwatches[0]))
	// Once assigned, exclusions no longer matter.
	assert.Equal(t, lightSwatches[1], p.Color(0, false))

	q := seededPalette()
	c := q.Color(0, true, darkSwatches...)
	assert.NotContains(t, darkSwatches, c)
	assert.Equal(t, uint8(0xff), c.A)
}

func TestPaletteAvoidsAccents(t *testing.T) {
	for _, dark := range []bool{false, true} {
		for _, c := range Swatches(dark) {
			assert.False(t, nearAccent(c), "swatch %v", c)
		}
		p := seededPalette()
		for i := 0; i < 3*swatchCount; i++ {
			c := p.Color(i, dark)
			assert.False(t, nearAccent(c), "index %d got %v", i, c)
		}
	}
	assert.True(t, nearAccent(selectionColor))
	assert.True(t, nearAccent(hoverColor))
	assert.False(t, nearAccent(color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}))
}

func TestPaletteNegativeIndex(t *testing.T) {
	p := seededPalette()
	assert.Equal(t, p.Color(0, false), p.Color(-4, false))
}

func TestPaletteConcurrent(t *testing.T) {
	p := seededPalette()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 40; i++ {
				p.Color((i*7+g)%40, g%2 == 0)
			}
		}(g)
	}
	wg.Wait()
	for _, dark := range []bool{false, true} {
		assigned := p.Assigned(dark)
		require.Len(t, assigned, 40)
		seen := map[color.NRGBA]bool{}
		for _, c := range assigned {
			assert.False(t, seen[c])
			seen[c] = true
		}
	}
}
