package chart

import (
	"slices"
	"sort"
	"sync/atomic"

	"gioui.org/f32"
)

// Position is where an entry was drawn during a render pass.
type Position[E any] struct {
	ID    EntryID
	Point f32.Point
	Entry E
}

// PositionCache maps the entries drawn by one render pass to their pixel
// positions. It is filled during a pass and read afterwards to resolve
// hit-tests. Writes are not safe for concurrent use, but a cache finished
// by a render pass may be queried from any number of goroutines. Build a
// fresh one per pass and hand it to readers through Published.
type PositionCache[E any] struct {
	index     map[EntryID]int
	positions []Position[E]
	// byX holds indices into positions sorted by X. It is rebuilt lazily
	// after writes.
	byX    []int
	sorted bool
}

// NewPositionCache returns an empty cache.
func NewPositionCache[E any]() *PositionCache[E] {
	return &PositionCache[E]{index: make(map[EntryID]int)}
}

// Put records that the entry identified by id was drawn at pt. Recording
// the same id again replaces its position.
func (c *PositionCache[E]) Put(id EntryID, pt f32.Point, entry E) {
	if c == nil {
		return
	}
	if c.index == nil {
		c.index = make(map[EntryID]int)
	}
	c.sorted = false
	p := Position[E]{ID: id, Point: pt, Entry: entry}
	if i, ok := c.index[id]; ok {
		c.positions[i] = p
		return
	}
	c.index[id] = len(c.positions)
	c.positions = append(c.positions, p)
}

// Get returns the position recorded for id.
func (c *PositionCache[E]) Get(id EntryID) (Position[E], bool) {
	if c == nil {
		return Position[E]{}, false
	}
	i, ok := c.index[id]
	if !ok {
		return Position[E]{}, false
	}
	return c.positions[i], true
}

// Len returns the number of recorded positions.
func (c *PositionCache[E]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.positions)
}

// All returns the recorded positions in the order they were drawn.
func (c *PositionCache[E]) All() []Position[E] {
	if c == nil {
		return nil
	}
	return slices.Clone(c.positions)
}

// Reset empties the cache while keeping its storage.
func (c *PositionCache[E]) Reset() {
	if c == nil {
		return
	}
	clear(c.index)
	c.positions = c.positions[:0]
	c.byX = c.byX[:0]
	c.sorted = false
}

// Query returns the recorded position closest to pt within radius. A
// non-positive radius accepts any distance. Ties go to the position drawn
// first.
func (c *PositionCache[E]) Query(pt f32.Point, radius float32) (Position[E], bool) {
	if c.Len() == 0 {
		return Position[E]{}, false
	}
	c.sortByX()
	lo, hi := 0, len(c.byX)
	if radius > 0 {
		lo = sort.Search(len(c.byX), func(i int) bool {
			return c.positions[c.byX[i]].Point.X >= pt.X-radius
		})
		hi = sort.Search(len(c.byX), func(i int) bool {
			return c.positions[c.byX[i]].Point.X > pt.X+radius
		})
	}
	best, bestDist := -1, float32(0)
	for _, idx := range c.byX[lo:hi] {
		d := distSq(c.positions[idx].Point, pt)
		if radius > 0 && d > radius*radius {
			continue
		}
		if best < 0 || d < bestDist || (d == bestDist && idx < best) {
			best, bestDist = idx, d
		}
	}
	if best < 0 {
		return Position[E]{}, false
	}
	return c.positions[best], true
}

func (c *PositionCache[E]) sortByX() {
	if c == nil || c.sorted {
		return
	}
	c.byX = c.byX[:0]
	for i := range c.positions {
		c.byX = append(c.byX, i)
	}
	sort.SliceStable(c.byX, func(i, j int) bool {
		return c.positions[c.byX[i]].Point.X < c.positions[c.byX[j]].Point.X
	})
	c.sorted = true
}

func distSq(a, b f32.Point) float32 {
	d := a.Sub(b)
	return d.X*d.X + d.Y*d.Y
}

// Published holds the most recently completed value of a double-buffered
// structure such as a PositionCache. Writers build a new value off to the
// side and Publish it once complete, so readers never observe a partially
// built one.
type Published[T any] struct {
	p atomic.Pointer[T]
}

// Publish makes v the current value.
func (p *Published[T]) Publish(v *T) {
	p.p.Store(v)
}

// Load returns the current value, or nil if nothing was published yet.
func (p *Published[T]) Load() *T {
	return p.p.Load()
}
