package chart

import (
	"sync"
	"testing"

	"gioui.org/f32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionCachePutGet(t *testing.T) {
	c := NewPositionCache[string]()
	id := EntryID{Key: "a", Timestamp: 10}
	c.Put(id, f32.Pt(1, 2), "first")
	pos, ok := c.Get(id)
	require.True(t, ok)
	assert.Equal(t, f32.Pt(1, 2), pos.Point)
	assert.Equal(t, "first", pos.Entry)

	c.Put(id, f32.Pt(3, 4), "second")
	assert.Equal(t, 1, c.Len())
	pos, _ = c.Get(id)
	assert.Equal(t, "second", pos.Entry)

	_, ok = c.Get(EntryID{Key: "a", Timestamp: 11})
	assert.False(t, ok)
	_, ok = c.Get(EntryID{Key: "b", Timestamp: 10})
	assert.False(t, ok)
}

func TestPositionCacheNil(t *testing.T) {
	var c *PositionCache[int]
	c.Put(EntryID{Key: "a"}, f32.Pt(0, 0), 1)
	c.Reset()
	assert.Equal(t, 0, c.Len())
	_, ok := c.Get(EntryID{Key: "a"})
	assert.False(t, ok)
	_, ok = c.Query(f32.Pt(0, 0), 0)
	assert.False(t, ok)
}

func TestPositionCacheQuery(t *testing.T) {
	c := NewPositionCache[int]()
	for i, pt := range []f32.Point{{X: 50, Y: 10}, {X: 0, Y: 0}, {X: 10, Y: 10}, {X: 12, Y: 40}, {X: 100, Y: 100}} {
		c.Put(EntryID{Key: "k", Timestamp: int64(i)}, pt, i)
	}
	type testcase struct {
		name   string
		pt     f32.Point
		radius float32
		found  bool
		entry  int
	}
	for _, tc := range []testcase{
		{name: "exact hit", pt: f32.Pt(10, 10), radius: 4, found: true, entry: 2},
		{name: "near hit", pt: f32.Pt(12, 12), radius: 4, found: true, entry: 2},
		{name: "closest of two in range", pt: f32.Pt(11, 30), radius: 25, found: true, entry: 3},
		{name: "nothing in range", pt: f32.Pt(30, 70), radius: 5, found: false},
		{name: "unbounded", pt: f32.Pt(90, 90), radius: 0, found: true, entry: 4},
		{name: "far left", pt: f32.Pt(-500, 0), radius: 0, found: true, entry: 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			pos, ok := c.Query(tc.pt, tc.radius)
			require.Equal(t, tc.found, ok)
			if ok {
				assert.Equal(t, tc.entry, pos.Entry)
			}
		})
	}
}

func TestPositionCacheQueryTie(t *testing.T) {
	c := NewPositionCache[string]()
	c.Put(EntryID{Key: "b"}, f32.Pt(10, 0), "drawn first")
	c.Put(EntryID{Key: "a"}, f32.Pt(10, 0), "drawn second")
	pos, ok := c.Query(f32.Pt(10, 0), 1)
	require.True(t, ok)
	assert.Equal(t, "drawn first", pos.Entry)
}

func TestPositionCacheQueryAfterWrite(t *testing.T) {
	c := NewPositionCache[int]()
	c.Put(EntryID{Key: "a"}, f32.Pt(0, 0), 1)
	_, ok := c.Query(f32.Pt(100, 0), 5)
	require.False(t, ok)
	c.Put(EntryID{Key: "b"}, f32.Pt(100, 0), 2)
	pos, ok := c.Query(f32.Pt(100, 0), 5)
	require.True(t, ok)
	assert.Equal(t, 2, pos.Entry)
}

func TestPositionCacheReset(t *testing.T) {
	c := NewPositionCache[int]()
	c.Put(EntryID{Key: "a"}, f32.Pt(0, 0), 1)
	c.Reset()
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.All())
	_, ok := c.Query(f32.Pt(0, 0), 0)
	assert.False(t, ok)
}

func TestPublished(t *testing.T) {
	var p Published[PositionCache[int]]
	assert.Nil(t, p.Load())

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				// A published cache is either absent or complete.
				if c := p.Load(); c != nil {
					assert.Equal(t, 10, c.Len())
					c.Query(f32.Pt(5, 5), 0)
				}
			}
		}()
	}
	for round := 0; round < 20; round++ {
		c := NewPositionCache[int]()
		for i := 0; i < 10; i++ {
			c.Put(EntryID{Key: "k", Timestamp: int64(i)}, f32.Pt(float32(i), float32(round)), i)
		}
		c.sortByX()
		p.Publish(c)
	}
	wg.Wait()
	require.NotNil(t, p.Load())
	assert.Equal(t, 10, p.Load().Len())
}
