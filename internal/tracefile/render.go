package tracefile

import (
	"fmt"

	"gioui.org/f32"

	"git.sr.ht/~whereswaldon/timechart/chart"
)

// Hit is an entry found under a pixel.
type Hit struct {
	ID     chart.EntryID
	Point  f32.Point
	Record Record
}

// Layout is where one render pass placed the entries of a trace. It is
// immutable and safe for concurrent queries.
type Layout struct {
	Kind  Kind
	len   int
	query func(pt f32.Point, radius float32) (Hit, bool)
}

// Len returns how many entries were placed.
func (l *Layout) Len() int { return l.len }

// Query returns the entry drawn closest to pt within radius. A
// non-positive radius accepts any distance.
func (l *Layout) Query(pt f32.Point, radius float32) (Hit, bool) {
	if l == nil || l.query == nil {
		return Hit{}, false
	}
	return l.query(pt, radius)
}

type sourced interface {
	Source() Record
}

func layoutOf[E sourced](kind Kind, cache *chart.PositionCache[E]) *Layout {
	return &Layout{
		Kind: kind,
		len:  cache.Len(),
		query: func(pt f32.Point, radius float32) (Hit, bool) {
			pos, ok := cache.Query(pt, radius)
			if !ok {
				return Hit{}, false
			}
			return Hit{ID: pos.ID, Point: pos.Point, Record: pos.Entry.Source()}, true
		},
	}
}

// Render draws the chart of one kind and returns where its entries
// landed.
func (t *Trace) Render(kind Kind, p chart.Pass, in chart.Interaction) (*Layout, error) {
	switch kind {
	case Events:
		cache := chart.NewPositionCache[chart.EventEntry[Record]]()
		chart.RenderEvents[Record](p, t.Events, in, cache)
		return layoutOf(kind, cache), nil
	case MinMax:
		cache := chart.NewPositionCache[chart.ValueEntry[Record]]()
		chart.RenderMinMax[Record](p, t.MinMax, in, cache)
		return layoutOf(kind, cache), nil
	case Percentage:
		cache := chart.NewPositionCache[chart.ValueEntry[Record]]()
		chart.RenderPercentage[Record](p, t.Percentage, in, cache)
		return layoutOf(kind, cache), nil
	case State:
		cache := chart.NewPositionCache[chart.StateEntry[Record]]()
		chart.RenderState[Record](p, t.State, in, cache)
		return layoutOf(kind, cache), nil
	case SingleState:
		cache := chart.NewPositionCache[chart.SingleStateEntry[Record]]()
		chart.RenderSingleState[Record](p, t.SingleState, in, cache)
		return layoutOf(kind, cache), nil
	case Duration:
		cache := chart.NewPositionCache[chart.DurationEntry[Record]]()
		chart.RenderDuration[Record](p, t.Duration, in, cache)
		return layoutOf(kind, cache), nil
	}
	return nil, fmt.Errorf("%q: %w", kind, ErrUnknownKind)
}
