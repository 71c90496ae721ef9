package chart

import (
	"slices"

	"gioui.org/f32"
)

// RenderState draws each series as a step line: the series holds the row
// of its previous state until the next transition, where a dashed
// vertical segment leads to the row of the new state. The first
// transition of a series is drawn from the row of its old state. cache
// may be nil.
func RenderState[T any](p Pass, data StateSource[T], in Interaction, cache *PositionCache[StateEntry[T]]) {
	if isEmpty[StateEntry[T]](data) {
		cache.Reset()
		RenderEmptyMessage(p)
		return
	}
	labels := data.Labels()
	renderCategoryGrid(p, len(labels))
	renderCategoryLabels(p, labels)
	sz := p.size()
	row := func(state string) (float32, bool) {
		return MapCategory(slices.Index(labels, state), len(labels), sz.Y, p.Style.VerticalPadding)
	}
	renderSeries(p, data.Keys(), in, cache, highlightExtra, func(key ChartKey, pen pen, hovered *EntryID, cache *PositionCache[StateEntry[T]]) (skipped int) {
		var prev f32.Point
		first := true
		for _, e := range data.Entries(key) {
			y, ok := row(e.NewState)
			if !ok {
				skipped++
				continue
			}
			x := MapTime(e.Timestamp, p.Frame, sz.X)
			pt := f32.Pt(x, y)
			id := key.ID(e.Timestamp)
			cache.Put(id, pt, e)
			if first {
				if oldY, ok := row(e.OldState); ok {
					p.Surface.Line(f32.Pt(x, oldY), pt, pen.dashed())
				}
			} else {
				corner := f32.Pt(x, prev.Y)
				p.Surface.Line(prev, corner, pen.stroke())
				p.Surface.Line(corner, pt, pen.dashed())
			}
			RenderOverlay(p.Surface, id, pt, in.Selected, hovered)
			prev, first = pt, false
		}
		return skipped
	})
}

// RenderSingleState draws each series as a step line through the rows of
// the states it holds, starting with a dot at its first entry. cache may
// be nil.
func RenderSingleState[T any](p Pass, data SingleStateSource[T], in Interaction, cache *PositionCache[SingleStateEntry[T]]) {
	if isEmpty[SingleStateEntry[T]](data) {
		cache.Reset()
		RenderEmptyMessage(p)
		return
	}
	labels := data.Labels()
	renderCategoryGrid(p, len(labels))
	renderCategoryLabels(p, labels)
	sz := p.size()
	renderSeries(p, data.Keys(), in, cache, highlightExtra, func(key ChartKey, pen pen, hovered *EntryID, cache *PositionCache[SingleStateEntry[T]]) (skipped int) {
		var prev f32.Point
		first := true
		for _, e := range data.Entries(key) {
			y, ok := MapCategory(slices.Index(labels, e.State), len(labels), sz.Y, p.Style.VerticalPadding)
			if !ok {
				skipped++
				continue
			}
			x := MapTime(e.Timestamp, p.Frame, sz.X)
			pt := f32.Pt(x, y)
			id := key.ID(e.Timestamp)
			cache.Put(id, pt, e)
			if first {
				p.Surface.Circle(pt, pen.width, pen.color)
			} else {
				corner := f32.Pt(x, prev.Y)
				p.Surface.Line(prev, corner, pen.stroke())
				p.Surface.Line(corner, pt, pen.dashed())
			}
			RenderOverlay(p.Surface, id, pt, in.Selected, hovered)
			prev, first = pt, false
		}
		return skipped
	})
}
