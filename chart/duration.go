package chart

import (
	"slices"

	"gioui.org/f32"
)

// markerArm is the length of the arms of begin and end markers.
const markerArm = 3

// RenderDuration draws each series in its own row, labelled with the
// series key. Interval beginnings are drawn as a chevron pointing right,
// endings as a vertical tick, and consecutive entries are joined by a
// horizontal line. A series with no row of its own is skipped. cache may
// be nil.
func RenderDuration[T any](p Pass, data DurationSource[T], in Interaction, cache *PositionCache[DurationEntry[T]]) {
	if isEmpty[DurationEntry[T]](data) {
		cache.Reset()
		RenderEmptyMessage(p)
		return
	}
	labels := data.Labels()
	renderCategoryGrid(p, len(labels))
	renderCategoryLabels(p, labels)
	sz := p.size()
	renderSeries(p, data.Keys(), in, cache, highlightExtra, func(key ChartKey, pen pen, hovered *EntryID, cache *PositionCache[DurationEntry[T]]) (skipped int) {
		entries := data.Entries(key)
		y, ok := MapCategory(slices.Index(labels, key.Key), len(labels), sz.Y, p.Style.VerticalPadding)
		if !ok {
			return len(entries)
		}
		var prevX float32
		first := true
		for _, e := range entries {
			x := MapTime(e.Timestamp, p.Frame, sz.X)
			pt := f32.Pt(x, y)
			id := key.ID(e.Timestamp)
			cache.Put(id, pt, e)
			if e.IsBegin() {
				p.Surface.Line(f32.Pt(x-markerArm, y-markerArm), pt, pen.stroke())
				p.Surface.Line(pt, f32.Pt(x-markerArm, y+markerArm), pen.stroke())
			}
			if e.IsEnd() {
				p.Surface.Line(f32.Pt(x, y-markerArm), f32.Pt(x, y+markerArm), pen.stroke())
			}
			RenderOverlay(p.Surface, id, pt, in.Selected, hovered)
			if !first {
				p.Surface.Line(pt, f32.Pt(prevX, y), pen.stroke())
			}
			prevX, first = x, false
		}
		return 0
	})
}
