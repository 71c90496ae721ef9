package chart

import (
	"slices"

	"gioui.org/f32"
)

// eventRadius is the radius of an event dot drawn with the base pen.
const eventRadius = 2

// RenderEvents draws each event as a dot in the row of its label. cache
// may be nil.
func RenderEvents[T any](p Pass, data EventsSource[T], in Interaction, cache *PositionCache[EventEntry[T]]) {
	if isEmpty[EventEntry[T]](data) {
		cache.Reset()
		RenderEmptyMessage(p)
		return
	}
	labels := data.Labels()
	renderCategoryGrid(p, len(labels))
	renderCategoryLabels(p, labels)
	sz := p.size()
	renderSeries(p, data.Keys(), in, cache, highlightExtra, func(key ChartKey, pen pen, hovered *EntryID, cache *PositionCache[EventEntry[T]]) (skipped int) {
		for _, e := range data.Entries(key) {
			y, ok := MapCategory(slices.Index(labels, e.Event), len(labels), sz.Y, p.Style.VerticalPadding)
			if !ok {
				skipped++
				continue
			}
			pt := f32.Pt(MapTime(e.Timestamp, p.Frame, sz.X), y)
			id := key.ID(e.Timestamp)
			cache.Put(id, pt, e)
			p.Surface.Circle(pt, eventRadius+pen.grow, pen.color)
			RenderOverlay(p.Surface, id, pt, in.Selected, hovered)
		}
		return skipped
	})
}
