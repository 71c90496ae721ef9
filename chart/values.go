package chart

import "gioui.org/f32"

// RenderMinMax draws each series as a polyline on a scale from zero to
// the source's MaxValue. cache may be nil.
func RenderMinMax[T any](p Pass, data MinMaxSource[T], in Interaction, cache *PositionCache[ValueEntry[T]]) {
	renderValues[T](p, data, in, cache, highlightExtra, "")
}

// RenderPercentage is RenderMinMax with percent labels and a more
// prominent highlight.
func RenderPercentage[T any](p Pass, data PercentageSource[T], in Interaction, cache *PositionCache[ValueEntry[T]]) {
	renderValues[T](p, data, in, cache, percentageHighlightExtra, "%")
}

func renderValues[T any](p Pass, data ValueSource[ValueEntry[T]], in Interaction, cache *PositionCache[ValueEntry[T]], extra float32, postfix string) {
	if isEmpty[ValueEntry[T]](data) {
		cache.Reset()
		RenderEmptyMessage(p)
		return
	}
	labels := data.Labels()
	maxValue := data.MaxValue()
	renderValueGrid(p, len(labels))
	renderValueLabels(p, labels, postfix)
	sz := p.size()
	renderSeries(p, data.Keys(), in, cache, extra, func(key ChartKey, pen pen, hovered *EntryID, cache *PositionCache[ValueEntry[T]]) (skipped int) {
		var prev f32.Point
		first := true
		for _, e := range data.Entries(key) {
			y, ok := MapValue(e.Value, maxValue, len(labels), sz.Y, p.Style.VerticalPadding)
			if !ok {
				skipped++
				continue
			}
			pt := f32.Pt(MapTime(e.Timestamp, p.Frame, sz.X), y)
			id := key.ID(e.Timestamp)
			cache.Put(id, pt, e)
			if first {
				// A lone point has no segment to show it, so mark it.
				p.Surface.Circle(pt, pen.width, pen.color)
			} else {
				p.Surface.Line(prev, pt, pen.stroke())
			}
			RenderOverlay(p.Surface, id, pt, in.Selected, hovered)
			prev, first = pt, false
		}
		return skipped
	})
}
