package chart

import "gioui.org/f32"

const (
	markerRadius = 4
	markerWidth  = 1.5
)

// RenderOverlay outlines the entry id drawn at pt if it is hovered or
// selected. Hover takes precedence, so at most one ring is drawn.
func RenderOverlay(s Surface, id EntryID, pt f32.Point, selected, hovered *EntryID) {
	switch {
	case hovered != nil && *hovered == id:
		s.Ring(pt, markerRadius, Stroke{Color: hoverColor, Width: markerWidth})
	case selected != nil && *selected == id:
		s.Ring(pt, markerRadius, Stroke{Color: selectionColor, Width: markerWidth})
	}
}
