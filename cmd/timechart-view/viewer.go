package main

import (
	"log/slog"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/op/clip"
	"gioui.org/text"
	"git.sr.ht/~gioverse/skel/stream"

	"git.sr.ht/~whereswaldon/timechart/chart"
	"git.sr.ht/~whereswaldon/timechart/giosurface"
	"git.sr.ht/~whereswaldon/timechart/internal/tracefile"
)

// viewer shows one chart of a trace and tracks what the pointer is doing
// to it. Pointer positions are resolved against the layout published by
// the previous frame.
type viewer struct {
	trace     *tracefile.Trace
	kind      tracefile.Kind
	style     chart.Style
	palette   *chart.Palette
	hitRadius float32
	log       *slog.Logger
	reloads   *stream.Stream[*tracefile.Trace]

	layout chart.Published[tracefile.Layout]

	hovered     *chart.EntryID
	selected    *chart.EntryID
	highlighted *chart.ChartKey
}

// newViewer builds a viewer of tr. reloads may be nil when the trace is
// not watched.
func newViewer(tr *tracefile.Trace, kind tracefile.Kind, style chart.Style, hitRadius float32, reloads *stream.Stream[*tracefile.Trace]) *viewer {
	return &viewer{
		trace:     tr,
		kind:      kind,
		style:     style,
		palette:   chart.NewPalette(),
		hitRadius: hitRadius,
		log:       slog.Default(),
		reloads:   reloads,
	}
}

// hover resolves the entry under pos.
func (v *viewer) hover(pos f32.Point) {
	hit, ok := v.layout.Load().Query(pos, v.hitRadius)
	if !ok {
		v.hovered = nil
		return
	}
	id := hit.ID
	v.hovered = &id
}

// press selects the hovered entry and highlights its series. Pressing
// empty space clears both.
func (v *viewer) press() {
	if v.hovered == nil {
		v.selected, v.highlighted = nil, nil
		return
	}
	id := *v.hovered
	v.selected = &id
	v.highlighted = &chart.ChartKey{Key: id.Key}
	v.log.Debug("selected entry", "entry", id.String())
}

func (v *viewer) reload(tr *tracefile.Trace) {
	v.trace = tr
	v.log.Info("reloaded trace", "kind", v.kind, "entries", tr.Len(v.kind))
}

func (v *viewer) interaction() chart.Interaction {
	return chart.Interaction{
		Highlighted: v.highlighted,
		Selected:    v.selected,
		Hovered:     v.hovered,
	}
}

func (v *viewer) Update(gtx C) {
	if v.reloads != nil {
		if tr, isNew := v.reloads.ReadNew(gtx); isNew && tr != nil {
			v.reload(tr)
		}
	}
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: v,
			Kinds:  pointer.Enter | pointer.Leave | pointer.Move | pointer.Press,
		})
		if !ok {
			break
		}
		switch ev := ev.(type) {
		case pointer.Event:
			switch ev.Kind {
			case pointer.Enter, pointer.Move:
				v.hover(ev.Position)
			case pointer.Leave, pointer.Cancel:
				v.hovered = nil
			case pointer.Press:
				v.hover(ev.Position)
				v.press()
			}
		}
	}
}

func (v *viewer) Layout(gtx C, shaper *text.Shaper) D {
	v.Update(gtx)
	size := gtx.Constraints.Max
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, v)

	surface := giosurface.New(gtx.Ops, size, shaper)
	surface.Fill(v.style.Background)
	frame, _ := v.trace.Frame(v.kind)
	layout, err := v.trace.Render(v.kind, chart.Pass{
		Surface: surface,
		Frame:   frame,
		Style:   v.style,
		Palette: v.palette,
		Logger:  v.log,
	}, v.interaction())
	if err != nil {
		v.log.Error("rendering chart", "kind", v.kind, "error", err)
		return D{Size: size}
	}
	v.layout.Publish(layout)
	return D{Size: size}
}
