package chart

import (
	"image/color"
	"log/slog"
	"slices"

	"gioui.org/f32"
)

// EmptyMessage is drawn in place of a chart without entries.
const EmptyMessage = "No entries found"

const (
	// labelInset is the distance between the left edge and row labels.
	labelInset = 3
	// highlightExtra is added to the line width of a highlighted series.
	highlightExtra = 1
	// percentageHighlightExtra replaces highlightExtra for percentage
	// charts, whose lines tend to overlap.
	percentageHighlightExtra = 2
)

// Pass bundles what stays fixed while one chart is drawn.
type Pass struct {
	Surface Surface
	Frame   TimeFrame
	Style   Style
	// Palette assigns series colors. A nil Palette shares one palette
	// with every other pass that has none.
	Palette *Palette
	// Logger receives diagnostics about skipped entries. It may be nil.
	Logger *slog.Logger
}

// Interaction is the externally held interaction state of a chart. Nil
// fields mean nothing is highlighted, selected or hovered.
type Interaction struct {
	Highlighted *ChartKey
	Selected    *EntryID
	Hovered     *EntryID
}

var sharedPalette = NewPalette()

func (p Pass) size() f32.Point { return p.Surface.Size() }

func (p Pass) palette() *Palette {
	if p.Palette == nil {
		return sharedPalette
	}
	return p.Palette
}

func (p Pass) debug(msg string, args ...any) {
	if p.Logger != nil {
		p.Logger.Debug(msg, args...)
	}
}

// pen is how one pass over a series draws it.
type pen struct {
	color color.NRGBA
	width float32
	// grow is how much wider than the base stroke this pen is.
	grow float32
}

func (p pen) stroke() Stroke { return Stroke{Color: p.color, Width: p.width} }

func (p pen) dashed() Stroke { return Stroke{Color: p.color, Width: p.width, Dashed: true} }

// seriesPainter draws a single series. hovered is nil during the
// highlight pass, and so is cache.
type seriesPainter[E any] func(key ChartKey, pen pen, hovered *EntryID, cache *PositionCache[E]) (skipped int)

// renderSeries draws every series in palette colors and then redraws the
// highlighted series, if any, on top in the highlight color.
func renderSeries[E any](p Pass, keys []ChartKey, in Interaction, cache *PositionCache[E], extra float32, paint seriesPainter[E]) {
	cache.Reset()
	base := p.Style.LineWidth
	for i, key := range keys {
		c := p.palette().Color(i, p.Style.Dark)
		skipped := paint(key, pen{color: c, width: base}, in.Hovered, cache)
		if skipped > 0 {
			p.debug("skipped entries", "key", key.Key, "count", skipped)
		}
	}
	cache.sortByX()
	if in.Highlighted == nil {
		return
	}
	if !slices.Contains(keys, *in.Highlighted) {
		p.debug("highlighted series not found", "key", in.Highlighted.Key)
		return
	}
	paint(*in.Highlighted, pen{color: p.Style.HighlightColor, width: base + extra, grow: extra}, nil, nil)
}

func isEmpty[E Timed](src Source[E]) bool {
	for _, k := range src.Keys() {
		if len(src.Entries(k)) > 0 {
			return false
		}
	}
	return true
}

// RenderEmptyMessage draws the empty-chart message centered on the
// surface.
func RenderEmptyMessage(p Pass) {
	sz := p.size()
	p.Surface.Text(EmptyMessage, f32.Pt(sz.X/2, sz.Y/2), .5, .5, p.Style.MessageText)
}

// renderCategoryGrid draws a horizontal line through the center of each
// row.
func renderCategoryGrid(p Pass, rows int) {
	sz := p.size()
	for i := 0; i < rows; i++ {
		y, ok := MapCategory(i, rows, sz.Y, p.Style.VerticalPadding)
		if !ok {
			continue
		}
		p.Surface.Line(f32.Pt(0, y), f32.Pt(sz.X, y), Stroke{Color: p.Style.GridColor, Width: 1})
	}
}

// renderCategoryLabels draws labels left aligned, each centered on its
// row.
func renderCategoryLabels(p Pass, labels []string) {
	sz := p.size()
	for i, label := range labels {
		y, ok := MapCategory(i, len(labels), sz.Y, p.Style.VerticalPadding)
		if !ok {
			continue
		}
		p.Surface.Text(label, f32.Pt(labelInset, y), 0, .5, p.Style.LabelsText)
	}
}

// valueTickY returns the vertical position of the i-th of n value labels,
// with the first label at the bottom of the scale.
func valueTickY(p Pass, i, n int) (float32, bool) {
	sz := p.size()
	if n == 1 {
		return MapValue(1, 1, 1, sz.Y, p.Style.VerticalPadding)
	}
	return MapValue(float64(i), float64(n-1), n, sz.Y, p.Style.VerticalPadding)
}

func renderValueGrid(p Pass, ticks int) {
	sz := p.size()
	for i := 0; i < ticks; i++ {
		y, ok := valueTickY(p, i, ticks)
		if !ok {
			continue
		}
		p.Surface.Line(f32.Pt(0, y), f32.Pt(sz.X, y), Stroke{Color: p.Style.GridColor, Width: 1})
	}
}

// renderValueLabels draws labels right aligned against the widest of
// them, each centered on its gridline.
func renderValueLabels(p Pass, labels []string, postfix string) {
	var width float32
	for _, label := range labels {
		width = max(width, p.Surface.MeasureText(label+postfix, p.Style.LabelsText).X)
	}
	for i, label := range labels {
		y, ok := valueTickY(p, i, len(labels))
		if !ok {
			continue
		}
		p.Surface.Text(label+postfix, f32.Pt(labelInset+width, y), 1, .5, p.Style.LabelsText)
	}
}
