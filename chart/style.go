package chart

import "image/color"

// TextStyle describes how a piece of chart text is drawn.
type TextStyle struct {
	Color color.NRGBA
	// Size is the font size in pixels.
	Size float32
}

// Style holds the visual parameters of a chart.
type Style struct {
	// Dark selects the dark half of the palette.
	Dark bool
	// LineWidth is the base stroke width in pixels. Highlighted series are
	// drawn thicker.
	LineWidth float32
	// VerticalPadding is kept free above and below the rows.
	VerticalPadding float32
	HighlightColor  color.NRGBA
	Background      color.NRGBA
	GridColor       color.NRGBA
	// MessageText styles the message shown when there is nothing to draw.
	MessageText TextStyle
	LabelsText  TextStyle
}

// DefaultStyle returns the light theme.
func DefaultStyle() Style {
	return Style{
		LineWidth:       1.5,
		VerticalPadding: 12,
		HighlightColor:  color.NRGBA{R: 0xff, G: 0x9f, B: 0x1a, A: 0xff},
		Background:      color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		GridColor:       color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x20},
		MessageText:     TextStyle{Color: color.NRGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff}, Size: 14},
		LabelsText:      TextStyle{Color: color.NRGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}, Size: 11},
	}
}

// DarkStyle returns the dark theme.
func DarkStyle() Style {
	s := DefaultStyle()
	s.Dark = true
	s.HighlightColor = color.NRGBA{R: 0xff, G: 0xd5, B: 0x4f, A: 0xff}
	s.Background = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
	s.GridColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x20}
	s.MessageText.Color = color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}
	s.LabelsText.Color = color.NRGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}
	return s
}

var (
	// selectionColor outlines the selected entry.
	selectionColor = color.NRGBA{R: 0xff, A: 0xff}
	// hoverColor outlines the entry under the pointer.
	hoverColor = color.NRGBA{G: 0xc0, A: 0xff}
)
