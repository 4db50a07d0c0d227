package visualizationtools

import (
	"image/color"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/vg"
)

// Style holds figure defaults shared by the plotting helpers.
// Zero fields are replaced by the values of DefaultStyle.
type Style struct {
	Width        vg.Length        // figure width, default 12in.
	Height       vg.Length        // figure height, default 8in.
	MarkerRadius vg.Length        // scatter glyph radius, default 2pt.
	LineWidth    vg.Length        // line width, default 1pt.
	ColorMap     palette.ColorMap // density colouring, default moreland smooth blue-red.
	Grid         bool             // draw a grid behind the data.
}

// DefaultStyle returns the documented defaults.
func DefaultStyle() Style {
	return Style{
		Width:        12 * vg.Inch,
		Height:       8 * vg.Inch,
		MarkerRadius: vg.Points(2),
		LineWidth:    vg.Points(1),
		ColorMap:     moreland.SmoothBlueRed(),
	}
}

// WithDefaults fills the zero fields of s.
func (s Style) WithDefaults() Style {
	d := DefaultStyle()
	if s.Width <= 0 {
		s.Width = d.Width
	}
	if s.Height <= 0 {
		s.Height = d.Height
	}
	if s.MarkerRadius <= 0 {
		s.MarkerRadius = d.MarkerRadius
	}
	if s.LineWidth <= 0 {
		s.LineWidth = d.LineWidth
	}
	if s.ColorMap == nil {
		s.ColorMap = d.ColorMap
	}
	return s
}

// Translucent returns c with its alpha scaled by a, 0 <= a <= 1.
func Translucent(c color.Color, a float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A) * a)
	return n
}
