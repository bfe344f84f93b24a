package bastools

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how figures are drawn.
type Style struct {
	Background color.Color

	Title draw.TextStyle
	Label draw.TextStyle
	Tick  draw.TextStyle

	// Grid is used for the grid lines of subplots, LightGrid for the
	// faint grid behind a curve family.
	Grid      draw.LineStyle
	LightGrid draw.LineStyle

	// Line is the style of data lines; its color is replaced by the
	// colormap. Proxy is used for the legend entries of curve families.
	Line  draw.LineStyle
	Proxy draw.LineStyle

	Panel struct {
		PadX vg.Length
		PadY vg.Length
	}

	ColorBar struct {
		Width vg.Length // Width includes ticks and label.
		Pad   vg.Length // Pad separates bar and plot.
	}
}

// DefaultStyle returns a Style which mimics the appearance of matplotlib.
// The baseFontSize is the font size for axis labels, the title is a bit
// bigger, tick labels a bit smaller.
func DefaultStyle(baseFontSize vg.Length) Style {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}

	titleFont, err := vg.MakeFont("Helvetica", scale(baseFontSize, 1.2))
	if err != nil {
		panic(err)
	}
	baseFont, err := vg.MakeFont("Helvetica", baseFontSize)
	if err != nil {
		panic(err)
	}
	tickFont, err := vg.MakeFont("Helvetica", scale(baseFontSize, 1/1.2))
	if err != nil {
		panic(err)
	}

	s := Style{}
	s.Background = color.White

	s.Title.Color = color.Black
	s.Title.Font = titleFont
	s.Title.XAlign = draw.XCenter
	s.Title.YAlign = draw.YTop

	s.Label.Color = color.Black
	s.Label.Font = baseFont

	s.Tick.Color = color.Black
	s.Tick.Font = tickFont

	s.Grid.Color = color.Gray{0xb0}
	s.Grid.Width = vg.Points(0.8)
	s.LightGrid.Color = color.NRGBA{0xb0, 0xb0, 0xb0, 0x4d} // alpha 0.3
	s.LightGrid.Width = vg.Points(0.8)

	s.Line.Color = color.Black
	s.Line.Width = vg.Points(1.5)
	s.Proxy.Color = color.Black
	s.Proxy.Width = vg.Points(1.5)

	s.Panel.PadX = scale(baseFontSize, 1)
	s.Panel.PadY = s.Panel.PadX

	s.ColorBar.Width = vg.Length(70)
	s.ColorBar.Pad = scale(baseFontSize, 0.5)

	return s
}

// apply sets the fonts of p.
func (s Style) apply(p *plot.Plot) {
	p.BackgroundColor = s.Background
	p.Title.Font = s.Title.Font
	p.X.Label.Font = s.Label.Font
	p.Y.Label.Font = s.Label.Font
	p.X.Tick.Label.Font = s.Tick.Font
	p.Y.Tick.Label.Font = s.Tick.Font
	p.Legend.Font = s.Tick.Font
}
