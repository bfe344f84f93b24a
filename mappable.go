package bastools

import (
	"fmt"
	"image/color"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Mappable maps scalar values to colors: a Scale normalizes the value
// to [0,1] and a colormap turns this into a color.
type Mappable struct {
	Scale *Scale
	Name  string // Name of the colormap.

	cmap palette.ColorMap
}

// NewMappable returns a Mappable which spans the range of values. The
// scale is logarithmic if typ is Logarithmic, in which case all values
// must be positive. NaN values are ignored.
func NewMappable(values []float64, name string, typ ScaleType) (*Mappable, error) {
	if len(values) == 0 {
		return nil, ErrNoParam
	}
	if name == "" {
		name = DefaultColorMap
	}
	cm, err := ColorMap(name)
	if err != nil {
		return nil, err
	}

	s := NewScale()
	s.ScaleType = typ
	s.Learn(values...)
	if err := s.autoscale(); err != nil {
		return nil, err
	}
	logger.Debug("color scale", zap.Stringer("scale", s), zap.String("colormap", name))

	return &Mappable{Scale: s, Name: name, cmap: cm}, nil
}

// Normalize maps v onto [0,1]. Values outside the range of the scale are
// clipped. A degenerate scale maps everything to 0; invalid values (NaN,
// non-positive on a log scale) yield NaN.
func (m *Mappable) Normalize(v float64) float64 {
	if math.IsNaN(v) {
		return math.NaN()
	}
	if m.Scale.Degenerate() {
		return 0
	}
	u := m.Scale.Map(v)
	switch {
	case math.IsNaN(u):
		return math.NaN()
	case u < 0:
		return 0
	case u > 1:
		return 1
	}
	return u
}

// Color returns the color for v. Invalid values are fully transparent.
func (m *Mappable) Color(v float64) color.Color {
	u := m.Normalize(v)
	if math.IsNaN(u) {
		return color.Transparent
	}
	col, err := m.cmap.At(u)
	if err != nil {
		logger.Warn("colormap lookup failed", zap.Float64("value", v), zap.Error(err))
		return color.Transparent
	}
	return col
}

// Range returns the data range covered by m.
func (m *Mappable) Range() Interval { return m.Scale.Interval }

// ColorBar returns a plot showing the colormap as a vertical bar. The
// axis is labelled with label. On a logarithmic scale the bar is drawn
// in decades and labelled with the powers of ten.
func (m *Mappable) ColorBar(label string) (*plot.Plot, error) {
	cm, err := ColorMap(m.Name)
	if err != nil {
		return nil, err
	}

	lo, hi := m.Scale.Min, m.Scale.Max
	if m.Scale.ScaleType == Logarithmic {
		lo, hi = math.Log10(lo), math.Log10(hi)
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	cm.SetMin(lo)
	cm.SetMax(hi)

	p, err := plot.New()
	if err != nil {
		return nil, fmt.Errorf("colorbar: %v", err)
	}
	p.Add(&colorStrip{ColorMap: cm, Colors: colorStripSteps})
	p.HideX()
	p.X.Padding = 0
	p.Y.Padding = 0
	p.Y.Label.Text = label
	p.Y.Tick.Marker = m.Scale.Trans().Ticker
	return p, nil
}

// colorStripSteps is the number of color bands in a colorbar.
const colorStripSteps = 256

// colorStrip draws a colormap as a vertical stack of filled bands. It
// is drawn with vector primitives only so that every output format can
// render it.
type colorStrip struct {
	ColorMap palette.ColorMap
	Colors   int
}

// Plot implements plot.Plotter.
func (s *colorStrip) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	lo, hi := s.ColorMap.Min(), s.ColorMap.Max()
	step := (hi - lo) / float64(s.Colors)
	x0, x1 := trX(0), trX(1)
	for i := 0; i < s.Colors; i++ {
		v0 := lo + float64(i)*step
		col, err := s.ColorMap.At(v0 + step/2)
		if err != nil {
			continue
		}
		// Bands overlap by half a step to avoid hairline seams.
		v1 := math.Min(v0+1.5*step, hi)
		band := vg.Rectangle{
			Min: vg.Point{X: x0, Y: trY(v0)},
			Max: vg.Point{X: x1, Y: trY(v1)},
		}
		c.SetColor(col)
		c.Fill(band.Path())
	}
}

// DataRange implements plot.DataRanger.
func (s *colorStrip) DataRange() (xmin, xmax, ymin, ymax float64) {
	return 0, 1, s.ColorMap.Min(), s.ColorMap.Max()
}
