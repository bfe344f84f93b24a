package bastools

import (
	"math"

	"github.com/bastools/bastools/progress"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// ParamLines

// ParamLines draws the family of curves y = f(x, p), one line per
// parameter value p. Each line is colored by mapping p through Mappable.
// Non-finite y values interrupt a line.
type ParamLines struct {
	X      []float64
	Params []float64

	// Y[i][j] is f(X[j], Params[i]).
	Y [][]float64

	Mappable *Mappable

	// LineStyle is used to draw the lines. The color is ignored.
	draw.LineStyle
}

// NewParamLines evaluates f for all x and params.
func NewParamLines(x, params []float64, f func(x, p float64) float64, m *Mappable, sty draw.LineStyle) (*ParamLines, error) {
	if len(x) == 0 {
		return nil, ErrNoX
	}
	if len(params) == 0 {
		return nil, ErrNoParam
	}
	if f == nil {
		return nil, ErrNoFunc
	}

	pl := &ParamLines{
		X:         x,
		Params:    params,
		Y:         make([][]float64, len(params)),
		Mappable:  m,
		LineStyle: sty,
	}
	err := progress.Each("Parameters", params, func(i int, p float64) error {
		y := make([]float64, len(x))
		for j, xj := range x {
			y[j] = f(xj, p)
		}
		pl.Y[i] = y
		return nil
	})
	return pl, err
}

// Plot implements plot.Plotter.
func (pl *ParamLines) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i, p := range pl.Params {
		sty := pl.LineStyle
		sty.Color = pl.Mappable.Color(p)

		for _, seg := range pl.segments(i) {
			pts := make([]vg.Point, len(seg))
			for k, j := range seg {
				pts[k] = vg.Point{X: trX(pl.X[j]), Y: trY(pl.Y[i][j])}
			}
			c.StrokeLines(sty, c.ClipLinesXY(pts)...)
		}
	}
}

// segments splits line i into runs of indices with finite values.
func (pl *ParamLines) segments(i int) [][]int {
	var segs [][]int
	var cur []int
	for j := range pl.X {
		if finite(pl.X[j]) && finite(pl.Y[i][j]) {
			cur = append(cur, j)
			continue
		}
		if len(cur) > 0 {
			segs = append(segs, cur)
		}
		cur = nil
	}
	if len(cur) > 0 {
		segs = append(segs, cur)
	}
	return segs
}

// DataRange implements plot.DataRanger. Non-finite values are ignored.
func (pl *ParamLines) DataRange() (xmin, xmax, ymin, ymax float64) {
	xr, yr := unsetInterval(), unsetInterval()
	for i := range pl.Y {
		for j, y := range pl.Y[i] {
			if !finite(pl.X[j]) || !finite(y) {
				continue
			}
			xr.Update(pl.X[j])
			yr.Update(y)
		}
	}
	if math.IsNaN(xr.Min) {
		return 0, 1, 0, 1
	}
	return xr.Min, xr.Max, yr.Min, yr.Max
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
