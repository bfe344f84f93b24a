package bastools

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/vec"
	"github.com/bastools/bastools/progress"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Axis lists the values sampled along an axis.
type Axis struct {
	Values []float64
	Log    bool // Log selects a logarithmic axis or color scale.
}

// Span describes N values from Min to Max (both included), evenly
// spaced or, if Log is set, logarithmically spaced.
type Span struct {
	Min, Max float64
	N        int
	Log      bool
}

// Values returns the values of s.
func (s Span) Values() ([]float64, error) {
	if s.N < 1 {
		return nil, fmt.Errorf("span [%g,%g]: need at least one value, got %d", s.Min, s.Max, s.N)
	}
	if s.Log {
		if !(s.Min > 0 && s.Max > 0) {
			return nil, fmt.Errorf("%w: span [%g,%g]", ErrLogDomain, s.Min, s.Max)
		}
		return vec.Logspace(math.Log10(s.Min), math.Log10(s.Max), s.N, 10), nil
	}
	return vec.Linspace(s.Min, s.Max, s.N), nil
}

// Axis returns the values of s as an Axis.
func (s Span) Axis() (Axis, error) {
	v, err := s.Values()
	return Axis{Values: v, Log: s.Log}, err
}

// Curve is one function f(x, p) of a curve family.
type Curve struct {
	Func func(x, p float64) float64

	// Label is shown in the legend; curves without label have no entry.
	Label string

	// LineStyle is one of "-", "--", ":" or "-." (see Dashes).
	LineStyle string
}

// Labels are the texts of a curve family figure.
type Labels struct {
	Title string
	X     string
	Y     string
	Param string
}

// Family describes a plot of one or more functions f(x, p) where every
// parameter value p produces a line colored by p.
type Family struct {
	X      Axis
	Param  Axis
	Curves []Curve
	Labels Labels

	// ColorMap names the colormap, DefaultColorMap if empty.
	ColorMap string

	// Style used for drawing; the zero value selects DefaultStyle(12).
	Style *Style
}

// FamilyFigure is the result of plotting a Family.
type FamilyFigure struct {
	Plot     *plot.Plot
	ColorBar *plot.Plot
	Mappable *Mappable
	Lines    []*ParamLines

	// X and Params are the values actually used.
	X, Params []float64

	// Legend lists the proxy lines added to the legend of Plot.
	Legend []LegendEntry

	// LastY holds the y values of the last curve at the last parameter.
	LastY []float64

	Width, Height vg.Length
	Style         Style
}

// LegendEntry is a black proxy line standing for all lines of a curve.
type LegendEntry struct {
	Label string
	Style draw.LineStyle
}

// Default size of a FamilyFigure.
const (
	FamilyWidth  = 7 * vg.Inch
	FamilyHeight = 5 * vg.Inch
)

func (f Family) validate() error {
	if len(f.X.Values) == 0 {
		return ErrNoX
	}
	if len(f.Param.Values) == 0 {
		return ErrNoParam
	}
	if len(f.Curves) == 0 {
		return ErrNoCurves
	}
	for i, c := range f.Curves {
		if c.Func == nil {
			return fmt.Errorf("%w: curve %d (%q)", ErrNoFunc, i, c.Label)
		}
		if _, err := Dashes(c.LineStyle); err != nil {
			return fmt.Errorf("curve %d (%q): %w", i, c.Label, err)
		}
	}
	if f.X.Log {
		for _, x := range f.X.Values {
			if !(x > 0) {
				return fmt.Errorf("%w: x = %g", ErrLogDomain, x)
			}
		}
	}
	return nil
}

// Plot evaluates all curves for all parameter values and builds the
// figure: one line per curve and parameter colored by the parameter,
// a colorbar, and a legend with a black proxy line for each labelled
// curve.
func (f Family) Plot() (*FamilyFigure, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	style := DefaultStyle(12)
	if f.Style != nil {
		style = *f.Style
	}

	typ := Linear
	if f.Param.Log {
		typ = Logarithmic
	}
	m, err := NewMappable(f.Param.Values, f.ColorMap, typ)
	if err != nil {
		return nil, err
	}

	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	style.apply(p)
	p.Title.Text = f.Labels.Title
	p.X.Label.Text = f.Labels.X
	p.Y.Label.Text = f.Labels.Y
	if f.X.Log {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{}
	}
	grid := plotter.NewGrid()
	grid.Vertical = style.LightGrid
	grid.Horizontal = style.LightGrid
	p.Add(grid)

	fig := &FamilyFigure{
		Plot:     p,
		Mappable: m,
		X:        f.X.Values,
		Params:   f.Param.Values,
		Width:    FamilyWidth,
		Height:   FamilyHeight,
		Style:    style,
	}

	err = progress.Each("Span the functions", f.Curves, func(i int, c Curve) error {
		dashes, _ := Dashes(c.LineStyle)
		sty := style.Line
		sty.Dashes = dashes
		pl, err := NewParamLines(f.X.Values, f.Param.Values, c.Func, m, sty)
		if err != nil {
			return fmt.Errorf("curve %d: %w", i, err)
		}
		p.Add(pl)
		fig.Lines = append(fig.Lines, pl)

		if c.Label != "" {
			proxy := style.Proxy
			proxy.Dashes = dashes
			p.Legend.Add(c.Label, &plotter.Line{LineStyle: proxy})
			fig.Legend = append(fig.Legend, LegendEntry{Label: c.Label, Style: proxy})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	last := fig.Lines[len(fig.Lines)-1]
	fig.LastY = last.Y[len(last.Y)-1]

	fig.ColorBar, err = m.ColorBar(f.Labels.Param)
	if err != nil {
		return nil, err
	}
	style.apply(fig.ColorBar)

	logger.Debug("curve family",
		zap.Int("curves", len(f.Curves)),
		zap.Int("params", len(f.Param.Values)),
		zap.Int("x", len(f.X.Values)),
		zap.Bool("logx", f.X.Log),
		zap.Stringer("scale", m.Scale))
	return fig, nil
}

// Size implements Figure.
func (fig *FamilyFigure) Size() (w, h vg.Length) { return fig.Width, fig.Height }

// Draw implements Figure: the plot on the left, the colorbar on the right.
func (fig *FamilyFigure) Draw(c draw.Canvas) {
	c.SetColor(fig.Style.Background)
	c.Fill(c.Rectangle.Path())

	bw := fig.Style.ColorBar.Width
	width := c.Max.X - c.Min.X
	main := draw.Crop(c, 0, -bw-fig.Style.ColorBar.Pad, 0, 0)
	bar := draw.Crop(c, width-bw, 0, 0, 0)
	fig.Plot.Draw(main)
	fig.ColorBar.Draw(bar)
}

// SweepFamily plots curves for x values spanning x and parameters
// spanning param. Unlike Family.Plot the colormap defaults to viridis,
// the parameter values are always evenly spaced on a linear scale
// (param.Log is ignored) and a curve without function plots the
// constant 1.
func SweepFamily(x, param Span, curves []Curve, labels Labels, cmap string) (*FamilyFigure, error) {
	xs, err := x.Values()
	if err != nil {
		return nil, fmt.Errorf("x: %w", err)
	}
	param.Log = false
	ps, err := param.Values()
	if err != nil {
		return nil, fmt.Errorf("param: %w", err)
	}
	if cmap == "" {
		cmap = "viridis"
	}
	cs := make([]Curve, len(curves))
	for i, c := range curves {
		if c.Func == nil {
			c.Func = func(x, p float64) float64 { return 1 }
		}
		cs[i] = c
	}
	return Family{
		X:        Axis{Values: xs, Log: x.Log},
		Param:    Axis{Values: ps},
		Curves:   cs,
		Labels:   labels,
		ColorMap: cmap,
	}.Plot()
}
