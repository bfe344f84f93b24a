package bastools

import (
	"github.com/bastools/bastools/layout"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Size is the width and height of one subplot.
type Size struct {
	Width, Height vg.Length
}

// DefaultPlotSize is the size of one subplot in a GridFigure.
var DefaultPlotSize = Size{5 * vg.Inch, 4 * vg.Inch}

// ----------------------------------------------------------------------------
// GridFigure

// GridFigure arranges plots in a rows×cols grid. An incomplete last row
// is centered.
type GridFigure struct {
	Grid  layout.Grid
	Cells []layout.Cell
	Plots []*plot.Plot

	Width, Height vg.Length
	Style         Style
}

// SubplotsGrid creates a figure with n empty plots arranged in a
// rows×cols grid. Each plot is size large, the zero Size selects
// DefaultPlotSize. If grid is set the plots show grid lines.
// The plots are returned in row-major order.
func SubplotsGrid(rows, cols, n int, size Size, grid bool) (*GridFigure, []*plot.Plot, error) {
	g := layout.Grid{Rows: rows, Cols: cols}
	cells, err := g.Place(n)
	if err != nil {
		return nil, nil, err
	}
	if size == (Size{}) {
		size = DefaultPlotSize
	}

	fig := &GridFigure{
		Grid:   g,
		Cells:  cells,
		Plots:  make([]*plot.Plot, n),
		Width:  vg.Length(cols) * size.Width,
		Height: vg.Length(rows) * size.Height,
		Style:  DefaultStyle(12),
	}
	for i := range fig.Plots {
		p, err := plot.New()
		if err != nil {
			return nil, nil, err
		}
		fig.Style.apply(p)
		if grid {
			gl := plotter.NewGrid()
			gl.Vertical = fig.Style.Grid
			gl.Horizontal = fig.Style.Grid
			p.Add(gl)
		}
		fig.Plots[i] = p
	}

	logger.Debug("subplot grid",
		zap.Stringer("grid", g),
		zap.Int("plots", n),
		zap.Int("rows used", g.RowsFor(n)))
	return fig, fig.Plots, nil
}

// Size implements Figure.
func (f *GridFigure) Size() (w, h vg.Length) { return f.Width, f.Height }

// Canvases returns the canvas of each plot when the figure is drawn to c.
// The canvas is divided into rows × 2·cols tiles and every plot covers
// two neighbouring tiles.
func (f *GridFigure) Canvases(c draw.Canvas) []draw.Canvas {
	tiles := draw.Tiles{
		Rows: f.Grid.Rows,
		Cols: f.Grid.HalfCols(),
		PadX: f.Style.Panel.PadX,
		PadY: f.Style.Panel.PadY,
	}
	canvases := make([]draw.Canvas, len(f.Cells))
	for i, cell := range f.Cells {
		left := tiles.At(c, cell.Start, cell.Row)
		right := tiles.At(c, cell.End-1, cell.Row)
		left.Max.X = right.Max.X
		canvases[i] = left
	}
	return canvases
}

// Draw implements Figure.
func (f *GridFigure) Draw(c draw.Canvas) {
	c.SetColor(f.Style.Background)
	c.Fill(c.Rectangle.Path())
	for i, pc := range f.Canvases(c) {
		f.Plots[i].Draw(pc)
	}
}
