package main

import (
	"fmt"
	"strings"

	"github.com/aclements/go-moremath/vec"
	"github.com/bastools/bastools"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

type gridOptions struct {
	rows, cols, n int
	fn            string
	xmin, xmax    float64
	samples       int
	lines         bool
	output        string
}

func (a *app) gridCmd() *cobra.Command {
	var o gridOptions
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Draw a grid of subplots, one per parameter value",
		Long: `Draws n subplots in a rows×cols grid. Subplot i shows the function
f(x, p) with p = i+1. An incomplete last row is centered.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("lines") {
				o.lines = a.cfg.Grid.Lines
			}
			return a.runGrid(cmd, o)
		},
	}
	f := cmd.Flags()
	f.IntVar(&o.rows, "rows", 2, "Number of rows")
	f.IntVar(&o.cols, "cols", 2, "Number of columns")
	f.IntVarP(&o.n, "num", "n", -1, "Number of subplots (default: rows·cols)")
	f.StringVarP(&o.fn, "func", "f", "sin", "Function to plot")
	f.Float64Var(&o.xmin, "xmin", 0, "Lower end of x")
	f.Float64Var(&o.xmax, "xmax", 6.283185307179586, "Upper end of x")
	f.IntVar(&o.samples, "samples", 100, "Number of samples per subplot")
	f.BoolVar(&o.lines, "lines", true, "Draw grid lines")
	f.StringVarP(&o.output, "output", "o", "grid.png", "Output file ("+strings.Join(bastools.Formats, ", ")+")")
	return cmd
}

func (a *app) runGrid(cmd *cobra.Command, o gridOptions) error {
	if o.n < 0 {
		o.n = o.rows * o.cols
	}
	if o.samples < 1 {
		return fmt.Errorf("grid: need at least one sample, got %d", o.samples)
	}
	fn, err := lookupFunc(o.fn, nil)
	if err != nil {
		return err
	}
	size := bastools.Size{
		Width:  vg.Length(a.cfg.Grid.Width) * vg.Inch,
		Height: vg.Length(a.cfg.Grid.Height) * vg.Inch,
	}
	fig, plots, err := bastools.SubplotsGrid(o.rows, o.cols, o.n, size, o.lines)
	if err != nil {
		return err
	}

	ps := make([]float64, o.n)
	for i := range ps {
		ps[i] = float64(i + 1)
	}
	var m *bastools.Mappable
	if o.n > 0 {
		if m, err = bastools.NewMappable(ps, a.cfg.ColorMap, bastools.Linear); err != nil {
			return err
		}
	}

	xs := vec.Linspace(o.xmin, o.xmax, o.samples)
	for i, plt := range plots {
		p := ps[i]
		xys := make(plotter.XYs, len(xs))
		for j, x := range xs {
			xys[j].X, xys[j].Y = x, fn(x, p)
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("subplot %d: %w", i, err)
		}
		line.LineStyle = fig.Style.Line
		line.Color = m.Color(p)
		plt.Add(line)
		plt.Title.Text = fmt.Sprintf("%s, p = %g", o.fn, p)
	}

	if err := bastools.Save(fig, o.output); err != nil {
		return err
	}
	a.logger.Info("grid written", zap.String("file", o.output), zap.Int("plots", o.n))
	fmt.Fprintln(cmd.OutOrStdout(), o.output)
	return nil
}
