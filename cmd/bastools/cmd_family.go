package main

import (
	"fmt"
	"strings"

	"github.com/bastools/bastools"
	"github.com/bastools/bastools/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
)

func (a *app) familyCmd() *cobra.Command {
	var output, cmap string
	cmd := &cobra.Command{
		Use:   "family SPEC.yaml",
		Short: "Plot a curve family described in a YAML file",
		Long: `Plots one or more functions f(x, p) for a range of parameters p.
Each parameter value gives one line colored by p; a colorbar shows the
mapping. Example spec:

  title: Resonance
  x:     {min: -5, max: 5, n: 200}
  param: {min: 0.1, max: 10, n: 8, log: true}
  param_label: width
  figure: {width: 8, font_size: 14}
  curves:
    - {func: lorentz, label: Lorentz}
    - {func: gauss, style: "--", center: 1}

Run "bastools functions" for the list of functions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFamily(cmd, args[0], output, cmap)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file, one of "+strings.Join(bastools.Formats, ", ")+" (default: output of the spec or family.png)")
	cmd.Flags().StringVar(&cmap, "colormap", "", "Colormap (default: colormap of the spec or the configuration)")
	return cmd
}

func (a *app) runFamily(cmd *cobra.Command, path, output, cmap string) error {
	spec, err := config.LoadFamily(path)
	if err != nil {
		return err
	}
	curves, err := familyCurves(spec)
	if err != nil {
		return err
	}
	x, err := spec.X.Span().Axis()
	if err != nil {
		return fmt.Errorf("x: %w", err)
	}
	p, err := spec.Param.Span().Axis()
	if err != nil {
		return fmt.Errorf("param: %w", err)
	}

	figCfg, err := spec.FigureConfig(a.cfg.Figure)
	if err != nil {
		return err
	}

	style := bastools.DefaultStyle(vg.Length(figCfg.FontSize))
	fam := bastools.Family{
		X:      x,
		Param:  p,
		Curves: curves,
		Labels: bastools.Labels{
			Title: spec.Title,
			X:     spec.XLabel,
			Y:     spec.YLabel,
			Param: spec.Label,
		},
		ColorMap: firstOf(cmap, spec.ColorMap, a.cfg.ColorMap),
		Style:    &style,
	}
	fig, err := fam.Plot()
	if err != nil {
		return err
	}
	fig.Width = vg.Length(figCfg.Width) * vg.Inch
	fig.Height = vg.Length(figCfg.Height) * vg.Inch

	out := firstOf(output, spec.Output, "family.png")
	if err := bastools.Save(fig, out); err != nil {
		return err
	}
	a.logger.Info("family written", zap.String("file", out), zap.Int("curves", len(curves)))
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func familyCurves(spec *config.FamilySpec) ([]bastools.Curve, error) {
	specs, err := spec.CurveSpecs()
	if err != nil {
		return nil, err
	}
	curves := make([]bastools.Curve, len(specs))
	for i, cs := range specs {
		f, err := lookupFunc(cs.Func, cs.Args)
		if err != nil {
			return nil, fmt.Errorf("curve %d: %w", i, err)
		}
		curves[i] = bastools.Curve{Func: f, Label: cs.Label, LineStyle: cs.Style}
	}
	return curves, nil
}

// firstOf returns the first non-empty string.
func firstOf(s ...string) string {
	for _, v := range s {
		if v != "" {
			return v
		}
	}
	return ""
}
