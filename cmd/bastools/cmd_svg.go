package main

import (
	"fmt"

	"github.com/bastools/bastools/svgcurve"
	"github.com/spf13/cobra"
)

func (a *app) svgCmd() *cobra.Command {
	var (
		c      svgcurve.Curve
		param  float64
		output string
	)
	cmd := &cobra.Command{
		Use:   "svg FUNC",
		Short: "Write a function as a single SVG path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, err := lookupFunc(args[0], nil)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("samples") {
				c.N = a.cfg.SVG.Samples
			}
			if !cmd.Flags().Changed("unit") {
				c.Unit = a.cfg.SVG.Unit
			}
			c.Func = func(x float64) float64 { return fn(x, param) }

			if output == "-" {
				return c.Write(cmd.OutOrStdout())
			}
			if err := c.Save(output); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), firstOf(output, svgcurve.DefaultPath))
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&c.XMin, "xmin", 0, "Lower end of x")
	f.Float64Var(&c.XMax, "xmax", 1, "Upper end of x")
	f.IntVarP(&c.N, "samples", "n", 100, "Number of samples")
	f.Float64Var(&c.Unit, "unit", 100, "Pixels per data unit")
	f.Float64VarP(&param, "param", "p", 1, "Parameter p passed to the function")
	f.StringVarP(&output, "output", "o", "", "Output file, - for stdout (default "+svgcurve.DefaultPath+")")
	return cmd
}
