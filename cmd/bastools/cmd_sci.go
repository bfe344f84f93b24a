package main

import (
	"fmt"
	"strconv"

	"github.com/bastools/bastools/sci"
	"github.com/spf13/cobra"
)

func (a *app) sciCmd() *cobra.Command {
	var (
		digits int
		plain  bool
	)
	cmd := &cobra.Command{
		Use:   "sci MEAN [UNCERTAINTY]",
		Short: "Format a value with uncertainty in scientific notation",
		Example: `  bastools sci 0.000123 0.000004
  bastools sci --plain -n 3 6.02e23 1e21`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mu, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("mean: %w", err)
			}
			var sigma float64
			if len(args) == 2 {
				if sigma, err = strconv.ParseFloat(args[1], 64); err != nil {
					return fmt.Errorf("uncertainty: %w", err)
				}
			}
			format := sci.Notation
			if plain {
				format = sci.Plain
			}
			fmt.Fprintln(cmd.OutOrStdout(), format(mu, sigma, digits))
			return nil
		},
	}
	cmd.Flags().IntVarP(&digits, "digits", "n", 2, "Significant digits of the mantissa")
	cmd.Flags().BoolVar(&plain, "plain", false, "Plain text instead of LaTeX")
	return cmd
}
