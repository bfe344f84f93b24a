// Command bastools draws curve families, subplot grids and SVG curves
// and formats numbers in scientific notation.
package main

import (
	"fmt"
	"os"

	"github.com/bastools/bastools"
	"github.com/bastools/bastools/internal/config"
	"github.com/bastools/bastools/progress"
	"github.com/bastools/bastools/svgcurve"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds the state shared by all subcommands.
type app struct {
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{
		cfg:    config.DefaultConfig(),
		logger: zap.NewNop(),
	}

	root := &cobra.Command{
		Use:   "bastools",
		Short: "Helpers for scientific figures",
		Long: `bastools draws figures with gonum plot:

  family     curves f(x, p) colored by the parameter p, with a colorbar
  grid       a grid of subplots with a centered last row
  svg        a function sampled into a single SVG path

Settings are read from a YAML file (--config) and the environment
variables BASTOOLS_COLORMAP, BASTOOLS_LOG_LEVEL and BASTOOLS_PROGRESS.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "bastools.yaml", "Configuration file")

	root.AddCommand(
		a.familyCmd(),
		a.gridCmd(),
		a.svgCmd(),
		a.sciCmd(),
		a.colormapsCmd(),
		a.functionsCmd(),
		a.configCmd(),
	)
	return root
}

// setup loads the configuration and installs the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger, err := cfg.Logger(a.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	bastools.SetLogger(logger)
	svgcurve.SetLogger(logger)
	progress.SetDefault(cfg.Progress)

	logger.Debug("configuration loaded",
		zap.String("path", a.configPath),
		zap.String("colormap", cfg.ColorMap),
		zap.Bool("progress", cfg.Progress))
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
