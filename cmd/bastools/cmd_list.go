package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/bastools/bastools"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func (a *app) colormapsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "colormaps",
		Short: "List the available colormaps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current := strings.ToLower(a.cfg.ColorMap)
			for _, name := range bastools.ColorMaps() {
				mark := " "
				if name == current {
					mark = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", mark, name)
			}
			return nil
		},
	}
}

func (a *app) functionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "functions",
		Short: "List the built-in functions f(x, p)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range funcNames() {
				b := builtins[name]
				fmt.Fprintf(w, "%s\t%s\t%s\n", name, b.Doc, strings.Join(b.Args, ", "))
			}
			return w.Flush()
		},
	}
}

func (a *app) configCmd() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Prints the configuration after applying the config file and the
environment. With --write it is saved to the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if write {
				if err := a.cfg.Save(a.configPath); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), a.configPath)
				return nil
			}
			data, err := yaml.Marshal(a.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, "Save the configuration to the config file")
	return cmd
}
