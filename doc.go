// Package bastools contains small helpers to produce scientific figures
// with gonum.org/v1/plot.
//
// # Curve Families
//
// A Family plots one or more functions f(x, p) for a set of parameter
// values p. Every parameter value produces one line per function and
// the line is colored by p. A colorbar on the right side of the figure
// shows how parameter values map to colors. Curves with a label get a
// black proxy line in the legend so that different functions can be
// told apart by their line style.
//
// The mapping from parameter to color is a Mappable: a Scale (linear or
// logarithmic) which normalizes the parameter to [0,1] and a colormap
// which turns the normalized value into a color. Colormaps are looked
// up by name, see ColorMaps for the list of registered names.
//
// # Subplot Grids
//
// SubplotsGrid arranges n plots in a grid of rows×cols cells. If n is
// not a multiple of cols the last row is centered: the grid is built
// from 2·cols half columns and each plot spans two of them.
//
// # Output
//
// FamilyFigure and GridFigure implement Figure and can be written in
// any format supported by gonum.org/v1/plot/vg/draw, see Save and
// WriteTo.
//
// Related packages are sci (numbers in scientific notation), progress
// (nested progress bars), params (defaulting parameters) and svgcurve
// (a function sampled into a single SVG path).
package bastools
