package bastools

import (
	"fmt"

	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Dashes returns the dash pattern for the matplotlib style line style
// shorthands "-" (solid), "--" (dashed), ":" (dotted) and "-." (dash
// dotted). The names "solid", "dashed", "dotted" and "dashdot" work too.
// The empty string is solid. The patterns are taken from
// plotutil.DefaultDashes.
func Dashes(style string) ([]vg.Length, error) {
	switch style {
	case "", "-", "solid":
		return nil, nil
	case "--", "dashed":
		return plotutil.Dashes(1), nil
	case ":", "dotted":
		return plotutil.Dashes(3), nil
	case "-.", "dashdot":
		return plotutil.Dashes(4), nil
	}
	return nil, fmt.Errorf("%w %q", ErrLineStyle, style)
}
