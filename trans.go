// Scale Transformations
//
// Scale transformations should work like the ones in ggplot2.

package bastools

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// A Transformation maps one interval onto another. Ticker labels an
// axis which shows values in transformed coordinates, as the colorbar
// does.
type Transformation struct {
	Name   string
	Trans  func(from, to Interval, x float64) float64
	Ticker plot.Ticker
}

// LinearTrans implements a linear mapping of from to to.
var LinearTrans = Transformation{
	Name: "Linear",
	Trans: func(from, to Interval, x float64) float64 {
		return to.Min + (to.Max-to.Min)*(x-from.Min)/(from.Max-from.Min)
	},
	Ticker: plot.DefaultTicks{},
}

// Log10Trans maps from to to such that equal ratios in from become equal
// distances in to. Both edges of from must be positive. Its axes are
// drawn in decadic exponents.
var Log10Trans = Transformation{
	Name: "Log10",
	Trans: func(from, to Interval, x float64) float64 {
		t := math.Log10(x/from.Min) / math.Log10(from.Max/from.Min)
		return to.Min + t*(to.Max-to.Min)
	},
	Ticker: exponentTicks{},
}

// exponentTicks labels an axis whose values are decadic exponents with
// the corresponding powers of ten.
type exponentTicks struct{}

func (exponentTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for e := math.Ceil(min); e <= math.Floor(max); e++ {
		ticks = append(ticks, plot.Tick{Value: e, Label: "1e" + strconv.Itoa(int(e))})
	}
	if len(ticks) >= 2 {
		return ticks
	}

	// Less than a decade: label the default ticks with their power.
	ticks = plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].IsMinor() {
			continue
		}
		ticks[i].Label = strconv.FormatFloat(math.Pow(10, ticks[i].Value), 'g', 3, 64)
	}
	return ticks
}
