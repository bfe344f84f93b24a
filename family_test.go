package bastools

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

func lorentz(x, p float64) float64 { return 1 / (1 + (x-p)*(x-p)) }

var spanTests = []struct {
	span Span
	want []float64
}{
	{Span{0, 1, 5, false}, []float64{0, 0.25, 0.5, 0.75, 1}},
	{Span{2, 8, 1, false}, []float64{2}},
	{Span{1, 100, 3, true}, []float64{1, 10, 100}},
	{Span{1, 0, 3, false}, []float64{1, 0.5, 0}},
}

func TestSpanValues(t *testing.T) {
	for i, tc := range spanTests {
		got, err := tc.span.Values()
		if err != nil {
			t.Errorf("%d. unexpected error %v", i, err)
			continue
		}
		if len(got) != len(tc.want) {
			t.Errorf("%d. got %v, want %v", i, got, tc.want)
			continue
		}
		for j := range got {
			if math.Abs(got[j]-tc.want[j]) > 1e-9*math.Max(1, math.Abs(tc.want[j])) {
				t.Errorf("%d. got %v, want %v", i, got, tc.want)
				break
			}
		}
	}

	if _, err := (Span{0, 1, 0, false}).Values(); err == nil {
		t.Errorf("missing error for N=0")
	}
	if _, err := (Span{0, 10, 3, true}).Values(); !errors.Is(err, ErrLogDomain) {
		t.Errorf("got %v, want ErrLogDomain", err)
	}
	ax, err := Span{1, 10, 2, true}.Axis()
	if err != nil || !ax.Log || len(ax.Values) != 2 {
		t.Errorf("Axis() = %v, %v", ax, err)
	}
}

func TestFamilyErrors(t *testing.T) {
	x := Axis{Values: []float64{1, 2, 3}}
	p := Axis{Values: []float64{1, 2}}
	c := []Curve{{Func: lorentz}}
	for i, tc := range []struct {
		f    Family
		want error
	}{
		{Family{Param: p, Curves: c}, ErrNoX},
		{Family{X: x, Curves: c}, ErrNoParam},
		{Family{X: x, Param: p}, ErrNoCurves},
		{Family{X: x, Param: p, Curves: []Curve{{Label: "a"}}}, ErrNoFunc},
		{Family{X: x, Param: p, Curves: []Curve{{Func: lorentz, LineStyle: "~"}}}, ErrLineStyle},
		{Family{X: Axis{Values: []float64{0, 1}, Log: true}, Param: p, Curves: c}, ErrLogDomain},
		{Family{X: x, Param: Axis{Values: []float64{-1, 1}, Log: true}, Curves: c}, ErrLogDomain},
		{Family{X: x, Param: p, Curves: c, ColorMap: "nope"}, ErrUnknownColorMap},
	} {
		_, err := tc.f.Plot()
		if !errors.Is(err, tc.want) {
			t.Errorf("%d. got error %v, want %v", i, err, tc.want)
		}
	}
}

func TestFamilyPlot(t *testing.T) {
	f := Family{
		X:     Axis{Values: []float64{0.1, 1, 10}, Log: true},
		Param: Axis{Values: []float64{1, 10, 100}, Log: true},
		Curves: []Curve{
			{Func: lorentz, Label: "lorentz"},
			{Func: func(x, p float64) float64 { return x * p }, LineStyle: "--"},
		},
		Labels: Labels{Title: "T", X: "x", Y: "y", Param: "p"},
	}
	fig, err := f.Plot()
	if err != nil {
		t.Fatal(err)
	}
	if len(fig.Lines) != 2 {
		t.Fatalf("got %d line sets, want 2", len(fig.Lines))
	}
	if got := fig.Lines[1].Y[2][1]; got != 100 {
		t.Errorf("f(1, 100) = %g, want 100", got)
	}
	if len(fig.LastY) != 3 || fig.LastY[2] != 1000 {
		t.Errorf("LastY = %v, want the x·p line at p=100", fig.LastY)
	}
	if len(fig.Legend) != 1 {
		t.Fatalf("got %d legend entries, want one for the labelled curve", len(fig.Legend))
	}
	if e := fig.Legend[0]; e.Label != "lorentz" || e.Style.Dashes != nil || e.Style.Color != color.Black {
		t.Errorf("legend entry %+v, want a solid black line for lorentz", e)
	}
	if fig.Lines[1].Dashes == nil {
		t.Errorf("dashed curve drawn solid")
	}
	if fig.Mappable.Scale.ScaleType != Logarithmic {
		t.Errorf("parameter scale %s, want log", fig.Mappable.Scale.ScaleType)
	}
	if fig.Mappable.Name != DefaultColorMap {
		t.Errorf("colormap %q, want %q", fig.Mappable.Name, DefaultColorMap)
	}
	if fig.Plot.Title.Text != "T" || fig.Plot.X.Label.Text != "x" || fig.Plot.Y.Label.Text != "y" {
		t.Errorf("labels not set")
	}
	if fig.ColorBar.Y.Label.Text != "p" {
		t.Errorf("colorbar label %q", fig.ColorBar.Y.Label.Text)
	}
	if w, h := fig.Size(); w != FamilyWidth || h != FamilyHeight {
		t.Errorf("size %v×%v", w, h)
	}
}

func TestSweepFamily(t *testing.T) {
	fig, err := SweepFamily(
		Span{Min: 0, Max: 1, N: 11},
		Span{Min: 1, Max: 1000, N: 4, Log: true},
		[]Curve{{Label: "one"}},
		Labels{Param: "p"}, "")
	if err != nil {
		t.Fatal(err)
	}
	if fig.Mappable.Name != "viridis" {
		t.Errorf("colormap %q, want viridis", fig.Mappable.Name)
	}
	if fig.Mappable.Scale.ScaleType != Linear {
		t.Errorf("sweep parameter scale must be linear")
	}
	if len(fig.X) != 11 || len(fig.Params) != 4 {
		t.Errorf("got %d x and %d params", len(fig.X), len(fig.Params))
	}
	for i, want := range []float64{1, 334, 667, 1000} {
		if i < len(fig.Params) && math.Abs(fig.Params[i]-want) > 1e-9 {
			t.Errorf("param %d = %g, want %g (evenly spaced)", i, fig.Params[i], want)
		}
	}
	for _, row := range fig.Lines[0].Y {
		for _, y := range row {
			if y != 1 {
				t.Fatalf("curve without function: got %g, want 1", y)
			}
		}
	}

	// Log spacing is not used for the parameter, so zero is allowed.
	if _, err := SweepFamily(Span{Min: 0, Max: 1, N: 3}, Span{Min: 0, Max: 2, N: 3, Log: true}, []Curve{{}}, Labels{}, ""); err != nil {
		t.Errorf("log flag on sweep parameter: %v", err)
	}
	if _, err := SweepFamily(Span{N: 0}, Span{Min: 1, Max: 2, N: 2}, []Curve{{}}, Labels{}, ""); err == nil {
		t.Errorf("missing error for empty x span")
	}
}

func TestParamLinesSegments(t *testing.T) {
	m, err := NewMappable([]float64{1}, "", Linear)
	if err != nil {
		t.Fatal(err)
	}
	x := []float64{-2, -1, 0, 1, 2, 3}
	pl, err := NewParamLines(x, []float64{1}, func(x, p float64) float64 { return p / x }, m, DefaultStyle(12).Line)
	if err != nil {
		t.Fatal(err)
	}
	segs := pl.segments(0)
	if len(segs) != 2 || len(segs[0]) != 2 || len(segs[1]) != 3 {
		t.Errorf("segments %v, want a break at x=0", segs)
	}
	xmin, xmax, ymin, ymax := pl.DataRange()
	if xmin != -2 || xmax != 3 || ymin != -1 || ymax != 1 {
		t.Errorf("DataRange = %g %g %g %g", xmin, xmax, ymin, ymax)
	}
}

func TestFamilyLegend(t *testing.T) {
	fig, err := Family{
		X:     Axis{Values: []float64{0, 1, 2}},
		Param: Axis{Values: []float64{1, 2}},
		Curves: []Curve{
			{Func: lorentz, Label: "a", LineStyle: "--"},
			{Func: lorentz},
			{Func: lorentz, Label: "c", LineStyle: ":"},
		},
	}.Plot()
	if err != nil {
		t.Fatal(err)
	}
	if len(fig.Legend) != 2 {
		t.Fatalf("got %d legend entries, want 2", len(fig.Legend))
	}
	for i, want := range []struct {
		label string
		style string
	}{{"a", "--"}, {"c", ":"}} {
		e := fig.Legend[i]
		dashes, _ := Dashes(want.style)
		if e.Label != want.label || len(e.Style.Dashes) != len(dashes) || e.Style.Color != color.Black {
			t.Errorf("entry %d = %+v, want black %q line labelled %q", i, e, want.style, want.label)
		}
	}
}
