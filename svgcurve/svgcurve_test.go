package svgcurve

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func square(x float64) float64 { return x * x }

func TestPathData(t *testing.T) {
	c := Curve{XMin: 0, XMax: 2, N: 3, Unit: 10, Func: square}
	xs, ys, err := c.Sample()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := c.PathData(xs, ys), "M 0 40 L 10 30 L 20 0"; got != want {
		t.Errorf("PathData = %q, want %q", got, want)
	}
	if w, h := c.Size(ys); w != 20 || h != 40 {
		t.Errorf("Size = %g x %g, want 20 x 40", w, h)
	}
}

func TestPathDataShifted(t *testing.T) {
	c := Curve{XMin: -1, XMax: 1, N: 3, Unit: 2, Func: func(x float64) float64 { return 3 - x }}
	xs, ys, err := c.Sample()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := c.PathData(xs, ys), "M 0 0 L 2 2 L 4 4"; got != want {
		t.Errorf("PathData = %q, want %q", got, want)
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	c := Curve{XMin: 0, XMax: 2, N: 3, Unit: 10, Func: square}
	if err := c.Write(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"<svg", `d="M 0 40 L 10 30 L 20 0"`, Style, "</svg>"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "<path"); n != 1 {
		t.Errorf("got %d path elements, want 1", n)
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sin.svg")
	c := Curve{XMin: 0, XMax: math.Pi, N: 50, Unit: 100, Func: math.Sin}
	if err := c.Save(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("<path")) {
		t.Errorf("no path in %s", path)
	}
}

func TestSaveErrorLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	for name, f := range map[string]func(float64) float64{
		"nan": func(x float64) float64 { return math.NaN() },
		"inf": func(x float64) float64 { return math.Inf(1) },
	} {
		path := filepath.Join(dir, name+".svg")
		c := Curve{XMin: 0, XMax: 1, N: 5, Unit: 1, Func: f}
		if err := c.Save(path); !errors.Is(err, ErrNotFinite) {
			t.Errorf("%s: got %v, want ErrNotFinite", name, err)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("%s: file left behind (stat: %v)", name, err)
		}
	}
}

func TestErrors(t *testing.T) {
	for _, tc := range []struct {
		curve Curve
		want  error
	}{
		{Curve{XMin: 0, XMax: 1, N: 0, Unit: 1, Func: square}, ErrSamples},
		{Curve{XMin: 0, XMax: 1, N: 5, Unit: 0, Func: square}, ErrUnit},
		{Curve{XMin: 0, XMax: 1, N: 5, Unit: math.NaN(), Func: square}, ErrUnit},
		{Curve{XMin: 2, XMax: 1, N: 5, Unit: 1, Func: square}, ErrRange},
		{Curve{XMin: 0, XMax: 1, N: 5, Unit: 1}, ErrFunction},
		{Curve{XMin: -1, XMax: 1, N: 3, Unit: 1, Func: func(x float64) float64 { return 1 / x }}, ErrNotFinite},
	} {
		if err := tc.curve.Write(&bytes.Buffer{}); !errors.Is(err, tc.want) {
			t.Errorf("Write(%+v) = %v, want %v", tc.curve, err, tc.want)
		}
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteError(t *testing.T) {
	c := Curve{XMin: 0, XMax: 1, N: 2, Unit: 1, Func: square}
	if err := c.Write(failWriter{}); err == nil {
		t.Error("expected write error")
	}
}
