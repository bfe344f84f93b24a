// Package svgcurve writes the graph of a scalar function as a single
// SVG path.
//
// The drawing is sized to the data: one data unit is Unit pixels in
// both directions, so the picture is (XMax-XMin)·Unit wide and
// (ymax-ymin)·Unit high where ymin and ymax are the extrema of the
// sampled function values.
package svgcurve

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	svg "github.com/ajstarks/svgo/float"
	"go.uber.org/zap"
)

// DefaultPath is used by Save if no file name is given.
const DefaultPath = "svg_graph.svg"

// Style is the style of the path element.
const Style = "fill:none;stroke:black;stroke-width:2"

var (
	ErrSamples   = errors.New("svgcurve: need at least one sample")
	ErrUnit      = errors.New("svgcurve: unit size must be positive")
	ErrRange     = errors.New("svgcurve: bad x range")
	ErrFunction  = errors.New("svgcurve: no function")
	ErrNotFinite = errors.New("svgcurve: function value not finite")
)

var logger = zap.NewNop()

// SetLogger sets the logger used by this package. A nil l disables logging.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Curve describes the sampling of Func on [XMin, XMax].
type Curve struct {
	XMin, XMax float64
	N          int     // N is the number of evenly spaced samples.
	Unit       float64 // Unit is the number of pixels per data unit.

	Func func(x float64) float64
}

func (c Curve) validate() error {
	switch {
	case c.Func == nil:
		return ErrFunction
	case c.N < 1:
		return fmt.Errorf("%w, got %d", ErrSamples, c.N)
	case !(c.Unit > 0) || math.IsInf(c.Unit, 0):
		return fmt.Errorf("%w, got %g", ErrUnit, c.Unit)
	case math.IsNaN(c.XMin) || math.IsNaN(c.XMax) || math.IsInf(c.XMin, 0) ||
		math.IsInf(c.XMax, 0) || c.XMax < c.XMin:
		return fmt.Errorf("%w [%g, %g]", ErrRange, c.XMin, c.XMax)
	}
	return nil
}

// Sample evaluates Func at N evenly spaced points including both ends.
func (c Curve) Sample() (xs, ys []float64, err error) {
	if err := c.validate(); err != nil {
		return nil, nil, err
	}
	xs = vec.Linspace(c.XMin, c.XMax, c.N)
	ys = vec.Map(c.Func, xs)
	for i, y := range ys {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return nil, nil, fmt.Errorf("%w: f(%g) = %g", ErrNotFinite, xs[i], y)
		}
	}
	return xs, ys, nil
}

// Size returns the width and height of the drawing of the samples ys.
func (c Curve) Size(ys []float64) (width, height float64) {
	ymin, ymax := stats.Bounds(ys)
	return (c.XMax - c.XMin) * c.Unit, (ymax - ymin) * c.Unit
}

// PathData returns the SVG path data "M x0 y0 L x1 y1 ..." of the
// samples. The y axis is flipped so that larger values are drawn higher.
func (c Curve) PathData(xs, ys []float64) string {
	_, ymax := stats.Bounds(ys)
	var sb strings.Builder
	for i := range xs {
		if i == 0 {
			sb.WriteString("M ")
		} else {
			sb.WriteString(" L ")
		}
		sb.WriteString(num((xs[i] - c.XMin) * c.Unit))
		sb.WriteByte(' ')
		sb.WriteString(num((ymax - ys[i]) * c.Unit))
	}
	return sb.String()
}

func num(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }

// Write samples the curve and writes the SVG document to w.
func (c Curve) Write(w io.Writer) error {
	xs, ys, err := c.Sample()
	if err != nil {
		return err
	}
	width, height := c.Size(ys)

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height)
	canvas.Path(c.PathData(xs, ys), Style)
	canvas.End()

	logger.Debug("wrote svg curve",
		zap.Int("samples", len(xs)),
		zap.Float64("width", width),
		zap.Float64("height", height))
	return ew.err
}

// Save writes the SVG document to the file path, DefaultPath if empty.
// The file is only created once the curve has been rendered.
func (c Curve) Save(path string) error {
	if path == "" {
		path = DefaultPath
	}
	var buf bytes.Buffer
	if err := c.Write(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// errWriter remembers the first write error, the svg package drops them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
