package bastools

import (
	"fmt"
	"math"
)

// ----------------------------------------------------------------------------
// Scale

// Scale maps data values onto the unit interval [0,1]. It is the
// normalization behind a color scale: the unit value selects a color
// from a colormap.
type Scale struct {
	// Title is the scale's title, shown on the colorbar.
	Title string

	// Data is the range covered by actual data.
	Data Interval

	// Interval captures the range of this scale, set from Data during
	// autoscaling.
	Interval

	// ScaleType determines linear or logarithmic normalization.
	ScaleType ScaleType
}

// NewScale returns a new linear scale which autoscales to the actual data.
func NewScale() *Scale {
	return &Scale{
		Data:      unsetInterval(),
		Interval:  unsetInterval(),
		ScaleType: Linear,
	}
}

// Trans returns the transformation used by s.
func (s *Scale) Trans() Transformation {
	if s.ScaleType == Logarithmic {
		return Log10Trans
	}
	return LinearTrans
}

// Map maps the intervall [s.Min, s.Max] to [0, 1].
// Values outside of [s.Min, s.Max] are mapped to values < 0 or > 1.
// If s's Intervall is degenerate or unset Map returns NaN.
func (s *Scale) Map(x float64) float64 {
	if math.IsNaN(s.Min) || math.IsNaN(s.Max) || s.Min == s.Max {
		return math.NaN()
	}
	if s.ScaleType == Logarithmic && !(x > 0) {
		return math.NaN()
	}
	return s.Trans().Trans(s.Interval, unitInterval, x)
}

// Learn updates the data range of s to cover x.
func (s *Scale) Learn(x ...float64) {
	s.Data.Update(x...)
}

// HasData reports whether the Data intervall of s is valid.
func (s *Scale) HasData() bool {
	return !math.IsNaN(s.Data.Min) && !math.IsNaN(s.Data.Max)
}

// Degenerate reports whether the range of s is a single point.
func (s *Scale) Degenerate() bool { return s.Min == s.Max }

func (s *Scale) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Range=[%.3g:%.3g] Data=[%.3g:%.3g] %s %q",
		s.Min, s.Max, s.Data.Min, s.Data.Max, s.ScaleType, s.Title)
}

// autoscale turns the data range into the actual scale range.
func (s *Scale) autoscale() error {
	if !s.HasData() {
		return fmt.Errorf("scale %q: no data", s.Title)
	}
	s.Interval = s.Data
	if s.ScaleType == Logarithmic && !(s.Min > 0) {
		return fmt.Errorf("%w: scale %q starts at %g", ErrLogDomain, s.Title, s.Min)
	}
	return nil
}

// ----------------------------------------------------------------------------
// Intervall

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// set determined.
type Interval struct {
	Min, Max float64
}

var unitInterval = Interval{0, 1}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// ----------------------------------------------------------------------------
// ScaleType

// ScaleType selects one of the known scale types.
type ScaleType int

const (
	Linear ScaleType = iota
	Logarithmic
)

// String returns the type of st.
func (st ScaleType) String() string {
	switch st {
	case Linear:
		return "linear"
	case Logarithmic:
		return "log"
	}
	return fmt.Sprintf("ScaleType(%d)", int(st))
}
