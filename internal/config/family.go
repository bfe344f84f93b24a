package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/bastools/bastools"
	"github.com/bastools/bastools/params"
	"gopkg.in/yaml.v3"
)

// FamilySpec describes a curve family plot in YAML:
//
//	title: Resonance
//	x:     {min: 0, max: 10, n: 200}
//	param: {min: 0.1, max: 10, n: 8, log: true}
//	curves:
//	  - {func: lorentz, label: L, width: 0.5}
//	  - {func: gauss, style: "--"}
type FamilySpec struct {
	Title    string           `yaml:"title"`
	XLabel   string           `yaml:"xlabel"`
	YLabel   string           `yaml:"ylabel"`
	Param    SpanSpec         `yaml:"param"`
	X        SpanSpec         `yaml:"x"`
	ColorMap string           `yaml:"colormap"`
	Label    string           `yaml:"param_label"`
	Output   string           `yaml:"output"`
	Figure   map[string]any   `yaml:"figure"` // overrides FigureConfig
	Curves   []map[string]any `yaml:"curves"`
}

// SpanSpec is the YAML form of bastools.Span.
type SpanSpec struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
	N   int     `yaml:"n"`
	Log bool    `yaml:"log"`
}

// Span converts s.
func (s SpanSpec) Span() bastools.Span {
	return bastools.Span{Min: s.Min, Max: s.Max, N: s.N, Log: s.Log}
}

// CurveSpec is one decoded entry of FamilySpec.Curves.
type CurveSpec struct {
	Func  string
	Label string
	Style string

	// Args holds all remaining numeric keys.
	Args map[string]float64
}

// LoadFamily reads a FamilySpec from path.
func LoadFamily(path string) (*FamilySpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read family: %w", err)
	}
	spec := &FamilySpec{}
	if err := yaml.Unmarshal(data, spec); err != nil {
		return nil, fmt.Errorf("failed to parse family: %w", err)
	}
	return spec, nil
}

// FigureConfig returns base with the non-zero values of s.Figure
// applied, e.g. {width: 10, font_size: 14}.
func (s *FamilySpec) FigureConfig(base FigureConfig) (FigureConfig, error) {
	if err := params.SetNonZero(&base, s.Figure); err != nil {
		return base, fmt.Errorf("figure: %w", err)
	}
	return base, nil
}

// CurveSpecs decodes the curve entries. Every curve needs a func,
// label and style are optional strings, all other keys must be numbers.
func (s *FamilySpec) CurveSpecs() ([]CurveSpec, error) {
	specs := make([]CurveSpec, len(s.Curves))
	for i, m := range s.Curves {
		var cs CurveSpec
		var err error
		if cs.Func, err = params.Get[string](m, "func"); err != nil {
			return nil, fmt.Errorf("curve %d: %w", i, err)
		}
		if cs.Label, err = params.Lookup(m, "label", ""); err != nil {
			return nil, fmt.Errorf("curve %d: %w", i, err)
		}
		if cs.Style, err = params.Lookup(m, "style", "-"); err != nil {
			return nil, fmt.Errorf("curve %d: %w", i, err)
		}

		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		cs.Args = make(map[string]float64)
		for _, k := range keys {
			switch k {
			case "func", "label", "style":
				continue
			}
			v, err := params.Float(m, k)
			if err != nil {
				return nil, fmt.Errorf("curve %d: %w", i, err)
			}
			cs.Args[k] = v
		}
		specs[i] = cs
	}
	return specs, nil
}
