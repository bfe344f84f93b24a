package bastools

import (
	"fmt"
	"image/color"
	"sort"
	"strings"
	"sync"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/palette/moreland"
)

// DefaultColorMap is used if no colormap name is given.
const DefaultColorMap = "coolwarm"

// A ColorMapFunc creates a fresh instance of a colormap. Colormaps carry
// their own range (Min, Max) so every user needs its own instance.
type ColorMapFunc func() (palette.ColorMap, error)

var (
	colorMapsMu sync.RWMutex
	colorMaps   = map[string]ColorMapFunc{
		"coolwarm":           func() (palette.ColorMap, error) { return moreland.SmoothBlueRed(), nil },
		"kindlmann":          func() (palette.ColorMap, error) { return moreland.Kindlmann(), nil },
		"extended-kindlmann": func() (palette.ColorMap, error) { return moreland.ExtendedKindlmann(), nil },
		"blackbody":          func() (palette.ColorMap, error) { return moreland.BlackBody(), nil },
		"extended-blackbody": func() (palette.ColorMap, error) { return moreland.ExtendedBlackBody(), nil },
		"viridis":            func() (palette.ColorMap, error) { return moreland.NewLuminance(viridis) },
	}
)

// viridis holds control colors sampled from the viridis colormap. Its
// luminance increases monotonically which makes it a luminance map.
var viridis = []color.Color{
	color.NRGBA{0x44, 0x01, 0x54, 0xff},
	color.NRGBA{0x48, 0x28, 0x78, 0xff},
	color.NRGBA{0x3e, 0x49, 0x89, 0xff},
	color.NRGBA{0x31, 0x68, 0x8e, 0xff},
	color.NRGBA{0x26, 0x82, 0x8e, 0xff},
	color.NRGBA{0x1f, 0x9e, 0x89, 0xff},
	color.NRGBA{0x35, 0xb7, 0x79, 0xff},
	color.NRGBA{0x6e, 0xce, 0x58, 0xff},
	color.NRGBA{0xb5, 0xde, 0x2b, 0xff},
	color.NRGBA{0xfd, 0xe7, 0x25, 0xff},
}

func init() {
	// The sequential ColorBrewer palettes run from light to dark. A
	// luminance map needs increasing luminance so the controls are
	// reversed and the resulting map is flipped back.
	for _, name := range []string{"Blues", "Greens", "Greys", "Oranges", "Purples", "Reds", "YlOrRd", "YlGnBu"} {
		colorMaps[strings.ToLower(name)] = func() (palette.ColorMap, error) {
			p, err := brewer.GetPalette(brewer.TypeSequential, name, 9)
			if err != nil {
				return nil, err
			}
			colors := p.Colors()
			controls := make([]color.Color, len(colors))
			for i, c := range colors {
				controls[len(colors)-1-i] = c
			}
			cm, err := moreland.NewLuminance(controls)
			if err != nil {
				return nil, err
			}
			return &reversed{cm}, nil
		}
	}
}

// RegisterColorMap makes a colormap available under name. An existing
// colormap of that name is replaced.
func RegisterColorMap(name string, f ColorMapFunc) {
	colorMapsMu.Lock()
	defer colorMapsMu.Unlock()
	colorMaps[strings.ToLower(name)] = f
}

// ColorMaps returns the sorted names of all known colormaps.
func ColorMaps() []string {
	colorMapsMu.RLock()
	defer colorMapsMu.RUnlock()
	names := make([]string, 0, len(colorMaps))
	for name := range colorMaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ColorMap returns a new instance of the named colormap with range [0,1].
// Names are case insensitive, the empty name selects DefaultColorMap.
func ColorMap(name string) (palette.ColorMap, error) {
	if name == "" {
		name = DefaultColorMap
	}
	colorMapsMu.RLock()
	f, ok := colorMaps[strings.ToLower(name)]
	colorMapsMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownColorMap, name)
	}
	cm, err := f()
	if err != nil {
		return nil, fmt.Errorf("colormap %q: %v", name, err)
	}
	cm.SetMin(0)
	cm.SetMax(1)
	return cm, nil
}

// reversed runs a colormap backwards.
type reversed struct {
	palette.ColorMap
}

func (r *reversed) At(v float64) (color.Color, error) {
	return r.ColorMap.At(r.Min() + r.Max() - v)
}

func (r *reversed) Palette(colors int) palette.Palette {
	p := r.ColorMap.Palette(colors).Colors()
	rev := make(colorList, len(p))
	for i, c := range p {
		rev[len(p)-1-i] = c
	}
	return rev
}

type colorList []color.Color

func (l colorList) Colors() []color.Color { return l }
