package bastools

import (
	"errors"
	"testing"
)

func TestDashes(t *testing.T) {
	for style, want := range map[string]int{
		"": 0, "-": 0, "solid": 0,
		"--": 2, "dashed": 2,
		":": 2, "dotted": 2,
		"-.": 4, "dashdot": 4,
	} {
		d, err := Dashes(style)
		if err != nil {
			t.Errorf("Dashes(%q): %v", style, err)
			continue
		}
		if len(d) != want {
			t.Errorf("Dashes(%q) has %d elements, want %d", style, len(d), want)
		}
	}

	if _, err := Dashes("~~"); !errors.Is(err, ErrLineStyle) {
		t.Errorf("Dashes(~~) error = %v, want ErrLineStyle", err)
	}
}
