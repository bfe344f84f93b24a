package sci

import (
	"math"
	"strconv"
	"testing"
)

var notationTests = []struct {
	mu, sigma float64
	n         int
	want      string
}{
	{1234, 56, 2, `$1.2^{\pm 0.1} \cdot 10^{3}$`},
	{1234, 56, 3, `$1.23^{\pm 0.06} \cdot 10^{3}$`},
	{0.00123, 0.00004, 2, `$1.2^{\pm 0.1} \cdot 10^{-3}$`},
	{0, 0.5, 2, `$0.0^{\pm 0.5} \cdot 10^{0}$`},
	{-250, 10, 2, `$-2.5^{\pm 0.1} \cdot 10^{2}$`},
	{5, 0, 2, `$5.0^{\pm 0.0} \cdot 10^{0}$`},
	{7, 0.3, 1, `$7^{\pm 1} \cdot 10^{0}$`},
	{7, 0.3, 0, `$7^{\pm 1} \cdot 10^{0}$`},
	{1, 1e-5, 3, `$1.00^{\pm 0.01} \cdot 10^{0}$`},
	{1, 0.5, 1, `$1^{\pm 1} \cdot 10^{0}$`},
	{0.3, 0.05, 1, `$3^{\pm 1} \cdot 10^{-1}$`},
	{2, 0.25, 2, `$2.0^{\pm 0.2} \cdot 10^{0}$`},
}

func TestNotation(t *testing.T) {
	for i, tc := range notationTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := Notation(tc.mu, tc.sigma, tc.n); got != tc.want {
				t.Errorf("Notation(%g, %g, %d) = %s, want %s",
					tc.mu, tc.sigma, tc.n, got, tc.want)
			}
		})
	}
}

func TestPartsMinimalUncertainty(t *testing.T) {
	// 4e-5 relative to 1e-3 is 0.04 which rounds to 0.0 with one decimal.
	_, s, e := Parts(0.00123, 0.00004, 2)
	if e != -3 {
		t.Errorf("exponent = %d, want -3", e)
	}
	if math.Abs(s-0.1) > 1e-12 {
		t.Errorf("s = %g, want 0.1", s)
	}

	// A zero sigma stays zero.
	if _, s, _ := Parts(12, 0, 2); s != 0 {
		t.Errorf("s = %g, want 0", s)
	}
}

func TestPartsNonFinite(t *testing.T) {
	for _, mu := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		if _, _, e := Parts(mu, 1, 2); e != 0 {
			t.Errorf("Parts(%g): exponent %d, want 0", mu, e)
		}
	}
}

func TestPlain(t *testing.T) {
	if got, want := Plain(1234, 56, 3), "(1.23 ± 0.06)e+3"; got != want {
		t.Errorf("Plain = %q, want %q", got, want)
	}
	if got, want := Plain(0.00123, 0.00004, 2), "(1.2 ± 0.1)e-3"; got != want {
		t.Errorf("Plain = %q, want %q", got, want)
	}
}
