// Package sci formats measured values together with their uncertainty
// in scientific notation.
package sci

import (
	"fmt"
	"math"
	"strconv"
)

// Parts splits mu and sigma into a common power of ten:
//
//	mu    = m · 10^e
//	sigma = s · 10^e
//
// The exponent e is chosen such that 1 <= |m| < 10 (e is 0 for a mu of
// zero or a non-finite mu). The number of significant digits n
// determines the number of decimals, max(0, n-1). A positive
// uncertainty never vanishes: if s would be rounded to zero it is
// replaced by the smallest representable value 10^-decimals.
func Parts(mu, sigma float64, n int) (m, s float64, e int) {
	decimals := decimals(n)
	if mu != 0 && !math.IsInf(mu, 0) && !math.IsNaN(mu) {
		e = int(math.Floor(math.Log10(math.Abs(mu))))
	}
	scale := math.Pow(10, float64(e))
	m, s = mu/scale, sigma/scale

	if sigma > 0 && printsAsZero(s, decimals) {
		s = math.Pow(10, -float64(decimals))
	}
	return m, s, e
}

// Notation returns mu ± sigma as a LaTeX math string of the form
//
//	$1.2^{\pm 0.3} \cdot 10^{-4}$
//
// with n significant digits for the mantissa. See Parts.
func Notation(mu, sigma float64, n int) string {
	m, s, e := Parts(mu, sigma, n)
	d := decimals(n)
	return fmt.Sprintf(`$%s^{\pm %s} \cdot 10^{%d}$`, fixed(m, d), fixed(s, d), e)
}

// Plain is like Notation but produces plain text like "(1.2 ± 0.3)e-4"
// suitable for terminals and log output.
func Plain(mu, sigma float64, n int) string {
	m, s, e := Parts(mu, sigma, n)
	d := decimals(n)
	return fmt.Sprintf("(%s ± %s)e%+d", fixed(m, d), fixed(s, d), e)
}

func decimals(n int) int {
	if n < 1 {
		return 0
	}
	return n - 1
}

func fixed(x float64, decimals int) string {
	return strconv.FormatFloat(x, 'f', decimals, 64)
}

// printsAsZero reports whether x is shown as zero with the given
// number of decimals. Halves round to even when printed.
func printsAsZero(x float64, decimals int) bool {
	v, err := strconv.ParseFloat(fixed(x, decimals), 64)
	return err == nil && v == 0
}
