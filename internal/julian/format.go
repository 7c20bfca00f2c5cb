package julian

import (
	"math"
	"strconv"
	"strings"
)

// Format renders a Julian Date as the shortest decimal that round-trips to
// the same float64. Integral values keep a ".0" suffix, magnitudes outside
// [1e-4, 1e16) use exponent form, and non-finite values print as
// "inf", "-inf" or "nan".
func Format(jd float64) string {
	switch {
	case math.IsNaN(jd):
		return "nan"
	case math.IsInf(jd, 1):
		return "inf"
	case math.IsInf(jd, -1):
		return "-inf"
	}

	abs := math.Abs(jd)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(jd, 'e', -1, 64)
	}

	s := strconv.FormatFloat(jd, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
