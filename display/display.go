// Package display holds the presentation conveniences of the calculator
// UI: rendering results for the screen and normalizing keypad input. None
// of this belongs in the evaluator, whose results are plain float64.
package display

import (
	"math"
	"strconv"
	"strings"
)

// Magnitude thresholds beyond which results are shown in exponential
// notation. Anything in between fits the calculator screen as a plain
// decimal.
const (
	expUpper = 1e12
	expLower = 1e-9
)

// Format renders an evaluation result for the calculator screen. Large
// and tiny magnitudes switch to exponential notation; plain decimals are
// printed with the fewest digits that read back as the same value, so
// there are no trailing zeros.
func Format(x float64) string {
	abs := math.Abs(x)
	if abs >= expUpper || (x != 0 && abs < expLower) {
		return strconv.FormatFloat(x, 'e', -1, 64)
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// Normalize applies the conveniences the calculator keypad allows: a
// decimal point that starts a numeric run gains an explicit leading zero,
// so "." becomes "0." and "(.5" becomes "(0.5". The evaluator's grammar
// is left strict; this is purely an input-composition aid.
func Normalize(expr string) string {
	var b strings.Builder
	b.Grow(len(expr))
	digit := false
	for _, r := range expr {
		if r == '.' && !digit {
			b.WriteByte('0')
		}
		b.WriteRune(r)
		digit = '0' <= r && r <= '9'
	}
	return b.String()
}
