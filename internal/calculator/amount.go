package calculator

import (
	"math"
	"strconv"
	"strings"
)

var vulgarFractions = strings.NewReplacer(
	"½", " 1/2", "⅓", " 1/3", "⅔", " 2/3", "¼", " 1/4", "¾", " 3/4", "⅛", " 1/8",
)

// ParseAmount interprets an ingredient amount as a number.
// Accepted forms are decimals ("1.5"), fractions ("1/2") and mixed numbers
// ("1 1/2", "1½"). Anything else, including the empty string, is not numeric.
func ParseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(vulgarFractions.Replace(s))
	fields := strings.Fields(s)

	switch len(fields) {
	case 1:
		if strings.Contains(fields[0], "/") {
			return parseFraction(fields[0])
		}
		return parseDecimal(fields[0])
	case 2:
		whole, ok := parseDecimal(fields[0])
		if !ok || whole != math.Trunc(whole) {
			return 0, false
		}
		frac, ok := parseFraction(fields[1])
		if !ok {
			return 0, false
		}
		return whole + frac, true
	default:
		return 0, false
	}
}

func parseDecimal(s string) (float64, bool) {
	// Reject hex floats, exponents and the like before handing to strconv.
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			return 0, false
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseFraction(s string) (float64, bool) {
	num, den, found := strings.Cut(s, "/")
	if !found {
		return 0, false
	}
	n, ok := parseDecimal(num)
	if !ok {
		return 0, false
	}
	d, ok := parseDecimal(den)
	if !ok || d == 0 {
		return 0, false
	}
	return n / d, true
}

// FormatAmount prints a summed amount rounded to three decimals with
// trailing zeros trimmed: 3 -> "3", 0.1+0.2 -> "0.3", 1.25 -> "1.25".
// Non-zero amounts below that precision keep three significant digits
// instead of collapsing to "0".
func FormatAmount(v float64) string {
	rounded := math.Round(v*1000) / 1000
	if rounded == 0 && v != 0 {
		rounded, _ = strconv.ParseFloat(strconv.FormatFloat(v, 'g', 3, 64), 64)
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
