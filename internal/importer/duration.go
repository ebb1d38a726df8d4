package importer

import (
	"math"
	"regexp"
	"strconv"
)

var isoDuration = regexp.MustCompile(`^P(?:(\d+(?:\.\d+)?)D)?(?:T(?:(\d+(?:\.\d+)?)H)?(?:(\d+(?:\.\d+)?)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)

// ParseDurationMinutes converts an ISO-8601 duration such as "PT1H30M" to
// whole minutes, rounding up leftover seconds. Invalid input yields 0, false.
func ParseDurationMinutes(s string) (int, bool) {
	m := isoDuration.FindStringSubmatch(s)
	if m == nil || s == "P" || s == "PT" {
		return 0, false
	}

	var minutes float64
	for i, scale := range []float64{24 * 60, 60, 1, 1.0 / 60} {
		if m[i+1] == "" {
			continue
		}
		v, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return 0, false
		}
		minutes += v * scale
	}
	return int(math.Ceil(minutes - 1e-9)), true
}
