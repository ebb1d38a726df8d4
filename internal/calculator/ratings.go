package calculator

import "math"

// AverageRating computes the mean score rounded to one decimal place.
// An empty list averages to 0.
func AverageRating(scores []int) float64 {
	if len(scores) == 0 {
		return 0
	}
	total := 0
	for _, s := range scores {
		total += s
	}
	mean := float64(total) / float64(len(scores))
	return math.Round(mean*10) / 10
}
