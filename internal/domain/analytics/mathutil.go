package analytics

import "math"

// roundHalfUp rounds to the nearest integer with ties toward +Inf, so that
// -2.5 becomes -2 and 2.5 becomes 3.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

func round1(x float64) float64 {
	return roundHalfUp(x*10) / 10
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
