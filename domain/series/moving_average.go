package series

import (
	"math"
)

// MovingAverage computes the fixed-window trailing mean of the series scores.
// The result has the same length as the input; the first window-1 entries are
// NaN because no full window exists yet. Rendering layers translate NaN to
// null. A window smaller than 1 or larger than the series yields all NaN.
func MovingAverage(s Series, window int) []float64 {
	out := make([]float64, len(s))
	for i := range out {
		out[i] = math.NaN()
	}
	if window < 1 || window > len(s) {
		return out
	}

	sum := 0.0
	for i, m := range s {
		sum += m.Score
		if i >= window {
			sum -= s[i-window].Score
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		}
	}
	return out
}
