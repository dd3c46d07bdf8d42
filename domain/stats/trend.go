package stats

// TrendLine is a closed-form OLS fit over equally spaced integer indices.
// Slope is in score points per day.
type TrendLine struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// LinearRegression fits y = intercept + slope*i over i = 0..n-1.
// Degenerate inputs return a flat line: n == 0 gives {0, 0}, n == 1 gives
// {0, ys[0]}. A zero denominator cannot occur for n >= 2 with integer
// indices but is guarded anyway, returning slope 0 and the mean as intercept.
func LinearRegression(ys []float64) TrendLine {
	n := len(ys)
	if n == 0 {
		return TrendLine{}
	}
	if n == 1 {
		return TrendLine{Slope: 0, Intercept: ys[0]}
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range ys {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	fn := float64(n)
	denom := fn*sumXX - sumX*sumX
	if denom == 0 {
		return TrendLine{Slope: 0, Intercept: Mean(ys)}
	}

	slope := (fn*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / fn
	return TrendLine{Slope: slope, Intercept: intercept}
}

// Slope returns only the OLS rate of change for callers that do not need
// the intercept.
func Slope(ys []float64) float64 {
	return LinearRegression(ys).Slope
}
