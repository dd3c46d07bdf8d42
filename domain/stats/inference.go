package stats

import (
	"math"
)

// Significance labels for two-tailed p-values. Thresholds are fixed
// constants of the design, not configurable.
const (
	LabelHighlySignificant     = "highly significant"
	LabelVerySignificant       = "very significant"
	LabelSignificant           = "significant"
	LabelMarginallySignificant = "marginally significant"
	LabelNotSignificant        = "not significant"
)

// Effect-size labels for |Cohen's d|, at the conventional 0.2/0.5/0.8 cuts.
const (
	LabelNegligible = "negligible"
	LabelSmall      = "small"
	LabelMedium     = "medium"
	LabelLarge      = "large"
)

// WelchTTest returns the two-tailed p-value of Welch's unequal-variance
// t-test for a difference in means between the two groups.
//
// Degenerate inputs return p = 1, meaning "no evidence of difference": either
// group smaller than 2 observations, or a pooled standard error of exactly 0
// (two identical constant groups). Both are documented outcomes, not errors.
func WelchTTest(a, b []float64) float64 {
	n1 := float64(len(a))
	n2 := float64(len(b))
	if n1 < 2 || n2 < 2 {
		return 1
	}

	mean1 := Mean(a)
	mean2 := Mean(b)
	var1 := Variance(a)
	var2 := Variance(b)

	se := math.Sqrt(var1/n1 + var2/n2)
	if se == 0 {
		return 1
	}
	t := (mean1 - mean2) / se

	// Welch-Satterthwaite degrees of freedom.
	df := math.Pow(var1/n1+var2/n2, 2) /
		(math.Pow(var1/n1, 2)/(n1-1) + math.Pow(var2/n2, 2)/(n2-1))

	// Two-tailed p via the Student's t survival identity:
	// P(|T| >= t) = I_x(df/2, 1/2) with x = df/(df + t^2).
	x := df / (df + t*t)
	return RegularizedIncompleteBeta(x, df/2, 0.5)
}

// CohensD returns the pooled-standard-deviation effect size
// (mean(a) - mean(b)) / pooledSD. Returns 0 when either group has fewer
// than 2 observations or the pooled standard deviation is 0.
func CohensD(a, b []float64) float64 {
	n1 := float64(len(a))
	n2 := float64(len(b))
	if n1 < 2 || n2 < 2 {
		return 0
	}

	// Group variances are weighted by group size, not by degrees of freedom.
	pooledSD := math.Sqrt((n1*Variance(a) + n2*Variance(b)) / (n1 + n2 - 2))
	if pooledSD == 0 {
		return 0
	}
	return (Mean(a) - Mean(b)) / pooledSD
}

// EffectSizeLabel classifies the magnitude of a Cohen's d value
func EffectSizeLabel(d float64) string {
	absD := math.Abs(d)
	switch {
	case absD < 0.2:
		return LabelNegligible
	case absD < 0.5:
		return LabelSmall
	case absD < 0.8:
		return LabelMedium
	default:
		return LabelLarge
	}
}

// SignificanceLabel classifies a two-tailed p-value
func SignificanceLabel(p float64) string {
	switch {
	case p < 0.001:
		return LabelHighlySignificant
	case p < 0.01:
		return LabelVerySignificant
	case p < 0.05:
		return LabelSignificant
	case p < 0.1:
		return LabelMarginallySignificant
	default:
		return LabelNotSignificant
	}
}
