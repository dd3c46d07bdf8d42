// Package profiling computes distribution-shape enrichment for rendering
// layers. Nothing here feeds back into the comparison statistics.
package profiling

import (
	"math"

	"github.com/montanaflynn/stats"
)

// DistributionProfile describes the shape of a segment's score distribution
type DistributionProfile struct {
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	StdDev   float64 `json:"std_dev"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Q25      float64 `json:"q25"`
	Q75      float64 `json:"q75"`
	IQR      float64 `json:"iqr"`
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`
}

// Analyze builds a distribution profile over the given scores. At least two
// observations are required; smaller inputs return a zero profile and false.
func Analyze(data []float64) (DistributionProfile, bool) {
	if len(data) < 2 {
		return DistributionProfile{}, false
	}

	profile := DistributionProfile{}

	mean, err := stats.Mean(data)
	if err != nil {
		return DistributionProfile{}, false
	}
	profile.Mean = mean

	if profile.Median, err = stats.Median(data); err != nil {
		return DistributionProfile{}, false
	}
	if profile.StdDev, err = stats.StandardDeviationSample(data); err != nil {
		return DistributionProfile{}, false
	}
	if profile.Min, err = stats.Min(data); err != nil {
		return DistributionProfile{}, false
	}
	if profile.Max, err = stats.Max(data); err != nil {
		return DistributionProfile{}, false
	}
	if profile.Q25, err = stats.Percentile(data, 25); err != nil {
		return DistributionProfile{}, false
	}
	if profile.Q75, err = stats.Percentile(data, 75); err != nil {
		return DistributionProfile{}, false
	}
	profile.IQR = profile.Q75 - profile.Q25

	profile.Skewness = sampleSkewness(data, profile.Mean, profile.StdDev)
	profile.Kurtosis = sampleKurtosis(data, profile.Mean, profile.StdDev)
	return profile, true
}

// sampleSkewness computes the adjusted Fisher-Pearson coefficient of skewness
func sampleSkewness(data []float64, mean, stdDev float64) float64 {
	if len(data) < 3 || stdDev == 0 {
		return 0
	}

	n := float64(len(data))
	sumCubed := 0.0
	for _, x := range data {
		dev := (x - mean) / stdDev
		sumCubed += dev * dev * dev
	}

	// Bias correction for sample skewness.
	return sumCubed / n * math.Sqrt(n*(n-1)) / (n - 2)
}

// sampleKurtosis computes sample excess kurtosis
func sampleKurtosis(data []float64, mean, stdDev float64) float64 {
	if len(data) < 4 || stdDev == 0 {
		return 0
	}

	n := float64(len(data))
	sumFourth := 0.0
	for _, x := range data {
		dev := (x - mean) / stdDev
		sumFourth += dev * dev * dev * dev
	}

	// Bias-corrected excess kurtosis.
	return (n*(n+1)/((n-1)*(n-2)*(n-3)))*sumFourth - 3*(n-1)*(n-1)/((n-2)*(n-3))
}
