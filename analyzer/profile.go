package analyzer

import (
	"math"

	"datadetective/domain/analysis"
	"datadetective/domain/core"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// ProfileField performs extended distribution analysis for one metric:
// summary statistics with quartiles, skewness, kurtosis and an approximate
// normality test. Filtering follows the same rule as Statistics, and so does
// the error behavior for a metric with no numeric values.
func (a *Analyzer) ProfileField(metric string) (*analysis.FieldProfile, error) {
	values := a.data.NumericValues(metric)
	if len(values) == 0 {
		return nil, core.NewNoNumericDataError(metric)
	}

	mean, _ := stats.Mean(values)
	stdDev, _ := stats.StandardDeviation(values)
	min, _ := stats.Min(values)
	max, _ := stats.Max(values)
	median, _ := stats.Median(values)
	q25, _ := stats.Percentile(values, 25)
	q75, _ := stats.Percentile(values, 75)

	profile := &analysis.FieldProfile{
		Metric: metric,
		Count:  len(values),
		Summary: analysis.SummaryStats{
			Mean:   mean,
			StdDev: stdDev,
			Min:    min,
			Max:    max,
			Median: median,
			Q25:    q25,
			Q75:    q75,
		},
	}

	// Shape markers need spread; constant data has none.
	if stdDev == 0 {
		profile.Distribution.ShapiroP = 1.0
		return profile, nil
	}

	skewness := sampleSkewness(values, mean, stdDev)
	kurtosis := sampleKurtosis(values, mean, stdDev)
	isNormal, shapiroP := testNormality(skewness, kurtosis, len(values))

	profile.Distribution = analysis.DistributionStats{
		Skewness: skewness,
		Kurtosis: kurtosis,
		IsNormal: isNormal,
		ShapiroP: shapiroP,
	}

	return profile, nil
}

// sampleSkewness computes sample skewness using the adjusted Fisher-Pearson coefficient
func sampleSkewness(data []float64, mean, stdDev float64) float64 {
	if len(data) < 3 {
		return 0
	}

	n := float64(len(data))
	sumCubedDeviations := 0.0

	for _, x := range data {
		deviation := (x - mean) / stdDev
		sumCubedDeviations += deviation * deviation * deviation
	}

	skewness := sumCubedDeviations / n

	// Bias correction for sample skewness
	correction := math.Sqrt(n*(n-1)) / (n - 2)
	return skewness * correction
}

// sampleKurtosis computes total (non-excess) sample kurtosis
func sampleKurtosis(data []float64, mean, stdDev float64) float64 {
	if len(data) < 4 {
		return 0
	}

	n := float64(len(data))
	sumFourthDeviations := 0.0

	for _, x := range data {
		deviation := (x - mean) / stdDev
		sumFourthDeviations += deviation * deviation * deviation * deviation
	}

	kurtosis := sumFourthDeviations / n
	excessKurtosis := kurtosis - 3

	// Bias correction for sample excess kurtosis
	if n > 3 {
		correction := (n - 1) / ((n - 2) * (n - 3))
		excessKurtosis = excessKurtosis*correction + 6/(n+1)
	}

	return excessKurtosis + 3
}

// testNormality approximates a Shapiro-Wilk style test from the shape
// markers. The combined statistic is referred to a chi-squared distribution
// with 2 degrees of freedom, which is a rough approximation rather than a
// proper test.
func testNormality(skewness, kurtosis float64, n int) (isNormal bool, pValue float64) {
	if n < 3 {
		return false, 1.0
	}

	testStat := math.Abs(skewness) + math.Abs(kurtosis-3)/2

	chiDist := distuv.ChiSquared{K: 2}
	pValue = 1 - chiDist.CDF(testStat*testStat)

	isNormal = pValue > 0.05
	return isNormal, pValue
}
