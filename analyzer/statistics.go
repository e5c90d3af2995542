package analyzer

import (
	"datadetective/domain/analysis"
	"datadetective/domain/core"

	"github.com/montanaflynn/stats"
)

// Statistics computes count, mean, median, sample standard deviation, min,
// max and range for the numeric values of the given metric. Non-numeric and
// absent values are skipped without affecting the count. When no numeric
// value exists for the metric anywhere in the dataset, a core.ErrNoNumericData
// error naming the metric is returned instead of a partial result.
//
// Mean and standard deviation are rounded to 2 decimal places; the median is
// kept at full precision. The standard deviation uses the n-1 denominator and
// is defined as 0 for a single observation. Non-finite inputs receive no
// special handling and propagate through the arithmetic as-is.
func (a *Analyzer) Statistics(metric string) (*analysis.Statistics, error) {
	values := a.data.NumericValues(metric)
	if len(values) == 0 {
		return nil, core.NewNoNumericDataError(metric)
	}

	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)
	min, _ := stats.Min(values)
	max, _ := stats.Max(values)

	stdDev := 0.0
	if len(values) > 1 {
		stdDev, _ = stats.StandardDeviationSample(values)
	}

	return &analysis.Statistics{
		Metric: metric,
		Count:  len(values),
		Mean:   round2(mean),
		Median: median,
		StdDev: round2(stdDev),
		Min:    min,
		Max:    max,
		Range:  max - min,
	}, nil
}

// round2 rounds to 2 decimal places. The montanaflynn rounder errors only on
// NaN input, in which case the NaN is propagated unchanged.
func round2(v float64) float64 {
	rounded, err := stats.Round(v, 2)
	if err != nil {
		return v
	}
	return rounded
}
