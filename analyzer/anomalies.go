package analyzer

import (
	"math"

	"datadetective/domain/analysis"

	"github.com/montanaflynn/stats"
)

// DetectAnomalies flags every numeric value of the metric whose absolute
// deviation from the mean exceeds threshold times the sample standard
// deviation. The returned slice follows the order of the filtered numeric
// subsequence, and each anomaly's FilteredIndex refers to a position within
// that subsequence, not the original dataset.
//
// With fewer than two numeric values the standard deviation is undefined and
// an empty slice is returned. Unlike Statistics, this operation never
// produces an error for missing data; the two behaviors are deliberately
// asymmetric.
func (a *Analyzer) DetectAnomalies(metric string, threshold float64) []analysis.Anomaly {
	values := a.data.NumericValues(metric)

	anomalies := make([]analysis.Anomaly, 0)
	if len(values) < 2 {
		return anomalies
	}

	mean, _ := stats.Mean(values)
	stdDev, _ := stats.StandardDeviationSample(values)

	for i, v := range values {
		deviation := math.Abs(v - mean)
		if deviation > threshold*stdDev {
			anomalies = append(anomalies, analysis.Anomaly{
				FilteredIndex: i,
				Value:         v,
				Deviation:     round2(deviation / stdDev),
			})
		}
	}

	return anomalies
}
