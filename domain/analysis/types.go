package analysis

// Statistics holds the descriptive statistics for one metric. Mean and StdDev
// are rounded to 2 decimal places; Median, Min, Max and Range keep full
// precision. StdDev uses the sample (n-1) formula and is defined as 0 when
// Count == 1.
type Statistics struct {
	Metric string  `json:"metric"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Range  float64 `json:"range"`
}

// ErrorResult is the structured "no data" form embedded in reports in place
// of Statistics. Callers branch on the presence of the error key before
// trusting any other field.
type ErrorResult struct {
	Error string `json:"error"`
}

// Anomaly flags one observation whose deviation from the mean exceeds a
// multiple of the standard deviation. FilteredIndex is the 0-based position
// within the filtered numeric subsequence of the metric, NOT the index of
// the record in the original dataset.
type Anomaly struct {
	FilteredIndex int     `json:"filtered_index"`
	Value         float64 `json:"value"`
	Deviation     float64 `json:"deviation"`
}

// GroupAggregate summarizes one group's numeric metric values. Total and
// Average are rounded to 2 decimal places independently of each other; the
// two may disagree in the last digit for pathological floating-point sums,
// which is the documented behavior.
type GroupAggregate struct {
	Group   any     `json:"group"`
	Count   int     `json:"count"`
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// GroupResult is an ordered set of group aggregates. Order follows the first
// encounter of each group value in the dataset; Go maps cannot carry that
// guarantee, so the mapping is materialized as a slice.
type GroupResult []GroupAggregate

// Lookup returns the aggregate for the given group value.
func (g GroupResult) Lookup(group any) (GroupAggregate, bool) {
	for _, agg := range g {
		if agg.Group == group {
			return agg, true
		}
	}
	return GroupAggregate{}, false
}

// SummaryStats captures the central summary block of a field profile.
type SummaryStats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
	Q25    float64 `json:"q25"`
	Q75    float64 `json:"q75"`
}

// DistributionStats captures distribution shape markers of a field profile.
type DistributionStats struct {
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`
	IsNormal bool    `json:"is_normal"`
	ShapiroP float64 `json:"shapiro_p"`
}

// FieldProfile is the extended per-field analysis: summary statistics plus
// distribution shape markers.
type FieldProfile struct {
	Metric       string            `json:"metric"`
	Count        int               `json:"count"`
	Summary      SummaryStats      `json:"summary"`
	Distribution DistributionStats `json:"distribution"`
}

// Report is the exported analysis document. GeneratedAt is captured at
// analyzer construction time, not at export time, so repeated exports from
// one long-lived analyzer all carry the same generation timestamp.
// Statistics holds either *Statistics or ErrorResult.
type Report struct {
	GeneratedAt    string    `json:"generated_at"`
	DataPoints     int       `json:"data_points"`
	AnalyzedMetric string    `json:"analyzed_metric"`
	Statistics     any       `json:"statistics"`
	Anomalies      []Anomaly `json:"anomalies"`
}

// FieldStatistics pairs a field name with its computed statistics, used by
// whole-dataset sweeps.
type FieldStatistics struct {
	Field      string      `json:"field"`
	Statistics *Statistics `json:"statistics"`
}
