package analyzer

import (
	"datadetective/domain/analysis"

	"github.com/montanaflynn/stats"
)

// GroupAndAggregate partitions records by the raw value of groupKey and
// summarizes the numeric metric within each partition. A record qualifies
// only when it carries both fields and the metric value is numeric. Groups
// appear in the order their key value is first encountered in the dataset.
//
// Total is the rounded sum and Average is the rounded unrounded-sum/count;
// the two roundings are applied independently, matching the report contract,
// so they are not algebraically reconciled.
//
// Group key values must be comparable scalars (typically strings); that is a
// caller obligation, not something this method validates.
func (a *Analyzer) GroupAndAggregate(groupKey, metric string) analysis.GroupResult {
	order := make([]any, 0)
	groups := make(map[any][]float64)

	for _, rec := range a.data {
		group, ok := rec[groupKey]
		if !ok {
			continue
		}
		value, ok := rec.Numeric(metric)
		if !ok {
			continue
		}
		if _, seen := groups[group]; !seen {
			order = append(order, group)
		}
		groups[group] = append(groups[group], value)
	}

	result := make(analysis.GroupResult, 0, len(order))
	for _, group := range order {
		values := groups[group]
		sum, _ := stats.Sum(values)
		min, _ := stats.Min(values)
		max, _ := stats.Max(values)

		result = append(result, analysis.GroupAggregate{
			Group:   group,
			Count:   len(values),
			Total:   round2(sum),
			Average: round2(sum / float64(len(values))),
			Min:     min,
			Max:     max,
		})
	}

	return result
}
