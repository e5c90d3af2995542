package analyzer

import (
	"sort"

	"datadetective/domain/record"
)

// NumericFields scans every record and returns the names of all fields that
// hold a numeric value in at least one record, sorted lexicographically. A
// field that is textual in one record and numeric in another still qualifies.
func (a *Analyzer) NumericFields() []string {
	seen := make(map[string]struct{})
	for _, rec := range a.data {
		for field, value := range rec {
			if _, ok := record.NumericValue(value); ok {
				seen[field] = struct{}{}
			}
		}
	}

	fields := make([]string, 0, len(seen))
	for field := range seen {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}
