// Package analyzer computes descriptive statistics, threshold-based anomaly
// flags and grouped aggregates over an in-memory dataset of records. Every
// operation is a pure function of the immutable dataset plus its arguments;
// nothing is cached between calls.
package analyzer

import (
	"datadetective/domain/core"
	"datadetective/domain/record"
)

// DefaultThreshold is the anomaly deviation multiplier used when the caller
// does not choose one, notably by report export.
const DefaultThreshold = 2.0

// Analyzer answers statistical queries about a caller-owned dataset. It
// borrows the dataset without taking ownership and never mutates it. The
// construction timestamp is captured once and reused for every report the
// analyzer exports.
type Analyzer struct {
	id        core.AnalyzerID
	data      record.Dataset
	createdAt core.Timestamp
}

// New creates an analyzer over the given dataset. The dataset may be empty;
// individual operations degrade per their own contracts.
func New(data record.Dataset) *Analyzer {
	return &Analyzer{
		id:        core.AnalyzerID(core.NewID()),
		data:      data,
		createdAt: core.Now(),
	}
}

// ID returns the analyzer's instance identifier.
func (a *Analyzer) ID() core.AnalyzerID {
	return a.id
}

// CreatedAt returns the construction timestamp carried into reports.
func (a *Analyzer) CreatedAt() core.Timestamp {
	return a.createdAt
}

// DataPoints returns the total number of records in the dataset, regardless
// of which fields they carry.
func (a *Analyzer) DataPoints() int {
	return len(a.data)
}
