package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrNoNumericData is returned when a metric is absent from the dataset
	// or carries no numeric values at all.
	ErrNoNumericData = errors.New("not found or contains no numeric data")

	// ErrInsufficientData marks computations that need more observations
	// than the dataset provides (e.g. a spread measure over one value).
	ErrInsufficientData = errors.New("insufficient data for analysis")

	// ErrEmptyDataset marks operations invoked against a dataset with no records.
	ErrEmptyDataset = errors.New("dataset contains no records")
)

// NewNoNumericDataError builds the caller-facing error for a metric with no
// numeric observations. The message interpolates the metric name and is
// embedded verbatim in exported reports, so its wording is load-bearing.
func NewNoNumericDataError(metric string) error {
	return fmt.Errorf("Metric '%s' %w", metric, ErrNoNumericData)
}

// NewValidationError builds an error for rejected caller input.
func NewValidationError(field string, reason string) error {
	return fmt.Errorf("validation failed for %s: %s", field, reason)
}

// Error checking helpers
func IsNoNumericDataError(err error) bool {
	return errors.Is(err, ErrNoNumericData)
}

func IsInsufficientDataError(err error) bool {
	return errors.Is(err, ErrInsufficientData)
}
