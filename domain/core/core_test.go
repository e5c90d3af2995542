package core

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewID_Unique(t *testing.T) {
	seen := make(map[ID]struct{})
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.False(t, id.IsEmpty())
		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
	}
}

func TestNoNumericDataError(t *testing.T) {
	err := NewNoNumericDataError("temperature")

	assert.Equal(t, "Metric 'temperature' not found or contains no numeric data", err.Error())
	assert.True(t, IsNoNumericDataError(err))
	assert.True(t, errors.Is(err, ErrNoNumericData))
	assert.False(t, IsInsufficientDataError(err))
}

func TestTimestamp_ReportString(t *testing.T) {
	ts := NewTimestamp(time.Date(2025, 11, 25, 12, 5, 30, 0, time.UTC))

	assert.Equal(t, "2025-11-25 12:05:30", ts.ReportString())
}

func TestParseAnalyzerID(t *testing.T) {
	_, err := ParseAnalyzerID("  ")
	assert.Error(t, err)

	id, err := ParseAnalyzerID("abc")
	assert.NoError(t, err)
	assert.Equal(t, "abc", id.String())
}
