package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datadetective/domain/record"
)

func TestDetectAnomalies_FlagsOutlierReading(t *testing.T) {
	// Sample stdev of the five readings is ~10.22, so the 45.8 spike sits
	// ~1.79 sigma out: flagged at 1.5, unflagged at the 2.0 default.
	a := New(sensorReadings())

	anomalies := a.DetectAnomalies("temperature", 1.5)
	require.Len(t, anomalies, 1)

	assert.Equal(t, 2, anomalies[0].FilteredIndex)
	assert.Equal(t, 45.8, anomalies[0].Value)
	assert.InDelta(t, 1.79, anomalies[0].Deviation, 1e-9)
}

func TestDetectAnomalies_BorderlineSpikeUnflaggedAtDefaultThreshold(t *testing.T) {
	a := New(sensorReadings())

	anomalies := a.DetectAnomalies("temperature", DefaultThreshold)
	assert.Empty(t, anomalies)
}

func TestDetectAnomalies_IncreasingThresholdNeverAddsAnomalies(t *testing.T) {
	a := New(record.Dataset{
		{"value": 1.0},
		{"value": 2.0},
		{"value": 1.5},
		{"value": 40.0},
		{"value": 1.8},
		{"value": -35.0},
		{"value": 2.2},
	})

	previous := len(a.DetectAnomalies("value", 0.1))
	for _, threshold := range []float64{0.25, 0.5, 1.0, 1.5, 2.0, 3.0} {
		count := len(a.DetectAnomalies("value", threshold))
		assert.LessOrEqual(t, count, previous, "threshold %v", threshold)
		previous = count
	}
}

func TestDetectAnomalies_PreservesFilteredOrder(t *testing.T) {
	a := New(record.Dataset{
		{"value": 100.0},
		{"value": "skipped"},
		{"value": 1.0},
		{"value": 1.1},
		{"value": 0.9},
		{"value": 1.0},
		{"value": -90.0},
	})

	anomalies := a.DetectAnomalies("value", 1.2)
	require.Len(t, anomalies, 2)

	// Indices refer to the filtered numeric subsequence: the non-numeric
	// record does not consume an index.
	assert.Equal(t, 0, anomalies[0].FilteredIndex)
	assert.Equal(t, 100.0, anomalies[0].Value)
	assert.Equal(t, 5, anomalies[1].FilteredIndex)
	assert.Equal(t, -90.0, anomalies[1].Value)
}

func TestDetectAnomalies_FewerThanTwoValues(t *testing.T) {
	tests := []struct {
		name string
		data record.Dataset
	}{
		{name: "empty dataset", data: record.Dataset{}},
		{name: "single numeric value", data: record.Dataset{{"value": 5.0}}},
		{name: "metric absent", data: record.Dataset{{"other": 1.0}, {"other": 2.0}}},
		{name: "all non-numeric", data: record.Dataset{{"value": "a"}, {"value": "b"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(tt.data)
			anomalies := a.DetectAnomalies("value", DefaultThreshold)
			assert.NotNil(t, anomalies)
			assert.Empty(t, anomalies)
		})
	}
}

func TestDetectAnomalies_ConstantDataHasNoAnomalies(t *testing.T) {
	a := New(record.Dataset{
		{"value": 3.0},
		{"value": 3.0},
		{"value": 3.0},
	})

	assert.Empty(t, a.DetectAnomalies("value", DefaultThreshold))
}

func TestDetectAnomalies_EveryFlagExceedsThreshold(t *testing.T) {
	a := New(record.Dataset{
		{"value": 10.0}, {"value": 11.0}, {"value": 9.5}, {"value": 10.2},
		{"value": 55.0}, {"value": 10.8}, {"value": -30.0},
	})

	threshold := 1.0
	for _, anomaly := range a.DetectAnomalies("value", threshold) {
		assert.Greater(t, anomaly.Deviation, threshold)
	}
}
