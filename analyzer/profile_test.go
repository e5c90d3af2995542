package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datadetective/domain/core"
	"datadetective/domain/record"
)

func TestProfileField_SummaryBlock(t *testing.T) {
	a := New(sensorReadings())

	profile, err := a.ProfileField("temperature")
	require.NoError(t, err)

	assert.Equal(t, "temperature", profile.Metric)
	assert.Equal(t, 5, profile.Count)
	assert.Equal(t, 22.5, profile.Summary.Min)
	assert.Equal(t, 45.8, profile.Summary.Max)
	assert.Equal(t, 23.1, profile.Summary.Median)
	assert.InDelta(t, 27.52, profile.Summary.Mean, 1e-9)
	assert.LessOrEqual(t, profile.Summary.Q25, profile.Summary.Median)
	assert.LessOrEqual(t, profile.Summary.Median, profile.Summary.Q75)
}

func TestProfileField_SkewDirection(t *testing.T) {
	rightSkewed := record.Dataset{
		{"v": 1.0}, {"v": 1.1}, {"v": 0.9}, {"v": 1.0}, {"v": 1.2},
		{"v": 0.8}, {"v": 1.1}, {"v": 9.0},
	}
	a := New(rightSkewed)

	profile, err := a.ProfileField("v")
	require.NoError(t, err)
	assert.Positive(t, profile.Distribution.Skewness)
}

func TestProfileField_ConstantData(t *testing.T) {
	a := New(record.Dataset{
		{"v": 5.0}, {"v": 5.0}, {"v": 5.0}, {"v": 5.0},
	})

	profile, err := a.ProfileField("v")
	require.NoError(t, err)

	assert.Equal(t, 0.0, profile.Summary.StdDev)
	assert.Equal(t, 0.0, profile.Distribution.Skewness)
	assert.Equal(t, 0.0, profile.Distribution.Kurtosis)
	assert.Equal(t, 1.0, profile.Distribution.ShapiroP)
}

func TestProfileField_MissingMetric(t *testing.T) {
	a := New(sensorReadings())

	_, err := a.ProfileField("pressure")
	require.Error(t, err)
	assert.True(t, core.IsNoNumericDataError(err))
}

func TestProfileField_ShapiroPIsAProbability(t *testing.T) {
	a := New(sensorReadings())

	profile, err := a.ProfileField("humidity")
	require.NoError(t, err)

	assert.GreaterOrEqual(t, profile.Distribution.ShapiroP, 0.0)
	assert.LessOrEqual(t, profile.Distribution.ShapiroP, 1.0)
}
