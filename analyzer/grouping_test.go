package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datadetective/domain/record"
)

func TestGroupAndAggregate_SingleSensor(t *testing.T) {
	a := New(sensorReadings())

	groups := a.GroupAndAggregate("sensor_id", "temperature")
	require.Len(t, groups, 1)

	agg, ok := groups.Lookup("A1")
	require.True(t, ok)
	assert.Equal(t, 5, agg.Count)
	assert.Equal(t, 22.5, agg.Min)
	assert.Equal(t, 45.8, agg.Max)
	assert.InDelta(t, 137.6, agg.Total, 1e-9)
	assert.InDelta(t, 27.52, agg.Average, 1e-9)
}

func TestGroupAndAggregate_InsertionOrder(t *testing.T) {
	a := New(record.Dataset{
		{"sensor_id": "B2", "temperature": 20.0},
		{"sensor_id": "A1", "temperature": 21.0},
		{"sensor_id": "B2", "temperature": 22.0},
		{"sensor_id": "C3", "temperature": 23.0},
		{"sensor_id": "A1", "temperature": 24.0},
	})

	groups := a.GroupAndAggregate("sensor_id", "temperature")
	require.Len(t, groups, 3)

	// First-encounter order, not lexicographic.
	assert.Equal(t, "B2", groups[0].Group)
	assert.Equal(t, "A1", groups[1].Group)
	assert.Equal(t, "C3", groups[2].Group)
}

func TestGroupAndAggregate_CountsSumToQualifyingRecords(t *testing.T) {
	data := record.Dataset{
		{"sensor_id": "A1", "temperature": 20.0},
		{"sensor_id": "A1", "temperature": "bad"}, // non-numeric metric: excluded
		{"sensor_id": "B2", "temperature": 22.0},
		{"temperature": 30.0}, // no group key: excluded
		{"sensor_id": "C3"},   // no metric: excluded
		{"sensor_id": "B2", "temperature": 25.0},
	}
	a := New(data)

	groups := a.GroupAndAggregate("sensor_id", "temperature")

	total := 0
	for _, agg := range groups {
		total += agg.Count
	}
	assert.Equal(t, 3, total)
	require.Len(t, groups, 2)
}

func TestGroupAndAggregate_RequiresBothFields(t *testing.T) {
	a := New(record.Dataset{
		{"sensor_id": "A1"},
		{"temperature": 20.0},
	})

	assert.Empty(t, a.GroupAndAggregate("sensor_id", "temperature"))
}

func TestGroupAndAggregate_PerGroupBounds(t *testing.T) {
	a := New(record.Dataset{
		{"sensor_id": "A1", "temperature": 19.0},
		{"sensor_id": "A1", "temperature": 25.0},
		{"sensor_id": "B2", "temperature": 30.0},
	})

	groups := a.GroupAndAggregate("sensor_id", "temperature")

	a1, ok := groups.Lookup("A1")
	require.True(t, ok)
	assert.Equal(t, 2, a1.Count)
	assert.Equal(t, 19.0, a1.Min)
	assert.Equal(t, 25.0, a1.Max)
	assert.Equal(t, 44.0, a1.Total)
	assert.Equal(t, 22.0, a1.Average)

	b2, ok := groups.Lookup("B2")
	require.True(t, ok)
	assert.Equal(t, 1, b2.Count)
	assert.Equal(t, 30.0, b2.Min)
	assert.Equal(t, 30.0, b2.Max)
}

func TestGroupAndAggregate_NonStringGroupKeys(t *testing.T) {
	a := New(record.Dataset{
		{"zone": 1, "temperature": 18.0},
		{"zone": 2, "temperature": 21.0},
		{"zone": 1, "temperature": 20.0},
	})

	groups := a.GroupAndAggregate("zone", "temperature")
	require.Len(t, groups, 2)

	zone1, ok := groups.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, 2, zone1.Count)
}

func TestGroupAndAggregate_LookupMiss(t *testing.T) {
	a := New(sensorReadings())

	groups := a.GroupAndAggregate("sensor_id", "temperature")
	_, ok := groups.Lookup("Z9")
	assert.False(t, ok)
}
