package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock_ParsesHoursMinutesSeconds(t *testing.T) {
	m, err := ParseClock("01:30:00")
	require.NoError(t, err)
	assert.Equal(t, 90.0, m)

	m, err = ParseClock("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0.0, m)

	m, err = ParseClock("02:15:30")
	require.NoError(t, err)
	assert.InDelta(t, 135.5, m, 1e-9)
}

func TestParseClock_RejectsMalformedInput(t *testing.T) {
	_, err := ParseClock("not-a-time")
	assert.Error(t, err)

	_, err = ParseClock("12")
	assert.Error(t, err)
}

func sampleShifts() []ShiftRecord {
	return []ShiftRecord{
		{ShiftID: 0, ShiftStart: "08:00:00", ShiftEnd: "12:00:00", ShiftLevel: 2},
	}
}

func TestLoadInstance_ExplicitWindowIsUsedVerbatim(t *testing.T) {
	clients := []ClientRecord{
		{ActivityID: 1, Duration: 20, ActivityLevel: 1, ShiftID: 0, TWBool: true, TWStart: "08:30:00", TWEnd: "09:00:00"},
	}
	d := [][]float64{{0, 5}, {5, 0}}

	ins, route, err := LoadInstance(clients, sampleShifts(), d, 0)
	require.NoError(t, err)

	assert.Equal(t, 2, ins.N)
	assert.Equal(t, 1, ins.V)
	assert.Equal(t, 510.0, ins.TW[1].Start) // 08:30
	assert.Equal(t, 540.0, ins.TW[1].End)   // 09:00
	assert.Equal(t, []int{1}, route[0])
}

func TestLoadInstance_InterpolatesWindowWhenNotExplicit(t *testing.T) {
	clients := []ClientRecord{
		{ActivityID: 1, Duration: 20, ActivityLevel: 1, ShiftID: 0, TWBool: false},
	}
	d := [][]float64{{0, 5}, {5, 0}}

	ins, _, err := LoadInstance(clients, sampleShifts(), d, 60)
	require.NoError(t, err)

	// window must be at most 60 minutes wide and start no earlier than the
	// shift start.
	width := ins.TW[1].End - ins.TW[1].Start
	assert.LessOrEqual(t, width, 60.0)
	assert.GreaterOrEqual(t, ins.TW[1].Start, ins.SS[0])
}

func TestLoadInstance_QualificationMatrixFromActivityLevel(t *testing.T) {
	clients := []ClientRecord{
		{ActivityID: 1, Duration: 20, ActivityLevel: 3, ShiftID: 0, TWBool: true, TWStart: "08:00:00", TWEnd: "09:00:00"},
	}
	d := [][]float64{{0, 5}, {5, 0}}

	_, _, err := LoadInstance(clients, sampleShifts(), d, 0)
	require.Error(t, err) // activity level 3 > shift level 2: no feasible shift
}

func TestLoadInstance_RejectsOutOfRangeShiftID(t *testing.T) {
	clients := []ClientRecord{
		{ActivityID: 1, Duration: 20, ActivityLevel: 1, ShiftID: 5, TWBool: true, TWStart: "08:00:00", TWEnd: "09:00:00"},
	}
	d := [][]float64{{0, 5}, {5, 0}}

	_, _, err := LoadInstance(clients, sampleShifts(), d, 0)
	assert.Error(t, err)
}
