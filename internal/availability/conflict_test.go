package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simlane/bay-booking-backend/internal/timeslot"
)

func TestCheck_NoResources(t *testing.T) {
	c := NewConflictChecker()

	got := c.Check(slot(10, 0, 11, 0), nil, nil, businessDay())

	assert.True(t, got.CanBook)
	assert.Empty(t, got.Results)
}

func TestCheck_AllFree(t *testing.T) {
	c := NewConflictChecker()

	got := c.Check(
		slot(10, 0, 11, 0),
		[]string{"bay-1", "bay-2"},
		map[string][]timeslot.Range{
			"bay-1": {slot(12, 0, 13, 0)},
			// bay-2 has no bookings at all
		},
		businessDay(),
	)

	assert.True(t, got.CanBook)
	require.Len(t, got.Results, 2)

	first := got.Results[0]
	assert.True(t, first.Available)
	assert.Empty(t, first.Conflicts)
	assert.Equal(t, 120, first.MaxAvailableMinutes) // capped by the 12:00 booking
	require.NotNil(t, first.NextBookingStart)
	assert.Equal(t, at(12, 0), *first.NextBookingStart)

	second := got.Results[1]
	assert.True(t, second.Available)
	assert.Equal(t, 12*60, second.MaxAvailableMinutes) // capped by closing
	assert.Nil(t, second.NextBookingStart)
}

func TestCheck_PartialConflict(t *testing.T) {
	c := NewConflictChecker()

	got := c.Check(
		slot(14, 0, 15, 0),
		[]string{"bay-1", "bay-2", "bay-3"},
		map[string][]timeslot.Range{
			"bay-1": {slot(14, 30, 16, 0)},
			"bay-2": {slot(13, 0, 14, 0)}, // ends exactly at candidate start
			"bay-3": {slot(15, 0, 16, 0)}, // starts exactly at candidate end
		},
		businessDay(),
	)

	assert.False(t, got.CanBook)

	bay1, ok := got.ByResource("bay-1")
	require.True(t, ok)
	assert.False(t, bay1.Available)
	require.Len(t, bay1.Conflicts, 1)
	assert.Equal(t, slot(14, 30, 16, 0), bay1.Conflicts[0])

	bay2, _ := got.ByResource("bay-2")
	assert.True(t, bay2.Available)

	bay3, _ := got.ByResource("bay-3")
	assert.True(t, bay3.Available)
	assert.Equal(t, 60, bay3.MaxAvailableMinutes)
}

func TestCheck_CandidateInsideBooking(t *testing.T) {
	c := NewConflictChecker()

	got := c.Check(
		slot(14, 15, 14, 45),
		[]string{"bay-1"},
		map[string][]timeslot.Range{
			"bay-1": {slot(14, 0, 15, 0)},
		},
		businessDay(),
	)

	assert.False(t, got.CanBook)
	assert.False(t, got.Results[0].Available)
	assert.Zero(t, got.Results[0].MaxAvailableMinutes)
}

func TestCheck_OutsideOpeningHours(t *testing.T) {
	c := NewConflictChecker()

	got := c.Check(
		slot(8, 0, 9, 0),
		[]string{"bay-1"},
		nil,
		businessDay(),
	)

	assert.False(t, got.CanBook)
	assert.False(t, got.Results[0].Available)
}

func TestCheck_ZeroDaySkipsHoursCheck(t *testing.T) {
	c := NewConflictChecker()

	got := c.Check(
		slot(8, 0, 9, 0),
		[]string{"bay-1"},
		nil,
		timeslot.Range{},
	)

	assert.True(t, got.CanBook)
	assert.True(t, got.Results[0].Available)
	assert.Equal(t, 60, got.Results[0].MaxAvailableMinutes)
}
