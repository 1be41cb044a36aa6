package location

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simlane/bay-booking-backend/internal/timeslot"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{input: "09:00", want: 9 * time.Hour},
		{input: "22:30", want: 22*time.Hour + 30*time.Minute},
		{input: "06:15:30", want: 6*time.Hour + 15*time.Minute + 30*time.Second},
		{input: "00:00", want: 0},
		{input: "24:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "noon", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseClock(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidHours)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDayWindow(t *testing.T) {
	loc := &Location{
		OpeningHoursStart: "09:00",
		OpeningHoursEnd:   "22:00",
	}

	at := time.Date(2026, 3, 14, 13, 45, 0, 0, time.UTC)
	window, err := loc.DayWindow(at)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2026, 3, 14, 22, 0, 0, 0, time.UTC), window.End)

	// The window is for the calendar day of t, whatever the time of day.
	early, err := loc.DayWindow(time.Date(2026, 3, 14, 0, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, window, early)
}

func TestDayWindowInvalidHours(t *testing.T) {
	loc := &Location{
		OpeningHoursStart: "22:00",
		OpeningHoursEnd:   "09:00",
	}

	_, err := loc.DayWindow(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, timeslot.ErrInvalidRange)
}
