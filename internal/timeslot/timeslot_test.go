package timeslot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 14, hour, min, 0, 0, time.UTC)
}

func TestNew(t *testing.T) {
	_, err := New(at(10, 0), at(9, 0))
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = New(at(10, 0), at(10, 0))
	assert.ErrorIs(t, err, ErrInvalidRange)

	r, err := New(at(10, 0), at(11, 0))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, r.Duration())
}

func TestOverlaps(t *testing.T) {
	existing, _ := New(at(10, 0), at(14, 0))

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"ends exactly at existing start", at(8, 0), at(10, 0), false},
		{"starts exactly at existing end", at(14, 0), at(16, 0), false},
		{"fully inside", at(11, 0), at(12, 0), true},
		{"covers existing", at(9, 0), at(15, 0), true},
		{"overlaps head", at(9, 0), at(10, 30), true},
		{"overlaps tail", at(13, 30), at(15, 0), true},
		{"fully before", at(7, 0), at(8, 0), false},
		{"fully after", at(15, 0), at(16, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate, err := New(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, existing.Overlaps(candidate))
			assert.Equal(t, tt.want, candidate.Overlaps(existing))
		})
	}
}

func TestContains(t *testing.T) {
	r, _ := New(at(10, 0), at(11, 0))

	assert.True(t, r.Contains(at(10, 0)))
	assert.True(t, r.Contains(at(10, 59)))
	// End is exclusive: a booking ending at 11:00 leaves 11:00 free.
	assert.False(t, r.Contains(at(11, 0)))
	assert.False(t, r.Contains(at(9, 59)))
}

func TestAligned(t *testing.T) {
	assert.True(t, Aligned(at(10, 0), 30*time.Minute))
	assert.True(t, Aligned(at(10, 30), 30*time.Minute))
	assert.False(t, Aligned(at(10, 20), 30*time.Minute))
	assert.True(t, Aligned(at(10, 45), 15*time.Minute))
	assert.False(t, Aligned(at(10, 45), 30*time.Minute))
	assert.True(t, Aligned(at(10, 7), 0))
}
