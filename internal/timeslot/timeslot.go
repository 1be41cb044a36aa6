package timeslot

import (
	"errors"
	"time"
)

var (
	ErrInvalidRange = errors.New("start time must be before end time")
)

// Range is a half-open time interval [Start, End).
// End is exclusive so back-to-back slots never overlap.
type Range struct {
	Start time.Time
	End   time.Time
}

// New builds a Range and enforces Start < End.
func New(start, end time.Time) (Range, error) {
	if !start.Before(end) {
		return Range{}, ErrInvalidRange
	}
	return Range{Start: start, End: end}, nil
}

// Overlaps reports whether two half-open ranges intersect.
func (r Range) Overlaps(other Range) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Contains reports whether t falls inside the range. End is exclusive,
// so Contains(r.End) is false.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// Duration returns the length of the range.
func (r Range) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// IsZero reports whether the range is unset.
func (r Range) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Aligned reports whether t sits on a slot boundary for the given
// granularity (e.g. 15 or 30 minutes).
func Aligned(t time.Time, granularity time.Duration) bool {
	if granularity <= 0 {
		return true
	}
	return t.Truncate(granularity).Equal(t)
}
