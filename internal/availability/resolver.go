package availability

import (
	"time"

	"github.com/simlane/bay-booking-backend/internal/timeslot"
)

const maxSuggestedAlternatives = 3

// Resolver answers "is this bay free at this instant, and for how long".
// It is a pure function of its inputs: callers hand it a point-in-time
// snapshot of the resource's bookings; it never reads shared state.
type Resolver struct {
	granularity    time.Duration
	minAlternative time.Duration
}

// NewResolver builds a resolver. granularity is the slot alignment unit;
// minAlternative is the smallest gap worth suggesting (normally the
// shortest offerable duration).
func NewResolver(granularity, minAlternative time.Duration) *Resolver {
	return &Resolver{
		granularity:    granularity,
		minAlternative: minAlternative,
	}
}

// Resolve computes availability for a resource at the anchor instant.
// busy must be the resource's non-cancelled bookings sorted by start,
// non-overlapping per the ledger invariant. day is the open/close window
// for the anchor's calendar day.
//
// Returns ErrMisalignedTime when the anchor does not sit on a slot
// boundary; callers normalize before calling.
func (r *Resolver) Resolve(resourceID string, anchor time.Time, busy []timeslot.Range, day timeslot.Range) (*Result, error) {
	if !timeslot.Aligned(anchor, r.granularity) {
		return nil, ErrMisalignedTime
	}

	res := &Result{
		ResourceID: resourceID,
		Anchor:     anchor,
	}

	// First booking starting at or after the anchor.
	for _, b := range busy {
		if !b.Start.Before(anchor) {
			start := b.Start
			res.NextBookingStart = &start
			break
		}
	}

	inside := false
	for _, b := range busy {
		if b.Contains(anchor) {
			inside = true
			break
		}
	}

	// Outside opening hours or mid-booking: unavailable, zero duration.
	if day.Contains(anchor) && !inside {
		res.IsAvailable = true

		limit := day.End
		if res.NextBookingStart != nil && res.NextBookingStart.Before(limit) {
			limit = *res.NextBookingStart
		}
		res.MaxAvailableMinutes = int(limit.Sub(anchor) / time.Minute)
	}

	res.SuggestedAlternatives = r.alternatives(anchor, busy, day)
	return res, nil
}

// alternatives walks the day's free gaps and suggests the first few that
// start after the anchor and fit at least the minimum offerable duration.
func (r *Resolver) alternatives(anchor time.Time, busy []timeslot.Range, day timeslot.Range) []Alternative {
	var out []Alternative

	cursor := day.Start
	consider := func(gapStart, gapEnd time.Time) {
		if len(out) >= maxSuggestedAlternatives {
			return
		}
		if !gapStart.After(anchor) || !gapStart.Before(gapEnd) {
			return
		}
		if gapEnd.Sub(gapStart) < r.minAlternative {
			return
		}
		gap := timeslot.Range{Start: gapStart, End: gapEnd}
		out = append(out, Alternative{
			Slot:    gap,
			Minutes: int(gap.Duration() / time.Minute),
		})
	}

	for _, b := range busy {
		start, end := b.Start, b.End
		if end.Before(day.Start) || start.After(day.End) {
			continue
		}
		if start.After(cursor) {
			consider(cursor, minTime(start, day.End))
		}
		if end.After(cursor) {
			cursor = end
		}
	}
	if cursor.Before(day.End) {
		consider(cursor, day.End)
	}

	return out
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
