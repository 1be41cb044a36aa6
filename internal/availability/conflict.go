package availability

import (
	"time"

	"github.com/simlane/bay-booking-backend/internal/timeslot"
)

// ConflictChecker runs one candidate interval against the booking
// snapshots of many resources at once. It backs both the multi-bay
// selector and the "book full location" bulk action.
type ConflictChecker struct{}

func NewConflictChecker() *ConflictChecker {
	return &ConflictChecker{}
}

// Check tests the candidate against each resource's busy ranges, in the
// given resource order. busy maps resource id to its sorted non-cancelled
// bookings; missing keys mean a fully free resource. day bounds the
// per-resource max duration; a zero day skips the opening-hours check.
//
// Zero resources yields CanBook=true with an empty result.
func (c *ConflictChecker) Check(candidate timeslot.Range, resourceIDs []string, busy map[string][]timeslot.Range, day timeslot.Range) ConflictCheckResult {
	out := ConflictCheckResult{
		Results: make([]ResourceConflict, 0, len(resourceIDs)),
		CanBook: true,
	}

	withinHours := day.IsZero() ||
		(!candidate.Start.Before(day.Start) && !candidate.End.After(day.End))

	for _, id := range resourceIDs {
		rc := ResourceConflict{ResourceID: id}

		for _, b := range busy[id] {
			if candidate.Overlaps(b) {
				rc.Conflicts = append(rc.Conflicts, b)
			}
			if rc.NextBookingStart == nil && !b.Start.Before(candidate.Start) {
				start := b.Start
				rc.NextBookingStart = &start
			}
		}

		rc.Available = withinHours && len(rc.Conflicts) == 0
		if rc.Available {
			limit := candidate.End
			if !day.IsZero() {
				limit = day.End
			}
			if rc.NextBookingStart != nil && rc.NextBookingStart.Before(limit) {
				limit = *rc.NextBookingStart
			}
			if limit.After(candidate.Start) {
				rc.MaxAvailableMinutes = int(limit.Sub(candidate.Start) / time.Minute)
			}
		}

		if !rc.Available {
			out.CanBook = false
		}
		out.Results = append(out.Results, rc)
	}

	return out
}
