package availability

import (
	"net/http"
	"time"

	"github.com/simlane/bay-booking-backend/internal/pkg/apperror"
	"github.com/simlane/bay-booking-backend/internal/timeslot"
)

var (
	ErrMisalignedTime   = apperror.New(http.StatusBadRequest, "start time is not aligned to the slot granularity")
	ErrInvalidTimeRange = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrResourceNotFound = apperror.New(http.StatusNotFound, "resource not found")
	ErrLocationNotFound = apperror.New(http.StatusNotFound, "location not found")
)

// Alternative is a free slot suggested when the requested time does not work.
type Alternative struct {
	Slot    timeslot.Range
	Minutes int
}

// Result describes one resource's availability at a specific anchor time.
type Result struct {
	ResourceID            string
	Anchor                time.Time
	IsAvailable           bool
	MaxAvailableMinutes   int
	NextBookingStart      *time.Time
	SuggestedAlternatives []Alternative
}

// ResourceConflict is one resource's verdict for a candidate interval.
type ResourceConflict struct {
	ResourceID          string
	Available           bool
	MaxAvailableMinutes int
	NextBookingStart    *time.Time
	Conflicts           []timeslot.Range
}

// ConflictCheckResult aggregates per-resource verdicts for one candidate
// interval. CanBook is true only when no checked resource conflicts.
type ConflictCheckResult struct {
	Results []ResourceConflict
	CanBook bool
}

// ByResource looks up the verdict for a resource id.
func (r *ConflictCheckResult) ByResource(id string) (ResourceConflict, bool) {
	for _, rc := range r.Results {
		if rc.ResourceID == id {
			return rc, true
		}
	}
	return ResourceConflict{}, false
}
