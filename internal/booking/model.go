package booking

import (
	"net/http"
	"time"

	"github.com/simlane/bay-booking-backend/internal/pkg/apperror"
	"github.com/simlane/bay-booking-backend/internal/timeslot"
)

var (
	ErrNotFound            = apperror.New(http.StatusNotFound, "booking not found")
	ErrTimeConflict        = apperror.New(http.StatusConflict, "time slot already booked")
	ErrInvalidTimeRange    = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrMisalignedTime      = apperror.New(http.StatusBadRequest, "start time is not aligned to the slot granularity")
	ErrInvalidStatus       = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrInvalidTransition   = apperror.New(http.StatusBadRequest, "invalid booking status transition")
	ErrResourceNotFound    = apperror.New(http.StatusNotFound, "resource not found")
	ErrResourceInactive    = apperror.New(http.StatusUnprocessableEntity, "resource is inactive")
	ErrMixedLocations      = apperror.New(http.StatusBadRequest, "all resources must belong to the same location")
	ErrNoResources         = apperror.New(http.StatusBadRequest, "at least one resource is required")
	ErrStartTimePast       = apperror.New(http.StatusBadRequest, "cannot create booking in the past")
	ErrOutsideOpeningHours = apperror.New(http.StatusBadRequest, "booking is outside opening hours")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusNoShow    Status = "no_show"
)

// validTransitions encodes the status lifecycle. Cancelled, completed and
// no_show are terminal.
var validTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted, StatusNoShow},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to Status) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsValidStatus reports whether s is a known booking status.
func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Booking occupies one or more resources for a half-open interval.
// Group bookings hold several bays under a single booking id.
type Booking struct {
	ID            string
	ResourceIDs   []string
	LocationID    string
	CustomerRef   string
	StartTime     time.Time
	EndTime       time.Time
	Status        Status
	PaymentStatus PaymentStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Slot returns the booking's interval.
func (b *Booking) Slot() timeslot.Range {
	return timeslot.Range{Start: b.StartTime, End: b.EndTime}
}

// Blocks reports whether the booking occupies its resources.
// Cancelled bookings never block.
func (b *Booking) Blocks() bool {
	return b.Status != StatusCancelled
}

// Filter defines parameters for listing bookings.
type Filter struct {
	CustomerRef string
	ResourceID  string
	LocationID  string
	Status      string
	StartTime   *time.Time // Bookings ending after this time
	EndTime     *time.Time // Bookings starting before this time
	Page        int
	PageSize    int
}
