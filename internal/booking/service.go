package booking

import (
	"context"
	"errors"
	"time"

	"github.com/simlane/bay-booking-backend/internal/location"
	"github.com/simlane/bay-booking-backend/internal/resource"
	"github.com/simlane/bay-booking-backend/internal/timeslot"
)

type CreateRequest struct {
	ResourceIDs []string
	CustomerRef string
	StartTime   time.Time
	EndTime     time.Time
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Booking, error)
	Snapshot(ctx context.Context, resourceIDs []string, window timeslot.Range) ([]*Booking, error)
	HistoryForCustomer(ctx context.Context, customerRef, locationID string, limit int) ([]*Booking, error)
}

type service struct {
	repo        Repository
	resService  resource.Service
	locService  location.Service
	granularity time.Duration
	now         func() time.Time
}

func NewService(repo Repository, resService resource.Service, locService location.Service, granularity time.Duration) Service {
	return &service{
		repo:        repo,
		resService:  resService,
		locService:  locService,
		granularity: granularity,
		now:         time.Now,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if len(req.ResourceIDs) == 0 {
		return nil, ErrNoResources
	}

	slot, err := timeslot.New(req.StartTime, req.EndTime)
	if err != nil {
		return nil, ErrInvalidTimeRange
	}
	if !timeslot.Aligned(req.StartTime, s.granularity) || !timeslot.Aligned(req.EndTime, s.granularity) {
		return nil, ErrMisalignedTime
	}
	if req.StartTime.Before(s.now().UTC()) {
		return nil, ErrStartTimePast
	}

	// Validate resources: all must exist, be active, and share one location.
	locationID := ""
	for _, id := range req.ResourceIDs {
		res, err := s.resService.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, resource.ErrNotFound) {
				return nil, ErrResourceNotFound
			}
			return nil, err
		}
		if !res.Active {
			return nil, ErrResourceInactive
		}
		if locationID == "" {
			locationID = res.LocationID
		} else if locationID != res.LocationID {
			return nil, ErrMixedLocations
		}
	}

	loc, err := s.locService.GetByID(ctx, locationID)
	if err != nil {
		return nil, err
	}
	day, err := loc.DayWindow(req.StartTime)
	if err != nil {
		return nil, err
	}
	if slot.Start.Before(day.Start) || slot.End.After(day.End) {
		return nil, ErrOutsideOpeningHours
	}

	// Advisory pre-check over a snapshot; the database exclusion constraint
	// decides the race for the last slot at commit.
	existing, err := s.repo.Snapshot(ctx, req.ResourceIDs, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	for _, b := range existing {
		if b.Blocks() && slot.Overlaps(b.Slot()) {
			return nil, ErrTimeConflict
		}
	}

	booking := &Booking{
		ResourceIDs:   req.ResourceIDs,
		LocationID:    locationID,
		CustomerRef:   req.CustomerRef,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Status:        StatusPending,
		PaymentStatus: PaymentUnpaid,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) UpdateStatus(ctx context.Context, id string, status Status) (*Booking, error) {
	if !IsValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(b.Status, status) {
		return nil, ErrInvalidTransition
	}

	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *service) Snapshot(ctx context.Context, resourceIDs []string, window timeslot.Range) ([]*Booking, error) {
	return s.repo.Snapshot(ctx, resourceIDs, window.Start, window.End)
}

func (s *service) HistoryForCustomer(ctx context.Context, customerRef, locationID string, limit int) ([]*Booking, error) {
	return s.repo.HistoryForCustomer(ctx, customerRef, locationID, limit)
}
