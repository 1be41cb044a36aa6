package availability

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/simlane/bay-booking-backend/internal/booking"
	"github.com/simlane/bay-booking-backend/internal/location"
	"github.com/simlane/bay-booking-backend/internal/resource"
	"github.com/simlane/bay-booking-backend/internal/timeslot"
)

type ResolveRequest struct {
	ResourceID string
	Start      time.Time
	Tier       string
}

// Resolution pairs an availability result with its priced duration menu.
type Resolution struct {
	Result *Result
	Menu   DurationMenu
}

type ConflictRequest struct {
	// ResourceIDs to check. Empty means every active resource at LocationID
	// (the "book full location" bulk action).
	ResourceIDs []string
	LocationID  string
	Start       time.Time
	End         time.Time
}

type Service interface {
	Resolve(ctx context.Context, req ResolveRequest) (*Resolution, error)
	CheckConflicts(ctx context.Context, req ConflictRequest) (*ConflictCheckResult, error)
}

type service struct {
	bookings  booking.Service
	resources resource.Service
	locations location.Service
	resolver  *Resolver
	validator *DurationValidator
	checker   *ConflictChecker
	logger    *zap.Logger
}

// NewService assembles the availability service. The resolver's minimum
// alternative length is derived from the validator so suggested gaps are
// always at least the smallest offerable duration.
func NewService(
	bookings booking.Service,
	resources resource.Service,
	locations location.Service,
	granularity time.Duration,
	validator *DurationValidator,
	logger *zap.Logger,
) Service {
	return &service{
		bookings:  bookings,
		resources: resources,
		locations: locations,
		resolver:  NewResolver(granularity, validator.SmallestOffered()),
		validator: validator,
		checker:   NewConflictChecker(),
		logger:    logger,
	}
}

func (s *service) Resolve(ctx context.Context, req ResolveRequest) (*Resolution, error) {
	res, err := s.resources.GetByID(ctx, req.ResourceID)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}

	loc, err := s.locations.GetByID(ctx, res.LocationID)
	if err != nil {
		if errors.Is(err, location.ErrNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}

	day, err := loc.DayWindow(req.Start)
	if err != nil {
		return nil, err
	}

	// An inactive bay resolves against an empty day window: never
	// available, no alternatives.
	if !res.Active {
		day = timeslot.Range{}
	}

	busy, err := s.busyRanges(ctx, []string{req.ResourceID}, day)
	if err != nil {
		return nil, err
	}

	result, err := s.resolver.Resolve(req.ResourceID, req.Start, busy[req.ResourceID], day)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("resolved availability",
		zap.String("resource_id", req.ResourceID),
		zap.Time("anchor", req.Start),
		zap.Bool("available", result.IsAvailable),
		zap.Int("max_minutes", result.MaxAvailableMinutes),
	)

	return &Resolution{
		Result: result,
		Menu:   s.validator.BuildMenu(ctx, result, req.Tier),
	}, nil
}

func (s *service) CheckConflicts(ctx context.Context, req ConflictRequest) (*ConflictCheckResult, error) {
	candidate, err := timeslot.New(req.Start, req.End)
	if err != nil {
		return nil, ErrInvalidTimeRange
	}

	targets, locationID, err := s.targetResources(ctx, req)
	if err != nil {
		return nil, err
	}

	// Zero resources is a valid check: nothing conflicts.
	if len(targets) == 0 {
		return &ConflictCheckResult{CanBook: true}, nil
	}

	loc, err := s.locations.GetByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, location.ErrNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}
	day, err := loc.DayWindow(req.Start)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(targets))
	for i, res := range targets {
		ids[i] = res.ID
	}

	busy, err := s.busyRanges(ctx, ids, day)
	if err != nil {
		return nil, err
	}

	result := s.checker.Check(candidate, ids, busy, day)
	return &result, nil
}

// targetResources expands the request into concrete resources and their
// shared location. Inactive resources are skipped for location-wide checks.
func (s *service) targetResources(ctx context.Context, req ConflictRequest) ([]*resource.Resource, string, error) {
	if len(req.ResourceIDs) == 0 {
		all, err := s.resources.ListByLocation(ctx, req.LocationID)
		if err != nil {
			if errors.Is(err, location.ErrNotFound) {
				return nil, "", ErrLocationNotFound
			}
			return nil, "", err
		}
		active := make([]*resource.Resource, 0, len(all))
		for _, res := range all {
			if res.Active {
				active = append(active, res)
			}
		}
		return active, req.LocationID, nil
	}

	targets := make([]*resource.Resource, 0, len(req.ResourceIDs))
	locationID := ""
	for _, id := range req.ResourceIDs {
		res, err := s.resources.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, resource.ErrNotFound) {
				return nil, "", ErrResourceNotFound
			}
			return nil, "", err
		}
		if locationID == "" {
			locationID = res.LocationID
		}
		targets = append(targets, res)
	}
	return targets, locationID, nil
}

// busyRanges snapshots non-cancelled bookings in the window and groups
// their intervals by resource. Multi-resource bookings occupy every one of
// their bays.
func (s *service) busyRanges(ctx context.Context, resourceIDs []string, window timeslot.Range) (map[string][]timeslot.Range, error) {
	if window.IsZero() {
		return map[string][]timeslot.Range{}, nil
	}

	snapshot, err := s.bookings.Snapshot(ctx, resourceIDs, window)
	if err != nil {
		s.logger.Error("booking snapshot failed", zap.Error(err))
		return nil, err
	}

	wanted := make(map[string]bool, len(resourceIDs))
	for _, id := range resourceIDs {
		wanted[id] = true
	}

	busy := make(map[string][]timeslot.Range, len(resourceIDs))
	for _, b := range snapshot {
		if !b.Blocks() {
			continue
		}
		for _, resID := range b.ResourceIDs {
			if wanted[resID] {
				busy[resID] = append(busy[resID], b.Slot())
			}
		}
	}
	return busy, nil
}
