package favorites

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/simlane/bay-booking-backend/internal/booking"
	"github.com/simlane/bay-booking-backend/internal/resource"
)

const historyDepth = 50

type Service interface {
	// Ranked returns the location's bays in quick-rebook order for the
	// customer. Store or history failures degrade to an unstarred,
	// frequency-less ranking instead of erroring.
	Ranked(ctx context.Context, customerRef, locationID string) ([]Entry, error)
	// LastSetup returns the resource ids of the customer's most recent
	// booking at the location, for one-click rebook.
	LastSetup(ctx context.Context, customerRef, locationID string) ([]string, error)
	Favorites(ctx context.Context, customerRef, locationID string) (map[string]bool, error)
	Toggle(customerRef, locationID, resourceID string, starred bool)
	Flush()
}

type service struct {
	store     Store
	toggler   *Toggler
	bookings  booking.Service
	resources resource.Service
	logger    *zap.Logger
}

func NewService(
	store Store,
	bookings booking.Service,
	resources resource.Service,
	debounceWindow time.Duration,
	logger *zap.Logger,
) Service {
	return &service{
		store:     store,
		toggler:   NewToggler(store, debounceWindow, logger),
		bookings:  bookings,
		resources: resources,
		logger:    logger,
	}
}

func (s *service) Ranked(ctx context.Context, customerRef, locationID string) ([]Entry, error) {
	// Unknown locations are a caller error and do surface.
	all, err := s.resources.ListByLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}

	active := make([]*resource.Resource, 0, len(all))
	for _, res := range all {
		if res.Active {
			active = append(active, res)
		}
	}

	starred, err := s.store.Favorites(ctx, customerRef, locationID)
	if err != nil {
		s.logger.Warn("favorites read failed, ranking without stars", zap.Error(err))
		starred = nil
	}

	history, err := s.bookings.HistoryForCustomer(ctx, customerRef, locationID, historyDepth)
	if err != nil {
		s.logger.Warn("booking history read failed, ranking without frequency", zap.Error(err))
		history = nil
	}

	return Rank(active, starred, history), nil
}

func (s *service) LastSetup(ctx context.Context, customerRef, locationID string) ([]string, error) {
	history, err := s.bookings.HistoryForCustomer(ctx, customerRef, locationID, 1)
	if err != nil {
		return nil, err
	}
	return LastSetup(history), nil
}

func (s *service) Favorites(ctx context.Context, customerRef, locationID string) (map[string]bool, error) {
	return s.store.Favorites(ctx, customerRef, locationID)
}

func (s *service) Toggle(customerRef, locationID, resourceID string, starred bool) {
	s.toggler.Toggle(customerRef, locationID, resourceID, starred)
}

func (s *service) Flush() {
	s.toggler.Flush()
}
