package resource

import (
	"context"

	"github.com/simlane/bay-booking-backend/internal/location"
)

type Service interface {
	GetByID(ctx context.Context, id string) (*Resource, error)
	List(ctx context.Context, filter Filter) ([]*Resource, int, error)
	ListByLocation(ctx context.Context, locationID string) ([]*Resource, error)
}

type service struct {
	repo       Repository
	locService location.Service
}

func NewService(repo Repository, locService location.Service) Service {
	return &service{
		repo:       repo,
		locService: locService,
	}
}

func (s *service) GetByID(ctx context.Context, id string) (*Resource, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Resource, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) ListByLocation(ctx context.Context, locationID string) ([]*Resource, error) {
	// Validate the location exists so unknown IDs surface as 404, not an empty list.
	if _, err := s.locService.GetByID(ctx, locationID); err != nil {
		return nil, err
	}
	return s.repo.ListByLocation(ctx, locationID)
}
