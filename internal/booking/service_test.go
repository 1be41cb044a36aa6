package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simlane/bay-booking-backend/internal/location"
	"github.com/simlane/bay-booking-backend/internal/resource"
)

type fakeRepo struct {
	bookings []*Booking
	created  *Booking
}

func (f *fakeRepo) Create(_ context.Context, b *Booking) error {
	b.ID = "created"
	f.created = b
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) List(_ context.Context, _ Filter) ([]*Booking, int, error) {
	return f.bookings, len(f.bookings), nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id string, status Status) (*Booking, error) {
	b, err := f.GetByID(context.Background(), id)
	if err != nil {
		return nil, err
	}
	b.Status = status
	return b, nil
}

func (f *fakeRepo) Snapshot(_ context.Context, _ []string, _, _ time.Time) ([]*Booking, error) {
	return f.bookings, nil
}

func (f *fakeRepo) HistoryForCustomer(_ context.Context, _, _ string, _ int) ([]*Booking, error) {
	return f.bookings, nil
}

type fakeResources struct {
	byID map[string]*resource.Resource
}

func (f *fakeResources) GetByID(_ context.Context, id string) (*resource.Resource, error) {
	res, ok := f.byID[id]
	if !ok {
		return nil, resource.ErrNotFound
	}
	return res, nil
}

func (f *fakeResources) List(_ context.Context, _ resource.Filter) ([]*resource.Resource, int, error) {
	return nil, 0, nil
}

func (f *fakeResources) ListByLocation(_ context.Context, _ string) ([]*resource.Resource, error) {
	return nil, nil
}

type fakeLocations struct {
	loc *location.Location
}

func (f *fakeLocations) GetByID(_ context.Context, id string) (*location.Location, error) {
	if f.loc == nil || f.loc.ID != id {
		return nil, location.ErrNotFound
	}
	return f.loc, nil
}

func (f *fakeLocations) List(_ context.Context, _ location.Filter) ([]*location.Location, int, error) {
	return nil, 0, nil
}

func newTestService(repo *fakeRepo) *service {
	resources := &fakeResources{byID: map[string]*resource.Resource{
		"bay-1":   {ID: "bay-1", LocationID: "loc-1", Number: 1, Active: true},
		"bay-2":   {ID: "bay-2", LocationID: "loc-1", Number: 2, Active: true},
		"bay-off": {ID: "bay-off", LocationID: "loc-1", Number: 3, Active: false},
		"bay-far": {ID: "bay-far", LocationID: "loc-2", Number: 1, Active: true},
	}}
	locations := &fakeLocations{loc: &location.Location{
		ID:                "loc-1",
		OpeningHoursStart: "09:00",
		OpeningHoursEnd:   "22:00",
		Active:            true,
	}}

	svc := NewService(repo, resources, locations, 30*time.Minute).(*service)
	svc.now = func() time.Time {
		return time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	}
	return svc
}

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 14, hour, min, 0, 0, time.UTC)
}

func TestCreateHappyPath(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	b, err := svc.Create(context.Background(), CreateRequest{
		ResourceIDs: []string{"bay-1", "bay-2"},
		CustomerRef: "cust-1",
		StartTime:   at(14, 0),
		EndTime:     at(15, 0),
	})
	require.NoError(t, err)

	assert.Equal(t, "created", b.ID)
	assert.Equal(t, "loc-1", b.LocationID)
	assert.Equal(t, StatusPending, b.Status)
	assert.Equal(t, PaymentUnpaid, b.PaymentStatus)
	require.NotNil(t, repo.created)
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateRequest
		wantErr error
	}{
		{
			name:    "no resources",
			req:     CreateRequest{CustomerRef: "c", StartTime: at(14, 0), EndTime: at(15, 0)},
			wantErr: ErrNoResources,
		},
		{
			name: "end before start",
			req: CreateRequest{
				ResourceIDs: []string{"bay-1"},
				StartTime:   at(15, 0), EndTime: at(14, 0),
			},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name: "zero length",
			req: CreateRequest{
				ResourceIDs: []string{"bay-1"},
				StartTime:   at(14, 0), EndTime: at(14, 0),
			},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name: "off grid start",
			req: CreateRequest{
				ResourceIDs: []string{"bay-1"},
				StartTime:   at(14, 10), EndTime: at(15, 10),
			},
			wantErr: ErrMisalignedTime,
		},
		{
			name: "in the past",
			req: CreateRequest{
				ResourceIDs: []string{"bay-1"},
				StartTime:   time.Date(2026, 3, 13, 14, 0, 0, 0, time.UTC),
				EndTime:     time.Date(2026, 3, 13, 15, 0, 0, 0, time.UTC),
			},
			wantErr: ErrStartTimePast,
		},
		{
			name: "unknown resource",
			req: CreateRequest{
				ResourceIDs: []string{"bay-missing"},
				StartTime:   at(14, 0), EndTime: at(15, 0),
			},
			wantErr: ErrResourceNotFound,
		},
		{
			name: "inactive resource",
			req: CreateRequest{
				ResourceIDs: []string{"bay-off"},
				StartTime:   at(14, 0), EndTime: at(15, 0),
			},
			wantErr: ErrResourceInactive,
		},
		{
			name: "mixed locations",
			req: CreateRequest{
				ResourceIDs: []string{"bay-1", "bay-far"},
				StartTime:   at(14, 0), EndTime: at(15, 0),
			},
			wantErr: ErrMixedLocations,
		},
		{
			name: "before opening",
			req: CreateRequest{
				ResourceIDs: []string{"bay-1"},
				StartTime:   at(8, 30), EndTime: at(9, 30),
			},
			wantErr: ErrOutsideOpeningHours,
		},
		{
			name: "past closing",
			req: CreateRequest{
				ResourceIDs: []string{"bay-1"},
				StartTime:   at(21, 30), EndTime: at(22, 30),
			},
			wantErr: ErrOutsideOpeningHours,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.CustomerRef = "cust-1"
			_, err := newTestService(&fakeRepo{}).Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateConflictPreCheck(t *testing.T) {
	repo := &fakeRepo{bookings: []*Booking{{
		ID:          "existing",
		ResourceIDs: []string{"bay-1"},
		StartTime:   at(14, 0),
		EndTime:     at(15, 0),
		Status:      StatusConfirmed,
	}}}
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), CreateRequest{
		ResourceIDs: []string{"bay-1"},
		CustomerRef: "cust-1",
		StartTime:   at(14, 30),
		EndTime:     at(15, 30),
	})
	assert.ErrorIs(t, err, ErrTimeConflict)

	// Back-to-back is not a conflict: intervals are half-open.
	_, err = svc.Create(context.Background(), CreateRequest{
		ResourceIDs: []string{"bay-1"},
		CustomerRef: "cust-1",
		StartTime:   at(15, 0),
		EndTime:     at(16, 0),
	})
	assert.NoError(t, err)
}

func TestCreateCancelledDoesNotBlock(t *testing.T) {
	repo := &fakeRepo{bookings: []*Booking{{
		ID:          "cancelled",
		ResourceIDs: []string{"bay-1"},
		StartTime:   at(14, 0),
		EndTime:     at(15, 0),
		Status:      StatusCancelled,
	}}}
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), CreateRequest{
		ResourceIDs: []string{"bay-1"},
		CustomerRef: "cust-1",
		StartTime:   at(14, 0),
		EndTime:     at(15, 0),
	})
	assert.NoError(t, err)
}

func TestUpdateStatusTransitions(t *testing.T) {
	repo := &fakeRepo{bookings: []*Booking{{ID: "b1", Status: StatusPending}}}
	svc := newTestService(repo)

	b, err := svc.UpdateStatus(context.Background(), "b1", StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, b.Status)

	// Completed is terminal.
	repo.bookings[0].Status = StatusCompleted
	_, err = svc.UpdateStatus(context.Background(), "b1", StatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.UpdateStatus(context.Background(), "b1", Status("lost"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
