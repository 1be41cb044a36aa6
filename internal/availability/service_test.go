package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/simlane/bay-booking-backend/internal/timeslot"
)

// Builds the resolver through NewService, the same path the application
// wires, so the minimum-gap derivation itself is under test.
func TestNewServiceResolverMinimumGap(t *testing.T) {
	validator := NewDurationValidator([]int{30, 60, 90, 120}, nil)
	svc := NewService(nil, nil, nil, 30*time.Minute, validator, zap.NewNop()).(*service)

	// A ten minute sliver between bookings is shorter than the smallest
	// offerable duration and must never be suggested.
	busy := []timeslot.Range{
		slot(14, 0, 15, 0),
		slot(15, 10, 22, 0),
	}
	result, err := svc.resolver.Resolve("bay-1", at(13, 0), busy, businessDay())
	require.NoError(t, err)

	assert.True(t, result.IsAvailable)
	assert.Equal(t, 60, result.MaxAvailableMinutes)
	assert.Empty(t, result.SuggestedAlternatives)
}

func TestNewServiceResolverSuggestsOfferableGaps(t *testing.T) {
	validator := NewDurationValidator([]int{30, 60}, nil)
	svc := NewService(nil, nil, nil, 30*time.Minute, validator, zap.NewNop()).(*service)

	busy := []timeslot.Range{
		slot(14, 0, 15, 0),
		slot(16, 0, 22, 0),
	}
	result, err := svc.resolver.Resolve("bay-1", at(13, 0), busy, businessDay())
	require.NoError(t, err)

	require.Len(t, result.SuggestedAlternatives, 1)
	alt := result.SuggestedAlternatives[0]
	assert.Equal(t, slot(15, 0, 16, 0), alt.Slot)
	assert.Equal(t, 60, alt.Minutes)
}
