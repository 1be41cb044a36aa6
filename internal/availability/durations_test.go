package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedPrice(price int64) PriceFunc {
	return func(ctx context.Context, resourceID string, minutes int, tier string) (int64, error) {
		return price * int64(minutes) / 30, nil
	}
}

func TestBuildMenu(t *testing.T) {
	v := NewDurationValidator([]int{30, 60, 90, 120}, fixedPrice(2500))

	res := &Result{
		ResourceID:          "bay-1",
		Anchor:              at(13, 0),
		IsAvailable:         true,
		MaxAvailableMinutes: 60,
		NextBookingStart:    timePtr(at(14, 0)),
	}

	menu := v.BuildMenu(context.Background(), res, "standard")

	require.Len(t, menu.Options, 4)
	assert.True(t, menu.IsValid)
	assert.Equal(t, 60, menu.MaxAllowedMinutes)

	assert.True(t, menu.Options[0].Available)
	assert.Equal(t, int64(2500), menu.Options[0].Price)
	assert.True(t, menu.Options[1].Available)
	assert.Equal(t, int64(5000), menu.Options[1].Price)

	assert.False(t, menu.Options[2].Available)
	assert.Equal(t, "conflicts with booking at 14:00", menu.Options[2].DisabledReason)
	assert.False(t, menu.Options[3].Available)
	assert.Equal(t, "conflicts with booking at 14:00", menu.Options[3].DisabledReason)
}

func TestBuildMenu_CappedByClosingTime(t *testing.T) {
	v := NewDurationValidator([]int{30, 60, 90}, fixedPrice(2500))

	// 21:30 anchor, closes at 22:00, no upcoming booking.
	res := &Result{
		ResourceID:          "bay-1",
		Anchor:              at(21, 30),
		IsAvailable:         true,
		MaxAvailableMinutes: 30,
	}

	menu := v.BuildMenu(context.Background(), res, "standard")

	assert.True(t, menu.Options[0].Available)
	assert.False(t, menu.Options[1].Available)
	assert.Equal(t, "exceeds closing time", menu.Options[1].DisabledReason)
	assert.Equal(t, 30, menu.MaxAllowedMinutes)
}

func TestBuildMenu_Unavailable(t *testing.T) {
	v := NewDurationValidator([]int{30, 60}, fixedPrice(2500))

	res := &Result{
		ResourceID: "bay-1",
		Anchor:     at(14, 30),
	}

	menu := v.BuildMenu(context.Background(), res, "standard")

	assert.False(t, menu.IsValid)
	assert.Equal(t, 0, menu.MaxAllowedMinutes)
	for _, opt := range menu.Options {
		assert.False(t, opt.Available)
		assert.Equal(t, "bay is unavailable at the selected time", opt.DisabledReason)
	}
}

func TestBuildMenu_PricingFailureDisablesOption(t *testing.T) {
	failing := func(ctx context.Context, resourceID string, minutes int, tier string) (int64, error) {
		if minutes == 60 {
			return 0, errors.New("pricing service down")
		}
		return 1000, nil
	}
	v := NewDurationValidator([]int{30, 60}, failing)

	res := &Result{
		ResourceID:          "bay-1",
		Anchor:              at(10, 0),
		IsAvailable:         true,
		MaxAvailableMinutes: 120,
	}

	menu := v.BuildMenu(context.Background(), res, "standard")

	assert.True(t, menu.Options[0].Available)
	assert.False(t, menu.Options[1].Available)
	assert.Equal(t, "pricing unavailable", menu.Options[1].DisabledReason)
	// The menu still validates off the options that priced successfully.
	assert.True(t, menu.IsValid)
	assert.Equal(t, 30, menu.MaxAllowedMinutes)
}

func TestSmallestOffered(t *testing.T) {
	v := NewDurationValidator([]int{60, 30, 120}, nil)
	assert.Equal(t, 30*time.Minute, v.SmallestOffered())

	empty := NewDurationValidator(nil, nil)
	assert.Equal(t, time.Duration(0), empty.SmallestOffered())
}
